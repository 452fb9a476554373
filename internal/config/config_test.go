package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/deeplook/pandas-100/internal/config"
)

var _ = Describe("Config", func() {
	var tempDir string

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "quizcards-config-*")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(tempDir)
	})

	writeConfig := func(content string) string {
		path := filepath.Join(tempDir, "config.yaml")
		Expect(os.WriteFile(path, []byte(content), 0644)).To(Succeed())
		return path
	}

	Context("defaults", func() {
		It("matches the original print workflow", func() {
			cfg := config.Default()
			Expect(cfg.HeadingLevel).To(Equal(4))
			Expect(cfg.Cover).To(BeTrue())
			Expect(cfg.Frame).To(BeTrue())
			Expect(cfg.SizeLabel).To(BeTrue())
			Expect(cfg.Strict).To(BeFalse())
			Expect(cfg.CardSize.Width).To(Equal(91.0))
			Expect(cfg.CardSize.Height).To(Equal(59.0))
			Expect(cfg.Grid.Rows).To(BeZero())
			Expect(cfg.Grid.Cols).To(BeZero())
		})
	})

	Context("loading files", func() {
		It("keeps defaults for absent keys", func() {
			path := writeConfig("frame: false\n")
			cfg, err := config.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Frame).To(BeFalse())
			Expect(cfg.Cover).To(BeTrue())
			Expect(cfg.HeadingLevel).To(Equal(4))
		})

		It("reads an explicit grid and card size", func() {
			path := writeConfig("grid:\n  rows: 2\n  cols: 2\ncard_size:\n  width: 120\n  height: 80\n")
			cfg, err := config.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Grid.Rows).To(Equal(2))
			Expect(cfg.Grid.Cols).To(Equal(2))
			Expect(cfg.CardSize.Width).To(Equal(120.0))
			Expect(cfg.CardSize.Height).To(Equal(80.0))
		})

		It("clamps an out-of-range heading level back to the default", func() {
			path := writeConfig("heading_level: 9\n")
			cfg, err := config.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.HeadingLevel).To(Equal(4))
		})

		It("errors on a missing file", func() {
			_, err := config.Load(filepath.Join(tempDir, "nope.yaml"))
			Expect(err).To(HaveOccurred())
		})

		It("errors on invalid YAML", func() {
			path := writeConfig("grid: [not: a map\n")
			_, err := config.Load(path)
			Expect(err).To(HaveOccurred())
		})
	})
})
