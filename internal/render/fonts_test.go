package render_test

import (
	"os"

	"github.com/jung-kurt/gofpdf"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/deeplook/pandas-100/internal/render"
	"github.com/deeplook/pandas-100/pkg/logger"
)

func renderTestLogger() *logger.Logger {
	log := logger.New(
		logger.WithOutput(GinkgoWriter),
		logger.WithPrefix("[render-test] "),
		logger.WithFlags(0),
	)
	log.SetVerbose(true)
	return log
}

var _ = Describe("ResolveFonts", func() {
	var (
		pdf     *gofpdf.Fpdf
		tempDir string
	)

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "quizcards-fonts-*")
		Expect(err).NotTo(HaveOccurred())
		pdf = gofpdf.New("L", "mm", "A4", "")
	})

	AfterEach(func() {
		os.RemoveAll(tempDir)
	})

	Context("with no font files present", func() {
		It("binds every role to its core fallback", func() {
			fs := render.ResolveFonts(pdf, tempDir, renderTestLogger())

			Expect(fs.Regular.Family).To(Equal("Helvetica"))
			Expect(fs.Regular.Style).To(Equal(""))
			Expect(fs.Regular.Custom).To(BeFalse())

			Expect(fs.Bold.Family).To(Equal("Helvetica"))
			Expect(fs.Bold.Style).To(Equal("B"))
			Expect(fs.Bold.Custom).To(BeFalse())

			Expect(fs.Mono.Family).To(Equal("Courier"))
			Expect(fs.Mono.Custom).To(BeFalse())
		})

		It("never puts the document into an error state", func() {
			render.ResolveFonts(pdf, tempDir, renderTestLogger())
			Expect(pdf.Err()).To(BeFalse())
		})
	})

	Context("text preparation for core fonts", func() {
		It("reduces star ratings to ASCII", func() {
			fs := render.ResolveFonts(pdf, tempDir, renderTestLogger())
			Expect(fs.Text(fs.Regular, "Sort a series (★★☆)")).To(Equal("Sort a series (**)"))
			Expect(fs.Text(fs.Regular, "(★★★☆☆)")).To(Equal("(***)"))
		})

		It("leaves plain ASCII untouched", func() {
			fs := render.ResolveFonts(pdf, tempDir, renderTestLogger())
			Expect(fs.Text(fs.Mono, "import pandas as pd")).To(Equal("import pandas as pd"))
		})
	})
})
