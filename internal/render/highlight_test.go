package render_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/deeplook/pandas-100/internal/render"
)

func joinSpans(spans []render.Span) string {
	var sb strings.Builder
	for _, span := range spans {
		sb.WriteString(span.Text)
	}
	return sb.String()
}

var _ = Describe("HighlightLines", func() {
	const snippet = "import numpy as np\nZ = np.zeros(10)"

	It("keeps every character of every line", func() {
		lines := render.HighlightLines(snippet, "python")
		Expect(lines).To(HaveLen(2))
		Expect(joinSpans(lines[0])).To(Equal("import numpy as np"))
		Expect(joinSpans(lines[1])).To(Equal("Z = np.zeros(10)"))
	})

	It("splits known languages into multiple spans", func() {
		lines := render.HighlightLines(snippet, "python")
		Expect(len(lines[0])).To(BeNumerically(">", 1))
	})

	It("falls back to plain text for unknown languages", func() {
		lines := render.HighlightLines("whatever text", "no-such-language")
		Expect(lines).To(HaveLen(1))
		Expect(joinSpans(lines[0])).To(Equal("whatever text"))
	})

	It("preserves empty lines", func() {
		lines := render.HighlightLines("a = 1\n\nb = 2", "python")
		Expect(lines).To(HaveLen(3))
		Expect(joinSpans(lines[1])).To(Equal(""))
	})
})
