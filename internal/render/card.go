package render

import (
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/deeplook/pandas-100/pkg/models"
)

const (
	cardPadding   = 4.0  // mm inset, matches the original card margins
	frameLineW    = 0.25 // mm
	bodyFontSize  = 14.0
	codeFontSize  = 10.0
	captionSize   = 10.0
	titleFontSize = 18.0
	minFontSize   = 4.0
	shrinkStep    = 0.5
	leading       = 1.25
)

// CardRenderer draws one card side into a grid cell. All sizing is fixed
// configuration; the only dynamic policy is shrink-to-fit.
type CardRenderer struct {
	pdf   *gofpdf.Fpdf
	fonts *FontSet
	frame bool
}

func NewCardRenderer(pdf *gofpdf.Fpdf, fonts *FontSet, frame bool) *CardRenderer {
	return &CardRenderer{pdf: pdf, fonts: fonts, frame: frame}
}

// Draw renders one slot into the cell with top-left corner (x, y). Empty
// slots get only the cut frame. Content is clipped to the cell so an
// oversized line can never bleed into a neighbour card.
func (r *CardRenderer) Draw(slot models.Slot, x, y, w, h float64) {
	if r.frame {
		r.drawFrame(x, y, w, h)
	}
	if slot.Kind == models.SlotEmpty {
		return
	}

	r.pdf.ClipRect(x, y, w, h, false)
	defer r.pdf.ClipEnd()

	switch slot.Kind {
	case models.SlotQuestion:
		r.drawQuestion(slot.Pair, x, y, w, h)
	case models.SlotAnswer:
		r.drawAnswer(slot.Pair, x, y, w, h)
	case models.SlotCover:
		r.drawCover(slot.Cover, x, y, w, h)
	}
}

func (r *CardRenderer) drawFrame(x, y, w, h float64) {
	r.pdf.SetDrawColor(211, 211, 211)
	r.pdf.SetLineWidth(frameLineW)
	r.pdf.Rect(x, y, w, h, "D")
	r.pdf.SetDrawColor(0, 0, 0)
}

func (r *CardRenderer) drawQuestion(pair *models.QAPair, x, y, w, h float64) {
	cursor := r.drawCaption("Question:", x+cardPadding, y+cardPadding)
	r.drawWrapped(pair.Question, r.fonts.Regular, bodyFontSize,
		x+cardPadding, cursor, w-2*cardPadding, y+h-cardPadding)
}

func (r *CardRenderer) drawAnswer(pair *models.QAPair, x, y, w, h float64) {
	cursor := r.drawCaption(fmt.Sprintf("Answer %d:", pair.Index), x+cardPadding, y+cardPadding)
	r.drawCode(pair.Answer, pair.Language, x+cardPadding, cursor, w-2*cardPadding, y+h-cardPadding)
}

func (r *CardRenderer) drawCover(cover *models.Cover, x, y, w, h float64) {
	r.setFont(r.fonts.Bold, titleFontSize)
	title := r.fonts.Text(r.fonts.Bold, cover.Title)
	tw := r.pdf.GetStringWidth(title)
	baseline := y + cardPadding + r.pdf.PointConvert(titleFontSize)
	r.pdf.Text(x+(w-tw)/2, baseline, title)

	cursor := baseline + r.pdf.PointConvert(titleFontSize)*leading
	for _, para := range cover.Intro {
		cursor = r.drawWrapped(para, r.fonts.Regular, captionSize,
			x+cardPadding, cursor, w-2*cardPadding, y+h-cardPadding)
		if cursor >= y+h-cardPadding {
			break
		}
	}
}

// drawCaption prints the small role label and returns the y cursor below it.
func (r *CardRenderer) drawCaption(label string, x, top float64) float64 {
	r.setFont(r.fonts.Regular, captionSize)
	r.pdf.Text(x, top+r.pdf.PointConvert(captionSize), r.fonts.Text(r.fonts.Regular, label))
	return top + r.pdf.PointConvert(captionSize)*leading
}

// drawWrapped draws text wrapped to width w, shrinking the font in fixed
// steps until the block fits above bottom, flooring at minFontSize and then
// truncating. Returns the y cursor after the last line.
func (r *CardRenderer) drawWrapped(text string, role FontRole, baseSize, x, top, w, bottom float64) float64 {
	prepared := r.fonts.Text(role, strings.ReplaceAll(text, "\n", " "))

	var (
		size  = baseSize
		lines []string
		lineH float64
	)
	for {
		r.setFont(role, size)
		lines = r.pdf.SplitText(prepared, w)
		lineH = r.pdf.PointConvert(size) * leading
		if float64(len(lines))*lineH <= bottom-top || size <= minFontSize {
			break
		}
		size -= shrinkStep
	}

	if max := int((bottom - top) / lineH); len(lines) > max {
		lines = lines[:max]
	}

	baseline := top + r.pdf.PointConvert(size)
	for _, line := range lines {
		r.pdf.Text(x, baseline, line)
		baseline += lineH
	}
	return baseline - r.pdf.PointConvert(size)
}

// drawCode draws highlighted code line by line in the mono role. The size
// shrinks until the longest line fits the width and all lines fit the
// height, flooring at minFontSize; leftover lines are dropped.
func (r *CardRenderer) drawCode(code, language string, x, top, w, bottom float64) {
	lines := HighlightLines(code, language)
	if len(lines) == 0 {
		return
	}

	size := codeFontSize
	var lineH float64
	for {
		r.setFont(r.fonts.Mono, size)
		lineH = r.pdf.PointConvert(size) * leading
		if size <= minFontSize {
			break
		}
		if r.widestLine(lines) <= w && float64(len(lines))*lineH <= bottom-top {
			break
		}
		size -= shrinkStep
	}

	if max := int((bottom - top) / lineH); len(lines) > max {
		lines = lines[:max]
	}

	baseline := top + r.pdf.PointConvert(size)
	for _, spans := range lines {
		xc := x
		for _, span := range spans {
			r.pdf.SetTextColor(int(span.R), int(span.G), int(span.B))
			r.setSpanFont(span, size)
			txt := r.fonts.Text(r.fonts.Mono, span.Text)
			r.pdf.Text(xc, baseline, txt)
			xc += r.pdf.GetStringWidth(txt)
		}
		baseline += lineH
	}
	r.pdf.SetTextColor(0, 0, 0)
	r.setFont(r.fonts.Mono, size)
}

// widestLine measures the longest code line with the current font.
func (r *CardRenderer) widestLine(lines [][]Span) float64 {
	widest := 0.0
	for _, spans := range lines {
		lw := 0.0
		for _, span := range spans {
			lw += r.pdf.GetStringWidth(r.fonts.Text(r.fonts.Mono, span.Text))
		}
		if lw > widest {
			widest = lw
		}
	}
	return widest
}

// setSpanFont applies bold token weight, but only for core fonts: the
// custom mono face is registered in a single style.
func (r *CardRenderer) setSpanFont(span Span, size float64) {
	role := r.fonts.Mono
	if span.Bold && !role.Custom {
		r.pdf.SetFont(role.Family, "B", size)
		return
	}
	r.setFont(role, size)
}

func (r *CardRenderer) setFont(role FontRole, size float64) {
	r.pdf.SetFont(role.Family, role.Style, size)
}
