// Package render turns parsed Q/A pairs into the final card-sheet PDF:
// font resolution, per-card drawing, and document assembly.
package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"github.com/deeplook/pandas-100/internal/config"
	"github.com/deeplook/pandas-100/internal/layout"
	"github.com/deeplook/pandas-100/internal/markdown"
	"github.com/deeplook/pandas-100/pkg/logger"
	"github.com/deeplook/pandas-100/pkg/models"
)

// Generator drives the full run: resolve fonts, parse, paginate, render
// every sheet as a front page immediately followed by its back page, then
// finalize the output file atomically.
type Generator struct {
	cfg *config.Config
	log *logger.Logger
}

func NewGenerator(cfg *config.Config, log *logger.Logger) *Generator {
	return &Generator{cfg: cfg, log: log}
}

// Generate reads the Markdown input and writes the card PDF. Sheets are
// emitted interleaved (front, back, front, back, ...) so a duplex printer
// can be fed sheet at a time; this ordering is a print-compat contract.
func (g *Generator) Generate(inputPath, outputPath string) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetLineCapStyle("round")

	fonts := ResolveFonts(pdf, g.cfg.FontDir, g.log)

	source, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	parser := markdown.New(g.cfg.HeadingLevel, g.cfg.Strict, g.cfg.Cover, g.log)
	cover, pairs, err := parser.Parse(source)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", inputPath, err)
	}
	g.log.Info("found %d question/answer pairs", len(pairs))

	title := "Quiz Cards"
	if cover != nil && cover.Title != "" {
		title = cover.Title
	}
	pdf.SetTitle(title, true)

	pageW, pageH := pdf.GetPageSize()
	grid := g.gridSpec(pageW, pageH)
	g.log.Debug("grid: %dx%d cards of %.0fx%.0f mm", grid.Rows, grid.Cols, grid.CardWidth, grid.CardHeight)

	sheets := layout.Paginate(cover, pairs, grid.Rows, grid.Cols)
	g.log.Info("laying out %d sheets", len(sheets))

	renderer := NewCardRenderer(pdf, fonts, g.cfg.Frame)

	if len(sheets) == 0 {
		// A structurally valid PDF needs at least one page object.
		pdf.AddPage()
	}
	for _, sheet := range sheets {
		g.renderSide(pdf, renderer, fonts, grid, sheet.Front)
		g.renderSide(pdf, renderer, fonts, grid, sheet.Back)
	}

	if pdf.Err() {
		return fmt.Errorf("rendering: %w", pdf.Error())
	}
	return writeAtomic(pdf, outputPath)
}

func (g *Generator) gridSpec(pageW, pageH float64) layout.GridSpec {
	rows, cols := g.cfg.Grid.Rows, g.cfg.Grid.Cols
	if rows < 1 || cols < 1 {
		rows, cols = layout.MaximizeGrid(
			g.cfg.CardSize.Width, g.cfg.CardSize.Height,
			pageW, pageH, layout.PrinterMargins)
	}
	return layout.GridSpec{
		Rows:       rows,
		Cols:       cols,
		CardWidth:  g.cfg.CardSize.Width,
		CardHeight: g.cfg.CardSize.Height,
		PageWidth:  pageW,
		PageHeight: pageH,
	}
}

func (g *Generator) renderSide(pdf *gofpdf.Fpdf, renderer *CardRenderer, fonts *FontSet, grid layout.GridSpec, slots []models.Slot) {
	pdf.AddPage()

	if g.cfg.SizeLabel {
		drawSizeLabel(pdf, fonts, grid)
	}

	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			x, y := grid.Origin(row, col)
			renderer.Draw(slots[row*grid.Cols+col], x, y, grid.CardWidth, grid.CardHeight)
		}
	}
}

// drawSizeLabel prints the paper/card dimensions above the grid block, as
// a cutting aid.
func drawSizeLabel(pdf *gofpdf.Fpdf, fonts *FontSet, grid layout.GridSpec) {
	label := fmt.Sprintf("paper: %3.0f x %3.0f mm, cards: %3.0f x %3.0f mm",
		grid.PageWidth, grid.PageHeight, grid.CardWidth, grid.CardHeight)

	x, y := grid.Origin(0, 0)
	pdf.SetFont(fonts.Regular.Family, fonts.Regular.Style, 8)
	pdf.Text(x, y-2, fonts.Text(fonts.Regular, label))
}

// writeAtomic streams the document to a temp file next to the destination
// and renames it into place, so an aborted run never leaves a partial PDF
// under the final name.
func writeAtomic(pdf *gofpdf.Fpdf, outputPath string) error {
	tmp, err := os.CreateTemp(filepath.Dir(outputPath), ".quizcards-*.pdf")
	if err != nil {
		return fmt.Errorf("creating temp output: %w", err)
	}

	if err := pdf.Output(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing PDF: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing temp output: %w", err)
	}
	if err := os.Rename(tmp.Name(), outputPath); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("finalizing output: %w", err)
	}
	return nil
}
