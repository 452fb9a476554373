package layout

// Margins are the unprintable borders of the physical page, in mm.
type Margins struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// PrinterMargins matches the margins the original print workflow was
// calibrated against.
var PrinterMargins = Margins{Left: 7.21, Right: 7.21, Top: 15.1, Bottom: 15.1}

// GridSpec is the fixed card grid for a run: rows x cols cells of
// CardWidth x CardHeight mm, centered as a block on a PageWidth x
// PageHeight mm page.
type GridSpec struct {
	Rows       int
	Cols       int
	CardWidth  float64
	CardHeight float64
	PageWidth  float64
	PageHeight float64
}

// Capacity is the number of cards per sheet side.
func (g GridSpec) Capacity() int {
	return g.Rows * g.Cols
}

// Origin returns the top-left corner of the cell at (row, col).
// The grid block is centered on the page; row 0 is the top row.
func (g GridSpec) Origin(row, col int) (x, y float64) {
	x0 := (g.PageWidth - float64(g.Cols)*g.CardWidth) / 2
	y0 := (g.PageHeight - float64(g.Rows)*g.CardHeight) / 2
	return x0 + float64(col)*g.CardWidth, y0 + float64(row)*g.CardHeight
}

// MaximizeGrid computes how many cards of the given size fit on the page
// inside the margins. Both dimensions floor to whole cards.
func MaximizeGrid(cardW, cardH, pageW, pageH float64, m Margins) (rows, cols int) {
	cols = int((pageW - m.Left - m.Right) / cardW)
	rows = int((pageH - m.Top - m.Bottom) / cardH)
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return rows, cols
}
