// Package layout partitions parsed Q/A pairs into printable sheets and
// derives the mirrored back-page order needed for duplex printing.
package layout

import (
	"github.com/deeplook/pandas-100/pkg/models"
)

// MirrorIndex maps a front-slot index to the back-slot index holding its
// answer: the column order is reversed within each grid row, so the answer
// lands behind its question when the sheet is flipped along the vertical
// axis. Applying it twice returns the original index.
func MirrorIndex(i, cols int) int {
	row := i / cols
	col := i % cols
	return row*cols + (cols - 1 - col)
}

// Paginate chunks the cover (optional) and pairs into sheets of the given
// grid capacity, in document order. The last sheet's trailing slots stay
// empty. Zero content yields zero sheets.
func Paginate(cover *models.Cover, pairs []models.QAPair, rows, cols int) []models.Sheet {
	capacity := rows * cols

	var front []models.Slot
	if cover != nil {
		front = append(front, models.Slot{Kind: models.SlotCover, Cover: cover})
	}
	for i := range pairs {
		front = append(front, models.Slot{Kind: models.SlotQuestion, Pair: &pairs[i]})
	}

	var sheets []models.Sheet
	for start := 0; start < len(front); start += capacity {
		end := start + capacity
		if end > len(front) {
			end = len(front)
		}

		sheet := models.Sheet{
			Index: len(sheets),
			Front: make([]models.Slot, capacity),
			Back:  make([]models.Slot, capacity),
		}
		copy(sheet.Front, front[start:end])

		for i, slot := range sheet.Front {
			sheet.Back[MirrorIndex(i, cols)] = backOf(slot)
		}

		sheets = append(sheets, sheet)
	}

	return sheets
}

// backOf derives the back-side slot for a front slot. Questions flip to
// answers; the cover and empty slots have nothing on their back.
func backOf(front models.Slot) models.Slot {
	if front.Kind == models.SlotQuestion {
		return models.Slot{Kind: models.SlotAnswer, Pair: front.Pair}
	}
	return models.Slot{Kind: models.SlotEmpty}
}
