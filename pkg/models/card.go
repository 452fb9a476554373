package models

// SlotKind identifies what a grid slot holds.
type SlotKind int

const (
	SlotEmpty SlotKind = iota
	SlotQuestion
	SlotAnswer
	SlotCover
)

// QAPair is one question/answer unit extracted from the source document.
// Index is the 1-based position in document order.
type QAPair struct {
	Index    int
	Question string
	Answer   string
	Language string
}

// Cover holds the document title and intro paragraphs rendered on the
// first card. Its back side stays empty.
type Cover struct {
	Title string
	Intro []string
}

// Slot is the content of one grid cell on one side of a sheet.
// Pair is set for question/answer slots, Cover for the cover slot.
type Slot struct {
	Kind  SlotKind
	Pair  *QAPair
	Cover *Cover
}

// Sheet is one physical page pair: a front layout and the column-mirrored
// back layout. Front and Back always have the same length (the grid
// capacity); Back[r*cols+c] answers Front[r*cols+(cols-1-c)].
type Sheet struct {
	Index int
	Front []Slot
	Back  []Slot
}
