package layout

//go:generate go tool go-enum --names

import (
	"utdfmt/common"
	"utdfmt/utd"
)

// SegmentKind tells what a run of cells on a line is.
// ENUM(content, separator, line-number, braille-number, print-number, running-head, guide-word)
type SegmentKind int

// IsContent reports cells which make a page non blank.
func (k SegmentKind) IsContent() bool {
	return k == SegmentKindContent || k == SegmentKindSeparator || k == SegmentKindLineNumber
}

// IsNumber reports page number cells.
func (k SegmentKind) IsNumber() bool {
	return k == SegmentKindBrailleNumber || k == SegmentKindPrintNumber
}

// reserves reports cells text must keep padding distance from.
func (k SegmentKind) reserves() bool {
	return k.IsNumber() || k == SegmentKindLineNumber
}

// SegmentInfo is identity and alignment of a run of cells written together.
// Left and Right are the bounds (Right exclusive) the run is aligned in.
type SegmentInfo struct {
	ID    int
	Kind  SegmentKind
	Left  int
	Right int
	Align common.Align
	// Group is keep-with-next group the segment belongs to, 0 if none.
	Group int
}

// Cell is a single braille cell. Zero value is an empty cell.
type Cell struct {
	Char    rune
	Ref     utd.Ref
	Segment *SegmentInfo
}

func (c Cell) Empty() bool { return c.Segment == nil }
