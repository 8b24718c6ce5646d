// Package linewrap finds line break positions in braille text.
package linewrap

// BreakPoint describes where a line ends.
type BreakPoint struct {
	// Pos is exclusive end of text kept on the current line.
	Pos int
	// Next is where the following line resumes, separators between Pos and
	// Next are consumed by the break.
	Next int
	// Insert is put at InsertPos (end of the kept text) when not empty, for
	// example a numeric continuation indicator.
	Insert    string
	InsertPos int
}

// Width is number of cells the line takes up to and including insertion.
func (bp BreakPoint) Width(start int) int {
	return bp.Pos - start + len([]rune(bp.Insert))
}

// Wrapper is a line breaking strategy for one braille code.
type Wrapper interface {
	// FindNextBreakPoint looks for the rightmost break position such that the
	// text from start up to it (with any insertion) takes no more than maxRun
	// cells. When nothing fits it returns false together with the nearest
	// candidate beyond the limit (or end of text), so the caller can decide
	// whether to move or split the word.
	FindNextBreakPoint(text []rune, start, maxRun int) (BreakPoint, bool)
	// CheckStartLineInsertion reports dots which must precede text when a new
	// line starts at start.
	CheckStartLineInsertion(text []rune, start int) (insert string, pos int, ok bool)
}
