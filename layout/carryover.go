package layout

import (
	"slices"

	"utdfmt/common"
	"utdfmt/pagenum"
)

// BlockState is layout of the block currently being filled. Margins are in
// cells, Right is counted from the right edge of the page.
type BlockState struct {
	Left        int
	FirstLine   int
	Right       int
	Align       common.Align
	LineSpacing int
	GuideWords  bool
	// OnFirstLine stays set until the first line of the block is finished.
	OnFirstLine bool
	// Start stays set until the first cell of the block is written.
	Start bool
	Depth int
}

// PrintPage is the print page the text currently belongs to.
type PrintPage struct {
	Label    string
	Letter   string
	Combined string
	Skip     bool
}

// Number is untranslated number shown on the braille page.
func (pp PrintPage) Number() string {
	if pp.Combined != "" {
		return pp.Combined
	}
	return pp.Label
}

func (pp PrintPage) Text() string {
	return pp.Number() + pp.Letter
}

// Spacing is blank lines and pages requested before the next text.
// Requests combine by taking the larger value.
type Spacing struct {
	Lines int
	Pages int
	// Explicit lines are kept at the top of page.
	Explicit bool
	// Block lines are at least line spacing.
	Block bool
	// Volume ends the current volume.
	Volume bool
}

func (s Spacing) merge(o Spacing) Spacing {
	return Spacing{
		Lines:    max(s.Lines, o.Lines),
		Pages:    max(s.Pages, o.Pages),
		Explicit: s.Explicit || o.Explicit,
		Block:    s.Block || o.Block,
		Volume:   s.Volume || o.Volume,
	}
}

func (s Spacing) empty() bool {
	return s.Lines <= 0 && s.Pages <= 0 && !s.Block && !s.Volume
}

// Carryover is everything a new page inherits from the page before it. It is
// built once per page break, or from document markers when formatting
// resumes, and never changes afterwards.
type Carryover struct {
	Block BlockState
	// Tracker numbers the previous page, the new page continues from it.
	Tracker     pagenum.Tracker
	NextType    pagenum.Type
	HasNextType bool
	// ResetNext restarts numbering of NextType at 1.
	ResetNext bool
	Print       PrintPage
	// PrintFresh means print page starts on the new page and keeps its
	// continuation letter.
	PrintFresh  bool
	RunningHead string
	GuideStart  string
	// Ordinal of the previous page, 0 before the first one.
	Ordinal   int
	TitlePage bool
	Forced    bool
	Pending   Spacing

	chain chainState
}

func (c chainState) clone() chainState {
	c.entries = slices.Clone(c.entries)
	return c
}
