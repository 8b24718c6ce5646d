// Package style describes how document elements are laid out on braille
// pages and resolves element styles from a style sheet.
package style

//go:generate go tool go-enum --marshal --names --nocase --mustparse

import (
	"utdfmt/common"
	"utdfmt/pagenum"
)

// FormatKind selects formatter used for an element. The set is closed.
// ENUM(literary, skip-lines, page-indicator, box, table, dont-format)
type FormatKind int

// Style is a resolved set of layout properties for an element. Margins are
// absolute cell positions, FirstLineIndent is relative to LeftMargin.
type Style struct {
	Name   string
	Format FormatKind
	Inline bool

	Align           common.Align
	LeftMargin      int
	RightMargin     int
	FirstLineIndent int

	LinesBefore int
	LinesAfter  int
	PagesBefore int
	PagesAfter  int
	// LineSpacing is blank lines between text lines, negative to inherit
	// document setting.
	LineSpacing int
	// SkipLines is the number of blank lines produced by skip-lines format.
	SkipLines int

	KeepWithNext bool
	DontSplit    bool
	GuideWords   bool
	TitlePage    bool
	VolumeEnd    bool

	PageNumberType    pagenum.Type
	HasPageNumberType bool
	// PageNumberReset restarts numbering of PageNumberType at 1.
	PageNumberReset bool
}

// Default returns style of an element nothing in the style sheet matched.
func Default(name string) *Style {
	return &Style{Name: name, LineSpacing: -1}
}

// FirstLineStart is the cell where the first line of a block starts.
func (s *Style) FirstLineStart() int {
	return max(s.LeftMargin+s.FirstLineIndent, 0)
}
