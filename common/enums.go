// Package common keeps enumerations shared between configuration and the
// formatting engine. Keeping them here avoids import cycles between config
// and layout packages.
package common

//go:generate go tool go-enum --marshal --names --nocase --mustparse

import "strings"

// Position of a page number on the braille page.
// ENUM(none, top-left, top-right, bottom-left, bottom-right)
type PageNumberPosition int

func (p PageNumberPosition) IsTop() bool {
	return p == PageNumberPositionTopLeft || p == PageNumberPositionTopRight
}

func (p PageNumberPosition) IsBottom() bool {
	return p == PageNumberPositionBottomLeft || p == PageNumberPositionBottomRight
}

func (p PageNumberPosition) IsLeft() bool {
	return p == PageNumberPositionTopLeft || p == PageNumberPositionBottomLeft
}

// Braille code selects line break rules and number sign conventions.
// ENUM(ueb, ebae)
type BrailleCode int

// Horizontal alignment of a text segment on its line.
// ENUM(left, center, right)
type Align int

// ParseTextAlign accepts alignment names, "centered" and "justify" (treated
// as left) are accepted for compatibility with print style sheets.
func ParseTextAlign(name string) (Align, error) {
	switch strings.ToLower(name) {
	case "centered":
		return AlignCenter, nil
	case "justify", "start":
		return AlignLeft, nil
	case "end":
		return AlignRight, nil
	}
	return ParseAlign(name)
}
