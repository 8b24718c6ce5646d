// Package pagenum keeps braille page numbering state.
package pagenum

import (
	"fmt"
	"strings"
)

// Type is a braille page numbering sequence.
type Type int

const (
	Normal Type = iota
	TPage
	PPage

	numTypes
)

var typeNames = [numTypes]string{"NORMAL", "T_PAGE", "P_PAGE"}

func (t Type) String() string {
	if t < 0 || t >= numTypes {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// Prefix is prepended to the number when the page label is produced.
func (t Type) Prefix() string {
	switch t {
	case TPage:
		return "t"
	case PPage:
		return "p"
	default:
		return ""
	}
}

// ParseType accepts both metadata spelling (T_PAGE) and stylesheet spelling
// (t-page).
func ParseType(s string) (Type, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, "-", "_")
	switch norm {
	case "NORMAL", "":
		return Normal, nil
	case "T_PAGE", "TPAGE", "T":
		return TPage, nil
	case "P_PAGE", "PPAGE", "P":
		return PPage, nil
	}
	return Normal, fmt.Errorf("unknown page number type %q", s)
}
