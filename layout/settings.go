// Package layout places braille text on fixed size pages. PageBuilder owns a
// single page being filled, a Session ties pages of one formatting pass
// together and writes page markers back into the document.
package layout

import (
	"errors"
	"fmt"

	"utdfmt/common"
	"utdfmt/config"
	"utdfmt/linewrap"
	"utdfmt/pagenum"
)

// Settings are engine wide page parameters, fixed for a formatting pass.
type Settings struct {
	CellsPerLine      int
	LinesPerPage      int
	Interpoint        bool
	LineSpacing       int
	ContinuePages     bool
	PageNumberPadding int
	BraillePageNumber common.PageNumberPosition
	PrintPageNumber   common.PageNumberPosition
	RunningHead       string
	GuideWords        bool
	// MaxChainSplits is how many times a keep-with-next group may be moved
	// to the following page before it is allowed to split.
	MaxChainSplits int

	Wrapper    linewrap.Wrapper
	Translator pagenum.Translator
}

// NewSettings builds engine settings from configuration.
func NewSettings(cfg *config.EngineConfig, w linewrap.Wrapper) Settings {
	return Settings{
		CellsPerLine:      cfg.CellsPerLine,
		LinesPerPage:      cfg.LinesPerPage,
		Interpoint:        cfg.Interpoint,
		LineSpacing:       cfg.LineSpacing,
		ContinuePages:     cfg.ContinuePages,
		PageNumberPadding: cfg.PageNumberPadding,
		BraillePageNumber: cfg.BraillePageNumber,
		PrintPageNumber:   cfg.PrintPageNumber,
		RunningHead:       cfg.RunningHead,
		GuideWords:        cfg.GuideWords,
		MaxChainSplits:    cfg.MaxChainSplits,
		Wrapper:           w,
		Translator:        pagenum.ASCIITranslator{},
	}
}

func (s *Settings) validate() error {
	if s.Wrapper == nil {
		return errors.New("line wrapper is not set")
	}
	if s.Translator == nil {
		s.Translator = pagenum.ASCIITranslator{}
	}
	if s.CellsPerLine <= 0 || s.LinesPerPage <= 0 {
		return fmt.Errorf("invalid page size %dx%d", s.CellsPerLine, s.LinesPerPage)
	}
	if s.LineSpacing < 0 || s.LineSpacing >= s.LinesPerPage {
		return fmt.Errorf("invalid line spacing %d", s.LineSpacing)
	}
	return nil
}
