package layout

import (
	"fmt"

	"go.uber.org/zap"

	"utdfmt/common"
	"utdfmt/pagenum"
	"utdfmt/utd"
)

// Session is state shared by all pages of one formatting pass. Not safe for
// concurrent use.
type Session struct {
	Settings  Settings
	Arena     *utd.Arena
	Overrides utd.Overrides
	Log       *zap.Logger

	// OnPage is called for every page handed off, discarded pages are not
	// reported.
	OnPage func(*PageBuilder)

	writeUTD bool
	volume   int
	segments int
	groups   int
	pages    int
	// written pages without content to anchor markers to
	pending []*PageBuilder
}

// NewSession prepares formatting pass. When writeUTD is false pages are laid
// out but no markers are written into the document.
func NewSession(settings Settings, arena *utd.Arena, overrides utd.Overrides, writeUTD bool, log *zap.Logger) (*Session, error) {
	if err := settings.validate(); err != nil {
		return nil, fmt.Errorf("bad engine settings: %w", err)
	}
	return &Session{
		Settings:  settings,
		Arena:     arena,
		Overrides: overrides,
		Log:       log.Named("layout"),
		writeUTD:  writeUTD,
		volume:    1,
	}, nil
}

// DefaultBlock is block state before any style is applied.
func (s *Session) DefaultBlock() BlockState {
	return BlockState{
		Align:       common.AlignLeft,
		LineSpacing: s.Settings.LineSpacing,
		OnFirstLine: true,
		Start:       true,
	}
}

// Start creates the first page of the document.
func (s *Session) Start() *PageBuilder {
	return s.newPage(Carryover{
		Block:       s.DefaultBlock(),
		Tracker:     pagenum.NewTracker(pagenum.Normal, s.Settings.PageNumberPadding),
		RunningHead: s.Settings.RunningHead,
	})
}

// Resume creates page formatting continues on in the middle of a document.
func (s *Session) Resume(c Carryover) *PageBuilder {
	return s.newPage(c)
}

// Volume is 1 based number of the current volume.
func (s *Session) Volume() int { return s.volume }

func (s *Session) SetVolume(v int) { s.volume = max(v, 1) }

// Pages is the number of pages handed off so far.
func (s *Session) Pages() int { return s.pages }

func (s *Session) nextSegment() int {
	s.segments++
	return s.segments
}

func (s *Session) nextGroup() int {
	s.groups++
	return s.groups
}

// printPage starts print page label, applying manual overrides. Override
// whose new label is original of another one is followed.
func (s *Session) printPage(label string, ordinal int) PrintPage {
	pp := PrintPage{Label: label}
	for range s.Overrides {
		o := s.Overrides.FindUnused(utd.OverrideKindPrint, pp.Label, s.volume)
		if o == nil {
			break
		}
		o.Used = ordinal
		if o.New != "" {
			pp.Label = o.New
		}
		if o.ContinuationLetter != "" {
			pp.Letter = o.ContinuationLetter
		}
		if o.Combined != "" {
			pp.Combined = o.Combined
		}
		pp.Skip = pp.Skip || o.Skip
	}
	return pp
}
