package layout

import (
	"go.uber.org/zap"

	"utdfmt/pagenum"
	"utdfmt/utd"
)

type breakKind int

const (
	breakOverflow breakKind = iota
	breakForced
	breakBlank
)

func (s *Session) newPage(c Carryover) *PageBuilder {
	st := &s.Settings
	ordinal := c.Ordinal + 1
	p := &PageBuilder{
		s:           s,
		from:        c,
		grid:        NewPageGrid(st.CellsPerLine, st.LinesPerPage, !st.Interpoint || ordinal%2 == 1),
		ordinal:     ordinal,
		forced:      c.Forced,
		titlePage:   c.TitlePage,
		runningHead: c.RunningHead,
		print:       c.Print,
		block:       c.Block,
		pending:     c.Pending,
		chain:       c.chain.clone(),
	}
	p.guide.start = c.GuideStart

	typ := c.Tracker.Type()
	if c.HasNextType {
		typ = c.NextType
	}
	p.reset = c.HasNextType && c.ResetNext
	if p.reset {
		p.tracker = c.Tracker.ResetNumberCounters(typ, st.ContinuePages)
	} else {
		p.tracker = c.Tracker.NextPage(typ, st.ContinuePages)
	}
	p.applyOverrides()
	p.syncLetter()
	if p.print.Label != "" && !c.PrintFresh {
		p.tracker = p.tracker.NextContinuationLetter()
		p.print.Letter = p.tracker.ContinuationLetter()
	}
	p.placeFurniture()
	p.y = p.topLine()

	s.Log.Debug("Page started",
		zap.Int("ordinal", ordinal),
		zap.String("number", p.tracker.Label()),
		zap.String("print", p.print.Text()),
		zap.Bool("forced", p.forced))
	return p
}

// applyOverrides renumbers the page according to manual braille overrides
// matching its label. Override whose new label is original of another one
// is followed.
func (p *PageBuilder) applyOverrides() {
	list := p.s.Overrides
	for range list {
		o := list.FindUnused(utd.OverrideKindBraille, p.tracker.Label(), p.s.volume)
		if o == nil {
			return
		}
		o.Used = p.ordinal
		p.overrideBlank = p.overrideBlank || o.Blank
		p.skipNumber = p.skipNumber || o.Skip
		if o.RunHead != "" {
			p.runningHead = o.RunHead
		}

		typ := p.tracker.Type()
		if o.PageType != "" {
			t, err := pagenum.ParseType(o.PageType)
			if err != nil {
				p.s.Log.Warn("Ignoring page type of braille page override", zap.Stringer("override", o), zap.Error(err))
			} else {
				typ = t
			}
		}
		switch {
		case o.New != "":
			n, ntyp, ok := pagenum.DecodeNumber(o.New)
			if !ok {
				p.s.Log.Warn("Unable to decode braille page override, keeping sequential number", zap.Stringer("override", o))
				continue
			}
			if ntyp != pagenum.Normal {
				typ = ntyp
			}
			p.tracker = p.tracker.WithNumber(typ, n)
			p.nonsequential = true
		case typ != p.tracker.Type():
			// retyped page continues sequence of typ, others are left alone
			t := p.from.Tracker.SetPageNumberTypeContinue(typ)
			if p.from.Tracker.Count(typ) > 0 {
				t = t.NextPage(typ, true)
			}
			p.tracker = t.WithContinuationLetter(p.tracker.ContinuationLetter())
		}
	}
}

// syncLetter makes tracker carry continuation letter of the print page.
func (p *PageBuilder) syncLetter() {
	p.tracker = p.tracker.WithContinuationLetter(p.print.Letter)
}

// releaseOverrides makes braille overrides applied to this page available
// again.
func (p *PageBuilder) releaseOverrides() {
	for _, o := range p.s.Overrides {
		if o.Kind == utd.OverrideKindBraille && o.Used == p.ordinal {
			o.Used = 0
		}
	}
}

// breakPage closes the page and starts the next one. On overflow pending
// keep-with-next group moves to the new page.
func (p *PageBuilder) breakPage(pbs *[]*PageBuilder, kind breakKind) *PageBuilder {
	p.endSegment()
	var moved []chainEntry
	if kind == breakOverflow {
		moved = p.detachGroup()
	}
	p.close()
	np := p.s.newPage(p.carryover(kind))
	*pbs = append(*pbs, np)
	if len(moved) > 0 {
		return np.replay(pbs, moved)
	}
	return np
}

// close finalizes page content. A page left without content which was not
// meant to be blank is discarded and its number is given to the next page.
func (p *PageBuilder) close() {
	if p.closed {
		return
	}
	p.closed = true
	p.endSegment()
	p.finishGuideWords()
	if p.blank || p.grid.HasContent() {
		return
	}
	p.discarded = true
	p.grid.Remove(func(c Cell) bool { return !c.Segment.Kind.IsContent() })
	p.releaseOverrides()
	p.s.Log.Debug("Discarding blank page", zap.Int("ordinal", p.ordinal), zap.String("number", p.tracker.Label()))
}

func (p *PageBuilder) carryover(kind breakKind) Carryover {
	c := Carryover{
		Block:       p.block,
		Tracker:     p.tracker,
		NextType:    p.nextType,
		HasNextType: p.hasNextType,
		ResetNext:   p.nextReset,
		Print:       p.print,
		RunningHead: p.runningHead,
		GuideStart:  p.guide.closing,
		Ordinal:     p.ordinal,
		TitlePage:   p.nextTitle,
		Forced:      kind == breakForced,
		Pending:     p.pending,
		chain:       p.chain,
	}
	if !p.discarded {
		return c
	}
	// page is dropped, numbering continues as if it never existed
	c.Tracker = p.from.Tracker
	c.Ordinal = p.from.Ordinal
	if !c.HasNextType {
		c.NextType, c.HasNextType = p.tracker.Type(), true
		c.ResetNext = p.reset
	}
	c.RunningHead = p.from.RunningHead
	c.GuideStart = p.from.GuideStart
	c.Print, c.PrintFresh = p.from.Print, p.from.PrintFresh
	if p.printFresh {
		c.Print, c.PrintFresh = p.print, true
	}
	c.Forced = c.Forced || p.forced
	c.TitlePage = c.TitlePage || p.titlePage
	return c
}
