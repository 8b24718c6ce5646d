package layout

import (
	"go.uber.org/zap"

	"utdfmt/common"
	"utdfmt/pagenum"
	"utdfmt/style"
)

// PageBuilder fills one braille page. It is created by Session for the first
// page (or resume point) and spawns its successor when it overflows. Once
// successor exists the page is closed and only read.
type PageBuilder struct {
	s    *Session
	from Carryover
	grid *PageGrid

	ordinal       int
	tracker       pagenum.Tracker
	nonsequential bool
	forced        bool
	skipNumber    bool

	// blank page is kept even without content
	blank         bool
	overrideBlank bool
	closed        bool
	discarded     bool
	written       bool

	titlePage   bool
	nextTitle   bool
	nextType    pagenum.Type
	hasNextType bool
	nextReset   bool
	// tracker was restarted at 1 for this page
	reset bool

	runningHead string
	headShown   bool

	print      PrintPage
	printFresh bool

	block   BlockState
	pending Spacing
	x, y    int
	seg     *SegmentInfo

	chain   chainState
	restart *chainEntry
	guide   guideState
}

func (p *PageBuilder) Ordinal() int              { return p.ordinal }
func (p *PageBuilder) Tracker() pagenum.Tracker { return p.tracker }
func (p *PageBuilder) Grid() *PageGrid          { return p.grid }
func (p *PageBuilder) Print() PrintPage         { return p.print }
func (p *PageBuilder) Discarded() bool          { return p.discarded }
func (p *PageBuilder) Forced() bool             { return p.forced }
func (p *PageBuilder) Nonsequential() bool      { return p.nonsequential }
func (p *PageBuilder) RunningHead() string      { return p.runningHead }

// Cursor returns position the next cell is written to.
func (p *PageBuilder) Cursor() (int, int) { return p.x, p.y }

// empty reports page nothing was written to yet.
func (p *PageBuilder) empty() bool {
	return !p.blank && !p.grid.HasContent()
}

func (p *PageBuilder) topLine() int {
	if p.headShown {
		return 1
	}
	return 0
}

// atTop reports cursor at the first text line of an empty page.
func (p *PageBuilder) atTop() bool {
	return p.empty() && p.y <= p.topLine()
}

func (p *PageBuilder) newSegment(kind SegmentKind, left, right int, align common.Align) *SegmentInfo {
	seg := &SegmentInfo{
		ID:    p.s.nextSegment(),
		Kind:  kind,
		Left:  left,
		Right: right,
		Align: align,
	}
	if kind.IsContent() && p.chain.active {
		seg.Group = p.chain.group
	}
	return seg
}

func (p *PageBuilder) endSegment() {
	if p.seg == nil {
		return
	}
	p.grid.Align(p.seg, p.y)
	p.seg = nil
}

func (p *PageBuilder) applyStyle(st *style.Style) {
	b := &p.block
	w := p.grid.Width()
	b.Left = max(st.LeftMargin, 0)
	b.FirstLine = st.FirstLineStart()
	b.Right = max(st.RightMargin, 0)
	if b.Left+b.Right >= w || b.FirstLine+b.Right >= w {
		p.s.Log.Warn("Style margins leave no room for text, ignoring",
			zap.String("style", st.Name), zap.Int("left", b.Left), zap.Int("right", b.Right))
		b.Left, b.FirstLine, b.Right = 0, 0, 0
	}
	b.Align = st.Align
	b.LineSpacing = p.s.Settings.LineSpacing
	if st.LineSpacing >= 0 {
		b.LineSpacing = min(st.LineSpacing, p.grid.Height()-1)
	}
	b.GuideWords = st.GuideWords
}

// StartBlock begins block element formatted with st.
func (p *PageBuilder) StartBlock(st *style.Style) {
	p.endLine()
	p.pending = p.pending.merge(Spacing{Lines: st.LinesBefore, Pages: st.PagesBefore, Block: true})
	if st.TitlePage {
		p.startTitlePage()
	}
	if st.HasPageNumberType {
		p.switchType(st.PageNumberType, st.PageNumberReset)
	}
	p.applyStyle(st)
	p.block.OnFirstLine = true
	p.block.Start = true
	p.block.Depth++
	p.chainStartBlock(st)
}

// ResumeBlock restores block state when formatting resumes inside of a
// block. Spacing before block has been realized by the original pass.
func (p *PageBuilder) ResumeBlock(st *style.Style, first bool) {
	if first && st.TitlePage {
		p.startTitlePage()
	}
	if st.HasPageNumberType {
		p.switchType(st.PageNumberType, false)
	}
	p.applyStyle(st)
	p.block.OnFirstLine = first
	p.block.Start = first
	p.block.Depth++
	p.chainStartBlock(st)
}

// RestoreBlock returns to the enclosing block after a nested block ended.
func (p *PageBuilder) RestoreBlock(st *style.Style) {
	p.applyStyle(st)
	p.block.OnFirstLine = false
	p.block.Start = false
}

// EndBlock finishes block started by StartBlock.
func (p *PageBuilder) EndBlock(st *style.Style) {
	p.endLine()
	p.pending = p.pending.merge(Spacing{Lines: st.LinesAfter, Pages: st.PagesAfter, Block: true})
	if st.VolumeEnd {
		p.pending = p.pending.merge(Spacing{Pages: 1, Volume: true})
	}
	p.chainEndBlock(st)
	p.block.Depth--
}

// BreakLine finishes current line, next text starts on a new one.
func (p *PageBuilder) BreakLine() {
	p.endLine()
}

// SkipLines requests n blank lines which are kept even at the top of page.
func (p *PageBuilder) SkipLines(n int) {
	if n <= 0 {
		return
	}
	p.record(chainEntry{kind: entrySkip, lines: n})
	p.endLine()
	p.pending = p.pending.merge(Spacing{Lines: n, Explicit: true})
}

// endLine moves cursor to a new line unless current one is untouched.
func (p *PageBuilder) endLine() {
	if p.seg == nil {
		return
	}
	p.endSegment()
	p.block.OnFirstLine = false
	p.chainLineDone()
	p.y++
	p.x = 0
}

// newLine moves cursor to the next text line honoring line spacing.
func (p *PageBuilder) newLine() {
	if p.seg != nil {
		p.endSegment()
		p.block.OnFirstLine = false
		p.chainLineDone()
	}
	p.y += 1 + p.block.LineSpacing
	p.x = 0
}

func (p *PageBuilder) startTitlePage() {
	if !p.empty() {
		p.nextTitle = true
		p.pending = p.pending.merge(Spacing{Pages: 1})
		return
	}
	p.titlePage = true
	p.grid.Remove(func(c Cell) bool { return c.Segment.Kind == SegmentKindRunningHead })
	p.headShown = false
	p.y = p.topLine()
}

// switchType changes numbering type, an empty page is renumbered in place,
// otherwise the new type starts with the next page. With reset numbering of
// typ starts over at 1.
func (p *PageBuilder) switchType(typ pagenum.Type, reset bool) {
	if p.tracker.Type() == typ && !reset {
		return
	}
	if !p.empty() {
		p.nextType, p.hasNextType, p.nextReset = typ, true, reset
		p.pending = p.pending.merge(Spacing{Pages: 1})
		return
	}
	p.releaseOverrides()
	p.grid.Remove(func(c Cell) bool { return !c.Segment.Kind.IsContent() })
	p.nonsequential, p.skipNumber, p.overrideBlank = false, false, false
	p.runningHead = p.from.RunningHead
	p.reset = reset
	if reset {
		p.tracker = p.from.Tracker.ResetNumberCounters(typ, p.s.Settings.ContinuePages)
	} else {
		p.tracker = p.from.Tracker.NextPage(typ, p.s.Settings.ContinuePages)
	}
	p.applyOverrides()
	p.syncLetter()
	p.placeFurniture()
	p.y = p.topLine()
}
