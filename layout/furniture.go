package layout

import (
	"strings"

	"go.uber.org/zap"

	"utdfmt/common"
	"utdfmt/pagenum"
	"utdfmt/utd"
)

// placeFurniture writes page numbers and running head. Numbers go first so
// running head is centered in the space they leave.
func (p *PageBuilder) placeFurniture() {
	st := &p.s.Settings
	if !p.skipNumber && st.BraillePageNumber != common.PageNumberPositionNone {
		label, dots := p.tracker.Label(), p.tracker.Dots(st.Translator)
		id := p.s.Arena.DerivedChunk(utd.TagBrlPageNum, utd.BrlPageNumAttrs(label, dots), dots, utd.Nowhere)
		p.placeNumber(st.BraillePageNumber, id, SegmentKindBrailleNumber)
	}
	p.placePrintNumber()
	p.placeRunningHead()
}

func (p *PageBuilder) placePrintNumber() {
	st := &p.s.Settings
	if p.print.Label == "" || p.print.Skip || st.PrintPageNumber == common.PageNumberPositionNone {
		return
	}
	dots := st.Translator.Translate(p.print.Text())
	attrs := utd.PrintPageNumAttrs(p.print.Number(), dots, p.print.Letter, p.tracker.Type().String())
	id := p.s.Arena.DerivedChunk(utd.TagPrintPageNum, attrs, dots, utd.Nowhere)
	p.placeNumber(st.PrintPageNumber, id, SegmentKindPrintNumber)
}

// placeNumber puts number into page corner, moving it away from cells
// already there.
func (p *PageBuilder) placeNumber(pos common.PageNumberPosition, id utd.ChunkID, kind SegmentKind) {
	g := p.grid
	text := p.s.Arena.Chunk(id).Text
	n := len(text)
	if n == 0 || n > g.Width() {
		return
	}
	y := 0
	if pos.IsBottom() {
		y = g.Height() - 1
	}
	x := -1
	if pos.IsLeft() {
		for s := 0; s+n <= g.Width(); {
			occupied := g.lastOccupied(s, y, n)
			if occupied < 0 {
				x = s
				break
			}
			s = occupied + 2
		}
	} else {
		for e := g.Width(); e-n >= 0; {
			occupied := g.firstOccupied(e-n, y, n)
			if occupied < 0 {
				x = e - n
				break
			}
			e = occupied - 1
		}
	}
	if x < 0 {
		p.s.Log.Debug("No room for page number", zap.Int("ordinal", p.ordinal), zap.Stringer("kind", kind))
		return
	}
	seg := p.newSegment(kind, 0, g.Width(), common.AlignLeft)
	for i, r := range text {
		g.SetCell(x+i, y, Cell{Char: r, Ref: utd.Ref{Chunk: id, Index: i}, Segment: seg})
	}
}

func (p *PageBuilder) placeRunningHead() {
	p.headShown = false
	if p.runningHead == "" || p.titlePage || p.tracker.Type() == pagenum.TPage {
		return
	}
	left, right := p.freeSpan(0)
	text := []rune(p.runningHead)
	if right-left <= 0 {
		return
	}
	if len(text) > right-left {
		text = text[:right-left]
	}
	id := p.s.Arena.BrlOnly(utd.BrlOnlyRunningHead, string(text), utd.Nowhere)
	seg := p.newSegment(SegmentKindRunningHead, left, right, common.AlignCenter)
	for i, r := range text {
		p.grid.SetCell(left+i, 0, Cell{Char: r, Ref: utd.Ref{Chunk: id, Index: i}, Segment: seg})
	}
	p.grid.Align(seg, 0)
	p.headShown = true
}

// freeSpan is part of line y away from reserved cells by padding.
func (p *PageBuilder) freeSpan(y int) (int, int) {
	w, pad := p.grid.Width(), p.tracker.Padding()
	left, right := p.grid.reservedSpan(y)
	if left > 0 {
		left += pad
	}
	if right < w {
		right -= pad
	}
	return left, right
}

// guideState tracks first and last guide word of the page. Start is
// inherited from the previous page until an entry begins at the top of
// this one.
type guideState struct {
	start     string
	end       string
	alternate string
	endChunk  utd.ChunkID
	own       bool
	// closing is the end word used when page was closed
	closing string
}

func (g *guideState) register(word string, id utd.ChunkID, top bool) {
	if word == "" {
		return
	}
	if g.start == "" || (top && !g.own) {
		g.start = word
	}
	g.own = true
	if g.end != "" {
		g.alternate = g.end
	}
	g.end, g.endChunk = word, id
}

// finishGuideWords writes guide words into otherwise blank last line.
func (p *PageBuilder) finishGuideWords() {
	g := &p.guide
	if !p.s.Settings.GuideWords || g.start == "" {
		return
	}
	end := g.end
	if end != "" && !p.grid.hasChunk(g.endChunk) {
		// entry was moved to the next page
		end = g.alternate
	}
	if end == "" {
		end = g.start
	}
	g.closing = end

	y := p.grid.Height() - 1
	if !p.grid.IsEmptyNumberLine(y) || !p.grid.HasContent() {
		return
	}
	text := g.start
	if end != g.start {
		text += "-" + end
	}
	left, right := p.freeSpan(y)
	runes := []rune(text)
	if right-left <= 0 {
		return
	}
	if len(runes) > right-left {
		runes = runes[:right-left]
	}
	id := p.s.Arena.BrlOnly(utd.BrlOnlyGuideWord, string(runes), utd.Nowhere)
	seg := p.newSegment(SegmentKindGuideWord, left, right, common.AlignLeft)
	for i, r := range runes {
		p.grid.SetCell(left+i, y, Cell{Char: r, Ref: utd.Ref{Chunk: id, Index: i}, Segment: seg})
	}
}

// placeLineNumber puts line number at the right margin of the current line.
func (p *PageBuilder) placeLineNumber(id utd.ChunkID, at int, number string) {
	dots := []rune(p.s.Settings.Translator.Translate(number))
	w := p.grid.Width()
	x := w - len(dots)
	if len(dots) == 0 || x <= 0 || !p.grid.free(nil, x, p.y, len(dots)) {
		p.s.Log.Debug("No room for line number", zap.String("number", number), zap.Int("line", p.y))
		return
	}
	lid := p.s.Arena.BrlOnly(utd.BrlOnlyLineNumber, string(dots), utd.Ref{Chunk: id, Index: at})
	seg := p.newSegment(SegmentKindLineNumber, x, w, common.AlignLeft)
	for i, r := range dots {
		p.grid.SetCell(x+i, p.y, Cell{Char: r, Ref: utd.Ref{Chunk: lid, Index: i}, Segment: seg})
	}
}

// PrintPageIndicator starts print page label. Indicator at the top of a page
// changes print number of the page, elsewhere a separator line with the
// number is written. Anchor is document position of the indicator or
// utd.Nowhere.
func (p *PageBuilder) PrintPageIndicator(label string, anchor utd.Ref) []*PageBuilder {
	pbs := []*PageBuilder{p}
	p.placeSeparator(&pbs, p.s.printPage(label, p.ordinal), anchor)
	return pbs
}

func (p *PageBuilder) placeSeparator(pbs *[]*PageBuilder, pp PrintPage, anchor utd.Ref) *PageBuilder {
	p.endLine()
	for {
		p.record(chainEntry{kind: entrySeparator, print: pp, anchor: anchor})
		p = p.ready(pbs)
		if !p.takeRestart() {
			break
		}
	}
	if p.atTop() {
		p.print, p.printFresh = pp, true
		p.syncLetter()
		p.grid.Remove(func(c Cell) bool { return c.Segment.Kind == SegmentKindPrintNumber })
		p.placePrintNumber()
		return p
	}

	dots := []rune(p.s.Settings.Translator.Translate(pp.Text()))
	left, right := p.freeSpan(p.y)
	fill := max(right-left-len(dots)-1, 0)
	line := []rune(strings.Repeat(separatorDots, fill))
	if fill > 0 {
		line = append(line, ' ')
	}
	line = append(line, dots...)
	if len(line) > right-left {
		line = line[:max(right-left, 0)]
	}
	attrs := utd.PrintPageNumAttrs(pp.Number(), string(dots), pp.Letter, p.tracker.Type().String())
	id := p.s.Arena.DerivedChunk(utd.TagPrintPageNum, attrs, string(line), anchor)
	seg := p.newSegment(SegmentKindSeparator, left, right, common.AlignLeft)
	for i, r := range line {
		p.grid.SetCell(left+i, p.y, Cell{Char: r, Ref: utd.Ref{Chunk: id, Index: i}, Segment: seg})
	}
	p.print = pp
	p.syncLetter()
	p.y++
	p.x = 0
	return p
}

// separatorDots is dots 36 in braille ASCII.
const separatorDots = "-"

// BoxLine writes a line of c framing boxed text. Current line must be
// empty.
func (p *PageBuilder) BoxLine(c rune, anchor utd.Ref) []*PageBuilder {
	if p.seg != nil {
		panic("box line requested on a line which already has text")
	}
	pbs := []*PageBuilder{p}
	p.placeBoxLine(&pbs, c, anchor)
	return pbs
}

func (p *PageBuilder) placeBoxLine(pbs *[]*PageBuilder, c rune, anchor utd.Ref) *PageBuilder {
	for {
		p.record(chainEntry{kind: entryBox, char: c, anchor: anchor})
		p = p.ready(pbs)
		if !p.takeRestart() {
			break
		}
	}
	left, right := p.bounds(p.y, false)
	if right <= left {
		return p
	}
	text := strings.Repeat(string(c), right-left)
	id := p.s.Arena.BrlOnly(utd.BrlOnlyInsertion, text, anchor)
	seg := p.newSegment(SegmentKindSeparator, left, right, common.AlignLeft)
	for i, r := range []rune(text) {
		p.grid.SetCell(left+i, p.y, Cell{Char: r, Ref: utd.Ref{Chunk: id, Index: i}, Segment: seg})
	}
	p.y++
	p.x = 0
	return p
}
