package layout

import (
	"fmt"

	"github.com/beevik/etree"

	"utdfmt/utd"
)

// AddBrl lays out text of brl element starting at the cursor. Returned set
// starts with p and holds every page spawned while placing the text, the
// last one is where formatting continues.
func (p *PageBuilder) AddBrl(brl *etree.Element) []*PageBuilder {
	a := p.s.Arena
	id := a.TextChunk(brl)
	a.Touch(id)

	pbs := []*PageBuilder{p}
	cur := p.placeUnit(&pbs, id, 0, brl.SelectAttrValue(utd.AttrLineNumber, ""))
	if pron := brl.SelectAttrValue(utd.AttrPronunciation, ""); pron != "" {
		at := utd.Ref{Chunk: id, Index: len(a.Chunk(id).Text)}
		pid := a.BrlOnly(utd.BrlOnlyPronunciation, " "+pron, at)
		cur.placeUnit(&pbs, pid, 0, "")
	}
	return pbs
}

// AddText places text which is not part of the document, such as separator
// between table cells. Anchor is its position in document order.
func (p *PageBuilder) AddText(text string, anchor utd.Ref) []*PageBuilder {
	id := p.s.Arena.BrlOnly(utd.BrlOnlyInsertion, text, anchor)
	pbs := []*PageBuilder{p}
	p.placeUnit(&pbs, id, 0, "")
	return pbs
}

func (p *PageBuilder) placeUnit(pbs *[]*PageBuilder, id utd.ChunkID, start int, lineNumber string) *PageBuilder {
	for {
		cur, done := p.tryUnit(pbs, id, start, lineNumber)
		if done {
			return cur
		}
		p = cur
	}
}

// tryUnit places text of chunk id from offset start. Returns false when a
// keep-with-next group has been moved to a new page and the unit has to be
// placed again there.
func (p *PageBuilder) tryUnit(pbs *[]*PageBuilder, id utd.ChunkID, start int, lineNumber string) (*PageBuilder, bool) {
	wrapper := p.s.Settings.Wrapper
	text := p.s.Arena.Chunk(id).Text
	if start < 0 || start > len(text) {
		panic(fmt.Sprintf("offset %d is outside of chunk %d (%d)", start, id, len(text)))
	}
	p.record(chainEntry{kind: entryUnit, chunk: id, start: start, lineNumber: lineNumber})
	p.chainText()

	i := start
	if p.block.Start {
		i = skipSpaces(text, i)
	}
	if i >= len(text) {
		return p, true
	}
	guide := p.block.GuideWords && p.block.Start

	numbered := lineNumber == ""
	shortened := 0
	for i < len(text) {
		p = p.ready(pbs)
		if p.takeRestart() {
			return p, false
		}
		if guide {
			// entry belongs to the page its text starts on
			p.guide.register(firstWord(text[i:]), id, !p.grid.HasContent())
			guide = false
		}
		if !numbered {
			p.placeLineNumber(id, i, lineNumber)
			numbered = true
		}

		first := p.block.OnFirstLine
		lineStart, end := p.bounds(p.y, first)
		fresh := p.seg == nil
		if fresh {
			p.x = lineStart
			if isSpace(text[i]) {
				i++
				if i >= len(text) {
					break
				}
			}
		} else if p.x < lineStart {
			p.x = lineStart
		}
		avail := end - p.x
		if avail <= 0 {
			p.newLine()
			continue
		}
		if fresh && i > start {
			if ins, _, ok := wrapper.CheckStartLineInsertion(text, i); ok && len([]rune(ins)) < avail {
				p.insert(id, i, ins)
				avail = end - p.x
			}
		}

		// fits on line
		if len(text)-i <= avail {
			p.commit(id, i, len(text))
			i = len(text)
			break
		}

		bp, ok := wrapper.FindNextBreakPoint(text, i, avail)
		if ok && bp.Next > i {
			p.commit(id, i, bp.Pos)
			if bp.Insert != "" {
				p.insert(id, bp.InsertPos, bp.Insert)
			}
			i = bp.Next
			p.newLine()
			continue
		}

		// only spaces left
		if isBlank(text[i:]) {
			i = len(text)
			break
		}

		// word boundary at the cursor
		if isSpace(text[i]) {
			i = skipSpaces(text, i)
			p.newLine()
			continue
		}

		wordEnd := max(bp.Pos, i+1)
		word := wordEnd - i
		// word followed by spaces overflowing the line
		if trimmed := trimSpaces(text[i:wordEnd]); trimmed < word && trimmed > 0 && trimmed <= avail {
			p.commit(id, i, i+trimmed)
			i = skipSpaces(text, i+trimmed)
			p.newLine()
			continue
		}

		capacity := p.capacity(false)
		if fresh {
			capacity = p.capacity(first)
		}
		// longer than a line, or no line on the page is long enough
		if word > capacity || shortened > p.grid.Height() {
			p.commit(id, i, i+avail)
			i += avail
			shortened = 0
			p.newLine()
			continue
		}
		if fresh {
			// line is shortened by reserved cells
			shortened++
			p.newLine()
			continue
		}

		// beginning of the word came with previous text, move it too
		if n := p.pullBackLength(id, lineStart); n > 0 && n+word <= p.capacity(false) {
			cells := p.takeBack(n)
			p.newLine()
			p = p.ready(pbs)
			if p.takeRestart() {
				return p, false
			}
			p.x, _ = p.bounds(p.y, p.block.OnFirstLine)
			for _, c := range cells {
				p.put(c.Char, c.Ref)
			}
			continue
		}
		p.newLine()
	}
	return p, true
}

// bounds returns first cell and end (exclusive) of text on line y, keeping
// padding distance from reserved cells.
func (p *PageBuilder) bounds(y int, first bool) (int, int) {
	w := p.grid.Width()
	start := p.block.Left
	if first {
		start = p.block.FirstLine
	}
	end := w - p.block.Right
	if y >= 0 && y < p.grid.Height() {
		left, right := p.freeSpan(y)
		start, end = max(start, left), min(end, right)
	}
	return start, end
}

// capacity is width of a line without reserved cells.
func (p *PageBuilder) capacity(first bool) int {
	start := p.block.Left
	if first {
		start = p.block.FirstLine
	}
	return p.grid.Width() - p.block.Right - start
}

func (p *PageBuilder) commit(id utd.ChunkID, from, to int) {
	text := p.s.Arena.Chunk(id).Text
	for k := from; k < to; k++ {
		p.put(text[k], utd.Ref{Chunk: id, Index: k})
	}
}

func (p *PageBuilder) put(r rune, ref utd.Ref) {
	if p.seg == nil {
		left, right := p.bounds(p.y, p.block.OnFirstLine)
		p.seg = p.newSegment(SegmentKindContent, left, right, p.block.Align)
	}
	p.grid.SetCell(p.x, p.y, Cell{Char: r, Ref: ref, Segment: p.seg})
	p.x++
	p.block.Start = false
}

// insert writes dots the line breaking rules asked for as a derived chunk
// anchored before character at of chunk id.
func (p *PageBuilder) insert(id utd.ChunkID, at int, dots string) {
	did := p.s.Arena.BrlOnly(utd.BrlOnlyInsertion, dots, utd.Ref{Chunk: id, Index: at})
	for k, r := range []rune(dots) {
		p.put(r, utd.Ref{Chunk: did, Index: k})
	}
}

// pullBackLength counts cells at the end of current line which belong to a
// word started by previous text. Zero when the word takes the whole line.
func (p *PageBuilder) pullBackLength(id utd.ChunkID, lineStart int) int {
	if p.seg == nil {
		return 0
	}
	n := 0
	x := p.x - 1
	for ; x >= 0; x-- {
		c := p.grid.Cell(x, p.y)
		if c.Segment != p.seg || isSpace(c.Char) || c.Ref.Chunk == id {
			break
		}
		n++
	}
	if x < lineStart {
		return 0
	}
	return n
}

func (p *PageBuilder) takeBack(n int) []Cell {
	cells := make([]Cell, 0, n)
	for x := p.x - n; x < p.x; x++ {
		cells = append(cells, p.grid.Cell(x, p.y))
		p.grid.Clear(x, p.y)
	}
	p.x -= n
	return cells
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\u00a0'
}

func skipSpaces(text []rune, i int) int {
	for i < len(text) && isSpace(text[i]) {
		i++
	}
	return i
}

func isBlank(text []rune) bool {
	return skipSpaces(text, 0) == len(text)
}

// trimSpaces returns length of text without trailing spaces.
func trimSpaces(text []rune) int {
	n := len(text)
	for n > 0 && isSpace(text[n-1]) {
		n--
	}
	return n
}

func firstWord(text []rune) string {
	i := skipSpaces(text, 0)
	j := i
	for j < len(text) && !isSpace(text[j]) {
		j++
	}
	return string(text[i:j])
}
