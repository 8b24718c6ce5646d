package layout

import (
	"cmp"
	"slices"

	"go.uber.org/zap"

	"utdfmt/utd"
)

// Flush hands off closed page: reports it and writes its markers into the
// document. Markers of a page without text wait for the next page which has
// some.
func (s *Session) Flush(p *PageBuilder) {
	if p.written {
		return
	}
	p.close()
	p.written = true
	if p.discarded {
		return
	}
	s.pages++
	if s.OnPage != nil {
		s.OnPage(p)
	}
	if !s.writeUTD {
		return
	}
	s.pending = append(s.pending, p)
	anchor, ok := p.anchor()
	if !ok {
		return
	}
	for _, q := range s.pending {
		q.emit(anchor)
	}
	s.pending = s.pending[:0]
}

// Finish closes the last pages of the pass and writes all remaining markers.
func (s *Session) Finish(pbs []*PageBuilder) {
	for _, p := range pbs {
		s.Flush(p)
	}
	if len(s.pending) == 0 {
		return
	}
	last := s.Arena.Last()
	if !last.Valid() {
		s.Log.Debug("No text to attach page markers to", zap.Int("pages", len(s.pending)))
		s.pending = nil
		return
	}
	for _, p := range s.pending {
		p.emit(last)
	}
	s.pending = nil
}

// anchor returns the first position in document order of text on the page.
func (p *PageBuilder) anchor() (utd.Ref, bool) {
	a := p.s.Arena
	best := utd.Nowhere
	for _, c := range p.grid.cells {
		if c.Empty() {
			continue
		}
		if seq, _ := a.Position(c.Ref); seq < 0 {
			continue
		}
		if !best.Valid() || a.Compare(c.Ref, best) < 0 {
			best = c.Ref
		}
	}
	if !best.Valid() {
		return best, false
	}
	for ch := a.Chunk(best.Chunk); ch.Derived(); ch = a.Chunk(best.Chunk) {
		best = ch.Anchor
	}
	return best, true
}

type placedCell struct {
	Cell
	x, y int
}

// markWriter adds moveTo before a cell which does not continue previous one
// either in text or on the page.
type markWriter struct {
	a    *utd.Arena
	next utd.Ref
	x, y int
}

func newMarkWriter(a *utd.Arena) *markWriter {
	return &markWriter{a: a, next: utd.Nowhere, x: -2, y: -2}
}

func (m *markWriter) cell(c Cell, x, y int) {
	if !m.continues(c, x, y) {
		m.a.AddMark(c.Ref, utd.MoveToElement(x, y))
	}
	m.next = utd.Ref{Chunk: c.Ref.Chunk, Index: c.Ref.Index + 1}
	m.x, m.y = x, y
}

// continues reports cell right after the previous one both on the page and
// in text, derived text is continuous with the position it is anchored at.
func (m *markWriter) continues(c Cell, x, y int) bool {
	if y != m.y || x != m.x+1 {
		return false
	}
	if c.Ref == m.next {
		return true
	}
	if ch := m.a.Chunk(c.Ref.Chunk); c.Ref.Index == 0 && ch.Derived() && ch.Anchor == m.next {
		return true
	}
	prev := m.a.Chunk(m.next.Chunk)
	return prev.Derived() && m.next.Index == len(prev.Text) && prev.Anchor == c.Ref
}

// emit writes page markers: newPage and page furniture at anchor, moveTo
// markers for text in document order.
func (p *PageBuilder) emit(anchor utd.Ref) {
	a := p.s.Arena
	tr := p.s.Settings.Translator
	a.AddMark(anchor, utd.NewPageElement(p.tracker.Label(), p.tracker.Dots(tr), p.tracker.Type().String(), p.nonsequential, p.forced))

	reserved := make(map[utd.ChunkID]bool)
	var content []placedCell
	mw := newMarkWriter(a)
	for y := range p.grid.Height() {
		for x := range p.grid.Width() {
			c := p.grid.Cell(x, y)
			if c.Empty() {
				continue
			}
			id := c.Ref.Chunk
			if ch := a.Chunk(id); !reserved[id] && ch.Derived() && !ch.Anchor.Valid() {
				a.AttachAt(anchor, id)
				reserved[id] = true
			}
			if reserved[id] {
				mw.cell(c, x, y)
				continue
			}
			content = append(content, placedCell{Cell: c, x: x, y: y})
		}
	}

	slices.SortStableFunc(content, func(l, r placedCell) int { return p.s.compareCells(l.Cell, r.Cell) })
	mw = newMarkWriter(a)
	for _, pc := range content {
		if id := pc.Ref.Chunk; a.Chunk(id).Derived() && !a.Attached(id) {
			a.Attach(id)
		}
		mw.cell(pc.Cell, pc.x, pc.y)
	}
}

// compareCells orders cells in document order, derived text goes before the
// character it is anchored at.
func (s *Session) compareCells(l, r Cell) int {
	a := s.Arena
	if c := a.Compare(l.Ref, r.Ref); c != 0 {
		return c
	}
	ld, rd := a.Chunk(l.Ref.Chunk).Derived(), a.Chunk(r.Ref.Chunk).Derived()
	switch {
	case ld && !rd:
		return -1
	case !ld && rd:
		return 1
	}
	if c := cmp.Compare(l.Ref.Chunk, r.Ref.Chunk); c != 0 {
		return c
	}
	return cmp.Compare(l.Ref.Index, r.Ref.Index)
}
