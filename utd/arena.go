package utd

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/beevik/etree"
)

// ChunkID is a stable handle of a braille text run.
type ChunkID int32

// NoChunk is the zero handle.
const NoChunk ChunkID = -1

// Ref points at a single character of a chunk.
type Ref struct {
	Chunk ChunkID
	Index int
}

// Valid reports whether ref points to a chunk.
func (r Ref) Valid() bool { return r.Chunk != NoChunk }

// Nowhere is invalid reference.
var Nowhere = Ref{Chunk: NoChunk}

// Chunk is either text of a <brl> element or a derived text (running head,
// page number, continuation insertion...) rendered as its own element.
type Chunk struct {
	ID   ChunkID
	Text []rune

	// text chunks
	Brl *etree.Element
	seq int

	// derived chunks
	Tag    string
	Attrs  []etree.Attr
	Anchor Ref

	marks    []mark
	touched  bool
	attached bool
}

// Derived reports chunk not backed by document text.
func (c *Chunk) Derived() bool { return c.Brl == nil }

type mark struct {
	index   int
	el      *etree.Element
	derived ChunkID
}

// Arena owns all chunks of a formatting pass.
type Arena struct {
	chunks []*Chunk
	byBrl  map[*etree.Element]ChunkID
	seq    int
}

func NewArena() *Arena {
	return &Arena{byBrl: make(map[*etree.Element]ChunkID)}
}

// Chunk returns chunk by handle, invalid handle is programming error.
func (a *Arena) Chunk(id ChunkID) *Chunk {
	if id < 0 || int(id) >= len(a.chunks) {
		panic(fmt.Sprintf("invalid chunk handle %d", id))
	}
	return a.chunks[id]
}

// Rune returns character ref points to.
func (a *Arena) Rune(r Ref) rune {
	return a.Chunk(r.Chunk).Text[r.Index]
}

// TextChunk returns chunk for the <brl> element, creating it on first use.
// Chunks are created in visiting order which is document order.
func (a *Arena) TextChunk(brl *etree.Element) ChunkID {
	if id, ok := a.byBrl[brl]; ok {
		return id
	}
	c := &Chunk{
		ID:   ChunkID(len(a.chunks)),
		Text: []rune(BrlText(brl)),
		Brl:  brl,
		seq:  a.seq,
	}
	a.seq++
	a.chunks = append(a.chunks, c)
	a.byBrl[brl] = c.ID
	return c.ID
}

// DerivedChunk creates text not present in the document. Anchor is where
// its element goes in document order, Nowhere for page reserved content
// which gets its anchor when the page is written. Chunk is not rendered
// until attached.
func (a *Arena) DerivedChunk(tag string, attrs []etree.Attr, text string, anchor Ref) ChunkID {
	c := &Chunk{
		ID:     ChunkID(len(a.chunks)),
		Text:   []rune(text),
		Tag:    tag,
		Attrs:  attrs,
		Anchor: anchor,
	}
	a.chunks = append(a.chunks, c)
	return c.ID
}

// BrlOnly creates derived braille only text of type typ.
func (a *Arena) BrlOnly(typ, text string, anchor Ref) ChunkID {
	return a.DerivedChunk(TagBrlOnly, []etree.Attr{{Key: AttrType, Value: typ}}, text, anchor)
}

// Attached reports whether derived chunk is already placed in its parent.
func (a *Arena) Attached(id ChunkID) bool {
	return a.Chunk(id).attached
}

// Attach puts derived chunk element at its anchor.
func (a *Arena) Attach(id ChunkID) {
	c := a.Chunk(id)
	if c.attached {
		panic(fmt.Sprintf("chunk %d is already attached", id))
	}
	if !c.Anchor.Valid() {
		panic(fmt.Sprintf("chunk %d has no anchor", id))
	}
	c.attached = true
	a.attach(c.Anchor, id)
}

// AttachAt anchors page reserved chunk at ref.
func (a *Arena) AttachAt(ref Ref, id ChunkID) {
	c := a.Chunk(id)
	if c.Anchor.Valid() {
		panic(fmt.Sprintf("chunk %d is already anchored", id))
	}
	c.Anchor = ref
	a.Attach(id)
}

func (a *Arena) attach(ref Ref, id ChunkID) {
	c := a.Chunk(ref.Chunk)
	c.marks = append(c.marks, mark{index: ref.Index, derived: id})
	a.touch(ref.Chunk)
}

// AddMark puts marker element before the character ref points to (or at the
// end of chunk when index equals its length).
func (a *Arena) AddMark(ref Ref, el *etree.Element) {
	c := a.Chunk(ref.Chunk)
	if ref.Index < 0 || ref.Index > len(c.Text) {
		panic(fmt.Sprintf("mark index %d outside of chunk %d (%d)", ref.Index, ref.Chunk, len(c.Text)))
	}
	c.marks = append(c.marks, mark{index: ref.Index, el: el})
	a.touch(ref.Chunk)
}

func (a *Arena) touch(id ChunkID) {
	for {
		c := a.Chunk(id)
		c.touched = true
		if !c.Derived() || !c.Anchor.Valid() {
			return
		}
		id = c.Anchor.Chunk
	}
}

// Touch marks text chunk as formatted so it is rendered even without marks.
func (a *Arena) Touch(id ChunkID) { a.touch(id) }

// Position returns document order key of the ref: sequence of the text
// chunk the ref (or its anchor) belongs to and index inside it.
func (a *Arena) Position(r Ref) (int, int) {
	for {
		c := a.Chunk(r.Chunk)
		if !c.Derived() {
			return c.seq, r.Index
		}
		if !c.Anchor.Valid() {
			return -1, 0
		}
		r = c.Anchor
	}
}

// Compare orders refs in document order.
func (a *Arena) Compare(x, y Ref) int {
	xs, xi := a.Position(x)
	ys, yi := a.Position(y)
	if c := cmp.Compare(xs, ys); c != 0 {
		return c
	}
	return cmp.Compare(xi, yi)
}

// Last returns position after the last character of the last text chunk.
func (a *Arena) Last() Ref {
	for i := len(a.chunks) - 1; i >= 0; i-- {
		if c := a.chunks[i]; !c.Derived() {
			return Ref{Chunk: c.ID, Index: len(c.Text)}
		}
	}
	return Nowhere
}

// Render rewrites content of every touched <brl> element. Returns number of
// elements written.
func (a *Arena) Render() int {
	n := 0
	for _, c := range a.chunks {
		if c.Derived() || !c.touched {
			continue
		}
		for len(c.Brl.Child) > 0 {
			c.Brl.RemoveChildAt(0)
		}
		a.renderInto(c, c.Brl)
		c.touched = false
		n++
	}
	return n
}

func (a *Arena) renderInto(c *Chunk, el *etree.Element) {
	marks := slices.Clone(c.marks)
	slices.SortStableFunc(marks, func(x, y mark) int { return cmp.Compare(x.index, y.index) })

	pos := 0
	for _, m := range marks {
		if m.index > pos {
			el.CreateText(string(c.Text[pos:m.index]))
			pos = m.index
		}
		if m.el != nil {
			el.AddChild(m.el)
			continue
		}
		d := a.Chunk(m.derived)
		child := el.CreateElement(d.Tag)
		for _, attr := range d.Attrs {
			child.CreateAttr(attr.Key, attr.Value)
		}
		a.renderInto(d, child)
	}
	if pos < len(c.Text) {
		el.CreateText(string(c.Text[pos:]))
	}
}

// BrlText returns concatenated character data of element.
func BrlText(el *etree.Element) string {
	var sb strings.Builder
	for _, t := range el.Child {
		if cd, ok := t.(*etree.CharData); ok {
			sb.WriteString(cd.Data)
		}
	}
	return sb.String()
}
