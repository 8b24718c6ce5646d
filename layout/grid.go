package layout

import (
	"fmt"
	"strings"

	"utdfmt/common"
	"utdfmt/utd"
)

// PageGrid is a fixed size matrix of cells of one braille page.
type PageGrid struct {
	width  int
	height int
	cells  []Cell
	// RightPage is recto of interpoint page.
	RightPage bool
}

func NewPageGrid(width, height int, right bool) *PageGrid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("invalid grid size %dx%d", width, height))
	}
	return &PageGrid{
		width:     width,
		height:    height,
		cells:     make([]Cell, width*height),
		RightPage: right,
	}
}

func (g *PageGrid) Width() int  { return g.width }
func (g *PageGrid) Height() int { return g.height }

func (g *PageGrid) index(x, y int) int {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		panic(fmt.Sprintf("cell (%d,%d) is outside of %dx%d grid", x, y, g.width, g.height))
	}
	return y*g.width + x
}

func (g *PageGrid) Cell(x, y int) Cell {
	return g.cells[g.index(x, y)]
}

func (g *PageGrid) SetCell(x, y int, c Cell) {
	g.cells[g.index(x, y)] = c
}

func (g *PageGrid) Clear(x, y int) {
	g.cells[g.index(x, y)] = Cell{}
}

func (g *PageGrid) IsEmptyLine(y int) bool {
	for x := range g.width {
		if !g.Cell(x, y).Empty() {
			return false
		}
	}
	return true
}

// IsEmptyNumberLine reports line empty except for page number cells.
func (g *PageGrid) IsEmptyNumberLine(y int) bool {
	for x := range g.width {
		if c := g.Cell(x, y); !c.Empty() && !c.Segment.Kind.IsNumber() {
			return false
		}
	}
	return true
}

// HasContent reports whether anything but page furniture is on the page.
func (g *PageGrid) HasContent() bool {
	for _, c := range g.cells {
		if !c.Empty() && c.Segment.Kind.IsContent() {
			return true
		}
	}
	return false
}

// reservedSpan returns end of reserved cells at the left side of line y and
// start of reserved cells at the right side.
func (g *PageGrid) reservedSpan(y int) (int, int) {
	left, right := 0, g.width
	for x := range g.width {
		c := g.Cell(x, y)
		if c.Empty() || !c.Segment.Kind.reserves() {
			continue
		}
		if x < g.width/2 {
			left = max(left, x+1)
		} else {
			right = min(right, x)
		}
	}
	return left, right
}

// free reports that n cells from x on line y are empty or belong to seg.
func (g *PageGrid) free(seg *SegmentInfo, x, y, n int) bool {
	if x < 0 || x+n > g.width {
		return false
	}
	for i := x; i < x+n; i++ {
		if c := g.Cell(i, y); !c.Empty() && c.Segment != seg {
			return false
		}
	}
	return true
}

// Remove clears every cell matching fn, returns number of cells cleared.
func (g *PageGrid) Remove(fn func(Cell) bool) int {
	n := 0
	for i, c := range g.cells {
		if !c.Empty() && fn(c) {
			g.cells[i] = Cell{}
			n++
		}
	}
	return n
}

// Align moves run of seg cells on line y according to its alignment, cells
// owned by other segments are never overwritten. A trailing space of the
// run is dropped.
func (g *PageGrid) Align(seg *SegmentInfo, y int) {
	if seg.Align == common.AlignLeft {
		return
	}
	first, last := -1, -1
	for x := range g.width {
		if g.Cell(x, y).Segment == seg {
			if first < 0 {
				first = x
			}
			last = x
		}
	}
	if first < 0 {
		return
	}
	if c := g.Cell(last, y); c.Char == ' ' && last > first {
		g.Clear(last, y)
		last--
	}
	run := make([]Cell, last-first+1)
	copy(run, g.cells[g.index(first, y):g.index(last, y)+1])
	n := len(run)

	left, right := max(seg.Left, 0), min(seg.Right, g.width)
	target := -1
	switch seg.Align {
	case common.AlignRight:
		for x := right - n; x >= left; x-- {
			if g.free(seg, x, y, n) {
				target = x
				break
			}
		}
	case common.AlignCenter:
		want := left + (right-left-n)/2
		for d := 0; d <= g.width && target < 0; d++ {
			for _, x := range []int{want - d, want + d} {
				if x >= left && x+n <= right && g.free(seg, x, y, n) {
					target = x
					break
				}
			}
		}
	}
	if target < 0 || target == first {
		return
	}
	for x := first; x <= last; x++ {
		if g.Cell(x, y).Segment == seg {
			g.Clear(x, y)
		}
	}
	for i, c := range run {
		if c.Segment == seg {
			g.SetCell(target+i, y, c)
		}
	}
}

// Line returns text of line y, empty cells are spaces.
func (g *PageGrid) Line(y int) string {
	var sb strings.Builder
	for x := range g.width {
		c := g.Cell(x, y)
		if c.Empty() {
			sb.WriteByte(' ')
			continue
		}
		sb.WriteRune(c.Char)
	}
	return sb.String()
}

// String returns all lines with trailing spaces removed.
func (g *PageGrid) String() string {
	lines := make([]string, g.height)
	for y := range g.height {
		lines[y] = strings.TrimRight(g.Line(y), " ")
	}
	return strings.Join(lines, "\n")
}

// firstOccupied returns leftmost non empty cell of n cells from x, -1 if all
// are empty.
func (g *PageGrid) firstOccupied(x, y, n int) int {
	for i := x; i < x+n; i++ {
		if !g.Cell(i, y).Empty() {
			return i
		}
	}
	return -1
}

// lastOccupied returns rightmost non empty cell of n cells from x, -1 if all
// are empty.
func (g *PageGrid) lastOccupied(x, y, n int) int {
	for i := x + n - 1; i >= x; i-- {
		if !g.Cell(i, y).Empty() {
			return i
		}
	}
	return -1
}

// hasChunk reports whether any cell refers to chunk id.
func (g *PageGrid) hasChunk(id utd.ChunkID) bool {
	for _, c := range g.cells {
		if !c.Empty() && c.Ref.Chunk == id {
			return true
		}
	}
	return false
}
