package layout

import (
	"go.uber.org/zap"

	"utdfmt/style"
	"utdfmt/utd"
)

type entryKind int

const (
	entryUnit entryKind = iota
	entrySkip
	entrySeparator
	entryBox
)

// chainEntry is enough to place a piece of keep-with-next group again on the
// following page.
type chainEntry struct {
	kind entryKind

	chunk      utd.ChunkID
	start      int
	lineNumber string

	lines  int
	print  PrintPage
	anchor utd.Ref
	char   rune

	block   BlockState
	pending Spacing
	flags   chainFlags
	atTop   bool
	// entry started on an untouched line
	fresh bool
}

type chainFlags struct {
	// owner is the block which opened the group, it is still being filled
	ownerOpen  bool
	ownerDepth int
	// keep-with-next owner ended, next text joins the group
	awaiting bool
	// successor block started, group ends with its first line
	successor      bool
	successorDepth int
}

// chainState tracks keep-with-next and don't-split group. Every segment
// written while group is active is tagged with its number, so the whole
// group can be taken off a page when the page overflows.
type chainState struct {
	active bool
	group  int
	splits int
	// locked group is not moved again
	locked bool
	chainFlags
	entries []chainEntry
}

func (p *PageBuilder) clearChain() {
	p.chain = chainState{}
}

func (p *PageBuilder) chainStartBlock(st *style.Style) {
	c := &p.chain
	keep := st.KeepWithNext || st.DontSplit
	depth := p.block.Depth
	switch {
	case c.active && c.awaiting:
		c.awaiting = false
		if keep {
			c.ownerOpen, c.ownerDepth = true, depth
		} else {
			c.successor, c.successorDepth = true, depth
		}
	case c.active:
	case keep:
		*c = chainState{active: true, group: p.s.nextGroup()}
		c.ownerOpen, c.ownerDepth = true, depth
	}
}

func (p *PageBuilder) chainEndBlock(st *style.Style) {
	c := &p.chain
	if !c.active {
		return
	}
	depth := p.block.Depth
	switch {
	case c.ownerOpen && depth == c.ownerDepth:
		c.ownerOpen = false
		if st.KeepWithNext {
			c.awaiting = true
		} else {
			p.clearChain()
		}
	case c.successor && depth == c.successorDepth:
		p.clearChain()
	}
}

// chainText is called for text outside of any new block.
func (p *PageBuilder) chainText() {
	if c := &p.chain; c.active && c.awaiting {
		c.awaiting = false
		c.successor, c.successorDepth = true, p.block.Depth
	}
}

// chainLineDone ends group after the first line of its successor.
func (p *PageBuilder) chainLineDone() {
	if p.chain.active && p.chain.successor {
		p.clearChain()
	}
}

func (p *PageBuilder) record(e chainEntry) {
	c := &p.chain
	if !c.active || c.locked {
		return
	}
	e.block = p.block
	e.pending = p.pending
	e.flags = c.chainFlags
	e.atTop = len(c.entries) == 0 && p.atTop()
	e.fresh = p.seg == nil
	c.entries = append(c.entries, e)
}

// restartAtPageTop forgets group members placed before explicit page break,
// the member being placed now opens the new page.
func (c *chainState) restartAtPageTop() {
	if !c.active {
		return
	}
	if n := len(c.entries); n > 0 {
		e := c.entries[n-1]
		e.atTop = true
		c.entries = append(c.entries[:0], e)
	}
	c.locked = false
	c.splits = 0
}

func (p *PageBuilder) relocatable() bool {
	c := &p.chain
	return c.active && !c.locked && len(c.entries) > 0 && !c.entries[0].atTop &&
		c.splits < p.s.Settings.MaxChainSplits
}

// detachGroup takes group off the overflowing page. Returns entries to
// replay on the next page, nil if group stays and is allowed to split.
func (p *PageBuilder) detachGroup() []chainEntry {
	c := &p.chain
	if !c.active {
		return nil
	}
	defer func() { c.entries = nil }()
	if !p.relocatable() {
		c.locked = true
		return nil
	}
	group := c.group
	n := p.grid.Remove(func(cell Cell) bool { return cell.Segment.Group == group })
	c.splits++
	p.s.Log.Debug("Moving keep-with-next group to the next page",
		zap.Int("page", p.ordinal), zap.Int("entries", len(c.entries)), zap.Int("cells", n))
	return c.entries
}

// replay places moved group members on the page. The last member is the one
// being placed when page overflowed, its caller starts over on the returned
// page.
func (p *PageBuilder) replay(pbs *[]*PageBuilder, moved []chainEntry) *PageBuilder {
	cur := p
	for _, e := range moved[:len(moved)-1] {
		if e.fresh {
			cur.endLine()
		}
		cur.block = e.block
		cur.pending = e.pending
		cur.chain.chainFlags = e.flags
		switch e.kind {
		case entryUnit:
			cur = cur.placeUnit(pbs, e.chunk, e.start, e.lineNumber)
		case entrySkip:
			cur.SkipLines(e.lines)
		case entrySeparator:
			cur = cur.placeSeparator(pbs, e.print, e.anchor)
		case entryBox:
			cur = cur.placeBoxLine(pbs, e.char, e.anchor)
		}
	}
	last := moved[len(moved)-1]
	if last.fresh {
		cur.endLine()
	}
	cur.block = last.block
	cur.pending = last.pending
	cur.chain.chainFlags = last.flags
	cur.restart = &last
	return cur
}

// takeRestart reports and clears restart request.
func (p *PageBuilder) takeRestart() bool {
	if p.restart == nil {
		return false
	}
	p.restart = nil
	return true
}
