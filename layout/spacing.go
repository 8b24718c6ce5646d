package layout

// ready makes sure cursor is on a line text can be written to: realizes
// pending spacing and breaks the page on overflow. When a keep-with-next
// group was moved the returned page has restart set and the caller must
// start over on it.
func (p *PageBuilder) ready(pbs *[]*PageBuilder) *PageBuilder {
	for {
		switch {
		case p.overrideBlank:
			p.overrideBlank = false
			p.blank = true
			p = p.breakPage(pbs, breakBlank)
		case !p.pending.empty():
			p = p.realizeSpacing(pbs)
		case p.y >= p.grid.Height():
			p = p.breakPage(pbs, breakOverflow)
		default:
			return p
		}
		if p.restart != nil {
			return p
		}
	}
}

// realizeSpacing turns pending spacing into page breaks and cursor moves.
// Page requests go first and release keep-with-next group.
func (p *PageBuilder) realizeSpacing(pbs *[]*PageBuilder) *PageBuilder {
	sp := p.pending
	p.pending = Spacing{}

	if sp.Pages > 0 {
		p.chain.restartAtPageTop()
		breaks := sp.Pages
		if p.empty() {
			breaks--
		}
		for i := range breaks {
			if i > 0 {
				p.blank = true
			}
			p = p.breakPage(pbs, breakForced)
		}
	}
	if sp.Volume {
		p.s.volume++
		if p.s.Settings.Interpoint && !p.grid.RightPage {
			// next volume starts on a right hand page
			p.blank = true
			p = p.breakPage(pbs, breakForced)
		}
	}

	lines := sp.Lines
	if sp.Block {
		lines = max(lines, p.block.LineSpacing)
	}
	if lines <= 0 {
		return p
	}
	if p.atTop() {
		if !sp.Explicit {
			return p
		}
		if p.headShown {
			lines--
		}
	}
	for lines > 0 {
		room := max(p.grid.Height()-p.y, 0)
		if lines < room {
			p.y += lines
			break
		}
		if !sp.Explicit {
			p.y = p.grid.Height()
			break
		}
		lines -= room
		p = p.breakPage(pbs, breakOverflow)
		if p.restart != nil {
			break
		}
	}
	return p
}
