package layout

import (
	"strings"

	"utdfmt/utils/debug"
)

// Dump writes page content for debug report.
func (p *PageBuilder) Dump(tw *debug.TreeWriter, depth int) {
	var flags []string
	if p.forced {
		flags = append(flags, "forced")
	}
	if p.nonsequential {
		flags = append(flags, "nonsequential")
	}
	if p.blank {
		flags = append(flags, "blank")
	}
	if p.discarded {
		flags = append(flags, "discarded")
	}
	tw.Line(depth, "page %d [%s] print %q %s", p.ordinal, p.tracker.Label(), p.print.Text(), strings.Join(flags, ","))
	lines := make([]string, p.grid.Height())
	for y := range lines {
		lines[y] = p.grid.Line(y)
	}
	tw.Grid(depth+1, p.grid.Width(), lines)
}
