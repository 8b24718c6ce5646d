package convert

import (
	"sort"

	"github.com/maruel/natural"

	"utdfmt/utd"
	"utdfmt/utils/debug"
)

// String returns readable summary of the document: pages as marked in it,
// manual overrides and element identifiers. It exists solely for manual
// inspection during debugging.
func (d *Document) String() string {
	if d == nil || d.doc.Root() == nil {
		return "<nil Document>"
	}
	tw := debug.NewTreeWriter()
	tw.Line(0, "Document %q", d.srcName)

	pages := d.doc.FindElements("//" + utd.TagNewPage)
	tw.Line(0, "Pages: %d", len(pages))
	for i, p := range pages {
		tw.Line(1, "Page[%d] brlnum[%s] type[%s]", i+1,
			p.SelectAttrValue(utd.AttrBrlNum, ""), p.SelectAttrValue(utd.AttrPageType, ""))
	}

	if overrides, err := utd.ReadOverrides(d.doc); err != nil {
		tw.Line(0, "Overrides: %v", err)
	} else if len(overrides) > 0 {
		tw.Line(0, "Overrides: %d", len(overrides))
		for _, o := range overrides.Sorted() {
			tw.Line(1, "%s", o)
		}
	}

	var ids []string
	for _, el := range d.doc.FindElements("//*[@" + utd.AttrID + "]") {
		ids = append(ids, el.SelectAttrValue(utd.AttrID, ""))
	}
	if len(ids) > 0 {
		sort.Sort(natural.StringSlice(ids))
		tw.Line(0, "Identifiers: %d", len(ids))
		for _, id := range ids {
			tw.Line(1, "%q", id)
		}
	}
	return tw.String()
}
