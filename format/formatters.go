package format

import (
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"utdfmt/style"
	"utdfmt/utd"
)

// Formatter lays out element of one format kind.
type Formatter interface {
	Format(f *Selector, el *etree.Element, st *style.Style) error
}

// Resumer is implemented by formatters which can continue an element
// formatting of which started before the resume point.
type Resumer interface {
	// Enter restores state of el, first is set when nothing of el has been
	// laid out yet.
	Enter(f *Selector, el *etree.Element, st *style.Style, first bool)
	// Leave finishes el after its remaining content.
	Leave(f *Selector, el *etree.Element, st *style.Style)
}

// literary is running text: blocks with their spacing and indents,
// inline elements continue enclosing block.
type literary struct{}

func (literary) Format(f *Selector, el *etree.Element, st *style.Style) error {
	if !st.Inline {
		f.page().StartBlock(st)
	}
	if err := f.content(el, 0); err != nil {
		return err
	}
	if !st.Inline {
		f.page().EndBlock(st)
	}
	return nil
}

func (literary) Enter(f *Selector, _ *etree.Element, st *style.Style, first bool) {
	if !st.Inline {
		f.page().ResumeBlock(st, first)
	}
}

func (literary) Leave(f *Selector, _ *etree.Element, st *style.Style) {
	if !st.Inline {
		f.page().EndBlock(st)
	}
}

type skipLines struct{}

func (skipLines) Format(f *Selector, _ *etree.Element, st *style.Style) error {
	f.page().SkipLines(max(st.SkipLines, 1))
	return nil
}

// pageIndicator starts a new print page. Its <brl> holds the translated
// number and is where separator line goes in document order.
type pageIndicator struct{}

func (pageIndicator) Format(f *Selector, el *etree.Element, _ *style.Style) error {
	anchor := utd.Nowhere
	if brl := el.SelectElement(utd.TagBrl); brl != nil {
		a := f.session.Arena
		id := a.TextChunk(brl)
		a.Touch(id)
		anchor = utd.Ref{Chunk: id}
	}
	label := indicatorLabel(el)
	if label == "" {
		f.log.Debug("Print page indicator without page number", zap.String("tag", el.Tag))
		return nil
	}
	f.add(f.page().PrintPageIndicator(label, anchor))
	return nil
}

// indicatorLabel is print page number of indicator: page attribute or its
// own text.
func indicatorLabel(el *etree.Element) string {
	if v := el.SelectAttrValue(attrPage, ""); v != "" {
		return strings.TrimSpace(v)
	}
	var sb strings.Builder
	for _, tok := range el.Child {
		if cd, ok := tok.(*etree.CharData); ok {
			sb.WriteString(cd.Data)
		}
	}
	return strings.TrimSpace(sb.String())
}

const attrPage = "page"

// boxLine is dots 2356.
const boxLine = '7'

// box frames its content with full width lines.
type box struct{}

func (box) Format(f *Selector, el *etree.Element, st *style.Style) error {
	a := f.session.Arena
	top := utd.Nowhere
	if brl := utd.FirstBrl(el); brl != nil {
		top = utd.Ref{Chunk: a.TextChunk(brl)}
	}

	f.page().StartBlock(st)
	f.add(f.page().BoxLine(boxLine, top))
	if err := f.content(el, 0); err != nil {
		return err
	}
	f.page().BreakLine()
	f.add(f.page().BoxLine(boxLine, a.Last()))
	f.page().EndBlock(st)
	return nil
}

// table is formatted linearly: every row is a block, cells are separated by
// a space.
type table struct{}

func (table) Format(f *Selector, el *etree.Element, st *style.Style) error {
	rows := utd.Descendants(el, "tr")
	if len(rows) == 0 {
		rows = el.ChildElements()
	}

	f.page().StartBlock(st)
	for _, row := range rows {
		if err := f.ctx.Err(); err != nil {
			return interrupted(f.ctx)
		}
		rst := f.styles.Resolve(row)
		f.stack.Push(rst)
		f.page().StartBlock(rst)
		for i, cell := range row.ChildElements() {
			if i > 0 {
				anchor := utd.Nowhere
				if brl := utd.FirstBrl(cell); brl != nil {
					anchor = utd.Ref{Chunk: f.session.Arena.TextChunk(brl)}
				}
				f.add(f.page().AddText(" ", anchor))
			}
			if f.opts.WriteUTD {
				utd.StripFormatting(cell)
			}
			if err := f.content(cell, 0); err != nil {
				f.stack.Pop()
				return err
			}
		}
		f.page().EndBlock(rst)
		f.stack.Pop()
		f.flush()
	}
	f.page().EndBlock(st)
	return nil
}

// dontFormat leaves subtree as it is.
type dontFormat struct{}

func (dontFormat) Format(*Selector, *etree.Element, *style.Style) error {
	return nil
}
