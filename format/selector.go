// Package format walks UTD document and lays its braille text out on pages,
// either from the beginning or resuming at an element in the middle of a
// previously formatted document.
package format

import (
	"context"
	"errors"
	"fmt"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"utdfmt/layout"
	"utdfmt/style"
	"utdfmt/utd"
	"utdfmt/utils/debug"
)

// ErrInterrupted is returned when formatting was canceled, it wraps the
// cause of cancellation.
var ErrInterrupted = errors.New("formatting interrupted")

// Options are per call formatting parameters.
type Options struct {
	// WriteUTD writes page markers into the document. Without it pages are
	// only laid out and counted.
	WriteUTD bool
	// Progress is called with number of pages formatted so far.
	Progress func(pages int)
	// Trace receives dump of every finished page.
	Trace *debug.TreeWriter
}

// Result describes finished formatting pass.
type Result struct {
	Pages int
	// Rendered is the number of <brl> elements rewritten.
	Rendered int
	// Partial is set when formatting resumed in the middle of document.
	Partial    bool
	DocumentID string
}

// Selector walks document depth first and hands every element to the
// formatter of its style. Only the last page of the current set is written
// to, the rest are flushed after each element.
type Selector struct {
	ctx     context.Context
	session *layout.Session
	styles  style.Resolver
	log     *zap.Logger
	opts    Options
	table   map[style.FormatKind]Formatter
	stack   style.Stack
	pages   []*layout.PageBuilder
}

func newSelector(ctx context.Context, doc *etree.Document, settings layout.Settings, styles style.Resolver, opts Options, log *zap.Logger) (*Selector, error) {
	overrides, err := utd.ReadOverrides(doc)
	if err != nil {
		return nil, fmt.Errorf("unable to read page overrides: %w", err)
	}
	session, err := layout.NewSession(settings, utd.NewArena(), overrides, opts.WriteUTD, log)
	if err != nil {
		return nil, err
	}
	f := &Selector{
		ctx:     ctx,
		session: session,
		styles:  styles,
		log:     log.Named("format"),
		opts:    opts,
		table: map[style.FormatKind]Formatter{
			style.FormatKindLiterary:      literary{},
			style.FormatKindSkipLines:     skipLines{},
			style.FormatKindPageIndicator: pageIndicator{},
			style.FormatKindBox:           box{},
			style.FormatKindTable:         table{},
			style.FormatKindDontFormat:    dontFormat{},
		},
	}
	session.OnPage = f.pageDone
	return f, nil
}

// Format lays out the whole document.
func Format(ctx context.Context, doc *etree.Document, settings layout.Settings, styles style.Resolver, opts Options, log *zap.Logger) (*Result, error) {
	body := utd.Body(doc)
	if body == nil {
		return nil, errors.New("document has no root element")
	}
	f, err := newSelector(ctx, doc, settings, styles, opts, log)
	if err != nil {
		return nil, err
	}
	return f.formatAll(doc, body)
}

func (f *Selector) formatAll(doc *etree.Document, body *etree.Element) (*Result, error) {
	f.pages = []*layout.PageBuilder{f.session.Start()}
	if _, err := f.dispatch(body); err != nil {
		return nil, err
	}
	return f.finish(doc, false), nil
}

func (f *Selector) finish(doc *etree.Document, partial bool) *Result {
	f.session.Finish(f.pages)
	f.pages = nil
	res := &Result{Pages: f.session.Pages(), Partial: partial}
	if f.opts.WriteUTD {
		res.Rendered = f.session.Arena.Render()
		utd.WriteOverrides(doc, f.session.Overrides)
		res.DocumentID = utd.DocumentID(doc)
	}
	f.log.Debug("Formatting done",
		zap.Int("pages", res.Pages), zap.Int("rendered", res.Rendered), zap.Bool("partial", partial))
	return res
}

// page is the page formatting writes to.
func (f *Selector) page() *layout.PageBuilder {
	return f.pages[len(f.pages)-1]
}

// add takes page set returned by PageBuilder, its first page is the current
// one.
func (f *Selector) add(pbs []*layout.PageBuilder) {
	f.pages = append(f.pages, pbs[1:]...)
}

// flush hands off every page but the last.
func (f *Selector) flush() {
	n := len(f.pages) - 1
	for _, p := range f.pages[:n] {
		f.session.Flush(p)
	}
	f.pages = append(f.pages[:0], f.pages[n])
}

func (f *Selector) pageDone(p *layout.PageBuilder) {
	if f.opts.Trace != nil {
		p.Dump(f.opts.Trace, 0)
	}
	if f.opts.Progress != nil {
		f.opts.Progress(f.session.Pages())
	}
}

func (f *Selector) formatter(st *style.Style) Formatter {
	if fm, ok := f.table[st.Format]; ok {
		return fm
	}
	return f.table[style.FormatKindLiterary]
}

// dispatch formats element with formatter its style selects.
func (f *Selector) dispatch(el *etree.Element) (*style.Style, error) {
	if err := f.ctx.Err(); err != nil {
		return nil, interrupted(f.ctx)
	}
	st := f.styles.Resolve(el)
	fm := f.formatter(st)
	if f.opts.WriteUTD && st.Format != style.FormatKindDontFormat {
		utd.StripFormatting(el)
	}

	f.stack.Push(st)
	err := fm.Format(f, el, st)
	f.stack.Pop()
	f.flush()
	return st, err
}

func interrupted(ctx context.Context) error {
	return fmt.Errorf("%w: %w", ErrInterrupted, context.Cause(ctx))
}

// content formats children of el starting with token from.
func (f *Selector) content(el *etree.Element, from int) error {
	children := el.Child[from:]
	for _, tok := range children {
		child, ok := tok.(*etree.Element)
		if !ok || utd.IsMarker(child.Tag) {
			continue
		}
		if child.Tag == utd.TagBrl {
			f.add(f.page().AddBrl(child))
			continue
		}
		st, err := f.dispatch(child)
		if err != nil {
			return err
		}
		if !st.Inline {
			f.restoreBlock()
		}
	}
	return nil
}

// restoreBlock returns to the enclosing block after a nested one ended.
func (f *Selector) restoreBlock() {
	if b := f.stack.Block(); b != nil {
		f.page().RestoreBlock(b)
	}
}
