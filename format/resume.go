package format

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"utdfmt/layout"
	"utdfmt/pagenum"
	"utdfmt/style"
	"utdfmt/utd"
)

// Resume formats previously formatted document again starting from the page
// element with id is on. Pages before it are kept as they are. When
// formatting cannot be resumed there the whole document is formatted.
func Resume(ctx context.Context, doc *etree.Document, id string, settings layout.Settings, styles style.Resolver, opts Options, log *zap.Logger) (*Result, error) {
	body := utd.Body(doc)
	if body == nil {
		return nil, errors.New("document has no root element")
	}
	f, err := newSelector(ctx, doc, settings, styles, opts, log)
	if err != nil {
		return nil, err
	}

	unit := resumeTarget(utd.FindByID(doc, id))
	start, c, ok := f.resumePoint(body, unit)
	if !ok {
		f.log.Debug("Unable to resume, formatting whole document", zap.String("id", id))
		return f.formatAll(doc, body)
	}
	f.log.Debug("Resuming formatting",
		zap.String("id", id), zap.Int("ordinal", c.Ordinal+1), zap.String("after", c.Tracker.Label()))

	for _, brl := range brlsFrom(body, start) {
		utd.StripBrl(brl)
	}
	f.pages = []*layout.PageBuilder{f.session.Resume(c)}
	if err := f.resumeWalk(body, start); err != nil {
		return nil, err
	}
	return f.finish(doc, true), nil
}

// resumeTarget returns the first <brl> of el.
func resumeTarget(el *etree.Element) *etree.Element {
	if el == nil || el.Tag == utd.TagBrl {
		return el
	}
	return utd.FirstBrl(el)
}

func brlsFrom(body, start *etree.Element) []*etree.Element {
	brls := utd.Descendants(body, utd.TagBrl)
	if i := slices.Index(brls, start); i >= 0 {
		return brls[i:]
	}
	return nil
}

// startsPage reports <brl> which begins with exactly one page marker.
func startsPage(brl *etree.Element) (*etree.Element, bool) {
	var marker *etree.Element
	for _, tok := range brl.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			if t.Data != "" {
				return marker, marker != nil
			}
		case *etree.Element:
			if t.Tag != utd.TagNewPage {
				if marker == nil {
					return nil, false
				}
				continue
			}
			if marker != nil {
				return nil, false
			}
			marker = t
		}
	}
	return marker, marker != nil
}

// resumable reports <brl> all ancestors of which can be continued.
func (f *Selector) resumable(body, brl *etree.Element) bool {
	for el := brl.Parent(); el != nil; el = el.Parent() {
		if _, ok := f.formatter(f.styles.Resolve(el)).(Resumer); !ok {
			return false
		}
		if el == body {
			return true
		}
	}
	return false
}

// resumePoint finds the nearest <brl> at or before unit that starts a page
// and rebuilds state formatting had at the top of that page.
func (f *Selector) resumePoint(body, unit *etree.Element) (*etree.Element, layout.Carryover, bool) {
	var c layout.Carryover
	if unit == nil {
		return nil, c, false
	}
	brls := utd.Descendants(body, utd.TagBrl)
	i := slices.Index(brls, unit)
	if i < 0 {
		return nil, c, false
	}
	var (
		start  *etree.Element
		marker *etree.Element
	)
	for ; i >= 0; i-- {
		if m, ok := startsPage(brls[i]); ok && f.resumable(body, brls[i]) {
			start, marker = brls[i], m
			break
		}
	}
	if start == nil {
		return nil, c, false
	}

	st := f.replayMarkers(body, start)
	typ, err := pagenum.ParseType(marker.SelectAttrValue(utd.AttrPageType, ""))
	if err != nil {
		f.log.Debug("Bad page marker type", zap.Error(err))
	}
	// overrides applied to the page are matched again by its sequential label
	typ = f.sequentialType(st.ordinal+1, typ)
	f.session.SetVolume(st.volumes + 1)
	f.session.Overrides.ResetAfter(st.ordinal)

	c = layout.Carryover{
		Block:       f.session.DefaultBlock(),
		Tracker:     st.tracker,
		NextType:    typ,
		HasNextType: true,
		Print:       st.print,
		PrintFresh:  st.printFresh,
		RunningHead: st.runningHead,
		GuideStart:  st.guideStart,
		Ordinal:     st.ordinal,
		Forced:      marker.SelectAttrValue(utd.AttrForcedBreak, "") == utd.ValueTrue,
	}
	// explicit blank lines carried over from the previous page
	if v := textLine(start); v > 0 {
		c.Pending = layout.Spacing{Lines: v, Explicit: true}
	}
	return start, c, true
}

// sequentialType is numbering type page ordinal had before braille
// overrides renumbered it.
func (f *Selector) sequentialType(ordinal int, typ pagenum.Type) pagenum.Type {
	root := f.session.Overrides.AppliedRoot(utd.OverrideKindBraille, ordinal)
	if root == nil {
		return typ
	}
	if _, t, ok := pagenum.DecodeNumber(root.Original); ok {
		return t
	}
	return typ
}

// textLine returns line the first text of brl was placed on.
func textLine(brl *etree.Element) int {
	var move *etree.Element
	for _, tok := range brl.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			if strings.TrimSpace(t.Data) == "" {
				continue
			}
			if move == nil {
				return 0
			}
			v, err := strconv.Atoi(move.SelectAttrValue(utd.AttrVPos, ""))
			if err != nil {
				return 0
			}
			return v
		case *etree.Element:
			if t.Tag == utd.TagMoveTo {
				move = t
			}
		}
	}
	return 0
}

// markerState is formatting state recovered from markers written before the
// resume point.
type markerState struct {
	tracker     pagenum.Tracker
	ordinal     int
	volumes     int
	print       layout.PrintPage
	printFresh  bool
	runningHead string
	guideStart  string
}

func (f *Selector) replayMarkers(body, start *etree.Element) markerState {
	settings := f.session.Settings
	st := markerState{
		tracker:     pagenum.NewTracker(pagenum.Normal, settings.PageNumberPadding),
		runningHead: settings.RunningHead,
	}
	enter := func(el *etree.Element) {
		switch el.Tag {
		case utd.TagNewPage:
			typ, err := pagenum.ParseType(el.SelectAttrValue(utd.AttrPageType, ""))
			if err != nil {
				typ = pagenum.Normal
			}
			st.ordinal++
			n, _, ok := pagenum.DecodeNumber(el.SelectAttrValue(utd.AttrBrlNum, ""))
			next := st.tracker.NextPage(typ, settings.ContinuePages)
			if !ok || next.Number() != n {
				next = st.tracker.NextPage(f.sequentialType(st.ordinal, typ), settings.ContinuePages)
			}
			if ok && (next.Type() != typ || next.Number() != n) {
				next = next.WithNumber(typ, n)
			}
			st.tracker = next
			st.printFresh = false
		case utd.TagPrintPageNum:
			st.print = layout.PrintPage{
				Label:  el.SelectAttrValue(utd.AttrUntranslated, ""),
				Letter: el.SelectAttrValue(utd.AttrCL, ""),
			}
			st.printFresh = false
		case utd.TagBrlOnly:
			text := utd.BrlText(el)
			switch el.SelectAttrValue(utd.AttrType, "") {
			case utd.BrlOnlyRunningHead:
				st.runningHead = text
			case utd.BrlOnlyGuideWord:
				if _, end, ok := strings.Cut(text, "-"); ok {
					text = end
				}
				st.guideStart = text
			}
		case utd.TagBrl, utd.TagMoveTo, utd.TagBrlPageNum:
		default:
			if s := f.styles.Resolve(el); s.Format == style.FormatKindPageIndicator {
				if label := indicatorLabel(el); label != "" {
					st.print, st.printFresh = layout.PrintPage{Label: label}, true
				}
			}
		}
	}
	leave := func(el *etree.Element) {
		if utd.IsMarker(el.Tag) || el.Tag == utd.TagBrl {
			return
		}
		if f.styles.Resolve(el).VolumeEnd {
			st.volumes++
		}
	}
	walkBefore(body, start, enter, leave)
	return st
}

// walkBefore visits elements preceding stop in document order, leave is
// called only for elements which end before stop. Returns true when stop
// was reached.
func walkBefore(el, stop *etree.Element, enter, leave func(*etree.Element)) bool {
	if el == stop {
		return true
	}
	enter(el)
	for _, child := range el.ChildElements() {
		if walkBefore(child, stop, enter, leave) {
			return true
		}
	}
	leave(el)
	return false
}

// resumeWalk restores ancestors of start, formats the rest of the document
// and closes ancestors on the way up.
func (f *Selector) resumeWalk(body, start *etree.Element) error {
	var path []*etree.Element
	for el := start.Parent(); el != nil; el = el.Parent() {
		path = append(path, el)
		if el == body {
			break
		}
	}
	slices.Reverse(path)

	styles := make([]*style.Style, len(path))
	for i, el := range path {
		st := f.styles.Resolve(el)
		styles[i] = st
		f.stack.Push(st)
		f.formatter(st).(Resumer).Enter(f, el, st, resumeTarget(el) == start)
	}

	from := start.Index()
	for i := len(path) - 1; i >= 0; i-- {
		el, st := path[i], styles[i]
		if err := f.content(el, from); err != nil {
			return err
		}
		f.stack.Pop()
		f.formatter(st).(Resumer).Leave(f, el, st)
		f.flush()
		if !st.Inline {
			f.restoreBlock()
		}
		from = el.Index() + 1
	}
	return nil
}
