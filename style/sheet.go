package style

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"utdfmt/common"
	"utdfmt/css"
	"utdfmt/pagenum"
)

//go:embed default.css
var defaultCSS []byte

// Resolver returns style for a document element.
type Resolver interface {
	Resolve(el *etree.Element) *Style
}

// Sheet resolves styles from parsed style sheet rules.
type Sheet struct {
	rules []css.Rule
	log   *zap.Logger
	cache map[*etree.Element]*Style
}

// NewSheet builds resolver from embedded default style sheet and optional
// user style sheet, user rules take precedence.
func NewSheet(path string, log *zap.Logger) (*Sheet, error) {
	p := css.NewParser(log)
	sheet := p.Parse(defaultCSS, "default.css")
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("unable to read stylesheet: %w", err)
		}
		sheet.Merge(p.Parse(data, path))
	}
	for _, w := range sheet.Warnings {
		log.Debug("Stylesheet", zap.String("warning", w))
	}
	return NewSheetFromStylesheet(sheet, log), nil
}

func NewSheetFromStylesheet(sheet *css.Stylesheet, log *zap.Logger) *Sheet {
	rules := slices.Clone(sheet.Rules)
	// cascade order: lower specificity first, source order for ties
	slices.SortStableFunc(rules, func(a, b css.Rule) int {
		if d := a.Selector.Specificity() - b.Selector.Specificity(); d != 0 {
			return d
		}
		return a.Order - b.Order
	})
	return &Sheet{rules: rules, log: log, cache: make(map[*etree.Element]*Style)}
}

// Resolve returns style for element. Styles are cached per element for the
// lifetime of the sheet.
func (s *Sheet) Resolve(el *etree.Element) *Style {
	if st, ok := s.cache[el]; ok {
		return st
	}
	st := Default(el.Tag)
	for _, r := range s.rules {
		if !matches(&r.Selector, el) {
			continue
		}
		st.Name = r.Selector.Raw
		for name, v := range r.Properties {
			if err := apply(st, name, v); err != nil {
				s.log.Debug("Ignoring style property", zap.String("selector", r.Selector.Raw), zap.Error(err))
			}
		}
	}
	s.cache[el] = st
	return st
}

func matchesSimple(sel *css.Selector, el *etree.Element) bool {
	if sel.Element != "" && !strings.EqualFold(sel.Element, el.Tag) {
		return false
	}
	if sel.Class != "" && !slices.Contains(strings.Fields(el.SelectAttrValue("class", "")), sel.Class) {
		return false
	}
	return true
}

func matches(sel *css.Selector, el *etree.Element) bool {
	if !matchesSimple(sel, el) {
		return false
	}
	anc := sel.Ancestor
	for p := el.Parent(); anc != nil && p != nil; p = p.Parent() {
		if matchesSimple(anc, p) {
			anc = anc.Ancestor
		}
	}
	return anc == nil
}

func apply(st *Style, name string, v css.Value) error {
	intValue := func(dst *int) error {
		n, ok := v.Int()
		if !ok {
			return fmt.Errorf("%s: %q is not a number", name, v.Raw)
		}
		*dst = n
		return nil
	}
	boolValue := func(dst *bool) error {
		b, ok := v.Bool()
		if !ok {
			return fmt.Errorf("%s: %q is not a boolean", name, v.Raw)
		}
		*dst = b
		return nil
	}

	switch name {
	case "format":
		k, err := ParseFormatKind(v.Raw)
		if err != nil {
			return err
		}
		st.Format = k
	case "display":
		switch v.Keyword {
		case "inline":
			st.Inline = true
		case "block":
			st.Inline = false
		case "none":
			st.Format = FormatKindDontFormat
		default:
			return fmt.Errorf("display: unsupported value %q", v.Raw)
		}
	case "text-align":
		a, err := common.ParseTextAlign(v.Raw)
		if err != nil {
			return err
		}
		st.Align = a
	case "margin-left":
		return intValue(&st.LeftMargin)
	case "margin-right":
		return intValue(&st.RightMargin)
	case "first-line-indent", "text-indent":
		return intValue(&st.FirstLineIndent)
	case "lines-before":
		return intValue(&st.LinesBefore)
	case "lines-after":
		return intValue(&st.LinesAfter)
	case "pages-before":
		return intValue(&st.PagesBefore)
	case "pages-after":
		return intValue(&st.PagesAfter)
	case "page-break-before", "page-break-after":
		n := 0
		if v.Keyword == "always" {
			n = 1
		}
		if name == "page-break-before" {
			st.PagesBefore = n
		} else {
			st.PagesAfter = n
		}
	case "page-break-inside":
		st.DontSplit = v.Keyword == "avoid"
	case "line-spacing":
		return intValue(&st.LineSpacing)
	case "skip-lines":
		return intValue(&st.SkipLines)
	case "keep-with-next":
		return boolValue(&st.KeepWithNext)
	case "dont-split":
		return boolValue(&st.DontSplit)
	case "guide-words":
		return boolValue(&st.GuideWords)
	case "title-page":
		return boolValue(&st.TitlePage)
	case "volume-end":
		return boolValue(&st.VolumeEnd)
	case "page-number-type":
		t, err := pagenum.ParseType(v.Raw)
		if err != nil {
			return err
		}
		st.PageNumberType, st.HasPageNumberType = t, true
	case "page-number-reset":
		return boolValue(&st.PageNumberReset)
	default:
		return fmt.Errorf("unknown property %q", name)
	}
	return nil
}
