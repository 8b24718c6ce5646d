package css

import (
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestParse(t *testing.T) {
	src := `
@page { size: 40 25; }
h1, .heading {
  text-align: center;
  lines-before: 1;
  keep-with-next: true;
}
list li.entry {
  margin-left: 2;
  first-line-indent: -2;
  page-number-type: t-page;
}
p:first-child { margin-left: 4 }
`
	sheet := NewParser(zaptest.NewLogger(t)).Parse([]byte(src), "test")

	if len(sheet.Rules) != 3 {
		t.Fatalf("got %d rules, want 3:\n%s", len(sheet.Rules), sheet)
	}

	h1 := sheet.Rules[0]
	if h1.Selector.Element != "h1" || h1.Order != 0 {
		t.Errorf("first rule selector = %+v", h1.Selector)
	}
	if v, ok := h1.GetProperty("text-align"); !ok || v.Keyword != "center" {
		t.Errorf("text-align = %+v", v)
	}
	if v, _ := h1.GetProperty("keep-with-next"); v.Raw != "true" {
		t.Errorf("keep-with-next raw = %q", v.Raw)
	} else if b, ok := v.Bool(); !ok || !b {
		t.Errorf("keep-with-next Bool() = %v, %v", b, ok)
	}

	heading := sheet.Rules[1]
	if heading.Selector.Class != "heading" || heading.Selector.Element != "" {
		t.Errorf("second rule selector = %+v", heading.Selector)
	}

	li := sheet.Rules[2]
	if li.Selector.Element != "li" || li.Selector.Class != "entry" {
		t.Fatalf("descendant selector = %+v", li.Selector)
	}
	if li.Selector.Ancestor == nil || li.Selector.Ancestor.Element != "list" {
		t.Errorf("ancestor = %+v", li.Selector.Ancestor)
	}
	if li.Selector.Specificity() != 102 {
		t.Errorf("Specificity() = %d, want 102", li.Selector.Specificity())
	}
	if n, ok := li.Properties["first-line-indent"].Int(); !ok || n != -2 {
		t.Errorf("first-line-indent = %d, %v", n, ok)
	}
	if v := li.Properties["page-number-type"]; v.Keyword != "t-page" {
		t.Errorf("page-number-type = %+v", v)
	}

	if len(sheet.Warnings) != 2 {
		t.Errorf("warnings = %v, want at-rule and pseudo-class", sheet.Warnings)
	}
}

func TestStylesheetMergeAndString(t *testing.T) {
	p := NewParser(nil)
	base := p.Parse([]byte(`p { margin-left: 2; lines-before: 0 }`))
	user := p.Parse([]byte(`p { margin-left: 4 }`))
	base.Merge(user)

	if len(base.Rules) != 2 || base.Rules[1].Order != 1 {
		t.Fatalf("merged rules = %+v", base.Rules)
	}
	want := "p {\n  lines-before: 0;\n  margin-left: 2;\n}\n\np {\n  margin-left: 4;\n}\n"
	if got := base.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestValue(t *testing.T) {
	tests := []struct {
		src     string
		numeric bool
		keyword string
	}{
		{"a { x: 0 }", true, ""},
		{"a { x: 3em }", true, ""},
		{"a { x: center }", false, "center"},
		{`a { x: "dots" }`, false, "dots"},
		{"a { x: 1 2 }", false, "1 2"},
	}
	p := NewParser(nil)
	for _, tt := range tests {
		sheet := p.Parse([]byte(tt.src))
		if len(sheet.Rules) != 1 {
			t.Fatalf("%s: no rule parsed", tt.src)
		}
		v := sheet.Rules[0].Properties["x"]
		if v.IsNumeric() != tt.numeric {
			t.Errorf("%s: IsNumeric() = %v", tt.src, v.IsNumeric())
		}
		if !strings.EqualFold(v.Keyword, tt.keyword) {
			t.Errorf("%s: Keyword = %q, want %q", tt.src, v.Keyword, tt.keyword)
		}
	}
}
