package style

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/beevik/etree"
	"go.uber.org/zap/zaptest"

	"utdfmt/common"
	"utdfmt/pagenum"
)

func testDoc(t *testing.T, xml string) *etree.Document {
	t.Helper()
	doc := etree.NewDocument()
	if err := doc.ReadFromString(xml); err != nil {
		t.Fatalf("bad test document: %v", err)
	}
	return doc
}

func TestSheetResolveDefaults(t *testing.T) {
	sheet, err := NewSheet("", zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("NewSheet() error = %v", err)
	}
	doc := testDoc(t, `<utd><head/><body><h1/><p/><list><li><list><li/></list></li></list><em/><tpage/><frontmatter/><unknown/></body></utd>`)

	tests := []struct {
		path  string
		check func(t *testing.T, st *Style)
	}{
		{"//head", func(t *testing.T, st *Style) {
			if st.Format != FormatKindDontFormat {
				t.Errorf("Format = %v", st.Format)
			}
		}},
		{"//h1", func(t *testing.T, st *Style) {
			if st.Align != common.AlignCenter || !st.KeepWithNext || st.LinesBefore != 1 {
				t.Errorf("h1 style = %+v", st)
			}
		}},
		{"//p", func(t *testing.T, st *Style) {
			if st.FirstLineStart() != 2 || st.LeftMargin != 0 {
				t.Errorf("p style = %+v", st)
			}
		}},
		{"//list/li", func(t *testing.T, st *Style) {
			if st.LeftMargin != 2 || st.FirstLineStart() != 0 {
				t.Errorf("li style = %+v", st)
			}
		}},
		{"//li/list/li", func(t *testing.T, st *Style) {
			if st.LeftMargin != 4 || st.FirstLineStart() != 2 {
				t.Errorf("nested li style = %+v", st)
			}
		}},
		{"//em", func(t *testing.T, st *Style) {
			if !st.Inline {
				t.Error("em should be inline")
			}
		}},
		{"//tpage", func(t *testing.T, st *Style) {
			if !st.HasPageNumberType || st.PageNumberType != pagenum.TPage {
				t.Errorf("tpage style = %+v", st)
			}
		}},
		{"//frontmatter", func(t *testing.T, st *Style) {
			if st.PageNumberType != pagenum.PPage || !st.PageNumberReset {
				t.Errorf("frontmatter style = %+v", st)
			}
		}},
		{"//unknown", func(t *testing.T, st *Style) {
			if st.Format != FormatKindLiterary || st.Inline || st.LineSpacing != -1 {
				t.Errorf("default style = %+v", st)
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			el := doc.FindElement(tt.path)
			if el == nil {
				t.Fatalf("%s not found", tt.path)
			}
			tt.check(t, sheet.Resolve(el))
		})
	}
}

func TestSheetUserOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.css")
	user := `p { first-line-indent: 4; margin-right: 2 }
.note { format: box; pages-before: 1 }
p.note { page-break-inside: avoid }`
	if err := os.WriteFile(path, []byte(user), 0644); err != nil {
		t.Fatal(err)
	}
	sheet, err := NewSheet(path, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("NewSheet() error = %v", err)
	}
	doc := testDoc(t, `<body><p/><p class="x note"/></body>`)

	p := sheet.Resolve(doc.FindElement("//p[1]"))
	if p.FirstLineIndent != 4 || p.RightMargin != 2 {
		t.Errorf("user p style not applied: %+v", p)
	}
	note := sheet.Resolve(doc.FindElement("//p[2]"))
	if note.Format != FormatKindBox || note.PagesBefore != 1 || !note.DontSplit {
		t.Errorf("class style not applied: %+v", note)
	}
	if sheet.Resolve(doc.FindElement("//p[2]")) != note {
		t.Error("resolved style is not cached")
	}
}

func TestSheetMissingFile(t *testing.T) {
	if _, err := NewSheet("/nonexistent.css", zaptest.NewLogger(t)); err == nil {
		t.Error("expected error")
	}
}

func TestStack(t *testing.T) {
	var s Stack
	if s.Top() != nil || s.Block() != nil {
		t.Fatal("empty stack should return nil")
	}
	block := &Style{Name: "p"}
	inline := &Style{Name: "em", Inline: true}
	s.Push(block)
	s.Push(inline)
	if s.Top() != inline || s.Block() != block || s.Len() != 2 || s.At(0) != block {
		t.Error("unexpected stack state")
	}
	c := s.Clone()
	if s.Pop() != inline {
		t.Error("Pop returned wrong style")
	}
	if c.Len() != 2 {
		t.Error("clone shares storage with original")
	}
	s.Pop()
	defer func() {
		if recover() == nil {
			t.Error("expected panic on empty pop")
		}
	}()
	s.Pop()
}
