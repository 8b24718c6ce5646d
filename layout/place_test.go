package layout

import (
	"strings"
	"testing"

	"utdfmt/common"
	"utdfmt/style"
)

func TestAddBrlWrapping(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
		want  string
		x, y  int
	}{
		{
			name:  "fits on line",
			texts: []string{"one two"},
			want:  "one two\n\n",
			x:     7,
		},
		{
			name:  "word moves to next line",
			texts: []string{"abcd ", "braille"},
			want:  "abcd\nbraille\n",
			x:     7, y: 1,
		},
		{
			name:  "break at space",
			texts: []string{"aaaa bbbb cccc"},
			want:  "aaaa bbbb\ncccc\n",
			x:     4, y: 1,
		},
		{
			name:  "long word is split",
			texts: []string{"abcdefghijklmno"},
			want:  "abcdefghij\nklmno\n",
			x:     5, y: 1,
		},
		{
			name:  "word started by previous text is pulled back",
			texts: []string{"xx abcd", "efgh"},
			want:  "xx\nabcdefgh\n",
			x:     8, y: 1,
		},
		{
			name:  "leading space of unit ends the word",
			texts: []string{"xx abcd", " efghijk"},
			want:  "xx abcd\nefghijk\n",
			x:     7, y: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, 10, 3)
			p := s.Start()
			for _, brl := range brlElements(tt.texts...) {
				pbs := p.AddBrl(brl)
				if len(pbs) != 1 {
					t.Fatalf("unexpected page break, %d pages", len(pbs))
				}
			}
			if got := p.Grid().String(); got != tt.want {
				t.Errorf("page\n%s\nwant\n%s", got, tt.want)
			}
			if x, y := p.Cursor(); x != tt.x || y != tt.y {
				t.Errorf("Cursor() = %d, %d, want %d, %d", x, y, tt.x, tt.y)
			}
		})
	}
}

func TestAddBrlMargins(t *testing.T) {
	s := newTestSession(t, 10, 4)
	p := s.Start()
	st := &style.Style{Name: "p", LeftMargin: 2, FirstLineIndent: 2, LineSpacing: -1}
	p.StartBlock(st)
	p.AddBrl(brlElements("aaa bbb ccc ddd")[0])
	p.EndBlock(st)

	want := "    aaa\n  bbb ccc\n  ddd\n"
	if got := p.Grid().String(); got != want {
		t.Errorf("page\n%s\nwant\n%s", got, want)
	}
}

func TestAddBrlCentered(t *testing.T) {
	s := newTestSession(t, 10, 2)
	p := s.Start()
	st := &style.Style{Name: "h1", Align: common.AlignCenter, LineSpacing: -1}
	p.StartBlock(st)
	p.AddBrl(brlElements("head")[0])
	p.EndBlock(st)

	if got := p.Grid().Line(0); got != "   head   " {
		t.Errorf("line = %q", got)
	}
}

func TestAddBrlPageOverflow(t *testing.T) {
	s := newTestSession(t, 10, 3, bottomRightNumbers, func(st *Settings) { st.PageNumberPadding = 1 })
	p := s.Start()
	pbs := p.AddBrl(brlElements(strings.Repeat("aaaa ", 12))[0])
	if len(pbs) != 3 {
		t.Fatalf("got %d pages, want 3", len(pbs))
	}
	for i, pb := range pbs {
		if pb.Ordinal() != i+1 || pb.Tracker().Number() != i+1 {
			t.Errorf("page %d: ordinal %d number %d", i, pb.Ordinal(), pb.Tracker().Number())
		}
	}
	if got := pbs[0].Grid().Line(2); got != "aaaa    #a" {
		t.Errorf("bottom line = %q", got)
	}
	if got := pbs[2].Grid().Line(0); got != "aaaa aaaa " {
		t.Errorf("last page first line = %q", got)
	}
}

func TestSkipLinesAtTop(t *testing.T) {
	s := newTestSession(t, 10, 4)
	p := s.Start()
	p.SkipLines(2)
	p.AddBrl(brlElements("one")[0])
	if got := p.Grid().String(); got != "\n\none\n" {
		t.Errorf("page\n%q", got)
	}

	// block spacing is dropped at the top of page
	s = newTestSession(t, 10, 4)
	p = s.Start()
	st := &style.Style{Name: "p", LinesBefore: 2, LineSpacing: -1}
	p.StartBlock(st)
	p.AddBrl(brlElements("one")[0])
	if got := p.Grid().Line(0); got != "one       " {
		t.Errorf("line 0 = %q", got)
	}
}

func TestRunningHead(t *testing.T) {
	s := newTestSession(t, 20, 3, func(st *Settings) { st.RunningHead = "head" })
	p := s.Start()
	p.AddBrl(brlElements("text")[0])
	want := "        head\ntext\n"
	if got := p.Grid().String(); got != want {
		t.Errorf("page\n%s\nwant\n%s", got, want)
	}
	if p.RunningHead() != "head" {
		t.Errorf("RunningHead() = %q", p.RunningHead())
	}
}

func TestPrintPageIndicator(t *testing.T) {
	s := newTestSession(t, 10, 3)
	p := s.Start()

	// at the top of page print number changes, no line is written
	p.PrintPageIndicator("7", s.Arena.Last())
	if p.Print().Label != "7" {
		t.Errorf("Print().Label = %q, want 7", p.Print().Label)
	}
	if p.Grid().HasContent() {
		t.Error("indicator at the top of page should not write separator")
	}

	p.AddBrl(brlElements("aaaa")[0])
	p.PrintPageIndicator("8", s.Arena.Last())
	p.AddBrl(brlElements("bbbb")[0])
	want := "aaaa\n------- #h\nbbbb"
	if got := p.Grid().String(); got != want {
		t.Errorf("page\n%s\nwant\n%s", got, want)
	}
	if p.Print().Label != "8" {
		t.Errorf("Print().Label = %q, want 8", p.Print().Label)
	}
}
