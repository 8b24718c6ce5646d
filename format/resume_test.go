package format

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"

	"utdfmt/style"
)

func TestResume(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		partial bool
		pages   int
	}{
		{name: "page start", id: "b", partial: true, pages: 2},
		{name: "middle of page", id: "c", partial: true, pages: 2},
		{name: "first page", id: "a", partial: true, pages: 3},
		{name: "unknown element", id: "nope", partial: false, pages: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := readDoc(t, threeParagraphs)
			settings, sheet := testSettings(t, 3), testSheet(t)
			if _, err := Format(context.Background(), doc, settings, sheet, Options{WriteUTD: true}, zap.NewNop()); err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			want := docString(t, doc)

			res, err := Resume(context.Background(), doc, tt.id, settings, sheet, Options{WriteUTD: true}, zap.NewNop())
			if err != nil {
				t.Fatalf("Resume() error = %v", err)
			}
			if res.Partial != tt.partial || res.Pages != tt.pages {
				t.Errorf("Result = %+v", res)
			}
			if got := docString(t, doc); got != want {
				t.Errorf("resumed document differs\n%s\nwant\n%s", got, want)
			}
		})
	}
}

func TestResumeReproducesDocument(t *testing.T) {
	repeat := func(format string, n int) string {
		var b strings.Builder
		for i := range n {
			fmt.Fprintf(&b, format, i+1)
		}
		return b.String()
	}
	tests := []struct {
		name string
		xml  string
		ids  []string
	}{
		{
			name: "nested inline text",
			xml:  `<utd><head/><body>` + repeat(`<p id="q%d"><em><brl>xxx yy</brl></em><brl> zz www</brl></p>`, 6) + `</body></utd>`,
			ids:  []string{"q1", "q2", "q3", "q4", "q5", "q6"},
		},
		{
			name: "override chain",
			xml: `<utd><head><meta name="utd">` +
				`<pageOverride type="braille" original="3" new="20"/>` +
				`<pageOverride type="braille" original="20" new="t3"/>` +
				`</meta></head><body>` + repeat(`<p id="r%d"><brl>aaaa bbbb cccc dddd</brl></p>`, 5) + `</body></utd>`,
			ids: []string{"r2", "r3", "r4", "r5"},
		},
		{
			name: "blank line before page start",
			xml: `<utd><head/><body>` +
				`<p id="a"><brl>aaaa bbbb cccc dddd</brl></p><skip/>` +
				`<p id="b"><brl>eeee ffff</brl></p>` +
				`<p id="c"><brl>hhhh</brl></p>` +
				`</body></utd>`,
			ids: []string{"b", "c"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := readDoc(t, tt.xml)
			settings, sheet := testSettings(t, 3), testSheet(t)
			if _, err := Format(context.Background(), doc, settings, sheet, Options{WriteUTD: true}, zap.NewNop()); err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			want := docString(t, doc)

			for _, id := range tt.ids {
				resumed := readDoc(t, want)
				res, err := Resume(context.Background(), resumed, id, settings, sheet, Options{WriteUTD: true}, zap.NewNop())
				if err != nil {
					t.Fatalf("Resume(%s) error = %v", id, err)
				}
				if !res.Partial {
					t.Errorf("Resume(%s) formatted whole document", id)
				}
				if got := docString(t, resumed); got != want {
					t.Errorf("document resumed at %s differs\n%s\nwant\n%s", id, got, want)
				}
			}
		})
	}
}

func TestResumeRunningHead(t *testing.T) {
	doc := readDoc(t, threeParagraphs)
	settings, sheet := testSettings(t, 4), testSheet(t)
	settings.RunningHead = "head"
	if _, err := Format(context.Background(), doc, settings, sheet, Options{WriteUTD: true}, zap.NewNop()); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	want := docString(t, doc)
	if !strings.Contains(want, `type="runningHead"`) {
		t.Fatalf("running head is not written\n%s", want)
	}

	res, err := Resume(context.Background(), doc, "c", settings, sheet, Options{WriteUTD: true}, zap.NewNop())
	if err != nil {
		t.Fatalf("Resume() error = %v", err)
	}
	if !res.Partial {
		t.Error("formatting should resume")
	}
	if got := docString(t, doc); got != want {
		t.Errorf("resumed document differs\n%s\nwant\n%s", got, want)
	}
}

func TestStartsPage(t *testing.T) {
	tests := []struct {
		name string
		xml  string
		want bool
	}{
		{name: "page start", xml: `<brl><newPage brlnum="2"/><moveTo hPos="0" vPos="0"/>abc</brl>`, want: true},
		{name: "page inside", xml: `<brl>ab<newPage brlnum="2"/>c</brl>`},
		{name: "two pages", xml: `<brl><newPage brlnum="2"/><newPage brlnum="3"/>abc</brl>`},
		{name: "no markers", xml: `<brl>abc</brl>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := readDoc(t, tt.xml)
			if _, got := startsPage(doc.Root()); got != tt.want {
				t.Errorf("startsPage() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResumableAncestors(t *testing.T) {
	doc := readDoc(t, `<utd><body><p><brl>a</brl></p><table><tr><td><brl>b</brl></td></tr></table></body></utd>`)
	body := doc.FindElement("//body")
	f := &Selector{styles: testSheet(t), table: map[style.FormatKind]Formatter{
		style.FormatKindLiterary: literary{},
		style.FormatKindTable:    table{},
	}}
	brls := body.FindElements(".//brl")
	if !f.resumable(body, brls[0]) {
		t.Error("paragraph text should be resumable")
	}
	if f.resumable(body, brls[1]) {
		t.Error("table cell should not be resumable")
	}
}
