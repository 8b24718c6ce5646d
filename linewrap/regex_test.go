package linewrap

import (
	"strings"
	"testing"

	"utdfmt/common"
)

func mustWrapper(t *testing.T, code common.BrailleCode) *RegexWrapper {
	t.Helper()
	w, err := Load(code, "")
	if err != nil {
		t.Fatalf("Load(%s): %v", code, err)
	}
	return w
}

func TestFindNextBreakPoint(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		start  int
		maxRun int
		want   BreakPoint
		wantOK bool
	}{
		{
			name: "fits", text: "hello world", maxRun: 20,
			want: BreakPoint{Pos: 11, Next: 11, InsertPos: 11}, wantOK: true,
		},
		{
			name: "rightmost space", text: "hello world foo", maxRun: 12,
			want: BreakPoint{Pos: 11, Next: 12, InsertPos: 11}, wantOK: true,
		},
		{
			name: "consecutive spaces consumed", text: "ab   cd ef", maxRun: 4,
			want: BreakPoint{Pos: 2, Next: 5, InsertPos: 2}, wantOK: true,
		},
		{
			name: "offset start", text: "one two three", start: 4, maxRun: 3,
			want: BreakPoint{Pos: 7, Next: 8, InsertPos: 7}, wantOK: true,
		},
		{
			name: "leading space ignored", text: " abc def", maxRun: 5,
			want: BreakPoint{Pos: 4, Next: 5, InsertPos: 4}, wantOK: true,
		},
		{
			name: "hyphen when no space fits", text: "well-known fact", maxRun: 7,
			want: BreakPoint{Pos: 5, Next: 5, InsertPos: 5}, wantOK: true,
		},
		{
			name: "numeric continuation", text: "#abcdef", maxRun: 4,
			want: BreakPoint{Pos: 3, Next: 3, Insert: `"`, InsertPos: 3}, wantOK: true,
		},
		{
			name: "unbreakable word", text: "abcdefghij klm", maxRun: 5,
			want: BreakPoint{Pos: 10, Next: 11, InsertPos: 10}, wantOK: false,
		},
		{
			name: "unbreakable tail", text: "abcdefghij", maxRun: 5,
			want: BreakPoint{Pos: 10, Next: 10, InsertPos: 10}, wantOK: false,
		},
		{
			name: "no-break space", text: "ab cd\u00a0ef", maxRun: 6,
			want: BreakPoint{Pos: 5, Next: 6, InsertPos: 5}, wantOK: true,
		},
	}

	w := mustWrapper(t, common.BrailleCodeUeb)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := w.FindNextBreakPoint([]rune(tt.text), tt.start, tt.maxRun)
			if ok != tt.wantOK {
				t.Errorf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFindNextBreakPointNoOpWrap(t *testing.T) {
	w := mustWrapper(t, common.BrailleCodeUeb)
	for _, text := range []string{"", "a", "the quick brown", "#abc-#def"} {
		r := []rune(text)
		bp, ok := w.FindNextBreakPoint(r, 0, len(r))
		if !ok || bp.Pos != len(r) || bp.Insert != "" {
			t.Errorf("%q: got %+v ok=%v, want whole text", text, bp, ok)
		}
	}
}

func TestCheckStartLineInsertion(t *testing.T) {
	tests := []struct {
		code   common.BrailleCode
		text   string
		start  int
		want   string
		wantOK bool
	}{
		{common.BrailleCodeEbae, "#abcd", 3, "#", true},
		{common.BrailleCodeEbae, "#ab cd", 4, "", false},
		{common.BrailleCodeEbae, "word", 0, "", false},
		{common.BrailleCodeUeb, "#abcd", 3, "", false},
	}
	for _, tt := range tests {
		w := mustWrapper(t, tt.code)
		got, pos, ok := w.CheckStartLineInsertion([]rune(tt.text), tt.start)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("%s %q@%d: got (%q, %v), want (%q, %v)", tt.code, tt.text, tt.start, got, ok, tt.want, tt.wantOK)
		}
		if pos != tt.start {
			t.Errorf("%s %q@%d: pos = %d", tt.code, tt.text, tt.start, pos)
		}
	}
}

func TestEBAENumberHyphenated(t *testing.T) {
	w := mustWrapper(t, common.BrailleCodeEbae)
	bp, ok := w.FindNextBreakPoint([]rune("#abcdef"), 0, 5)
	if !ok {
		t.Fatal("expected break inside number")
	}
	if bp.Pos != 4 || bp.Insert != "-" {
		t.Errorf("got %+v, want Pos 4 with hyphen", bp)
	}
}

func TestParseRules(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{name: "valid", yaml: "name: x\nrules:\n  - pattern: '-'\n"},
		{name: "empty", yaml: "name: x\n", wantErr: "no rules"},
		{name: "bad pattern", yaml: "name: x\nrules:\n  - pattern: '(?<=a'\n", wantErr: "rule 0"},
		{name: "unknown field", yaml: "name: x\nrulez: []\n", wantErr: "decode"},
		{name: "empty pattern", yaml: "name: x\nrules:\n  - insert: 'a'\n", wantErr: "empty pattern"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRules(strings.NewReader(tt.yaml))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
