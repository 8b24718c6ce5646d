package debug

import (
	"testing"
)

func TestTreeWriterLine(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		format string
		args   []any
		want   string
	}{
		{name: "no depth", format: "page", want: "page\n"},
		{name: "indented", depth: 2, format: "page %d", args: []any{3}, want: "    page 3\n"},
		{name: "quoted", depth: 1, format: "print %q", args: []any{"iv"}, want: "  print \"iv\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Line(tt.depth, tt.format, tt.args...)
			if got := tw.String(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriterTextBlock(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "text", value: "abc", want: "  00: \"abc\"\n"},
		{name: "empty", value: "", want: "  00: \n"},
		{name: "escaped", value: "a\"b", want: "  00: \"a\\\"b\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.TextBlock(1, "00", tt.value)
			if got := tw.String(); got != tt.want {
				t.Errorf("TextBlock() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriterGrid(t *testing.T) {
	tests := []struct {
		name  string
		width int
		lines []string
		want  string
	}{
		{
			name:  "no ruler",
			lines: []string{"ab  ", "    ", "  #a"},
			want:  "00: \"ab\"\n01: \n02: \"  #a\"\n",
		},
		{
			name:  "ruler",
			width: 12,
			lines: []string{"x"},
			want:  "  : \"012345678901\"\n00: \"x\"\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Grid(0, tt.width, tt.lines)
			if got := tw.String(); got != tt.want {
				t.Errorf("Grid() = %q, want %q", got, tt.want)
			}
		})
	}
}
