// Package debug produces human readable dumps of formatted pages.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

// TreeWriter accumulates indented dump lines.
type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

func (tw TreeWriter) indent(depth int) {
	for range depth {
		tw.w.WriteString("  ")
	}
}

func (tw TreeWriter) Line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

func (tw TreeWriter) TextBlock(depth int, label, value string) {
	tw.indent(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value))
	tw.w.WriteByte('\n')
}

// Grid writes lines of a page numbered from 00, trailing blanks are dropped.
// Ruler with cell positions goes first when width is positive.
func (tw TreeWriter) Grid(depth, width int, lines []string) {
	if width > 0 {
		var sb strings.Builder
		for x := range width {
			sb.WriteByte(byte('0' + x%10))
		}
		tw.TextBlock(depth, "  ", sb.String())
	}
	for y, line := range lines {
		tw.TextBlock(depth, fmt.Sprintf("%02d", y), strings.TrimRight(line, " "))
	}
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
