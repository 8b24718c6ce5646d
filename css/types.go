package css

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode"
)

// Value represents a parsed property value.
type Value struct {
	Raw     string  // original value text ("2", "center", "t-page")
	Value   float64 // numeric value if applicable
	Unit    string  // unit if applicable
	Keyword string  // lower-cased keyword or unquoted string
}

// IsNumeric returns true if the value has a numeric component, including
// explicit zero.
func (v Value) IsNumeric() bool {
	if v.Unit != "" {
		return true
	}
	if v.Raw != "" && v.Keyword == "" {
		first := rune(v.Raw[0])
		return unicode.IsDigit(first) || first == '.' || first == '-' || first == '+'
	}
	return false
}

// IsKeyword returns true if the value is a keyword (no numeric component).
func (v Value) IsKeyword() bool {
	return v.Keyword != "" && v.Unit == ""
}

// Int returns numeric value truncated to int. Braille geometry is counted
// in whole cells and lines so units are ignored.
func (v Value) Int() (int, bool) {
	if !v.IsNumeric() {
		return 0, false
	}
	return int(v.Value), true
}

// Bool interprets keywords "true", "yes", "1" and the like.
func (v Value) Bool() (bool, bool) {
	switch strings.ToLower(v.Raw) {
	case "true", "yes", "on", "1":
		return true, true
	case "false", "no", "off", "0", "none":
		return false, true
	}
	return false, false
}

// Selector represents a parsed selector: element, class or element.class,
// optionally with ancestors ("list li").
type Selector struct {
	Raw      string
	Element  string
	Class    string
	Ancestor *Selector
}

// IsSimple returns true if selector has element or class.
func (s Selector) IsSimple() bool {
	return s.Element != "" || s.Class != ""
}

// Specificity is (classes, elements) folded into a single comparable number.
func (s Selector) Specificity() int {
	n := 0
	for cur := &s; cur != nil; cur = cur.Ancestor {
		if cur.Class != "" {
			n += 100
		}
		if cur.Element != "" {
			n++
		}
	}
	return n
}

// Rule represents a single rule (selector + properties).
type Rule struct {
	Selector   Selector
	Properties map[string]Value
	Order      int // source order, later rules win on equal specificity
}

// GetProperty returns the value for a property.
func (r Rule) GetProperty(name string) (Value, bool) {
	v, ok := r.Properties[name]
	return v, ok
}

// Stylesheet represents a parsed stylesheet.
type Stylesheet struct {
	Rules    []Rule
	Warnings []string
}

// Merge appends rules of other after rules of s, so they take precedence.
func (s *Stylesheet) Merge(other *Stylesheet) {
	if other == nil {
		return
	}
	base := len(s.Rules)
	for _, r := range other.Rules {
		r.Order += base
		s.Rules = append(s.Rules, r)
	}
	s.Warnings = append(s.Warnings, other.Warnings...)
}

// WriteTo writes the stylesheet to w in source order, properties sorted.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, rule := range s.Rules {
		if i > 0 {
			n, err := io.WriteString(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
		n, err := writeRule(w, &rule)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String returns the text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

func writeRule(w io.Writer, rule *Rule) (int, error) {
	names := make([]string, 0, len(rule.Properties))
	for name := range rule.Properties {
		names = append(names, name)
	}
	slices.Sort(names)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s {\n", rule.Selector.Raw)
	for _, name := range names {
		fmt.Fprintf(&sb, "  %s: %s;\n", name, rule.Properties[name].Raw)
	}
	sb.WriteString("}\n")
	return io.WriteString(w, sb.String())
}
