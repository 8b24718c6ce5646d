package linewrap

import (
	"github.com/dlclark/regexp2"

	"utdfmt/common"
)

// RegexWrapper implements Wrapper with ordered regular expression rules.
type RegexWrapper struct {
	breaks    []*Rule
	lineStart []*Rule
}

// NewRegexWrapper splits rule set into break and line start rules, space
// fallback is always appended.
func NewRegexWrapper(rs *RuleSet) *RegexWrapper {
	w := &RegexWrapper{}
	for _, r := range rs.Rules {
		if r.LineStart {
			w.lineStart = append(w.lineStart, r)
		} else {
			w.breaks = append(w.breaks, r)
		}
	}
	w.breaks = append(w.breaks, &Rule{
		Pattern: fallbackPattern,
		Consume: true,
		re:      regexp2.MustCompile(fallbackPattern, regexp2.None),
	})
	return w
}

func (w *RegexWrapper) FindNextBreakPoint(text []rune, start, maxRun int) (BreakPoint, bool) {
	if start >= len(text) || len(text)-start <= maxRun {
		return BreakPoint{Pos: len(text), Next: len(text), InsertPos: len(text)}, true
	}

	beyond := BreakPoint{Pos: len(text), Next: len(text), InsertPos: len(text)}
	for _, r := range w.breaks {
		best, found := BreakPoint{}, false
		m, _ := r.re.FindRunesMatchStartingAt(text, start)
		for m != nil {
			bp := r.breakPoint(text, m)
			if bp.Pos > start {
				if bp.Width(start) > maxRun {
					if bp.Pos < beyond.Pos {
						beyond = bp
					}
					break
				}
				best, found = bp, true
			}
			m, _ = r.re.FindNextMatch(m)
		}
		if found {
			return best, true
		}
	}
	return beyond, false
}

func (w *RegexWrapper) CheckStartLineInsertion(text []rune, start int) (string, int, bool) {
	if start >= len(text) {
		return "", start, false
	}
	for _, r := range w.lineStart {
		m, _ := r.re.FindRunesMatchStartingAt(text, start)
		if m != nil && m.Index == start {
			return r.Insert, start, true
		}
	}
	return "", start, false
}

func (r *Rule) breakPoint(text []rune, m *regexp2.Match) BreakPoint {
	bp := BreakPoint{Insert: r.Insert}
	if r.Consume {
		bp.Pos, bp.Next = m.Index, m.Index+m.Length
	} else {
		bp.Pos = m.Index + m.Length
		bp.Next = skipSpaces(text, bp.Pos)
	}
	bp.InsertPos = bp.Pos
	return bp
}

func skipSpaces(text []rune, i int) int {
	for i < len(text) && (text[i] == ' ' || text[i] == '\u00a0') {
		i++
	}
	return i
}

// Load returns wrapper for braille code, rules from path take precedence
// when path is not empty.
func Load(code common.BrailleCode, path string) (*RegexWrapper, error) {
	var (
		rs  *RuleSet
		err error
	)
	if path != "" {
		rs, err = LoadRulesFile(path)
	} else {
		rs, err = LoadRules(code)
	}
	if err != nil {
		return nil, err
	}
	return NewRegexWrapper(rs), nil
}
