package pagenum

import "strconv"

// Tracker is an immutable snapshot of page numbering. Every method returns a
// new value, the receiver is never modified.
type Tracker struct {
	counts  [numTypes]int
	current Type
	letter  string
	padding int
}

// NewTracker returns tracker positioned before the first page of typ.
func NewTracker(typ Type, padding int) Tracker {
	return Tracker{current: typ, padding: padding}
}

func (t Tracker) Type() Type { return t.current }

// Number is the count of the current type.
func (t Tracker) Number() int { return t.counts[t.current] }

func (t Tracker) Count(typ Type) int {
	if typ < 0 || typ >= numTypes {
		return 0
	}
	return t.counts[typ]
}

func (t Tracker) ContinuationLetter() string { return t.letter }

func (t Tracker) Padding() int { return t.padding }

// NextPage increments counter for typ and makes it current. When pages are
// not continued switching to a different type restarts all other sequences.
func (t Tracker) NextPage(typ Type, continuePages bool) Tracker {
	if !continuePages && typ != t.current {
		t.resetOthers(typ)
	}
	t.counts[typ]++
	t.current = typ
	return t
}

// ResetNumberCounters restarts counting at 1 for typ.
func (t Tracker) ResetNumberCounters(typ Type, continuePages bool) Tracker {
	if !continuePages {
		t.resetOthers(typ)
	}
	t.counts[typ] = 1
	t.current = typ
	return t
}

// SetPageNumberTypeContinue makes typ current without incrementing it, a
// type never used before starts at 1. Other sequences are kept.
func (t Tracker) SetPageNumberTypeContinue(typ Type) Tracker {
	t.counts[typ] = max(t.counts[typ], 1)
	t.current = typ
	return t
}

// WithNumber sets the number of typ explicitly, used by manual renumbering.
func (t Tracker) WithNumber(typ Type, n int) Tracker {
	t.counts[typ] = max(n, 0)
	t.current = typ
	return t
}

// WithContinuationLetter sets print page continuation letter of the page,
// a manual override or a new print page replaces the running one.
func (t Tracker) WithContinuationLetter(letter string) Tracker {
	t.letter = letter
	return t
}

// NextContinuationLetter advances letter for a braille page continuing the
// same print page.
func (t Tracker) NextContinuationLetter() Tracker {
	t.letter = NextLetter(t.letter)
	return t
}

// Label is untranslated page number as it is shown on the page: "3", "t3", "p3".
func (t Tracker) Label() string {
	return t.current.Prefix() + strconv.Itoa(t.Number())
}

func (t *Tracker) resetOthers(keep Type) {
	for i := range t.counts {
		if Type(i) != keep {
			t.counts[i] = 0
		}
	}
}

// NextLetter returns continuation letter following l: "" -> "a", "z" ->
// "aa", "aa" -> "bb", "zz" -> "aaa".
func NextLetter(l string) string {
	if l == "" {
		return "a"
	}
	c := l[0]
	if c < 'a' || c > 'z' {
		return "a"
	}
	if c == 'z' {
		return repeat('a', len(l)+1)
	}
	return repeat(c+1, len(l))
}

func repeat(c byte, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = c
	}
	return string(b)
}

// Dots is translated Label.
func (t Tracker) Dots(tr Translator) string {
	return tr.Translate(t.Label())
}
