package pagenum

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Translator produces braille dots for untranslated page number text. The
// real text translation lives outside of the engine, page numbers are the
// only text the engine generates on its own.
type Translator interface {
	Translate(s string) string
}

// ASCIITranslator writes North American braille ASCII: digits after a number
// sign, letters following digits after a letter sign.
type ASCIITranslator struct{}

func (ASCIITranslator) Translate(s string) string {
	var (
		b       strings.Builder
		numeric bool
	)
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= '0' && r <= '9':
			if !numeric {
				b.WriteByte('#')
				numeric = true
			}
			b.WriteByte(digitLetters[r-'0'])
		case r >= 'a' && r <= 'z':
			if numeric {
				b.WriteByte(';')
				numeric = false
			}
			b.WriteRune(r)
		case r == '-':
			b.WriteByte('-')
			numeric = false
		case unicode.IsSpace(r):
			b.WriteByte(' ')
			numeric = false
		default:
			b.WriteRune(r)
			numeric = false
		}
	}
	return b.String()
}

// digit -> letter a-j, 0 is j.
const digitLetters = "jabcdefghi"

// DecodeNumber makes best effort to read page number from manually entered
// text: plain integer, type prefixed integer ("t5") or braille letter
// substitution ("#ab", "t#e").
func DecodeNumber(s string) (int, Type, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, Normal, false
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 {
		return n, Normal, true
	}

	typ := Normal
	switch s[0] {
	case 't':
		typ, s = TPage, s[1:]
	case 'p':
		typ, s = PPage, s[1:]
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 {
		return n, typ, true
	}

	s = strings.TrimPrefix(s, "#")
	if s == "" {
		return 0, Normal, false
	}
	n := 0
	for _, r := range s {
		i := strings.IndexRune(digitLetters, r)
		if i < 0 || n > (math.MaxInt-i)/10 {
			return 0, Normal, false
		}
		n = n*10 + i
	}
	return n, typ, true
}
