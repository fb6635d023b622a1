package word

import (
	"fmt"
	"strings"
)

// Parse reads a word over the full 26-letter alphabet.
// The identity symbol "0" (or an empty string) yields the empty word.
func Parse(s string) (Word, error) {
	return ParseOver(s, MaxLetters)
}

// ParseOver reads a word whose letters must lie in the first n letters.
// Any other rune is reported as ErrInvalidSymbol with its position.
func ParseOver(s string, n int) (Word, error) {
	if n < 0 || n > MaxLetters {
		return nil, fmt.Errorf("%w: %d", ErrAlphabetSize, n)
	}
	s = strings.TrimSpace(s)
	if s == "" || s == IdentitySymbol {
		return Word{}, nil
	}
	w := make(Word, 0, len(s))
	for i, r := range s {
		if r < 'a' || r >= 'a'+rune(n) {
			return nil, fmt.Errorf("%w: %q at position %d (alphabet %s)",
				ErrInvalidSymbol, r, i, Full(n))
		}
		w = append(w, Letter(r-'a'))
	}
	return w, nil
}

// MustParse is Parse for literals known to be valid; it panics otherwise.
func MustParse(s string) Word {
	w, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return w
}

// String renders w, using IdentitySymbol for the empty word.
func (w Word) String() string {
	if len(w) == 0 {
		return IdentitySymbol
	}
	b := make([]byte, len(w))
	for i, l := range w {
		b[i] = byte('a' + l)
	}
	return string(b)
}

// Key returns a compact map key for w. Unlike String, the empty word maps to "".
func (w Word) Key() string {
	b := make([]byte, len(w))
	for i, l := range w {
		b[i] = byte(l)
	}
	return string(b)
}

// FromKey is the inverse of Key.
func FromKey(k string) Word {
	w := make(Word, len(k))
	for i := 0; i < len(k); i++ {
		w[i] = Letter(k[i])
	}
	return w
}

// Alphabet returns the set of distinct letters of w.
func (w Word) Alphabet() Alphabet {
	var a Alphabet
	for _, l := range w {
		a |= 1 << l
	}
	return a
}

// Equal reports whether w and v spell the same letters.
func (w Word) Equal(v Word) bool {
	if len(w) != len(v) {
		return false
	}
	for i := range w {
		if w[i] != v[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of w that shares no storage with it.
func (w Word) Clone() Word {
	out := make(Word, len(w))
	copy(out, w)
	return out
}

// Index returns the first position of l in w, or -1.
func (w Word) Index(l Letter) int {
	for i, x := range w {
		if x == l {
			return i
		}
	}
	return -1
}

// LastIndex returns the last position of l in w, or -1.
func (w Word) LastIndex(l Letter) int {
	for i := len(w) - 1; i >= 0; i-- {
		if w[i] == l {
			return i
		}
	}
	return -1
}

// Concat joins the given words and letters-as-words into a fresh word.
func Concat(parts ...Word) Word {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make(Word, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// Compare orders words shortlex: shorter first, then letter by letter.
// It returns -1, 0 or +1.
func Compare(a, b Word) int {
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
