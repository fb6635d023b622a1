package word

import (
	"errors"
	"math/bits"
	"strings"
)

// MaxLetters is the number of distinct letters a word may use ('a'..'z').
const MaxLetters = 26

// IdentitySymbol is the display form of the empty word.
const IdentitySymbol = "0"

var (
	// ErrInvalidSymbol is returned when input contains a rune outside the
	// declared alphabet.
	ErrInvalidSymbol = errors.New("word: invalid symbol")

	// ErrAlphabetSize is returned for an alphabet size outside [0, MaxLetters].
	ErrAlphabetSize = errors.New("word: alphabet size out of range")
)

// Letter is a slot index into the ordered symbol set; 0 renders as 'a'.
type Letter uint8

// Rune returns the display rune of l.
func (l Letter) Rune() rune { return rune('a' + l) }

// String returns the single-letter display form of l.
func (l Letter) String() string { return string(l.Rune()) }

// Word is an immutable-by-convention sequence of letters.
type Word []Letter

// Alphabet is the set of letters occurring in a word, one bit per letter.
type Alphabet uint32

// Full returns the alphabet {0, …, n-1}.
func Full(n int) Alphabet {
	if n <= 0 {
		return 0
	}
	if n >= MaxLetters {
		n = MaxLetters
	}
	return Alphabet(1)<<uint(n) - 1
}

// Of builds an alphabet from the given letters.
func Of(letters ...Letter) Alphabet {
	var a Alphabet
	for _, l := range letters {
		a |= 1 << l
	}
	return a
}

// Has reports whether l is a member of a.
func (a Alphabet) Has(l Letter) bool { return a&(1<<l) != 0 }

// With returns a ∪ {l}.
func (a Alphabet) With(l Letter) Alphabet { return a | 1<<l }

// Without returns a \ {l}.
func (a Alphabet) Without(l Letter) Alphabet { return a &^ (1 << l) }

// Len returns |a|.
func (a Alphabet) Len() int { return bits.OnesCount32(uint32(a)) }

// SubsetOf reports whether every letter of a is in b.
func (a Alphabet) SubsetOf(b Alphabet) bool { return a&^b == 0 }

// Letters returns the members of a in increasing order.
func (a Alphabet) Letters() []Letter {
	out := make([]Letter, 0, a.Len())
	for rest := uint32(a); rest != 0; rest &= rest - 1 {
		out = append(out, Letter(bits.TrailingZeros32(rest)))
	}
	return out
}

// String renders a as "{a,b,c}".
func (a Alphabet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, l := range a.Letters() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(l.Rune())
	}
	sb.WriteByte('}')
	return sb.String()
}
