package decompose

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/freeband/word"
)

// ErrAlphabetTooSmall is returned when w uses fewer than two letters.
// Callers handle the identity and single-letter words themselves, so this
// signals a broken contract rather than bad user input.
var ErrAlphabetTooSmall = errors.New("decompose: alphabet of word must have at least two letters")

// Tuple is the decomposition of a word. Prefix and Suffix borrow the
// storage of the decomposed word and must not be modified.
type Tuple struct {
	Prefix word.Word
	A      word.Letter
	B      word.Letter
	Suffix word.Word

	src  word.Word // decomposed word
	aPos int       // index of A in src
	bPos int       // index of B in src
}

// Decompose computes the tuple of w.
func Decompose(w word.Word) (Tuple, error) {
	alpha := w.Alphabet()
	k := alpha.Len()
	if k < 2 {
		return Tuple{}, fmt.Errorf("%w: %s has alphabet %s", ErrAlphabetTooSmall, w, alpha)
	}

	// 1. Left-to-right: the k-th distinct letter closes the prefix.
	aPos := scan(w, k, 0, len(w), 1)

	// 2. Right-to-left: the k-th distinct letter closes the suffix.
	bPos := scan(w, k, len(w)-1, -1, -1)

	return Tuple{
		Prefix: w[:aPos],
		A:      w[aPos],
		B:      w[bPos],
		Suffix: w[bPos+1:],
		src:    w,
		aPos:   aPos,
		bPos:   bPos,
	}, nil
}

// scan walks w from start towards stop and returns the index at which the
// k-th distinct letter first appears.
func scan(w word.Word, k, start, stop, dir int) int {
	var seen word.Alphabet
	count := 0
	for i := start; i != stop; i += dir {
		if seen.Has(w[i]) {
			continue
		}
		seen = seen.With(w[i])
		count++
		if count == k {
			return i
		}
	}
	// unreachable: k is the size of w's alphabet
	return start
}

// Head returns Prefix·A as a view of the decomposed word.
func (t Tuple) Head() word.Word { return t.src[:t.aPos+1] }

// Tail returns B·Suffix as a view of the decomposed word.
func (t Tuple) Tail() word.Word { return t.src[t.bPos:] }

// Middle returns the letters strictly between A and B, or an empty word
// when Head and Tail touch or overlap.
func (t Tuple) Middle() word.Word {
	if t.bPos <= t.aPos+1 {
		return word.Word{}
	}
	return t.src[t.aPos+1 : t.bPos]
}

// Overlap returns how many letters Head and Tail share in the source word.
func (t Tuple) Overlap() int {
	if o := t.aPos + 1 - t.bPos; o > 0 {
		return o
	}
	return 0
}

// Alphabet returns the alphabet of the decomposed word.
func (t Tuple) Alphabet() word.Alphabet {
	return t.Prefix.Alphabet().With(t.A)
}

// Word reconstructs the decomposed word from Head, Middle and Tail,
// counting overlapping letters once.
func (t Tuple) Word() word.Word {
	head := t.Head()
	return word.Concat(head, t.Middle(), t.Tail()[t.Overlap():])
}

// Same reports whether two tuples agree on (Prefix, A, B, Suffix).
func (t Tuple) Same(o Tuple) bool {
	return t.A == o.A && t.B == o.B && t.Prefix.Equal(o.Prefix) && t.Suffix.Equal(o.Suffix)
}

// String renders the tuple as "(p, a, b, q)".
func (t Tuple) String() string {
	return fmt.Sprintf("(%s, %s, %s, %s)", t.Prefix, t.A, t.B, t.Suffix)
}
