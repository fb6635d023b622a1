package canon

import (
	"fmt"

	"github.com/katalvlaran/freeband/decompose"
	"github.com/katalvlaran/freeband/rewrite"
	"github.com/katalvlaran/freeband/word"
)

// Canonical returns the unique shortest word equivalent to w.
//
// Algorithm:
//  1. Alphabet empty → identity.
//  2. One letter → that letter once.
//  3. Otherwise decompose w into (p, a, b, q), normalize p and q
//     recursively, and join them with Trim.
//  4. Re-decompose the joined word; it must reproduce the tuple
//     (see settle).
//
// Normal forms of factors are cached for the duration of the call, so each
// distinct factor of w is decomposed once.
//
// Complexity: O(|w|³) time in the worst case, independent of the alphabet
// size; at most O(|w|²) factors are cached.
func Canonical(w word.Word) word.Word {
	return newMemo().canonical(w)
}

// settle joins canonical p and q and checks that the result decomposes back
// into (p, a, b, q). If the trimmed word fails the check, settle keeps the
// untrimmed junction p·a·b·q, which always passes. The step (if any) turns
// p·a·b·q into the returned word.
func settle(p word.Word, a, b word.Letter, q word.Word) (word.Word, rewrite.Step, bool) {
	c := Trim(p, a, b, q)
	if t, err := decompose.Decompose(c); err == nil &&
		t.A == a && t.B == b && t.Prefix.Equal(p) && t.Suffix.Equal(q) {
		step, ok := TrimStep(p, a, b, q)
		return c, step, ok
	}
	return word.Concat(p, word.Word{a, b}, q), rewrite.Step{}, false
}

// Canonicalize returns the canonical form of w and, with WithTrace, the
// rewrite steps leading there from w. It never modifies w.
func Canonicalize(w word.Word, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m := newMemo()
	c := m.canonical(w)
	if !o.Trace {
		return Result{Word: c}, nil
	}

	tr, err := m.derive(w)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s: %v", ErrTraceMismatch, w, err)
	}
	if o.Verify {
		got, err := tr.Replay(w)
		if err != nil {
			return Result{}, fmt.Errorf("%w: %s: %v", ErrTraceMismatch, w, err)
		}
		if !got.Equal(c) {
			return Result{}, fmt.Errorf("%w: %s reached %s, want %s", ErrTraceMismatch, w, got, c)
		}
	}
	return Result{Word: c, Trace: tr}, nil
}

// IsCanonical reports whether w is its own canonical form.
func IsCanonical(w word.Word) bool {
	return Canonical(w).Equal(w)
}

// Equivalent reports whether u and v lie in the same class: equal
// alphabets and equal canonical forms.
func Equivalent(u, v word.Word) bool {
	return u.Alphabet() == v.Alphabet() && Canonical(u).Equal(Canonical(v))
}

// Multiply returns the canonical form of the product u·v.
func Multiply(u, v word.Word) word.Word {
	return Canonical(word.Concat(u, v))
}
