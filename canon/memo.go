package canon

import (
	"github.com/katalvlaran/freeband/decompose"
	"github.com/katalvlaran/freeband/rewrite"
	"github.com/katalvlaran/freeband/word"
)

// memo caches normal forms and derivations by word key for the span of one
// top-level call. Every recursive argument is a factor of the input, so the
// cache holds at most O(|w|²) entries and each factor is solved once.
type memo struct {
	forms  map[string]word.Word
	traces map[string]rewrite.Trace
}

func newMemo() *memo {
	return &memo{
		forms:  make(map[string]word.Word),
		traces: make(map[string]rewrite.Trace),
	}
}

// canonical is Canonical with every factor's normal form cached.
// Returned words are shared with the cache and must not be modified.
func (m *memo) canonical(w word.Word) word.Word {
	switch w.Alphabet().Len() {
	case 0:
		return word.Word{}
	case 1:
		return word.Word{w[0]}
	}
	key := w.Key()
	if c, ok := m.forms[key]; ok {
		return c
	}
	t, err := decompose.Decompose(w)
	if err != nil {
		// unreachable: the alphabet has at least two letters
		panic(err)
	}
	c, _, _ := settle(m.canonical(t.Prefix), t.A, t.B, m.canonical(t.Suffix))
	m.forms[key] = c
	return c
}

func (m *memo) isCanonical(w word.Word) bool {
	return m.canonical(w).Equal(w)
}
