package canon

import (
	"github.com/katalvlaran/freeband/rewrite"
	"github.com/katalvlaran/freeband/word"
)

// Trim reassembles canonical p and q around the letters a and b into the
// shortest word that starts with p·a and ends with b·q.
//
// The junction of p·a·b·q is a square u·u, where u is the longest suffix of
// p·a that is also a prefix of b·q. Trim collapses it. When a == b this
// gives at least p·a·q. The result keeps p·a as a prefix and b·q as a suffix,
// so its alphabet is Alphabet(p) ∪ {a, b} ∪ Alphabet(q).
func Trim(p word.Word, a, b word.Letter, q word.Word) word.Word {
	head := word.Concat(p, word.Word{a})
	tail := word.Concat(word.Word{b}, q)
	o := border(head, tail)
	return word.Concat(head[:len(head)-o], tail)
}

// TrimStep returns the removal that turns p·a·b·q into Trim(p, a, b, q).
// ok is false when the junction has no square to remove.
func TrimStep(p word.Word, a, b word.Letter, q word.Word) (rewrite.Step, bool) {
	head := word.Concat(p, word.Word{a})
	tail := word.Concat(word.Word{b}, q)
	o := border(head, tail)
	if o == 0 {
		return rewrite.Step{}, false
	}
	return rewrite.Step{
		Kind: rewrite.Remove,
		Pos:  len(head) - o,
		Unit: head[len(head)-o:].Clone(),
	}, true
}

// border returns the length of the longest suffix of x that is a prefix of y,
// using the Knuth–Morris–Pratt failure function of y.
//
// Complexity: O(|x| + |y|).
func border(x, y word.Word) int {
	if len(x) == 0 || len(y) == 0 {
		return 0
	}
	// 1. Failure function: fail[i] = longest proper border of y[:i+1].
	fail := make([]int, len(y))
	for i, k := 1, 0; i < len(y); i++ {
		for k > 0 && y[i] != y[k] {
			k = fail[k-1]
		}
		if y[i] == y[k] {
			k++
		}
		fail[i] = k
	}

	// 2. Stream x through the automaton; the final state is the answer.
	k := 0
	for _, c := range x {
		if k == len(y) {
			k = fail[k-1]
		}
		for k > 0 && c != y[k] {
			k = fail[k-1]
		}
		if c == y[k] {
			k++
		}
	}
	return k
}
