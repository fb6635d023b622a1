package rewrite

import "github.com/katalvlaran/freeband/word"

// FindSquare returns the shortest square of w, leftmost among equals,
// as (pos, unit length). ok is false when w is square-free.
//
// Complexity: O(|w|³) worst case; fine for the short words this monoid is about.
func FindSquare(w word.Word) (pos, n int, ok bool) {
	for n = 1; 2*n <= len(w); n++ {
		for pos = 0; pos+2*n <= len(w); pos++ {
			if w[pos:pos+n].Equal(w[pos+n : pos+2*n]) {
				return pos, n, true
			}
		}
	}
	return 0, 0, false
}

// RemoveSquares collapses squares greedily until w is square-free and
// returns the result with the removals performed.
func RemoveSquares(w word.Word) (word.Word, Trace) {
	b := NewBuilder(w)
	for {
		pos, n, ok := FindSquare(b.Word())
		if !ok {
			break
		}
		b.Remove(pos, n)
	}
	// removals found by FindSquare always apply
	return b.Word(), b.Trace()
}
