// Package explore walks the rewrite graph of the free idempotent monoid:
// vertices are words, edges insert or remove one square u·u ↔ u.
//
// What
//
//   - Explore runs a breadth-first search from a start word, bounded by a
//     maximum word length (the graph is infinite otherwise). It returns:
//   - Order: words in visit sequence
//   - Depth: rewrite distance from the start
//   - Parent / Via: the BFS tree, so PathTo yields a shortest trace
//   - Classes partitions every word up to a given length into the classes
//     connected by square removals (union-find), the census the canonical
//     forms are checked against.
//
// Why
//
//   - Ground truth: within the bound, the shortest word reached from w must
//     be canonical.Canonical(w), and nothing shorter may be reachable.
//   - Shortest rewrite traces for small words, to compare against the
//     constructive traces of package canon.
//
// Determinism
//
//	Neighbors are produced removals first, then insertions, each by unit
//	length and then position, so the visit order is reproducible.
//
// Complexity (S = reached words, L = MaxLength)
//
//   - Time:   O(S · L³)  (O(L²) candidate squares per word, O(L) to test each)
//   - Memory: O(S · L)
//
// Usage
//
//	res, err := explore.Explore(word.MustParse("abcbabc"), explore.WithMaxLength(9))
//	if err != nil {
//	  // ErrOptionViolation, ErrStateLimit, ctx errors, or OnVisit errors
//	}
//	tr, _ := res.PathTo(word.MustParse("abc")) // 3 steps
package explore
