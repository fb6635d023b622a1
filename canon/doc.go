// Package canon reduces words of the free idempotent monoid to their
// canonical form: the unique shortest word of their equivalence class.
//
// 🚀 How it works
//
//	A word w over alphabet C (|C| ≥ 2) is split by package decompose into
//	(p, a, b, q). Two words are equivalent iff their alphabets agree and
//	their tuples agree up to equivalence of p and q, so
//
//	  Canonical(w) = Trim(Canonical(p), a, b, Canonical(q))
//
//	where Trim joins p·a and b·q counting their longest common
//	border once. The identity and single-letter words are handled directly.
//
// ✨ Key features:
//   - Canonical: fast recursive normal form, no trace
//   - Canonicalize: normal form plus an optional replayable rewrite trace
//   - Trim / TrimStep: the junction trimmer used by generation
//   - Equivalent, Multiply: the monoid's equality and product
//
// ⚙️ Usage:
//
//	res, err := canon.Canonicalize(w, canon.WithTrace())
//	if err != nil {
//	  // only ErrTraceMismatch, which signals an internal bug
//	}
//	fmt.Println(res.Word)          // abcbab
//	for _, s := range res.Trace {  // remove (ab)(ab)@0, …
//	  fmt.Println(s)
//	}
//
// Traces are built from greedy square removals first; words that are
// square-free but not canonical are rewritten with a constructive
// derivation (see derive.go) that may grow the word before shrinking it.
package canon
