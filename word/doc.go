// Package word models letters, words and alphabets for the free idempotent
// monoid.
//
// 🚀 What is a word here?
//
//	A Word is a finite, possibly empty, sequence of Letters. Letters are
//	opaque slot indices 0..25 rendered as 'a'..'z'. The empty word is the
//	monoid identity and always renders as the reserved symbol "0".
//
// ✨ Key features:
//   - Alphabet: the set of distinct letters of a word, as a 26-bit set
//   - Parse / ParseOver: strict parsing with ErrInvalidSymbol on bad input
//   - Substitution: explicit relabeling of slot letters onto concrete letters
//   - Shortlex ordering for deterministic output
//
// ⚙️ Usage:
//
//	w, err := word.ParseOver("abcab", 3)
//	if err != nil {
//	  // errors.Is(err, word.ErrInvalidSymbol)
//	}
//	fmt.Println(w, w.Alphabet().Len()) // abcab 3
//
// Words are plain slices. Functions in this package never mutate their
// arguments and always return freshly allocated words.
package word
