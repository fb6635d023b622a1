// Package monoid enumerates every element of the free idempotent monoid on
// n letters, one canonical word per element.
//
// 🚀 How it works
//
//	Elements whose alphabet is exactly {0..k-1} ("exact" words) are built
//	from the exact words of size k-1:
//
//	  exact(k) = { Trim(σa(p), a, b, σb(q)) : a, b < k; p, q ∈ exact(k-1) }
//
//	where σa relabels {0..k-2} onto {0..k-1}\{a}. Sizes are built strictly
//	in increasing order and memoized in a Store; every other subset of
//	letters is an order-preserving relabeling of an exact size.
//
// ✨ Key features:
//   - Generate: identity first, then subsets by size and lexicographic
//     letters, shortlex within a subset
//   - Worker pool over the (a, b) jobs of one size, barrier between sizes
//   - Context cancellation between sizes and before each job
//   - Count: closed-form sizes, no enumeration
//   - Table: multiplication table for small alphabets
//   - zap progress logging and one OpenTelemetry span per size
//
// ⚙️ Usage:
//
//	words, err := monoid.Generate(ctx, 3, monoid.WithWorkers(4))
//	if errors.Is(err, monoid.ErrAlphabetTooLarge) {
//	  // raise the limit with WithMaxLetters, if you have the memory
//	}
//	fmt.Println(len(words)) // 160
//
// Sizes grow as e(k) = (k·e(k-1))²: 1, 1, 4, 144, 331776, ...
// Hence the default safety limit of DefaultMaxLetters letters.
package monoid
