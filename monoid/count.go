package monoid

import (
	"math/big"

	"github.com/katalvlaran/freeband/word"
)

// ExactCount returns e(k), the number of elements whose alphabet is exactly
// a given k-letter set: e(0) = 1, e(k) = (k·e(k-1))².
func ExactCount(k int) *big.Int {
	e := big.NewInt(1)
	for i := 1; i <= k; i++ {
		e.Mul(e, big.NewInt(int64(i)))
		e.Mul(e, e)
	}
	return e
}

// Count returns the number of elements of the free idempotent monoid on n
// letters, Σ C(n,k)·e(k), without enumerating them.
//
// Count(0..4) = 1, 2, 7, 160, 332381.
func Count(n int) *big.Int {
	total := new(big.Int)
	if n < 0 {
		return total
	}
	binom := new(big.Int)
	for k := 0; k <= n; k++ {
		binom.Binomial(int64(n), int64(k))
		total.Add(total, new(big.Int).Mul(binom, ExactCount(k)))
	}
	return total
}

// Histogram returns the cumulative length histogram of words: entry l is
// the number of words with at most l letters.
func Histogram(words []word.Word) []int {
	var counts []int
	for _, w := range words {
		for len(counts) <= len(w) {
			counts = append(counts, 0)
		}
		counts[len(w)]++
	}
	c := 0
	for i := range counts {
		c += counts[i]
		counts[i] = c
	}
	return counts
}
