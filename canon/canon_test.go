package canon_test

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/katalvlaran/freeband/canon"
	"github.com/katalvlaran/freeband/rewrite"
	"github.com/katalvlaran/freeband/word"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func w(s string) word.Word { return word.MustParse(s) }

// TestCanonical_Known checks hand-verified normal forms.
func TestCanonical_Known(t *testing.T) {
	cases := map[string]string{
		"0":          "0",
		"aaaa":       "a",
		"b":          "b",
		"abab":       "ab",
		"ababcbcbab": "abcbab",
		"abcabc":     "abc",
		"abcbabc":    "abc",
		"alblalb":    "alb",
		"abacbcacba": "abacba",
		"bacbcabc":   "bacabc",
		"abcdbabcd":  "abcd",
		"cbaabc":     "cbabc",
		"abcacb":     "abcacb",
		"abacaba":    "abacaba",
	}
	for in, want := range cases {
		assert.Equal(t, want, canon.Canonical(w(in)).String(), "Canonical(%s)", in)
	}
}

// TestCanonicalize_NoTraceByDefault ensures the trace is opt-in.
func TestCanonicalize_NoTraceByDefault(t *testing.T) {
	res, err := canon.Canonicalize(w("ababcbcbab"))
	require.NoError(t, err)
	assert.Equal(t, "abcbab", res.Word.String())
	assert.Nil(t, res.Trace)
}

// TestCanonicalize_ConcreteTrace pins the trace of the reference reduction.
func TestCanonicalize_ConcreteTrace(t *testing.T) {
	res, err := canon.Canonicalize(w("ababcbcbab"), canon.WithTrace())
	require.NoError(t, err)
	assert.Equal(t, "abcbab", res.Word.String())
	assert.Equal(t, rewrite.Trace{
		{Kind: rewrite.Remove, Pos: 0, Unit: w("ab")},
		{Kind: rewrite.Remove, Pos: 1, Unit: w("bc")},
	}, res.Trace)
}

// TestCanonicalize_SingleLetter covers the one-letter collapse and its trace.
func TestCanonicalize_SingleLetter(t *testing.T) {
	res, err := canon.Canonicalize(w("aaaa"), canon.WithTrace())
	require.NoError(t, err)
	assert.Equal(t, "a", res.Word.String())
	require.Len(t, res.Trace, 3)
	for _, s := range res.Trace {
		assert.Equal(t, rewrite.Remove, s.Kind)
		assert.Equal(t, "a", s.Unit.String())
	}

	res, err = canon.Canonicalize(word.Word{}, canon.WithTrace())
	require.NoError(t, err)
	assert.Empty(t, res.Word)
	assert.Empty(t, res.Trace)
}

// TestCanonicalize_NeedsInsertions checks a square-free, non-canonical word:
// its trace must grow the word before shrinking it.
func TestCanonicalize_NeedsInsertions(t *testing.T) {
	in := w("abcbabc")
	_, _, ok := rewrite.FindSquare(in)
	require.False(t, ok, "abcbabc is square-free")

	res, err := canon.Canonicalize(in, canon.WithTrace())
	require.NoError(t, err)
	assert.Equal(t, "abc", res.Word.String())

	ins, _ := res.Trace.Counts()
	assert.Positive(t, ins, "a square-free word needs insertions")

	delta := 0
	for _, s := range res.Trace {
		if s.Kind == rewrite.Insert {
			delta += len(s.Unit)
		} else {
			delta -= len(s.Unit)
		}
	}
	assert.Equal(t, -4, delta, "seven letters down to three")

	got, err := res.Trace.Replay(in)
	require.NoError(t, err)
	assert.Equal(t, res.Word, got)
}

// TestCanonicalize_Properties checks, for every word of length ≤ 7 over
// three letters: trace replay, idempotence, determinism, alphabet
// preservation and length monotonicity.
func TestCanonicalize_Properties(t *testing.T) {
	forEachWord(3, 7, func(in word.Word) {
		checkProperties(t, in)
	})
}

// TestCanonicalize_RandomFourLetters runs the same checks on random longer
// words over four letters.
func TestCanonicalize_RandomFourLetters(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		in := make(word.Word, rng.Intn(24))
		for j := range in {
			in[j] = word.Letter(rng.Intn(4))
		}
		checkProperties(t, in)
	}
}

// TestCanonical_FullAlphabet covers words over all 26 letters, where the
// prefix and suffix recursion is at its deepest.
func TestCanonical_FullAlphabet(t *testing.T) {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	rev := []byte(letters)
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	start := time.Now()
	got := canon.Canonical(w(letters + string(rev)))
	assert.Equal(t, letters+string(rev[1:]), got.String())
	assert.Less(t, time.Since(start), time.Second, "a..zz..a")

	rng := rand.New(rand.NewSource(7))
	start = time.Now()
	for _, n := range []int{30, 30, 300} {
		var sb strings.Builder
		for i := 0; i < n; i++ {
			sb.WriteByte(letters[rng.Intn(len(letters))])
		}
		checkProperties(t, w(sb.String()))
	}
	assert.Less(t, time.Since(start), 5*time.Second, "traced reduction over 26 letters")
}

func checkProperties(t *testing.T, in word.Word) {
	t.Helper()
	orig := in.Clone()

	res, err := canon.Canonicalize(in, canon.WithTrace())
	require.NoError(t, err, "Canonicalize(%s)", in)
	assert.Equal(t, orig, in, "input must not be modified")

	// trace replay
	got, err := res.Trace.Replay(in)
	require.NoError(t, err, "replay %s", in)
	assert.True(t, got.Equal(res.Word), "replay of %s reached %s, want %s", in, got, res.Word)

	// idempotence
	again := canon.Canonical(res.Word)
	assert.True(t, again.Equal(res.Word), "Canonical(%s) = %s", res.Word, again)

	// determinism
	res2, err := canon.Canonicalize(in, canon.WithTrace())
	require.NoError(t, err)
	assert.Equal(t, res, res2, "Canonicalize(%s) must be deterministic", in)

	// alphabet and length
	assert.Equal(t, in.Alphabet(), res.Word.Alphabet(), "alphabet of %s", in)
	assert.LessOrEqual(t, len(res.Word), len(in), "length of %s", in)
}

// TestTrim covers the junction trimmer on the two-letter building blocks
// and on the reference word.
func TestTrim(t *testing.T) {
	const a, b, c = word.Letter(0), word.Letter(1), word.Letter(2)
	assert.Equal(t, "ba", canon.Trim(w("b"), a, b, w("a")).String())
	assert.Equal(t, "ab", canon.Trim(w("a"), b, a, w("b")).String())
	assert.Equal(t, "bab", canon.Trim(w("b"), a, a, w("b")).String())
	assert.Equal(t, "aba", canon.Trim(w("a"), b, b, w("a")).String())
	assert.Equal(t, "abcbab", canon.Trim(w("ab"), c, c, w("bab")).String())
	assert.Equal(t, "abcab", canon.Trim(w("ab"), c, a, w("b")).String(), "no border")
}

// TestTrimStep ensures the step turns p·a·b·q into Trim(p, a, b, q).
func TestTrimStep(t *testing.T) {
	const a, c = word.Letter(0), word.Letter(2)
	p, q := w("ab"), w("bab")
	step, ok := canon.TrimStep(p, c, c, q)
	require.True(t, ok)
	got, err := step.Apply(word.Concat(p, word.Word{c, c}, q))
	require.NoError(t, err)
	assert.Equal(t, canon.Trim(p, c, c, q), got)

	_, ok = canon.TrimStep(w("ab"), c, a, w("b"))
	assert.False(t, ok, "abc and ab share no border")
}

// TestEquivalentAndMultiply covers the monoid's equality and product.
func TestEquivalentAndMultiply(t *testing.T) {
	assert.True(t, canon.Equivalent(w("ababcbcbab"), w("abcbab")))
	assert.True(t, canon.Equivalent(w("abcbabc"), w("abc")))
	assert.False(t, canon.Equivalent(w("ab"), w("ba")))
	assert.False(t, canon.Equivalent(w("ab"), w("abc")))

	assert.Equal(t, "aba", canon.Multiply(w("ab"), w("ba")).String())
	assert.Equal(t, "bab", canon.Multiply(w("ba"), w("ab")).String())
	assert.Equal(t, "ab", canon.Multiply(w("aba"), w("bab")).String())
	assert.Equal(t, "ab", canon.Multiply(word.Word{}, w("ab")).String(), "identity is neutral")

	assert.True(t, canon.IsCanonical(w("abcbab")))
	assert.False(t, canon.IsCanonical(w("abab")))
}

// forEachWord calls fn for every word over n letters of length 0..maxLen.
func forEachWord(n, maxLen int, fn func(word.Word)) {
	var rec func(prefix word.Word)
	rec = func(prefix word.Word) {
		fn(prefix)
		if len(prefix) == maxLen {
			return
		}
		for l := 0; l < n; l++ {
			rec(append(prefix.Clone(), word.Letter(l)))
		}
	}
	rec(word.Word{})
}
