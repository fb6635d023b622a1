package monoid_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/katalvlaran/freeband/canon"
	"github.com/katalvlaran/freeband/monoid"
	"github.com/katalvlaran/freeband/word"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func strs(ws []word.Word) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.String()
	}
	return out
}

// TestGenerate_Counts checks the element counts for n = 0..3.
func TestGenerate_Counts(t *testing.T) {
	want := []int{1, 2, 7, 160}
	for n, c := range want {
		ws, err := monoid.Generate(context.Background(), n)
		require.NoError(t, err, "n=%d", n)
		assert.Len(t, ws, c, "n=%d", n)
		assert.Equal(t, int64(c), monoid.Count(n).Int64(), "Count(%d)", n)
	}
}

// TestGenerate_TwoLetters pins the exact set and order for n = 2.
func TestGenerate_TwoLetters(t *testing.T) {
	ws, err := monoid.Generate(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "a", "b", "ab", "ba", "aba", "bab"}, strs(ws))
}

// TestGenerate_SelfCanonical checks that every generated word is its own
// canonical form, that no class appears twice and that the identity leads.
func TestGenerate_SelfCanonical(t *testing.T) {
	ws, err := monoid.Generate(context.Background(), 3)
	require.NoError(t, err)
	require.NotEmpty(t, ws)
	assert.Empty(t, ws[0], "identity first")

	seen := make(map[string]bool, len(ws))
	longest := 0
	for _, w := range ws {
		assert.True(t, canon.IsCanonical(w), "%s is not canonical", w)
		assert.False(t, seen[w.String()], "%s generated twice", w)
		seen[w.String()] = true
		longest = max(longest, len(w))
	}
	assert.Equal(t, 8, longest, "longest element on three letters")
}

// TestGenerate_Order checks identity first, subsets by size then
// lexicographically, shortlex inside each subset.
func TestGenerate_Order(t *testing.T) {
	ws, err := monoid.Generate(context.Background(), 3)
	require.NoError(t, err)

	var sets []word.Alphabet
	for i := 1; i < len(ws); i++ {
		prev, cur := ws[i-1], ws[i]
		if prev.Alphabet() == cur.Alphabet() {
			assert.Negative(t, word.Compare(prev, cur), "%s before %s", prev, cur)
			continue
		}
		sets = append(sets, cur.Alphabet())
	}
	want := []word.Alphabet{
		word.Of(0), word.Of(1), word.Of(2),
		word.Of(0, 1), word.Of(0, 2), word.Of(1, 2),
		word.Of(0, 1, 2),
	}
	assert.Equal(t, want, sets)
}

// TestGenerate_FourLetters checks the n = 4 count against the closed form.
func TestGenerate_FourLetters(t *testing.T) {
	if testing.Short() {
		t.Skip("n = 4 enumerates 332381 words")
	}
	ws, err := monoid.Generate(context.Background(), 4, monoid.WithWorkers(4))
	require.NoError(t, err)
	assert.Len(t, ws, 332381)
	assert.Equal(t, int64(332381), monoid.Count(4).Int64())
}

// TestGenerate_WorkersParity ensures the pool does not change the output.
func TestGenerate_WorkersParity(t *testing.T) {
	serial, err := monoid.Generate(context.Background(), 3)
	require.NoError(t, err)
	for _, w := range []int{2, 3, 16} {
		parallel, err := monoid.Generate(context.Background(), 3, monoid.WithWorkers(w))
		require.NoError(t, err)
		assert.Equal(t, serial, parallel, "workers=%d", w)
	}
}

// TestGenerate_SharedStore checks memoization across calls.
func TestGenerate_SharedStore(t *testing.T) {
	s := monoid.NewStore()
	assert.Equal(t, 1, s.Sizes())

	_, err := monoid.Generate(context.Background(), 2, monoid.WithStore(s))
	require.NoError(t, err)
	assert.Equal(t, 3, s.Sizes())

	exact, ok := s.Exact(2)
	require.True(t, ok)
	assert.Equal(t, []string{"ab", "ba", "aba", "bab"}, strs(exact))
	_, ok = s.Exact(3)
	assert.False(t, ok)

	ws, err := monoid.Generate(context.Background(), 3, monoid.WithStore(s))
	require.NoError(t, err)
	assert.Len(t, ws, 160)
	assert.Equal(t, 4, s.Sizes())

	// smaller n reuses the store without rebuilding
	ws, err = monoid.Generate(context.Background(), 1, monoid.WithStore(s))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "a"}, strs(ws))
}

// TestGenerate_SharedStoreConcurrent runs several callers on one store:
// every size is built exactly once and all callers see the same elements.
func TestGenerate_SharedStoreConcurrent(t *testing.T) {
	const callers = 4
	core, logs := observer.New(zap.DebugLevel)
	log := zap.New(core)
	s := monoid.NewStore()

	var wg sync.WaitGroup
	results := make([][]word.Word, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = monoid.Generate(context.Background(), 3,
				monoid.WithStore(s), monoid.WithLogger(log), monoid.WithWorkers(2))
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Len(t, results[i], 160)
		assert.Equal(t, results[0], results[i], "caller %d", i)
	}
	assert.Equal(t, 4, s.Sizes())

	built := logs.FilterMessage("monoid size generated").All()
	require.Len(t, built, 3, "one build per size")
	for i, e := range built {
		assert.EqualValues(t, i+1, e.ContextMap()["letters"])
	}
}

// TestGenerate_Errors covers the argument and option checks.
func TestGenerate_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := monoid.Generate(ctx, 5)
	assert.ErrorIs(t, err, monoid.ErrAlphabetTooLarge)

	_, err = monoid.Generate(ctx, 3, monoid.WithMaxLetters(2))
	assert.ErrorIs(t, err, monoid.ErrAlphabetTooLarge)

	_, err = monoid.Generate(ctx, -1)
	assert.ErrorIs(t, err, monoid.ErrNegativeLetters)

	_, err = monoid.Generate(ctx, 1, monoid.WithWorkers(0))
	assert.ErrorIs(t, err, monoid.ErrOptionViolation)

	_, err = monoid.Generate(ctx, 1, monoid.WithMaxLetters(word.MaxLetters+1))
	assert.ErrorIs(t, err, monoid.ErrOptionViolation)
}

// TestGenerate_Cancelled checks that a done context yields no output.
func TestGenerate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := monoid.NewStore()
	ws, err := monoid.Generate(ctx, 3, monoid.WithStore(s))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, ws)
	assert.Equal(t, 1, s.Sizes(), "nothing published")

	ctx, cancel = context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()
	_, err = monoid.Generate(ctx, 2, monoid.WithWorkers(4))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// TestGenerate_CancelBetweenSizes cancels as soon as size 1 is logged.
// Size 1 stays published; size 2 never starts.
func TestGenerate_CancelBetweenSizes(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	core, _ := observer.New(zap.DebugLevel)
	log := zap.New(core, zap.Hooks(func(e zapcore.Entry) error {
		if e.Message == "monoid size generated" {
			cancel()
		}
		return nil
	}))

	s := monoid.NewStore()
	ws, err := monoid.Generate(ctx, 3, monoid.WithStore(s), monoid.WithLogger(log), monoid.WithWorkers(2))
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Nil(t, ws)
	assert.Equal(t, 2, s.Sizes(), "only exact(0) and exact(1)")
}

// TestGenerate_Logging checks the per-size progress entries.
func TestGenerate_Logging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	_, err := monoid.Generate(context.Background(), 3, monoid.WithLogger(zap.New(core)))
	require.NoError(t, err)

	sizes := logs.FilterMessage("monoid size generated").All()
	require.Len(t, sizes, 3)
	assert.EqualValues(t, 144, sizes[2].ContextMap()["words"])
	assert.Equal(t, 1, logs.FilterMessage("monoid generated").Len())
}

// TestGenerate_Spans checks one span per generated size.
func TestGenerate_Spans(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	_, err := monoid.Generate(context.Background(), 2, monoid.WithTracer(tp.Tracer("test")))
	require.NoError(t, err)

	spans := sr.Ended()
	require.Len(t, spans, 2)
	for i, s := range spans {
		assert.Equal(t, "monoid.generateSize", s.Name())
		attrs := map[string]int64{}
		for _, kv := range s.Attributes() {
			attrs[string(kv.Key)] = kv.Value.AsInt64()
		}
		assert.Equal(t, int64(i+1), attrs["monoid.letters"])
	}
}

// TestSubsets checks lexicographic subset order.
func TestSubsets(t *testing.T) {
	assert.Equal(t, []word.Alphabet{word.Of(0, 1), word.Of(0, 2), word.Of(1, 2)}, monoid.Subsets(3, 2))
	assert.Equal(t, []word.Alphabet{0}, monoid.Subsets(3, 0))
	assert.Empty(t, monoid.Subsets(2, 3))
}

// TestCount checks the closed form beyond what can be enumerated.
func TestCount(t *testing.T) {
	assert.Equal(t, "1", monoid.ExactCount(0).String())
	assert.Equal(t, "144", monoid.ExactCount(3).String())
	assert.Equal(t, "331776", monoid.ExactCount(4).String())
	assert.Equal(t, "2751884514766", monoid.Count(5).String())
	assert.Equal(t, "0", monoid.Count(-1).String())
}

// TestHistogram checks the length profile of the three-letter monoid.
func TestHistogram(t *testing.T) {
	ws, err := monoid.Generate(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 10, 22, 40, 70, 112, 148, 160}, monoid.Histogram(ws))
	assert.Empty(t, monoid.Histogram(nil))
}
