package monoid

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/katalvlaran/freeband/canon"
	"github.com/katalvlaran/freeband/word"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Generate returns every element of the free idempotent monoid on the first
// n letters, as canonical words without duplicates:
//   - the identity first,
//   - then, for k = 1..n, every k-letter subset in lexicographic order,
//   - shortlex within a subset.
//
// Exact sizes missing from the store are built in increasing order, one
// barrier per size. On cancellation the size in flight is discarded and
// ctx.Err() is returned with no output.
func Generate(ctx context.Context, n int, opts ...Option) ([]word.Word, error) {
	o, err := build(n, opts)
	if err != nil {
		return nil, err
	}
	return generate(ctx, n, &o)
}

// generate assembles the elements on n letters from validated options.
func generate(ctx context.Context, n int, o *Options) ([]word.Word, error) {
	if err := grow(ctx, n, o); err != nil {
		return nil, err
	}

	out := make([]word.Word, 0, Count(n).Int64())
	out = append(out, word.Word{})
	for k := 1; k <= n; k++ {
		exact, _ := o.Store.Exact(k)
		for _, set := range Subsets(n, k) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			sub := word.SubsetSubstitution(set)
			for _, w := range exact {
				out = append(out, sub.Apply(w))
			}
		}
	}
	o.Logger.Info("monoid generated", zap.Int("letters", n), zap.Int("words", len(out)))
	return out, nil
}

// grow publishes exact sizes up to n. Only the holder of the store's build
// slot computes a size; concurrent callers wait and reuse its result.
func grow(ctx context.Context, n int, o *Options) error {
	counter, err := o.Meter.Int64Counter("freeband.monoid.words",
		metric.WithDescription("Exact words generated per size"))
	if err != nil {
		o.Logger.Warn("monoid counter unavailable", zap.Error(err))
		counter, _ = metricnoop.NewMeterProvider().Meter(instrumentationName).Int64Counter("freeband.monoid.words")
	}

	for k := o.Store.Sizes(); k <= n; k = o.Store.Sizes() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := o.Store.acquire(ctx); err != nil {
			return err
		}
		if o.Store.Sizes() != k {
			// another caller published k while we waited
			o.Store.release()
			o.Logger.Debug("monoid size already published", zap.Int("letters", k))
			continue
		}
		words, err := generateSize(ctx, k, o)
		if err != nil {
			o.Store.release()
			o.Logger.Debug("monoid size discarded", zap.Int("letters", k), zap.Error(err))
			return err
		}
		o.Store.publish(k, words)
		o.Store.release()
		counter.Add(ctx, int64(len(words)), metric.WithAttributes(attribute.Int("monoid.letters", k)))
	}
	return nil
}

// generateSize computes exact(k) from exact(k-1), which must be published.
//
// Steps:
//  1. Relabel exact(k-1) once per missing letter.
//  2. Run the k² (a, b) jobs; each fills its own result slot.
//  3. Merge, deduplicate and shortlex-sort.
func generateSize(ctx context.Context, k int, o *Options) ([]word.Word, error) {
	ctx, span := o.Tracer.Start(ctx, "monoid.generateSize",
		trace.WithAttributes(attribute.Int("monoid.letters", k)))
	defer span.End()
	start := time.Now()

	// 1. σl(exact(k-1)) for every letter l
	prev, _ := o.Store.Exact(k - 1)
	relabeled := make([][]word.Word, k)
	for l := 0; l < k; l++ {
		sub := word.Skipping(k, word.Letter(l))
		ws := make([]word.Word, len(prev))
		for i, w := range prev {
			ws[i] = sub.Apply(w)
		}
		relabeled[l] = ws
	}

	// 2. one job per ordered pair (a, b), a == b included
	results := make([][]word.Word, k*k)
	err := runJobs(ctx, len(results), o.Workers, func(i int) {
		a, b := word.Letter(i/k), word.Letter(i%k)
		ps, qs := relabeled[a], relabeled[b]
		out := make([]word.Word, 0, len(ps)*len(qs))
		for _, p := range ps {
			for _, q := range qs {
				out = append(out, canon.Trim(p, a, b, q))
			}
		}
		results[i] = out
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	// 3. merge
	total := 0
	for _, r := range results {
		total += len(r)
	}
	words := make([]word.Word, 0, total)
	seen := make(map[string]struct{}, total)
	for _, r := range results {
		for _, w := range r {
			key := w.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			words = append(words, w)
		}
	}
	slices.SortFunc(words, word.Compare)

	span.SetAttributes(attribute.Int("monoid.words", len(words)))
	o.Logger.Debug("monoid size generated",
		zap.Int("letters", k),
		zap.Int("pairs", len(results)),
		zap.Int("words", len(words)),
		zap.Duration("elapsed", time.Since(start)))
	return words, nil
}

// runJobs calls fn(0..n-1) on up to workers goroutines and waits for all of
// them. ctx is checked before each job; once it is done the remaining jobs
// are skipped and ctx.Err() is returned.
func runJobs(ctx context.Context, n, workers int, fn func(i int)) error {
	if workers <= 1 || n <= 1 {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(i)
		}
		return nil
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < min(workers, n); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					continue
				}
				fn(i)
			}
		}()
	}

feed:
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()
	return ctx.Err()
}

// Subsets returns the k-element subsets of {0..n-1} in lexicographic order
// of their sorted letters.
func Subsets(n, k int) []word.Alphabet {
	var out []word.Alphabet
	var rec func(start, left int, set word.Alphabet)
	rec = func(start, left int, set word.Alphabet) {
		if left == 0 {
			out = append(out, set)
			return
		}
		for l := start; l <= n-left; l++ {
			rec(l+1, left-1, set.With(word.Letter(l)))
		}
	}
	if k >= 0 && k <= n {
		rec(0, k, 0)
	}
	return out
}
