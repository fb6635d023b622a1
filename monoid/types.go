package monoid

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/freeband/word"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

// Sentinel errors for generation.
var (
	// ErrAlphabetTooLarge is returned, before any work, when n exceeds the
	// configured safety limit.
	ErrAlphabetTooLarge = errors.New("monoid: alphabet exceeds the safety limit")

	// ErrNegativeLetters is returned for n < 0.
	ErrNegativeLetters = errors.New("monoid: negative number of letters")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("monoid: invalid option supplied")
)

const (
	// DefaultMaxLetters is the default safety limit: n = 4 already yields
	// 332381 words.
	DefaultMaxLetters = 4

	// MaxTableLetters bounds Table, whose size is quadratic in the monoid.
	MaxTableLetters = 3

	instrumentationName = "github.com/katalvlaran/freeband/monoid"
)

// Option configures Generate and Table.
// Invalid options are recorded and surfaced as ErrOptionViolation on call.
type Option func(*Options)

// Options holds the knobs of a generation run.
type Options struct {
	// Workers is the size of the goroutine pool for the (a, b) jobs of one
	// size. 1 runs everything on the calling goroutine.
	Workers int

	// MaxLetters is the safety limit on n.
	MaxLetters int

	// Store memoizes exact sizes across calls. Nil means a private store.
	Store *Store

	// Logger receives per-size progress. Nil means the package Logger().
	Logger *zap.Logger

	// Tracer opens one span per generated size.
	Tracer trace.Tracer

	// Meter records generated word counts.
	Meter metric.Meter

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - a single worker
//   - MaxLetters = DefaultMaxLetters
//   - a private store
//   - the package logger
//   - no-op tracer and meter
func DefaultOptions() Options {
	return Options{
		Workers:    1,
		MaxLetters: DefaultMaxLetters,
		Tracer:     noop.NewTracerProvider().Tracer(instrumentationName),
		Meter:      metricnoop.NewMeterProvider().Meter(instrumentationName),
	}
}

// WithWorkers sets the worker pool size. n must be ≥ 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be ≥ 1, got %d", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithMaxLetters changes the safety limit. n must lie in [0, word.MaxLetters].
func WithMaxLetters(n int) Option {
	return func(o *Options) {
		if n < 0 || n > word.MaxLetters {
			o.err = fmt.Errorf("%w: max letters must lie in [0, %d], got %d",
				ErrOptionViolation, word.MaxLetters, n)
			return
		}
		o.MaxLetters = n
	}
}

// WithStore shares a memo store between calls.
func WithStore(s *Store) Option {
	return func(o *Options) {
		if s != nil {
			o.Store = s
		}
	}
}

// WithLogger sets the progress logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithTracer sets the tracer used for per-size spans.
func WithTracer(t trace.Tracer) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracer = t
		}
	}
}

// WithMeter sets the meter used for the generated-words counter.
func WithMeter(m metric.Meter) Option {
	return func(o *Options) {
		if m != nil {
			o.Meter = m
		}
	}
}

// build applies opts over the defaults and validates n.
func build(n int, opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if n < 0 {
		return o, fmt.Errorf("%w: %d", ErrNegativeLetters, n)
	}
	if n > o.MaxLetters {
		return o, fmt.Errorf("%w: n = %d, limit %d", ErrAlphabetTooLarge, n, o.MaxLetters)
	}
	if o.Store == nil {
		o.Store = NewStore()
	}
	if o.Logger == nil {
		o.Logger = Logger()
	}
	return o, nil
}
