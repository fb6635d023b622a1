package canon

import (
	"errors"

	"github.com/katalvlaran/freeband/rewrite"
	"github.com/katalvlaran/freeband/word"
)

// ErrTraceMismatch is returned when a derived trace does not reproduce the
// canonical word. It indicates a bug, never bad input.
var ErrTraceMismatch = errors.New("canon: trace does not reach the canonical form")

// Option configures Canonicalize.
type Option func(*Options)

// Options holds the knobs of Canonicalize.
type Options struct {
	// Trace requests the rewrite steps from the input to the result.
	Trace bool

	// Verify replays the trace against the input before returning.
	// Only meaningful when Trace is set.
	Verify bool
}

// DefaultOptions returns Options with:
//   - no trace
//   - verification on (applies once a trace is requested)
func DefaultOptions() Options {
	return Options{
		Trace:  false,
		Verify: true,
	}
}

// WithTrace asks Canonicalize to return the rewrite steps.
func WithTrace() Option {
	return func(o *Options) {
		o.Trace = true
	}
}

// WithoutVerify skips the final replay check of the trace.
func WithoutVerify() Option {
	return func(o *Options) {
		o.Verify = false
	}
}

// Result is the outcome of Canonicalize.
type Result struct {
	// Word is the canonical form.
	Word word.Word

	// Trace rewrites the input into Word. Nil unless requested.
	Trace rewrite.Trace
}
