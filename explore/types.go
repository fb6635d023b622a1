package explore

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/freeband/rewrite"
	"github.com/katalvlaran/freeband/word"
)

// Sentinel errors for exploration.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("explore: invalid option supplied")

	// ErrStateLimit is returned when a search would hold more words than
	// allowed by MaxStates.
	ErrStateLimit = errors.New("explore: state limit exceeded")

	// ErrNotReached is returned by PathTo for a word the search never saw.
	ErrNotReached = errors.New("explore: word not reached")
)

// DefaultMaxStates bounds a search unless WithMaxStates says otherwise.
const DefaultMaxStates = 1 << 20

// Option configures Explore and Classes via functional arguments.
// If an Option is invalid, it is recorded internally and surfaced as
// ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds the bounds and hooks of a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxLength bounds the words an insertion may produce. Values below the
	// start length are raised to it, so 0 means removals only.
	MaxLength int

	// MaxDepth, if > 0, stops exploring beyond this many rewrites.
	MaxDepth int

	// MaxStates caps the number of words held by the search.
	MaxStates int

	// OnVisit is called when visiting a word. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(w word.Word, depth int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Context.Background()
//   - no growth beyond the start length
//   - no depth limit
//   - DefaultMaxStates
//   - a no-op OnVisit
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MaxStates: DefaultMaxStates,
		OnVisit:   func(word.Word, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxLength lets insertions grow words up to n letters.
func WithMaxLength(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxLength cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxLength = n
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMaxStates caps the number of words a search may hold. n must be > 0.
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxStates must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(w word.Word, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of Explore:
//   - Order: words visited, in visit sequence (Order[0] is the start).
//   - Depth: word key → rewrite distance from the start.
//   - Parent: word key → key of its predecessor in the BFS tree.
//   - Via: word key → the step leading to it from its parent.
//
// Keys are word.Key values.
type Result struct {
	Order  []word.Word
	Depth  map[string]int
	Parent map[string]string
	Via    map[string]rewrite.Step
}

// Reached reports whether the search saw w.
func (r *Result) Reached(w word.Word) bool {
	_, ok := r.Depth[w.Key()]
	return ok
}

// Shortest returns the shortlex-least word reached.
func (r *Result) Shortest() word.Word {
	var best word.Word
	for i, w := range r.Order {
		if i == 0 || word.Compare(w, best) < 0 {
			best = w
		}
	}
	return best
}

// PathTo reconstructs a shortest trace from the start to dest.
// Returns ErrNotReached if dest was not reached.
func (r *Result) PathTo(dest word.Word) (rewrite.Trace, error) {
	key := dest.Key()
	if _, ok := r.Depth[key]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotReached, dest)
	}
	// build reversed trace
	var tr rewrite.Trace
	for cur := key; ; {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		tr = append(tr, r.Via[cur])
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(tr)-1; i < j; i, j = i+1, j-1 {
		tr[i], tr[j] = tr[j], tr[i]
	}
	return tr, nil
}
