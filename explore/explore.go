package explore

import (
	"fmt"

	"github.com/katalvlaran/freeband/rewrite"
	"github.com/katalvlaran/freeband/word"
)

// queueItem pairs a word with its BFS depth.
type queueItem struct {
	w     word.Word
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	opts  Options
	limit int
	queue []queueItem
	res   *Result
}

// Explore runs breadth-first search over square rewrites starting from
// start, applying any number of functional Options.
// Returns ErrOptionViolation for bad options, ErrStateLimit when the search
// outgrows MaxStates, ctx errors on cancellation, or any OnVisit error.
// On error the partial result is returned alongside.
func Explore(start word.Word, opts ...Option) (*Result, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		opts:  o,
		limit: max(o.MaxLength, len(start)),
		res: &Result{
			Depth:  make(map[string]int),
			Parent: make(map[string]string),
			Via:    make(map[string]rewrite.Step),
		},
	}

	// Seed queue with the start word (no parent)
	w.enqueue(start.Clone(), 0, "", rewrite.Step{})
	// Main loop
	return w.res, w.loop()
}

// enqueue records w at depth d with its parent link and queues it.
func (w *walker) enqueue(x word.Word, d int, parent string, via rewrite.Step) {
	key := x.Key()
	w.res.Depth[key] = d
	if d > 0 {
		w.res.Parent[key] = parent
		w.res.Via[key] = via
	}
	w.queue = append(w.queue, queueItem{w: x, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.w)
		if err := w.opts.OnVisit(item.w, item.depth); err != nil {
			return fmt.Errorf("explore: OnVisit error at %s: %w", item.w, err)
		}
		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// enqueueNeighbors queues every unseen word one step away from item.
func (w *walker) enqueueNeighbors(item queueItem) error {
	parent := item.w.Key()
	for _, s := range Steps(item.w, w.limit) {
		next, err := s.Apply(item.w)
		if err != nil {
			// Steps only yields applicable steps
			return err
		}
		if _, seen := w.res.Depth[next.Key()]; seen {
			continue
		}
		if len(w.res.Depth) >= w.opts.MaxStates {
			return fmt.Errorf("%w: %d words", ErrStateLimit, w.opts.MaxStates)
		}
		w.enqueue(next, item.depth+1, parent, s)
	}
	return nil
}

// Steps returns every square rewrite applicable to x whose result has at
// most maxLen letters: removals first, then insertions, each ordered by
// unit length and then position.
func Steps(x word.Word, maxLen int) []rewrite.Step {
	var out []rewrite.Step
	n := len(x)

	// 1. removals uu → u
	for l := 1; 2*l <= n; l++ {
		for i := 0; i+2*l <= n; i++ {
			if x[i : i+l].Equal(x[i+l : i+2*l]) {
				out = append(out, rewrite.Step{Kind: rewrite.Remove, Pos: i, Unit: x[i : i+l].Clone()})
			}
		}
	}

	// 2. insertions u → uu
	for l := 1; l <= n && n+l <= maxLen; l++ {
		for i := 0; i+l <= n; i++ {
			out = append(out, rewrite.Step{Kind: rewrite.Insert, Pos: i, Unit: x[i : i+l].Clone()})
		}
	}
	return out
}
