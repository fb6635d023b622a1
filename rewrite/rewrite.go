package rewrite

import (
	"fmt"

	"github.com/katalvlaran/freeband/word"
)

// Apply returns the word obtained by applying s to w.
// The input is never modified.
func (s Step) Apply(w word.Word) (word.Word, error) {
	n := len(s.Unit)
	if n == 0 || s.Pos < 0 {
		return nil, fmt.Errorf("%w: %v on %s", ErrStepMismatch, s, w)
	}
	switch s.Kind {
	case Insert:
		if s.Pos+n > len(w) || !w[s.Pos:s.Pos+n].Equal(s.Unit) {
			return nil, fmt.Errorf("%w: %v on %s", ErrStepMismatch, s, w)
		}
		return word.Concat(w[:s.Pos+n], w[s.Pos:]), nil
	case Remove:
		if s.Pos+2*n > len(w) || !w[s.Pos:s.Pos+n].Equal(s.Unit) || !w[s.Pos+n:s.Pos+2*n].Equal(s.Unit) {
			return nil, fmt.Errorf("%w: %v on %s", ErrStepMismatch, s, w)
		}
		return word.Concat(w[:s.Pos+n], w[s.Pos+2*n:]), nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %v", ErrStepMismatch, s.Kind)
	}
}

// Split cuts w (the word before s) around the rewritten factor.
// head·s.Before()·tail == w when s applies to w.
func (s Step) Split(w word.Word) (head, tail word.Word) {
	end := s.Pos + len(s.Before())
	if s.Pos > len(w) || end > len(w) {
		return w, word.Word{}
	}
	return w[:s.Pos], w[end:]
}

// Replay applies every step of t to w in order.
func (t Trace) Replay(w word.Word) (word.Word, error) {
	cur := w
	for i, s := range t {
		next, err := s.Apply(cur)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		cur = next
	}
	return cur, nil
}

// Invert returns the trace undoing t: reversed order, each step inverted.
func (t Trace) Invert() Trace {
	out := make(Trace, len(t))
	for i, s := range t {
		out[len(t)-1-i] = s.Inverse()
	}
	return out
}

// Shift returns t with every position moved by off, for replaying a
// derivation of a factor inside a larger word.
func (t Trace) Shift(off int) Trace {
	out := make(Trace, len(t))
	for i, s := range t {
		s.Pos += off
		out[i] = s
	}
	return out
}

// Counts returns the number of insertions and removals in t.
func (t Trace) Counts() (inserts, removes int) {
	for _, s := range t {
		if s.Kind == Insert {
			inserts++
		} else {
			removes++
		}
	}
	return inserts, removes
}

// Builder accumulates a trace while tracking the current word.
// The first failing step is kept in Err and later calls become no-ops.
type Builder struct {
	cur   word.Word
	steps Trace
	err   error
}

// NewBuilder starts a derivation from a copy of w.
func NewBuilder(w word.Word) *Builder {
	return &Builder{cur: w.Clone()}
}

// Insert squares the factor of length n at pos.
func (b *Builder) Insert(pos, n int) {
	b.step(Insert, pos, n)
}

// Remove collapses the square with unit length n at pos.
func (b *Builder) Remove(pos, n int) {
	b.step(Remove, pos, n)
}

func (b *Builder) step(k Kind, pos, n int) {
	if b.err != nil {
		return
	}
	if pos < 0 || n <= 0 || pos+n > len(b.cur) {
		b.err = fmt.Errorf("%w: %v of length %d at %d on %s", ErrStepMismatch, k, n, pos, b.cur)
		return
	}
	b.Apply(Step{Kind: k, Pos: pos, Unit: b.cur[pos : pos+n].Clone()})
}

// Apply records s after checking it against the current word.
func (b *Builder) Apply(s Step) {
	if b.err != nil {
		return
	}
	next, err := s.Apply(b.cur)
	if err != nil {
		b.err = err
		return
	}
	b.cur = next
	b.steps = append(b.steps, s)
}

// Replay applies t with every position moved by off.
func (b *Builder) Replay(t Trace, off int) {
	for _, s := range t {
		s.Pos += off
		b.Apply(s)
	}
}

// Word returns the current word. Callers must not modify it.
func (b *Builder) Word() word.Word { return b.cur }

// Trace returns the recorded steps.
func (b *Builder) Trace() Trace { return b.steps }

// Err returns the first step that failed, if any.
func (b *Builder) Err() error { return b.err }
