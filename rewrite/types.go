package rewrite

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/freeband/word"
)

// ErrStepMismatch is returned when a step does not fit the word it is
// applied to (out of range, or no square where a removal expects one).
var ErrStepMismatch = errors.New("rewrite: step does not apply")

// Kind tells whether a step inserts or removes a square.
type Kind uint8

const (
	// Insert replaces the factor u at Pos with uu.
	Insert Kind = iota + 1

	// Remove replaces the factor uu at Pos with u.
	Remove
)

// String returns "insert" or "remove".
func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Remove:
		return "remove"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Step is one elementary rewrite.
type Step struct {
	Kind Kind
	Pos  int       // start of the affected factor
	Unit word.Word // u; the square is u·u
}

// Before returns the factor the step rewrites (u for Insert, uu for Remove).
func (s Step) Before() word.Word {
	if s.Kind == Remove {
		return word.Concat(s.Unit, s.Unit)
	}
	return s.Unit.Clone()
}

// After returns the factor the step produces.
func (s Step) After() word.Word {
	if s.Kind == Insert {
		return word.Concat(s.Unit, s.Unit)
	}
	return s.Unit.Clone()
}

// Inverse returns the step undoing s.
func (s Step) Inverse() Step {
	inv := s
	if s.Kind == Insert {
		inv.Kind = Remove
	} else {
		inv.Kind = Insert
	}
	return inv
}

// String renders a step as "remove (bc)(bc)@1".
func (s Step) String() string {
	return fmt.Sprintf("%s (%s)(%s)@%d", s.Kind, s.Unit, s.Unit, s.Pos)
}

// Trace is an ordered sequence of steps.
type Trace []Step
