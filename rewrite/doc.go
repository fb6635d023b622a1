// Package rewrite represents elementary square rewrites as data.
//
// A Step either inserts a square (the factor u at Pos becomes uu) or
// removes one (the factor uu at Pos becomes u). A Trace is an ordered list
// of steps; replaying it on a word yields the rewritten word, and every
// step is checked against the word it is applied to.
//
// Key features:
//   - Step.Apply / Trace.Replay: validated application, ErrStepMismatch on misuse
//   - Trace.Invert / Trace.Shift: compose derivations inside larger words
//   - Builder: sticky-error accumulator for building traces step by step
//   - FindSquare / RemoveSquares: greedy leftmost-shortest square removal
package rewrite
