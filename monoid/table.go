package monoid

import (
	"context"
	"fmt"

	"github.com/katalvlaran/freeband/canon"
	"github.com/katalvlaran/freeband/word"
	"go.uber.org/zap"
)

// MulTable is the multiplication table of the monoid on n letters.
type MulTable struct {
	// Elements in Generate order; index 0 is the identity.
	Elements []word.Word

	// Product[i][j] is the index of Elements[i]·Elements[j].
	Product [][]int

	index map[string]int
}

// Table generates the monoid on n ≤ MaxTableLetters letters and multiplies
// every pair of elements. ctx is checked once per row.
func Table(ctx context.Context, n int, opts ...Option) (*MulTable, error) {
	if n > MaxTableLetters {
		return nil, fmt.Errorf("%w: table needs n ≤ %d, got %d", ErrAlphabetTooLarge, MaxTableLetters, n)
	}
	o, err := build(n, opts)
	if err != nil {
		return nil, err
	}
	elems, err := generate(ctx, n, &o)
	if err != nil {
		return nil, err
	}

	t := &MulTable{
		Elements: elems,
		Product:  make([][]int, len(elems)),
		index:    make(map[string]int, len(elems)),
	}
	for i, e := range elems {
		t.index[e.Key()] = i
	}
	for i, u := range elems {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		row := make([]int, len(elems))
		for j, v := range elems {
			c := canon.Multiply(u, v)
			k, ok := t.index[c.Key()]
			if !ok {
				return nil, fmt.Errorf("monoid: product %s·%s = %s is not an element", u, v, c)
			}
			row[j] = k
		}
		t.Product[i] = row
	}
	o.Logger.Debug("monoid table built", zap.Int("letters", n), zap.Int("elements", len(elems)))
	return t, nil
}

// Index returns the position of the element equivalent to w.
func (t *MulTable) Index(w word.Word) (int, bool) {
	i, ok := t.index[canon.Canonical(w).Key()]
	return i, ok
}

// Multiply returns the index of Elements[i]·Elements[j].
func (t *MulTable) Multiply(i, j int) int {
	return t.Product[i][j]
}
