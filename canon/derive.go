package canon

import (
	"github.com/katalvlaran/freeband/decompose"
	"github.com/katalvlaran/freeband/rewrite"
	"github.com/katalvlaran/freeband/word"
)

// derive returns a trace rewriting w into Canonical(w).
//
// Squares are removed greedily first. If the square-free word is still not
// canonical, restructure rewrites it through its decomposition. Traces are
// cached per factor and must not be modified by callers.
func (m *memo) derive(w word.Word) (rewrite.Trace, error) {
	key := w.Key()
	if tr, ok := m.traces[key]; ok {
		return tr, nil
	}
	tr, err := m.deriveOnce(w)
	if err != nil {
		return nil, err
	}
	m.traces[key] = tr
	return tr, nil
}

func (m *memo) deriveOnce(w word.Word) (rewrite.Trace, error) {
	switch w.Alphabet().Len() {
	case 0:
		return nil, nil
	case 1:
		b := rewrite.NewBuilder(w)
		for len(b.Word()) > 1 {
			b.Remove(0, 1)
		}
		return b.Trace(), b.Err()
	}

	reduced, tr := rewrite.RemoveSquares(w)
	if m.isCanonical(reduced) {
		return tr, nil
	}
	rest, err := m.restructure(reduced)
	if err != nil {
		return nil, err
	}
	return append(tr, rest...), nil
}

// restructure rewrites w (alphabet ≥ 2) into Canonical(w):
//  1. turn w into p·a·b·q, by squaring the overlap of p·a and b·q or by
//     absorbing the middle between them;
//  2. normalize p and q in place with their own derivations;
//  3. collapse the junction square chosen by settle.
func (m *memo) restructure(w word.Word) (rewrite.Trace, error) {
	t, err := decompose.Decompose(w)
	if err != nil {
		return nil, err
	}
	head, tail := t.Head(), t.Tail()
	b := rewrite.NewBuilder(w)

	// 1. p·a·b·q
	if ov := t.Overlap(); ov > 0 {
		b.Insert(len(head)-ov, ov)
	} else if mid := t.Middle(); len(mid) > 0 {
		sub, err := collapse(head, mid, tail)
		if err != nil {
			return nil, err
		}
		b.Replay(sub, 0)
	}

	// 2. P·a·b·Q
	tp, err := m.derive(t.Prefix)
	if err != nil {
		return nil, err
	}
	b.Replay(tp, 0)
	p := m.canonical(t.Prefix)

	tq, err := m.derive(t.Suffix)
	if err != nil {
		return nil, err
	}
	b.Replay(tq, len(p)+2)
	q := m.canonical(t.Suffix)

	// 3. junction
	if _, step, ok := settle(p, t.A, t.B, q); ok {
		b.Apply(step)
	}
	return b.Trace(), b.Err()
}

// collapse derives X·m·Y → X·Y for Alphabet(m) ⊆ Alphabet(X) = Alphabet(Y):
// first Y → Y·X·Y, then X·(m·Y)·X → X.
func collapse(x, m, y word.Word) (rewrite.Trace, error) {
	b := rewrite.NewBuilder(word.Concat(x, m, y))

	grow, err := absorb(y, x)
	if err != nil {
		return nil, err
	}
	b.Replay(grow.Invert(), len(x)+len(m))

	shrink, err := absorb(x, word.Concat(m, y))
	if err != nil {
		return nil, err
	}
	b.Replay(shrink, 0)
	return b.Trace(), b.Err()
}

// absorb derives x·y·x → x for Alphabet(y) ⊆ Alphabet(x).
//
// x is first rewritten into an equivalent x' = u·y·v holding y as a factor.
// Then
//
//	u·y·v·y·u·y·v → u·(y·u·y·v)² → u·y·u·y·v → u·y·v
//
// and x' is rewritten back into x.
func absorb(x, y word.Word) (rewrite.Trace, error) {
	b := rewrite.NewBuilder(word.Concat(x, y, x))
	if len(y) == 0 {
		b.Remove(0, len(x))
		return b.Trace(), b.Err()
	}

	d, xf, j, err := factorize(x, y)
	if err != nil {
		return nil, err
	}
	b.Replay(d, 0)
	b.Replay(d, len(xf)+len(y))

	b.Insert(0, j+len(y))
	b.Remove(j, len(y)+len(xf))
	b.Remove(0, j+len(y))

	b.Replay(d.Invert(), 0)
	return b.Trace(), b.Err()
}

// factorize derives x → x' where x' holds y as a factor at position j.
// y is grown one letter at a time: to append l after the factor, the
// shortest factor z = l·… ending at the factor's end is expanded to z·l·z.
// If l does not occur before the factor, the word is squared first.
func factorize(x, y word.Word) (rewrite.Trace, word.Word, int, error) {
	if j := indexFactor(x, y); j >= 0 {
		return nil, x, j, nil
	}

	b := rewrite.NewBuilder(x)
	j := x.Index(y[0])
	for i := 1; i < len(y); i++ {
		l := y[i]
		end := j + i
		if b.Word()[:end].Index(l) < 0 {
			n := len(b.Word())
			b.Insert(0, n)
			j += n
			end += n
		}
		k := b.Word()[:end].LastIndex(l)
		n := end - k
		b.Insert(k, n)   // z·z
		b.Insert(k+n, 1) // z·l·z
	}
	return b.Trace(), b.Word(), j, b.Err()
}

// indexFactor returns the first position of y inside x, or -1.
func indexFactor(x, y word.Word) int {
	for i := 0; i+len(y) <= len(x); i++ {
		if x[i : i+len(y)].Equal(y) {
			return i
		}
	}
	return -1
}
