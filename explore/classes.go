package explore

import (
	"fmt"

	"github.com/katalvlaran/freeband/word"
)

// Class is one component of the removal graph on bounded words.
type Class struct {
	// Rep is the shortlex-least member.
	Rep word.Word

	// Members in shortlex order, Rep first.
	Members []word.Word
}

// Classes partitions every word over the first n letters with at most
// maxLen letters into the components connected by square removals.
// Classes are returned in shortlex order of their representatives.
//
// Only the Ctx and MaxStates options apply; the number of words,
// Σ n^l for l ≤ maxLen, must not exceed MaxStates.
//
// Steps:
//  1. Enumerate words in shortlex order; the index is the order.
//  2. Union every word with each of its one-removal results.
//  3. Roots are the least index of their component, so one pass groups them.
func Classes(n, maxLen int, opts ...Option) ([]Class, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if n < 0 || n > word.MaxLetters || maxLen < 0 {
		return nil, fmt.Errorf("%w: n = %d, maxLen = %d", ErrOptionViolation, n, maxLen)
	}

	// 1. enumerate
	total, layer := 0, 1
	for l := 0; l <= maxLen; l++ {
		total += layer
		if total > o.MaxStates {
			return nil, fmt.Errorf("%w: %d words", ErrStateLimit, o.MaxStates)
		}
		layer *= n
	}
	words := make([]word.Word, 0, total)
	index := make(map[string]int, total)
	for l := 0; l <= maxLen; l++ {
		if n == 0 && l > 0 {
			break
		}
		cur := make(word.Word, l)
		for {
			index[cur.Key()] = len(words)
			words = append(words, cur.Clone())
			if !next(cur, n) {
				break
			}
		}
	}

	// 2. union by least index
	parent := make([]int, len(words))
	for i := range parent {
		parent[i] = i
	}
	find := func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	for i, w := range words {
		if i%4096 == 0 {
			select {
			case <-o.Ctx.Done():
				return nil, o.Ctx.Err()
			default:
			}
		}
		for _, s := range Steps(w, len(w)) {
			v, err := s.Apply(w)
			if err != nil {
				return nil, err
			}
			a, b := find(i), find(index[v.Key()])
			if a > b {
				a, b = b, a
			}
			parent[b] = a
		}
	}

	// 3. group
	var out []Class
	slot := make(map[int]int)
	for i, w := range words {
		r := find(i)
		k, ok := slot[r]
		if !ok {
			k = len(out)
			slot[r] = k
			out = append(out, Class{Rep: w})
		}
		out[k].Members = append(out[k].Members, w)
	}
	return out, nil
}

// next advances cur to the following word of the same length over n
// letters in lexicographic order. It reports false after the last one.
func next(cur word.Word, n int) bool {
	for i := len(cur) - 1; i >= 0; i-- {
		if int(cur[i])+1 < n {
			cur[i]++
			return true
		}
		cur[i] = 0
	}
	return false
}
