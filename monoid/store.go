package monoid

import (
	"context"
	"sync"

	"github.com/katalvlaran/freeband/word"
)

// Store memoizes exact words: exact(k) holds the canonical words whose
// alphabet is exactly {0..k-1}, shortlex-sorted.
//
// Sizes are published strictly in increasing order and never change once
// published, so readers may share the returned slices. A Store is safe for
// concurrent use: callers sharing a store build each size once, the others
// wait for it to be published.
type Store struct {
	mu    sync.RWMutex
	exact [][]word.Word

	// building holds one token while a caller computes the next size.
	building chan struct{}
}

// NewStore returns a store seeded with exact(0) = {identity}.
func NewStore() *Store {
	return &Store{
		exact:    [][]word.Word{{word.Word{}}},
		building: make(chan struct{}, 1),
	}
}

// Sizes returns how many sizes are published: exact(0..Sizes()-1) exist.
func (s *Store) Sizes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.exact)
}

// Exact returns exact(k). ok is false if size k is not published yet.
// Callers must not modify the result.
func (s *Store) Exact(k int) (words []word.Word, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if k < 0 || k >= len(s.exact) {
		return nil, false
	}
	return s.exact[k], true
}

// acquire blocks until the caller may build the next size or ctx is done.
func (s *Store) acquire(ctx context.Context) error {
	select {
	case s.building <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) release() { <-s.building }

// publish appends exact(k). The caller holds the build slot, so k is always
// the next size.
func (s *Store) publish(k int, words []word.Word) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if k != len(s.exact) {
		panic("monoid: size published out of order")
	}
	s.exact = append(s.exact, words)
}
