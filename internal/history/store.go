package history

import "sync"

// Store is an insertion-ordered set of captions that have already been used.
type Store struct {
	mu    sync.RWMutex
	items []string
	index map[string]struct{}
}

// NewStore returns a store seeded with items, in order, skipping duplicates.
func NewStore(items ...string) *Store {
	s := &Store{index: make(map[string]struct{}, len(items))}
	for _, it := range items {
		s.add(it)
	}
	return s
}

// Contains reports exact membership.
func (s *Store) Contains(caption string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[caption]
	return ok
}

// Add inserts caption. Adding a caption already present is a no-op.
func (s *Store) Add(caption string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.add(caption)
}

func (s *Store) add(caption string) {
	if _, ok := s.index[caption]; ok {
		return
	}
	s.index[caption] = struct{}{}
	s.items = append(s.items, caption)
}

// Len returns the number of captions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Items returns a copy of all captions in insertion order.
func (s *Store) Items() []string {
	return s.Recent(-1)
}

// Recent returns a copy of the last n captions in insertion order. n < 0 returns all of them.
func (s *Store) Recent(n int) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	start := 0
	if n >= 0 && n < len(s.items) {
		start = len(s.items) - n
	}
	out := make([]string, len(s.items)-start)
	copy(out, s.items[start:])
	return out
}
