package engine

import (
	"sync"
	"sync/atomic"
)

// Store owns the current Transform4D and mediates every read and write.
//
// Readers get an immutable snapshot; writers get scoped access to a private
// copy which is published in a single atomic step. A reader therefore sees
// the transform exactly as it was before a given mutation or exactly as it
// is after, never a mix of old and new fields. The intended shape of traffic
// is one writer (the updater, on the game-loop goroutine) and any number of
// readers.
type Store struct {
	mu      sync.Mutex // serializes writers
	current atomic.Pointer[Transform4D]
}

// NewStore returns a store holding the zero transform: all six angles zero,
// zero translation.
func NewStore() *Store {
	s := &Store{}
	s.current.Store(&Transform4D{})
	return s
}

// View returns the current snapshot.
func (s *Store) View() Transform4D {
	return *s.current.Load()
}

// Update hands fn exclusive ownership of a copy of the current transform and
// publishes the copy as the new snapshot once fn returns. fn may change any
// fields in place; none of the changes are observable until the publish.
func (s *Store) Update(fn func(*Transform4D)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := *s.current.Load()
	fn(&next)
	s.current.Store(&next)
}
