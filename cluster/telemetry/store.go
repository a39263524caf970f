package telemetry

import (
	"sync"
	"sync/atomic"
)

// Store is the shared latest snapshot. Producers write it at their own
// cadence; readers get a whole snapshot and never wait on a producer.
type Store struct {
	cur atomic.Pointer[Snapshot]
	mu  sync.Mutex // serializes writers
}

// NewStore returns a store holding initial.
func NewStore(initial Snapshot) *Store {
	s := &Store{}
	s.Set(initial)
	return s
}

// Snapshot returns the latest published snapshot.
func (s *Store) Snapshot() Snapshot {
	if p := s.cur.Load(); p != nil {
		return *p
	}
	return Snapshot{}
}

// Set replaces the whole snapshot. It waits for a running Update.
func (s *Store) Set(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur.Store(&snap)
}

// Update applies fn to a copy of the current snapshot and publishes it.
func (s *Store) Update(fn func(*Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.Snapshot()
	fn(&next)
	s.cur.Store(&next)
}
