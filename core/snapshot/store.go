package snapshot

import "sync/atomic"

// Store holds the published snapshot.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Current returns the published snapshot, or nil before the first
// publication.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Publish makes snap visible to every subsequent Current call.
func (s *Store) Publish(snap *Snapshot) {
	if snap == nil {
		return
	}
	s.current.Store(snap)
}
