// Package review holds recently reviewed payloads in process memory so a
// follow-up PDF download can fetch them. Nothing is persisted; a restart
// clears every snapshot.
package review

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wasteexperts/pdf-extractor/internal/extract"
)

// Store keeps review snapshots keyed by a short-lived token, so concurrent
// reviewers do not overwrite each other. Saves with the same token still
// race last-writer-wins.
type Store struct {
	mu      sync.Mutex
	entries map[string]entry
	latest  string
	ttl     time.Duration
	now     func() time.Time
}

type entry struct {
	payload extract.Payload
	savedAt time.Time
}

// NewStore creates a store whose snapshots expire after ttl.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Save stores the payload and returns the token that retrieves it.
func (s *Store) Save(p extract.Payload) string {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()
	s.entries[token] = entry{payload: p, savedAt: s.now()}
	s.latest = token
	return token
}

// Load returns the snapshot for token.
func (s *Store) Load(token string) (extract.Payload, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()
	e, ok := s.entries[token]
	if !ok {
		return extract.Payload{}, false
	}
	return e.payload, true
}

// Latest returns the most recently saved snapshot, or an empty payload
// when nothing has been saved yet.
func (s *Store) Latest() extract.Payload {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()
	if e, ok := s.entries[s.latest]; ok {
		return e.payload
	}
	return extract.Empty()
}

// Len reports how many live snapshots are held.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()
	return len(s.entries)
}

// sweepLocked drops expired snapshots. Caller holds mu.
func (s *Store) sweepLocked() {
	cutoff := s.now().Add(-s.ttl)
	for token, e := range s.entries {
		if e.savedAt.Before(cutoff) {
			delete(s.entries, token)
		}
	}
}
