package memory

import (
	"context"
	"sync"
	"time"

	"github.com/BrandonDHaskell/acesso/server/internal/acesso/store"
)

// EventStore is an in-memory append-only log of access events.
// It is intended for use in tests and dev environments.
type EventStore struct {
	mu     sync.Mutex
	events []store.EventRecord
}

func NewEventStore() *EventStore {
	return &EventStore{}
}

func (s *EventStore) Append(_ context.Context, rec store.EventRecord) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec.ID = int64(len(s.events) + 1)
	rec.CreatedAt = time.Now().UTC().Unix()
	s.events = append(s.events, rec)
	return rec.ID, nil
}

func (s *EventStore) Recent(_ context.Context, limit int) ([]store.EventRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 {
		return nil, nil
	}
	if limit > len(s.events) {
		limit = len(s.events)
	}
	out := make([]store.EventRecord, 0, limit)
	for i := len(s.events) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.events[i])
	}
	return out, nil
}

func (s *EventStore) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.events)), nil
}

// Events returns a copy of all recorded events in insertion order. Test-only helper.
func (s *EventStore) Events() []store.EventRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]store.EventRecord, len(s.events))
	copy(out, s.events)
	return out
}
