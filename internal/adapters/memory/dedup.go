package memory

import (
	"context"
	"sync"
	"time"
)

// EventDedupStore is the single-node counterpart of the Redis store. Used by
// tests and deployments without a Redis endpoint configured.
type EventDedupStore struct {
	mu    sync.Mutex
	seen  map[string]time.Time
	nowFn func() time.Time
}

func NewEventDedupStore() *EventDedupStore {
	return &EventDedupStore{seen: map[string]time.Time{}, nowFn: time.Now}
}

func (s *EventDedupStore) FirstSeen(_ context.Context, eventID string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.nowFn()
	if expiry, ok := s.seen[eventID]; ok && now.Before(expiry) {
		return false, nil
	}
	s.seen[eventID] = now.Add(ttl)
	return true, nil
}
