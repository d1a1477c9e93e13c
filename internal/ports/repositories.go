package ports

import (
	"context"
	"time"
)

// EventDedupStore records processor event IDs so redelivered events can be
// recognized. FirstSeen returns true exactly once per event ID within the TTL
// window; the check and the mark are a single atomic operation.
type EventDedupStore interface {
	FirstSeen(ctx context.Context, eventID string, ttl time.Duration) (bool, error)
}
