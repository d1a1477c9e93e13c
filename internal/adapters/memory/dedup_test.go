package memory

import (
	"context"
	"testing"
	"time"
)

func TestFirstSeenMarksOnce(t *testing.T) {
	store := NewEventDedupStore()
	ctx := context.Background()

	first, err := store.FirstSeen(ctx, "evt_1", time.Hour)
	if err != nil || !first {
		t.Fatalf("first sighting: first=%v err=%v", first, err)
	}
	again, err := store.FirstSeen(ctx, "evt_1", time.Hour)
	if err != nil || again {
		t.Fatalf("second sighting must not be first: first=%v err=%v", again, err)
	}
	other, err := store.FirstSeen(ctx, "evt_2", time.Hour)
	if err != nil || !other {
		t.Fatalf("distinct event must be first: first=%v err=%v", other, err)
	}
}

func TestFirstSeenExpires(t *testing.T) {
	store := NewEventDedupStore()
	now := time.Unix(1700000000, 0)
	store.nowFn = func() time.Time { return now }

	if first, _ := store.FirstSeen(context.Background(), "evt_1", time.Hour); !first {
		t.Fatal("initial sighting must be first")
	}
	now = now.Add(2 * time.Hour)
	if first, _ := store.FirstSeen(context.Background(), "evt_1", time.Hour); !first {
		t.Fatal("sighting after TTL must count as first again")
	}
}
