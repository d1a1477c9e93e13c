package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Connect initializes a Redis client from URL or host:port input.
func Connect(_ context.Context, redisURL string) (*redis.Client, error) {
	if strings.HasPrefix(redisURL, "redis://") {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		return redis.NewClient(opt), nil
	}
	return redis.NewClient(&redis.Options{Addr: redisURL}), nil
}

// RedisEventDedupStore remembers processor event IDs so retried deliveries
// of the same event do not fulfill twice. SETNX makes check-and-mark atomic
// across concurrent deliveries of the same event.
type RedisEventDedupStore struct {
	client *redis.Client
}

func NewRedisEventDedupStore(client *redis.Client) *RedisEventDedupStore {
	return &RedisEventDedupStore{client: client}
}

func (s *RedisEventDedupStore) FirstSeen(ctx context.Context, eventID string, ttl time.Duration) (bool, error) {
	return s.client.SetNX(ctx, "checkout:event:"+eventID, time.Now().UTC().Unix(), ttl).Result()
}
