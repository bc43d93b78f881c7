package embedding

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisKeyPrefix namespaces cache entries in a shared Redis.
const redisKeyPrefix = "assessor:embedding:"

// RedisStore is a Redis-backed Store for deployments where many workers
// share one embedding cache. Writes go straight to Redis, so Flush and
// Cleanup are no-ops kept for interface parity with FileStore.
type RedisStore struct {
	client  *redis.Client
	timeout time.Duration
}

// NewRedisStore creates a Store on an existing Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, timeout: 5 * time.Second}
}

// OpenRedisStore connects to Redis and verifies the connection.
func OpenRedisStore(ctx context.Context, addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return NewRedisStore(client), nil
}

// OpenRedisStoreURL connects using a redis:// URL.
func OpenRedisStoreURL(ctx context.Context, url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", opts.Addr, err)
	}
	return NewRedisStore(client), nil
}

// Get returns the cached vector for the key. Any Redis error is treated
// as a cache miss; the caller just recomputes.
func (s *RedisStore) Get(key string) ([]float64, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	data, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		return nil, false
	}
	var vec []float64
	if err := json.Unmarshal(data, &vec); err != nil {
		return nil, false
	}
	return vec, true
}

// Put records a vector under the key. Content-hash keys make concurrent
// writes idempotent. Errors are ignored; losing a cache write only costs
// a later recompute.
func (s *RedisStore) Put(key string, vec []float64) {
	if len(vec) == 0 {
		return
	}
	data, err := json.Marshal(vec)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	_ = s.client.Set(ctx, redisKeyPrefix+key, data, 0).Err()
}

// Flush is a no-op; writes are already persisted.
func (s *RedisStore) Flush() error { return nil }

// Cleanup is a no-op; entries have no expiry.
func (s *RedisStore) Cleanup() error { return nil }

// Close releases the Redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
