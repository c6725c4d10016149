// Package middleware provides HTTP middleware shipped with Setu.
//
// The server core wires only the fixed global chain (CORS, tracing,
// request ID, logging); everything in this package is layered by callers
// around or inside the built pipeline.
package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateStore counts requests per key inside a sliding window.
type RateStore interface {
	// Allow records one hit for key and reports whether the caller is
	// still within max hits per window.
	Allow(ctx context.Context, key string, max int, window time.Duration) bool
}

// ─── In-memory store ──────────────────────────────────────────────────────────

// bucket tracks a sliding-window request count for one key.
type bucket struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

func (b *bucket) allow(max int, window time.Duration) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	if now.After(b.resetAt) {
		b.count = 0
		b.resetAt = now.Add(window)
	}

	b.count++
	return b.count <= max
}

// MemoryStore is a process-local RateStore. The zero value is not usable;
// call NewMemoryStore, which also starts the eviction goroutine.
type MemoryStore struct {
	mu      sync.Mutex
	buckets map[string]*bucket
}

// NewMemoryStore creates an in-memory rate store and starts a background
// sweeper that evicts expired buckets every minute so long-running servers
// don't grow without bound.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{buckets: map[string]*bucket{}}

	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			now := time.Now()
			s.mu.Lock()
			for key, b := range s.buckets {
				b.mu.Lock()
				expired := now.After(b.resetAt)
				b.mu.Unlock()
				if expired {
					delete(s.buckets, key)
				}
			}
			s.mu.Unlock()
		}
	}()

	return s
}

// Allow implements RateStore.
func (s *MemoryStore) Allow(_ context.Context, key string, max int, window time.Duration) bool {
	s.mu.Lock()
	b, ok := s.buckets[key]
	if !ok {
		b = &bucket{resetAt: time.Now().Add(window)}
		s.buckets[key] = b
	}
	s.mu.Unlock()

	return b.allow(max, window)
}

// ─── Redis store ──────────────────────────────────────────────────────────────

// RedisStore is a RateStore shared across server instances via Redis.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore wraps client as a rate store. Keys are namespaced with
// "setu:rate:".
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, prefix: "setu:rate:"}
}

// Allow implements RateStore with INCR + EXPIRE. On any Redis error the
// request is allowed; rate limiting degrades open rather than taking the
// service down with it.
func (s *RedisStore) Allow(ctx context.Context, key string, max int, window time.Duration) bool {
	redisKey := s.prefix + key

	count, err := s.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return true
	}
	if count == 1 {
		_ = s.client.Expire(ctx, redisKey, window).Err()
	}

	return count <= int64(max)
}

// ─── Middleware ───────────────────────────────────────────────────────────────

// RateLimit limits each client IP to max requests per window using an
// in-memory store. Example: middleware.RateLimit(100, time.Minute)
func RateLimit(max int, window time.Duration) func(http.Handler) http.Handler {
	return RateLimitWithStore(NewMemoryStore(), max, window)
}

// RateLimitWithStore is RateLimit with a caller-supplied store, e.g. a
// RedisStore shared by several instances behind a load balancer.
func RateLimitWithStore(store RateStore, max int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := r.RemoteAddr
			if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
				ip = fwd
			}

			if !store.Allow(r.Context(), ip, max, window) {
				http.Error(w, `{"status":429,"message":"Too Many Requests"}`, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
