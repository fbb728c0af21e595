package redis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter is a Redis-backed sliding-window limiter shared across service
// instances. Each key holds a sorted set of accepted-submission timestamps;
// entries older than the window are pruned on every check.
// Key format: ratelimit:contact:<source_key>
type RateLimiter struct {
	client   *redis.Client
	max      int
	window   time.Duration
	instance string
	seq      atomic.Uint64
}

// NewRateLimiter creates a limiter allowing max accepted submissions per key
// within the sliding window.
func NewRateLimiter(client *redis.Client, max int, window time.Duration) *RateLimiter {
	buf := make([]byte, 4)
	_, _ = rand.Read(buf)
	return &RateLimiter{
		client:   client,
		max:      max,
		window:   window,
		instance: hex.EncodeToString(buf),
	}
}

// Allow prunes expired entries and reports whether key is under the limit.
// Quota is not consumed.
func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	now := time.Now()
	cutoff := strconv.FormatInt(now.Add(-l.window).UnixMilli(), 10)

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, l.key(key), "-inf", cutoff)
	count := pipe.ZCard(ctx, l.key(key))
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit check: %w", err)
	}

	return count.Val() < int64(l.max), nil
}

// Record counts one accepted submission for key. The set expires a full
// window after the last accepted submission so idle keys clean themselves up.
func (l *RateLimiter) Record(ctx context.Context, key string) error {
	now := time.Now().UnixMilli()

	pipe := l.client.Pipeline()
	pipe.ZAdd(ctx, l.key(key), redis.Z{Score: float64(now), Member: l.member(now)})
	pipe.Expire(ctx, l.key(key), l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("rate limit record: %w", err)
	}
	return nil
}

// member builds a ZSET member unique per accepted submission. ZAdd overwrites
// equal members, so a bare timestamp would collapse same-millisecond
// submissions into one entry and undercount the window; the per-process
// instance id keeps members from colliding across replicas too.
func (l *RateLimiter) member(now int64) string {
	return strconv.FormatInt(now, 10) + ":" + l.instance + ":" + strconv.FormatUint(l.seq.Add(1), 10)
}

func (l *RateLimiter) key(source string) string {
	return "ratelimit:contact:" + source
}
