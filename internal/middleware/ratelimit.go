package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/happypaws-scheduler/internal/httperr"
)

// Limiter counts hits per key in fixed windows.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit throttles a route group per caller. Authenticated callers are
// keyed by user id, everyone else by client IP. Limiter errors fail open.
func RateLimit(l Limiter, prefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := prefix + ":ip:" + c.ClientIP()
		if p, ok := PrincipalFrom(c); ok {
			key = prefix + ":user:" + p.ID
		}

		ok, err := l.Allow(c.Request.Context(), key)
		if err != nil {
			slog.WarnContext(c.Request.Context(), "rate limiter error", "err", err)
			c.Next()
			return
		}
		if !ok {
			httperr.TooManyRequests(c, "rate_limited", "Too many requests. Please slow down.")
			return
		}
		c.Next()
	}
}

// ======================================================
// REDIS
// ======================================================

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// RedisLimiter shares its windows across every API instance.
type RedisLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
}

func NewRedisLimiter(rdb *redis.Client, limit int, window time.Duration) *RedisLimiter {
	limit, window = limiterDefaults(limit, window)
	return &RedisLimiter{rdb: rdb, limit: limit, window: window}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	res, err := fixedWindowScript.Run(ctx, l.rdb, []string{key}, l.window.Milliseconds()).Result()
	if err != nil {
		return false, err
	}

	var count int64
	switch v := res.(type) {
	case int64:
		count = v
	case string:
		if count, err = strconv.ParseInt(v, 10, 64); err != nil {
			return false, err
		}
	default:
		return false, fmt.Errorf("unexpected redis script result type %T", res)
	}

	return count <= int64(l.limit), nil
}

// ======================================================
// IN-PROCESS
// ======================================================

// MemoryLimiter is used when no Redis is configured. Windows are per process.
type MemoryLimiter struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	windows map[string]*window
}

type window struct {
	count   int
	resetAt time.Time
}

func NewMemoryLimiter(limit int, win time.Duration, now func() time.Time) *MemoryLimiter {
	limit, win = limiterDefaults(limit, win)
	if now == nil {
		now = time.Now
	}
	return &MemoryLimiter{
		limit:   limit,
		window:  win,
		now:     now,
		windows: map[string]*window{},
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w := l.windows[key]
	if w == nil || !now.Before(w.resetAt) {
		l.windows[key] = &window{count: 1, resetAt: now.Add(l.window)}
		l.sweep(now)
		return true, nil
	}

	if w.count >= l.limit {
		return false, nil
	}
	w.count++
	return true, nil
}

// sweep drops expired windows so idle keys do not accumulate.
func (l *MemoryLimiter) sweep(now time.Time) {
	if len(l.windows) < 1024 {
		return
	}
	for k, w := range l.windows {
		if !now.Before(w.resetAt) {
			delete(l.windows, k)
		}
	}
}

func limiterDefaults(limit int, win time.Duration) (int, time.Duration) {
	if limit <= 0 {
		limit = 20
	}
	if win <= 0 {
		win = time.Minute
	}
	return limit, win
}
