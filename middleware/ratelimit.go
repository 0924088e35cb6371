package middleware

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Limiter decides whether one more request under key is allowed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type redisLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
}

// NewRedisLimiter counts requests per key in fixed windows with INCR and a TTL,
// so the budget is shared by every instance behind the same Redis.
func NewRedisLimiter(rdb *redis.Client, limit int, window time.Duration) Limiter {
	return &redisLimiter{rdb: rdb, limit: limit, window: window}
}

func (l *redisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	cnt, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		return true, err
	}
	if cnt == 1 {
		if err := l.rdb.Expire(ctx, key, l.window).Err(); err != nil {
			return true, err
		}
	}
	return cnt <= int64(l.limit), nil
}

type memoryLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
	maxKeys  int
}

// NewMemoryLimiter is the single-instance fallback: a token bucket per key
// refilling limit tokens every window.
func NewMemoryLimiter(limit int, window time.Duration) Limiter {
	return &memoryLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Every(window / time.Duration(limit)),
		burst:    limit,
		maxKeys:  10000,
	}
}

func (l *memoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	limiter, ok := l.limiters[key]
	if !ok {
		if len(l.limiters) >= l.maxKeys {
			l.limiters = make(map[string]*rate.Limiter)
		}
		limiter = rate.NewLimiter(l.rate, l.burst)
		l.limiters[key] = limiter
	}
	l.mu.Unlock()

	return limiter.Allow(), nil
}

// RateLimit rejects requests with 429 once the limiter refuses the key built
// by keyFn. Requests with an empty key pass through. A limiter error fails open.
func RateLimit(limiter Limiter, prefix string, keyFn func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := keyFn(c)
		if key == "" {
			c.Next()
			return
		}

		allowed, err := limiter.Allow(c.Request.Context(), fmt.Sprintf("rl:%s:%s", prefix, key))
		if err != nil {
			log.WithError(err).WithField("prefix", prefix).Warn("rate limiter unavailable")
		}
		if !allowed {
			HTTPHelper.SendTooManyRequests(c, "Too many requests, try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}

// ClientIP keys a limiter by the caller's address.
func ClientIP(c *gin.Context) string {
	return c.ClientIP()
}
