package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/heartmarshall/pantry-backend/internal/config"
)

const bucketIdleTTL = 10 * time.Minute

// RateLimiter is a per-client token bucket limiter.
type RateLimiter struct {
	perMinute int
	buckets   sync.Map // client ip -> *bucket
	now       func() time.Time
	stop      chan struct{}
	stopOnce  sync.Once
}

type bucket struct {
	mu       sync.Mutex
	tokens   float64
	lastSeen time.Time
}

// NewRateLimiter starts a limiter whose idle buckets are dropped every
// cfg.CleanupInterval. Call Stop on shutdown.
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	rl := &RateLimiter{
		perMinute: cfg.RequestsPerMinute,
		now:       time.Now,
		stop:      make(chan struct{}),
	}
	go rl.cleanup(cfg.CleanupInterval)
	return rl
}

// Stop terminates the cleanup goroutine. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Middleware rejects requests beyond the per-minute budget with 429.
func (rl *RateLimiter) Middleware() Middleware {
	retryAfter := strconv.Itoa(int(math.Ceil(60 / float64(rl.perMinute))))
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.allow(clientIPOf(r)) {
				w.Header().Set("Retry-After", retryAfter)
				writeError(w, r, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) allow(key string) bool {
	now := rl.now()
	capacity := float64(rl.perMinute)

	v, _ := rl.buckets.LoadOrStore(key, &bucket{tokens: capacity, lastSeen: now})
	b := v.(*bucket)

	b.mu.Lock()
	defer b.mu.Unlock()

	elapsed := now.Sub(b.lastSeen).Seconds()
	b.tokens = math.Min(capacity, b.tokens+elapsed*capacity/60)
	b.lastSeen = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.evictIdle()
		}
	}
}

func (rl *RateLimiter) evictIdle() {
	now := rl.now()
	rl.buckets.Range(func(key, value any) bool {
		b := value.(*bucket)
		b.mu.Lock()
		idle := now.Sub(b.lastSeen)
		b.mu.Unlock()
		if idle > bucketIdleTTL {
			rl.buckets.Delete(key)
		}
		return true
	})
}
