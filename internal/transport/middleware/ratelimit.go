package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter decides whether the caller identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) bool
}

// RateLimitedMessage is the body text of a 429 response.
const RateLimitedMessage = "Too many applications submitted. Please try again later."

// RateLimit returns middleware that rejects callers the limiter refuses with
// 429 and a Retry-After hint. onLimited, if set, observes each rejection.
func RateLimit(l Limiter, retryAfter time.Duration, onLimited func(*http.Request)) Middleware {
	seconds := strconv.Itoa(max(1, int((retryAfter+time.Second-1)/time.Second)))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if l.Allow(r.Context(), clientKey(r)) {
				next.ServeHTTP(w, r)
				return
			}

			if onLimited != nil {
				onLimited(r)
			}
			w.Header().Set("Retry-After", seconds)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": false,
				"message": RateLimitedMessage,
			})
		})
	}
}

// RateLimiter is an in-process token bucket per client key. Idle buckets are
// dropped by a background sweep; call Stop on shutdown.
type RateLimiter struct {
	limit rate.Limit
	burst int
	now   func() time.Time

	mu      sync.Mutex
	buckets map[string]*bucket
	stop    chan struct{}
	once    sync.Once
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// idleTTL is how long a bucket may go unused before the sweep drops it.
const idleTTL = 10 * time.Minute

// NewRateLimiter allows perMinute requests per key on average with bursts
// of up to burst.
func NewRateLimiter(perMinute, burst int, cleanupInterval time.Duration) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	rl := &RateLimiter{
		limit:   rate.Limit(float64(perMinute) / 60.0),
		burst:   burst,
		now:     time.Now,
		buckets: make(map[string]*bucket),
		stop:    make(chan struct{}),
	}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Allow consumes one token from key's bucket.
func (rl *RateLimiter) Allow(_ context.Context, key string) bool {
	now := rl.now()

	rl.mu.Lock()
	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.buckets[key] = b
	}
	b.lastSeen = now
	rl.mu.Unlock()

	return b.limiter.AllowN(now, 1)
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.sweep(rl.now())
		}
	}
}

func (rl *RateLimiter) sweep(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, b := range rl.buckets {
		if now.Sub(b.lastSeen) > idleTTL {
			delete(rl.buckets, key)
		}
	}
}
