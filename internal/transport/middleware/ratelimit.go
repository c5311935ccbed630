package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// idleBucketTTL is how long a client's bucket survives without requests.
const idleBucketTTL = 10 * time.Minute

// RateLimiter is a per-client-IP token bucket. It guards endpoints that
// trigger paid LLM calls.
type RateLimiter struct {
	perMinute int
	buckets   sync.Map // map[string]*bucket
	now       func() time.Time
	stop      chan struct{}
	stopOnce  sync.Once
}

type bucket struct {
	mu         sync.Mutex
	tokens     float64
	lastRefill time.Time
}

// NewRateLimiter creates a limiter allowing perMinute requests per client
// IP, with a burst of the same size. Idle buckets are dropped every
// cleanupInterval. Call Stop on shutdown.
func NewRateLimiter(perMinute int, cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		perMinute: perMinute,
		now:       time.Now,
		stop:      make(chan struct{}),
	}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine. It is safe to call
// more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Limit returns middleware that answers 429 with Retry-After once the
// client's bucket is empty.
func (rl *RateLimiter) Limit() Middleware {
	retryAfter := strconv.Itoa(int(60/float64(rl.perMinute)) + 1)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.allow(clientIP(r)) {
				w.Header().Set("Retry-After", retryAfter)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"detail":"rate limit exceeded"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (rl *RateLimiter) allow(key string) bool {
	now := rl.now()
	capacity := float64(rl.perMinute)

	val, _ := rl.buckets.LoadOrStore(key, &bucket{tokens: capacity, lastRefill: now})
	b := val.(*bucket)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.tokens += now.Sub(b.lastRefill).Minutes() * capacity
	if b.tokens > capacity {
		b.tokens = capacity
	}
	b.lastRefill = now

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
		idle := now.Sub(b.lastRefill)
		b.mu.Unlock()
		if idle > idleBucketTTL {
			rl.buckets.Delete(key)
		}
		return true
	})
}
