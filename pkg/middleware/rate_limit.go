package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"creatorverse/pkg/logger"
)

// KeyExtractor picks the identity a request is rate limited under.
// An empty key skips limiting.
type KeyExtractor func(r *http.Request) string

type RateLimiter struct {
	mu       sync.Mutex
	requests map[string][]time.Time
	limit    int
	window   time.Duration
	keyOf    KeyExtractor
	log      *logger.Logger
	now      func() time.Time
	stopCh   chan struct{}
	once     sync.Once
}

func NewRateLimiter(limit int, window time.Duration, extractor KeyExtractor, log *logger.Logger) *RateLimiter {
	if extractor == nil {
		extractor = MutatingClientIP
	}
	limiter := &RateLimiter{
		requests: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
		keyOf:    extractor,
		log:      log,
		now:      time.Now,
		stopCh:   make(chan struct{}),
	}
	go limiter.sweep()
	return limiter
}

func (rl *RateLimiter) sweep() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.mu.Lock()
			now := rl.now()
			for key, stamps := range rl.requests {
				if len(stamps) == 0 || now.Sub(stamps[len(stamps)-1]) >= rl.window {
					delete(rl.requests, key)
				}
			}
			rl.mu.Unlock()
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stopCh) })
}

// Allow records a hit for key inside a sliding window.
func (rl *RateLimiter) Allow(key string) bool {
	if key == "" {
		return true
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	stamps := rl.requests[key]
	kept := stamps[:0]
	for _, ts := range stamps {
		if now.Sub(ts) < rl.window {
			kept = append(kept, ts)
		}
	}

	if len(kept) >= rl.limit {
		rl.requests[key] = kept
		return false
	}
	rl.requests[key] = append(kept, now)
	return true
}

func RateLimit(limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := limiter.keyOf(r)
			if !limiter.Allow(key) {
				limiter.log.Warn("Rate limit exceeded",
					"request_id", requestIDFrom(r),
					"client", key,
					"path", r.URL.Path,
				)
				w.Header().Set("Retry-After", strconv.Itoa(int(limiter.window.Seconds())))
				rejectJSON(w, http.StatusTooManyRequests, "RATE_LIMITED", "Rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// MutatingClientIP limits writes per remote address and leaves reads alone.
func MutatingClientIP(r *http.Request) string {
	if !carriesBody(r) && r.Method != http.MethodDelete {
		return ""
	}
	return ClientIP(r)
}

func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
