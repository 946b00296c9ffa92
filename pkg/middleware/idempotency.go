package middleware

import (
	"bytes"
	"net/http"
	"sync"
	"time"

	"creatorverse/pkg/logger"
)

const DefaultIdempotencyHeader = "Idempotency-Key"

// ReservationState is the outcome of claiming an idempotency key.
type ReservationState int

const (
	// Reserved means the caller owns the key and must Complete or Release it.
	Reserved ReservationState = iota
	// InFlight means another request holding the same key has not finished.
	InFlight
	// Replay means a finished response is stored for the key.
	Replay
)

type IdempotencyStore interface {
	Reserve(key string) (ReservationState, *CachedResponse)
	Complete(key string, response *CachedResponse)
	Release(key string)
	Stop()
}

type CachedResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	CreatedAt  time.Time
}

type idempotencyEntry struct {
	response *CachedResponse
	claimed  time.Time
}

type InMemoryIdempotencyStore struct {
	mu      sync.Mutex
	entries map[string]*idempotencyEntry
	ttl     time.Duration
	now     func() time.Time
	stopCh  chan struct{}
	once    sync.Once
}

func NewInMemoryIdempotencyStore(ttl time.Duration) *InMemoryIdempotencyStore {
	store := &InMemoryIdempotencyStore{
		entries: make(map[string]*idempotencyEntry),
		ttl:     ttl,
		now:     time.Now,
		stopCh:  make(chan struct{}),
	}
	go store.sweep()
	return store
}

func (s *InMemoryIdempotencyStore) Reserve(key string) (ReservationState, *CachedResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.entries[key]; ok && !s.expired(entry) {
		if entry.response == nil {
			return InFlight, nil
		}
		return Replay, entry.response
	}

	s.entries[key] = &idempotencyEntry{claimed: s.now()}
	return Reserved, nil
}

func (s *InMemoryIdempotencyStore) Complete(key string, response *CachedResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	response.CreatedAt = s.now()
	s.entries[key] = &idempotencyEntry{response: response, claimed: response.CreatedAt}
}

func (s *InMemoryIdempotencyStore) Release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.entries[key]; ok && entry.response == nil {
		delete(s.entries, key)
	}
}

func (s *InMemoryIdempotencyStore) expired(entry *idempotencyEntry) bool {
	return s.now().Sub(entry.claimed) > s.ttl
}

func (s *InMemoryIdempotencyStore) sweep() {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.mu.Lock()
			for key, entry := range s.entries {
				if s.expired(entry) {
					delete(s.entries, key)
				}
			}
			s.mu.Unlock()
		case <-s.stopCh:
			return
		}
	}
}

func (s *InMemoryIdempotencyStore) Stop() {
	s.once.Do(func() { close(s.stopCh) })
}

type responseCapture struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (rc *responseCapture) WriteHeader(statusCode int) {
	rc.statusCode = statusCode
	rc.ResponseWriter.WriteHeader(statusCode)
}

func (rc *responseCapture) Write(b []byte) (int, error) {
	rc.body.Write(b)
	return rc.ResponseWriter.Write(b)
}

// Idempotency makes POST requests carrying the header safe to retry. A retry
// while the first attempt is still running gets 409; a retry after a 2xx gets
// the stored response replayed. Non-2xx outcomes free the key.
func Idempotency(store IdempotencyStore, headerName string, log *logger.Logger) func(http.Handler) http.Handler {
	if headerName == "" {
		headerName = DefaultIdempotencyHeader
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(headerName)
			if key == "" || r.Method != http.MethodPost {
				next.ServeHTTP(w, r)
				return
			}
			key = r.Method + " " + r.URL.Path + " " + key

			state, cached := store.Reserve(key)
			switch state {
			case InFlight:
				log.Warn("Duplicate request while original is in flight",
					"request_id", requestIDFrom(r),
					"path", r.URL.Path,
				)
				rejectJSON(w, http.StatusConflict, "CONFLICT", "A request with this idempotency key is already in progress")
				return
			case Replay:
				replay(w, cached)
				return
			}

			capture := &responseCapture{ResponseWriter: w, statusCode: http.StatusOK}
			completed := false
			defer func() {
				if !completed {
					store.Release(key)
				}
			}()

			next.ServeHTTP(capture, r)

			if capture.statusCode >= 200 && capture.statusCode < 300 {
				store.Complete(key, &CachedResponse{
					StatusCode: capture.statusCode,
					Headers:    w.Header().Clone(),
					Body:       bytes.Clone(capture.body.Bytes()),
				})
				completed = true
			}
		})
	}
}

func replay(w http.ResponseWriter, cached *CachedResponse) {
	for key, values := range cached.Headers {
		for _, value := range values {
			w.Header().Add(key, value)
		}
	}
	w.Header().Set("Idempotent-Replayed", "true")
	w.WriteHeader(cached.StatusCode)
	_, _ = w.Write(cached.Body)
}
