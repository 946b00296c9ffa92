package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// deadlineWriter gives the handler a private header map and drops writes once
// the deadline response has been sent. The real writer is only touched under mu.
type deadlineWriter struct {
	w        http.ResponseWriter
	header   http.Header
	mu       sync.Mutex
	expired  bool
	answered bool
}

func newDeadlineWriter(w http.ResponseWriter) *deadlineWriter {
	return &deadlineWriter{w: w, header: make(http.Header)}
}

func (dw *deadlineWriter) Header() http.Header {
	return dw.header
}

// commit copies the handler's headers and sends the status. Callers hold mu.
func (dw *deadlineWriter) commit(code int) {
	dst := dw.w.Header()
	for k, v := range dw.header {
		dst[k] = append([]string(nil), v...)
	}
	dw.answered = true
	dw.w.WriteHeader(code)
}

func (dw *deadlineWriter) WriteHeader(code int) {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	if dw.expired || dw.answered {
		return
	}
	dw.commit(code)
}

func (dw *deadlineWriter) Write(b []byte) (int, error) {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	if dw.expired {
		return 0, http.ErrHandlerTimeout
	}
	if !dw.answered {
		dw.commit(http.StatusOK)
	}
	return dw.w.Write(b)
}

// expire marks the writer dead and sends the timeout response if nothing was sent yet.
func (dw *deadlineWriter) expire() {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	dw.expired = true
	if !dw.answered {
		rejectJSON(dw.w, http.StatusServiceUnavailable, "TIMEOUT", "Request timeout")
	}
}

func RequestTimeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			dw := newDeadlineWriter(w)
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if p := recover(); p != nil {
						panicked <- p
					}
				}()
				next.ServeHTTP(dw, r.WithContext(ctx))
				close(done)
			}()

			select {
			case <-done:
			case p := <-panicked:
				panic(p)
			case <-ctx.Done():
				dw.expire()
			}
		})
	}
}
