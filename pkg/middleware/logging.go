package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"creatorverse/pkg/logger"
)

type statusRecorder struct {
	http.ResponseWriter
	status  int
	bytes   int
	written bool
}

func (rec *statusRecorder) WriteHeader(status int) {
	if rec.written {
		return
	}
	rec.status = status
	rec.written = true
	rec.ResponseWriter.WriteHeader(status)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	if !rec.written {
		rec.WriteHeader(http.StatusOK)
	}
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += n
	return n, err
}

// RequestLogging tags each request with an id (reusing an inbound X-Request-ID)
// and logs its start and completion.
func RequestLogging(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			r = r.WithContext(context.WithValue(r.Context(), RequestIDKey, requestID))
			w.Header().Set(RequestIDHeader, requestID)

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			log.Debug("HTTP request started",
				"request_id", requestID,
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
			)

			next.ServeHTTP(rec, r)

			attrs := []any{
				"request_id", requestID,
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"bytes", rec.bytes,
				"duration_ms", time.Since(start).Milliseconds(),
			}
			if rec.status >= http.StatusInternalServerError {
				log.Error("HTTP request failed", attrs...)
				return
			}
			log.Info("HTTP request completed", attrs...)
		})
	}
}
