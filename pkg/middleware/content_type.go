package middleware

import (
	"mime"
	"net/http"

	"creatorverse/pkg/logger"
)

const jsonContentType = "application/json"

// ContentTypeValidation rejects bodies on mutating requests that are not JSON.
// Bodiless requests (e.g. DELETE) pass through.
func ContentTypeValidation(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !carriesBody(r) {
				next.ServeHTTP(w, r)
				return
			}

			mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
			if err != nil || mediaType != jsonContentType {
				log.Warn("Invalid Content-Type header",
					"request_id", requestIDFrom(r),
					"content_type", r.Header.Get("Content-Type"),
					"path", r.URL.Path,
					"method", r.Method,
				)
				rejectJSON(w, http.StatusUnsupportedMediaType, "INVALID_INPUT", "Content-Type must be application/json")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func carriesBody(r *http.Request) bool {
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	default:
		return false
	}
}

// MaxBodySize caps the request body; handlers see a decode error past the limit.
func MaxBodySize(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
