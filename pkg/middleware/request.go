package middleware

import (
	"context"
	"net/http"

	"creatorverse/pkg/contracts"
)

type contextKey string

const RequestIDKey contextKey = "request_id"

// RequestIDHeader is echoed back on every response so clients can correlate logs.
const RequestIDHeader = "X-Request-ID"

// RequestID returns the id RequestLogging attached to ctx, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

func requestIDFrom(r *http.Request) string {
	return RequestID(r.Context())
}

func rejectJSON(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + message + `","code":"` + code + `"}`))
}

// Chain applies middlewares so that the first one listed is the outermost.
func Chain(h http.Handler, mws ...contracts.Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
