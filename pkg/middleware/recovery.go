package middleware

import (
	"net/http"
	"runtime/debug"

	"creatorverse/pkg/logger"
)

func Recovery(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.Error("Panic recovered",
					"request_id", requestIDFrom(r),
					"error", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)
				rejectJSON(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
			}()

			next.ServeHTTP(w, r)
		})
	}
}
