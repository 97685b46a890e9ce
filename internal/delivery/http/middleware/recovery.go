package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	h "eventhub/internal/delivery/http/helpers"
)

// Recoverer recovers from panics in downstream handlers, logs them with the
// request ID and stack, and responds with a 500 JSON error.
func Recoverer(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}
				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("request_id", GetRequestID(r.Context())),
					slog.String("path", r.URL.Path),
					slog.Any("panic", rvr),
					slog.String("stack", string(debug.Stack())),
				)
				h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "Internal server error")
			}()

			next.ServeHTTP(w, r)
		})
	}
}
