package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/timekeeper/internal/api/shared"
)

// NewTraceMiddleware returns middleware that adds a trace ID to the request
// context and echoes it in the X-Trace-ID response header. It should be
// applied early in the middleware chain so every handler and error response
// can see the ID. A nil logger falls back to slog.Default().
func NewTraceMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			w.Header().Set(shared.TraceIDHeader, traceID)

			logger.DebugContext(ctx, "request started",
				slog.String("trace_id", traceID),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
