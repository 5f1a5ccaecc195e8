package middleware

import (
	"log/slog"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/quill-api/internal/api/shared"
	"github.com/phrazzld/quill-api/internal/platform/logger"
)

// TraceMiddleware adds a trace ID to the request context and attaches a
// logger carrying it, so everything below can log with
// logger.FromContext(ctx).
// It should run early in the chain, after chi's RequestID.
func TraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			w.Header().Set(shared.TraceIDHeader, traceID)

			log := base.With(slog.String("trace_id", traceID))
			if reqID := chimiddleware.GetReqID(ctx); reqID != "" {
				log = log.With(slog.String("request_id", reqID))
			}
			ctx = logger.WithLogger(ctx, log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
