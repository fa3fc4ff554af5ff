package middleware

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/platform/logger"
)

// TraceHeader carries the trace ID on requests and responses.
const TraceHeader = "X-Trace-ID"

// maxTraceIDLength bounds client-supplied trace IDs.
const maxTraceIDLength = 64

// NewTraceMiddleware returns middleware that assigns each request a trace ID.
// A well-formed client-supplied X-Trace-ID is reused; otherwise a UUID is
// generated. The ID is echoed in the response header, stored in the request
// context and attached to the request-scoped logger.
//
// This middleware should be applied early in the chain so that every later
// handler logs with the trace ID.
func NewTraceMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := r.Header.Get(TraceHeader)
			if traceID == "" || len(traceID) > maxTraceIDLength {
				traceID = uuid.NewString()
			}

			ctx := shared.WithTraceID(r.Context(), traceID)
			ctx = logger.WithLogger(ctx, log.With(slog.String(logger.TraceIDKey, traceID)))

			w.Header().Set(TraceHeader, traceID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
