package rest

import (
	"net/http"
	"time"

	"github.com/IMRSIV/bank-albilad-demo/internal/contextkeys"
	"github.com/IMRSIV/bank-albilad-demo/internal/core/port"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const traceIDHeader = "X-Trace-ID"

// LoggerMiddleware puts a trace-scoped logger into the request context and
// logs the start and end of every request.
func LoggerMiddleware(logger port.LoggerPort) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := r.Header.Get(traceIDHeader)
			if _, err := uuid.Parse(traceID); err != nil {
				traceID = uuid.New().String()
			}

			// use cases and adapters only see the trace id
			coreLogger := logger.WithFields(port.Fields{
				"trace_id": traceID,
			})

			httpLogger := coreLogger.WithFields(port.Fields{
				"http_method": r.Method,
				"http_path":   r.URL.Path,
				"remote_addr": r.RemoteAddr,
			})

			ctx := r.Context()
			ctx = contextkeys.ContextWithLogger(ctx, coreLogger)
			ctx = contextkeys.ContextWithTraceID(ctx, traceID)

			w.Header().Set(traceIDHeader, traceID)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			startTime := time.Now()

			httpLogger.Info("Request started", nil)

			next.ServeHTTP(ww, r.WithContext(ctx))

			httpLogger.Info("Request finished", port.Fields{
				"status_code":   ww.Status(),
				"bytes_written": ww.BytesWritten(),
				"duration_ms":   time.Since(startTime).Milliseconds(),
			})
		})
	}
}
