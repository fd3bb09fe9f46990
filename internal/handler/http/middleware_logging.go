package http

import (
	"net/http"
	"time"

	"github.com/parkchat/parkchat-api/internal/logger"
)

// withLogging emits one structured access-log entry per request: method,
// uri, response status, bytes written, and wall-clock duration. It runs
// after withTraceID, so the request-scoped logger it pulls from the
// context already carries the trace id. The uri is captured before the
// handler runs; booking endpoints never mutate it, but the entry should
// describe what the client sent either way.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		log.Info().
			Str("method", method).
			Str("uri", uri).
			Int("status", lw.status).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}
