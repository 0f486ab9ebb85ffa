package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-entity-vc/internal/utils"
	"github.com/go-chi/chi/v5/middleware"
)

// requestLogger attaches a request-scoped logger carrying a fresh trace id to
// the context and logs one line per request with method, path, status and
// duration.
func (h *Handler) requestLogger(next http.Handler) http.Handler {
	uuid := utils.NewUUIDGenerator()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		traceID := uuid.Generate()

		log := h.logger.With().
			Str("trace_id", traceID).
			Logger()
		ctx := log.WithContext(r.Context())

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))

		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})
}
