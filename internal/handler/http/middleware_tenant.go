// Package http implements the HTTP transport layer of the version control
// engine. It provides middleware, route handlers, and request/response
// utilities for the REST API. Tenant scoping, logging and tracing concerns
// are all handled at this layer before requests are forwarded to the service
// layer.
package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-entity-vc/internal/app"
	"github.com/MKhiriev/go-entity-vc/internal/logger"
	"github.com/MKhiriev/go-entity-vc/internal/utils"
)

// tenantHeader scopes every API operation. Authentication is out of scope of
// this service; the header is trusted as-is and expected to be set by the
// gateway in front.
const tenantHeader = "X-Tenant-ID"

// tenant is an HTTP middleware that extracts the tenant id from the
// X-Tenant-ID header and stores it in the request context under
// [utils.TenantIDCtxKey]. Requests without the header are rejected with
// HTTP 400 Bad Request.
func (h *Handler) tenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenantID := r.Header.Get(tenantHeader)
		if tenantID == "" {
			logger.FromRequest(r).Warn().
				Str("func", "*Handler.tenant").
				Str("path", r.URL.Path).
				Msg("request without tenant header")
			http.Error(w, app.MsgMissingTenantHeader, http.StatusBadRequest)
			return
		}

		ctx := context.WithValue(r.Context(), utils.TenantIDCtxKey, tenantID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
