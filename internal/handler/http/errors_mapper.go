package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-entity-vc/internal/adapter"
	"github.com/MKhiriev/go-entity-vc/internal/app"
	"github.com/MKhiriev/go-entity-vc/internal/logger"
	"github.com/MKhiriev/go-entity-vc/internal/service"
	"github.com/MKhiriev/go-entity-vc/internal/store"
)

// writeError maps a service-layer error to an HTTP status and writes the
// response. Unrecognized errors become 500 with a generic message so that
// internal details never leak to clients.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrUnsupportedEntityType):
		log.Warn().Str("func", funcName).Err(err).Msg("request rejected")
		http.Error(w, err.Error(), http.StatusBadRequest)

	case errors.Is(err, service.ErrRequestNotFound):
		log.Warn().Str("func", funcName).Err(err).Msg("unknown request id")
		http.Error(w, app.MsgRequestNotFound, http.StatusNotFound)

	case errors.Is(err, adapter.ErrVersionNotFound),
		errors.Is(err, adapter.ErrBranchNotFound),
		errors.Is(err, adapter.ErrDocumentNotFound),
		errors.Is(err, store.ErrEntityNotFound),
		errors.Is(err, store.ErrMappingNotFound):
		log.Warn().Str("func", funcName).Err(err).Msg("requested resource not found")
		http.Error(w, err.Error(), http.StatusNotFound)

	case errors.Is(err, adapter.ErrRemoteStore):
		log.Error().Str("func", funcName).Err(err).Msg("remote store failure")
		http.Error(w, err.Error(), http.StatusBadGateway)

	default:
		log.Error().Str("func", funcName).Err(err).Msg("unexpected error")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
	}
}
