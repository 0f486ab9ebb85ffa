package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-entity-vc/internal/app"
	"github.com/MKhiriev/go-entity-vc/internal/logger"
	"github.com/MKhiriev/go-entity-vc/internal/utils"
	"github.com/MKhiriev/go-entity-vc/models"
	"github.com/go-chi/chi/v5"
)

// submitLoad accepts a version load request, validates it synchronously and
// starts the import job. Progress and per-type results are observed through
// loadStatus.
func (h *Handler) submitLoad(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	tenantID, _ := utils.GetTenantIDFromContext(r.Context())

	var request models.VersionLoadRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Warn().Str("func", "*Handler.submitLoad").Err(err).Msg("cannot decode request body")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	requestID, err := h.services.VersionService.SubmitLoad(r.Context(), tenantID, request)
	if err != nil {
		h.writeError(w, r, "*Handler.submitLoad", err)
		return
	}

	log.Info().
		Str("func", "*Handler.submitLoad").
		Str("request_id", requestID).
		Str("version_id", request.VersionID).
		Msg("version load job accepted")

	utils.WriteJSON(w, models.SubmitResponse{RequestID: requestID}, http.StatusAccepted)
}

// loadStatus returns the current status of an import job, including per-type
// counters and the structured load error when the job failed.
func (h *Handler) loadStatus(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "requestID")

	status, err := h.services.VersionService.GetLoadStatus(r.Context(), requestID)
	if err != nil {
		h.writeError(w, r, "*Handler.loadStatus", err)
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}
