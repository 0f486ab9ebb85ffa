// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-entity-vc/internal/app"
	"github.com/MKhiriev/go-entity-vc/internal/logger"
	"github.com/MKhiriev/go-entity-vc/internal/utils"
	"github.com/MKhiriev/go-entity-vc/models"
	"github.com/go-chi/chi/v5"
)

// submitCreate accepts a version create request, validates it synchronously
// and starts the export job. The response carries only the request id; the
// caller polls createStatus for progress and the commit result.
func (h *Handler) submitCreate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	tenantID, _ := utils.GetTenantIDFromContext(r.Context())

	var request models.VersionCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Warn().Str("func", "*Handler.submitCreate").Err(err).Msg("cannot decode request body")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	requestID, err := h.services.VersionService.SubmitCreate(r.Context(), tenantID, request)
	if err != nil {
		h.writeError(w, r, "*Handler.submitCreate", err)
		return
	}

	log.Info().
		Str("func", "*Handler.submitCreate").
		Str("request_id", requestID).
		Str("branch", request.Branch).
		Msg("version create job accepted")

	utils.WriteJSON(w, models.SubmitResponse{RequestID: requestID}, http.StatusAccepted)
}

// createStatus returns the current status of an export job. Done=false means
// the job is still running; a finished status never changes again.
func (h *Handler) createStatus(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "requestID")

	status, err := h.services.VersionService.GetCreateStatus(r.Context(), requestID)
	if err != nil {
		h.writeError(w, r, "*Handler.createStatus", err)
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}

// listVersions returns one page of a branch's version history, newest first.
// Query parameters: branch (required), page and page_size (optional).
func (h *Handler) listVersions(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := utils.GetTenantIDFromContext(r.Context())

	branch := r.URL.Query().Get("branch")
	if branch == "" {
		http.Error(w, "branch query parameter is required", http.StatusBadRequest)
		return
	}

	pageLink := models.PageLink{
		Page:     queryInt(r, "page", 0),
		PageSize: queryInt(r, "page_size", 0),
	}

	page, err := h.services.VersionService.ListVersions(r.Context(), tenantID, branch, pageLink)
	if err != nil {
		h.writeError(w, r, "*Handler.listVersions", err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

// listBranches returns every branch of the tenant's repository.
func (h *Handler) listBranches(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := utils.GetTenantIDFromContext(r.Context())

	branches, err := h.services.VersionService.ListBranches(r.Context(), tenantID)
	if err != nil {
		h.writeError(w, r, "*Handler.listBranches", err)
		return
	}

	utils.WriteJSON(w, models.BranchesResponse{Branches: branches, Length: len(branches)}, http.StatusOK)
}

// listEntities returns the refs of entities stored at a version. Query
// parameters: version_id (required) and entity_type (optional; an empty
// filter lists every type).
func (h *Handler) listEntities(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := utils.GetTenantIDFromContext(r.Context())

	versionID := r.URL.Query().Get("version_id")
	entityType := models.EntityType(r.URL.Query().Get("entity_type"))
	if versionID == "" {
		http.Error(w, "version_id query parameter is required", http.StatusBadRequest)
		return
	}

	entities, err := h.services.VersionService.ListEntitiesAtVersion(r.Context(), tenantID, versionID, entityType)
	if err != nil {
		h.writeError(w, r, "*Handler.listEntities", err)
		return
	}

	utils.WriteJSON(w, models.EntitiesAtVersionResponse{Entities: entities, Length: len(entities)}, http.StatusOK)
}

// diff compares a live entity against the document stored for it at a
// version and returns the field-level difference.
func (h *Handler) diff(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	tenantID, _ := utils.GetTenantIDFromContext(r.Context())

	var request models.DiffRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Warn().Str("func", "*Handler.diff").Err(err).Msg("cannot decode request body")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	diff, err := h.services.VersionService.Diff(r.Context(), tenantID, request)
	if err != nil {
		h.writeError(w, r, "*Handler.diff", err)
		return
	}

	utils.WriteJSON(w, diff, http.StatusOK)
}

// queryInt parses an integer query parameter, falling back to def when the
// parameter is absent or malformed.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return def
	}
	return value
}
