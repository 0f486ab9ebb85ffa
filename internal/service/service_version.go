// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-entity-vc/internal/adapter"
	"github.com/MKhiriev/go-entity-vc/internal/config"
	"github.com/MKhiriev/go-entity-vc/internal/logger"
	"github.com/MKhiriev/go-entity-vc/internal/store"
	"github.com/MKhiriev/go-entity-vc/internal/utils"
	"github.com/MKhiriev/go-entity-vc/models"
)

const defaultWorkerCount = 4

// versionService is the concrete [VersionService]: it validates requests
// synchronously, runs the export/import pipelines as tracked jobs, and
// proxies the browsing operations to the remote store.
type versionService struct {
	repos    *store.Repositories
	remote   adapter.RemoteStore
	resolver ExternalIDResolver
	handlers handlerRegistry
	jobs     *JobTracker

	// entityLocks serializes work per (tenant, type, external id);
	// importLocks serializes destructive imports per (tenant, type).
	entityLocks *utils.KeyedMutex
	importLocks *utils.KeyedMutex

	workerCount int
	logger      *logger.Logger
}

// NewVersionService wires the engine: the external-id resolver and the
// per-type handler registry are built on top of the provided repositories.
func NewVersionService(repositories *store.Repositories, remote adapter.RemoteStore, jobs *JobTracker, cfg config.Engine, log *logger.Logger) VersionService {
	resolver := NewExternalIDResolver(repositories.ExternalIDs, log)

	workerCount := cfg.WorkerCount
	if workerCount <= 0 {
		workerCount = defaultWorkerCount
	}

	return &versionService{
		repos:       repositories,
		remote:      remote,
		resolver:    resolver,
		handlers:    newHandlerRegistry(repositories, resolver, log),
		jobs:        jobs,
		entityLocks: utils.NewKeyedMutex(),
		importLocks: utils.NewKeyedMutex(),
		workerCount: workerCount,
		logger:      log,
	}
}

// SubmitCreate implements [VersionService]. Only validation happens on the
// caller's goroutine; the export itself runs detached and is observed via
// [VersionService.GetCreateStatus].
func (s *versionService) SubmitCreate(ctx context.Context, tenantID string, request models.VersionCreateRequest) (string, error) {
	if err := validateCreateRequest(request); err != nil {
		return "", err
	}

	requestID := s.jobs.StartCreate(tenantID, func(jobCtx context.Context) models.VersionCreateStatus {
		return s.runCreate(jobCtx, tenantID, request)
	})

	logger.FromContext(ctx).Info().
		Str("func", "versionService.SubmitCreate").
		Str("tenant_id", tenantID).
		Str("request_id", requestID).
		Str("branch", request.Branch).
		Msg("version create job submitted")

	return requestID, nil
}

// SubmitLoad implements [VersionService].
func (s *versionService) SubmitLoad(ctx context.Context, tenantID string, request models.VersionLoadRequest) (string, error) {
	if err := validateLoadRequest(request); err != nil {
		return "", err
	}

	requestID := s.jobs.StartLoad(tenantID, func(jobCtx context.Context) models.VersionLoadStatus {
		return s.runLoad(jobCtx, tenantID, request)
	})

	logger.FromContext(ctx).Info().
		Str("func", "versionService.SubmitLoad").
		Str("tenant_id", tenantID).
		Str("request_id", requestID).
		Str("version_id", request.VersionID).
		Msg("version load job submitted")

	return requestID, nil
}

// GetCreateStatus implements [VersionService].
func (s *versionService) GetCreateStatus(_ context.Context, requestID string) (models.VersionCreateStatus, error) {
	return s.jobs.GetCreateStatus(requestID)
}

// GetLoadStatus implements [VersionService].
func (s *versionService) GetLoadStatus(_ context.Context, requestID string) (models.VersionLoadStatus, error) {
	return s.jobs.GetLoadStatus(requestID)
}

// ListBranches implements [VersionService].
func (s *versionService) ListBranches(ctx context.Context, tenantID string) ([]models.Branch, error) {
	return s.remote.ListBranches(ctx, tenantID)
}

// ListVersions implements [VersionService].
func (s *versionService) ListVersions(ctx context.Context, tenantID, branch string, pageLink models.PageLink) (models.VersionPage, error) {
	if pageLink.PageSize <= 0 {
		pageLink.PageSize = 20
	}
	return s.remote.ListVersions(ctx, tenantID, branch, pageLink)
}

// ListEntitiesAtVersion implements [VersionService].
func (s *versionService) ListEntitiesAtVersion(ctx context.Context, tenantID, versionID string, entityType models.EntityType) ([]models.EntityRef, error) {
	if entityType != "" && !models.IsSupportedEntityType(entityType) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEntityType, entityType)
	}
	return s.remote.ListEntities(ctx, tenantID, versionID, entityType)
}

// Diff implements [VersionService]: it exports the live entity into its
// document form (all optional sections included) and compares it against the
// document stored at the requested version.
func (s *versionService) Diff(ctx context.Context, tenantID string, request models.DiffRequest) (models.EntityDataDiff, error) {
	if !models.IsSupportedEntityType(request.EntityType) {
		return models.EntityDataDiff{}, fmt.Errorf("%w: %s", ErrUnsupportedEntityType, request.EntityType)
	}
	if request.EntityID == "" || request.VersionID == "" {
		return models.EntityDataDiff{}, fmt.Errorf("%w: entity id and version id are required", ErrValidation)
	}

	entity, err := s.repos.Entities.Find(ctx, tenantID, request.EntityID)
	if err != nil {
		return models.EntityDataDiff{}, err
	}
	if entity.Type != request.EntityType {
		return models.EntityDataDiff{}, fmt.Errorf("%w: entity %s is a %s", ErrValidation, request.EntityID, entity.Type)
	}

	handler, err := s.handlers.forType(request.EntityType)
	if err != nil {
		return models.EntityDataDiff{}, err
	}

	live, err := handler.Export(ctx, tenantID, entity, models.TypeExportConfig{
		SaveRelations:   true,
		SaveAttributes:  true,
		SaveCredentials: true,
	})
	if err != nil {
		return models.EntityDataDiff{}, fmt.Errorf("export live entity: %w", err)
	}

	stored, err := s.remote.ReadDocument(ctx, tenantID, request.VersionID, live.Ref)
	if err != nil {
		return models.EntityDataDiff{}, err
	}

	return diffDocuments(live, stored), nil
}
