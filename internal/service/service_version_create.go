// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-entity-vc/internal/adapter"
	"github.com/MKhiriev/go-entity-vc/internal/logger"
	"github.com/MKhiriev/go-entity-vc/internal/workers"
	"github.com/MKhiriev/go-entity-vc/models"
)

// typeExportPlan is one entity type's slice of a normalized create request.
type typeExportPlan struct {
	entityType models.EntityType
	cfg        models.TypeExportConfig
	strategy   models.SyncStrategy
}

// runCreate executes one create job: select entities, serialize them into
// documents, compute the added/modified/removed counts against the branch
// head, and write everything as a single atomic commit. Any failure before
// the commit leaves the branch untouched and is reported through the status.
func (s *versionService) runCreate(ctx context.Context, tenantID string, request models.VersionCreateRequest) models.VersionCreateStatus {
	log := logger.FromContext(ctx)

	plans := normalizeCreateRequest(request)

	head, headVersionID, err := s.branchHead(ctx, tenantID, request.Branch)
	if err != nil {
		return models.VersionCreateStatus{Error: err.Error()}
	}

	var (
		documents []models.EntityDocument
		status    models.VersionCreateStatus
	)
	for _, plan := range plans {
		typeDocuments, err := s.exportType(ctx, tenantID, request, plan)
		if err != nil {
			log.Err(err).
				Str("func", "versionService.runCreate").
				Str("entity_type", string(plan.entityType)).
				Msg("export failed, nothing committed")
			return models.VersionCreateStatus{Error: err.Error()}
		}

		added, modified, removed, err := s.countChanges(ctx, tenantID, head[plan.entityType], headVersionID, plan, typeDocuments)
		if err != nil {
			return models.VersionCreateStatus{Error: err.Error()}
		}
		status.Added += added
		status.Modified += modified
		status.Removed += removed

		documents = append(documents, typeDocuments...)
	}

	version, err := s.remote.Commit(ctx, tenantID, request.Branch, request.VersionName, documents)
	if err != nil {
		return models.VersionCreateStatus{Error: err.Error()}
	}

	s.recordLatestVersion(ctx, tenantID, version)

	log.Info().
		Str("func", "versionService.runCreate").
		Str("version_id", version.ID).
		Int("documents", len(documents)).
		Msg("version created")

	status.Version = &version
	return status
}

// normalizeCreateRequest flattens both request shapes into per-type plans
// ordered by the fixed entity type dependency order.
func normalizeCreateRequest(request models.VersionCreateRequest) []typeExportPlan {
	configs := request.EntityTypes
	if request.Type == models.CreateRequestSingleEntity {
		cfg := models.TypeExportConfig{EntityIDs: []string{request.EntityID}}
		if request.Config != nil {
			cfg = *request.Config
			cfg.AllEntities = false
			cfg.EntityIDs = []string{request.EntityID}
		}
		configs = map[models.EntityType]models.TypeExportConfig{request.EntityType: cfg}
	}

	plans := make([]typeExportPlan, 0, len(configs))
	for _, entityType := range models.SupportedEntityTypes {
		cfg, ok := configs[entityType]
		if !ok {
			continue
		}
		plans = append(plans, typeExportPlan{
			entityType: entityType,
			cfg:        cfg,
			strategy:   resolveSyncStrategy(request.DefaultSyncStrategy, cfg.SyncStrategy),
		})
	}

	return plans
}

// exportType serializes every selected entity of one type, fanning the work
// out over the bounded pool.
func (s *versionService) exportType(ctx context.Context, tenantID string, request models.VersionCreateRequest, plan typeExportPlan) ([]models.EntityDocument, error) {
	entities, err := s.selectEntities(ctx, tenantID, plan)
	if err != nil {
		return nil, err
	}

	handler, err := s.handlers.forType(plan.entityType)
	if err != nil {
		return nil, err
	}

	var (
		mu        sync.Mutex
		documents = make([]models.EntityDocument, 0, len(entities))
	)

	pool := workers.NewPool(s.workerCount)
	for _, entity := range entities {
		pool.Go(func() error {
			document, exportErr := handler.Export(ctx, tenantID, entity, plan.cfg)
			if exportErr != nil {
				return exportErr
			}

			mu.Lock()
			documents = append(documents, document)
			mu.Unlock()
			return nil
		})
	}
	if errs := pool.Wait(); len(errs) > 0 {
		return nil, errs[0]
	}

	return documents, nil
}

// selectEntities resolves the id set of one type plan: everything the tenant
// owns, or the explicitly requested ids. A requested id that does not exist
// (or belongs to another type) fails the job.
func (s *versionService) selectEntities(ctx context.Context, tenantID string, plan typeExportPlan) ([]models.Entity, error) {
	if plan.cfg.AllEntities {
		return s.repos.Entities.ListAll(ctx, tenantID, plan.entityType)
	}

	entities, err := s.repos.Entities.ListByIDs(ctx, tenantID, plan.entityType, plan.cfg.EntityIDs)
	if err != nil {
		return nil, err
	}
	if len(entities) != len(plan.cfg.EntityIDs) {
		return nil, fmt.Errorf("%d of %d requested %s entities were not found",
			len(plan.cfg.EntityIDs)-len(entities), len(plan.cfg.EntityIDs), plan.entityType)
	}

	return entities, nil
}

// branchHead returns the refs stored at the newest version of the branch,
// indexed by type and external id, plus that version's id. A branch that
// does not exist yet has an empty head: the first commit will create it.
func (s *versionService) branchHead(ctx context.Context, tenantID, branch string) (map[models.EntityType]map[string]models.EntityRef, string, error) {
	page, err := s.remote.ListVersions(ctx, tenantID, branch, models.PageLink{Page: 0, PageSize: 1})
	if errors.Is(err, adapter.ErrBranchNotFound) {
		return map[models.EntityType]map[string]models.EntityRef{}, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("read branch head: %w", err)
	}
	if len(page.Versions) == 0 {
		return map[models.EntityType]map[string]models.EntityRef{}, "", nil
	}

	headVersionID := page.Versions[0].ID
	refs, err := s.remote.ListEntities(ctx, tenantID, headVersionID, "")
	if err != nil {
		return nil, "", fmt.Errorf("list branch head entities: %w", err)
	}

	head := make(map[models.EntityType]map[string]models.EntityRef)
	for _, ref := range refs {
		byExternal, ok := head[ref.EntityType]
		if !ok {
			byExternal = make(map[string]models.EntityRef)
			head[ref.EntityType] = byExternal
		}
		byExternal[ref.ExternalID] = ref
	}

	return head, headVersionID, nil
}

// countChanges classifies the exported documents of one type against the
// branch head: a new external id counts as added, a drifted document as
// modified, and with the OVERWRITE strategy a head entity absent from the
// export counts as removed.
func (s *versionService) countChanges(ctx context.Context, tenantID string, headRefs map[string]models.EntityRef, headVersionID string, plan typeExportPlan, documents []models.EntityDocument) (added, modified, removed int, err error) {
	exported := make(map[string]struct{}, len(documents))
	for _, document := range documents {
		exported[document.Ref.ExternalID] = struct{}{}

		ref, existed := headRefs[document.Ref.ExternalID]
		if !existed {
			added++
			continue
		}

		stored, readErr := s.remote.ReadDocument(ctx, tenantID, headVersionID, ref)
		if readErr != nil {
			return 0, 0, 0, fmt.Errorf("read head document %s: %w", ref.ExternalID, readErr)
		}
		if diffDocuments(document, stored).HasChanges() {
			modified++
		}
	}

	if plan.strategy == models.SyncStrategyOverwrite {
		for externalID := range headRefs {
			if _, ok := exported[externalID]; !ok {
				removed++
			}
		}
	}

	return added, modified, removed, nil
}

// recordLatestVersion saves the freshly created version onto the tenant's
// server-scope attributes. Failure here does not fail the job: the commit
// already happened.
func (s *versionService) recordLatestVersion(ctx context.Context, tenantID string, version models.Version) {
	err := s.repos.Attributes.SaveScope(ctx, tenantID, tenantID, "SERVER_SCOPE", map[string]any{
		"latestVersionId":   version.ID,
		"latestVersionName": version.Name,
	})
	if err != nil {
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("func", "versionService.recordLatestVersion").
			Str("version_id", version.ID).
			Msg("failed to record latest version attribute")
	}
}
