// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-entity-vc/internal/logger"
	"github.com/MKhiriev/go-entity-vc/internal/store"
	"github.com/MKhiriev/go-entity-vc/internal/workers"
	"github.com/MKhiriev/go-entity-vc/models"
)

// Load error type labels surfaced in [models.LoadError].
const (
	loadErrorRuntime           = "RUNTIME"
	loadErrorConcurrentImport  = "CONCURRENT_IMPORT"
	loadErrorUnresolvedRef     = "UNRESOLVED_REFERENCE"
	loadErrorDocumentNotFound  = "DOCUMENT_NOT_FOUND"
	loadErrorExternalIDBinding = "EXTERNAL_ID_CONFLICT"
)

// typeImportPlan is one entity type's slice of a normalized load request.
type typeImportPlan struct {
	entityType models.EntityType
	cfg        models.TypeImportConfig

	// onlyExternalID narrows the import to one document (single-entity
	// requests). Empty means every document of the type at the version.
	onlyExternalID string
}

// importedType carries one type's documents from the entity phase to the
// relation replay phase of a load job.
type importedType struct {
	plan      typeImportPlan
	handler   EntityHandler
	documents []models.EntityDocument
}

// runLoad executes one load job in two phases: per entity type in dependency
// order, read the documents stored at the version and restore them onto the
// live graph; then, once every external id of the version is mapped, replay
// the relations of each type that asked for them. Relations wait for the
// second phase so a reference into a later-ordered type of the same version
// always resolves.
//
// A terminal failure stops processing: nothing already imported is rolled
// back. The import is deliberately not transactional across types; the
// status error tells the operator where it stopped.
func (s *versionService) runLoad(ctx context.Context, tenantID string, request models.VersionLoadRequest) models.VersionLoadStatus {
	log := logger.FromContext(ctx)

	var (
		status   models.VersionLoadStatus
		imported []importedType
	)
	for _, plan := range normalizeLoadRequest(request) {
		result, outcome, loadErr := s.importType(ctx, tenantID, request.VersionID, plan)
		if loadErr != nil {
			log.Error().
				Str("func", "versionService.runLoad").
				Str("entity_type", string(plan.entityType)).
				Str("error_type", loadErr.Type).
				Str("message", loadErr.Message).
				Msg("load job stopped")
			status.Error = loadErr
			return status
		}

		status.Results = append(status.Results, result)
		imported = append(imported, outcome)
	}

	for _, entry := range imported {
		if !entry.plan.cfg.LoadRelations {
			continue
		}
		if loadErr := s.applyRelations(ctx, tenantID, entry.plan, entry.handler, entry.documents); loadErr != nil {
			log.Error().
				Str("func", "versionService.runLoad").
				Str("entity_type", string(entry.plan.entityType)).
				Str("error_type", loadErr.Type).
				Str("message", loadErr.Message).
				Msg("relation replay stopped the load job")
			status.Error = loadErr
			return status
		}
	}

	log.Info().
		Str("func", "versionService.runLoad").
		Str("version_id", request.VersionID).
		Int("types", len(status.Results)).
		Msg("version loaded")

	return status
}

// normalizeLoadRequest flattens both request shapes into per-type plans
// ordered by the fixed entity type dependency order.
func normalizeLoadRequest(request models.VersionLoadRequest) []typeImportPlan {
	if request.Type == models.LoadRequestSingleEntity {
		cfg := models.TypeImportConfig{}
		if request.Config != nil {
			cfg = *request.Config
			cfg.RemoveOtherEntities = false
		}
		return []typeImportPlan{{
			entityType:     request.EntityType,
			cfg:            cfg,
			onlyExternalID: request.ExternalEntityID,
		}}
	}

	plans := make([]typeImportPlan, 0, len(request.EntityTypes))
	for _, entityType := range models.SupportedEntityTypes {
		cfg, ok := request.EntityTypes[entityType]
		if !ok {
			continue
		}
		plans = append(plans, typeImportPlan{entityType: entityType, cfg: cfg})
	}

	return plans
}

// importType restores every selected document of one type: entities,
// attributes and (for devices) credentials. Relations are left to the caller,
// which replays them once every type of the request is imported.
func (s *versionService) importType(ctx context.Context, tenantID, versionID string, plan typeImportPlan) (models.EntityTypeLoadResult, importedType, *models.LoadError) {
	result := models.EntityTypeLoadResult{EntityType: plan.entityType}

	handler, err := s.handlers.forType(plan.entityType)
	if err != nil {
		return result, importedType{}, runtimeLoadError(err)
	}

	if plan.cfg.RemoveOtherEntities {
		importKey := tenantID + "|" + string(plan.entityType)
		if !s.importLocks.TryLock(importKey) {
			return result, importedType{}, &models.LoadError{
				Type:    loadErrorConcurrentImport,
				Message: fmt.Sprintf("%v: %s", ErrConcurrentImport, plan.entityType),
			}
		}
		defer s.importLocks.Unlock(importKey)
	}

	documents, loadErr := s.readDocuments(ctx, tenantID, versionID, plan)
	if loadErr != nil {
		return result, importedType{}, loadErr
	}

	created, updated, loadErr := s.applyDocuments(ctx, tenantID, plan, handler, documents)
	if loadErr != nil {
		return result, importedType{}, loadErr
	}
	result.Created = created
	result.Updated = updated

	if plan.cfg.RemoveOtherEntities {
		deleted, loadErr := s.removeOtherEntities(ctx, tenantID, plan, documents)
		if loadErr != nil {
			return result, importedType{}, loadErr
		}
		result.Deleted = deleted
	}

	return result, importedType{plan: plan, handler: handler, documents: documents}, nil
}

// readDocuments fetches the documents of one type stored at the version.
func (s *versionService) readDocuments(ctx context.Context, tenantID, versionID string, plan typeImportPlan) ([]models.EntityDocument, *models.LoadError) {
	if plan.onlyExternalID != "" {
		ref := models.EntityRef{EntityType: plan.entityType, ExternalID: plan.onlyExternalID}
		document, err := s.remote.ReadDocument(ctx, tenantID, versionID, ref)
		if err != nil {
			return nil, &models.LoadError{
				Type:    loadErrorDocumentNotFound,
				Source:  plan.onlyExternalID,
				Message: err.Error(),
			}
		}
		return []models.EntityDocument{document}, nil
	}

	refs, err := s.remote.ListEntities(ctx, tenantID, versionID, plan.entityType)
	if err != nil {
		return nil, runtimeLoadError(err)
	}

	var (
		mu        sync.Mutex
		documents = make([]models.EntityDocument, 0, len(refs))
	)

	pool := workers.NewPool(s.workerCount)
	for _, ref := range refs {
		pool.Go(func() error {
			document, readErr := s.remote.ReadDocument(ctx, tenantID, versionID, ref)
			if readErr != nil {
				return fmt.Errorf("read document %s: %w", ref.ExternalID, readErr)
			}

			mu.Lock()
			documents = append(documents, document)
			mu.Unlock()
			return nil
		})
	}
	if errs := pool.Wait(); len(errs) > 0 {
		return nil, runtimeLoadError(errs[0])
	}

	return documents, nil
}

// applyDocuments restores the documents' entities, attributes and (for
// devices) credentials concurrently, serialized per external id. An existing
// target that already matches its document is left alone and not counted, so
// reloading the same version reports zero updates.
func (s *versionService) applyDocuments(ctx context.Context, tenantID string, plan typeImportPlan, handler EntityHandler, documents []models.EntityDocument) (created, updated int, loadErr *models.LoadError) {
	var (
		mu           sync.Mutex
		createdCount int
		updatedCount int
	)

	pool := workers.NewPool(s.workerCount)
	for _, document := range documents {
		pool.Go(func() error {
			key := lockKey(tenantID, plan.entityType, document.Ref.ExternalID)
			s.entityLocks.Lock(key)
			defer s.entityLocks.Unlock(key)

			targetLocalID, err := s.resolveImportTarget(ctx, tenantID, plan, document)
			if err != nil {
				return err
			}

			if targetLocalID != "" {
				unchanged, diffErr := s.targetMatchesDocument(ctx, tenantID, targetLocalID, plan, handler, document)
				if diffErr != nil {
					return diffErr
				}
				if unchanged {
					return nil
				}
			}

			if _, err = handler.Apply(ctx, tenantID, document, targetLocalID, plan.cfg); err != nil {
				return err
			}

			mu.Lock()
			if targetLocalID == "" {
				createdCount++
			} else {
				updatedCount++
			}
			mu.Unlock()
			return nil
		})
	}
	if errs := pool.Wait(); len(errs) > 0 {
		err := errs[0]
		if errors.Is(err, store.ErrExternalIDConflict) {
			return 0, 0, &models.LoadError{Type: loadErrorExternalIDBinding, Message: err.Error()}
		}
		return 0, 0, runtimeLoadError(err)
	}

	return createdCount, updatedCount, nil
}

// resolveImportTarget picks the local entity a document restores onto:
// the external-id mapping first, then (when configured) a same-named local
// entity to adopt. The mapping always wins over the name so a rename never
// silently re-targets the restore. Empty means create.
func (s *versionService) resolveImportTarget(ctx context.Context, tenantID string, plan typeImportPlan, document models.EntityDocument) (string, error) {
	localID, err := s.resolver.FindLocal(ctx, tenantID, plan.entityType, document.Ref.ExternalID)
	if err == nil {
		return localID, nil
	}
	if !errors.Is(err, store.ErrMappingNotFound) {
		return "", fmt.Errorf("resolve import target %s: %w", document.Ref.ExternalID, err)
	}

	if !plan.cfg.FindExistingEntityByName {
		return "", nil
	}

	existing, err := s.repos.Entities.FindByName(ctx, tenantID, plan.entityType, document.Name)
	if errors.Is(err, store.ErrEntityNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("find %s by name %q: %w", plan.entityType, document.Name, err)
	}

	// Adopt: the external id binds to the same-named entity from now on.
	if err = s.resolver.Bind(ctx, tenantID, plan.entityType, existing.ID, document.Ref.ExternalID); err != nil {
		return "", fmt.Errorf("adopt %s %q: %w", plan.entityType, document.Name, err)
	}

	return existing.ID, nil
}

// targetMatchesDocument reports whether the target entity already carries the
// document's state, limited to the sections the plan actually loads.
func (s *versionService) targetMatchesDocument(ctx context.Context, tenantID, targetLocalID string, plan typeImportPlan, handler EntityHandler, document models.EntityDocument) (bool, error) {
	target, err := s.repos.Entities.Find(ctx, tenantID, targetLocalID)
	if err != nil {
		return false, fmt.Errorf("read import target %s: %w", targetLocalID, err)
	}

	live, err := handler.Export(ctx, tenantID, target, models.TypeExportConfig{
		SaveRelations:   plan.cfg.LoadRelations,
		SaveAttributes:  plan.cfg.LoadAttributes,
		SaveCredentials: plan.cfg.LoadCredentials,
	})
	if err != nil {
		return false, fmt.Errorf("export import target %s: %w", targetLocalID, err)
	}

	pending := document
	if !plan.cfg.LoadRelations {
		pending.Relations = nil
	}
	if !plan.cfg.LoadAttributes {
		pending.Attributes = nil
	}
	if !plan.cfg.LoadCredentials {
		pending.Credentials = nil
	}

	return !diffDocuments(live, pending).HasChanges(), nil
}

// applyRelations replays every document's relation set sequentially, after
// all entities of the load job exist and are mapped.
func (s *versionService) applyRelations(ctx context.Context, tenantID string, plan typeImportPlan, handler EntityHandler, documents []models.EntityDocument) *models.LoadError {
	for _, document := range documents {
		localID, err := s.resolver.FindLocal(ctx, tenantID, plan.entityType, document.Ref.ExternalID)
		if err != nil {
			return runtimeLoadError(fmt.Errorf("resolve %s for relations: %w", document.Ref.ExternalID, err))
		}

		if err = handler.ApplyRelations(ctx, tenantID, document, localID); err != nil {
			var unresolved *UnresolvedReferenceError
			if errors.As(err, &unresolved) {
				return &models.LoadError{
					Type:    loadErrorUnresolvedRef,
					Source:  unresolved.Source,
					Target:  unresolved.Target,
					Message: unresolved.Error(),
				}
			}
			return runtimeLoadError(err)
		}
	}

	return nil
}

// removeOtherEntities deletes every local entity of the type whose external
// id is absent from the version's document set. Entities never exported have
// no external id and are removed as well.
func (s *versionService) removeOtherEntities(ctx context.Context, tenantID string, plan typeImportPlan, documents []models.EntityDocument) (int, *models.LoadError) {
	imported := make(map[string]struct{}, len(documents))
	for _, document := range documents {
		imported[document.Ref.ExternalID] = struct{}{}
	}

	locals, err := s.repos.Entities.ListAll(ctx, tenantID, plan.entityType)
	if err != nil {
		return 0, runtimeLoadError(err)
	}

	deleted := 0
	for _, entity := range locals {
		externalID, err := s.repos.ExternalIDs.FindByLocal(ctx, tenantID, plan.entityType, entity.ID)
		if err != nil && !errors.Is(err, store.ErrMappingNotFound) {
			return deleted, runtimeLoadError(err)
		}
		if err == nil {
			if _, keep := imported[externalID]; keep {
				continue
			}
		}

		if err = s.repos.Entities.Delete(ctx, tenantID, entity.ID); err != nil {
			return deleted, runtimeLoadError(err)
		}
		deleted++
	}

	return deleted, nil
}

func runtimeLoadError(err error) *models.LoadError {
	return &models.LoadError{Type: loadErrorRuntime, Message: err.Error()}
}
