package service

import (
	"fmt"

	"github.com/MKhiriev/go-entity-vc/models"
)

// validateCreateRequest rejects a malformed create request before any job is
// started. Everything wrong past this point is reported asynchronously
// through the job status instead.
func validateCreateRequest(request models.VersionCreateRequest) error {
	if request.Branch == "" {
		return fmt.Errorf("%w: branch is required", ErrValidation)
	}
	if request.VersionName == "" {
		return fmt.Errorf("%w: version name is required", ErrValidation)
	}
	if !isValidSyncStrategy(request.DefaultSyncStrategy) {
		return fmt.Errorf("%w: unknown sync strategy %q", ErrValidation, request.DefaultSyncStrategy)
	}

	switch request.Type {
	case models.CreateRequestSingleEntity:
		if !models.IsSupportedEntityType(request.EntityType) {
			return fmt.Errorf("%w: %s", ErrUnsupportedEntityType, request.EntityType)
		}
		if request.EntityID == "" {
			return fmt.Errorf("%w: entity id is required for a single-entity request", ErrValidation)
		}
		if request.Config != nil && !isValidSyncStrategy(request.Config.SyncStrategy) {
			return fmt.Errorf("%w: unknown sync strategy %q", ErrValidation, request.Config.SyncStrategy)
		}

	case models.CreateRequestComplex:
		if len(request.EntityTypes) == 0 {
			return fmt.Errorf("%w: at least one entity type is required", ErrValidation)
		}
		for entityType, cfg := range request.EntityTypes {
			if !models.IsSupportedEntityType(entityType) {
				return fmt.Errorf("%w: %s", ErrUnsupportedEntityType, entityType)
			}
			if !cfg.AllEntities && len(cfg.EntityIDs) == 0 {
				return fmt.Errorf("%w: %s selects neither all entities nor explicit ids", ErrValidation, entityType)
			}
			if !isValidSyncStrategy(cfg.SyncStrategy) {
				return fmt.Errorf("%w: unknown sync strategy %q", ErrValidation, cfg.SyncStrategy)
			}
		}

	default:
		return fmt.Errorf("%w: unknown create request type %q", ErrValidation, request.Type)
	}

	return nil
}

// validateLoadRequest rejects a malformed load request synchronously.
func validateLoadRequest(request models.VersionLoadRequest) error {
	if request.Branch == "" {
		return fmt.Errorf("%w: branch is required", ErrValidation)
	}
	if request.VersionID == "" {
		return fmt.Errorf("%w: version id is required", ErrValidation)
	}

	switch request.Type {
	case models.LoadRequestSingleEntity:
		if !models.IsSupportedEntityType(request.EntityType) {
			return fmt.Errorf("%w: %s", ErrUnsupportedEntityType, request.EntityType)
		}
		if request.ExternalEntityID == "" {
			return fmt.Errorf("%w: external entity id is required for a single-entity request", ErrValidation)
		}
		if request.Config != nil && request.Config.RemoveOtherEntities {
			return fmt.Errorf("%w: remove_other_entities does not apply to a single-entity request", ErrValidation)
		}

	case models.LoadRequestEntityType:
		if len(request.EntityTypes) == 0 {
			return fmt.Errorf("%w: at least one entity type is required", ErrValidation)
		}
		for entityType := range request.EntityTypes {
			if !models.IsSupportedEntityType(entityType) {
				return fmt.Errorf("%w: %s", ErrUnsupportedEntityType, entityType)
			}
		}

	default:
		return fmt.Errorf("%w: unknown load request type %q", ErrValidation, request.Type)
	}

	return nil
}
