// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-entity-vc/internal/logger"
	"github.com/MKhiriev/go-entity-vc/internal/store"
	"github.com/MKhiriev/go-entity-vc/internal/utils"
	"github.com/MKhiriev/go-entity-vc/models"
)

// externalIDResolver is the default [ExternalIDResolver] backed by the
// append-only Postgres mapping. A keyed mutex serializes assignment per
// (tenant, type, id) so two concurrent jobs can never mint two external ids
// for the same local entity, or adopt two local entities for the same
// external id.
type externalIDResolver struct {
	mappings store.ExternalIDRepository
	uuid     *utils.UUIDGenerator
	locks    *utils.KeyedMutex
	logger   *logger.Logger
}

// NewExternalIDResolver constructs the default resolver.
func NewExternalIDResolver(mappings store.ExternalIDRepository, logger *logger.Logger) ExternalIDResolver {
	return &externalIDResolver{
		mappings: mappings,
		uuid:     utils.NewUUIDGenerator(),
		locks:    utils.NewKeyedMutex(),
		logger:   logger,
	}
}

// AssignOrReuse implements [ExternalIDResolver]. Exporting the same entity
// any number of times yields the same external id.
func (r *externalIDResolver) AssignOrReuse(ctx context.Context, tenantID string, entityType models.EntityType, localID string) (string, error) {
	key := lockKey(tenantID, entityType, localID)
	r.locks.Lock(key)
	defer r.locks.Unlock(key)

	externalID, err := r.mappings.FindByLocal(ctx, tenantID, entityType, localID)
	if err == nil {
		return externalID, nil
	}
	if !errors.Is(err, store.ErrMappingNotFound) {
		return "", fmt.Errorf("lookup external id: %w", err)
	}

	externalID = r.uuid.Generate()
	if err = r.mappings.Bind(ctx, tenantID, entityType, localID, externalID); err != nil {
		// Lost a race against another process sharing the database: reuse
		// whatever won.
		if errors.Is(err, store.ErrExternalIDConflict) {
			return r.mappings.FindByLocal(ctx, tenantID, entityType, localID)
		}
		return "", fmt.Errorf("bind external id: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "externalIDResolver.AssignOrReuse").
		Str("tenant_id", tenantID).
		Str("entity_type", string(entityType)).
		Str("external_id", externalID).
		Msg("assigned new external id")

	return externalID, nil
}

// FindLocal implements [ExternalIDResolver].
func (r *externalIDResolver) FindLocal(ctx context.Context, tenantID string, entityType models.EntityType, externalID string) (string, error) {
	return r.mappings.FindByExternal(ctx, tenantID, entityType, externalID)
}

// Bind implements [ExternalIDResolver]. Re-binding an identical pair is a
// no-op; binding a conflicting pair surfaces the repository conflict.
func (r *externalIDResolver) Bind(ctx context.Context, tenantID string, entityType models.EntityType, localID, externalID string) error {
	key := lockKey(tenantID, entityType, externalID)
	r.locks.Lock(key)
	defer r.locks.Unlock(key)

	existing, err := r.mappings.FindByExternal(ctx, tenantID, entityType, externalID)
	if err == nil {
		if existing == localID {
			return nil
		}
		return fmt.Errorf("%w: external id %s", store.ErrExternalIDConflict, externalID)
	}
	if !errors.Is(err, store.ErrMappingNotFound) {
		return fmt.Errorf("lookup local id: %w", err)
	}

	return r.mappings.Bind(ctx, tenantID, entityType, localID, externalID)
}

func lockKey(tenantID string, entityType models.EntityType, id string) string {
	return tenantID + "|" + string(entityType) + "|" + id
}
