package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-entity-vc/models"
)

// ExternalIDRepository persists the append-only mapping between local entity
// ids and the stable external ids used inside the versioned store.
//
// The mapping is keyed both ways per tenant: (entity_type, local_id) and
// (entity_type, external_id) are each unique. Bind is insert-once; rebinding
// an already mapped pair returns [ErrExternalIDConflict].
type ExternalIDRepository interface {
	// FindByLocal returns the external id mapped to the given local entity,
	// or [ErrMappingNotFound].
	FindByLocal(ctx context.Context, tenantID string, entityType models.EntityType, localID string) (string, error)

	// FindByExternal returns the local id mapped to the given external id,
	// or [ErrMappingNotFound].
	FindByExternal(ctx context.Context, tenantID string, entityType models.EntityType, externalID string) (string, error)

	// Bind records a new (local id, external id) pair for the tenant and
	// entity type. The pair is immutable once written.
	Bind(ctx context.Context, tenantID string, entityType models.EntityType, localID, externalID string) error
}

// EntityRepository is the generic per-type entity collaborator: the engine
// uses one logical instance for every supported entity type, selecting rows
// by the entity_type column.
type EntityRepository interface {
	Find(ctx context.Context, tenantID, localID string) (models.Entity, error)
	FindByName(ctx context.Context, tenantID string, entityType models.EntityType, name string) (models.Entity, error)
	ListAll(ctx context.Context, tenantID string, entityType models.EntityType) ([]models.Entity, error)
	ListByIDs(ctx context.Context, tenantID string, entityType models.EntityType, localIDs []string) ([]models.Entity, error)
	Save(ctx context.Context, entity models.Entity) (models.Entity, error)
	Delete(ctx context.Context, tenantID, localID string) error
}

// RelationRepository stores directed, typed relation edges between local
// entities.
type RelationRepository interface {
	// ListByEntity returns every edge where entityID is either endpoint.
	ListByEntity(ctx context.Context, tenantID, entityID string) ([]models.Relation, error)

	// ReplaceForEntity removes all edges touching entityID and writes the
	// given set instead.
	ReplaceForEntity(ctx context.Context, tenantID, entityID string, relations []models.Relation) error
}

// AttributesRepository is the key/value attribute collaborator, one scope map
// per (tenant, entity, scope).
type AttributesRepository interface {
	GetAll(ctx context.Context, tenantID, entityID string) (map[string]map[string]any, error)
	SaveScope(ctx context.Context, tenantID, entityID, scope string, attributes map[string]any) error
}

// CredentialsRepository stores the opaque credentials blob of a device.
type CredentialsRepository interface {
	Get(ctx context.Context, tenantID, deviceID string) ([]byte, error)
	Save(ctx context.Context, tenantID, deviceID string, credentials []byte) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
