package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-entity-vc/models"
)

// VersionService is the engine's public surface: submitting asynchronous
// create and load jobs, polling their statuses, browsing the remote store,
// and diffing a live entity against a stored document.
//
// Submit methods validate synchronously and return a request id; everything
// else about a job is observed through the status methods. A status with
// Done=false means the job is still running; once Done=true the status never
// changes again.
type VersionService interface {
	SubmitCreate(ctx context.Context, tenantID string, request models.VersionCreateRequest) (string, error)
	SubmitLoad(ctx context.Context, tenantID string, request models.VersionLoadRequest) (string, error)

	GetCreateStatus(ctx context.Context, requestID string) (models.VersionCreateStatus, error)
	GetLoadStatus(ctx context.Context, requestID string) (models.VersionLoadStatus, error)

	ListBranches(ctx context.Context, tenantID string) ([]models.Branch, error)
	ListVersions(ctx context.Context, tenantID, branch string, pageLink models.PageLink) (models.VersionPage, error)
	ListEntitiesAtVersion(ctx context.Context, tenantID, versionID string, entityType models.EntityType) ([]models.EntityRef, error)

	Diff(ctx context.Context, tenantID string, request models.DiffRequest) (models.EntityDataDiff, error)
}

// ExternalIDResolver maintains the append-only mapping between local entity
// ids and the stable external ids used inside the versioned store. All
// methods are idempotent and safe for concurrent use; assignment and binding
// are serialized per (tenant, entity type, id) key.
type ExternalIDResolver interface {
	// AssignOrReuse returns the external id of a local entity, minting and
	// persisting a fresh one on first export.
	AssignOrReuse(ctx context.Context, tenantID string, entityType models.EntityType, localID string) (string, error)

	// FindLocal returns the local id bound to an external id, or
	// [store.ErrMappingNotFound] when the tenant has never seen it.
	FindLocal(ctx context.Context, tenantID string, entityType models.EntityType, externalID string) (string, error)

	// Bind records the mapping for an adopted or newly created local entity.
	// Binding the same pair twice is a no-op.
	Bind(ctx context.Context, tenantID string, entityType models.EntityType, localID, externalID string) error
}

// EntityHandler is the per-type capability used by the orchestrator. One
// handler covers every plain entity type; types with extra baggage (device
// credentials) get their own implementation. The handler registry and
// [models.SupportedEntityTypes] are the only two growth points for new types.
type EntityHandler interface {
	// Export builds the self-contained document of one live entity,
	// including the optional sections the config asks for.
	Export(ctx context.Context, tenantID string, entity models.Entity, cfg models.TypeExportConfig) (models.EntityDocument, error)

	// Apply restores a document onto the local entity graph. targetLocalID
	// selects an existing entity to update; empty means create. Relations
	// are NOT applied here — they need every mapping of the job to exist
	// first and are replayed by the orchestrator via ApplyRelations.
	Apply(ctx context.Context, tenantID string, document models.EntityDocument, targetLocalID string, cfg models.TypeImportConfig) (models.Entity, error)

	// ApplyRelations replaces the relation edges of an already restored
	// entity with the document's set, remapping related external ids to
	// local ids. An unmappable target yields [ErrExternalIDUnresolved].
	ApplyRelations(ctx context.Context, tenantID string, document models.EntityDocument, localID string) error
}
