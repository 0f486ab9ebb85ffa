package models

// SyncStrategy is the policy governing whether a restore removes local
// entities absent from the remote set (OVERWRITE) or only adds and updates
// (MERGE).
type SyncStrategy string

const (
	SyncStrategyOverwrite SyncStrategy = "OVERWRITE"
	SyncStrategyMerge     SyncStrategy = "MERGE"
)

// VersionCreateRequestType selects the shape of a create request: one entity
// or a map of per-type export configurations.
type VersionCreateRequestType string

const (
	CreateRequestSingleEntity VersionCreateRequestType = "SINGLE_ENTITY"
	CreateRequestComplex      VersionCreateRequestType = "COMPLEX"
)

// TypeExportConfig configures the export of one entity type inside a COMPLEX
// create request.
type TypeExportConfig struct {
	// AllEntities exports every entity of the type for the tenant. When
	// false, EntityIDs must list the entities explicitly.
	AllEntities bool     `json:"all_entities"`
	EntityIDs   []string `json:"entity_ids,omitempty"`

	SaveRelations   bool `json:"save_relations"`
	SaveAttributes  bool `json:"save_attributes"`
	SaveCredentials bool `json:"save_credentials"`

	// SyncStrategy overrides the request-level default for this type.
	// Empty means "not specified".
	SyncStrategy SyncStrategy `json:"sync_strategy,omitempty"`
}

// VersionCreateRequest asks the engine to snapshot entities into a new
// version under Branch, named VersionName.
type VersionCreateRequest struct {
	Type        VersionCreateRequestType `json:"type"`
	Branch      string                   `json:"branch"`
	VersionName string                   `json:"version_name"`

	// DefaultSyncStrategy applies to every type whose TypeExportConfig does
	// not set its own strategy. Empty falls back to MERGE.
	DefaultSyncStrategy SyncStrategy `json:"default_sync_strategy,omitempty"`

	// SINGLE_ENTITY shape.
	EntityType EntityType        `json:"entity_type,omitempty"`
	EntityID   string            `json:"entity_id,omitempty"`
	Config     *TypeExportConfig `json:"config,omitempty"`

	// COMPLEX shape.
	EntityTypes map[EntityType]TypeExportConfig `json:"entity_types,omitempty"`
}
