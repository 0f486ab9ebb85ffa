package models

// VersionLoadRequestType selects the shape of a load request: one entity by
// its external id, or per-type import of everything stored at the version.
type VersionLoadRequestType string

const (
	LoadRequestSingleEntity VersionLoadRequestType = "SINGLE_ENTITY"
	LoadRequestEntityType   VersionLoadRequestType = "ENTITY_TYPE"
)

// TypeImportConfig configures the import of one entity type inside an
// ENTITY_TYPE load request.
type TypeImportConfig struct {
	LoadRelations   bool `json:"load_relations"`
	LoadAttributes  bool `json:"load_attributes"`
	LoadCredentials bool `json:"load_credentials"`

	// RemoveOtherEntities deletes every local entity of the type whose
	// external id is absent from the version's document set. This is the only
	// destructive step of a load and never applies to SINGLE_ENTITY requests.
	RemoveOtherEntities bool `json:"remove_other_entities"`

	// FindExistingEntityByName adopts a same-named local entity as the
	// restore target when the external id has no local mapping yet. The
	// external id binds to the adopted entity going forward.
	FindExistingEntityByName bool `json:"find_existing_entity_by_name"`
}

// VersionLoadRequest asks the engine to restore entity documents stored at
// VersionID back into the live entity graph.
type VersionLoadRequest struct {
	Type      VersionLoadRequestType `json:"type"`
	Branch    string                 `json:"branch"`
	VersionID string                 `json:"version_id"`

	// SINGLE_ENTITY shape.
	EntityType       EntityType        `json:"entity_type,omitempty"`
	ExternalEntityID string            `json:"external_entity_id,omitempty"`
	Config           *TypeImportConfig `json:"config,omitempty"`

	// ENTITY_TYPE shape.
	EntityTypes map[EntityType]TypeImportConfig `json:"entity_types,omitempty"`
}
