package models

import "time"

// Entity is the generic representation of one live platform entity as seen by
// the version control engine. Type-specific payload lives in Fields as an
// opaque map; the engine never interprets individual field values beyond
// copying and comparing them.
type Entity struct {
	ID        string         `json:"id"`
	TenantID  string         `json:"tenant_id"`
	Type      EntityType     `json:"type"`
	Name      string         `json:"name"`
	Fields    map[string]any `json:"fields,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// EntityRef couples a local entity id with the stable external id used inside
// the versioned store. ExternalID is assigned exactly once, at first export,
// and never changes afterwards for that local entity.
type EntityRef struct {
	EntityType EntityType `json:"entity_type"`
	LocalID    string     `json:"local_id,omitempty"`
	ExternalID string     `json:"external_id,omitempty"`
}
