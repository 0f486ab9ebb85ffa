package models

import "encoding/json"

// RelationDirection tells whether the related entity is the source or the
// target of the relation, from the point of view of the document's entity.
type RelationDirection string

const (
	RelationFrom RelationDirection = "FROM"
	RelationTo   RelationDirection = "TO"
)

// EntityRelation describes one relation edge of an exported entity. The
// related entity is referenced by its external id so the document stays valid
// across local deletion and recreation.
type EntityRelation struct {
	Direction         RelationDirection `json:"direction"`
	RelatedEntityType EntityType        `json:"related_entity_type"`
	RelatedExternalID string            `json:"related_external_id"`
	RelationType      string            `json:"relation_type"`
}

// EntityDocument is the canonical exportable form of one entity. Documents
// are self-contained: restoring one requires no live-system lookups except
// external-id remapping.
type EntityDocument struct {
	Ref         EntityRef                 `json:"ref"`
	Name        string                    `json:"name"`
	Fields      map[string]any            `json:"fields,omitempty"`
	Relations   []EntityRelation          `json:"relations,omitempty"`
	Attributes  map[string]map[string]any `json:"attributes,omitempty"`
	Credentials json.RawMessage           `json:"credentials,omitempty"`
}
