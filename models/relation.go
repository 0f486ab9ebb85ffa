package models

// Relation is one directed, typed edge between two local entities as stored
// in the live graph. The exportable form ([EntityRelation]) references the
// far end by external id instead.
type Relation struct {
	TenantID     string `json:"tenant_id"`
	FromID       string `json:"from_id"`
	ToID         string `json:"to_id"`
	RelationType string `json:"relation_type"`
}
