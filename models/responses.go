package models

// SubmitResponse is returned synchronously by the submit endpoints. The
// caller polls the corresponding status endpoint with RequestID.
type SubmitResponse struct {
	RequestID string `json:"request_id"`
}

// BranchesResponse wraps the branch listing.
type BranchesResponse struct {
	Branches []Branch `json:"branches"`
	Length   int      `json:"length"`
}

// EntitiesAtVersionResponse wraps the refs of entities stored at a version.
type EntitiesAtVersionResponse struct {
	Entities []EntityRef `json:"entities"`
	Length   int         `json:"length"`
}

// DiffRequest asks for an on-demand comparison of one live entity against the
// document stored for it at a version.
type DiffRequest struct {
	EntityType EntityType `json:"entity_type"`
	EntityID   string     `json:"entity_id"`
	VersionID  string     `json:"version_id"`
}
