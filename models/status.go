package models

// VersionCreateStatus is the pollable state of one asynchronous create
// request. Until the job finishes only Done=false is populated; once Done the
// status is immutable.
type VersionCreateStatus struct {
	Done     bool     `json:"done"`
	Version  *Version `json:"version,omitempty"`
	Added    int      `json:"added"`
	Modified int      `json:"modified"`
	Removed  int      `json:"removed"`
	Error    string   `json:"error,omitempty"`
}

// EntityTypeLoadResult aggregates the outcome of importing one entity type.
type EntityTypeLoadResult struct {
	EntityType EntityType `json:"entity_type"`
	Created    int        `json:"created"`
	Updated    int        `json:"updated"`
	Deleted    int        `json:"deleted"`
}

// LoadError describes why a load job stopped. Source is the external id of
// the document being imported; Target, when set, is the external id the
// import could not resolve (e.g. a relation pointing at an entity absent from
// the version).
type LoadError struct {
	Type    string `json:"type"`
	Source  string `json:"source,omitempty"`
	Target  string `json:"target,omitempty"`
	Message string `json:"message"`
}

// VersionLoadStatus is the pollable state of one asynchronous load request.
type VersionLoadStatus struct {
	Done    bool                   `json:"done"`
	Results []EntityTypeLoadResult `json:"results,omitempty"`
	Error   *LoadError             `json:"error,omitempty"`
}
