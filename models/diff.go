package models

// EntityDataDiff reports how a live entity's exportable document differs from
// a versioned one. Field changes are enumerated key by key; the optional
// sections are reported only as changed/unchanged, which is enough to answer
// "has this entity drifted from this version".
type EntityDataDiff struct {
	AddedFields   []string `json:"added_fields,omitempty"`
	RemovedFields []string `json:"removed_fields,omitempty"`
	ChangedFields []string `json:"changed_fields,omitempty"`

	RelationsChanged   bool `json:"relations_changed"`
	AttributesChanged  bool `json:"attributes_changed"`
	CredentialsChanged bool `json:"credentials_changed"`
}

// HasChanges reports whether any part of the document differs.
func (d EntityDataDiff) HasChanges() bool {
	return len(d.AddedFields) > 0 || len(d.RemovedFields) > 0 || len(d.ChangedFields) > 0 ||
		d.RelationsChanged || d.AttributesChanged || d.CredentialsChanged
}
