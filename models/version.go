package models

import "time"

// Branch is a named, ordered line of versions in the remote store. At most
// one branch per tenant is marked Default; when the tenant has not configured
// one, the remote store's own default applies.
type Branch struct {
	Name    string `json:"name"`
	Default bool   `json:"default"`
}

// Version is an immutable snapshot (commit) of one or more entity documents
// under a branch. ID is opaque and assigned by the remote store.
type Version struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Author    string    `json:"author,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// PageLink carries pagination parameters for version listing.
type PageLink struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// VersionPage is one page of a branch's version history, newest first.
type VersionPage struct {
	Versions   []Version `json:"versions"`
	TotalCount int       `json:"total_count"`
	HasNext    bool      `json:"has_next"`
}
