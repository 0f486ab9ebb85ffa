// Package adapter contains clients for external collaborators of the version
// control engine. The only collaborator today is the remote versioned store —
// a bridge service exposing branches, commits and entity documents over HTTP.
package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-entity-vc/models"
)

// RemoteStore is the narrow contract the engine consumes from the versioned
// store. Versions are immutable once created; a branch is an ordered sequence
// of versions, newest first in every listing.
type RemoteStore interface {
	// ListBranches returns every branch of the tenant's repository.
	ListBranches(ctx context.Context, tenantID string) ([]models.Branch, error)

	// Commit writes all documents as one atomic commit on branch and returns
	// the resulting version. Either every document lands in the new version
	// or the branch is left untouched.
	Commit(ctx context.Context, tenantID, branch, versionName string, documents []models.EntityDocument) (models.Version, error)

	// ListVersions returns one page of the branch history, newest first.
	ListVersions(ctx context.Context, tenantID, branch string, pageLink models.PageLink) (models.VersionPage, error)

	// ListEntities returns the refs of every document stored at versionID,
	// optionally narrowed to one entity type (empty means all types).
	ListEntities(ctx context.Context, tenantID, versionID string, entityType models.EntityType) ([]models.EntityRef, error)

	// ReadDocument returns the document stored for ref at versionID.
	ReadDocument(ctx context.Context, tenantID, versionID string, ref models.EntityRef) (models.EntityDocument, error)
}
