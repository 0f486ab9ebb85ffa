package adapter

import "errors"

var (
	// ErrRemoteStore wraps any transport or server-side failure of the
	// versioned store. Jobs failing with it are safe to resubmit: commits are
	// atomic on the remote side.
	ErrRemoteStore = errors.New("remote store request failed")

	// ErrVersionNotFound is returned when the requested version id does not
	// exist on the requested branch.
	ErrVersionNotFound = errors.New("version not found")

	// ErrDocumentNotFound is returned when no document is stored for the
	// requested entity ref at the requested version.
	ErrDocumentNotFound = errors.New("entity document not found at version")

	// ErrBranchNotFound is returned when the requested branch does not exist
	// in the tenant's repository.
	ErrBranchNotFound = errors.New("branch not found")
)
