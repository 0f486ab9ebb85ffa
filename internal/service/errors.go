package service

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation covers every synchronously rejected request: missing
	// branch or version name, unknown request type, empty type map, invalid
	// sync strategy. It is the only error the submit endpoints return for a
	// malformed request.
	ErrValidation = errors.New("invalid request")

	// ErrUnsupportedEntityType is returned when a request names an entity
	// type outside the fixed allow-list.
	ErrUnsupportedEntityType = errors.New("unsupported entity type")

	// ErrRequestNotFound is returned by status polling for an unknown or
	// already evicted request id.
	ErrRequestNotFound = errors.New("request was not found")

	// ErrExternalIDUnresolved signals that an imported document references an
	// external id with no local mapping and no document inside the loaded
	// version. It terminates the load job.
	ErrExternalIDUnresolved = errors.New("external id could not be resolved")

	// ErrConcurrentImport is reported when a destructive import for a tenant
	// and entity type is submitted while another one is still running.
	ErrConcurrentImport = errors.New("concurrent destructive import for the same entity type")
)

// UnresolvedReferenceError carries the pair of external ids a load job
// stopped on: Source is the document being imported, Target the reference it
// could not map to a local entity.
type UnresolvedReferenceError struct {
	Source string
	Target string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("%v: %s references %s", ErrExternalIDUnresolved, e.Source, e.Target)
}

func (e *UnresolvedReferenceError) Unwrap() error {
	return ErrExternalIDUnresolved
}
