package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrMappingNotFound is returned when no external-id mapping exists for
	// the queried local or external id.
	ErrMappingNotFound = errors.New("external id mapping was not found")

	// ErrExternalIDConflict is returned when a Bind attempt violates the
	// insert-once rule: either the local entity already has an external id,
	// or the external id is already bound to another local entity.
	ErrExternalIDConflict = errors.New("external id is already bound")

	// ErrEntityNotFound is returned when a query targets an entity
	// (identified by id or by name) that does not exist in the database.
	ErrEntityNotFound = errors.New("entity was not found")

	// ErrEntityNameTaken is returned when saving an entity whose name
	// collides with another entity of the same tenant and type.
	ErrEntityNameTaken = errors.New("entity name is already taken")

	// ErrCredentialsNotFound is returned when a device has no stored
	// credentials blob.
	ErrCredentialsNotFound = errors.New("device credentials were not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingFields is returned when an entity's opaque field map cannot
	// be encoded to or decoded from its JSONB column.
	ErrEncodingFields = errors.New("failed to encode entity fields")
)
