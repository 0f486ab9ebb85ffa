package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-entity-vc/internal/logger"
	"github.com/MKhiriev/go-entity-vc/models"
	"github.com/jackc/pgerrcode"
)

// externalIDRepository is the PostgreSQL-backed implementation of
// [ExternalIDRepository]. The external_ids table is append-only: rows are
// inserted exactly once at first export (or first by-name adoption) and never
// updated, which is what makes external ids stable across restores.
type externalIDRepository struct {
	*DB
	logger *logger.Logger
}

// NewExternalIDRepository constructs an [ExternalIDRepository] backed by the
// provided database connection and logger.
func NewExternalIDRepository(db *DB, logger *logger.Logger) ExternalIDRepository {
	return &externalIDRepository{
		DB:     db,
		logger: logger,
	}
}

// FindByLocal returns the external id assigned to the given local entity.
//
// Returns [ErrMappingNotFound] when the entity has never been exported.
func (r *externalIDRepository) FindByLocal(ctx context.Context, tenantID string, entityType models.EntityType, localID string) (string, error) {
	log := logger.FromContext(ctx)

	var externalID string
	err := r.DB.QueryRowContext(ctx, findExternalIDByLocal, tenantID, string(entityType), localID).Scan(&externalID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrMappingNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "externalIDRepository.FindByLocal").
			Str("tenant_id", tenantID).
			Str("entity_type", string(entityType)).
			Str("local_id", localID).
			Msg("failed to query external id by local id")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return externalID, nil
}

// FindByExternal returns the local id bound to the given external id.
//
// Returns [ErrMappingNotFound] when the external id has no local counterpart
// yet (first restore into this tenant).
func (r *externalIDRepository) FindByExternal(ctx context.Context, tenantID string, entityType models.EntityType, externalID string) (string, error) {
	log := logger.FromContext(ctx)

	var localID string
	err := r.DB.QueryRowContext(ctx, findLocalIDByExternal, tenantID, string(entityType), externalID).Scan(&localID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrMappingNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "externalIDRepository.FindByExternal").
			Str("tenant_id", tenantID).
			Str("entity_type", string(entityType)).
			Str("external_id", externalID).
			Msg("failed to query local id by external id")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return localID, nil
}

// Bind records the (local id, external id) pair. A unique violation on either
// key means the pair (or one of its halves) is already bound, which is
// surfaced as [ErrExternalIDConflict] so the caller can re-read the mapping
// instead of duplicating it.
func (r *externalIDRepository) Bind(ctx context.Context, tenantID string, entityType models.EntityType, localID, externalID string) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, bindExternalID, tenantID, string(entityType), localID, externalID)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			log.Warn().
				Str("func", "externalIDRepository.Bind").
				Str("tenant_id", tenantID).
				Str("local_id", localID).
				Str("external_id", externalID).
				Msg("external id already bound")
			return ErrExternalIDConflict
		}

		log.Err(err).
			Str("func", "externalIDRepository.Bind").
			Str("tenant_id", tenantID).
			Str("local_id", localID).
			Str("external_id", externalID).
			Msg("failed to bind external id")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
