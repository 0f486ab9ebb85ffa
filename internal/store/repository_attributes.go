package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-entity-vc/internal/logger"
)

// attributesRepository is the PostgreSQL-backed implementation of
// [AttributesRepository]. One row holds the full attribute map of one
// (entity, scope) pair as JSONB.
type attributesRepository struct {
	*DB
	logger *logger.Logger
}

// NewAttributesRepository constructs an [AttributesRepository] backed by the
// provided database connection and logger.
func NewAttributesRepository(db *DB, logger *logger.Logger) AttributesRepository {
	return &attributesRepository{
		DB:     db,
		logger: logger,
	}
}

// GetAll returns every attribute scope of the entity as scope → key → value.
// An entity without attributes yields an empty map.
func (r *attributesRepository) GetAll(ctx context.Context, tenantID, entityID string) (map[string]map[string]any, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getAttributesByEntity, tenantID, entityID)
	if err != nil {
		log.Err(err).
			Str("func", "attributesRepository.GetAll").
			Str("tenant_id", tenantID).
			Str("entity_id", entityID).
			Msg("failed to query entity attributes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	scopes := make(map[string]map[string]any)

	for rows.Next() {
		var scope string
		var rawAttributes []byte

		if scanErr := rows.Scan(&scope, &rawAttributes); scanErr != nil {
			log.Err(scanErr).
				Str("func", "attributesRepository.GetAll").
				Str("entity_id", entityID).
				Msg("failed to scan attributes row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		attributes := make(map[string]any)
		if len(rawAttributes) > 0 {
			if decodeErr := json.Unmarshal(rawAttributes, &attributes); decodeErr != nil {
				return nil, fmt.Errorf("%w: %w", ErrEncodingFields, decodeErr)
			}
		}

		scopes[scope] = attributes
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "attributesRepository.GetAll").
			Str("entity_id", entityID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return scopes, nil
}

// SaveScope upserts the full attribute map of one (entity, scope) pair.
func (r *attributesRepository) SaveScope(ctx context.Context, tenantID, entityID, scope string, attributes map[string]any) error {
	log := logger.FromContext(ctx)

	rawAttributes, err := json.Marshal(attributes)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingFields, err)
	}

	if _, err = r.DB.ExecContext(ctx, upsertAttributesScope, tenantID, entityID, scope, rawAttributes); err != nil {
		log.Err(err).
			Str("func", "attributesRepository.SaveScope").
			Str("tenant_id", tenantID).
			Str("entity_id", entityID).
			Str("scope", scope).
			Msg("failed to save attributes scope")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
