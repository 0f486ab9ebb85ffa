package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-entity-vc/internal/logger"
	"github.com/MKhiriev/go-entity-vc/models"
)

// relationRepository is the PostgreSQL-backed implementation of
// [RelationRepository]. Edges are stored between local entity ids; the
// serializer translates endpoints to external ids at export time.
type relationRepository struct {
	*DB
	logger *logger.Logger
}

// NewRelationRepository constructs a [RelationRepository] backed by the
// provided database connection and logger.
func NewRelationRepository(db *DB, logger *logger.Logger) RelationRepository {
	return &relationRepository{
		DB:     db,
		logger: logger,
	}
}

// ListByEntity returns every relation edge where entityID is either the
// source or the target.
func (r *relationRepository) ListByEntity(ctx context.Context, tenantID, entityID string) ([]models.Relation, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listRelationsByEntity, tenantID, entityID)
	if err != nil {
		log.Err(err).
			Str("func", "relationRepository.ListByEntity").
			Str("tenant_id", tenantID).
			Str("entity_id", entityID).
			Msg("failed to query entity relations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	relations := make([]models.Relation, 0, 8)

	for rows.Next() {
		var relation models.Relation

		if scanErr := rows.Scan(&relation.TenantID, &relation.FromID, &relation.ToID, &relation.RelationType); scanErr != nil {
			log.Err(scanErr).
				Str("func", "relationRepository.ListByEntity").
				Str("entity_id", entityID).
				Msg("failed to scan relation row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		relations = append(relations, relation)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "relationRepository.ListByEntity").
			Str("entity_id", entityID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return relations, nil
}

// ReplaceForEntity atomically replaces every edge touching entityID with the
// given set. The delete and the inserts run inside one transaction so a
// half-replaced relation set is never observable.
func (r *relationRepository) ReplaceForEntity(ctx context.Context, tenantID, entityID string, relations []models.Relation) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "relationRepository.ReplaceForEntity").
			Str("entity_id", entityID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteRelationsByEntity, tenantID, entityID); err != nil {
		log.Err(err).
			Str("func", "relationRepository.ReplaceForEntity").
			Str("entity_id", entityID).
			Msg("failed to delete existing relations")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	for _, relation := range relations {
		if _, err = tx.ExecContext(ctx, insertRelation, tenantID, relation.FromID, relation.ToID, relation.RelationType); err != nil {
			log.Err(err).
				Str("func", "relationRepository.ReplaceForEntity").
				Str("entity_id", entityID).
				Str("from_id", relation.FromID).
				Str("to_id", relation.ToID).
				Msg("failed to insert relation")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "relationRepository.ReplaceForEntity").
			Str("entity_id", entityID).
			Int("relations_count", len(relations)).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}
