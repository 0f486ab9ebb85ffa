package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-entity-vc/internal/logger"
	"github.com/MKhiriev/go-entity-vc/models"
	"github.com/jackc/pgerrcode"
)

// entityRepository is the PostgreSQL-backed implementation of
// [EntityRepository]. One instance serves every supported entity type; rows
// are discriminated by the entity_type column and the opaque type-specific
// payload lives in the fields JSONB column.
type entityRepository struct {
	*DB
	logger *logger.Logger
}

// NewEntityRepository constructs an [EntityRepository] backed by the provided
// database connection and logger.
func NewEntityRepository(db *DB, logger *logger.Logger) EntityRepository {
	return &entityRepository{
		DB:     db,
		logger: logger,
	}
}

// Find retrieves one entity by its local id.
//
// Returns [ErrEntityNotFound] when no row matches.
func (r *entityRepository) Find(ctx context.Context, tenantID, localID string) (models.Entity, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, findEntityByID, tenantID, localID)

	entity, err := scanEntity(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Entity{}, ErrEntityNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "entityRepository.Find").
			Str("tenant_id", tenantID).
			Str("local_id", localID).
			Msg("failed to find entity")
		return models.Entity{}, err
	}

	return entity, nil
}

// FindByName retrieves one entity by its tenant-unique (type, name) pair.
//
// Returns [ErrEntityNotFound] when no row matches.
func (r *entityRepository) FindByName(ctx context.Context, tenantID string, entityType models.EntityType, name string) (models.Entity, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, findEntityByName, tenantID, string(entityType), name)

	entity, err := scanEntity(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Entity{}, ErrEntityNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "entityRepository.FindByName").
			Str("tenant_id", tenantID).
			Str("entity_type", string(entityType)).
			Str("name", name).
			Msg("failed to find entity by name")
		return models.Entity{}, err
	}

	return entity, nil
}

// ListAll retrieves every entity of the given type owned by the tenant,
// ordered by creation time.
func (r *entityRepository) ListAll(ctx context.Context, tenantID string, entityType models.EntityType) ([]models.Entity, error) {
	return r.ListByIDs(ctx, tenantID, entityType, nil)
}

// ListByIDs retrieves the entities of the given type whose local ids are
// listed. An empty id list means "all entities of the type".
func (r *entityRepository) ListByIDs(ctx context.Context, tenantID string, entityType models.EntityType, localIDs []string) ([]models.Entity, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListEntitiesQuery(tenantID, entityType, localIDs)
	if err != nil {
		log.Err(err).
			Str("func", "entityRepository.ListByIDs").
			Str("tenant_id", tenantID).
			Str("entity_type", string(entityType)).
			Msg("failed to build list entities query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "entityRepository.ListByIDs").
			Str("tenant_id", tenantID).
			Str("entity_type", string(entityType)).
			Int("ids_count", len(localIDs)).
			Msg("failed to execute list entities query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entities := make([]models.Entity, 0, 50)

	for rows.Next() {
		entity, scanErr := scanEntity(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "entityRepository.ListByIDs").
				Str("tenant_id", tenantID).
				Msg("failed to scan entity row")
			return nil, scanErr
		}

		entities = append(entities, entity)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "entityRepository.ListByIDs").
			Str("tenant_id", tenantID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entities, nil
}

// Save upserts the entity and returns the canonical database representation
// (server-assigned timestamps included).
//
// A unique violation on the (tenant, type, name) index is surfaced as
// [ErrEntityNameTaken].
func (r *entityRepository) Save(ctx context.Context, entity models.Entity) (models.Entity, error) {
	log := logger.FromContext(ctx)

	fields, err := json.Marshal(entity.Fields)
	if err != nil {
		log.Err(err).
			Str("func", "entityRepository.Save").
			Str("entity_id", entity.ID).
			Msg("failed to marshal entity fields")
		return models.Entity{}, fmt.Errorf("%w: %w", ErrEncodingFields, err)
	}

	row := r.DB.QueryRowContext(ctx, upsertEntity, entity.ID, entity.TenantID, string(entity.Type), entity.Name, fields)

	saved, err := scanEntity(row)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Entity{}, ErrEntityNameTaken
		}

		log.Err(err).
			Str("func", "entityRepository.Save").
			Str("entity_id", entity.ID).
			Str("tenant_id", entity.TenantID).
			Msg("failed to save entity")
		return models.Entity{}, err
	}

	return saved, nil
}

// Delete removes the entity row. Deleting a missing entity is a no-op.
func (r *entityRepository) Delete(ctx context.Context, tenantID, localID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteEntity, tenantID, localID); err != nil {
		log.Err(err).
			Str("func", "entityRepository.Delete").
			Str("tenant_id", tenantID).
			Str("local_id", localID).
			Msg("failed to delete entity")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for [scanEntity].
type rowScanner interface {
	Scan(dest ...any) error
}

// scanEntity scans one entities row, decoding the JSONB fields column into
// the opaque field map.
func scanEntity(row rowScanner) (models.Entity, error) {
	var entity models.Entity
	var rawFields []byte

	if err := row.Scan(
		&entity.ID,
		&entity.TenantID,
		&entity.Type,
		&entity.Name,
		&rawFields,
		&entity.CreatedAt,
		&entity.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Entity{}, err
		}
		return models.Entity{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if len(rawFields) > 0 {
		if err := json.Unmarshal(rawFields, &entity.Fields); err != nil {
			return models.Entity{}, fmt.Errorf("%w: %w", ErrEncodingFields, err)
		}
	}

	return entity, nil
}
