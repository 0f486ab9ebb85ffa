package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-entity-vc/internal/logger"
)

// credentialsRepository is the PostgreSQL-backed implementation of
// [CredentialsRepository]. The blob is opaque to the engine; it is carried
// into device documents verbatim when the export config asks for it.
type credentialsRepository struct {
	*DB
	logger *logger.Logger
}

// NewCredentialsRepository constructs a [CredentialsRepository] backed by the
// provided database connection and logger.
func NewCredentialsRepository(db *DB, logger *logger.Logger) CredentialsRepository {
	return &credentialsRepository{
		DB:     db,
		logger: logger,
	}
}

// Get returns the stored credentials blob of a device, or
// [ErrCredentialsNotFound].
func (r *credentialsRepository) Get(ctx context.Context, tenantID, deviceID string) ([]byte, error) {
	log := logger.FromContext(ctx)

	var credentials []byte
	err := r.DB.QueryRowContext(ctx, getDeviceCredentials, tenantID, deviceID).Scan(&credentials)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCredentialsNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "credentialsRepository.Get").
			Str("tenant_id", tenantID).
			Str("device_id", deviceID).
			Msg("failed to query device credentials")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return credentials, nil
}

// Save upserts the credentials blob of a device.
func (r *credentialsRepository) Save(ctx context.Context, tenantID, deviceID string, credentials []byte) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, upsertDeviceCredentials, tenantID, deviceID, credentials); err != nil {
		log.Err(err).
			Str("func", "credentialsRepository.Save").
			Str("tenant_id", tenantID).
			Str("device_id", deviceID).
			Msg("failed to save device credentials")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
