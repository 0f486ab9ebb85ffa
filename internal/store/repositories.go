package store

import "github.com/MKhiriev/go-entity-vc/internal/logger"

// Repositories aggregates every persistence-layer dependency of the engine.
type Repositories struct {
	ExternalIDs ExternalIDRepository
	Entities    EntityRepository
	Relations   RelationRepository
	Attributes  AttributesRepository
	Credentials CredentialsRepository
}

// NewRepositories wires all PostgreSQL repositories onto one shared
// connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		ExternalIDs: NewExternalIDRepository(db, logger),
		Entities:    NewEntityRepository(db, logger),
		Relations:   NewRelationRepository(db, logger),
		Attributes:  NewAttributesRepository(db, logger),
		Credentials: NewCredentialsRepository(db, logger),
	}
}
