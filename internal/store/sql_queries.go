package store

import (
	"github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-entity-vc/models"
)

const (
	findExternalIDByLocal = `SELECT external_id
		FROM external_ids
		WHERE tenant_id = $1 AND entity_type = $2 AND local_id = $3;`

	findLocalIDByExternal = `SELECT local_id
		FROM external_ids
		WHERE tenant_id = $1 AND entity_type = $2 AND external_id = $3;`

	bindExternalID = `INSERT INTO external_ids (tenant_id, entity_type, local_id, external_id)
		VALUES ($1, $2, $3, $4);`

	findEntityByID = `SELECT id, tenant_id, entity_type, name, fields, created_at, updated_at
		FROM entities
		WHERE tenant_id = $1 AND id = $2;`

	findEntityByName = `SELECT id, tenant_id, entity_type, name, fields, created_at, updated_at
		FROM entities
		WHERE tenant_id = $1 AND entity_type = $2 AND name = $3;`

	upsertEntity = `INSERT INTO entities (id, tenant_id, entity_type, name, fields, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, fields = EXCLUDED.fields, updated_at = NOW()
		RETURNING id, tenant_id, entity_type, name, fields, created_at, updated_at;`

	deleteEntity = `DELETE FROM entities
		WHERE tenant_id = $1 AND id = $2;`

	listRelationsByEntity = `SELECT tenant_id, from_id, to_id, relation_type
		FROM entity_relations
		WHERE tenant_id = $1 AND (from_id = $2 OR to_id = $2);`

	deleteRelationsByEntity = `DELETE FROM entity_relations
		WHERE tenant_id = $1 AND (from_id = $2 OR to_id = $2);`

	insertRelation = `INSERT INTO entity_relations (tenant_id, from_id, to_id, relation_type)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT DO NOTHING;`

	getAttributesByEntity = `SELECT scope, attributes
		FROM entity_attributes
		WHERE tenant_id = $1 AND entity_id = $2;`

	upsertAttributesScope = `INSERT INTO entity_attributes (tenant_id, entity_id, scope, attributes, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (tenant_id, entity_id, scope) DO UPDATE
		SET attributes = EXCLUDED.attributes, updated_at = NOW();`

	getDeviceCredentials = `SELECT credentials
		FROM device_credentials
		WHERE tenant_id = $1 AND device_id = $2;`

	upsertDeviceCredentials = `INSERT INTO device_credentials (tenant_id, device_id, credentials, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (tenant_id, device_id) DO UPDATE
		SET credentials = EXCLUDED.credentials, updated_at = NOW();`
)

// psql is the squirrel statement builder configured for PostgreSQL
// placeholders. Used for the queries whose WHERE clause depends on the
// request (id filters, type filters).
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// buildListEntitiesQuery builds a SELECT over the entities table filtered by
// tenant and entity type, optionally narrowed to an explicit id list.
func buildListEntitiesQuery(tenantID string, entityType models.EntityType, localIDs []string) (string, []any, error) {
	builder := psql.
		Select("id", "tenant_id", "entity_type", "name", "fields", "created_at", "updated_at").
		From("entities").
		Where(squirrel.Eq{"tenant_id": tenantID, "entity_type": string(entityType)}).
		OrderBy("created_at")

	if len(localIDs) > 0 {
		builder = builder.Where(squirrel.Eq{"id": localIDs})
	}

	return builder.ToSql()
}
