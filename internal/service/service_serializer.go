// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"maps"

	"github.com/MKhiriev/go-entity-vc/internal/logger"
	"github.com/MKhiriev/go-entity-vc/internal/store"
	"github.com/MKhiriev/go-entity-vc/internal/utils"
	"github.com/MKhiriev/go-entity-vc/models"
)

// handlerRegistry maps each supported entity type to the handler that knows
// how to export and restore it. Every plain type shares the base handler; the
// device type carries credentials on top.
type handlerRegistry map[models.EntityType]EntityHandler

// newHandlerRegistry wires a handler for every supported entity type.
func newHandlerRegistry(repos *store.Repositories, resolver ExternalIDResolver, log *logger.Logger) handlerRegistry {
	base := &baseEntityHandler{
		entities:   repos.Entities,
		relations:  repos.Relations,
		attributes: repos.Attributes,
		resolver:   resolver,
		uuid:       utils.NewUUIDGenerator(),
		logger:     log,
	}

	registry := make(handlerRegistry, len(models.SupportedEntityTypes))
	for _, entityType := range models.SupportedEntityTypes {
		registry[entityType] = base
	}
	registry[models.EntityTypeDevice] = &deviceEntityHandler{
		baseEntityHandler: base,
		credentials:       repos.Credentials,
	}

	return registry
}

func (r handlerRegistry) forType(entityType models.EntityType) (EntityHandler, error) {
	handler, ok := r[entityType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEntityType, entityType)
	}
	return handler, nil
}

// baseEntityHandler covers fields, relations and attributes, which every
// supported entity type shares.
type baseEntityHandler struct {
	entities   store.EntityRepository
	relations  store.RelationRepository
	attributes store.AttributesRepository
	resolver   ExternalIDResolver
	uuid       *utils.UUIDGenerator
	logger     *logger.Logger
}

// Export implements [EntityHandler].
func (h *baseEntityHandler) Export(ctx context.Context, tenantID string, entity models.Entity, cfg models.TypeExportConfig) (models.EntityDocument, error) {
	externalID, err := h.resolver.AssignOrReuse(ctx, tenantID, entity.Type, entity.ID)
	if err != nil {
		return models.EntityDocument{}, fmt.Errorf("assign external id for %s %s: %w", entity.Type, entity.ID, err)
	}

	document := models.EntityDocument{
		Ref: models.EntityRef{
			EntityType: entity.Type,
			ExternalID: externalID,
		},
		Name:   entity.Name,
		Fields: maps.Clone(entity.Fields),
	}

	if cfg.SaveRelations {
		document.Relations, err = h.exportRelations(ctx, tenantID, entity)
		if err != nil {
			return models.EntityDocument{}, err
		}
	}

	if cfg.SaveAttributes {
		document.Attributes, err = h.attributes.GetAll(ctx, tenantID, entity.ID)
		if err != nil {
			return models.EntityDocument{}, fmt.Errorf("export attributes of %s %s: %w", entity.Type, entity.ID, err)
		}
	}

	return document, nil
}

// exportRelations translates the entity's live edges into the exportable
// form: the far end becomes (entity type, external id). A far end that was
// never exported gets its external id minted here so the document never
// references a local id.
func (h *baseEntityHandler) exportRelations(ctx context.Context, tenantID string, entity models.Entity) ([]models.EntityRelation, error) {
	edges, err := h.relations.ListByEntity(ctx, tenantID, entity.ID)
	if err != nil {
		return nil, fmt.Errorf("list relations of %s %s: %w", entity.Type, entity.ID, err)
	}

	relations := make([]models.EntityRelation, 0, len(edges))
	for _, edge := range edges {
		relatedID := edge.ToID
		direction := models.RelationTo
		if edge.ToID == entity.ID {
			relatedID = edge.FromID
			direction = models.RelationFrom
		}

		related, err := h.entities.Find(ctx, tenantID, relatedID)
		if err != nil {
			return nil, fmt.Errorf("resolve relation endpoint %s: %w", relatedID, err)
		}

		relatedExternalID, err := h.resolver.AssignOrReuse(ctx, tenantID, related.Type, related.ID)
		if err != nil {
			return nil, fmt.Errorf("assign external id for relation endpoint %s: %w", relatedID, err)
		}

		relations = append(relations, models.EntityRelation{
			Direction:         direction,
			RelatedEntityType: related.Type,
			RelatedExternalID: relatedExternalID,
			RelationType:      edge.RelationType,
		})
	}

	return relations, nil
}

// Apply implements [EntityHandler]. Document fields replace the target's
// fields wholesale; a version restore is not a field-level merge.
func (h *baseEntityHandler) Apply(ctx context.Context, tenantID string, document models.EntityDocument, targetLocalID string, cfg models.TypeImportConfig) (models.Entity, error) {
	entity := models.Entity{
		ID:       targetLocalID,
		TenantID: tenantID,
		Type:     document.Ref.EntityType,
		Name:     document.Name,
		Fields:   maps.Clone(document.Fields),
	}

	created := targetLocalID == ""
	if created {
		entity.ID = h.uuid.Generate()
	}

	saved, err := h.entities.Save(ctx, entity)
	if err != nil {
		return models.Entity{}, fmt.Errorf("save %s %q: %w", entity.Type, entity.Name, err)
	}

	if created {
		if err = h.resolver.Bind(ctx, tenantID, saved.Type, saved.ID, document.Ref.ExternalID); err != nil {
			return models.Entity{}, fmt.Errorf("bind external id of created %s: %w", saved.Type, err)
		}
	}

	if cfg.LoadAttributes {
		for scope, kv := range document.Attributes {
			if err = h.attributes.SaveScope(ctx, tenantID, saved.ID, scope, kv); err != nil {
				return models.Entity{}, fmt.Errorf("restore %s attributes of %s: %w", scope, saved.ID, err)
			}
		}
	}

	return saved, nil
}

// ApplyRelations implements [EntityHandler].
func (h *baseEntityHandler) ApplyRelations(ctx context.Context, tenantID string, document models.EntityDocument, localID string) error {
	edges := make([]models.Relation, 0, len(document.Relations))
	for _, relation := range document.Relations {
		relatedID, err := h.resolver.FindLocal(ctx, tenantID, relation.RelatedEntityType, relation.RelatedExternalID)
		if errors.Is(err, store.ErrMappingNotFound) {
			return &UnresolvedReferenceError{Source: document.Ref.ExternalID, Target: relation.RelatedExternalID}
		}
		if err != nil {
			return fmt.Errorf("resolve relation target %s: %w", relation.RelatedExternalID, err)
		}

		edge := models.Relation{
			TenantID:     tenantID,
			FromID:       localID,
			ToID:         relatedID,
			RelationType: relation.RelationType,
		}
		if relation.Direction == models.RelationFrom {
			edge.FromID, edge.ToID = relatedID, localID
		}
		edges = append(edges, edge)
	}

	if err := h.relations.ReplaceForEntity(ctx, tenantID, localID, edges); err != nil {
		return fmt.Errorf("replace relations of %s: %w", localID, err)
	}

	return nil
}

// deviceEntityHandler adds credentials on top of the base behaviour.
type deviceEntityHandler struct {
	*baseEntityHandler
	credentials store.CredentialsRepository
}

// Export includes the device's credentials blob when the config asks for it.
// A device without stored credentials exports without the section.
func (h *deviceEntityHandler) Export(ctx context.Context, tenantID string, entity models.Entity, cfg models.TypeExportConfig) (models.EntityDocument, error) {
	document, err := h.baseEntityHandler.Export(ctx, tenantID, entity, cfg)
	if err != nil {
		return models.EntityDocument{}, err
	}

	if cfg.SaveCredentials {
		blob, err := h.credentials.Get(ctx, tenantID, entity.ID)
		if err != nil && !errors.Is(err, store.ErrCredentialsNotFound) {
			return models.EntityDocument{}, fmt.Errorf("export credentials of device %s: %w", entity.ID, err)
		}
		document.Credentials = blob
	}

	return document, nil
}

// Apply restores the credentials blob after the base behaviour.
func (h *deviceEntityHandler) Apply(ctx context.Context, tenantID string, document models.EntityDocument, targetLocalID string, cfg models.TypeImportConfig) (models.Entity, error) {
	saved, err := h.baseEntityHandler.Apply(ctx, tenantID, document, targetLocalID, cfg)
	if err != nil {
		return models.Entity{}, err
	}

	if cfg.LoadCredentials && len(document.Credentials) > 0 {
		if err = h.credentials.Save(ctx, tenantID, saved.ID, document.Credentials); err != nil {
			return models.Entity{}, fmt.Errorf("restore credentials of device %s: %w", saved.ID, err)
		}
	}

	return saved, nil
}
