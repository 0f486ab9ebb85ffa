// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-entity-vc/internal/adapter"
	"github.com/MKhiriev/go-entity-vc/internal/config"
	"github.com/MKhiriev/go-entity-vc/internal/logger"
	"github.com/MKhiriev/go-entity-vc/internal/store"
	"github.com/MKhiriev/go-entity-vc/internal/utils"
	"github.com/MKhiriev/go-entity-vc/models"
)

// In-memory thread-safe fakes of the persistence and remote-store
// collaborators. Jobs fan work out over goroutines, so every fake locks.

type fakeEntityRepo struct {
	mu       sync.Mutex
	entities map[string]models.Entity // key: tenant|id
	uuid     *utils.UUIDGenerator
}

func newFakeEntityRepo() *fakeEntityRepo {
	return &fakeEntityRepo{entities: make(map[string]models.Entity), uuid: utils.NewUUIDGenerator()}
}

func (f *fakeEntityRepo) key(tenantID, id string) string { return tenantID + "|" + id }

func (f *fakeEntityRepo) put(entity models.Entity) models.Entity {
	f.mu.Lock()
	defer f.mu.Unlock()
	if entity.ID == "" {
		entity.ID = f.uuid.Generate()
	}
	f.entities[f.key(entity.TenantID, entity.ID)] = entity
	return entity
}

func (f *fakeEntityRepo) Find(_ context.Context, tenantID, localID string) (models.Entity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entity, ok := f.entities[f.key(tenantID, localID)]
	if !ok {
		return models.Entity{}, store.ErrEntityNotFound
	}
	return entity, nil
}

func (f *fakeEntityRepo) FindByName(_ context.Context, tenantID string, entityType models.EntityType, name string) (models.Entity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, entity := range f.entities {
		if entity.TenantID == tenantID && entity.Type == entityType && entity.Name == name {
			return entity, nil
		}
	}
	return models.Entity{}, store.ErrEntityNotFound
}

func (f *fakeEntityRepo) ListAll(_ context.Context, tenantID string, entityType models.EntityType) ([]models.Entity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Entity
	for _, entity := range f.entities {
		if entity.TenantID == tenantID && entity.Type == entityType {
			out = append(out, entity)
		}
	}
	return out, nil
}

func (f *fakeEntityRepo) ListByIDs(_ context.Context, tenantID string, entityType models.EntityType, localIDs []string) ([]models.Entity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Entity
	for _, id := range localIDs {
		entity, ok := f.entities[f.key(tenantID, id)]
		if ok && entity.Type == entityType {
			out = append(out, entity)
		}
	}
	return out, nil
}

func (f *fakeEntityRepo) Save(_ context.Context, entity models.Entity) (models.Entity, error) {
	return f.put(entity), nil
}

func (f *fakeEntityRepo) Delete(_ context.Context, tenantID, localID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entities, f.key(tenantID, localID))
	return nil
}

type fakeExternalIDRepo struct {
	mu         sync.Mutex
	byLocal    map[string]string // tenant|type|local -> external
	byExternal map[string]string // tenant|type|external -> local
}

func newFakeExternalIDRepo() *fakeExternalIDRepo {
	return &fakeExternalIDRepo{byLocal: make(map[string]string), byExternal: make(map[string]string)}
}

func (f *fakeExternalIDRepo) FindByLocal(_ context.Context, tenantID string, entityType models.EntityType, localID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	externalID, ok := f.byLocal[lockKey(tenantID, entityType, localID)]
	if !ok {
		return "", store.ErrMappingNotFound
	}
	return externalID, nil
}

func (f *fakeExternalIDRepo) FindByExternal(_ context.Context, tenantID string, entityType models.EntityType, externalID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	localID, ok := f.byExternal[lockKey(tenantID, entityType, externalID)]
	if !ok {
		return "", store.ErrMappingNotFound
	}
	return localID, nil
}

func (f *fakeExternalIDRepo) Bind(_ context.Context, tenantID string, entityType models.EntityType, localID, externalID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	localKey := lockKey(tenantID, entityType, localID)
	externalKey := lockKey(tenantID, entityType, externalID)
	if _, taken := f.byLocal[localKey]; taken {
		return store.ErrExternalIDConflict
	}
	if _, taken := f.byExternal[externalKey]; taken {
		return store.ErrExternalIDConflict
	}
	f.byLocal[localKey] = externalID
	f.byExternal[externalKey] = localID
	return nil
}

type fakeRelationRepo struct {
	mu    sync.Mutex
	edges []models.Relation
}

func newFakeRelationRepo() *fakeRelationRepo { return &fakeRelationRepo{} }

func (f *fakeRelationRepo) ListByEntity(_ context.Context, tenantID, entityID string) ([]models.Relation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Relation
	for _, edge := range f.edges {
		if edge.TenantID == tenantID && (edge.FromID == entityID || edge.ToID == entityID) {
			out = append(out, edge)
		}
	}
	return out, nil
}

func (f *fakeRelationRepo) ReplaceForEntity(_ context.Context, tenantID, entityID string, relations []models.Relation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.edges[:0]
	for _, edge := range f.edges {
		if edge.TenantID == tenantID && (edge.FromID == entityID || edge.ToID == entityID) {
			continue
		}
		kept = append(kept, edge)
	}
	f.edges = append(kept, relations...)
	return nil
}

type fakeAttributesRepo struct {
	mu     sync.Mutex
	scopes map[string]map[string]map[string]any // tenant|entity -> scope -> kv
}

func newFakeAttributesRepo() *fakeAttributesRepo {
	return &fakeAttributesRepo{scopes: make(map[string]map[string]map[string]any)}
}

func (f *fakeAttributesRepo) GetAll(_ context.Context, tenantID, entityID string) (map[string]map[string]any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.scopes[tenantID+"|"+entityID], nil
}

func (f *fakeAttributesRepo) SaveScope(_ context.Context, tenantID, entityID, scope string, attributes map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := tenantID + "|" + entityID
	if f.scopes[key] == nil {
		f.scopes[key] = make(map[string]map[string]any)
	}
	f.scopes[key][scope] = attributes
	return nil
}

type fakeCredentialsRepo struct {
	mu    sync.Mutex
	blobs map[string][]byte // tenant|device
}

func newFakeCredentialsRepo() *fakeCredentialsRepo {
	return &fakeCredentialsRepo{blobs: make(map[string][]byte)}
}

func (f *fakeCredentialsRepo) Get(_ context.Context, tenantID, deviceID string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	blob, ok := f.blobs[tenantID+"|"+deviceID]
	if !ok {
		return nil, store.ErrCredentialsNotFound
	}
	return blob, nil
}

func (f *fakeCredentialsRepo) Save(_ context.Context, tenantID, deviceID string, credentials []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.blobs[tenantID+"|"+deviceID] = credentials
	return nil
}

// fakeRemoteStore keeps per-tenant branches; a version holds exactly the
// documents committed into it.
type fakeRemoteStore struct {
	mu        sync.Mutex
	versions  map[string][]models.Version                    // tenant|branch -> newest first
	documents map[string]map[string]models.EntityDocument    // versionID -> type|external -> doc
	branchOf  map[string]string                              // versionID -> tenant|branch
	uuid      *utils.UUIDGenerator
}

func newFakeRemoteStore() *fakeRemoteStore {
	return &fakeRemoteStore{
		versions:  make(map[string][]models.Version),
		documents: make(map[string]map[string]models.EntityDocument),
		branchOf:  make(map[string]string),
		uuid:      utils.NewUUIDGenerator(),
	}
}

func (f *fakeRemoteStore) ListBranches(_ context.Context, tenantID string) ([]models.Branch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Branch
	prefix := tenantID + "|"
	for key := range f.versions {
		if len(key) > len(prefix) && key[:len(prefix)] == prefix {
			out = append(out, models.Branch{Name: key[len(prefix):]})
		}
	}
	return out, nil
}

func (f *fakeRemoteStore) Commit(_ context.Context, tenantID, branch, versionName string, documents []models.EntityDocument) (models.Version, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	version := models.Version{ID: f.uuid.Generate(), Name: versionName}
	byRef := make(map[string]models.EntityDocument, len(documents))
	for _, document := range documents {
		byRef[string(document.Ref.EntityType)+"|"+document.Ref.ExternalID] = document
	}

	key := tenantID + "|" + branch
	f.versions[key] = append([]models.Version{version}, f.versions[key]...)
	f.documents[version.ID] = byRef
	f.branchOf[version.ID] = key
	return version, nil
}

func (f *fakeRemoteStore) ListVersions(_ context.Context, tenantID, branch string, pageLink models.PageLink) (models.VersionPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	all, ok := f.versions[tenantID+"|"+branch]
	if !ok {
		return models.VersionPage{}, adapter.ErrBranchNotFound
	}

	start := pageLink.Page * pageLink.PageSize
	if start > len(all) {
		start = len(all)
	}
	end := start + pageLink.PageSize
	if end > len(all) {
		end = len(all)
	}

	return models.VersionPage{
		Versions:   all[start:end],
		TotalCount: len(all),
		HasNext:    end < len(all),
	}, nil
}

func (f *fakeRemoteStore) ListEntities(_ context.Context, _, versionID string, entityType models.EntityType) ([]models.EntityRef, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	byRef, ok := f.documents[versionID]
	if !ok {
		return nil, adapter.ErrVersionNotFound
	}

	var out []models.EntityRef
	for _, document := range byRef {
		if entityType != "" && document.Ref.EntityType != entityType {
			continue
		}
		out = append(out, document.Ref)
	}
	return out, nil
}

func (f *fakeRemoteStore) ReadDocument(_ context.Context, _, versionID string, ref models.EntityRef) (models.EntityDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	byRef, ok := f.documents[versionID]
	if !ok {
		return models.EntityDocument{}, adapter.ErrVersionNotFound
	}
	document, ok := byRef[string(ref.EntityType)+"|"+ref.ExternalID]
	if !ok {
		return models.EntityDocument{}, adapter.ErrDocumentNotFound
	}
	return document, nil
}

// putDocument plants a document directly into a version, bypassing Commit.
func (f *fakeRemoteStore) putDocument(versionID string, document models.EntityDocument) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.documents[versionID] == nil {
		f.documents[versionID] = make(map[string]models.EntityDocument)
	}
	f.documents[versionID][string(document.Ref.EntityType)+"|"+document.Ref.ExternalID] = document
}

// testEngine bundles a fully wired versionService over in-memory fakes.
type testEngine struct {
	svc       *versionService
	entities  *fakeEntityRepo
	mappings  *fakeExternalIDRepo
	relations *fakeRelationRepo
	attrs     *fakeAttributesRepo
	creds     *fakeCredentialsRepo
	remote    *fakeRemoteStore
}

func newTestEngine() *testEngine {
	engine := &testEngine{
		entities:  newFakeEntityRepo(),
		mappings:  newFakeExternalIDRepo(),
		relations: newFakeRelationRepo(),
		attrs:     newFakeAttributesRepo(),
		creds:     newFakeCredentialsRepo(),
		remote:    newFakeRemoteStore(),
	}

	repos := &store.Repositories{
		ExternalIDs: engine.mappings,
		Entities:    engine.entities,
		Relations:   engine.relations,
		Attributes:  engine.attrs,
		Credentials: engine.creds,
	}

	log := logger.Nop()
	jobs := NewJobTracker(config.Engine{}, log)
	engine.svc = NewVersionService(repos, engine.remote, jobs, config.Engine{WorkerCount: 2}, log).(*versionService)
	return engine
}

// externalIDOf fails loudly when the entity was never mapped.
func (e *testEngine) externalIDOf(tenantID string, entityType models.EntityType, localID string) (string, error) {
	externalID, err := e.mappings.FindByLocal(context.Background(), tenantID, entityType, localID)
	if err != nil {
		return "", fmt.Errorf("entity %s has no external id: %w", localID, err)
	}
	return externalID, nil
}
