// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-entity-vc/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRemoteStore(t *testing.T, serverURL string) RemoteStore {
	t.Helper()
	return NewHTTPRemoteStore(HTTPClientConfig{BaseURL: serverURL, Timeout: 5 * time.Second})
}

// ── ListBranches ────────────────────────────────────────────────────────────

func TestListBranches_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/repo/tenant-1/branches", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Branch{
			{Name: "main", Default: true},
			{Name: "staging"},
		})
	}))
	defer srv.Close()

	remote := newTestRemoteStore(t, srv.URL)
	branches, err := remote.ListBranches(context.Background(), "tenant-1")

	require.NoError(t, err)
	require.Len(t, branches, 2)
	assert.True(t, branches[0].Default)
}

// ── Commit ──────────────────────────────────────────────────────────────────

func TestCommit_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/repo/tenant-1/commit", r.URL.Path)

		var request commitRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, "main", request.Branch)
		assert.Len(t, request.Documents, 1)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Version{ID: "v-1", Name: request.VersionName})
	}))
	defer srv.Close()

	remote := newTestRemoteStore(t, srv.URL)
	version, err := remote.Commit(context.Background(), "tenant-1", "main", "release-1", []models.EntityDocument{
		{Ref: models.EntityRef{EntityType: models.EntityTypeDevice, ExternalID: "ext-1"}, Name: "Sensor-1"},
	})

	require.NoError(t, err)
	assert.Equal(t, "v-1", version.ID)
	assert.Equal(t, "release-1", version.Name)
}

func TestCommit_RemoteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("storage unavailable"))
	}))
	defer srv.Close()

	remote := newTestRemoteStore(t, srv.URL)
	_, err := remote.Commit(context.Background(), "tenant-1", "main", "release-1", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemoteStore)
}

// ── ListVersions ────────────────────────────────────────────────────────────

func TestListVersions_PassesPagination(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "main", r.URL.Query().Get("branch"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("page_size"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.VersionPage{TotalCount: 25, HasNext: true})
	}))
	defer srv.Close()

	remote := newTestRemoteStore(t, srv.URL)
	page, err := remote.ListVersions(context.Background(), "tenant-1", "main", models.PageLink{Page: 2, PageSize: 10})

	require.NoError(t, err)
	assert.Equal(t, 25, page.TotalCount)
	assert.True(t, page.HasNext)
}

func TestListVersions_BranchNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("branch not found"))
	}))
	defer srv.Close()

	remote := newTestRemoteStore(t, srv.URL)
	_, err := remote.ListVersions(context.Background(), "tenant-1", "ghost", models.PageLink{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBranchNotFound)
}

// ── ReadDocument ────────────────────────────────────────────────────────────

func TestReadDocument_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/repo/tenant-1/versions/v-1/document", r.URL.Path)
		assert.Equal(t, "DEVICE", r.URL.Query().Get("entity_type"))
		assert.Equal(t, "ext-1", r.URL.Query().Get("external_id"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.EntityDocument{
			Ref:  models.EntityRef{EntityType: models.EntityTypeDevice, ExternalID: "ext-1"},
			Name: "Sensor-1",
		})
	}))
	defer srv.Close()

	remote := newTestRemoteStore(t, srv.URL)
	document, err := remote.ReadDocument(context.Background(), "tenant-1", "v-1",
		models.EntityRef{EntityType: models.EntityTypeDevice, ExternalID: "ext-1"})

	require.NoError(t, err)
	assert.Equal(t, "Sensor-1", document.Name)
}

func TestReadDocument_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("entity document not found at version"))
	}))
	defer srv.Close()

	remote := newTestRemoteStore(t, srv.URL)
	_, err := remote.ReadDocument(context.Background(), "tenant-1", "v-1",
		models.EntityRef{EntityType: models.EntityTypeDevice, ExternalID: "ext-missing"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

// ── ListEntities ────────────────────────────────────────────────────────────

func TestListEntities_FiltersByType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ASSET", r.URL.Query().Get("entity_type"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.EntityRef{
			{EntityType: models.EntityTypeAsset, ExternalID: "ext-a1"},
		})
	}))
	defer srv.Close()

	remote := newTestRemoteStore(t, srv.URL)
	refs, err := remote.ListEntities(context.Background(), "tenant-1", "v-1", models.EntityTypeAsset)

	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, "ext-a1", refs[0].ExternalID)
}
