// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/MKhiriev/go-entity-vc/models"
	"github.com/stretchr/testify/assert"
)

func TestValidateCreateRequest(t *testing.T) {
	valid := models.VersionCreateRequest{
		Type:        models.CreateRequestComplex,
		Branch:      "main",
		VersionName: "release-1",
		EntityTypes: map[models.EntityType]models.TypeExportConfig{
			models.EntityTypeDevice: {AllEntities: true},
		},
	}

	tests := []struct {
		name    string
		mutate  func(r *models.VersionCreateRequest)
		wantErr error
	}{
		{
			name:   "valid complex request",
			mutate: func(r *models.VersionCreateRequest) {},
		},
		{
			name: "valid single-entity request",
			mutate: func(r *models.VersionCreateRequest) {
				r.Type = models.CreateRequestSingleEntity
				r.EntityTypes = nil
				r.EntityType = models.EntityTypeDevice
				r.EntityID = "dev-1"
			},
		},
		{
			name:    "missing branch",
			mutate:  func(r *models.VersionCreateRequest) { r.Branch = "" },
			wantErr: ErrValidation,
		},
		{
			name:    "missing version name",
			mutate:  func(r *models.VersionCreateRequest) { r.VersionName = "" },
			wantErr: ErrValidation,
		},
		{
			name:    "unknown request type",
			mutate:  func(r *models.VersionCreateRequest) { r.Type = "BULK" },
			wantErr: ErrValidation,
		},
		{
			name:    "invalid default strategy",
			mutate:  func(r *models.VersionCreateRequest) { r.DefaultSyncStrategy = "UPSERT" },
			wantErr: ErrValidation,
		},
		{
			name: "empty type map",
			mutate: func(r *models.VersionCreateRequest) {
				r.EntityTypes = map[models.EntityType]models.TypeExportConfig{}
			},
			wantErr: ErrValidation,
		},
		{
			name: "unsupported entity type in map",
			mutate: func(r *models.VersionCreateRequest) {
				r.EntityTypes = map[models.EntityType]models.TypeExportConfig{
					"TENANT": {AllEntities: true},
				}
			},
			wantErr: ErrUnsupportedEntityType,
		},
		{
			name: "type selects neither all nor explicit ids",
			mutate: func(r *models.VersionCreateRequest) {
				r.EntityTypes = map[models.EntityType]models.TypeExportConfig{
					models.EntityTypeDevice: {},
				}
			},
			wantErr: ErrValidation,
		},
		{
			name: "invalid per-type strategy",
			mutate: func(r *models.VersionCreateRequest) {
				r.EntityTypes = map[models.EntityType]models.TypeExportConfig{
					models.EntityTypeDevice: {AllEntities: true, SyncStrategy: "REPLACE"},
				}
			},
			wantErr: ErrValidation,
		},
		{
			name: "single entity without id",
			mutate: func(r *models.VersionCreateRequest) {
				r.Type = models.CreateRequestSingleEntity
				r.EntityType = models.EntityTypeDevice
			},
			wantErr: ErrValidation,
		},
		{
			name: "single entity with unsupported type",
			mutate: func(r *models.VersionCreateRequest) {
				r.Type = models.CreateRequestSingleEntity
				r.EntityType = "TENANT"
				r.EntityID = "x"
			},
			wantErr: ErrUnsupportedEntityType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := valid
			tt.mutate(&request)

			err := validateCreateRequest(request)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateLoadRequest(t *testing.T) {
	valid := models.VersionLoadRequest{
		Type:      models.LoadRequestEntityType,
		Branch:    "main",
		VersionID: "v-1",
		EntityTypes: map[models.EntityType]models.TypeImportConfig{
			models.EntityTypeDevice: {},
		},
	}

	tests := []struct {
		name    string
		mutate  func(r *models.VersionLoadRequest)
		wantErr error
	}{
		{
			name:   "valid entity-type request",
			mutate: func(r *models.VersionLoadRequest) {},
		},
		{
			name: "valid single-entity request",
			mutate: func(r *models.VersionLoadRequest) {
				r.Type = models.LoadRequestSingleEntity
				r.EntityTypes = nil
				r.EntityType = models.EntityTypeAsset
				r.ExternalEntityID = "ext-1"
			},
		},
		{
			name:    "missing branch",
			mutate:  func(r *models.VersionLoadRequest) { r.Branch = "" },
			wantErr: ErrValidation,
		},
		{
			name:    "missing version id",
			mutate:  func(r *models.VersionLoadRequest) { r.VersionID = "" },
			wantErr: ErrValidation,
		},
		{
			name:    "unknown request type",
			mutate:  func(r *models.VersionLoadRequest) { r.Type = "FULL" },
			wantErr: ErrValidation,
		},
		{
			name: "empty type map",
			mutate: func(r *models.VersionLoadRequest) {
				r.EntityTypes = map[models.EntityType]models.TypeImportConfig{}
			},
			wantErr: ErrValidation,
		},
		{
			name: "unsupported entity type",
			mutate: func(r *models.VersionLoadRequest) {
				r.EntityTypes = map[models.EntityType]models.TypeImportConfig{"ALARM": {}}
			},
			wantErr: ErrUnsupportedEntityType,
		},
		{
			name: "single entity without external id",
			mutate: func(r *models.VersionLoadRequest) {
				r.Type = models.LoadRequestSingleEntity
				r.EntityType = models.EntityTypeAsset
			},
			wantErr: ErrValidation,
		},
		{
			name: "single entity cannot remove others",
			mutate: func(r *models.VersionLoadRequest) {
				r.Type = models.LoadRequestSingleEntity
				r.EntityType = models.EntityTypeAsset
				r.ExternalEntityID = "ext-1"
				r.Config = &models.TypeImportConfig{RemoveOtherEntities: true}
			},
			wantErr: ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := valid
			tt.mutate(&request)

			err := validateLoadRequest(request)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
