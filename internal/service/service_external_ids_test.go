// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-entity-vc/internal/logger"
	"github.com/MKhiriev/go-entity-vc/internal/mock"
	"github.com/MKhiriev/go-entity-vc/internal/store"
	"github.com/MKhiriev/go-entity-vc/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExternalIDResolver_AssignOrReuse_ReusesExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	mappings := mock.NewMockExternalIDRepository(ctrl)
	resolver := NewExternalIDResolver(mappings, logger.Nop())

	mappings.EXPECT().
		FindByLocal(gomock.Any(), "tenant-1", models.EntityTypeDevice, "dev-1").
		Return("ext-1", nil)

	externalID, err := resolver.AssignOrReuse(context.Background(), "tenant-1", models.EntityTypeDevice, "dev-1")

	require.NoError(t, err)
	assert.Equal(t, "ext-1", externalID)
}

func TestExternalIDResolver_AssignOrReuse_MintsAndBinds(t *testing.T) {
	ctrl := gomock.NewController(t)
	mappings := mock.NewMockExternalIDRepository(ctrl)
	resolver := NewExternalIDResolver(mappings, logger.Nop())

	var minted string
	mappings.EXPECT().
		FindByLocal(gomock.Any(), "tenant-1", models.EntityTypeDevice, "dev-1").
		Return("", store.ErrMappingNotFound)
	mappings.EXPECT().
		Bind(gomock.Any(), "tenant-1", models.EntityTypeDevice, "dev-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ models.EntityType, _, externalID string) error {
			minted = externalID
			return nil
		})

	externalID, err := resolver.AssignOrReuse(context.Background(), "tenant-1", models.EntityTypeDevice, "dev-1")

	require.NoError(t, err)
	assert.NotEmpty(t, externalID)
	assert.Equal(t, minted, externalID)
}

func TestExternalIDResolver_AssignOrReuse_LostRaceFallsBackToWinner(t *testing.T) {
	ctrl := gomock.NewController(t)
	mappings := mock.NewMockExternalIDRepository(ctrl)
	resolver := NewExternalIDResolver(mappings, logger.Nop())

	gomock.InOrder(
		mappings.EXPECT().
			FindByLocal(gomock.Any(), "tenant-1", models.EntityTypeAsset, "asset-1").
			Return("", store.ErrMappingNotFound),
		mappings.EXPECT().
			Bind(gomock.Any(), "tenant-1", models.EntityTypeAsset, "asset-1", gomock.Any()).
			Return(store.ErrExternalIDConflict),
		mappings.EXPECT().
			FindByLocal(gomock.Any(), "tenant-1", models.EntityTypeAsset, "asset-1").
			Return("ext-winner", nil),
	)

	externalID, err := resolver.AssignOrReuse(context.Background(), "tenant-1", models.EntityTypeAsset, "asset-1")

	require.NoError(t, err)
	assert.Equal(t, "ext-winner", externalID)
}

func TestExternalIDResolver_Bind_IdenticalPairIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	mappings := mock.NewMockExternalIDRepository(ctrl)
	resolver := NewExternalIDResolver(mappings, logger.Nop())

	mappings.EXPECT().
		FindByExternal(gomock.Any(), "tenant-1", models.EntityTypeDevice, "ext-1").
		Return("dev-1", nil)

	err := resolver.Bind(context.Background(), "tenant-1", models.EntityTypeDevice, "dev-1", "ext-1")
	assert.NoError(t, err)
}

func TestExternalIDResolver_Bind_ConflictingPairFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	mappings := mock.NewMockExternalIDRepository(ctrl)
	resolver := NewExternalIDResolver(mappings, logger.Nop())

	mappings.EXPECT().
		FindByExternal(gomock.Any(), "tenant-1", models.EntityTypeDevice, "ext-1").
		Return("dev-other", nil)

	err := resolver.Bind(context.Background(), "tenant-1", models.EntityTypeDevice, "dev-1", "ext-1")
	assert.ErrorIs(t, err, store.ErrExternalIDConflict)
}

func TestExternalIDResolver_Bind_NewPair(t *testing.T) {
	ctrl := gomock.NewController(t)
	mappings := mock.NewMockExternalIDRepository(ctrl)
	resolver := NewExternalIDResolver(mappings, logger.Nop())

	gomock.InOrder(
		mappings.EXPECT().
			FindByExternal(gomock.Any(), "tenant-1", models.EntityTypeDevice, "ext-1").
			Return("", store.ErrMappingNotFound),
		mappings.EXPECT().
			Bind(gomock.Any(), "tenant-1", models.EntityTypeDevice, "dev-1", "ext-1").
			Return(nil),
	)

	err := resolver.Bind(context.Background(), "tenant-1", models.EntityTypeDevice, "dev-1", "ext-1")
	assert.NoError(t, err)
}
