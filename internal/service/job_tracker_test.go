// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-entity-vc/internal/config"
	"github.com/MKhiriev/go-entity-vc/internal/logger"
	"github.com/MKhiriev/go-entity-vc/internal/utils"
	"github.com/MKhiriev/go-entity-vc/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTracker(retention time.Duration) *JobTracker {
	return NewJobTracker(config.Engine{JobRetention: retention}, logger.Nop())
}

func TestJobTracker_CreateLifecycle(t *testing.T) {
	tracker := newTestTracker(time.Hour)
	release := make(chan struct{})

	requestID := tracker.StartCreate("tenant-1", func(ctx context.Context) models.VersionCreateStatus {
		<-release
		return models.VersionCreateStatus{Version: &models.Version{ID: "v-1"}, Added: 3}
	})
	require.NotEmpty(t, requestID)

	// Still running: pollable, not done.
	status, err := tracker.GetCreateStatus(requestID)
	require.NoError(t, err)
	assert.False(t, status.Done)

	close(release)
	require.Eventually(t, func() bool {
		status, err = tracker.GetCreateStatus(requestID)
		return err == nil && status.Done
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, 3, status.Added)
	require.NotNil(t, status.Version)
	assert.Equal(t, "v-1", status.Version.ID)
}

func TestJobTracker_LoadLifecycle(t *testing.T) {
	tracker := newTestTracker(time.Hour)

	requestID := tracker.StartLoad("tenant-1", func(ctx context.Context) models.VersionLoadStatus {
		return models.VersionLoadStatus{Results: []models.EntityTypeLoadResult{
			{EntityType: models.EntityTypeDevice, Created: 2},
		}}
	})

	var status models.VersionLoadStatus
	require.Eventually(t, func() bool {
		var err error
		status, err = tracker.GetLoadStatus(requestID)
		return err == nil && status.Done
	}, time.Second, 5*time.Millisecond)

	require.Len(t, status.Results, 1)
	assert.Equal(t, 2, status.Results[0].Created)
	assert.Nil(t, status.Error)
}

func TestJobTracker_JobContextCarriesTenant(t *testing.T) {
	tracker := newTestTracker(time.Hour)

	got := make(chan string, 1)
	tracker.StartCreate("tenant-42", func(ctx context.Context) models.VersionCreateStatus {
		tenantID, _ := utils.GetTenantIDFromContext(ctx)
		got <- tenantID
		return models.VersionCreateStatus{}
	})

	select {
	case tenantID := <-got:
		assert.Equal(t, "tenant-42", tenantID)
	case <-time.After(time.Second):
		t.Fatal("job never ran")
	}
}

func TestJobTracker_PanicBecomesFailedStatus(t *testing.T) {
	tracker := newTestTracker(time.Hour)

	requestID := tracker.StartCreate("tenant-1", func(ctx context.Context) models.VersionCreateStatus {
		panic("boom")
	})

	var status models.VersionCreateStatus
	require.Eventually(t, func() bool {
		var err error
		status, err = tracker.GetCreateStatus(requestID)
		return err == nil && status.Done
	}, time.Second, 5*time.Millisecond)

	assert.Contains(t, status.Error, "boom")
	assert.Nil(t, status.Version)
}

func TestJobTracker_UnknownRequest(t *testing.T) {
	tracker := newTestTracker(time.Hour)

	_, err := tracker.GetCreateStatus("no-such-request")
	assert.ErrorIs(t, err, ErrRequestNotFound)

	_, err = tracker.GetLoadStatus("no-such-request")
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestJobTracker_EvictsFinishedAfterRetention(t *testing.T) {
	tracker := newTestTracker(time.Minute)

	requestID := tracker.StartCreate("tenant-1", func(ctx context.Context) models.VersionCreateStatus {
		return models.VersionCreateStatus{}
	})

	require.Eventually(t, func() bool {
		status, err := tracker.GetCreateStatus(requestID)
		return err == nil && status.Done
	}, time.Second, 5*time.Millisecond)

	// Within retention nothing is evicted.
	assert.Zero(t, tracker.evictFinished(time.Now()))
	_, err := tracker.GetCreateStatus(requestID)
	assert.NoError(t, err)

	// Past retention the status disappears.
	assert.Equal(t, 1, tracker.evictFinished(time.Now().Add(2*time.Minute)))
	_, err = tracker.GetCreateStatus(requestID)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestJobTracker_RunningJobIsNeverEvicted(t *testing.T) {
	tracker := newTestTracker(time.Minute)
	release := make(chan struct{})
	defer close(release)

	requestID := tracker.StartCreate("tenant-1", func(ctx context.Context) models.VersionCreateStatus {
		<-release
		return models.VersionCreateStatus{}
	})

	assert.Zero(t, tracker.evictFinished(time.Now().Add(time.Hour)))
	_, err := tracker.GetCreateStatus(requestID)
	assert.NoError(t, err)
}
