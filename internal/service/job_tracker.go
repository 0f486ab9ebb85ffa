// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-entity-vc/internal/config"
	"github.com/MKhiriev/go-entity-vc/internal/logger"
	"github.com/MKhiriev/go-entity-vc/internal/utils"
	"github.com/MKhiriev/go-entity-vc/models"
)

const (
	defaultJobRetention   = time.Hour
	defaultJanitorSweep   = time.Minute
	defaultCreateTypeName = "create"
	defaultLoadTypeName   = "load"
)

// JobTracker runs create and load jobs asynchronously and keeps their
// statuses pollable by request id. A status stays {done:false} until the
// job's function returns; panics are recovered into a failed status so a
// submitted job always reaches a terminal state.
//
// Finished statuses are kept for the configured retention and then evicted
// by a background janitor, after which polling returns [ErrRequestNotFound].
type JobTracker struct {
	mu         sync.RWMutex
	creates    map[string]models.VersionCreateStatus
	loads      map[string]models.VersionLoadStatus
	finishedAt map[string]time.Time

	uuid      *utils.UUIDGenerator
	retention time.Duration
	sweep     time.Duration
	logger    *logger.Logger
}

// NewJobTracker constructs a tracker with the engine's retention settings.
func NewJobTracker(cfg config.Engine, log *logger.Logger) *JobTracker {
	retention := cfg.JobRetention
	if retention <= 0 {
		retention = defaultJobRetention
	}

	return &JobTracker{
		creates:    make(map[string]models.VersionCreateStatus),
		loads:      make(map[string]models.VersionLoadStatus),
		finishedAt: make(map[string]time.Time),
		uuid:       utils.NewUUIDGenerator(),
		retention:  retention,
		sweep:      defaultJanitorSweep,
		logger:     log,
	}
}

// StartCreate registers a pending create job, runs it on its own goroutine
// and returns the request id to poll with. The job runs detached from the
// submitting request's context: cancelling the HTTP request must not abort
// an export already in flight.
func (t *JobTracker) StartCreate(tenantID string, run func(ctx context.Context) models.VersionCreateStatus) string {
	requestID := t.uuid.Generate()

	t.mu.Lock()
	t.creates[requestID] = models.VersionCreateStatus{}
	t.mu.Unlock()

	go func() {
		status := t.runCreate(tenantID, requestID, run)
		status.Done = true

		t.mu.Lock()
		t.creates[requestID] = status
		t.finishedAt[requestID] = time.Now()
		t.mu.Unlock()
	}()

	return requestID
}

// StartLoad registers a pending load job, runs it on its own goroutine and
// returns the request id to poll with.
func (t *JobTracker) StartLoad(tenantID string, run func(ctx context.Context) models.VersionLoadStatus) string {
	requestID := t.uuid.Generate()

	t.mu.Lock()
	t.loads[requestID] = models.VersionLoadStatus{}
	t.mu.Unlock()

	go func() {
		status := t.runLoad(tenantID, requestID, run)
		status.Done = true

		t.mu.Lock()
		t.loads[requestID] = status
		t.finishedAt[requestID] = time.Now()
		t.mu.Unlock()
	}()

	return requestID
}

func (t *JobTracker) runCreate(tenantID, requestID string, run func(ctx context.Context) models.VersionCreateStatus) (status models.VersionCreateStatus) {
	defer func() {
		if r := recover(); r != nil {
			t.logJobPanic(defaultCreateTypeName, tenantID, requestID, r)
			status = models.VersionCreateStatus{Error: fmt.Sprintf("internal error: %v", r)}
		}
	}()

	return run(t.jobContext(tenantID, requestID))
}

func (t *JobTracker) runLoad(tenantID, requestID string, run func(ctx context.Context) models.VersionLoadStatus) (status models.VersionLoadStatus) {
	defer func() {
		if r := recover(); r != nil {
			t.logJobPanic(defaultLoadTypeName, tenantID, requestID, r)
			status = models.VersionLoadStatus{
				Error: &models.LoadError{Type: "INTERNAL", Message: fmt.Sprintf("internal error: %v", r)},
			}
		}
	}()

	return run(t.jobContext(tenantID, requestID))
}

// jobContext builds the detached context every job runs under: background
// lifetime, tenant id, and a logger carrying the request id.
func (t *JobTracker) jobContext(tenantID, requestID string) context.Context {
	log := t.logger.With().
		Str("request_id", requestID).
		Str("tenant_id", tenantID).
		Logger()

	ctx := context.WithValue(context.Background(), utils.TenantIDCtxKey, tenantID)
	return log.WithContext(ctx)
}

// GetCreateStatus returns the current status of a create job.
func (t *JobTracker) GetCreateStatus(requestID string) (models.VersionCreateStatus, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	status, ok := t.creates[requestID]
	if !ok {
		return models.VersionCreateStatus{}, ErrRequestNotFound
	}
	return status, nil
}

// GetLoadStatus returns the current status of a load job.
func (t *JobTracker) GetLoadStatus(requestID string) (models.VersionLoadStatus, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	status, ok := t.loads[requestID]
	if !ok {
		return models.VersionLoadStatus{}, ErrRequestNotFound
	}
	return status, nil
}

// Run starts the eviction janitor. Implements the background worker contract
// and returns immediately; the janitor lives for the process lifetime.
func (t *JobTracker) Run() {
	go func() {
		ticker := time.NewTicker(t.sweep)
		defer ticker.Stop()

		for range ticker.C {
			evicted := t.evictFinished(time.Now())
			if evicted > 0 {
				t.logger.Debug().
					Str("func", "JobTracker.Run").
					Int("evicted", evicted).
					Msg("evicted finished job statuses")
			}
		}
	}()
}

// evictFinished drops every finished status older than the retention window
// and returns how many were removed.
func (t *JobTracker) evictFinished(now time.Time) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	evicted := 0
	for requestID, finishedAt := range t.finishedAt {
		if now.Sub(finishedAt) < t.retention {
			continue
		}
		delete(t.creates, requestID)
		delete(t.loads, requestID)
		delete(t.finishedAt, requestID)
		evicted++
	}

	return evicted
}

func (t *JobTracker) logJobPanic(jobType, tenantID, requestID string, recovered any) {
	t.logger.Error().
		Str("func", "JobTracker.run").
		Str("job_type", jobType).
		Str("tenant_id", tenantID).
		Str("request_id", requestID).
		Any("panic", recovered).
		Msg("job panicked")
}
