package service

import (
	"github.com/MKhiriev/go-entity-vc/internal/adapter"
	"github.com/MKhiriev/go-entity-vc/internal/config"
	"github.com/MKhiriev/go-entity-vc/internal/logger"
	"github.com/MKhiriev/go-entity-vc/internal/store"
)

// Services aggregates the engine's service layer. JobTracker is exposed
// separately so the application can register its eviction janitor with the
// background workers.
type Services struct {
	VersionService VersionService
	JobTracker     *JobTracker
}

func NewServices(repositories *store.Repositories, remote adapter.RemoteStore, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	jobs := NewJobTracker(cfg.Engine, logger)

	return &Services{
		VersionService: NewVersionService(repositories, remote, jobs, cfg.Engine, logger),
		JobTracker:     jobs,
	}
}
