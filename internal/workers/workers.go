package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-ai-feedback/internal/config"
	"github.com/MKhiriev/go-ai-feedback/internal/logger"
	"github.com/MKhiriev/go-ai-feedback/internal/service"
)

type Workers struct {
	workers []Worker
	wg      sync.WaitGroup
}

// NewWorkers creates the jobs enabled by cfg. A zero interval or TTL turns
// the session reaper off.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.ReapInterval > 0 && cfg.SessionIdleTTL > 0 {
		w.workers = append(w.workers, NewSessionReaper(services.SessionService, cfg.ReapInterval, cfg.SessionIdleTTL, logger))
	}

	return w
}

// Run starts every worker in its own goroutine and returns immediately.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Go(func() {
			worker.Run(ctx)
		})
	}
}

// Wait blocks until all started workers have returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}
