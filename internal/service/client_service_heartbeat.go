package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-ai-feedback/internal/adapter"
	"github.com/MKhiriev/go-ai-feedback/internal/config"
	"github.com/MKhiriev/go-ai-feedback/internal/logger"
)

type clientHeartbeat struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientHeartbeat creates a clientHeartbeat that probes the server's
// version endpoint on a ticker. The heartbeat is idle until Start is called.
func NewClientHeartbeat(serverAdapter adapter.ServerAdapter, log *logger.Logger) ClientHeartbeat {
	return &clientHeartbeat{adapter: serverAdapter, logger: log}
}

// Start implements ClientHeartbeat. A zero or negative interval falls back
// to config.DefaultHeartbeatInterval. The goroutine exits when ctx is
// cancelled or Stop is called.
func (h *clientHeartbeat) Start(ctx context.Context, interval time.Duration, onChange func(online bool)) {
	if interval <= 0 {
		interval = config.DefaultHeartbeatInterval
	}

	h.Stop()

	h.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	h.cancel = cancel
	h.wg.Add(1)
	h.mu.Unlock()

	go func() {
		defer h.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		var (
			online bool
			probed bool
		)
		probe := func() {
			_, err := h.adapter.Version(jobCtx)
			if jobCtx.Err() != nil {
				return
			}
			now := err == nil
			if !probed || now != online {
				if err != nil {
					h.logger.Warn().Err(err).Msg("server is unreachable")
				}
				probed, online = true, now
				if onChange != nil {
					onChange(online)
				}
			}
		}

		probe()
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				probe()
			}
		}
	}()
}

// Stop implements ClientHeartbeat. Safe to call when the heartbeat is not
// running (no-op in that case).
func (h *clientHeartbeat) Stop() {
	h.mu.Lock()
	cancel := h.cancel
	h.cancel = nil
	h.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	h.wg.Wait()
}
