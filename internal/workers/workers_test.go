// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-ai-feedback/internal/config"
	"github.com/MKhiriev/go-ai-feedback/internal/logger"
	"github.com/MKhiriev/go-ai-feedback/internal/mock"
	"github.com/MKhiriev/go-ai-feedback/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type countingWorker struct {
	started atomic.Int32
	stopped atomic.Int32
}

func (w *countingWorker) Run(ctx context.Context) {
	w.started.Add(1)
	<-ctx.Done()
	w.stopped.Add(1)
}

func TestWorkers_RunAndWait(t *testing.T) {
	w1, w2 := &countingWorker{}, &countingWorker{}
	ws := &Workers{workers: []Worker{w1, w2}}

	ctx, cancel := context.WithCancel(context.Background())
	ws.Run(ctx)

	assert.Eventually(t, func() bool {
		return w1.started.Load() == 1 && w2.started.Load() == 1
	}, time.Second, time.Millisecond)

	cancel()
	ws.Wait()

	assert.EqualValues(t, 1, w1.stopped.Load())
	assert.EqualValues(t, 1, w2.stopped.Load())
}

func TestWorkers_Empty(t *testing.T) {
	ws := &Workers{}

	ws.Run(context.Background())
	ws.Wait()
}

func TestNewWorkers(t *testing.T) {
	services := &service.Services{}

	ws := NewWorkers(services, config.Workers{ReapInterval: time.Minute, SessionIdleTTL: time.Hour}, logger.Nop())
	assert.Len(t, ws.workers, 1)

	ws = NewWorkers(services, config.Workers{}, logger.Nop())
	assert.Empty(t, ws.workers)
}

func TestSessionReaper_ReapsOnEveryTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mock.NewMockSessionService(ctrl)

	var calls atomic.Int32
	sessions.EXPECT().ReapIdle(gomock.Any(), 30*time.Minute).
		DoAndReturn(func(context.Context, time.Duration) int {
			return int(calls.Add(1)) % 2
		}).
		MinTimes(2)

	reaper := NewSessionReaper(sessions, 5*time.Millisecond, 30*time.Minute, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		reaper.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("reaper did not stop")
	}
}
