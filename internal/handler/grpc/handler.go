// Package grpc exposes the standard gRPC health service of the feedback
// server.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-ai-feedback/internal/logger"
	"github.com/MKhiriev/go-ai-feedback/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service name reported next to the overall ("")
// status.
const ServiceName = "feedback.Server"

const probeTimeout = 5 * time.Second

// Pinger is anything whose reachability decides whether the server can serve.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler keeps the health status of the server up to date. The status is
// SERVING only while every dependency answers its ping.
type Handler struct {
	health *health.Server

	dependencies map[string]Pinger

	logger *logger.Logger
}

// NewHandler builds a health handler probing the database and the speech
// engine. Both start as NOT_SERVING until the first refresh.
func NewHandler(services *service.Services, storages Pinger, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	dependencies := make(map[string]Pinger, 2)
	if storages != nil {
		dependencies["database"] = storages
	}
	if services != nil && services.SpeechService != nil {
		dependencies["voicevox"] = services.SpeechService
	}

	h := &Handler{
		health:       health.NewServer(),
		dependencies: dependencies,
		logger:       logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	return h
}

// Register attaches the health service to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// Refresh pings every dependency and publishes the result. It reports
// whether the server is SERVING.
func (h *Handler) Refresh(ctx context.Context) bool {
	serving := true
	for name, dependency := range h.dependencies {
		pingCtx, cancel := context.WithTimeout(ctx, probeTimeout)
		err := dependency.Ping(pingCtx)
		cancel()

		if err != nil {
			h.logger.Warn().Err(err).Str("dependency", name).Msg("health probe failed")
			serving = false
		}
	}

	status := healthpb.HealthCheckResponse_SERVING
	if !serving {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.setStatus(status)

	return serving
}

// Run refreshes the status immediately and then every interval until ctx is
// done. On return all watchers are told the server is shutting down.
func (h *Handler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	defer h.health.Shutdown()

	h.Refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.Refresh(ctx)
		}
	}
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
