package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/MKhiriev/go-ai-feedback/internal/config"
	myGRPC "github.com/MKhiriev/go-ai-feedback/internal/handler/grpc"
	"github.com/MKhiriev/go-ai-feedback/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler        *myGRPC.Handler
	healthInterval time.Duration

	server          *grpc.Server
	gRPCNetListener net.Listener

	healthCtx  context.Context
	stopHealth context.CancelFunc

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", cfg.GRPCAddress, err)
	}

	server := grpc.NewServer()
	handler.Register(server)

	interval := cfg.HealthCheckInterval
	if interval <= 0 {
		interval = 15 * time.Second
	}

	healthCtx, stopHealth := context.WithCancel(context.Background())

	return &grpcServer{
		handler:         handler,
		healthInterval:  interval,
		server:          server,
		gRPCNetListener: listener,
		healthCtx:       healthCtx,
		stopHealth:      stopHealth,
		logger:          logger,
	}, nil
}

func (g *grpcServer) name() string {
	return "gRPC"
}

func (g *grpcServer) serve() error {
	go g.handler.Run(g.healthCtx, g.healthInterval)

	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server shutting down")
	g.stopHealth()
	g.server.GracefulStop()
}
