package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ai-feedback/internal/config"
	"github.com/MKhiriev/go-ai-feedback/internal/handler"
	"github.com/MKhiriev/go-ai-feedback/internal/logger"
	"github.com/MKhiriev/go-ai-feedback/internal/server"
	"github.com/MKhiriev/go-ai-feedback/internal/service"
	"github.com/MKhiriev/go-ai-feedback/internal/store"
	"github.com/MKhiriev/go-ai-feedback/internal/workers"
	"github.com/MKhiriev/go-ai-feedback/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("feedback-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping default")
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Str("gemini_model", cfg.Adapter.Gemini.Model).
		Str("voicevox_url", cfg.Adapter.VoiceVox.BaseURL).
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, storages, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workersCtx, stopWorkers := context.WithCancel(ctx)
	jobs := workers.NewWorkers(services, cfg.Workers, log)
	jobs.Run(workersCtx)

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped")
	}

	stopWorkers()
	jobs.Wait()
}
