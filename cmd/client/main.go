package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ai-feedback/internal/adapter"
	"github.com/MKhiriev/go-ai-feedback/internal/audio"
	"github.com/MKhiriev/go-ai-feedback/internal/client"
	"github.com/MKhiriev/go-ai-feedback/internal/config"
	"github.com/MKhiriev/go-ai-feedback/internal/logger"
	"github.com/MKhiriev/go-ai-feedback/internal/service"
	"github.com/MKhiriev/go-ai-feedback/internal/store"
	"github.com/MKhiriev/go-ai-feedback/internal/tui"
	"github.com/MKhiriev/go-ai-feedback/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Println("error getting configs:", err)
		return
	}

	log := logger.NewClientLogger("feedback-client", cfg.LogFile)
	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.LogLevel).Msg("unknown log level, keeping default")
	}
	log.Info().Str("build", buildInfo.String()).Str("server_url", cfg.Adapter.ServerURL).Msg("client starting")

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.Close()

	player, err := audio.NewPlayer(cfg.Audio.PlayerCommand, "", log)
	if err != nil {
		log.Fatal().Err(err).Msg("create audio player")
	}
	defer player.Close()

	services, err := service.NewClientServices(localStorage, serverAdapter, player, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	ui, err := tui.New(services, buildInfo, cfg.Adapter.HeartbeatInterval, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Println("error:", err)
	}
}
