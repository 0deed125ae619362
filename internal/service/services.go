package service

import (
	"fmt"

	"github.com/MKhiriev/go-ai-feedback/internal/adapter"
	"github.com/MKhiriev/go-ai-feedback/internal/config"
	"github.com/MKhiriev/go-ai-feedback/internal/logger"
	"github.com/MKhiriev/go-ai-feedback/internal/store"
	"github.com/MKhiriev/go-ai-feedback/models"
)

type Services struct {
	AuthService     AuthService
	HistoryService  HistoryService
	FeedbackService FeedbackService
	SpeechService   SpeechService
	SessionService  SessionService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	history := NewHistoryService(storages.ProgressLogRepository, storages.UserRepository, cfg.App, logger)

	feedback, err := NewFeedbackService(adapter.NewGeminiClient(cfg.Adapter.Gemini, logger), history, cfg.Adapter.Gemini, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating feedback service: %w", err)
	}

	speech := NewSpeechService(adapter.NewVoiceVoxClient(cfg.Adapter.VoiceVox, logger), cfg.Adapter.VoiceVox, logger)

	appInfo, err := NewAppInfoService(buildInfo, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.App, logger),
		HistoryService:  history,
		FeedbackService: feedback,
		SpeechService:   speech,
		SessionService:  NewSessionService(feedback, speech, history, storages.UserRepository, logger),
		AppInfoService:  appInfo,
	}, nil
}
