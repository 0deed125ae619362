package http

import (
	"time"

	"github.com/MKhiriev/go-ai-feedback/internal/config"
	"github.com/MKhiriev/go-ai-feedback/internal/logger"
	"github.com/MKhiriev/go-ai-feedback/internal/service"
	"github.com/MKhiriev/go-ai-feedback/internal/utils"
	"github.com/MKhiriev/go-ai-feedback/internal/validators"
)

type Handler struct {
	services *service.Services

	requestTimeout   time.Duration
	traceIDs         *utils.UUIDGenerator
	sessionValidator validators.Validator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:         services,
		requestTimeout:   cfg.RequestTimeout,
		traceIDs:         utils.NewUUIDGenerator(),
		sessionValidator: validators.NewSessionValidator(),
		logger:           logger,
	}
}
