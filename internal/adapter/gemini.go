package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/MKhiriev/go-ai-feedback/internal/config"
	"github.com/MKhiriev/go-ai-feedback/internal/logger"
	"github.com/MKhiriev/go-ai-feedback/internal/utils"
	"github.com/MKhiriev/go-ai-feedback/models"
)

type geminiClient struct {
	client *utils.HTTPClient

	apiKey string
	model  string

	logger *logger.Logger
}

// NewGeminiClient constructs a [TextGenerator] calling
// POST {BaseURL}/models/{Model}:generateContent?key={APIKey}.
func NewGeminiClient(cfg config.Gemini, log *logger.Logger) TextGenerator {
	log.Debug().Str("model", cfg.Model).Msg("creating gemini client")

	return &geminiClient{
		client: utils.NewHTTPClient(cfg.BaseURL, cfg.RequestTimeout),
		apiKey: cfg.APIKey,
		model:  cfg.Model,
		logger: log,
	}
}

// GenerateContent makes exactly one call. Transport errors, non-2xx statuses
// and answers without text are all returned as errors.
func (g *geminiClient) GenerateContent(ctx context.Context, req models.GeminiRequest) (string, error) {
	if g.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	start := time.Now()
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", g.apiKey).
		SetBody(req).
		Post("/models/" + url.PathEscape(g.model) + ":generateContent")
	if err != nil {
		geminiRequestsTotal.WithLabelValues(g.model, statusError).Inc()
		return "", fmt.Errorf("gemini request: %w", err)
	}
	geminiRequestDuration.WithLabelValues(g.model).Observe(time.Since(start).Seconds())

	if err = mapUpstreamError(resp); err != nil {
		geminiRequestsTotal.WithLabelValues(g.model, statusError).Inc()
		return "", fmt.Errorf("gemini: %w", err)
	}

	var out models.GeminiResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		geminiRequestsTotal.WithLabelValues(g.model, statusError).Inc()
		return "", fmt.Errorf("decode gemini response: %w", err)
	}

	text := out.Text()
	if text == "" {
		geminiRequestsTotal.WithLabelValues(g.model, statusEmpty).Inc()
		return "", ErrEmptyResponse
	}

	geminiRequestsTotal.WithLabelValues(g.model, statusSuccess).Inc()
	if out.UsageMetadata != nil {
		geminiTotalTokens.WithLabelValues(g.model).Observe(float64(out.UsageMetadata.TotalTokenCount))
	}

	return text, nil
}
