package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-ai-feedback/internal/config"
	"github.com/MKhiriev/go-ai-feedback/internal/logger"
	"github.com/MKhiriev/go-ai-feedback/internal/utils"
	"github.com/MKhiriev/go-ai-feedback/models"
	"github.com/go-resty/resty/v2"
)

const (
	stageQuery     = "audio_query"
	stageSynthesis = "synthesis"
	stageVersion   = "version"
)

type voiceVoxClient struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewVoiceVoxClient constructs a [SpeechEngine] for the engine at cfg.BaseURL.
func NewVoiceVoxClient(cfg config.VoiceVox, log *logger.Logger) SpeechEngine {
	log.Debug().Str("base_url", cfg.BaseURL).Msg("creating voicevox client")

	return &voiceVoxClient{
		client: utils.NewHTTPClient(cfg.BaseURL, cfg.RequestTimeout),
		logger: log,
	}
}

// AudioQuery calls POST /audio_query?speaker=ID&text=T.
func (v *voiceVoxClient) AudioQuery(ctx context.Context, text string, speakerID int) (models.AudioQuery, error) {
	start := time.Now()
	resp, err := v.client.R().
		SetContext(ctx).
		SetQueryParam("speaker", strconv.Itoa(speakerID)).
		SetQueryParam("text", text).
		Post("/audio_query")
	if err = v.observe(stageQuery, start, resp, err); err != nil {
		return models.AudioQuery{}, err
	}

	var query models.AudioQuery
	if err = json.Unmarshal(resp.Body(), &query); err != nil {
		return models.AudioQuery{}, fmt.Errorf("decode audio query: %w", err)
	}

	return query, nil
}

// Synthesis calls POST /synthesis?speaker=ID with query as the JSON body.
func (v *voiceVoxClient) Synthesis(ctx context.Context, query models.AudioQuery, speakerID int) ([]byte, error) {
	start := time.Now()
	resp, err := v.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", models.ContentTypeWAV).
		SetQueryParam("speaker", strconv.Itoa(speakerID)).
		SetBody(query).
		Post("/synthesis")
	if err = v.observe(stageSynthesis, start, resp, err); err != nil {
		return nil, err
	}

	audio := resp.Body()
	if len(audio) == 0 {
		return nil, ErrEmptyAudio
	}

	return audio, nil
}

// Version calls GET /version. The engine answers with a JSON string.
func (v *voiceVoxClient) Version(ctx context.Context) (string, error) {
	start := time.Now()
	resp, err := v.client.R().
		SetContext(ctx).
		Get("/version")
	if err = v.observe(stageVersion, start, resp, err); err != nil {
		return "", err
	}

	var version string
	if err = json.Unmarshal(resp.Body(), &version); err != nil {
		return strings.TrimSpace(string(resp.Body())), nil
	}

	return version, nil
}

func (v *voiceVoxClient) observe(stage string, start time.Time, resp *resty.Response, err error) error {
	if err != nil {
		voiceVoxRequestsTotal.WithLabelValues(stage, statusError).Inc()
		return fmt.Errorf("voicevox %s request: %w", stage, err)
	}
	voiceVoxRequestDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())

	if err = mapUpstreamError(resp); err != nil {
		voiceVoxRequestsTotal.WithLabelValues(stage, statusError).Inc()
		v.logger.Warn().Str("stage", stage).Int("status", resp.StatusCode()).Msg("voicevox call failed")
		return fmt.Errorf("voicevox %s: %w", stage, err)
	}
	voiceVoxRequestsTotal.WithLabelValues(stage, statusSuccess).Inc()

	return nil
}
