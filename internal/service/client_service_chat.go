package service

import (
	"context"

	"github.com/MKhiriev/go-ai-feedback/internal/adapter"
	"github.com/MKhiriev/go-ai-feedback/internal/logger"
	"github.com/MKhiriev/go-ai-feedback/internal/validators"
	"github.com/MKhiriev/go-ai-feedback/models"
)

type clientChatService struct {
	adapter adapter.ServerAdapter
	player  AudioPlayer

	validator validators.Validator

	logger *logger.Logger
}

// NewClientChatService returns a chat service. player may be nil, in which
// case feedback is never played.
func NewClientChatService(serverAdapter adapter.ServerAdapter, player AudioPlayer, log *logger.Logger) ClientChatService {
	return &clientChatService{
		adapter:   serverAdapter,
		player:    player,
		validator: validators.NewSessionValidator(),
		logger:    log,
	}
}

func (c *clientChatService) Send(ctx context.Context, text string) (models.MessageResult, error) {
	req := models.MessageRequest{Text: text}
	if err := c.validator.Validate(ctx, req); err != nil {
		return models.MessageResult{}, ErrEmptyInput
	}

	result, err := c.adapter.SendMessage(ctx, text)
	if err != nil {
		return models.MessageResult{}, mapAdapterError(err)
	}

	if result.AudioOK {
		if err = c.Replay(ctx); err != nil {
			c.logger.Warn().Err(err).Str("audio_id", result.AudioID).Msg("feedback playback failed")
		}
	}
	return result, nil
}

func (c *clientChatService) Replay(ctx context.Context) error {
	if c.player == nil {
		return nil
	}

	wav, err := c.adapter.Audio(ctx)
	if err != nil {
		return mapAdapterError(err)
	}
	return c.player.Play(ctx, wav)
}

func (c *clientChatService) Session(ctx context.Context) (models.SessionView, error) {
	view, err := c.adapter.Session(ctx)
	return view, mapAdapterError(err)
}

func (c *clientChatService) Save(ctx context.Context) (models.SaveResponse, error) {
	saved, err := c.adapter.SaveSession(ctx)
	return saved, mapAdapterError(err)
}

func (c *clientChatService) Clear(ctx context.Context) error {
	if err := c.adapter.ClearSession(ctx); err != nil {
		return mapAdapterError(err)
	}
	c.releaseAudio()
	return nil
}

func (c *clientChatService) Resume(ctx context.Context, chatID string) (models.SessionView, error) {
	if err := c.validator.Validate(ctx, models.ResumeRequest{ChatID: chatID}); err != nil {
		return models.SessionView{}, err
	}

	view, err := c.adapter.ResumeSession(ctx, chatID)
	if err != nil {
		return models.SessionView{}, mapAdapterError(err)
	}
	c.releaseAudio()
	return view, nil
}

func (c *clientChatService) Logs(ctx context.Context, date string) ([]models.ProgressLog, error) {
	if err := c.validator.Validate(ctx, validators.LogDate(date)); err != nil {
		return nil, err
	}

	resp, err := c.adapter.FetchLogs(ctx, date)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	if resp.Logs == nil {
		return []models.ProgressLog{}, nil
	}
	return resp.Logs, nil
}

func (c *clientChatService) releaseAudio() {
	if c.player == nil {
		return
	}
	if err := c.player.Release(); err != nil {
		c.logger.Warn().Err(err).Msg("error releasing audio")
	}
}
