package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ai-feedback/internal/adapter"
	"github.com/MKhiriev/go-ai-feedback/internal/config"
	"github.com/MKhiriev/go-ai-feedback/internal/logger"
)

// User-facing notices of failed synthesis stages.
const (
	NoticeQueryFailed     = "Query作成に失敗しました。VoiceVox Engineが起動しているか確認してください。"
	NoticeSynthesisFailed = "音声合成に失敗しました。Engineの起動状態を確認してください。"
)

type speechService struct {
	engine adapter.SpeechEngine

	speedScale  float64
	volumeScale float64

	logger *logger.Logger
}

func NewSpeechService(engine adapter.SpeechEngine, cfg config.VoiceVox, log *logger.Logger) SpeechService {
	return &speechService{
		engine:      engine,
		speedScale:  cfg.SpeedScale,
		volumeScale: cfg.VolumeScale,
		logger:      log,
	}
}

// Synthesize runs the query stage and then the synthesis stage with the
// configured speed and volume. Each stage is attempted once; a failed query
// stage skips synthesis.
func (s *speechService) Synthesize(ctx context.Context, text string, speakerID int) ([]byte, string, bool) {
	log := logger.FromContext(ctx)

	query, err := s.engine.AudioQuery(ctx, text, speakerID)
	if err != nil {
		log.Err(err).Int("speaker", speakerID).Msg("audio query failed")
		speechResultsTotal.WithLabelValues(resultQueryFailed).Inc()
		return nil, NoticeQueryFailed, false
	}

	query.SpeedScale = s.speedScale
	query.VolumeScale = s.volumeScale

	audio, err := s.engine.Synthesis(ctx, query, speakerID)
	if err != nil {
		log.Err(err).Int("speaker", speakerID).Msg("synthesis failed")
		speechResultsTotal.WithLabelValues(resultSynthesisFailed).Inc()
		return nil, NoticeSynthesisFailed, false
	}

	speechResultsTotal.WithLabelValues(resultOK).Inc()
	return audio, "", true
}

func (s *speechService) Ping(ctx context.Context) error {
	version, err := s.engine.Version(ctx)
	if err != nil {
		return fmt.Errorf("voicevox is unreachable: %w", err)
	}
	s.logger.Debug().Str("voicevox_version", version).Msg("voicevox answered")
	return nil
}
