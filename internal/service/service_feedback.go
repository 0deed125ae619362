package service

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/go-ai-feedback/internal/adapter"
	"github.com/MKhiriev/go-ai-feedback/internal/config"
	"github.com/MKhiriev/go-ai-feedback/internal/logger"
	"github.com/MKhiriev/go-ai-feedback/models"
	"github.com/sethvargo/go-retry"
)

//go:embed prompts/feedback.txt
var defaultPromptTemplate string

const (
	placeholderChatlog = "{{chatlog}}"
	placeholderInput   = "{{input}}"

	historyBlockHeader    = "【チャットログ】\n"
	historyBlockSeparator = "\n------\n"
	noHistory             = "（まだ記録がありません）"
)

// RetryPolicy bounds the attempts of one text generation. Backoff receives
// the zero-based number of the failed attempt and returns the wait before
// the next one.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     func(attempt int) time.Duration
}

// ExponentialBackoff waits base * 2^attempt.
func ExponentialBackoff(base time.Duration) func(attempt int) time.Duration {
	return func(attempt int) time.Duration {
		return base << attempt
	}
}

// DefaultRetryPolicy makes three attempts, waiting one and two seconds
// between them.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, Backoff: ExponentialBackoff(time.Second)}
}

// backoff adapts the policy to go-retry. The first call follows attempt 0.
func (p RetryPolicy) backoff() retry.Backoff {
	attempt := 0
	return retry.BackoffFunc(func() (time.Duration, bool) {
		if attempt+1 >= p.MaxAttempts {
			return 0, true
		}
		wait := time.Duration(0)
		if p.Backoff != nil {
			wait = p.Backoff(attempt)
		}
		attempt++
		return wait, false
	})
}

type feedbackService struct {
	generator adapter.TextGenerator
	history   HistoryService

	template     string
	historyLimit int
	policy       RetryPolicy

	logger *logger.Logger
}

// NewFeedbackService constructs a FeedbackService. The prompt template is read
// from cfg.PromptPath when set, otherwise the embedded one is used.
func NewFeedbackService(generator adapter.TextGenerator, history HistoryService, cfg config.Gemini, log *logger.Logger) (FeedbackService, error) {
	template := defaultPromptTemplate
	if cfg.PromptPath != "" {
		b, err := os.ReadFile(cfg.PromptPath)
		if err != nil {
			return nil, fmt.Errorf("reading prompt template: %w", err)
		}
		template = string(b)
	}

	return &feedbackService{
		generator:    generator,
		history:      history,
		template:     template,
		historyLimit: cfg.HistoryLimit,
		policy:       RetryPolicy{MaxAttempts: cfg.MaxAttempts, Backoff: ExponentialBackoff(cfg.BackoffBase)},
		logger:       log,
	}, nil
}

// WithRetryPolicy replaces the retry policy of a service built by
// NewFeedbackService.
func WithRetryPolicy(s FeedbackService, policy RetryPolicy) FeedbackService {
	if fs, ok := s.(*feedbackService); ok {
		cp := *fs
		cp.policy = policy
		return &cp
	}
	return s
}

func (f *feedbackService) Generate(ctx context.Context, userID, text string) (string, bool) {
	log := logger.FromContext(ctx)

	logs, err := f.history.RecentLogs(ctx, userID, f.historyLimit)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("history for prompt is unavailable")
		feedbackResultsTotal.WithLabelValues(resultHistoryFailed).Inc()
		return "", false
	}

	req := models.NewGeminiRequest(buildPrompt(f.template, logs, text))

	var (
		feedback string
		attempt  int
	)
	err = retry.Do(ctx, f.policy.backoff(), func(ctx context.Context) error {
		attempt++
		feedbackAttemptsTotal.Inc()

		out, genErr := f.generator.GenerateContent(ctx, req)
		if genErr == nil {
			feedback = out
			return nil
		}

		if errors.Is(genErr, adapter.ErrMissingAPIKey) || ctx.Err() != nil {
			return genErr
		}

		log.Warn().Err(genErr).Int("attempt", attempt).Msg("feedback attempt failed")
		return retry.RetryableError(genErr)
	})
	if err != nil {
		log.Err(err).Int("attempts", attempt).Msg("feedback generation failed")
		feedbackResultsTotal.WithLabelValues(resultNoResponse).Inc()
		return "", false
	}

	feedbackResultsTotal.WithLabelValues(resultOK).Inc()
	return feedback, true
}

// buildPrompt fills the template with the rendered history and the input.
// Only the first occurrence of each placeholder is replaced.
func buildPrompt(template string, logs []models.ProgressLog, input string) string {
	chatlog := noHistory
	if len(logs) > 0 {
		blocks := make([]string, 0, len(logs))
		for _, l := range logs {
			blocks = append(blocks, historyBlockHeader+strings.Join(l.ChatLog.Lines(), "\n"))
		}
		chatlog = strings.Join(blocks, historyBlockSeparator)
	}

	prompt := strings.Replace(template, placeholderChatlog, chatlog, 1)
	return strings.Replace(prompt, placeholderInput, input, 1)
}
