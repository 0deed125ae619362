// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-ai-feedback/internal/logger"
	"github.com/MKhiriev/go-ai-feedback/internal/store"
	"github.com/MKhiriev/go-ai-feedback/internal/utils"
	"github.com/MKhiriev/go-ai-feedback/models"
)

// NoticeNoFeedback is returned to the user when no feedback text could be
// generated.
const NoticeNoFeedback = "フィードバックを取得できませんでした。時間をおいてもう一度お試しください。"

// session is the in-memory chat of one user. Every field is guarded by mu;
// mu is never held across calls to other services.
type session struct {
	mu sync.Mutex

	state      models.SessionState
	processing bool
	saving     bool

	// generation changes on Clear and Resume so a running pipeline can tell
	// that the transcript it started on is gone.
	generation uint64

	transcript models.Transcript
	clip       *models.Clip
	updatedAt  time.Time

	// evicted is set when the reaper drops the session from the map.
	evicted bool
}

func newSession(now time.Time) *session {
	return &session{
		state:      models.StateIdle,
		transcript: models.Transcript{},
		updatedAt:  now,
	}
}

// view must be called with mu held.
func (s *session) view() models.SessionView {
	v := models.SessionView{
		State:      s.state,
		Processing: s.processing,
		Saving:     s.saving,
		Transcript: s.transcript.Clone(),
		UpdatedAt:  s.updatedAt,
	}
	if s.clip != nil {
		v.AudioID = s.clip.ID
	}
	return v
}

// reset must be called with mu held.
func (s *session) reset(transcript models.Transcript, now time.Time) {
	s.transcript = transcript
	s.clip.Release()
	s.clip = nil
	s.generation++
	s.updatedAt = now
}

type sessionService struct {
	mu       sync.Mutex
	sessions map[string]*session

	feedback FeedbackService
	speech   SpeechService
	history  HistoryService
	users    store.UserRepository

	ids *utils.UUIDGenerator
	now func() time.Time

	logger *logger.Logger
}

func NewSessionService(feedback FeedbackService, speech SpeechService, history HistoryService, users store.UserRepository, log *logger.Logger) SessionService {
	return &sessionService{
		sessions: make(map[string]*session),
		feedback: feedback,
		speech:   speech,
		history:  history,
		users:    users,
		ids:      utils.NewUUIDGenerator(),
		now:      time.Now,
		logger:   log,
	}
}

func (s *sessionService) get(userID string) *session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		sess = newSession(s.now())
		s.sessions[userID] = sess
		sessionsActive.Set(float64(len(s.sessions)))
	}
	return sess
}

// lock returns the user's session with mu held. A session evicted between
// the map lookup and the lock is looked up again.
func (s *sessionService) lock(userID string) *session {
	for {
		sess := s.get(userID)
		sess.mu.Lock()
		if !sess.evicted {
			return sess
		}
		sess.mu.Unlock()
	}
}

// Submit runs one message through Idle → Submitting → AwaitingFeedback →
// AwaitingAudio → Idle. A missing feedback text ends the pipeline with only
// the user's line added; a failed synthesis keeps the feedback text.
func (s *sessionService) Submit(ctx context.Context, userID, text string) (models.MessageResult, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(text) == "" {
		return models.MessageResult{}, ErrEmptyInput
	}

	sess := s.lock(userID)
	if sess.processing {
		sess.mu.Unlock()
		return models.MessageResult{}, ErrAlreadyProcessing
	}
	sess.processing = true
	sess.state = models.StateSubmitting
	sess.transcript = append(sess.transcript, models.Entry{Speaker: models.SpeakerUser, Text: text})
	sess.updatedAt = s.now()
	generation := sess.generation
	sess.state = models.StateAwaitingFeedback
	sess.mu.Unlock()

	start := s.now()
	defer func() {
		pipelineDuration.Observe(time.Since(start).Seconds())
	}()

	feedback, ok := s.feedback.Generate(ctx, userID, text)

	sess.mu.Lock()
	if !ok {
		result := s.finish(sess)
		sess.mu.Unlock()
		result.Notice = NoticeNoFeedback
		return result, nil
	}
	if sess.generation == generation {
		sess.transcript = append(sess.transcript, models.Entry{Speaker: models.SpeakerCharacter, Text: feedback})
	}
	sess.state = models.StateAwaitingAudio
	sess.mu.Unlock()

	audio, notice, audioOK := s.speech.Synthesize(ctx, feedback, s.speakerOf(ctx, userID))

	sess.mu.Lock()
	defer sess.mu.Unlock()

	stored := audioOK && sess.generation == generation
	if stored {
		previous := sess.clip
		sess.clip = models.NewClip(s.ids.Generate(), audio)
		previous.Release()
	}

	result := s.finish(sess)
	result.Feedback = feedback
	result.FeedbackOK = true
	result.AudioOK = audioOK
	result.Notice = notice
	if stored {
		result.AudioID = sess.clip.ID
	}

	log.Debug().Bool("audio_ok", audioOK).Int("turns", len(sess.transcript)).Msg("message processed")
	return result, nil
}

// finish must be called with mu held.
func (s *sessionService) finish(sess *session) models.MessageResult {
	sess.processing = false
	sess.state = models.StateIdle
	sess.updatedAt = s.now()
	return models.MessageResult{Transcript: sess.transcript.Clone()}
}

func (s *sessionService) speakerOf(ctx context.Context, userID string) int {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("user_id", userID).Msg("character lookup failed, using default voice")
		return models.SpeakerZundamon
	}
	return user.CharacterID
}

// Save stores a copy of the transcript as a new progress log.
func (s *sessionService) Save(ctx context.Context, userID string) (models.ProgressLog, error) {
	sess := s.lock(userID)
	if sess.saving {
		sess.mu.Unlock()
		return models.ProgressLog{}, ErrAlreadySaving
	}
	if len(sess.transcript) == 0 {
		sess.mu.Unlock()
		return models.ProgressLog{}, ErrEmptyTranscript
	}
	sess.saving = true
	snapshot := sess.transcript.Clone()
	sess.mu.Unlock()

	saved := s.history.AppendLog(ctx, models.ProgressLog{
		ChatID:    s.ids.Generate(),
		UserID:    userID,
		ChatLog:   snapshot,
		CreatedAt: s.now(),
	})

	sess.mu.Lock()
	sess.saving = false
	sess.updatedAt = s.now()
	sess.mu.Unlock()

	if saved == nil {
		savesTotal.WithLabelValues(resultSaveFailed).Inc()
		return models.ProgressLog{}, ErrSaveFailed
	}

	savesTotal.WithLabelValues(resultSaved).Inc()
	return *saved, nil
}

// Clear empties the transcript and releases the audio.
func (s *sessionService) Clear(ctx context.Context, userID string) {
	sess := s.lock(userID)
	defer sess.mu.Unlock()
	sess.reset(models.Transcript{}, s.now())
}

// Resume replaces the transcript with a saved one.
func (s *sessionService) Resume(ctx context.Context, userID, chatID string) (models.SessionView, error) {
	sess := s.lock(userID)
	if sess.processing {
		sess.mu.Unlock()
		return models.SessionView{}, ErrAlreadyProcessing
	}
	sess.mu.Unlock()

	progressLog, err := s.history.GetLog(ctx, chatID, userID)
	if err != nil {
		return models.SessionView{}, fmt.Errorf("resume session: %w", err)
	}

	sess = s.lock(userID)
	defer sess.mu.Unlock()
	sess.reset(progressLog.ChatLog.Clone(), s.now())
	return sess.view(), nil
}

func (s *sessionService) Snapshot(ctx context.Context, userID string) models.SessionView {
	sess := s.lock(userID)
	defer sess.mu.Unlock()
	sess.updatedAt = s.now()
	return sess.view()
}

func (s *sessionService) Audio(ctx context.Context, userID string) (*models.Clip, error) {
	sess := s.lock(userID)
	defer sess.mu.Unlock()
	if sess.clip == nil || sess.clip.Released() {
		return nil, ErrNoAudio
	}
	sess.updatedAt = s.now()
	return sess.clip, nil
}

// ReapIdle releases the audio of sessions untouched for longer than ttl.
// Sessions with an empty transcript are dropped too; unsaved turns stay in
// memory until Save or Clear.
func (s *sessionService) ReapIdle(ctx context.Context, ttl time.Duration) int {
	deadline := s.now().Add(-ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	reaped := 0
	for userID, sess := range s.sessions {
		sess.mu.Lock()
		if sess.processing || sess.saving || !sess.updatedAt.Before(deadline) {
			sess.mu.Unlock()
			continue
		}

		touched := sess.clip != nil
		sess.clip.Release()
		sess.clip = nil
		if len(sess.transcript) == 0 {
			sess.evicted = true
			delete(s.sessions, userID)
			touched = true
		}
		sess.mu.Unlock()

		if touched {
			reaped++
		}
	}
	sessionsActive.Set(float64(len(s.sessions)))

	return reaped
}
