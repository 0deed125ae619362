package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-ai-feedback/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers users, checks credentials and issues tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	GetUser(ctx context.Context, userID string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// HistoryService is the non-throwing persistence client. Read and write
// failures are logged and collapse to empty results; only RecentLogs and
// GetLog report errors, for callers that must tell "nothing" from "failed".
type HistoryService interface {
	// FetchLogs returns the user's logs created on date (YYYY-MM-DD, in the
	// configured time zone), oldest first.
	FetchLogs(ctx context.Context, date, userID string) []models.ProgressLog

	// RecentLogs returns at most limit logs of the user, newest first.
	RecentLogs(ctx context.Context, userID string, limit int) ([]models.ProgressLog, error)

	// AppendLog inserts log once. Returns nil on failure.
	AppendLog(ctx context.Context, log models.ProgressLog) *models.ProgressLog

	GetLog(ctx context.Context, chatID, userID string) (models.ProgressLog, error)

	// UpdateUserCharacter never fails with an error; failures are reported
	// inside the result.
	UpdateUserCharacter(ctx context.Context, userID string, characterID int) models.UpdateResult
}

// FeedbackService produces the character's answer to one user message.
type FeedbackService interface {
	// Generate returns false when no text could be obtained after all
	// attempts.
	Generate(ctx context.Context, userID, text string) (string, bool)
}

// SpeechService renders text with the voice of a speaker.
type SpeechService interface {
	// Synthesize returns WAV bytes. On failure ok is false and notice holds a
	// message that can be shown to the user.
	Synthesize(ctx context.Context, text string, speakerID int) (audio []byte, notice string, ok bool)

	// Ping checks that the engine answers.
	Ping(ctx context.Context) error
}

// SessionService runs the message pipeline of per-user chat sessions.
type SessionService interface {
	Submit(ctx context.Context, userID, text string) (models.MessageResult, error)
	Save(ctx context.Context, userID string) (models.ProgressLog, error)
	Clear(ctx context.Context, userID string)
	Resume(ctx context.Context, userID, chatID string) (models.SessionView, error)
	Snapshot(ctx context.Context, userID string) models.SessionView
	Audio(ctx context.Context, userID string) (*models.Clip, error)

	// ReapIdle releases the audio of sessions untouched for longer than ttl
	// and drops those with an empty transcript. Unsaved turns are kept.
	// Returns the number of sessions it released or dropped.
	ReapIdle(ctx context.Context, ttl time.Duration) int
}

// AppInfoService exposes build information of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}
