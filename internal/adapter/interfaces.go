// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound HTTP clients of the application.
//
// The server talks to two engines: a text generation API ([TextGenerator],
// Gemini generateContent) and a speech synthesis engine ([SpeechEngine],
// VOICEVOX). The terminal client talks to the feedback server through
// [ServerAdapter].
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError and mapUpstreamError so that callers can use [errors.Is]
// (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-ai-feedback/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// TextGenerator produces text for a prompt. A single call makes a single
// attempt; retries belong to the caller.
type TextGenerator interface {
	GenerateContent(ctx context.Context, req models.GeminiRequest) (string, error)
}

// SpeechEngine is the two-stage synthesis API of VOICEVOX.
type SpeechEngine interface {
	// AudioQuery builds the synthesis query for text spoken by speakerID.
	AudioQuery(ctx context.Context, text string, speakerID int) (models.AudioQuery, error)

	// Synthesis renders query into WAV bytes.
	Synthesis(ctx context.Context, query models.AudioQuery, speakerID int) ([]byte, error)

	// Version reports the engine version; used as a liveness probe.
	Version(ctx context.Context) (string, error)
}

// ServerAdapter defines communication of the terminal client with the
// feedback server. Implementations handle serialisation, the bearer token and
// mapping of transport errors to the sentinels of this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// Register creates an account and stores the returned token.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login authenticates and stores the returned token.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// UpdateCharacter changes the character of the signed-in user. The
	// server reports failures inside the result rather than as a status.
	UpdateCharacter(ctx context.Context, characterID int) (models.UpdateResult, error)

	// Characters returns the character catalog.
	Characters(ctx context.Context) ([]models.Character, error)

	// FetchLogs returns the saved chats of one calendar day (YYYY-MM-DD).
	FetchLogs(ctx context.Context, date string) (models.LogsResponse, error)

	// GetLog returns one saved chat.
	GetLog(ctx context.Context, chatID string) (models.ProgressLog, error)

	// SendMessage submits text to the current session.
	SendMessage(ctx context.Context, text string) (models.MessageResult, error)

	// Session returns the current session snapshot.
	Session(ctx context.Context) (models.SessionView, error)

	// ClearSession resets the current session.
	ClearSession(ctx context.Context) error

	// SaveSession stores the current transcript as a progress log.
	SaveSession(ctx context.Context) (models.SaveResponse, error)

	// ResumeSession loads a saved chat as the current transcript.
	ResumeSession(ctx context.Context, chatID string) (models.SessionView, error)

	// Audio downloads the current clip of the session.
	Audio(ctx context.Context) ([]byte, error)

	// Version returns the server build information.
	Version(ctx context.Context) (models.VersionResponse, error)
}
