package adapter

import "errors"

// Errors mapped from HTTP status codes of the feedback server and of the
// upstream engines. Callers match them with [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

// Errors of the upstream engines.
var (
	// ErrMissingAPIKey is returned before any network call when the text
	// generation API key is not configured.
	ErrMissingAPIKey = errors.New("gemini api key is not configured")

	// ErrEmptyResponse is returned when the text generation API answers 2xx
	// without any candidate text.
	ErrEmptyResponse = errors.New("empty response from gemini")

	// ErrEmptyAudio is returned when the synthesis stage answers 2xx with an
	// empty body.
	ErrEmptyAudio = errors.New("empty audio from voicevox")

	// ErrUpstreamStatus wraps any non-2xx status of an upstream engine.
	ErrUpstreamStatus = errors.New("unexpected upstream status")
)
