package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-ai-feedback/internal/config"
	"github.com/MKhiriev/go-ai-feedback/internal/logger"
	"github.com/MKhiriev/go-ai-feedback/internal/utils"
	"github.com/MKhiriev/go-ai-feedback/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.ServerURL and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.ServerURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs to /api/user/register. The
// bearer token is taken from the Authorization response header, falling back
// to the token field of the body.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/user/register", req)
}

// Login implements [ServerAdapter]. It POSTs to /api/user/login.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/user/login", req)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return auth, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return auth, err
	}

	if err = json.Unmarshal(resp.Body(), &auth); err != nil {
		return auth, fmt.Errorf("decode auth response: %w", err)
	}

	if header := resp.Header().Get("Authorization"); header != "" {
		token, parseErr := utils.ParseBearerToken(header)
		if parseErr != nil {
			return auth, fmt.Errorf("parse bearer token: %w", parseErr)
		}
		auth.Token = token
	}
	if auth.Token == "" {
		return auth, fmt.Errorf("%w: no token in auth response", ErrUnauthorized)
	}

	h.SetToken(auth.Token)
	return auth, nil
}

// UpdateCharacter implements [ServerAdapter]. PUT /api/user/character.
func (h *httpServerAdapter) UpdateCharacter(ctx context.Context, characterID int) (models.UpdateResult, error) {
	var result models.UpdateResult

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CharacterUpdateRequest{CharacterID: characterID}).
		Put("/api/user/character")
	if err != nil {
		return result, fmt.Errorf("update character request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	return result, decodeInto(resp, &result, "update character")
}

// Characters implements [ServerAdapter]. GET /api/characters.
func (h *httpServerAdapter) Characters(ctx context.Context) ([]models.Character, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/characters")
	if err != nil {
		return nil, fmt.Errorf("characters request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var list []models.Character
	return list, decodeInto(resp, &list, "characters")
}

// FetchLogs implements [ServerAdapter]. GET /api/logs?date=YYYY-MM-DD.
func (h *httpServerAdapter) FetchLogs(ctx context.Context, date string) (models.LogsResponse, error) {
	var logs models.LogsResponse

	resp, err := h.authedRequest(ctx).
		SetQueryParam("date", date).
		Get("/api/logs")
	if err != nil {
		return logs, fmt.Errorf("fetch logs request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return logs, err
	}

	return logs, decodeInto(resp, &logs, "logs")
}

// GetLog implements [ServerAdapter]. GET /api/logs/{chatID}.
func (h *httpServerAdapter) GetLog(ctx context.Context, chatID string) (models.ProgressLog, error) {
	var log models.ProgressLog

	resp, err := h.authedRequest(ctx).
		SetPathParam("chatID", chatID).
		Get("/api/logs/{chatID}")
	if err != nil {
		return log, fmt.Errorf("get log request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return log, err
	}

	return log, decodeInto(resp, &log, "log")
}

// SendMessage implements [ServerAdapter]. POST /api/session/messages.
// Returns [ErrConflict] (wrapped) while another message is being processed.
func (h *httpServerAdapter) SendMessage(ctx context.Context, text string) (models.MessageResult, error) {
	var result models.MessageResult

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.MessageRequest{Text: text}).
		Post("/api/session/messages")
	if err != nil {
		return result, fmt.Errorf("send message request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	return result, decodeInto(resp, &result, "message result")
}

// Session implements [ServerAdapter]. GET /api/session.
func (h *httpServerAdapter) Session(ctx context.Context) (models.SessionView, error) {
	var view models.SessionView

	resp, err := h.authedRequest(ctx).Get("/api/session")
	if err != nil {
		return view, fmt.Errorf("session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return view, err
	}

	return view, decodeInto(resp, &view, "session")
}

// ClearSession implements [ServerAdapter]. DELETE /api/session.
func (h *httpServerAdapter) ClearSession(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Delete("/api/session")
	if err != nil {
		return fmt.Errorf("clear session request: %w", err)
	}

	return mapHTTPError(resp)
}

// SaveSession implements [ServerAdapter]. POST /api/session/save.
func (h *httpServerAdapter) SaveSession(ctx context.Context) (models.SaveResponse, error) {
	var saved models.SaveResponse

	resp, err := h.authedRequest(ctx).Post("/api/session/save")
	if err != nil {
		return saved, fmt.Errorf("save session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return saved, err
	}

	return saved, decodeInto(resp, &saved, "save")
}

// ResumeSession implements [ServerAdapter]. POST /api/session/resume.
func (h *httpServerAdapter) ResumeSession(ctx context.Context, chatID string) (models.SessionView, error) {
	var view models.SessionView

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ResumeRequest{ChatID: chatID}).
		Post("/api/session/resume")
	if err != nil {
		return view, fmt.Errorf("resume session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return view, err
	}

	return view, decodeInto(resp, &view, "session")
}

// Audio implements [ServerAdapter]. GET /api/session/audio.
func (h *httpServerAdapter) Audio(ctx context.Context) ([]byte, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Accept", models.ContentTypeWAV).
		Get("/api/session/audio")
	if err != nil {
		return nil, fmt.Errorf("audio request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// Version implements [ServerAdapter]. GET /api/version.
func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return version, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return version, err
	}

	return version, decodeInto(resp, &version, "version")
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func decodeInto(resp *resty.Response, out any, what string) error {
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", what, err)
	}
	return nil
}
