// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-ai-feedback/internal/config"
	"github.com/MKhiriev/go-ai-feedback/internal/logger"
	"github.com/MKhiriev/go-ai-feedback/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{ServerURL: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── Register / Login ────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/user/register", r.URL.Path)

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.UserName)
		assert.Equal(t, models.SpeakerTsumugi, req.CharacterID)

		w.Header().Set("Authorization", "Bearer header-token")
		writeJSON(t, w, http.StatusOK, models.AuthResponse{
			Token: "header-token",
			User:  models.User{UserID: "u-1", UserName: "alice", CharacterID: models.SpeakerTsumugi},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Register(context.Background(), models.RegisterRequest{
		UserName: "alice", Password: "1234", CharacterID: models.SpeakerTsumugi,
	})

	require.NoError(t, err)
	assert.Equal(t, "u-1", got.User.UserID)
	assert.Equal(t, "header-token", a.Token())
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusConflict, models.ErrorResponse{Error: "user name already exists"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.RegisterRequest{UserName: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "user name already exists")
	assert.Empty(t, a.Token())
}

func TestLogin_TokenFromBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/login", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.AuthResponse{
			Token: "body-token",
			User:  models.User{UserID: "u-1", UserName: "alice", CharacterID: 3},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.LoginRequest{UserName: "alice", Password: "1234"})

	require.NoError(t, err)
	assert.Equal(t, "alice", got.User.UserName)
	assert.Equal(t, "body-token", a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "invalid credentials"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{UserName: "alice", Password: "0000"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogin_NoToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.AuthResponse{User: models.User{UserID: "u-1"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{UserName: "alice", Password: "1234"})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── Session ─────────────────────────────────────────────────────────────────

func TestSendMessage_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/session/messages", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var req models.MessageRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Hello", req.Text)

		writeJSON(t, w, http.StatusOK, models.MessageResult{
			Feedback: "いいね", FeedbackOK: true, AudioID: "a-1", AudioOK: true,
			Transcript: models.Transcript{
				{Speaker: models.SpeakerUser, Text: "Hello"},
				{Speaker: models.SpeakerCharacter, Text: "いいね"},
			},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(" tok ")
	got, err := a.SendMessage(context.Background(), "Hello")

	require.NoError(t, err)
	assert.True(t, got.FeedbackOK)
	assert.Equal(t, []string{"Hello", "いいね"}, got.Transcript.Lines())
}

func TestSendMessage_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusConflict, models.ErrorResponse{Error: "message is already being processed"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SendMessage(context.Background(), "Hello")

	assert.ErrorIs(t, err, ErrConflict)
}

func TestSaveSession_BadGateway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/session/save", r.URL.Path)
		writeJSON(t, w, http.StatusBadGateway, models.ErrorResponse{Error: "save failed"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SaveSession(context.Background())

	assert.ErrorIs(t, err, ErrBadGateway)
}

func TestSaveSession_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.SaveResponse{ChatID: "c-1", Message: "saved"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.SaveSession(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "c-1", got.ChatID)
}

func TestClearSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/session", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.ClearSession(context.Background()))
}

func TestResumeSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.ResumeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "c-1", req.ChatID)

		writeJSON(t, w, http.StatusOK, models.SessionView{
			State:      models.StateIdle,
			Transcript: models.Transcript{{Speaker: models.SpeakerUser, Text: "old"}},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	view, err := a.ResumeSession(context.Background(), "c-1")

	require.NoError(t, err)
	assert.Equal(t, models.StateIdle, view.State)
	assert.Len(t, view.Transcript, 1)
}

func TestResumeSession_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Error: "progress log not found"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.ResumeSession(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAudio(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/session/audio", r.URL.Path)
		w.Header().Set("Content-Type", models.ContentTypeWAV)
		_, _ = w.Write([]byte("RIFF"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	data, err := a.Audio(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []byte("RIFF"), data)
}

// ── Logs / characters ───────────────────────────────────────────────────────

func TestFetchLogs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/logs", r.URL.Path)
		assert.Equal(t, "2025-11-04", r.URL.Query().Get("date"))

		writeJSON(t, w, http.StatusOK, models.LogsResponse{
			Date:   "2025-11-04",
			Logs:   []models.ProgressLog{{ChatID: "c-1"}, {ChatID: "c-2"}},
			Length: 2,
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.FetchLogs(context.Background(), "2025-11-04")

	require.NoError(t, err)
	assert.Equal(t, 2, got.Length)
	assert.Equal(t, "c-2", got.Logs[1].ChatID)
}

func TestGetLog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/logs/c-1", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.ProgressLog{ChatID: "c-1", UserID: "u-1"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetLog(context.Background(), "c-1")

	require.NoError(t, err)
	assert.Equal(t, "u-1", got.UserID)
}

func TestUpdateCharacter_FailureInResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		writeJSON(t, w, http.StatusOK, models.UpdateResult{Success: false, Error: "unknown character"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.UpdateCharacter(context.Background(), 99)

	require.NoError(t, err)
	assert.False(t, got.Success)
	assert.Equal(t, "unknown character", got.Error)
}

func TestCharacters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.Characters())
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")
	got, err := a.Characters(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestVersion_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("internal server error"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Version(context.Background())

	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8080", "http://localhost:8080", false},
		{"no scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash", "http://localhost:8080/", "http://localhost:8080", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
