package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-ai-feedback/internal/config"
	"github.com/MKhiriev/go-ai-feedback/internal/logger"
	"github.com/MKhiriev/go-ai-feedback/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGemini(serverURL, key string) TextGenerator {
	return NewGeminiClient(config.Gemini{
		APIKey:         key,
		BaseURL:        serverURL,
		Model:          "test-model",
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
}

func TestGenerateContent_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/test-model:generateContent", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("key"))

		var req models.GeminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Equal(t, "user", req.Contents[0].Role)
		assert.Equal(t, "prompt", req.Contents[0].Parts[0].Text)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"よくできました"}]}}],` +
			`"usageMetadata":{"promptTokenCount":10,"candidatesTokenCount":5,"totalTokenCount":15}}`))
	}))
	defer srv.Close()

	text, err := newTestGemini(srv.URL, "secret").GenerateContent(context.Background(), models.NewGeminiRequest("prompt"))

	require.NoError(t, err)
	assert.Equal(t, "よくできました", text)
}

func TestGenerateContent_MissingKeyMakesNoCall(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	_, err := newTestGemini(srv.URL, "").GenerateContent(context.Background(), models.NewGeminiRequest("prompt"))

	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Zero(t, calls.Load())
}

func TestGenerateContent_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"code":500}}`))
	}))
	defer srv.Close()

	_, err := newTestGemini(srv.URL, "secret").GenerateContent(context.Background(), models.NewGeminiRequest("prompt"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstreamStatus)
	assert.Contains(t, err.Error(), "500")
}

func TestGenerateContent_EmptyText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	_, err := newTestGemini(srv.URL, "secret").GenerateContent(context.Background(), models.NewGeminiRequest("prompt"))

	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestGenerateContent_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := newTestGemini(srv.URL, "secret").GenerateContent(context.Background(), models.NewGeminiRequest("prompt"))

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmptyResponse)
}
