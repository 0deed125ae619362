package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-ai-feedback/internal/app"
	"github.com/MKhiriev/go-ai-feedback/internal/store"
	"github.com/MKhiriev/go-ai-feedback/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFetchLogs(t *testing.T) {
	t.Run("logs of the day", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.authorize()
		logs := []models.ProgressLog{
			{ChatID: "a", UserID: testUserID, ChatLog: testTranscript},
			{ChatID: "b", UserID: testUserID, ChatLog: testTranscript[:1]},
		}
		f.history.EXPECT().FetchLogs(gomock.Any(), "2025-01-02", testUserID).Return(logs)

		rec := f.do(http.MethodGet, "/api/logs?date=2025-01-02", nil, testToken)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[models.LogsResponse](t, rec)
		assert.Equal(t, "2025-01-02", body.Date)
		assert.Equal(t, 2, body.Length)
		assert.Equal(t, "b", body.Logs[1].ChatID)
	})

	t.Run("empty day", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.authorize()
		f.history.EXPECT().FetchLogs(gomock.Any(), "2025-01-03", testUserID).Return([]models.ProgressLog{})

		rec := f.do(http.MethodGet, "/api/logs?date=2025-01-03", nil, testToken)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Zero(t, decodeBody[models.LogsResponse](t, rec).Length)
	})

	for _, date := range []string{"", "2025-1-2", "yesterday", "2025-02-30"} {
		t.Run("bad date "+date, func(t *testing.T) {
			f := newHandlerFixture(t)
			f.authorize()

			rec := f.do(http.MethodGet, "/api/logs?date="+date, nil, testToken)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, app.MsgInvalidDate, errorMessage(t, rec))
		})
	}
}

func TestGetLog(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.authorize()
		f.history.EXPECT().GetLog(gomock.Any(), "chat-1", testUserID).
			Return(models.ProgressLog{ChatID: "chat-1", ChatLog: testTranscript}, nil)

		rec := f.do(http.MethodGet, "/api/logs/chat-1", nil, testToken)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, testTranscript, decodeBody[models.ProgressLog](t, rec).ChatLog)
	})

	t.Run("not found", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.authorize()
		f.history.EXPECT().GetLog(gomock.Any(), "chat-2", testUserID).
			Return(models.ProgressLog{}, fmt.Errorf("fetching progress log: %w", store.ErrProgressLogNotFound))

		rec := f.do(http.MethodGet, "/api/logs/chat-2", nil, testToken)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGetServerVersion(t *testing.T) {
	f := newHandlerFixture(t)
	want := models.VersionResponse{Version: "1.2.0", BuildDate: "2025-01-01", BuildCommit: "abc123"}
	f.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(want)

	rec := f.do(http.MethodGet, "/api/version", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, want, decodeBody[models.VersionResponse](t, rec))
}
