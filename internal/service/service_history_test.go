package service

import (
	"context"
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/MKhiriev/go-ai-feedback/internal/config"
	"github.com/MKhiriev/go-ai-feedback/internal/logger"
	"github.com/MKhiriev/go-ai-feedback/internal/mock"
	"github.com/MKhiriev/go-ai-feedback/internal/store"
	"github.com/MKhiriev/go-ai-feedback/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestHistoryService(t *testing.T, tz string) (HistoryService, *mock.MockProgressLogRepository, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	logs := mock.NewMockProgressLogRepository(ctrl)
	users := mock.NewMockUserRepository(ctrl)
	return NewHistoryService(logs, users, config.App{TimeZone: tz}, logger.Nop()), logs, users
}

func TestHistoryService_FetchLogs_DayRange(t *testing.T) {
	svc, logs, _ := newTestHistoryService(t, "UTC")
	want := []models.ProgressLog{{ChatID: "c-1"}, {ChatID: "c-2"}}

	logs.EXPECT().FindLogsInRange(gomock.Any(), "u-1", gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, from, to time.Time) ([]models.ProgressLog, error) {
			assert.True(t, from.Equal(time.Date(2025, 11, 4, 0, 0, 0, 0, time.UTC)), "from = %s", from)
			assert.True(t, to.Equal(time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC)), "to = %s", to)
			return want, nil
		},
	)

	got := svc.FetchLogs(context.Background(), "2025-11-04", "u-1")

	assert.Equal(t, want, got)
}

func TestHistoryService_FetchLogs_TimeZone(t *testing.T) {
	svc, logs, _ := newTestHistoryService(t, "Asia/Tokyo")
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	logs.EXPECT().FindLogsInRange(gomock.Any(), "u-1", gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, from, to time.Time) ([]models.ProgressLog, error) {
			assert.True(t, from.Equal(time.Date(2025, 11, 4, 0, 0, 0, 0, tokyo)))
			assert.True(t, from.Equal(time.Date(2025, 11, 3, 15, 0, 0, 0, time.UTC)))
			assert.Equal(t, 24*time.Hour, to.Sub(from))
			return nil, nil
		},
	)

	got := svc.FetchLogs(context.Background(), "2025-11-04", "u-1")

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestHistoryService_FetchLogs_NoStoreCall(t *testing.T) {
	svc, _, _ := newTestHistoryService(t, "UTC")
	ctx := context.Background()

	assert.Empty(t, svc.FetchLogs(ctx, "", "u-1"))
	assert.Empty(t, svc.FetchLogs(ctx, "2025-11-04", ""))
	assert.Empty(t, svc.FetchLogs(ctx, "2025/11/04", "u-1"))
}

func TestHistoryService_FetchLogs_StoreError(t *testing.T) {
	svc, logs, _ := newTestHistoryService(t, "UTC")
	logs.EXPECT().FindLogsInRange(gomock.Any(), "u-1", gomock.Any(), gomock.Any()).
		Return(nil, store.ErrExecutingQuery)

	got := svc.FetchLogs(context.Background(), "2025-11-04", "u-1")

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestHistoryService_UnknownTimeZoneFallsBackToUTC(t *testing.T) {
	svc, logs, _ := newTestHistoryService(t, "Mars/Olympus")
	logs.EXPECT().FindLogsInRange(gomock.Any(), "u-1", gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, from, _ time.Time) ([]models.ProgressLog, error) {
			assert.True(t, from.Equal(time.Date(2025, 11, 4, 0, 0, 0, 0, time.UTC)))
			return nil, nil
		},
	)

	svc.FetchLogs(context.Background(), "2025-11-04", "u-1")
}

func TestHistoryService_RecentLogs(t *testing.T) {
	svc, logs, _ := newTestHistoryService(t, "UTC")
	want := []models.ProgressLog{{ChatID: "newest"}, {ChatID: "older"}}
	logs.EXPECT().FindRecentLogs(gomock.Any(), "u-1", 5).Return(want, nil)

	got, err := svc.RecentLogs(context.Background(), "u-1", 5)

	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = svc.RecentLogs(context.Background(), "", 5)
	assert.Error(t, err)
}

func TestHistoryService_RecentLogs_Error(t *testing.T) {
	svc, logs, _ := newTestHistoryService(t, "UTC")
	logs.EXPECT().FindRecentLogs(gomock.Any(), "u-1", 5).Return(nil, store.ErrExecutingQuery)

	_, err := svc.RecentLogs(context.Background(), "u-1", 5)

	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestHistoryService_AppendLog(t *testing.T) {
	entry := models.ProgressLog{ChatID: "c-1", UserID: "u-1", ChatLog: models.Transcript{{Speaker: models.SpeakerUser, Text: "Hello"}}}

	t.Run("success", func(t *testing.T) {
		svc, logs, _ := newTestHistoryService(t, "UTC")
		logs.EXPECT().SaveLog(gomock.Any(), entry).Return(entry, nil)

		got := svc.AppendLog(context.Background(), entry)

		require.NotNil(t, got)
		assert.Equal(t, "c-1", got.ChatID)
	})

	t.Run("failure returns nil", func(t *testing.T) {
		svc, logs, _ := newTestHistoryService(t, "UTC")
		logs.EXPECT().SaveLog(gomock.Any(), entry).Times(1).Return(models.ProgressLog{}, errors.New("boom"))

		assert.Nil(t, svc.AppendLog(context.Background(), entry))
	})
}

func TestHistoryService_GetLog(t *testing.T) {
	svc, logs, _ := newTestHistoryService(t, "UTC")
	logs.EXPECT().FindLogByID(gomock.Any(), "c-1", "u-1").Return(models.ProgressLog{ChatID: "c-1"}, nil)
	logs.EXPECT().FindLogByID(gomock.Any(), "c-2", "u-1").Return(models.ProgressLog{}, store.ErrProgressLogNotFound)

	got, err := svc.GetLog(context.Background(), "c-1", "u-1")
	require.NoError(t, err)
	assert.Equal(t, "c-1", got.ChatID)

	_, err = svc.GetLog(context.Background(), "c-2", "u-1")
	assert.ErrorIs(t, err, store.ErrProgressLogNotFound)

	_, err = svc.GetLog(context.Background(), "", "u-1")
	assert.ErrorIs(t, err, store.ErrProgressLogNotFound)
}

func TestHistoryService_UpdateUserCharacter(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, _, users := newTestHistoryService(t, "UTC")
		users.EXPECT().UpdateCharacter(gomock.Any(), "u-1", models.SpeakerMeimeiHimari).Return(nil)

		got := svc.UpdateUserCharacter(context.Background(), "u-1", models.SpeakerMeimeiHimari)

		assert.Equal(t, models.UpdateResult{Success: true}, got)
	})

	t.Run("unknown character makes no store call", func(t *testing.T) {
		svc, _, _ := newTestHistoryService(t, "UTC")

		got := svc.UpdateUserCharacter(context.Background(), "u-1", 42)

		assert.False(t, got.Success)
		assert.NotEmpty(t, got.Error)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, _, users := newTestHistoryService(t, "UTC")
		users.EXPECT().UpdateCharacter(gomock.Any(), "u-1", 3).Return(store.ErrExecutingStatement)

		got := svc.UpdateUserCharacter(context.Background(), "u-1", 3)

		assert.False(t, got.Success)
		assert.Equal(t, "failed to update character", got.Error)
	})

	t.Run("missing user", func(t *testing.T) {
		svc, _, users := newTestHistoryService(t, "UTC")
		users.EXPECT().UpdateCharacter(gomock.Any(), "ghost", 3).Return(store.ErrNoUserWasFound)

		got := svc.UpdateUserCharacter(context.Background(), "ghost", 3)

		assert.False(t, got.Success)
		assert.Equal(t, store.ErrNoUserWasFound.Error(), got.Error)
	})
}
