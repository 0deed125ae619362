package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-ai-feedback/internal/adapter"
	"github.com/MKhiriev/go-ai-feedback/internal/app"
	"github.com/MKhiriev/go-ai-feedback/internal/logger"
	"github.com/MKhiriev/go-ai-feedback/internal/mock"
	"github.com/MKhiriev/go-ai-feedback/internal/store"
	"github.com/MKhiriev/go-ai-feedback/internal/validators"
	"github.com/MKhiriev/go-ai-feedback/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestClientChat(t *testing.T) (ClientChatService, *mock.MockServerAdapter, *mock.MockAudioPlayer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	player := mock.NewMockAudioPlayer(ctrl)
	return NewClientChatService(serverAdapter, player, logger.Nop()), serverAdapter, player
}

func TestClientChatService_Send_PlaysAudio(t *testing.T) {
	svc, serverAdapter, player := newTestClientChat(t)
	result := models.MessageResult{Feedback: "fb", FeedbackOK: true, AudioOK: true, AudioID: "a-1"}

	gomock.InOrder(
		serverAdapter.EXPECT().SendMessage(gomock.Any(), "Hello").Return(result, nil),
		serverAdapter.EXPECT().Audio(gomock.Any()).Return([]byte("wav"), nil),
		player.EXPECT().Play(gomock.Any(), []byte("wav")).Return(nil),
	)

	got, err := svc.Send(context.Background(), "Hello")
	require.NoError(t, err)
	assert.Equal(t, result, got)
}

func TestClientChatService_Send_NoAudio(t *testing.T) {
	svc, serverAdapter, player := newTestClientChat(t)
	serverAdapter.EXPECT().SendMessage(gomock.Any(), "Hello").
		Return(models.MessageResult{FeedbackOK: true, Notice: NoticeQueryFailed}, nil)
	serverAdapter.EXPECT().Audio(gomock.Any()).Times(0)
	player.EXPECT().Play(gomock.Any(), gomock.Any()).Times(0)

	got, err := svc.Send(context.Background(), "Hello")
	require.NoError(t, err)
	assert.Equal(t, NoticeQueryFailed, got.Notice)
}

func TestClientChatService_Send_PlaybackFailureIsNotAnError(t *testing.T) {
	svc, serverAdapter, player := newTestClientChat(t)
	serverAdapter.EXPECT().SendMessage(gomock.Any(), "Hello").Return(models.MessageResult{AudioOK: true}, nil)
	serverAdapter.EXPECT().Audio(gomock.Any()).Return([]byte("wav"), nil)
	player.EXPECT().Play(gomock.Any(), gomock.Any()).Return(assert.AnError)

	_, err := svc.Send(context.Background(), "Hello")
	assert.NoError(t, err)
}

func TestClientChatService_Send_Errors(t *testing.T) {
	t.Run("empty input never reaches the server", func(t *testing.T) {
		svc, _, _ := newTestClientChat(t)

		_, err := svc.Send(context.Background(), "  ")
		assert.ErrorIs(t, err, ErrEmptyInput)
	})

	t.Run("already processing", func(t *testing.T) {
		svc, serverAdapter, _ := newTestClientChat(t)
		serverAdapter.EXPECT().SendMessage(gomock.Any(), "Hello").
			Return(models.MessageResult{}, fmt.Errorf("%w: %s", adapter.ErrConflict, app.MsgAlreadyProcessing))

		_, err := svc.Send(context.Background(), "Hello")
		assert.ErrorIs(t, err, ErrAlreadyProcessing)
	})
}

func TestClientChatService_Save(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		wantIs error
	}{
		{"saved", nil, nil},
		{"empty", fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgEmptyTranscript), ErrEmptyTranscript},
		{"store failure", fmt.Errorf("%w: %s", adapter.ErrBadGateway, app.MsgSaveFailed), ErrSaveFailed},
		{"already saving", fmt.Errorf("%w: %s", adapter.ErrConflict, app.MsgAlreadySaving), ErrAlreadySaving},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, serverAdapter, _ := newTestClientChat(t)
			serverAdapter.EXPECT().SaveSession(gomock.Any()).Return(models.SaveResponse{ChatID: "c-1"}, tt.err)

			_, err := svc.Save(context.Background())
			if tt.wantIs == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantIs)
		})
	}
}

func TestClientChatService_ClearReleasesAudio(t *testing.T) {
	svc, serverAdapter, player := newTestClientChat(t)
	gomock.InOrder(
		serverAdapter.EXPECT().ClearSession(gomock.Any()).Return(nil),
		player.EXPECT().Release().Return(nil),
	)

	assert.NoError(t, svc.Clear(context.Background()))
}

func TestClientChatService_Resume(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, serverAdapter, player := newTestClientChat(t)
		view := models.SessionView{Transcript: models.Transcript{{Speaker: models.SpeakerUser, Text: "old"}}}
		serverAdapter.EXPECT().ResumeSession(gomock.Any(), "c-1").Return(view, nil)
		player.EXPECT().Release().Return(nil)

		got, err := svc.Resume(context.Background(), "c-1")
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("missing log", func(t *testing.T) {
		svc, serverAdapter, _ := newTestClientChat(t)
		serverAdapter.EXPECT().ResumeSession(gomock.Any(), "c-2").
			Return(models.SessionView{}, fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgLogNotFound))

		_, err := svc.Resume(context.Background(), "c-2")
		assert.ErrorIs(t, err, store.ErrProgressLogNotFound)
	})

	t.Run("empty chat id", func(t *testing.T) {
		svc, _, _ := newTestClientChat(t)

		_, err := svc.Resume(context.Background(), "")
		assert.ErrorIs(t, err, validators.ErrEmptyChatID)
	})
}

func TestClientChatService_Logs(t *testing.T) {
	t.Run("invalid date", func(t *testing.T) {
		svc, _, _ := newTestClientChat(t)

		_, err := svc.Logs(context.Background(), "2026/01/02")
		assert.ErrorIs(t, err, validators.ErrInvalidDate)
	})

	t.Run("empty day", func(t *testing.T) {
		svc, serverAdapter, _ := newTestClientChat(t)
		serverAdapter.EXPECT().FetchLogs(gomock.Any(), "2026-01-02").Return(models.LogsResponse{Date: "2026-01-02"}, nil)

		got, err := svc.Logs(context.Background(), "2026-01-02")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestClientChatService_WithoutPlayer(t *testing.T) {
	serverAdapter := mock.NewMockServerAdapter(gomock.NewController(t))
	svc := NewClientChatService(serverAdapter, nil, logger.Nop())

	serverAdapter.EXPECT().SendMessage(gomock.Any(), "Hello").Return(models.MessageResult{AudioOK: true}, nil)
	serverAdapter.EXPECT().ClearSession(gomock.Any()).Return(nil)

	_, err := svc.Send(context.Background(), "Hello")
	assert.NoError(t, err)
	assert.NoError(t, svc.Clear(context.Background()))
	assert.NoError(t, svc.Replay(context.Background()))
}
