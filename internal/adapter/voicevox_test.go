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

const testAudioQuery = `{"accent_phrases":[{"moras":[{"text":"テ","consonant":"t","consonant_length":0.05,` +
	`"vowel":"e","vowel_length":0.1,"pitch":5.5}],"accent":1,"pause_mora":null,"is_interrogative":false}],` +
	`"speedScale":1,"pitchScale":0,"intonationScale":1,"volumeScale":1,"prePhonemeLength":0.1,` +
	`"postPhonemeLength":0.1,"outputSamplingRate":24000,"outputStereo":false,"kana":"テ'"}`

func newTestVoiceVox(serverURL string) SpeechEngine {
	return NewVoiceVoxClient(config.VoiceVox{BaseURL: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
}

func TestAudioQuery_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/audio_query", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("speaker"))
		assert.Equal(t, "テスト", r.URL.Query().Get("text"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(testAudioQuery))
	}))
	defer srv.Close()

	q, err := newTestVoiceVox(srv.URL).AudioQuery(context.Background(), "テスト", models.SpeakerZundamon)

	require.NoError(t, err)
	require.Len(t, q.AccentPhrases, 1)
	assert.Equal(t, 24000, q.OutputSamplingRate)
}

func TestAudioQuery_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	_, err := newTestVoiceVox(srv.URL).AudioQuery(context.Background(), "テスト", 3)

	assert.ErrorIs(t, err, ErrUpstreamStatus)
}

func TestSynthesis_SendsQueryAsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/synthesis", r.URL.Path)
		assert.Equal(t, "8", r.URL.Query().Get("speaker"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.InDelta(t, 1.15, body["speedScale"], 1e-9)
		assert.InDelta(t, 1.7, body["volumeScale"], 1e-9)

		w.Header().Set("Content-Type", models.ContentTypeWAV)
		_, _ = w.Write([]byte("RIFFwav"))
	}))
	defer srv.Close()

	q := models.AudioQuery{SpeedScale: 1.15, VolumeScale: 1.7, OutputSamplingRate: 24000}
	audio, err := newTestVoiceVox(srv.URL).Synthesis(context.Background(), q, models.SpeakerTsumugi)

	require.NoError(t, err)
	assert.Equal(t, []byte("RIFFwav"), audio)
}

func TestSynthesis_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	_, err := newTestVoiceVox(srv.URL).Synthesis(context.Background(), models.AudioQuery{}, 3)

	assert.ErrorIs(t, err, ErrEmptyAudio)
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/version", r.URL.Path)
		_, _ = w.Write([]byte(`"0.14.5"`))
	}))
	defer srv.Close()

	v, err := newTestVoiceVox(srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "0.14.5", v)
}

func TestVersion_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestVoiceVox(url).Version(context.Background())

	assert.Error(t, err)
}
