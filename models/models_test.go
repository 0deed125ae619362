package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClip_Release(t *testing.T) {
	clip := NewClip("a-1", []byte("wav"))
	assert.Equal(t, []byte("wav"), clip.Data())
	assert.False(t, clip.Released())
	assert.Equal(t, ContentTypeWAV, clip.ContentType)

	clip.Release()
	clip.Release()
	assert.Nil(t, clip.Data())
	assert.True(t, clip.Released())

	var nilClip *Clip
	assert.Nil(t, nilClip.Data())
	assert.True(t, nilClip.Released())
	nilClip.Release()
}

func TestAudioQuery_PreservesUnknownFields(t *testing.T) {
	raw := `{"accent_phrases":[],"speedScale":1,"pitchScale":0,"intonationScale":1,` +
		`"volumeScale":1,"prePhonemeLength":0.1,"postPhonemeLength":0.1,` +
		`"outputSamplingRate":24000,"outputStereo":false,"kana":"テ'スト","pauseLengthScale":1.2}`

	var q AudioQuery
	require.NoError(t, json.Unmarshal([]byte(raw), &q))
	assert.Contains(t, q.Extra, "pauseLengthScale")

	q.SpeedScale = 1.15
	q.VolumeScale = 1.7

	out, err := json.Marshal(q)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.InDelta(t, 1.15, decoded["speedScale"], 1e-9)
	assert.InDelta(t, 1.7, decoded["volumeScale"], 1e-9)
	assert.InDelta(t, 1.2, decoded["pauseLengthScale"], 1e-9)
	assert.Equal(t, "テ'スト", decoded["kana"])
}

func TestFindCharacter(t *testing.T) {
	c, ok := FindCharacter(SpeakerTsumugi)
	require.True(t, ok)
	assert.Equal(t, "春日部つむぎ", c.Name)

	_, ok = FindCharacter(99)
	assert.False(t, ok)

	list := Characters()
	require.Len(t, list, 3)
	list[0].Name = "changed"
	assert.Equal(t, "ずんだもん", Characters()[0].Name)
}

func TestLocalSession_Valid(t *testing.T) {
	s := LocalSession{UserID: "u", CharacterID: 3, UserName: "n", Token: "t"}
	assert.True(t, s.Valid())

	s.Token = ""
	assert.False(t, s.Valid())
}

func TestGeminiResponse_Text(t *testing.T) {
	assert.Equal(t, "", GeminiResponse{}.Text())

	resp := GeminiResponse{Candidates: []GeminiCandidate{{
		Content: GeminiContent{Parts: []GeminiPart{{Text: "いいね"}, {Text: "ignored"}}},
	}}}
	assert.Equal(t, "いいね", resp.Text())
}

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "abc")
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "Build version: 1.0.0\nBuild date: N/A\nBuild commit: abc", info.String())
	assert.Equal(t, VersionResponse{Version: "1.0.0", BuildDate: "N/A", BuildCommit: "abc"}, info.Response())
}

func TestUser_Public(t *testing.T) {
	u := User{UserID: "u", Password: "hash"}
	assert.Empty(t, u.Public().Password)
	assert.Equal(t, "hash", u.Password)
}
