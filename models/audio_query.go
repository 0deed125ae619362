package models

import "encoding/json"

// Mora is one phonetic unit of an accent phrase as returned by VOICEVOX.
type Mora struct {
	Text            string   `json:"text"`
	Consonant       *string  `json:"consonant"`
	ConsonantLength *float64 `json:"consonant_length"`
	Vowel           string   `json:"vowel"`
	VowelLength     float64  `json:"vowel_length"`
	Pitch           float64  `json:"pitch"`
}

// AccentPhrase groups moras sharing one accent.
type AccentPhrase struct {
	Moras           []Mora `json:"moras"`
	Accent          int    `json:"accent"`
	PauseMora       *Mora  `json:"pause_mora"`
	IsInterrogative bool   `json:"is_interrogative"`
}

// AudioQuery is the synthesis query document produced by /audio_query and
// consumed by /synthesis. Fields the engine adds in newer versions are kept
// in Extra and written back unchanged.
type AudioQuery struct {
	AccentPhrases      []AccentPhrase `json:"accent_phrases"`
	SpeedScale         float64        `json:"speedScale"`
	PitchScale         float64        `json:"pitchScale"`
	IntonationScale    float64        `json:"intonationScale"`
	VolumeScale        float64        `json:"volumeScale"`
	PrePhonemeLength   float64        `json:"prePhonemeLength"`
	PostPhonemeLength  float64        `json:"postPhonemeLength"`
	OutputSamplingRate int            `json:"outputSamplingRate"`
	OutputStereo       bool           `json:"outputStereo"`
	Kana               *string        `json:"kana,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

type audioQueryFields AudioQuery

// UnmarshalJSON implements [json.Unmarshaler].
func (q *AudioQuery) UnmarshalJSON(b []byte) error {
	var fields audioQueryFields
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}

	var all map[string]json.RawMessage
	if err := json.Unmarshal(b, &all); err != nil {
		return err
	}
	for _, known := range audioQueryKnownKeys {
		delete(all, known)
	}
	if len(all) > 0 {
		fields.Extra = all
	}

	*q = AudioQuery(fields)
	return nil
}

// MarshalJSON implements [json.Marshaler].
func (q AudioQuery) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(audioQueryFields(q))
	if err != nil || len(q.Extra) == 0 {
		return known, err
	}

	merged := make(map[string]json.RawMessage, len(q.Extra)+len(audioQueryKnownKeys))
	for k, v := range q.Extra {
		merged[k] = v
	}
	var knownMap map[string]json.RawMessage
	if err = json.Unmarshal(known, &knownMap); err != nil {
		return nil, err
	}
	for k, v := range knownMap {
		merged[k] = v
	}

	return json.Marshal(merged)
}

var audioQueryKnownKeys = []string{
	"accent_phrases", "speedScale", "pitchScale", "intonationScale", "volumeScale",
	"prePhonemeLength", "postPhonemeLength", "outputSamplingRate", "outputStereo", "kana",
}
