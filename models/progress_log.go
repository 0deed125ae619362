// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Speaker tags the author of a transcript entry.
type Speaker string

const (
	// SpeakerUser marks text typed by the user.
	SpeakerUser Speaker = "user"

	// SpeakerCharacter marks feedback produced for the selected character.
	SpeakerCharacter Speaker = "character"
)

// Entry is a single turn of a transcript.
type Entry struct {
	Speaker Speaker `json:"speaker"`
	Text    string  `json:"text"`
}

// Transcript is the ordered sequence of turns of one chat session.
//
// It is stored as a JSON array in the chatlog column and implements
// [driver.Valuer] and [sql.Scanner] for that purpose.
type Transcript []Entry

// Clone returns an independent copy of t.
func (t Transcript) Clone() Transcript {
	if t == nil {
		return Transcript{}
	}
	out := make(Transcript, len(t))
	copy(out, t)
	return out
}

// Lines flattens the transcript into its texts, in order.
func (t Transcript) Lines() []string {
	lines := make([]string, 0, len(t))
	for _, e := range t {
		lines = append(lines, e.Text)
	}
	return lines
}

// Value implements [driver.Valuer].
func (t Transcript) Value() (driver.Value, error) {
	if t == nil {
		t = Transcript{}
	}
	b, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("error encoding transcript: %w", err)
	}
	return string(b), nil
}

// Scan implements [sql.Scanner].
//
// Legacy rows store a plain JSON array of strings; those are tagged by
// position (even index = user, odd index = character).
func (t *Transcript) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*t = Transcript{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported transcript source type %T", src)
	}

	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err == nil {
		*t = entries
		return nil
	}

	var lines []string
	if err := json.Unmarshal(raw, &lines); err != nil {
		return errors.Join(ErrMalformedTranscript, err)
	}

	out := make(Transcript, 0, len(lines))
	for i, line := range lines {
		speaker := SpeakerUser
		if i%2 == 1 {
			speaker = SpeakerCharacter
		}
		out = append(out, Entry{Speaker: speaker, Text: line})
	}
	*t = out
	return nil
}

// ErrMalformedTranscript is returned by [Transcript.Scan] for chatlog values
// that are neither tagged entries nor a list of strings.
var ErrMalformedTranscript = errors.New("malformed transcript")

// ProgressLog is a persisted, immutable snapshot of a transcript.
type ProgressLog struct {
	ChatID    string     `json:"chat_id"`
	UserID    string     `json:"user_id"`
	ChatLog   Transcript `json:"chatlog"`
	CreatedAt time.Time  `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the ProgressLog model.
func (p ProgressLog) TableName() string {
	return "progress_logs"
}
