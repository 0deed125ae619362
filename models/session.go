package models

import "time"

// SessionState is the position of a session in the message pipeline.
type SessionState string

const (
	StateIdle             SessionState = "idle"
	StateSubmitting       SessionState = "submitting"
	StateAwaitingFeedback SessionState = "awaiting_feedback"
	StateAwaitingAudio    SessionState = "awaiting_audio"
)

// MessageRequest is the body of POST /api/session/messages.
type MessageRequest struct {
	Text string `json:"text"`
}

// MessageResult describes the outcome of one submitted message.
type MessageResult struct {
	// Feedback is the generated text, empty when FeedbackOK is false.
	Feedback   string `json:"feedback,omitempty"`
	FeedbackOK bool   `json:"feedback_ok"`

	// AudioID references the clip served by GET /api/session/audio.
	AudioID string `json:"audio_id,omitempty"`
	AudioOK bool   `json:"audio_ok"`

	// Notice is a user-facing message for a degraded pipeline.
	Notice string `json:"notice,omitempty"`

	Transcript Transcript `json:"transcript"`
}

// SessionView is a read-only snapshot of a session.
type SessionView struct {
	State      SessionState `json:"state"`
	Processing bool         `json:"processing"`
	Saving     bool         `json:"saving"`
	Transcript Transcript   `json:"transcript"`
	AudioID    string       `json:"audio_id,omitempty"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// ResumeRequest is the body of POST /api/session/resume.
type ResumeRequest struct {
	ChatID string `json:"chat_id"`
}

// LocalSession is the client-side record of the logged-in user.
type LocalSession struct {
	UserID      string `json:"user_id"`
	CharacterID int    `json:"character_id"`
	UserName    string `json:"user_name"`
	Token       string `json:"token"`
}

// Valid reports whether every field required to resume is present.
func (s LocalSession) Valid() bool {
	return s.UserID != "" && s.CharacterID != 0 && s.UserName != "" && s.Token != ""
}
