package tui

import (
	"github.com/MKhiriev/go-ai-feedback/models"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to the
// new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload any
}

// AuthResult finishes the login flow when Err is nil.
type AuthResult struct {
	Session models.LocalSession
	Err     error
}

type charactersLoadedMsg struct {
	characters []models.Character
	err        error
}

type messageSentMsg struct {
	result models.MessageResult
	err    error
}

type sessionLoadedMsg struct {
	view models.SessionView
	err  error
}

type savedMsg struct {
	resp models.SaveResponse
	err  error
}

type clearedMsg struct {
	err error
}

type replayedMsg struct {
	err error
}

type logsLoadedMsg struct {
	date string
	logs []models.ProgressLog
	err  error
}

type characterUpdatedMsg struct {
	session models.LocalSession
	err     error
}

// heartbeatMsg carries a change of server reachability.
type heartbeatMsg struct {
	online bool
}

type logoutMsg struct{}

type clearStatusMsg struct{}
