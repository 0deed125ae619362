package models

// LogsResponse is returned by GET /api/logs.
type LogsResponse struct {
	// Date echoes the requested calendar day (YYYY-MM-DD).
	Date string `json:"date"`

	// Logs are the progress logs of that day in ascending creation order.
	Logs []ProgressLog `json:"logs"`

	// Length is the number of entries in Logs.
	Length int `json:"length"`
}

// SaveResponse is returned by POST /api/session/save.
type SaveResponse struct {
	ChatID    string `json:"chat_id"`
	CreatedAt string `json:"created_at"`
	Message   string `json:"message"`
}
