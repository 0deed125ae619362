package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-ai-feedback/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByName(ctx context.Context, userName string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	UpdateCharacter(ctx context.Context, userID string, characterID int) error
}

// ProgressLogRepository persists saved transcripts. Logs are immutable once
// written, so there is no update or delete.
type ProgressLogRepository interface {
	SaveLog(ctx context.Context, log models.ProgressLog) (models.ProgressLog, error)
	// FindLogsInRange returns the user's logs with from <= created_at < to,
	// oldest first.
	FindLogsInRange(ctx context.Context, userID string, from, to time.Time) ([]models.ProgressLog, error)
	// FindRecentLogs returns at most limit logs of the user, newest first.
	FindRecentLogs(ctx context.Context, userID string, limit int) ([]models.ProgressLog, error)
	FindLogByID(ctx context.Context, chatID, userID string) (models.ProgressLog, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
