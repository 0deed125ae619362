package store

import (
	"time"

	"github.com/MKhiriev/go-ai-feedback/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (user_id, user_name, password, character_id)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, user_name, password, character_id, created_at;`

	findUserByName = `SELECT user_id, user_name, password, character_id, created_at
    FROM users
    WHERE user_name = $1;`

	findUserByID = `SELECT user_id, user_name, password, character_id, created_at
    FROM users
    WHERE user_id = $1;`

	updateUserCharacter = `UPDATE users
    SET character_id = $1
    WHERE user_id = $2;`
)

var (
	progressLogTable   = models.ProgressLog{}.TableName()
	progressLogColumns = []string{"chat_id", "user_id", "chatlog", "created_at"}
)

func progressLogs() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// buildSaveLogQuery inserts one log. created_at is supplied by the caller so
// that the saved timestamp matches the one reported to the user.
func buildSaveLogQuery(log models.ProgressLog) (string, []any, error) {
	return progressLogs().
		Insert(progressLogTable).
		Columns(progressLogColumns...).
		Values(log.ChatID, log.UserID, log.ChatLog, log.CreatedAt).
		ToSql()
}

// buildLogsInRangeQuery selects logs of one user created in [from, to).
func buildLogsInRangeQuery(userID string, from, to time.Time) (string, []any, error) {
	return progressLogs().
		Select(progressLogColumns...).
		From(progressLogTable).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.GtOrEq{"created_at": from}).
		Where(sq.Lt{"created_at": to}).
		OrderBy("created_at ASC").
		ToSql()
}

// buildRecentLogsQuery selects the newest limit logs of one user.
func buildRecentLogsQuery(userID string, limit int) (string, []any, error) {
	return progressLogs().
		Select(progressLogColumns...).
		From(progressLogTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
}

func buildLogByIDQuery(chatID, userID string) (string, []any, error) {
	return progressLogs().
		Select(progressLogColumns...).
		From(progressLogTable).
		Where(sq.Eq{"chat_id": chatID, "user_id": userID}).
		ToSql()
}
