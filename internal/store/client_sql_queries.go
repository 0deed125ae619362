// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// localSessionKey is the only key the client session table ever holds.
const localSessionKey = "user"

const (
	createLocalSessionTable = `
		CREATE TABLE IF NOT EXISTS local_session (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);`

	getLocalSession = `
		SELECT value
		FROM local_session
		WHERE key = ?;`

	upsertLocalSession = `
		INSERT INTO local_session (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value      = excluded.value,
			updated_at = excluded.updated_at;`

	deleteLocalSession = `
		DELETE FROM local_session
		WHERE key = ?;`
)
