// Package utils holds small helpers shared by the server and the client:
// context values, password hashing, JSON and audio responses, the resty
// client, JWT handling and id generation.
package utils

import (
	"context"
)

type userIDKey struct{}

// WithUserID returns a copy of ctx carrying the authenticated user id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFromContext returns the id stored by WithUserID. Empty ids are
// reported as missing.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey{}).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}
