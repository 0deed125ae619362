package models

import "time"

// User represents an account of the feedback application.
// Password holds a bcrypt hash once the user is persisted; the plain value
// only travels inside registration and login requests.
type User struct {
	// UserID is the opaque unique identifier (UUIDv7 string) of the user.
	UserID string `json:"user_id"`

	// UserName is the unique login name chosen at sign-up.
	UserName string `json:"user_name"`

	// Password is the plain password in requests and the bcrypt hash at rest.
	// It is never written into responses.
	Password string `json:"password,omitempty"`

	// CharacterID selects the persona and the VOICEVOX speaker.
	CharacterID int `json:"character_id"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns a copy of u that is safe to send to clients.
func (u User) Public() User {
	u.Password = ""
	return u
}

// CharacterUpdateRequest is the body of PUT /api/user/character.
type CharacterUpdateRequest struct {
	CharacterID int `json:"character_id"`
}

// UpdateResult reports the outcome of a single-field user update.
// Failures are carried in Error instead of a transport error.
type UpdateResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// AuthResponse is returned by the register and login endpoints.
// The token is duplicated in the Authorization header.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
