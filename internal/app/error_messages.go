// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// feedback server handlers and the terminal client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. The client
// maps them back to its own errors, so the wording must stay in one place.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation (e.g. password policy, unknown character).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied name/password
	// combination does not match any existing user record.
	MsgInvalidLoginPassword = "invalid user name/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when a handler requires a user ID
	// extracted from the JWT claim but none is present in the request context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgUserNameAlreadyExists is returned when a registration attempt is
	// rejected because the requested user name is already in use.
	MsgUserNameAlreadyExists = "user name already exists"

	// MsgRegistrationFailed is returned when the registration handler
	// encounters an unexpected error that prevents account creation.
	MsgRegistrationFailed = "registration failed"

	// MsgLoginFailed is returned when the login handler encounters an
	// unexpected error that prevents issuing a session token.
	MsgLoginFailed = "login failed"

	// MsgEmptyInput is returned when a chat message has no text.
	MsgEmptyInput = "message text is empty"

	// MsgAlreadyProcessing is returned when a message is submitted while the
	// previous one is still in the pipeline.
	MsgAlreadyProcessing = "a message is already being processed"

	// MsgAlreadySaving is returned when a save is requested while another
	// save of the same session is running.
	MsgAlreadySaving = "the transcript is already being saved"

	// MsgEmptyTranscript is returned when saving a session without turns.
	MsgEmptyTranscript = "nothing to save"

	// MsgSaveFailed is returned when the transcript could not be persisted.
	// The session keeps its transcript so the save can be retried.
	MsgSaveFailed = "failed to save the transcript, please try again"

	// MsgSaved is written into successful save responses.
	MsgSaved = "saved"

	// MsgLogNotFound is returned when a saved chat does not exist for the
	// current user.
	MsgLogNotFound = "progress log not found"

	// MsgNoAudio is returned when the session has no playable clip.
	MsgNoAudio = "no audio in the session"

	// MsgInvalidDate is returned for a malformed date query parameter.
	MsgInvalidDate = "date must be formatted as YYYY-MM-DD"
)
