package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrPasswordHashingFailed   = errors.New("password hashing failed")
	ErrVersionIsNotSpecified   = errors.New("version is not specified")
)

// Session pipeline errors.
var (
	ErrEmptyInput        = errors.New("message text is empty")
	ErrAlreadyProcessing = errors.New("a message is already being processed")
	ErrAlreadySaving     = errors.New("the transcript is already being saved")
	ErrEmptyTranscript   = errors.New("nothing to save")
	ErrSaveFailed        = errors.New("failed to save the transcript")
	ErrNoAudio           = errors.New("no audio in the session")
)

// Client errors.
var (
	ErrNotLoggedIn      = errors.New("not logged in")
	ErrRegisterOnServer = errors.New("registration failed on server")
	ErrLoginOnServer    = errors.New("login failed on server")
)
