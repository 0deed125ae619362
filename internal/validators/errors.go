package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUserName     = errors.New("user name is required")
	ErrPasswordTooShort  = errors.New("password must be at least 4 characters")
	ErrPasswordNotDigits = errors.New("password must contain digits only")
	ErrUnknownCharacter  = errors.New("unknown character")
	ErrEmptyUserID       = errors.New("user ID is required")

	ErrEmptyText   = errors.New("message text is required")
	ErrEmptyChatID = errors.New("chat ID is required")
	ErrInvalidDate = errors.New("date must be formatted as YYYY-MM-DD")
)
