package validators

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-ai-feedback/models"
)

// DateLayout is the calendar-day format accepted by the logs endpoint.
const DateLayout = time.DateOnly

// LogDate is a calendar day requested by the history browser.
type LogDate string

type SessionValidator struct {
}

func NewSessionValidator() Validator {
	return &SessionValidator{}
}

func (v *SessionValidator) Validate(_ context.Context, obj any, _ ...string) error {
	switch value := obj.(type) {
	case models.MessageRequest:
		return validateText(value.Text)
	case *models.MessageRequest:
		return validateText(value.Text)

	case models.ResumeRequest:
		return validateChatID(value.ChatID)
	case *models.ResumeRequest:
		return validateChatID(value.ChatID)

	case LogDate:
		if _, err := time.Parse(DateLayout, string(value)); err != nil {
			return ErrInvalidDate
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

func validateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	return nil
}

func validateChatID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrEmptyChatID
	}
	return nil
}
