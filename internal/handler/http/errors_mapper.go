package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-ai-feedback/internal/app"
	"github.com/MKhiriev/go-ai-feedback/internal/service"
	"github.com/MKhiriev/go-ai-feedback/internal/store"
	"github.com/MKhiriev/go-ai-feedback/internal/validators"
)

// errorResponse is the status and body message written for a known error.
type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order, so the more specific errors go first.
var errorResponses = []struct {
	target error
	resp   errorResponse
}{
	{service.ErrEmptyInput, errorResponse{http.StatusBadRequest, app.MsgEmptyInput}},
	{validators.ErrEmptyText, errorResponse{http.StatusBadRequest, app.MsgEmptyInput}},
	{service.ErrEmptyTranscript, errorResponse{http.StatusBadRequest, app.MsgEmptyTranscript}},
	{validators.ErrInvalidDate, errorResponse{http.StatusBadRequest, app.MsgInvalidDate}},
	{validators.ErrEmptyUserID, errorResponse{http.StatusBadRequest, app.MsgNoUserIDProvided}},
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{validators.ErrEmptyChatID, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},

	{service.ErrWrongPassword, errorResponse{http.StatusUnauthorized, app.MsgInvalidLoginPassword}},
	{store.ErrNoUserWasFound, errorResponse{http.StatusUnauthorized, app.MsgInvalidLoginPassword}},
	{service.ErrTokenIsExpired, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpired}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},

	{store.ErrProgressLogNotFound, errorResponse{http.StatusNotFound, app.MsgLogNotFound}},
	{service.ErrNoAudio, errorResponse{http.StatusNotFound, app.MsgNoAudio}},

	{store.ErrUserNameAlreadyExists, errorResponse{http.StatusConflict, app.MsgUserNameAlreadyExists}},
	{service.ErrAlreadyProcessing, errorResponse{http.StatusConflict, app.MsgAlreadyProcessing}},
	{service.ErrAlreadySaving, errorResponse{http.StatusConflict, app.MsgAlreadySaving}},

	{service.ErrSaveFailed, errorResponse{http.StatusBadGateway, app.MsgSaveFailed}},
}

// responseFromError maps err to a status and message. Unknown errors map to
// fallback.
func responseFromError(err error, fallback errorResponse) errorResponse {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.resp
		}
	}
	return fallback
}

var internalError = errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
