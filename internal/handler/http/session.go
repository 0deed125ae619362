// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-ai-feedback/internal/app"
	"github.com/MKhiriev/go-ai-feedback/internal/logger"
	"github.com/MKhiriev/go-ai-feedback/internal/utils"
	"github.com/MKhiriev/go-ai-feedback/models"
)

// writeServiceError logs err and writes the mapped status and message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	resp := responseFromError(err, internalError)
	logger.FromRequest(r).Err(err).Int("status", resp.status).Msg(msg)
	utils.WriteError(w, resp.message, resp.status)
}

func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.MessageRequest
	if err := utils.ReadJSON(w, r, &req); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	result, err := h.services.SessionService.Submit(r.Context(), userID, req.Text)
	if err != nil {
		writeServiceError(w, r, err, "message was rejected")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	utils.WriteJSON(w, h.services.SessionService.Snapshot(r.Context(), userID), http.StatusOK)
}

func (h *Handler) clearSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	h.services.SessionService.Clear(r.Context(), userID)
	utils.WriteJSON(w, h.services.SessionService.Snapshot(r.Context(), userID), http.StatusOK)
}

func (h *Handler) saveSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	saved, err := h.services.SessionService.Save(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "transcript was not saved")
		return
	}

	utils.WriteJSON(w, models.SaveResponse{
		ChatID:    saved.ChatID,
		CreatedAt: saved.CreatedAt.Format(time.RFC3339),
		Message:   app.MsgSaved,
	}, http.StatusCreated)
}

func (h *Handler) resumeSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.ResumeRequest
	if err := utils.ReadJSON(w, r, &req); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	if err := h.sessionValidator.Validate(r.Context(), req); err != nil {
		writeServiceError(w, r, err, "invalid resume request")
		return
	}

	view, err := h.services.SessionService.Resume(r.Context(), userID, req.ChatID)
	if err != nil {
		writeServiceError(w, r, err, "session was not resumed")
		return
	}

	utils.WriteJSON(w, view, http.StatusOK)
}

func (h *Handler) sessionAudio(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	clip, err := h.services.SessionService.Audio(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "no audio to send")
		return
	}

	data := clip.Data()
	if data == nil {
		utils.WriteError(w, app.MsgNoAudio, http.StatusNotFound)
		return
	}

	w.Header().Set("X-Audio-ID", clip.ID)
	if _, err = utils.WriteAudio(w, clip.ContentType, data); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing audio")
	}
}
