package http

import (
	"net/http"

	"github.com/MKhiriev/go-ai-feedback/internal/utils"
	"github.com/MKhiriev/go-ai-feedback/internal/validators"
	"github.com/MKhiriev/go-ai-feedback/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) fetchLogs(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	date := r.URL.Query().Get("date")
	if err := h.sessionValidator.Validate(r.Context(), validators.LogDate(date)); err != nil {
		writeServiceError(w, r, err, "invalid log date")
		return
	}

	logs := h.services.HistoryService.FetchLogs(r.Context(), date, userID)

	utils.WriteJSON(w, models.LogsResponse{
		Date:   date,
		Logs:   logs,
		Length: len(logs),
	}, http.StatusOK)
}

func (h *Handler) getLog(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	progressLog, err := h.services.HistoryService.GetLog(r.Context(), chi.URLParam(r, "chatID"), userID)
	if err != nil {
		writeServiceError(w, r, err, "error getting progress log")
		return
	}

	utils.WriteJSON(w, progressLog, http.StatusOK)
}
