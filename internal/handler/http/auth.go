package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-ai-feedback/internal/app"
	"github.com/MKhiriev/go-ai-feedback/internal/logger"
	"github.com/MKhiriev/go-ai-feedback/internal/utils"
	"github.com/MKhiriev/go-ai-feedback/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := utils.ReadJSON(w, r, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		resp := responseFromError(err, errorResponse{http.StatusBadGateway, app.MsgRegistrationFailed})
		log.Err(err).Int("status", resp.status).Msg("user registration failed")
		utils.WriteError(w, resp.message, resp.status)
		return
	}

	h.writeAuthResponse(w, r, registeredUser)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := utils.ReadJSON(w, r, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		resp := responseFromError(err, errorResponse{http.StatusBadGateway, app.MsgLoginFailed})
		log.Err(err).Int("status", resp.status).Msg("user login failed")
		utils.WriteError(w, resp.message, resp.status)
		return
	}

	log.Debug().Str("user_id", foundUser.UserID).Msg("user successfully logged in")

	h.writeAuthResponse(w, r, foundUser)
}

// writeAuthResponse issues a token for user and sends it both in the
// Authorization header and in the body.
func (h *Handler) writeAuthResponse(w http.ResponseWriter, r *http.Request, user models.User) {
	log := logger.FromRequest(r)

	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.AuthResponse{Token: token.SignedString, User: user.Public()}, http.StatusOK)
}

func (h *Handler) updateCharacter(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.CharacterUpdateRequest
	if err := utils.ReadJSON(w, r, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	result := h.services.HistoryService.UpdateUserCharacter(r.Context(), userID, req.CharacterID)
	if !result.Success {
		log.Warn().Str("reason", result.Error).Int("character_id", req.CharacterID).Msg("character was not updated")
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) characters(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.Characters(), http.StatusOK)
}
