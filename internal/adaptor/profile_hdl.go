package adaptor

import (
	"errors"
	"net/http"

	"movie-social/internal/dto/request"
	"movie-social/internal/usecase"
	"movie-social/pkg/utils"

	"go.uber.org/zap"
)

type ProfileHandler struct {
	service usecase.ProfileService
	cookie  SessionCookie
	log     *zap.Logger
}

func NewProfileHandler(service usecase.ProfileService, cookie SessionCookie, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		cookie:  cookie,
		log:     log.With(zap.String("handler", "profile")),
	}
}

// ChangePassword handles PUT /profile and PUT /profile/password
func (h *ProfileHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req request.ChangePasswordRequest

	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ResponseMessage(w, http.StatusBadRequest, "Missing parameters")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseMessage(w, http.StatusBadRequest, "Missing parameters")
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	if err := h.service.ChangePassword(r.Context(), userID, &req); err != nil {
		switch {
		case errors.Is(err, usecase.ErrSamePassword):
			utils.ResponseMessage(w, http.StatusBadRequest, "New password cannot be the same as old password")
		case errors.Is(err, usecase.ErrIncorrectPassword):
			utils.ResponseMessage(w, http.StatusBadRequest, "Incorrect old password")
		default:
			h.log.Error("Failed to update password", zap.Error(err), zap.String("user_id", userID.String()))
			utils.ResponseInternalError(w, "Exception occurred while updating password")
		}
		return
	}

	utils.ResponseMessage(w, http.StatusOK, "Password updated successfully")
}

// Logout handles POST /profile and DELETE /profile/logout
func (h *ProfileHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := utils.GetSessionFromContext(r.Context())

	if err := h.service.Logout(r.Context(), sessionID); err != nil {
		if errors.Is(err, usecase.ErrNoActiveSession) {
			utils.ResponseMessage(w, http.StatusBadRequest, "No active session")
			return
		}
		h.log.Error("Failed to log out", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	h.cookie.Clear(w)
	utils.ResponseMessage(w, http.StatusOK, "Successfully logged out")
}
