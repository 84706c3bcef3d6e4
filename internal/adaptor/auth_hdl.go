package adaptor

import (
	"errors"
	"net/http"

	"movie-social/internal/dto/request"
	"movie-social/internal/dto/response"
	"movie-social/internal/usecase"
	"movie-social/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	cookie  SessionCookie
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, cookie SessionCookie, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		cookie:  cookie,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req request.SignupRequest

	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "missing information")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		h.log.Debug("Signup validation failed", zap.Any("errors", validationErrors))
		utils.ResponseBadRequest(w, "missing information")
		return
	}

	user, err := h.service.Signup(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "signup", internalMessage("failed to save user"))
		return
	}

	utils.ResponseSuccess(w, user)
}

// Login handles POST /auth/login and POST /auth/signin
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "missing information")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "missing information")
		return
	}

	result, err := h.service.Login(r.Context(), &req, clientInfo(r))
	if err != nil {
		h.handleServiceError(w, err, "login", internalError("Failed to get user"))
		return
	}

	h.cookie.Set(w, result.Session)
	utils.ResponseSuccess(w, response.TokenResponse{Token: result.Token})
}

// Me handles GET /auth/me and GET /auth/user
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "You are not authenticated")
		return
	}

	profile, err := h.service.Me(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get user", internalError("Failed to get user"))
		return
	}

	utils.ResponseSuccess(w, profile)
}

// Logout handles GET and POST /auth/logout. It always succeeds.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.cookie.Name); err == nil {
		_ = h.service.Logout(r.Context(), cookie.Value)
	}

	h.cookie.Clear(w)
	utils.ResponseMessage(w, http.StatusOK, "Disconnected")
}

// handleServiceError maps service errors to responses
func (h *AuthHandler) handleServiceError(w http.ResponseWriter, err error, operation string, internal func(http.ResponseWriter)) {
	switch {
	case errors.Is(err, usecase.ErrUserExists):
		h.log.Warn(operation+" failed - already exists", zap.Error(err))
		utils.ResponseConflict(w, "User already exists")

	case errors.Is(err, usecase.ErrUserNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseMessage(w, http.StatusBadRequest, "User not found")

	case errors.Is(err, usecase.ErrInvalidCredentials):
		h.log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseMessage(w, http.StatusBadRequest, "Email or password don't match")

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		internal(w)
	}
}
