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

type UserHandler struct {
	service usecase.UserService
	cookie  SessionCookie
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, cookie SessionCookie, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		cookie:  cookie,
		log:     log.With(zap.String("handler", "user")),
	}
}

// Register handles POST /users/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.SignupRequest

	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Missing required fields")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Missing required fields")
		return
	}

	if err := h.service.Register(r.Context(), &req); err != nil {
		h.handleServiceError(w, err, "register")
		return
	}

	utils.ResponseMessage(w, http.StatusCreated, "User registered successfully")
}

// Login handles POST /users/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Missing required fields")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Missing required fields")
		return
	}

	result, err := h.service.Login(r.Context(), &req, clientInfo(r))
	if err != nil {
		h.handleServiceError(w, err, "log in")
		return
	}

	h.cookie.Set(w, result.Session)
	utils.ResponseSuccess(w, response.TokenResponse{Token: result.Token})
}

func (h *UserHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrUserExists):
		h.log.Warn(operation+" failed - already exists", zap.Error(err))
		utils.ResponseConflict(w, "User already exists")

	case errors.Is(err, usecase.ErrUserNotFound), errors.Is(err, usecase.ErrInvalidCredentials):
		h.log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, "Invalid email or password")

	case errors.Is(err, utils.ErrSecretMissing):
		h.log.Error(operation+" failed - signing secret missing", zap.Error(err))
		utils.ResponseInternalError(w, "JWT secret key is not defined")

	case operation == "register":
		h.log.Error("Failed to register user", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to register user")

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Failed to log in user")
	}
}
