package adaptor

import (
	"errors"
	"net/http"

	"movie-social/internal/dto/request"
	"movie-social/internal/usecase"
	"movie-social/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MessageHandler struct {
	service usecase.MessageService
	log     *zap.Logger
}

func NewMessageHandler(service usecase.MessageService, log *zap.Logger) *MessageHandler {
	return &MessageHandler{
		service: service,
		log:     log.With(zap.String("handler", "message")),
	}
}

// Create handles POST /messages and POST /messages/add/message
func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateMessageRequest

	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Missing required fields")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Missing required fields")
		return
	}

	var senderID string
	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
		senderID = userID.String()
	}

	message, err := h.service.Create(r.Context(), senderID, &req)
	if err != nil {
		h.handleServiceError(w, err, "add message", "Error adding message")
		return
	}

	utils.ResponseCreated(w, message)
}

// List handles GET /messages
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := utils.ParsePagination(r)

	messages, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		h.handleServiceError(w, err, "fetch messages", "Error fetching messages")
		return
	}

	utils.ResponseSuccess(w, messages)
}

// Get handles GET /messages/{id}
func (h *MessageHandler) Get(w http.ResponseWriter, r *http.Request) {
	message, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, err, "fetch message", "Error fetching message")
		return
	}

	utils.ResponseSuccess(w, message)
}

// Update handles PUT /messages/{id} and PUT /messages/edit/{id}
func (h *MessageHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateMessageRequest

	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Missing required fields")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Missing required fields")
		return
	}

	message, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.handleServiceError(w, err, "update message", "Error updating message")
		return
	}

	utils.ResponseSuccess(w, message)
}

// Delete handles DELETE /messages/{id} and DELETE /messages/delete/{id}
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.handleServiceError(w, err, "delete message", "Error deleting message")
		return
	}

	utils.ResponseMessage(w, http.StatusOK, "Message deleted")
}

func (h *MessageHandler) handleServiceError(w http.ResponseWriter, err error, operation, failure string) {
	if errors.Is(err, usecase.ErrMessageNotFound) {
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Message not found")
		return
	}

	h.log.Error("Failed to "+operation, zap.Error(err))
	utils.ResponseInternalError(w, failure)
}
