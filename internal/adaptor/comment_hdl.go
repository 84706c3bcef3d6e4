package adaptor

import (
	"net/http"
	"strings"

	"movie-social/internal/dto/request"
	"movie-social/internal/usecase"
	"movie-social/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CommentHandler struct {
	service usecase.CommentService
	log     *zap.Logger
}

func NewCommentHandler(service usecase.CommentService, log *zap.Logger) *CommentHandler {
	return &CommentHandler{
		service: service,
		log:     log.With(zap.String("handler", "comment")),
	}
}

// List handles GET /comments/{movie_id}
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	movieID := strings.TrimSpace(chi.URLParam(r, "movie_id"))
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required")
		return
	}

	comments, err := h.service.ListByMovie(r.Context(), movieID)
	if err != nil {
		h.log.Error("Failed to fetch comments", zap.Error(err), zap.String("movie_id", movieID))
		utils.ResponseInternalError(w, "Error fetching comments")
		return
	}

	utils.ResponseSuccess(w, comments)
}

// Create handles POST /comments/{movie_id}
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCommentRequest

	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Missing required fields")
		return
	}
	req.MovieID = strings.TrimSpace(chi.URLParam(r, "movie_id"))

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Missing required fields")
		return
	}

	comment, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.log.Error("Failed to add comment", zap.Error(err), zap.String("movie_id", req.MovieID))
		utils.ResponseInternalError(w, "Error adding comment")
		return
	}

	utils.ResponseCreated(w, comment)
}
