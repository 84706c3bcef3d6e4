package adaptor

import (
	"errors"
	"net/http"

	"movie-social/internal/dto/request"
	"movie-social/internal/dto/response"
	"movie-social/internal/usecase"
	"movie-social/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RatingHandler struct {
	service usecase.RatingService
	log     *zap.Logger
}

func NewRatingHandler(service usecase.RatingService, log *zap.Logger) *RatingHandler {
	return &RatingHandler{
		service: service,
		log:     log.With(zap.String("handler", "rating")),
	}
}

// Create handles POST /ratings and POST /ratings/{movieId}
func (h *RatingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRatingRequest

	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ResponseMessage(w, http.StatusBadRequest, "Missing rating or movieId")
		return
	}
	if movieID := chi.URLParam(r, "movieId"); movieID != "" {
		req.MovieID = movieID
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseMessage(w, http.StatusBadRequest, "Missing rating or movieId")
		return
	}

	userID, _ := utils.GetUserIDFromContext(r.Context())

	rating, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrRatingOutOfRange) {
			utils.ResponseMessage(w, http.StatusBadRequest, "Rating must be between 1 and 5")
			return
		}
		h.log.Error("Failed to add rating", zap.Error(err), zap.String("movie_id", req.MovieID))
		utils.ResponseInternalError(w, "Exception occurred while adding rating")
		return
	}

	utils.ResponseCreated(w, response.RatingCreatedResponse{
		Message: "Rating added successfully",
		Rating:  response.RatingToResponse(rating),
	})
}

// Delete handles DELETE /ratings (id in the body) and DELETE /ratings/{ratingId}
func (h *RatingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req request.DeleteRatingRequest

	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ResponseMessage(w, http.StatusBadRequest, "Missing ratingId")
		return
	}
	if ratingID := chi.URLParam(r, "ratingId"); ratingID != "" {
		req.RatingID = ratingID
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseMessage(w, http.StatusBadRequest, "Missing ratingId")
		return
	}

	if err := h.service.Delete(r.Context(), req.RatingID); err != nil {
		if errors.Is(err, usecase.ErrRatingNotFound) {
			utils.ResponseMessage(w, http.StatusNotFound, "Rating not found")
			return
		}
		h.log.Error("Failed to delete rating", zap.Error(err), zap.String("rating_id", req.RatingID))
		utils.ResponseInternalError(w, "Exception occurred while deleting rating")
		return
	}

	utils.ResponseMessage(w, http.StatusOK, "Rating deleted successfully")
}
