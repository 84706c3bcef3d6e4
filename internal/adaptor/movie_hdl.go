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

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// List handles GET /movies
func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := utils.ParsePagination(r)

	movies, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		h.handleServiceError(w, err, "fetch movies", "Error fetching movies")
		return
	}

	utils.ResponseSuccess(w, movies)
}

// TopRated handles GET /movies/top and GET /movies/top-rated
func (h *MovieHandler) TopRated(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.TopRated(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "fetch top-rated movies", "Error fetching top-rated movies")
		return
	}

	utils.ResponseSuccess(w, movies)
}

// Seen handles GET /movies/me and GET /movies/seen
func (h *MovieHandler) Seen(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	movies, err := h.service.Seen(r.Context(), userID.String())
	if err != nil {
		h.handleServiceError(w, err, "fetch seen movies", "Error fetching seen movies")
		return
	}

	utils.ResponseSuccess(w, movies)
}

// Get handles GET /movies/{id}
func (h *MovieHandler) Get(w http.ResponseWriter, r *http.Request) {
	movie, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, err, "fetch movie", "Error fetching movie")
		return
	}

	utils.ResponseSuccess(w, movie)
}

// Create handles POST /movies
func (h *MovieHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateMovieRequest

	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Missing required fields")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Missing required fields")
		return
	}

	movie, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "add movie", "Error adding movie")
		return
	}

	utils.ResponseCreated(w, movie)
}

// MarkSeen handles POST /movies/{id}/seen
func (h *MovieHandler) MarkSeen(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	movie, err := h.service.MarkSeen(r.Context(), chi.URLParam(r, "id"), userID.String())
	if err != nil {
		h.handleServiceError(w, err, "update movie", "Error updating movie")
		return
	}

	utils.ResponseSuccess(w, movie)
}

func (h *MovieHandler) handleServiceError(w http.ResponseWriter, err error, operation, failure string) {
	switch {
	case errors.Is(err, usecase.ErrMovieNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Movie not found")

	case errors.Is(err, usecase.ErrMovieRatingOutOfRange):
		utils.ResponseBadRequest(w, "Rating must be between 0 and 5")

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, failure)
	}
}
