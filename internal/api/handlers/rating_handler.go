package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	api "muscat-v0/internal/api/application"
	catalogdomain "muscat-v0/internal/catalog/domain"
	"muscat-v0/internal/shared/validation"
)

// RatingHandler handles rating submission
type RatingHandler struct {
	service *api.RatingService
}

// NewRatingHandler creates a new rating handler
func NewRatingHandler(service *api.RatingService) *RatingHandler {
	return &RatingHandler{
		service: service,
	}
}

// SubmitRating handles POST /albums/ratings
// @Summary      Rate an album
// @Description  Submit a 1-5 rating for the single album matching album_name (case-insensitive)
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Param        rating  body      application.SubmitRatingRequest  true  "Rating to submit"
// @Success      201     {object}  application.RatingResponse
// @Failure      400     {object}  application.ErrorResponse
// @Failure      404     {object}  application.ErrorResponse
// @Failure      500     {object}  application.ErrorResponse
// @Router       /albums/ratings [post]
func (h *RatingHandler) SubmitRating(w http.ResponseWriter, r *http.Request) {
	logger := getLogger(r)

	var req api.SubmitRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Malformed rating payload", "err", err)
		respondJSONError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if problems := req.Valid(r.Context()); len(problems) > 0 {
		verr := validation.NewValidationError(problems)
		logger.Warn("Invalid rating payload", "err", verr)
		respondValidationProblems(w, verr)
		return
	}

	rating, err := h.service.SubmitRating(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, catalogdomain.ErrAlbumNotFound):
			logger.Debug("Album not found for rating", "album_name", req.AlbumName)
			respondJSONError(w, http.StatusNotFound, "Album not found.")
		case errors.Is(err, catalogdomain.ErrAlbumAmbiguous):
			logger.Debug("Ambiguous album name for rating", "album_name", req.AlbumName)
			respondJSONError(w, http.StatusBadRequest,
				"Multiple albums found with that name. Please specify additional details.")
		default:
			logger.Error("Failed to submit rating", "album_name", req.AlbumName, "err", err)
			respondJSONError(w, http.StatusInternalServerError, "Failed to submit rating: "+err.Error())
		}
		return
	}

	logger.Debug("Submitted rating", "album_id", rating.AlbumID, "average", rating.AverageRating)
	respondJSON(w, http.StatusCreated, rating)
}
