package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	api "muscat-v0/internal/api/application"
	catalogdomain "muscat-v0/internal/catalog/domain"
	"muscat-v0/internal/shared/validation"
)

// ArtistHandler handles artist registration and lookup
type ArtistHandler struct {
	service *api.ArtistService
}

// NewArtistHandler creates a new artist handler
func NewArtistHandler(service *api.ArtistService) *ArtistHandler {
	return &ArtistHandler{
		service: service,
	}
}

// CreateArtist handles POST /artists
// @Summary      Register an artist
// @Description  Register a new artist. Duplicate names are permitted.
// @Tags         artists
// @Accept       json
// @Produce      json
// @Param        artist  body      application.CreateArtistRequest  true  "Artist to register"
// @Success      201     {object}  application.ArtistResponse
// @Failure      400     {object}  application.ValidationErrorResponse
// @Failure      500     {object}  application.ErrorResponse
// @Router       /artists [post]
func (h *ArtistHandler) CreateArtist(w http.ResponseWriter, r *http.Request) {
	logger := getLogger(r)

	var req api.CreateArtistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Malformed artist payload", "err", err)
		respondJSONError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if problems := req.Valid(r.Context()); len(problems) > 0 {
		verr := validation.NewValidationError(problems)
		logger.Warn("Invalid artist payload", "err", verr)
		respondValidationProblems(w, verr)
		return
	}

	artist, err := h.service.CreateArtist(r.Context(), req)
	if err != nil {
		logger.Error("Failed to create artist", "name", req.Name, "err", err)
		respondJSONError(w, http.StatusInternalServerError, "Failed to create artist: "+err.Error())
		return
	}

	logger.Debug("Created artist", "id", artist.ID, "name", artist.Name)
	respondJSON(w, http.StatusCreated, artist)
}

// GetArtist handles GET /artists/{id}
// @Summary      Get artist by ID
// @Description  Get an artist with its albums in creation order
// @Tags         artists
// @Accept       json
// @Produce      json
// @Param        id   path      int  true  "Artist ID"
// @Success      200  {object}  application.ArtistDetailResponse
// @Failure      400  {object}  application.ErrorResponse
// @Failure      404  {object}  application.ErrorResponse
// @Failure      500  {object}  application.ErrorResponse
// @Router       /artists/{id} [get]
func (h *ArtistHandler) GetArtist(w http.ResponseWriter, r *http.Request) {
	logger := getLogger(r)

	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		logger.Warn("Invalid artist ID in request", "id", idStr)
		respondJSONError(w, http.StatusBadRequest, "Artist ID must be an integer")
		return
	}

	artist, err := h.service.GetArtist(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalogdomain.ErrArtistNotFound) {
			logger.Debug("Artist not found", "id", id)
			respondJSONError(w, http.StatusNotFound, "Artist not found.")
			return
		}
		logger.Error("Failed to get artist", "id", id, "err", err)
		respondJSONError(w, http.StatusInternalServerError, "Failed to get artist: "+err.Error())
		return
	}

	logger.Debug("Retrieved artist", "id", id, "albums", len(artist.Albums))
	respondJSON(w, http.StatusOK, artist)
}
