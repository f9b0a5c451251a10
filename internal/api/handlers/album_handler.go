package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	api "muscat-v0/internal/api/application"
	catalogdomain "muscat-v0/internal/catalog/domain"
	"muscat-v0/internal/shared/validation"
)

// AlbumHandler handles album registration
type AlbumHandler struct {
	service *api.AlbumService
}

// NewAlbumHandler creates a new album handler
func NewAlbumHandler(service *api.AlbumService) *AlbumHandler {
	return &AlbumHandler{
		service: service,
	}
}

// CreateAlbum handles POST /albums
// @Summary      Register an album
// @Description  Register an album under the artist matching artist_name (case-insensitive)
// @Tags         albums
// @Accept       json
// @Produce      json
// @Param        album  body      application.CreateAlbumRequest  true  "Album to register"
// @Success      201    {object}  application.AlbumResponse
// @Failure      400    {object}  application.ValidationErrorResponse
// @Failure      404    {object}  application.ErrorResponse
// @Failure      500    {object}  application.ErrorResponse
// @Router       /albums [post]
func (h *AlbumHandler) CreateAlbum(w http.ResponseWriter, r *http.Request) {
	logger := getLogger(r)

	var req api.CreateAlbumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Malformed album payload", "err", err)
		respondJSONError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if problems := req.Valid(r.Context()); len(problems) > 0 {
		verr := validation.NewValidationError(problems)
		logger.Warn("Invalid album payload", "err", verr)
		respondValidationProblems(w, verr)
		return
	}

	album, err := h.service.CreateAlbum(r.Context(), req)
	if err != nil {
		if errors.Is(err, catalogdomain.ErrArtistNotFound) {
			logger.Debug("Artist not found for album", "artist_name", req.ArtistName)
			respondJSONError(w, http.StatusNotFound, "Artist not found.")
			return
		}
		logger.Error("Failed to create album", "name", req.Name, "err", err)
		respondJSONError(w, http.StatusInternalServerError, "Failed to create album: "+err.Error())
		return
	}

	logger.Debug("Created album", "id", album.ID, "artist_id", album.ArtistID)
	respondJSON(w, http.StatusCreated, album)
}
