package handlers

import (
	"net/http"

	api "muscat-v0/internal/api/application"
)

// SearchHandler handles free-text name search
type SearchHandler struct {
	service *api.SearchService
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(service *api.SearchService) *SearchHandler {
	return &SearchHandler{
		service: service,
	}
}

// Search handles GET /search
// @Summary      Search by name
// @Description  Resolve q to an artist (with albums), a list of matching albums, or an empty object. An artist match wins over album matches.
// @Tags         search
// @Accept       json
// @Produce      json
// @Param        q    query     string  true  "Name to search for (case-insensitive exact match)"
// @Success      200  {object}  application.ArtistDetailResponse
// @Failure      400  {object}  application.ErrorResponse
// @Failure      500  {object}  application.ErrorResponse
// @Router       /search [get]
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	logger := getLogger(r)

	query := r.URL.Query().Get("q")
	if query == "" {
		logger.Warn("Missing search query")
		respondJSONError(w, http.StatusBadRequest, "Query parameter q is required.")
		return
	}

	result, err := h.service.Search(r.Context(), query)
	if err != nil {
		logger.Error("Failed to search", "query", query, "err", err)
		respondJSONError(w, http.StatusInternalServerError, "Failed to search: "+err.Error())
		return
	}

	// Each SearchResponse variant marshals to its own wire shape;
	// the empty variant renders as {}.
	logger.Debug("Search completed", "query", query)
	respondJSON(w, http.StatusOK, result)
}
