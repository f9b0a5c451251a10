package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	api "muscat-v0/internal/api/application"
	"muscat-v0/internal/shared/validation"
)

// getLogger extracts the logger from the request context
// Falls back to slog.Default() if not found
func getLogger(r *http.Request) *slog.Logger {
	if ctxLogger := r.Context().Value("logger"); ctxLogger != nil {
		if l, ok := ctxLogger.(*slog.Logger); ok {
			return l
		}
	}
	return slog.Default()
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondJSONError sends a JSON error response
func respondJSONError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, api.ErrorResponse{Error: message})
}

// respondValidationProblems sends the per-field problems of a rejected payload
func respondValidationProblems(w http.ResponseWriter, verr *validation.ValidationError) {
	respondJSON(w, http.StatusBadRequest, api.ValidationErrorResponse{
		Error:    "validation failed",
		Problems: verr.Problems,
	})
}
