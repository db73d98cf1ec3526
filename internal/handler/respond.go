package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/thedrumepic/med/internal/service"
	"github.com/thedrumepic/med/pkg/logger"
)

// Shared response plumbing for all resource handlers.

// writeJSONResponse writes a JSON response with the given status code and data
func writeJSONResponse(w http.ResponseWriter, log *logger.Logger, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Error("Failed to encode JSON response", "error", err)
		}
	}
}

// writeErrorResponse writes an error response with the given status code and message
func writeErrorResponse(w http.ResponseWriter, log *logger.Logger, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		log.Error("Failed to encode error response", "error", err)
	}
}

// parseRequestBody parses a JSON request body into the target struct.
// Unknown fields are ignored so clients can send extra keys freely.
func parseRequestBody(r *http.Request, target interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}

// writeServiceError maps service-level failures that are not resource
// lookups: invalid input shapes become 400, everything else is a store
// fault surfaced as 500.
func writeServiceError(w http.ResponseWriter, log *logger.Logger, err error) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeErrorResponse(w, log, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, service.ErrNoUpdateData):
		writeErrorResponse(w, log, http.StatusBadRequest, "No data to update")
	default:
		writeErrorResponse(w, log, http.StatusInternalServerError, "Internal server error")
	}
}
