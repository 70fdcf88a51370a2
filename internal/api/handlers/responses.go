// internal/api/handlers/responses.go
package handlers

import (
	"encoding/json"
	"net/http"
)

// NotFoundMessage is the error text of the catch-all route.
const NotFoundMessage = "Not Found"

// ErrorResponse is a standard format for API error messages.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondWithError sends a JSON error response.
func (h *Handlers) respondWithError(w http.ResponseWriter, code int, message string) {
	h.respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response. Write failures are a transport
// problem: they are logged and not retried.
func (h *Handlers) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, `{"error":"Failed to marshal JSON response"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil && h.Logger != nil {
		h.Logger.WithError(err).Debug("failed to write response")
	}
}
