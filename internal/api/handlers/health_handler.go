// internal/api/handlers/health_handler.go
package handlers

import (
	"net/http"

	"sentinel-backend/internal/models"
)

var healthy = models.Health{Status: "healthy"}

// HealthCheck is a simple public endpoint to confirm the server is running.
// It is served for every method.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.respondWithJSON(w, http.StatusOK, healthy)
}
