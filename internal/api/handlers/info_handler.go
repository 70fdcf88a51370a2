// filepath: internal/api/handlers/info_handler.go
package handlers

import (
	"net/http"
)

// GetInfo reports the service name together with hostname, platform, uptime,
// memory usage and the current time. Every field is read fresh per request.
func (h *Handlers) GetInfo(w http.ResponseWriter, r *http.Request) {
	info := h.Info.GetInfo()
	h.respondWithJSON(w, http.StatusOK, info)
}
