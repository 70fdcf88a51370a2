package handlers

import "net/http"

// NotFound answers every request target that no route matched.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.respondWithError(w, http.StatusNotFound, NotFoundMessage)
}
