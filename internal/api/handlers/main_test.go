// filepath: internal/api/handlers/main_test.go
package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"sentinel-backend/internal/logging"
	"sentinel-backend/internal/services/mocks"

	"github.com/stretchr/testify/assert"
)

// newTestHandlers wires Handlers with a mocked InfoService.
func newTestHandlers() (*Handlers, *mocks.MockInfoService) {
	infoService := new(mocks.MockInfoService)
	return NewHandlers(infoService, logging.Discard()), infoService
}

// assertJSON checks status, content type and the exact body of a response.
func assertJSON(t *testing.T, rr *httptest.ResponseRecorder, code int, body string) {
	t.Helper()
	assert.Equal(t, code, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	if body != "" {
		assert.Equal(t, body, rr.Body.String())
	}
}

var allMethods = []string{
	http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
	http.MethodPatch, http.MethodDelete, http.MethodOptions,
}
