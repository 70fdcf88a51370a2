package httpserver

import (
	"net/http"
	"time"

	"sentinel-backend/internal/api/handlers"
	"sentinel-backend/internal/logging"

	"github.com/gorilla/mux"
)

// Route targets.
const (
	HealthPath = "/health"
	RootPath   = "/"
)

// SetupRouter configures the router.
// Routes match the raw request target exactly: case-sensitive, no path
// cleaning, no trailing-slash redirects, and a query string makes the target
// differ. Methods are not filtered. Everything else gets the JSON 404.
func SetupRouter(h *handlers.Handlers) *mux.Router {
	r := mux.NewRouter()
	r.SkipClean(true)
	r.NotFoundHandler = http.HandlerFunc(h.NotFound)

	// Public Endpoints
	r.Path(HealthPath).MatcherFunc(exactTarget(HealthPath)).HandlerFunc(h.HealthCheck)
	r.Path(RootPath).MatcherFunc(exactTarget(RootPath)).HandlerFunc(h.GetInfo)

	return r
}

// NewHandler returns the router wrapped in the access logger.
// The wrapper sits outside the router so 404s are logged as well.
func NewHandler(h *handlers.Handlers, access *logging.AccessLogger) http.Handler {
	return WithAccessLog(SetupRouter(h), access)
}

// WithAccessLog writes one access line per request once next has responded.
// The line carries the time the request was received.
func WithAccessLog(next http.Handler, access *logging.AccessLogger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedAt := time.Now()
		next.ServeHTTP(w, r)
		access.Log(receivedAt, r.Method, requestTarget(r))
	})
}

func exactTarget(target string) mux.MatcherFunc {
	return func(r *http.Request, _ *mux.RouteMatch) bool {
		return requestTarget(r) == target
	}
}

// requestTarget is the target as sent on the request line.
// Handlers invoked directly (not through a server) may leave RequestURI empty.
func requestTarget(r *http.Request) string {
	if r.RequestURI != "" {
		return r.RequestURI
	}
	return r.URL.RequestURI()
}
