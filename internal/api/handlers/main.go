// filepath: internal/api/handlers/main.go
package handlers

import (
	"sentinel-backend/internal/services"

	"github.com/sirupsen/logrus"
)

// Handlers provides a struct to hold shared dependencies for API handlers.
type Handlers struct {
	Info   services.InfoService
	Logger *logrus.Logger
}

// NewHandlers creates a new instance of Handlers with its dependencies.
func NewHandlers(info services.InfoService, logger *logrus.Logger) *Handlers {
	return &Handlers{
		Info:   info,
		Logger: logger,
	}
}
