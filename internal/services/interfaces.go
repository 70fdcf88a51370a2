// filepath: internal/services/interfaces.go
package services

import (
	"sentinel-backend/internal/models"
)

// InfoService defines the interface for the info service.
type InfoService interface {
	GetInfo() models.Info
}

// SystemProbe reads host and process facts. Every call is a fresh read.
type SystemProbe interface {
	// Hostname returns the network hostname of the machine.
	Hostname() (string, error)
	// Platform returns the operating system identifier, e.g. "linux".
	Platform() string
	// Memory returns the current memory usage of the process.
	// On error the returned snapshot still carries the runtime figures.
	Memory() (models.Memory, error)
}
