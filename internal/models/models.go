// filepath: internal/models/models.go
// Package models contains the response bodies served by the API.
package models

// Health is the body of the health probe.
type Health struct {
	Status string `json:"status"`
}

// Info represents host and runtime information about the running service.
type Info struct {
	Message   string  `json:"message"`
	Service   string  `json:"service"`
	Hostname  string  `json:"hostname"`
	Platform  string  `json:"platform"`
	Uptime    float64 `json:"uptime"` // seconds since process start
	Memory    Memory  `json:"memory"`
	Timestamp string  `json:"timestamp"` // ISO-8601, UTC
}

// Memory is a snapshot of the process memory usage in bytes.
type Memory struct {
	RSS        uint64 `json:"rss"`
	HeapTotal  uint64 `json:"heapTotal"`
	HeapUsed   uint64 `json:"heapUsed"`
	StackInUse uint64 `json:"stackInUse"`
	Sys        uint64 `json:"sys"`
	NumGC      uint32 `json:"numGC"`
	Goroutines int    `json:"goroutines"`
}
