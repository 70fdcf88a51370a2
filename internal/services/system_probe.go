package services

import (
	"fmt"
	"os"
	"runtime"

	"sentinel-backend/internal/models"

	"github.com/shirou/gopsutil/v4/process"
)

var _ SystemProbe = (*hostProbe)(nil)

type hostProbe struct {
	proc    *process.Process
	procErr error
}

// NewHostProbe creates a SystemProbe for the current process.
// If the process handle cannot be opened, Memory falls back to runtime figures.
func NewHostProbe() *hostProbe {
	p, err := process.NewProcess(int32(os.Getpid()))
	return &hostProbe{proc: p, procErr: err}
}

func (h *hostProbe) Hostname() (string, error) {
	return os.Hostname()
}

func (h *hostProbe) Platform() string {
	return runtime.GOOS
}

// Memory combines the Go runtime statistics with the resident set size
// reported by the operating system. RSS falls back to MemStats.Sys.
func (h *hostProbe) Memory() (models.Memory, error) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	m := models.Memory{
		RSS:        ms.Sys,
		HeapTotal:  ms.HeapSys,
		HeapUsed:   ms.HeapAlloc,
		StackInUse: ms.StackInuse,
		Sys:        ms.Sys,
		NumGC:      ms.NumGC,
		Goroutines: runtime.NumGoroutine(),
	}

	if h.proc == nil {
		return m, fmt.Errorf("opening process handle: %w", h.procErr)
	}
	info, err := h.proc.MemoryInfo()
	if err != nil {
		return m, fmt.Errorf("reading process rss: %w", err)
	}
	m.RSS = info.RSS
	return m, nil
}
