package server

import (
	"log/slog"

	"github.com/robbyt/go-fsm"
)

// Lifecycle states of the HTTP listener.
const (
	StateNew        = "new"
	StateRunning    = "running"
	StateDraining   = "draining"
	StateTerminated = "terminated"
	StateError      = "error"
)

// Transitions is the only path a server takes: running, draining, terminated.
// Any state but terminated may fail into error.
var Transitions = map[string][]string{
	StateNew:        {StateRunning, StateError},
	StateRunning:    {StateDraining, StateError},
	StateDraining:   {StateTerminated, StateError},
	StateTerminated: {},
	StateError:      {},
}

// Machine is the part of the state machine the server uses.
type Machine interface {
	Transition(state string) error
	GetState() string
}

// NewMachine creates a lifecycle state machine in StateNew.
func NewMachine(handler slog.Handler) (Machine, error) {
	return fsm.New(handler, StateNew, Transitions)
}
