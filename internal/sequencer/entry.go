package sequencer

import (
	"fmt"
	"time"
)

type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeError   Outcome = "error"
)

type Phase string

const (
	PhaseIdle    Phase = "IDLE"
	PhaseRunning Phase = "RUNNING"
	PhaseStopped Phase = "STOPPED"
)

// LogEntry records the outcome of one send attempt. Index is the 1-based
// position of the row in the loaded list.
type LogEntry struct {
	ID        int64
	Index     int
	Message   string
	Outcome   Outcome
	Timestamp time.Time
}

// State is a point-in-time view of a Sequencer.
type State struct {
	Phase   Phase
	Host    string
	Cursor  int
	Total   int
	Success int
	Failed  int
	Status  string
}

// Event is published after every LogEntry is recorded.
type Event struct {
	Entry LogEntry
	State State
}

func failedMessage(msg string, err error) string {
	return fmt.Sprintf("%s - Error: %s", msg, err)
}
