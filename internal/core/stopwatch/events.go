package stopwatch

import "time"

// State represents the current stopwatch mode.
type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
	StatePaused  State = "paused"
)

// EventType defines the type of stopwatch event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventTick        EventType = "tick"
)

// Event represents a stopwatch update for observers.
type Event struct {
	Type           EventType
	State          State
	ElapsedSeconds int64
	At             time.Time
}
