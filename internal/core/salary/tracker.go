// Package salary combines the committed hourly wage with the stopwatch.
package salary

import (
	"sync"

	"salarywatch/internal/core/earnings"
	"salarywatch/internal/core/stopwatch"
)

// WageHint is shown while no wage has been committed.
const WageHint = "Please set your hourly wage to start the timer"

// Snapshot is a read-only view of the tracker for rendering.
type Snapshot struct {
	HourlyWage     float64
	State          stopwatch.State
	ElapsedSeconds int64
	Earnings       float64
	Projections    earnings.Projections
}

// WageSet reports whether a wage has been committed.
func (snapshot Snapshot) WageSet() bool {
	return snapshot.HourlyWage > 0
}

// CanStart reports whether the start action should be enabled.
func (snapshot Snapshot) CanStart() bool {
	return snapshot.WageSet() && snapshot.State != stopwatch.StateRunning
}

// StartLabel returns the caption for the start action.
func (snapshot Snapshot) StartLabel() string {
	if snapshot.ElapsedSeconds > 0 {
		return "Resume"
	}
	return "Start"
}

// Tracker owns the wage setting and the stopwatch.
type Tracker struct {
	mu         sync.RWMutex
	hourlyWage float64
	watch      *stopwatch.Stopwatch
}

// NewTracker creates a tracker with no wage set.
func NewTracker(watch *stopwatch.Stopwatch) *Tracker {
	return &Tracker{watch: watch}
}

// SetWage commits input as the hourly wage. Invalid or non-positive input is
// ignored and the previous wage is kept.
func (tracker *Tracker) SetWage(input string) bool {
	wage, ok := earnings.ParseWage(input)
	if !ok {
		return false
	}
	tracker.mu.Lock()
	tracker.hourlyWage = wage
	tracker.mu.Unlock()
	return true
}

// HourlyWage returns the committed wage, 0 when unset.
func (tracker *Tracker) HourlyWage() float64 {
	tracker.mu.RLock()
	defer tracker.mu.RUnlock()
	return tracker.hourlyWage
}

// Start starts or resumes the stopwatch and reports whether it is running.
// It refuses while no wage is set or after the stopwatch was stopped.
func (tracker *Tracker) Start() bool {
	if tracker.HourlyWage() <= 0 {
		return false
	}
	tracker.watch.Start()
	return tracker.watch.Running()
}

// Pause pauses the stopwatch.
func (tracker *Tracker) Pause() {
	tracker.watch.Pause()
}

// Toggle pauses a running stopwatch and starts any other.
func (tracker *Tracker) Toggle() bool {
	if tracker.watch.Running() {
		tracker.watch.Pause()
		return true
	}
	return tracker.Start()
}

// Reset clears elapsed time. The wage is kept.
func (tracker *Tracker) Reset() {
	tracker.watch.Reset()
}

// Stopwatch exposes the underlying stopwatch for observers.
func (tracker *Tracker) Stopwatch() *stopwatch.Stopwatch {
	return tracker.watch
}

// Snapshot derives earnings and projections from the current state.
func (tracker *Tracker) Snapshot() Snapshot {
	wage := tracker.HourlyWage()
	elapsed := tracker.watch.ElapsedSeconds()
	return Snapshot{
		HourlyWage:     wage,
		State:          tracker.watch.State(),
		ElapsedSeconds: elapsed,
		Earnings:       earnings.Current(wage, elapsed),
		Projections:    earnings.Project(wage),
	}
}
