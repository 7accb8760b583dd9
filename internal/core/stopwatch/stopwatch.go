package stopwatch

import (
	"sync"
	"time"

	"salarywatch/internal/core/model"
)

// Clock reports the current wall-clock time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Stopwatch is a state machine that accumulates whole seconds while running.
//
// Elapsed time is derived from a reference instant on every read. The refresh
// loop only exists while running and exists to notify observers.
type Stopwatch struct {
	mu        sync.Mutex
	config    model.StopwatchConfig
	clock     Clock
	running   bool
	paused    bool
	elapsed   int64
	reference time.Time
	events    []chan Event
	stopCh    chan struct{}
	doneCh    chan struct{}
	closed    bool
}

// New creates an idle Stopwatch with the provided configuration.
func New(config model.StopwatchConfig) *Stopwatch {
	if config.RefreshInterval <= 0 {
		config.RefreshInterval = time.Second
	}
	return &Stopwatch{
		config: config,
		clock:  systemClock{},
	}
}

// SetClock injects the time source.
func (watch *Stopwatch) SetClock(clock Clock) {
	watch.mu.Lock()
	defer watch.mu.Unlock()
	if clock == nil {
		clock = systemClock{}
	}
	watch.clock = clock
}

// Subscribe registers a new observer channel.
func (watch *Stopwatch) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	watch.mu.Lock()
	defer watch.mu.Unlock()
	if watch.closed {
		close(ch)
		return ch
	}
	watch.events = append(watch.events, ch)
	return ch
}

// Start begins or resumes counting. Previously accumulated seconds are kept.
func (watch *Stopwatch) Start() {
	watch.mu.Lock()
	defer watch.mu.Unlock()
	if watch.running || watch.closed {
		return
	}

	now := watch.clock.Now()
	watch.running = true
	watch.paused = false
	watch.reference = now.Add(-time.Duration(watch.elapsed) * time.Second)
	watch.stopCh = make(chan struct{})
	watch.doneCh = make(chan struct{})
	go watch.run(watch.stopCh, watch.doneCh)

	watch.emitLocked(Event{
		Type:           EventStateChange,
		State:          StateRunning,
		ElapsedSeconds: watch.elapsed,
		At:             now,
	})
}

// Pause freezes the elapsed seconds at the pause instant.
func (watch *Stopwatch) Pause() {
	watch.mu.Lock()
	if !watch.running {
		watch.mu.Unlock()
		return
	}
	now := watch.clock.Now()
	watch.advanceLocked(now)
	watch.running = false
	watch.paused = true
	watch.reference = time.Time{}
	done := watch.releaseRefreshLocked()
	watch.emitLocked(Event{
		Type:           EventStateChange,
		State:          StatePaused,
		ElapsedSeconds: watch.elapsed,
		At:             now,
	})
	watch.mu.Unlock()

	waitRefresh(done)
}

// Reset returns to idle with zero elapsed seconds from any state.
func (watch *Stopwatch) Reset() {
	watch.mu.Lock()
	watch.running = false
	watch.paused = false
	watch.elapsed = 0
	watch.reference = time.Time{}
	done := watch.releaseRefreshLocked()
	watch.emitLocked(Event{
		Type:  EventStateChange,
		State: StateIdle,
		At:    watch.clock.Now(),
	})
	watch.mu.Unlock()

	waitRefresh(done)
}

// Tick recomputes elapsed seconds for the given instant and returns them.
// It has no effect when not running.
func (watch *Stopwatch) Tick(now time.Time) int64 {
	watch.mu.Lock()
	defer watch.mu.Unlock()
	if watch.running {
		watch.advanceLocked(now)
	}
	return watch.elapsed
}

// ElapsedSeconds returns the whole seconds accumulated so far.
func (watch *Stopwatch) ElapsedSeconds() int64 {
	watch.mu.Lock()
	defer watch.mu.Unlock()
	if watch.running {
		watch.advanceLocked(watch.clock.Now())
	}
	return watch.elapsed
}

// State returns the current mode.
func (watch *Stopwatch) State() State {
	watch.mu.Lock()
	defer watch.mu.Unlock()
	return watch.stateLocked()
}

// Running reports whether the stopwatch is counting.
func (watch *Stopwatch) Running() bool {
	watch.mu.Lock()
	defer watch.mu.Unlock()
	return watch.running
}

// Reference returns the instant elapsed time is measured from.
// The second value is false when not running.
func (watch *Stopwatch) Reference() (time.Time, bool) {
	watch.mu.Lock()
	defer watch.mu.Unlock()
	return watch.reference, watch.running
}

// Stop releases the refresh loop and closes observers.
func (watch *Stopwatch) Stop() {
	watch.mu.Lock()
	if watch.closed {
		watch.mu.Unlock()
		return
	}
	watch.closed = true
	if watch.running {
		watch.advanceLocked(watch.clock.Now())
		watch.paused = watch.elapsed > 0
	}
	watch.running = false
	watch.reference = time.Time{}
	done := watch.releaseRefreshLocked()
	events := watch.events
	watch.events = nil
	watch.mu.Unlock()

	waitRefresh(done)
	for _, ch := range events {
		close(ch)
	}
}

func (watch *Stopwatch) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(watch.config.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			watch.refresh(stop)
		}
	}
}

func (watch *Stopwatch) refresh(stop <-chan struct{}) {
	watch.mu.Lock()
	defer watch.mu.Unlock()
	// A loop from an earlier run may still wake up once after release.
	if !watch.running || watch.stopCh != stop {
		return
	}

	now := watch.clock.Now()
	watch.advanceLocked(now)
	watch.emitLocked(Event{
		Type:           EventTick,
		State:          StateRunning,
		ElapsedSeconds: watch.elapsed,
		At:             now,
	})
}

func (watch *Stopwatch) advanceLocked(now time.Time) {
	seconds := int64(now.Sub(watch.reference) / time.Second)
	if seconds > watch.elapsed {
		watch.elapsed = seconds
	}
}

func (watch *Stopwatch) stateLocked() State {
	switch {
	case watch.running:
		return StateRunning
	case watch.paused:
		return StatePaused
	default:
		return StateIdle
	}
}

func (watch *Stopwatch) releaseRefreshLocked() chan struct{} {
	if watch.stopCh == nil {
		return nil
	}
	close(watch.stopCh)
	done := watch.doneCh
	watch.stopCh = nil
	watch.doneCh = nil
	return done
}

func waitRefresh(done chan struct{}) {
	if done != nil {
		<-done
	}
}

func (watch *Stopwatch) emitLocked(event Event) {
	for _, ch := range watch.events {
		select {
		case ch <- event:
		default:
		}
	}
}
