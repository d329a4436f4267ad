package countdown

import (
	"fmt"
	"sync"
	"time"

	"github.com/alnah/go-avtoolbox/internal/formula"
)

// State is the lifecycle phase of a Timer.
type State int

// Timer states.
const (
	Idle State = iota
	Running
	Paused
	Expired
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Expired:
		return "expired"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Snapshot is a point-in-time copy of a Timer.
type Snapshot struct {
	State      State
	Configured time.Duration
	Remaining  time.Duration
}

// Display formats the remaining time for the live display (MM:SS, or
// HH:MM:SS once an hour or more remains). An idle timer shows its
// configured duration.
func (s Snapshot) Display() string {
	if s.State == Idle {
		return formula.Remaining(s.Configured.Milliseconds())
	}
	return formula.Remaining(s.Remaining.Milliseconds())
}

// Progress returns the elapsed share in percent.
func (s Snapshot) Progress() float64 {
	if s.State == Idle {
		return 0
	}
	return formula.Progress(s.Configured.Milliseconds(), s.Remaining.Milliseconds())
}

// Timer is a countdown safe for concurrent use.
type Timer struct {
	mu         sync.Mutex
	state      State
	configured time.Duration
	remaining  time.Duration
}

// New returns an idle Timer configured for d.
func New(d time.Duration) *Timer {
	return &Timer{configured: d}
}

// Snapshot returns the current state.
func (t *Timer) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

func (t *Timer) snapshotLocked() Snapshot {
	return Snapshot{State: t.state, Configured: t.configured, Remaining: t.remaining}
}

// Configure changes the duration. Only an idle timer accepts a new duration.
func (t *Timer) Configure(d time.Duration) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != Idle {
		return fmt.Errorf("%w: timer is %s", ErrNotIdle, t.state)
	}
	t.configured = d
	return nil
}

// Start begins counting from the configured duration, or resumes a paused
// timer. Starting a running timer is a no-op.
func (t *Timer) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch t.state {
	case Idle:
		if t.configured <= 0 {
			return ErrZeroDuration
		}
		t.remaining = t.configured
		t.state = Running
	case Paused:
		t.state = Running
	case Expired:
		return ErrExpired
	}
	return nil
}

// Pause freezes a running timer.
func (t *Timer) Pause() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != Running {
		return fmt.Errorf("%w: timer is %s", ErrNotRunning, t.state)
	}
	t.state = Paused
	return nil
}

// Reset returns to Idle, keeping the configured duration.
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.state = Idle
	t.remaining = 0
}

// Tick advances a running timer by step. When no more than step remains
// the timer expires with zero remaining. Ticks outside Running are ignored.
func (t *Timer) Tick(step time.Duration) Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != Running {
		return t.snapshotLocked()
	}
	if t.remaining <= step {
		t.remaining = 0
		t.state = Expired
	} else {
		t.remaining -= step
	}
	return t.snapshotLocked()
}
