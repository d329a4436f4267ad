package countdown

import (
	"context"
	"time"
)

// DefaultStep is the live display refresh interval.
const DefaultStep = 100 * time.Millisecond

// Ticker delivers tick events. It is satisfied by RealTicker and by fakes
// in tests.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type realTicker struct {
	t *time.Ticker
}

// RealTicker returns a Ticker backed by time.Ticker.
func RealTicker(d time.Duration) Ticker {
	return &realTicker{t: time.NewTicker(d)}
}

func (r *realTicker) C() <-chan time.Time { return r.t.C }
func (r *realTicker) Stop()               { r.t.Stop() }

// Run starts the timer and advances it by step on every tick, calling
// onTick with each new snapshot. It returns nil once the timer expires and
// ctx.Err() if ctx is cancelled first. The ticker is stopped on return.
func Run(ctx context.Context, timer *Timer, ticker Ticker, step time.Duration, onTick func(Snapshot)) error {
	defer ticker.Stop()

	if err := timer.Start(); err != nil {
		return err
	}
	if onTick != nil {
		onTick(timer.Snapshot())
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C():
			snap := timer.Tick(step)
			if onTick != nil {
				onTick(snap)
			}
			if snap.State == Expired {
				return nil
			}
		}
	}
}
