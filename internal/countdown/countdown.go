// Package countdown implements a restartable, pausable countdown clock.
package countdown

import (
	"time"

	"github.com/xvierd/neck-cli/internal/sched"
)

// DefaultTick is the tick cadence.
const DefaultTick = 100 * time.Millisecond

// Countdown counts a duration down to zero, reporting the remaining time on
// every tick and calling onDone once when it runs out.
//
// Remaining time is measured against the scheduler clock from the moment
// the current run began, so late ticks do not make it drift.
//
// A Countdown must only be used from the scheduler's execution context.
type Countdown struct {
	sched  sched.Scheduler
	tick   time.Duration
	onTick func(time.Duration)
	onDone func()

	remaining time.Duration // value when the current run started, or when paused
	startedAt time.Time
	cancel    sched.Cancel
}

// Option configures a Countdown.
type Option func(*Countdown)

// WithTick overrides the tick cadence.
func WithTick(d time.Duration) Option {
	return func(c *Countdown) {
		if d > 0 {
			c.tick = d
		}
	}
}

// New creates a stopped countdown with nothing remaining. Either callback
// may be nil.
func New(s sched.Scheduler, onTick func(time.Duration), onDone func(), opts ...Option) *Countdown {
	c := &Countdown{
		sched:  s,
		tick:   DefaultTick,
		onTick: onTick,
		onDone: onDone,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start restarts the countdown at d.
func (c *Countdown) Start(d time.Duration) {
	c.stop()
	c.remaining = d
	c.run()
}

// Resume continues from the current remaining time. It does nothing when
// there is no time left.
func (c *Countdown) Resume() {
	c.stop()
	if c.remaining <= 0 {
		return
	}
	c.run()
}

// Pause stops ticking and keeps the remaining time.
func (c *Countdown) Pause() {
	c.stop()
}

// Reset stops ticking, zeroes the remaining time and emits a zero tick.
func (c *Countdown) Reset() {
	c.stop()
	c.remaining = 0
	c.emit(0)
}

// Remaining returns the time left.
func (c *Countdown) Remaining() time.Duration {
	if c.cancel == nil {
		return c.remaining
	}
	left := c.remaining - c.sched.Now().Sub(c.startedAt)
	if left < 0 {
		return 0
	}
	return left
}

// Running reports whether the countdown is ticking.
func (c *Countdown) Running() bool {
	return c.cancel != nil
}

func (c *Countdown) run() {
	c.startedAt = c.sched.Now()
	c.emit(c.remaining)
	c.cancel = c.sched.Every(c.tick, c.onInterval)
}

func (c *Countdown) onInterval() {
	left := c.Remaining()
	if left > 0 {
		c.emit(left)
		return
	}

	c.stop()
	c.remaining = 0
	c.emit(0)
	if c.onDone != nil {
		c.onDone()
	}
}

// stop freezes the remaining time and cancels the schedule.
func (c *Countdown) stop() {
	if c.cancel == nil {
		return
	}
	c.remaining = c.Remaining()
	c.cancel()
	c.cancel = nil
}

func (c *Countdown) emit(d time.Duration) {
	if c.onTick != nil {
		c.onTick(d)
	}
}
