// Package sched provides the execution context the routine runs on.
//
// All routine state lives on one goroutine. Loop is that goroutine for the
// running program; Manual is a hand-driven clock for tests. Both hand out
// Cancel funcs, and a cancelled callback is guaranteed not to run.
package sched

import (
	"errors"
	"time"
)

// ErrStopped is returned when work is posted to a loop that has exited.
var ErrStopped = errors.New("scheduler stopped")

// Cancel stops a scheduled callback. Calling it more than once is allowed.
type Cancel func()

// Scheduler delivers callbacks on a single execution context.
type Scheduler interface {
	// Now returns the scheduler's current time.
	Now() time.Time

	// Every runs fn every d until cancelled.
	Every(d time.Duration, fn func()) Cancel

	// After runs fn once after d unless cancelled first.
	After(d time.Duration, fn func()) Cancel
}
