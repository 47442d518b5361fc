package sched

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

const defaultQueueSize = 256

// Loop runs posted funcs one at a time on the goroutine that called Run.
type Loop struct {
	queue   chan func()
	stopped chan struct{}
	once    sync.Once
}

var _ Scheduler = (*Loop)(nil)

// NewLoop creates a loop. Nothing runs until Run is called.
func NewLoop() *Loop {
	return &Loop{
		queue:   make(chan func(), defaultQueueSize),
		stopped: make(chan struct{}),
	}
}

// Run processes posted work until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	defer l.once.Do(func() { close(l.stopped) })
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.queue:
			fn()
		}
	}
}

// Post queues fn to run on the loop. It returns false if the loop has exited.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.stopped:
		return false
	default:
	}
	select {
	case l.queue <- fn:
		return true
	case <-l.stopped:
		return false
	}
}

// Call runs fn on the loop and waits for its result.
func (l *Loop) Call(ctx context.Context, fn func() error) error {
	errc := make(chan error, 1)
	if !l.Post(func() { errc <- fn() }) {
		return ErrStopped
	}
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-l.stopped:
		select {
		case err := <-errc:
			return err
		default:
			return ErrStopped
		}
	}
}

// Now returns the wall clock. The value carries a monotonic reading, so
// Sub between two calls is immune to clock changes.
func (l *Loop) Now() time.Time {
	return time.Now()
}

// Every posts fn to the loop every d.
func (l *Loop) Every(d time.Duration, fn func()) Cancel {
	t := &task{fn: fn}
	ticker := time.NewTicker(d)
	stop := make(chan struct{})
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-l.stopped:
				return
			case <-ticker.C:
				if !l.Post(t.run) {
					return
				}
			}
		}
	}()

	var once sync.Once
	return func() {
		t.cancelled.Store(true)
		once.Do(func() { close(stop) })
	}
}

// After posts fn to the loop once, after d.
func (l *Loop) After(d time.Duration, fn func()) Cancel {
	t := &task{fn: fn}
	timer := time.AfterFunc(d, func() { l.Post(t.run) })
	return func() {
		t.cancelled.Store(true)
		timer.Stop()
	}
}

// task guards a callback that may already be sitting in the queue when it
// is cancelled.
type task struct {
	fn        func()
	cancelled atomic.Bool
}

func (t *task) run() {
	if !t.cancelled.Load() {
		t.fn()
	}
}
