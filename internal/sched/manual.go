package sched

import "time"

// Manual is a deterministic Scheduler whose time only moves when Advance
// is called. Callbacks run synchronously inside Advance. It is not safe for
// concurrent use.
type Manual struct {
	now    time.Time
	seq    int
	timers []*manualTimer
}

var _ Scheduler = (*Manual)(nil)

type manualTimer struct {
	due    time.Time
	period time.Duration
	fn     func()
	seq    int
	done   bool
}

// NewManual returns a manual clock starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the manual clock's time.
func (m *Manual) Now() time.Time {
	return m.now
}

// Every schedules fn every d, starting d from now.
func (m *Manual) Every(d time.Duration, fn func()) Cancel {
	if d <= 0 {
		panic("sched: non-positive interval for Every")
	}
	return m.add(d, d, fn)
}

// After schedules fn once, d from now.
func (m *Manual) After(d time.Duration, fn func()) Cancel {
	return m.add(d, 0, fn)
}

func (m *Manual) add(delay, period time.Duration, fn func()) Cancel {
	m.seq++
	t := &manualTimer{due: m.now.Add(delay), period: period, fn: fn, seq: m.seq}
	m.timers = append(m.timers, t)
	return func() { t.done = true }
}

// Advance moves the clock forward by d, running every callback that falls
// due on the way in time order. Callbacks due at the same instant run in
// the order they were scheduled.
func (m *Manual) Advance(d time.Duration) {
	target := m.now.Add(d)
	for {
		t := m.next(target)
		if t == nil {
			break
		}
		m.now = t.due
		if t.period > 0 {
			t.due = t.due.Add(t.period)
		} else {
			t.done = true
		}
		t.fn()
	}
	m.now = target
	m.compact()
}

// Pending returns the number of live callbacks.
func (m *Manual) Pending() int {
	n := 0
	for _, t := range m.timers {
		if !t.done {
			n++
		}
	}
	return n
}

func (m *Manual) next(limit time.Time) *manualTimer {
	var best *manualTimer
	for _, t := range m.timers {
		if t.done || t.due.After(limit) {
			continue
		}
		if best == nil || t.due.Before(best.due) || (t.due.Equal(best.due) && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (m *Manual) compact() {
	live := m.timers[:0]
	for _, t := range m.timers {
		if !t.done {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(m.timers); i++ {
		m.timers[i] = nil
	}
	m.timers = live
}
