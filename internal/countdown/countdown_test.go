package countdown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xvierd/neck-cli/internal/sched"
)

type recorder struct {
	ticks []time.Duration
	done  int
}

func newCountdown(t *testing.T) (*Countdown, *sched.Manual, *recorder) {
	t.Helper()
	clock := sched.NewManual(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	rec := &recorder{}
	c := New(clock,
		func(d time.Duration) { rec.ticks = append(rec.ticks, d) },
		func() { rec.done++ },
	)
	return c, clock, rec
}

func step(clock *sched.Manual, n int) {
	for i := 0; i < n; i++ {
		clock.Advance(DefaultTick)
	}
}

func TestCountdown_StartEmitsImmediateTick(t *testing.T) {
	c, _, rec := newCountdown(t)

	c.Start(5 * time.Second)

	require.Len(t, rec.ticks, 1)
	assert.Equal(t, 5*time.Second, rec.ticks[0])
	assert.True(t, c.Running())
}

func TestCountdown_RunsToZeroAndFiresDoneOnce(t *testing.T) {
	c, clock, rec := newCountdown(t)

	c.Start(time.Second)
	step(clock, 10)

	assert.Equal(t, time.Duration(0), c.Remaining())
	assert.Equal(t, 1, rec.done)
	assert.False(t, c.Running())
	assert.Equal(t, time.Duration(0), rec.ticks[len(rec.ticks)-1], "last tick should be zero")

	step(clock, 20)
	assert.Equal(t, 1, rec.done, "done must not fire again")
}

func TestCountdown_TenSecondsTakesHundredTicks(t *testing.T) {
	c, clock, rec := newCountdown(t)

	c.Start(10 * time.Second)
	step(clock, 10)
	assert.Equal(t, 9*time.Second, c.Remaining())
	assert.Zero(t, rec.done)

	step(clock, 90)
	assert.Equal(t, time.Duration(0), c.Remaining())
	assert.Equal(t, 1, rec.done)
}

func TestCountdown_PauseAndResume(t *testing.T) {
	c, clock, rec := newCountdown(t)

	c.Start(time.Second)
	step(clock, 3)
	c.Pause()

	assert.Equal(t, 700*time.Millisecond, c.Remaining())
	assert.False(t, c.Running())

	step(clock, 50)
	assert.Equal(t, 700*time.Millisecond, c.Remaining(), "paused countdown must not move")
	assert.Zero(t, rec.done)

	c.Resume()
	assert.Equal(t, 700*time.Millisecond, rec.ticks[len(rec.ticks)-1], "resume emits the paused value")

	step(clock, 7)
	assert.Equal(t, 1, rec.done)
}

func TestCountdown_StartWhileRunningRestarts(t *testing.T) {
	c, clock, rec := newCountdown(t)

	c.Start(time.Second)
	step(clock, 5)
	c.Start(2 * time.Second)
	step(clock, 10)

	assert.Equal(t, time.Second, c.Remaining())
	assert.Zero(t, rec.done)
	assert.Equal(t, 1, clock.Pending(), "only one schedule may be live")
}

func TestCountdown_Reset(t *testing.T) {
	c, clock, rec := newCountdown(t)

	c.Start(3 * time.Second)
	step(clock, 4)
	c.Reset()

	assert.Equal(t, time.Duration(0), c.Remaining())
	assert.Equal(t, time.Duration(0), rec.ticks[len(rec.ticks)-1])
	assert.False(t, c.Running())

	step(clock, 40)
	assert.Zero(t, rec.done, "reset must not complete the countdown")
}

func TestCountdown_ResumeWithNothingLeftIsNoop(t *testing.T) {
	c, clock, rec := newCountdown(t)

	c.Resume()
	step(clock, 5)

	assert.Empty(t, rec.ticks)
	assert.Zero(t, rec.done)
	assert.Zero(t, clock.Pending())
}

func TestCountdown_LateTicksDoNotDrift(t *testing.T) {
	c, clock, _ := newCountdown(t)

	c.Start(2 * time.Second)
	// A stalled event loop delivers one late tick.
	clock.Advance(1500 * time.Millisecond)

	assert.Equal(t, 500*time.Millisecond, c.Remaining())
}

func TestCountdown_WithTick(t *testing.T) {
	clock := sched.NewManual(time.Time{})
	ticks := 0
	c := New(clock, func(time.Duration) { ticks++ }, nil, WithTick(time.Second))

	c.Start(3 * time.Second)
	clock.Advance(3 * time.Second)

	// One immediate tick plus one per second.
	assert.Equal(t, 4, ticks)
}
