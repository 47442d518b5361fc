// Package modes encapsulates the behavior of each exercise interaction mode.
// The routine service and the views query the Behavior interface instead of
// switching on the mode everywhere.
package modes

import (
	"fmt"
	"time"

	"github.com/xvierd/neck-cli/internal/domain"
)

// Pause between automatic hold repetitions.
const (
	RepGap = 400 * time.Millisecond
	SetGap = 600 * time.Millisecond
)

// Behavior defines the mode-specific rules.
type Behavior interface {
	// Name returns the mode identifier.
	Name() domain.Mode

	// UsesTimer reports whether start runs a countdown.
	UsesTimer() bool

	// Loops reports whether the countdown repeats automatically until the
	// target count is reached.
	Loops() bool

	// RepeatGap is the pause before the next automatic hold.
	RepeatGap() time.Duration

	// Counter is the counter advanced by each completed hold.
	Counter() domain.Counter

	// LoopTarget is the count at which an automatic sequence stops.
	LoopTarget(t domain.Targets) int

	// Segment is the length of one countdown run.
	Segment(t domain.Targets) time.Duration

	// TargetSummary is the one-line description of the targets.
	TargetSummary(t domain.Targets) string

	// StartHint describes what start does, for help text.
	StartHint() string
}

// ForMode returns the Behavior for m. Unknown modes fall back to the manual
// counting behavior, which never starts a countdown.
func ForMode(m domain.Mode) Behavior {
	switch m {
	case domain.ModeTimer:
		return &timerMode{}
	case domain.ModeHoldReps:
		return &holdRepsMode{}
	case domain.ModeHoldSets:
		return &holdSetsMode{}
	default:
		return &repsSetsMode{}
	}
}

// --- Timer ---

type timerMode struct{}

func (timerMode) Name() domain.Mode                      { return domain.ModeTimer }
func (timerMode) UsesTimer() bool                        { return true }
func (timerMode) Loops() bool                            { return false }
func (timerMode) RepeatGap() time.Duration               { return 0 }
func (timerMode) Counter() domain.Counter                { return domain.CounterReps }
func (timerMode) LoopTarget(domain.Targets) int          { return 0 }
func (timerMode) Segment(t domain.Targets) time.Duration { return t.Duration() }
func (timerMode) StartHint() string                      { return "start / resume" }
func (timerMode) TargetSummary(t domain.Targets) string {
	return "Duration: " + domain.FormatClock(t.Duration())
}

// --- Hold × reps ---

type holdRepsMode struct{}

func (holdRepsMode) Name() domain.Mode                      { return domain.ModeHoldReps }
func (holdRepsMode) UsesTimer() bool                        { return true }
func (holdRepsMode) Loops() bool                            { return true }
func (holdRepsMode) RepeatGap() time.Duration               { return RepGap }
func (holdRepsMode) Counter() domain.Counter                { return domain.CounterReps }
func (holdRepsMode) LoopTarget(t domain.Targets) int        { return t.Reps }
func (holdRepsMode) Segment(t domain.Targets) time.Duration { return t.Hold() }
func (holdRepsMode) StartHint() string                      { return "start reps" }
func (holdRepsMode) TargetSummary(t domain.Targets) string {
	return fmt.Sprintf("Reps: %d (hold %ds each)", t.Reps, t.HoldSec)
}

// --- Hold × sets ---

type holdSetsMode struct{}

func (holdSetsMode) Name() domain.Mode                      { return domain.ModeHoldSets }
func (holdSetsMode) UsesTimer() bool                        { return true }
func (holdSetsMode) Loops() bool                            { return true }
func (holdSetsMode) RepeatGap() time.Duration               { return SetGap }
func (holdSetsMode) Counter() domain.Counter                { return domain.CounterSets }
func (holdSetsMode) LoopTarget(t domain.Targets) int        { return t.Sets }
func (holdSetsMode) Segment(t domain.Targets) time.Duration { return t.Hold() }
func (holdSetsMode) StartHint() string                      { return "start sets" }
func (holdSetsMode) TargetSummary(t domain.Targets) string {
	return fmt.Sprintf("Sets: %d × hold %ds", t.Sets, t.HoldSec)
}

// --- Sets × reps (manual) ---

type repsSetsMode struct{}

func (repsSetsMode) Name() domain.Mode                    { return domain.ModeRepsSets }
func (repsSetsMode) UsesTimer() bool                      { return false }
func (repsSetsMode) Loops() bool                          { return false }
func (repsSetsMode) RepeatGap() time.Duration             { return 0 }
func (repsSetsMode) Counter() domain.Counter              { return domain.CounterReps }
func (repsSetsMode) LoopTarget(domain.Targets) int        { return 0 }
func (repsSetsMode) Segment(domain.Targets) time.Duration { return 0 }
func (repsSetsMode) StartHint() string                    { return "beep" }
func (repsSetsMode) TargetSummary(t domain.Targets) string {
	return fmt.Sprintf("Sets × Reps: %d × %d", t.Sets, t.Reps)
}
