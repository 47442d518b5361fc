package domain

import (
	"fmt"
	"time"
)

// StepView is one row of the step list.
type StepView struct {
	Index     int
	ID        string
	Title     string
	Category  string
	Completed bool
	Active    bool
}

// Marker returns the list prefix: a check mark when done, else the
// 1-based position.
func (v StepView) Marker() string {
	if v.Completed {
		return "✓"
	}
	return fmt.Sprintf("%d", v.Index+1)
}

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	Steps          []StepView
	ActiveIndex    int
	Active         Exercise
	TargetSummary  string
	Remaining      time.Duration
	Segment        time.Duration
	Running        bool
	RepsDone       int
	SetsDone       int
	HoldLoopActive bool
	Theme          Theme
	CompletedCount int
	Total          int
}

// RemainingText returns the countdown as MM:SS.
func (s Snapshot) RemainingText() string {
	return FormatClock(s.Remaining)
}

// SegmentProgress returns how much of the current countdown has elapsed,
// from 0 to 1.
func (s Snapshot) SegmentProgress() float64 {
	if s.Segment <= 0 || s.Remaining <= 0 {
		return 0
	}
	p := 1 - float64(s.Remaining)/float64(s.Segment)
	if p < 0 {
		return 0
	}
	return p
}

// AllComplete reports whether every exercise is done.
func (s Snapshot) AllComplete() bool {
	return s.Total > 0 && s.CompletedCount >= s.Total
}

// FormatClock renders d as MM:SS, flooring to whole seconds.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
