package domain

import (
	"errors"
	"fmt"
	"time"
)

// Domain errors
var (
	ErrExerciseNotFound  = errors.New("exercise not found")
	ErrInvalidTargets    = errors.New("targets do not match mode")
	ErrInvalidMode       = errors.New("invalid exercise mode")
	ErrEmptyExerciseID   = errors.New("exercise ID cannot be empty")
	ErrDuplicateExercise = errors.New("duplicate exercise ID")
	ErrEmptyRoutine      = errors.New("routine has no exercises")
	ErrInvalidTheme      = errors.New("invalid theme")
	ErrCorruptProgress   = errors.New("stored progress is corrupt")
)

// Mode is the interaction mode of an exercise.
type Mode string

const (
	ModeTimer    Mode = "timer"
	ModeHoldReps Mode = "hold-reps"
	ModeHoldSets Mode = "hold-sets"
	ModeRepsSets Mode = "reps-sets"
)

// ValidModes lists all supported mode values.
var ValidModes = []Mode{
	ModeTimer,
	ModeHoldReps,
	ModeHoldSets,
	ModeRepsSets,
}

// ValidateMode checks if a string is a valid mode.
func ValidateMode(s string) (Mode, error) {
	m := Mode(s)
	for _, valid := range ValidModes {
		if m == valid {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w %q: must be one of timer, hold-reps, hold-sets, reps-sets", ErrInvalidMode, s)
}

// Label returns a human-readable label.
func (m Mode) Label() string {
	switch m {
	case ModeTimer:
		return "Timer"
	case ModeHoldReps:
		return "Hold × reps"
	case ModeHoldSets:
		return "Hold × sets"
	case ModeRepsSets:
		return "Sets × reps"
	default:
		return "Unknown"
	}
}

// Targets holds the numeric goals of an exercise. Which fields are set
// depends on the mode.
type Targets struct {
	DurationSec int `json:"durationSec,omitempty" yaml:"durationSec,omitempty"`
	Reps        int `json:"reps,omitempty" yaml:"reps,omitempty"`
	Sets        int `json:"sets,omitempty" yaml:"sets,omitempty"`
	HoldSec     int `json:"holdSec,omitempty" yaml:"holdSec,omitempty"`
}

// Duration returns DurationSec as a time.Duration.
func (t Targets) Duration() time.Duration {
	return time.Duration(t.DurationSec) * time.Second
}

// Hold returns HoldSec as a time.Duration.
func (t Targets) Hold() time.Duration {
	return time.Duration(t.HoldSec) * time.Second
}

// Exercise is one step of the routine.
type Exercise struct {
	ID           string   `json:"id" yaml:"id"`
	Category     string   `json:"category" yaml:"category"`
	Title        string   `json:"title" yaml:"title"`
	Note         string   `json:"note,omitempty" yaml:"note,omitempty"`
	Instructions []string `json:"instructions" yaml:"instructions"`
	Caution      string   `json:"caution,omitempty" yaml:"caution,omitempty"`
	Mode         Mode     `json:"mode" yaml:"mode"`
	Targets      Targets  `json:"targets" yaml:"targets"`
}

// Validate checks that the exercise has an ID, a known mode, and exactly
// the targets its mode requires.
func (e Exercise) Validate() error {
	if e.ID == "" {
		return ErrEmptyExerciseID
	}
	if _, err := ValidateMode(string(e.Mode)); err != nil {
		return fmt.Errorf("exercise %s: %w", e.ID, err)
	}

	t := e.Targets
	var ok bool
	switch e.Mode {
	case ModeTimer:
		ok = t.DurationSec > 0 && t.Reps == 0 && t.Sets == 0 && t.HoldSec == 0
	case ModeHoldReps:
		ok = t.Reps > 0 && t.HoldSec > 0 && t.DurationSec == 0 && t.Sets == 0
	case ModeHoldSets:
		ok = t.Sets > 0 && t.HoldSec > 0 && t.DurationSec == 0 && t.Reps == 0
	case ModeRepsSets:
		ok = t.Sets > 0 && t.Reps > 0 && t.DurationSec == 0 && t.HoldSec == 0
	}
	if !ok {
		return fmt.Errorf("exercise %s (%s): %w", e.ID, e.Mode, ErrInvalidTargets)
	}
	return nil
}
