package domain

import "time"

// Tone is a single sine tone request.
type Tone struct {
	Duration  time.Duration
	Frequency float64 // Hz
	Volume    float64 // 0..1 linear
}

// Tone defaults.
const (
	DefaultToneDuration  = 140 * time.Millisecond
	DefaultToneFrequency = 880.0
	DefaultToneVolume    = 0.04
)

// NewTone builds a tone at the default volume.
func NewTone(d time.Duration, freq float64) Tone {
	return Tone{Duration: d, Frequency: freq, Volume: DefaultToneVolume}
}

// Cue sets played by the routine.
var (
	// CueCountdownDone plays when any countdown reaches zero.
	CueCountdownDone = []Tone{
		NewTone(180*time.Millisecond, 1200),
		NewTone(200*time.Millisecond, 900),
	}

	// CueAcknowledge plays when start is pressed on a manual-count exercise.
	CueAcknowledge = []Tone{
		NewTone(100*time.Millisecond, 700),
	}

	// CueConfirm plays when an exercise is marked complete.
	CueConfirm = []Tone{
		NewTone(100*time.Millisecond, 1200),
		NewTone(100*time.Millisecond, 900),
	}
)
