package modes

import (
	"testing"
	"time"

	"github.com/xvierd/neck-cli/internal/domain"
)

func TestForMode(t *testing.T) {
	tests := []struct {
		mode      domain.Mode
		usesTimer bool
		loops     bool
		gap       time.Duration
		counter   domain.Counter
	}{
		{domain.ModeTimer, true, false, 0, domain.CounterReps},
		{domain.ModeHoldReps, true, true, 400 * time.Millisecond, domain.CounterReps},
		{domain.ModeHoldSets, true, true, 600 * time.Millisecond, domain.CounterSets},
		{domain.ModeRepsSets, false, false, 0, domain.CounterReps},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			b := ForMode(tt.mode)
			if b.Name() != tt.mode {
				t.Errorf("Name() = %v, want %v", b.Name(), tt.mode)
			}
			if b.UsesTimer() != tt.usesTimer {
				t.Errorf("UsesTimer() = %v, want %v", b.UsesTimer(), tt.usesTimer)
			}
			if b.Loops() != tt.loops {
				t.Errorf("Loops() = %v, want %v", b.Loops(), tt.loops)
			}
			if b.RepeatGap() != tt.gap {
				t.Errorf("RepeatGap() = %v, want %v", b.RepeatGap(), tt.gap)
			}
			if b.Loops() && b.Counter() != tt.counter {
				t.Errorf("Counter() = %v, want %v", b.Counter(), tt.counter)
			}
		})
	}
}

func TestTargetSummary(t *testing.T) {
	tests := []struct {
		mode    domain.Mode
		targets domain.Targets
		want    string
	}{
		{domain.ModeTimer, domain.Targets{DurationSec: 120}, "Duration: 02:00"},
		{domain.ModeHoldReps, domain.Targets{Reps: 10, HoldSec: 5}, "Reps: 10 (hold 5s each)"},
		{domain.ModeHoldSets, domain.Targets{Sets: 3, HoldSec: 30}, "Sets: 3 × hold 30s"},
		{domain.ModeRepsSets, domain.Targets{Sets: 2, Reps: 10}, "Sets × Reps: 2 × 10"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := ForMode(tt.mode).TargetSummary(tt.targets); got != tt.want {
				t.Errorf("TargetSummary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSegmentAndLoopTarget(t *testing.T) {
	holdSets := ForMode(domain.ModeHoldSets)
	targets := domain.Targets{Sets: 3, HoldSec: 25}

	if got := holdSets.Segment(targets); got != 25*time.Second {
		t.Errorf("Segment() = %v, want 25s", got)
	}
	if got := holdSets.LoopTarget(targets); got != 3 {
		t.Errorf("LoopTarget() = %d, want 3", got)
	}

	timer := ForMode(domain.ModeTimer)
	if got := timer.Segment(domain.Targets{DurationSec: 60}); got != time.Minute {
		t.Errorf("timer Segment() = %v, want 1m", got)
	}
}
