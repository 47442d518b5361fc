package ports

import "github.com/xvierd/neck-cli/internal/domain"

// CuePlayer plays short audible cues. Play must return immediately and
// must swallow playback failures.
// This is a driven port (implemented by adapters).
type CuePlayer interface {
	Play(tones ...domain.Tone)
}

// Notifier shows desktop notifications. Failures are reported but callers
// treat them as non-fatal.
// This is a driven port (implemented by adapters).
type Notifier interface {
	// NotifyTimerDone is sent when a plain timer exercise runs out.
	NotifyTimerDone(ex domain.Exercise) error

	// NotifyLoopDone is sent when an automatic hold sequence reaches its target.
	NotifyLoopDone(ex domain.Exercise, count int) error

	// NotifyRoutineDone is sent when every exercise is complete.
	NotifyRoutineDone(total int) error
}
