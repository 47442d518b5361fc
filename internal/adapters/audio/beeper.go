// Package audio plays the routine's short audible cues.
package audio

import (
	"log/slog"
	"sync"

	"github.com/gen2brain/beeep"
	"github.com/xvierd/neck-cli/internal/config"
	"github.com/xvierd/neck-cli/internal/domain"
	"github.com/xvierd/neck-cli/internal/ports"
)

// Beeper plays tones through the system beeper.
type Beeper struct {
	cfg  *config.SoundConfig
	log  *slog.Logger
	beep func(freq float64, durationMs int) error

	// mu keeps cue sequences from interleaving.
	mu sync.Mutex
	wg sync.WaitGroup
}

var _ ports.CuePlayer = (*Beeper)(nil)

// New creates a beeper with the given configuration. A nil logger discards output.
func New(cfg *config.SoundConfig, log *slog.Logger) *Beeper {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Beeper{cfg: cfg, log: log, beep: beeep.Beep}
}

// Play starts the tones in order and returns immediately.
func (b *Beeper) Play(tones ...domain.Tone) {
	if !b.IsEnabled() || len(tones) == 0 {
		return
	}

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.mu.Lock()
		defer b.mu.Unlock()

		for _, t := range tones {
			if t.Volume <= 0 {
				continue
			}
			if err := b.beep(t.Frequency, int(t.Duration.Milliseconds())); err != nil {
				b.log.Debug("beep failed", "freq", t.Frequency, "error", err)
				return
			}
		}
	}()
}

// Wait blocks until every cue started so far has finished.
func (b *Beeper) Wait() {
	b.wg.Wait()
}

// SetEnabled turns cues on or off for this process.
func (b *Beeper) SetEnabled(enabled bool) {
	if b.cfg == nil {
		b.cfg = &config.SoundConfig{Volume: domain.DefaultToneVolume}
	}
	b.cfg.Enabled = enabled
}

// IsEnabled reports whether cues are audible. There is no volume control
// on the system beeper, so any volume above zero plays at full level.
func (b *Beeper) IsEnabled() bool {
	return b.cfg != nil && b.cfg.Enabled && b.cfg.Volume > 0
}
