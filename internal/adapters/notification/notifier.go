// Package notification provides desktop notification utilities.
package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"
	"github.com/xvierd/neck-cli/internal/config"
	"github.com/xvierd/neck-cli/internal/domain"
	"github.com/xvierd/neck-cli/internal/ports"
)

// Notifier handles desktop notifications.
type Notifier struct {
	cfg  *config.NotificationConfig
	send func(title, message, icon string) error
}

var _ ports.Notifier = (*Notifier)(nil)

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{cfg: cfg, send: func(title, message, icon string) error {
		return beeep.Notify(title, message, icon)
	}}
}

// Notify displays a desktop notification if enabled.
func (n *Notifier) Notify(title, message string) error {
	if !n.IsEnabled() {
		return nil
	}

	return n.send(title, message, "")
}

// NotifyTimerDone displays a notification when a timed exercise runs out.
func (n *Notifier) NotifyTimerDone(ex domain.Exercise) error {
	title := "⏱ Time's up"
	message := fmt.Sprintf("%s is done. Mark it complete when you're ready.", ex.Title)
	return n.Notify(title, message)
}

// NotifyLoopDone displays a notification when the automatic holds finish.
func (n *Notifier) NotifyLoopDone(ex domain.Exercise, count int) error {
	title := "✓ Holds finished"
	message := fmt.Sprintf("%s: %d of %d done.", ex.Title, count, count)
	return n.Notify(title, message)
}

// NotifyRoutineDone displays a notification when every step is complete.
func (n *Notifier) NotifyRoutineDone(total int) error {
	title := "🎉 Routine complete"
	message := fmt.Sprintf("All %d steps done. Nice work on your neck today.", total)
	return n.Notify(title, message)
}

// SetEnabled turns notifications on or off for this process.
func (n *Notifier) SetEnabled(enabled bool) {
	if n.cfg == nil {
		n.cfg = &config.NotificationConfig{}
	}
	n.cfg.Enabled = enabled
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}
