// Package ports defines the interfaces (driven and driving ports)
// for the neck routine following hexagonal architecture principles.
// These interfaces define the contracts between the domain layer and
// external infrastructure.
package ports

import (
	"context"

	"github.com/xvierd/neck-cli/internal/domain"
)

// Storage keys. They match the keys the browser version of the routine
// used in localStorage, so exported data stays interchangeable.
const (
	ProgressKey = "neckRoutineProgress"
	ThemeKey    = "theme"
)

// ProgressRepository persists the completed set and current index.
// This is a driven port (implemented by adapters).
type ProgressRepository interface {
	// Load returns the stored progress, or nil if nothing is stored.
	Load(ctx context.Context) (*domain.Progress, error)

	// Save replaces the stored progress.
	Save(ctx context.Context, progress domain.Progress) error
}

// PreferenceRepository persists user preferences.
// This is a driven port (implemented by adapters).
type PreferenceRepository interface {
	// LoadTheme returns the stored theme, or domain.DefaultTheme if none.
	LoadTheme(ctx context.Context) (domain.Theme, error)

	// SaveTheme stores the theme.
	SaveTheme(ctx context.Context, theme domain.Theme) error
}

// Storage is the combined repository interface.
// This is a driven port (implemented by adapters).
type Storage interface {
	// Progress provides access to routine progress.
	Progress() ProgressRepository

	// Preferences provides access to preferences.
	Preferences() PreferenceRepository

	// Close closes the storage connection.
	Close() error

	// Migrate runs database migrations.
	Migrate() error
}
