package storage

import (
	"context"
	"strings"

	"github.com/xvierd/neck-cli/internal/domain"
	"github.com/xvierd/neck-cli/internal/ports"
)

// preferenceRepository implements ports.PreferenceRepository on the kv table.
type preferenceRepository struct {
	kv *kvStore
}

func newPreferenceRepository(kv *kvStore) ports.PreferenceRepository {
	return &preferenceRepository{kv: kv}
}

// LoadTheme returns the stored theme, or the default when none was saved.
func (r *preferenceRepository) LoadTheme(ctx context.Context) (domain.Theme, error) {
	raw, ok, err := r.kv.get(ctx, ports.ThemeKey)
	if err != nil {
		return domain.DefaultTheme, err
	}
	if !ok {
		return domain.DefaultTheme, nil
	}
	theme, err := domain.ValidateTheme(strings.TrimSpace(raw))
	if err != nil {
		return domain.DefaultTheme, err
	}
	return theme, nil
}

// SaveTheme stores the theme.
func (r *preferenceRepository) SaveTheme(ctx context.Context, theme domain.Theme) error {
	if _, err := domain.ValidateTheme(string(theme)); err != nil {
		return err
	}
	return r.kv.put(ctx, ports.ThemeKey, string(theme))
}
