package ports

import (
	"context"
	"testing"

	"github.com/xvierd/neck-cli/internal/domain"
)

// Mock implementations for testing interfaces.

type mockProgressRepository struct {
	progress *domain.Progress
}

func (m *mockProgressRepository) Load(ctx context.Context) (*domain.Progress, error) {
	if m.progress == nil {
		return nil, nil
	}
	p := *m.progress
	return &p, nil
}

func (m *mockProgressRepository) Save(ctx context.Context, progress domain.Progress) error {
	m.progress = &progress
	return nil
}

type mockPreferenceRepository struct {
	theme domain.Theme
}

func (m *mockPreferenceRepository) LoadTheme(ctx context.Context) (domain.Theme, error) {
	if m.theme == "" {
		return domain.DefaultTheme, nil
	}
	return m.theme, nil
}

func (m *mockPreferenceRepository) SaveTheme(ctx context.Context, theme domain.Theme) error {
	if _, err := domain.ValidateTheme(string(theme)); err != nil {
		return err
	}
	m.theme = theme
	return nil
}

type mockStorage struct {
	progress    *mockProgressRepository
	preferences *mockPreferenceRepository
}

func (m *mockStorage) Progress() ProgressRepository       { return m.progress }
func (m *mockStorage) Preferences() PreferenceRepository { return m.preferences }
func (m *mockStorage) Close() error                      { return nil }
func (m *mockStorage) Migrate() error                    { return nil }

var (
	_ Storage              = (*mockStorage)(nil)
	_ ProgressRepository   = (*mockProgressRepository)(nil)
	_ PreferenceRepository = (*mockPreferenceRepository)(nil)
)

func TestStorageContract(t *testing.T) {
	ctx := context.Background()
	var s Storage = &mockStorage{
		progress:    &mockProgressRepository{},
		preferences: &mockPreferenceRepository{},
	}

	p, err := s.Progress().Load(ctx)
	if err != nil || p != nil {
		t.Fatalf("empty Load = %v, %v; want nil, nil", p, err)
	}

	want := domain.Progress{Completed: []string{"chin-tucks"}, CurrentIndex: 2}
	if err := s.Progress().Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	p, err = s.Progress().Load(ctx)
	if err != nil || p == nil || p.CurrentIndex != 2 || len(p.Completed) != 1 {
		t.Fatalf("Load after Save = %+v, %v", p, err)
	}

	theme, _ := s.Preferences().LoadTheme(ctx)
	if theme != domain.DefaultTheme {
		t.Errorf("default theme = %s, want %s", theme, domain.DefaultTheme)
	}
	if err := s.Preferences().SaveTheme(ctx, "sepia"); err == nil {
		t.Error("SaveTheme should reject unknown themes")
	}
}
