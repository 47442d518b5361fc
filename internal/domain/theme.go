package domain

import "fmt"

// Theme is the colour scheme preference.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// DefaultTheme is used when nothing valid is stored.
const DefaultTheme = ThemeDark

// ValidateTheme checks if a string is a valid theme.
func ValidateTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeDark, ThemeLight:
		return Theme(s), nil
	}
	return "", fmt.Errorf("%w %q: must be light or dark", ErrInvalidTheme, s)
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}
