package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xvierd/neck-cli/internal/domain"
	"github.com/xvierd/neck-cli/internal/services"
)

const themeToggle = "toggle"

var themeCmd = &cobra.Command{
	Use:       "theme [light|dark|toggle]",
	Short:     "Show, set or toggle the color theme",
	Long:      `With no argument the stored theme is printed. "toggle" flips between light and dark.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(domain.ThemeLight), string(domain.ThemeDark), themeToggle},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		var change func(*services.RoutineService) error
		if len(args) == 1 {
			if args[0] == themeToggle {
				change = func(svc *services.RoutineService) error { return svc.ToggleTheme(ctx) }
			} else {
				t, err := domain.ValidateTheme(args[0])
				if err != nil {
					return err
				}
				change = func(svc *services.RoutineService) error { return svc.SetTheme(ctx, t) }
			}
		}

		var theme domain.Theme
		err := withService(ctx, func(svc *services.RoutineService) error {
			if change != nil {
				if err := change(svc); err != nil {
					return err
				}
			}
			theme = svc.Snapshot().Theme
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to set theme: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Theme: %s\n", theme)
		return nil
	},
}
