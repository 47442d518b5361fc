package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xvierd/neck-cli/internal/services"
)

// completeCmd represents the complete command
var completeCmd = &cobra.Command{
	Use:   "complete [step]",
	Short: "Mark an exercise complete",
	Long: `Mark the active exercise complete and move on to the next one.
With an argument, that exercise is selected first (see "neck goto").`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		target := -1
		if len(args) == 1 {
			i, err := resolveExercise(app.routine, args[0])
			if err != nil {
				return err
			}
			target = i
		}

		var title string
		err := withService(ctx, func(svc *services.RoutineService) error {
			if target >= 0 {
				if err := svc.Select(ctx, target); err != nil {
					return err
				}
			}
			title = svc.Snapshot().Active.Title
			return svc.MarkComplete(ctx)
		})
		if err != nil {
			return fmt.Errorf("failed to complete exercise: %w", err)
		}

		if !jsonOutput {
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s\n", title)
		}
		return printActive(cmd)
	},
}
