package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xvierd/neck-cli/internal/domain"
	"github.com/xvierd/neck-cli/internal/services"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the exercises in the routine",
	Long:  `List every exercise with its position, target and completion mark.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := currentSnapshot(context.Background())
		if err != nil {
			return err
		}

		if jsonOutput {
			return writeJSON(cmd, listJSON(snap))
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Neck routine (%d/%d complete):\n\n", snap.CompletedCount, snap.Total)
		for _, step := range snap.Steps {
			ex, _ := app.routine.At(step.Index)
			cursor := " "
			if step.Active {
				cursor = ">"
			}
			fmt.Fprintf(out, "%s %2s  %-34s %s\n", cursor, step.Marker(), step.Title, targetSummary(ex))
		}
		return nil
	},
}

func listJSON(snap domain.Snapshot) map[string]interface{} {
	steps := make([]map[string]interface{}, 0, len(snap.Steps))
	for _, step := range snap.Steps {
		ex, _ := app.routine.At(step.Index)
		steps = append(steps, map[string]interface{}{
			"index":     step.Index + 1,
			"id":        step.ID,
			"title":     step.Title,
			"category":  step.Category,
			"mode":      string(ex.Mode),
			"target":    targetSummary(ex),
			"completed": step.Completed,
			"active":    step.Active,
		})
	}
	return map[string]interface{}{
		"exercises": steps,
		"completed": snap.CompletedCount,
		"count":     snap.Total,
	}
}

// currentSnapshot reads the routine state on the routine loop.
func currentSnapshot(ctx context.Context) (domain.Snapshot, error) {
	var snap domain.Snapshot
	err := withService(ctx, func(svc *services.RoutineService) error {
		snap = svc.Snapshot()
		return nil
	})
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("failed to read routine: %w", err)
	}
	return snap, nil
}

func writeJSON(cmd *cobra.Command, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
