package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
	"github.com/xvierd/neck-cli/internal/domain"
	"github.com/xvierd/neck-cli/internal/services"
)

// gotoCmd represents the goto command
var gotoCmd = &cobra.Command{
	Use:   "goto <step>",
	Short: "Make an exercise the active one",
	Long: `Make an exercise the active one. The step may be its 1-based position,
its id, or part of its title ("goto levator").`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		i, err := resolveExercise(app.routine, args[0])
		if err != nil {
			return err
		}

		err = withService(ctx, func(svc *services.RoutineService) error {
			return svc.Select(ctx, i)
		})
		if err != nil {
			return fmt.Errorf("failed to select exercise: %w", err)
		}

		return printActive(cmd)
	},
}

// resolveExercise finds the step named by arg: a 1-based position, an
// exact id, or the best fuzzy match over titles and ids.
func resolveExercise(r *domain.Routine, arg string) (int, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return 0, fmt.Errorf("%w: empty step", domain.ErrExerciseNotFound)
	}

	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > r.Len() {
			return 0, fmt.Errorf("%w: step %d (routine has %d)", domain.ErrExerciseNotFound, n, r.Len())
		}
		return n - 1, nil
	}

	if i := r.IndexOf(arg); i >= 0 {
		return i, nil
	}

	exercises := r.Exercises()
	names := make([]string, len(exercises))
	for i, ex := range exercises {
		names[i] = ex.Title + " " + ex.ID
	}
	matches := fuzzy.Find(arg, names)
	if len(matches) == 0 {
		return 0, fmt.Errorf("%w: %s", domain.ErrExerciseNotFound, arg)
	}
	return matches[0].Index, nil
}

// printActive prints a one-line summary of the active exercise.
func printActive(cmd *cobra.Command) error {
	snap, err := currentSnapshot(context.Background())
	if err != nil {
		return err
	}
	if jsonOutput {
		return writeJSON(cmd, statusJSON(snap))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "▶ Step %d/%d: %s (%s)\n",
		snap.ActiveIndex+1, snap.Total, snap.Active.Title, snap.TargetSummary)
	return nil
}
