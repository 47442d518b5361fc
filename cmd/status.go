package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xvierd/neck-cli/internal/domain"
	"github.com/xvierd/neck-cli/internal/modes"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active exercise and progress",
	Long:  `Display the active exercise, its instructions and how much of the routine is done.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatus(cmd)
	},
}

// runStatus prints the current state. It is also the root command's
// output when stdout is not a terminal.
func runStatus(cmd *cobra.Command) error {
	snap, err := currentSnapshot(context.Background())
	if err != nil {
		return err
	}

	if jsonOutput {
		return writeJSON(cmd, statusJSON(snap))
	}
	printStatusText(cmd, snap)
	return nil
}

func statusJSON(snap domain.Snapshot) map[string]interface{} {
	ex := snap.Active
	return map[string]interface{}{
		"active": map[string]interface{}{
			"index":        snap.ActiveIndex + 1,
			"id":           ex.ID,
			"title":        ex.Title,
			"category":     ex.Category,
			"mode":         string(ex.Mode),
			"target":       snap.TargetSummary,
			"instructions": ex.Instructions,
			"caution":      ex.Caution,
			"completed":    snap.Steps[snap.ActiveIndex].Completed,
		},
		"completed": snap.CompletedCount,
		"total":     snap.Total,
		"theme":     string(snap.Theme),
	}
}

// printStatusText prints the status in plain text format
func printStatusText(cmd *cobra.Command, snap domain.Snapshot) {
	out := cmd.OutOrStdout()
	ex := snap.Active

	fmt.Fprintf(out, "Step %d/%d: %s\n", snap.ActiveIndex+1, snap.Total, ex.Title)
	fmt.Fprintf(out, "   %s · %s\n", ex.Category, snap.TargetSummary)
	if ex.Note != "" {
		fmt.Fprintf(out, "   %s\n", ex.Note)
	}
	for i, line := range ex.Instructions {
		fmt.Fprintf(out, "   %d. %s\n", i+1, line)
	}
	if ex.Caution != "" {
		fmt.Fprintf(out, "   Caution: %s\n", ex.Caution)
	}
	fmt.Fprintln(out)

	if snap.AllComplete() {
		fmt.Fprintf(out, "Routine complete (%d/%d).\n", snap.CompletedCount, snap.Total)
		return
	}
	fmt.Fprintf(out, "Progress: %d/%d complete %s\n", snap.CompletedCount, snap.Total, progressMarks(snap))
}

// progressMarks renders one character per step: a check mark when done,
// a dot otherwise.
func progressMarks(snap domain.Snapshot) string {
	var b strings.Builder
	for _, step := range snap.Steps {
		if step.Completed {
			b.WriteString("✓")
		} else {
			b.WriteString("·")
		}
	}
	return b.String()
}

func targetSummary(ex domain.Exercise) string {
	return modes.ForMode(ex.Mode).TargetSummary(ex.Targets)
}
