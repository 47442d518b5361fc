package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"github.com/xvierd/neck-cli/internal/adapters/tui"
	"github.com/xvierd/neck-cli/internal/services"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear all progress and start the routine over",
	Long: `Forget which exercises are complete and return to the first one.
The theme preference is kept. Use --force to skip the confirmation prompt.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if !resetForce && !confirmReset(cmd) {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}

		err := withService(ctx, func(svc *services.RoutineService) error {
			return svc.ResetProgress(ctx)
		})
		if err != nil {
			return fmt.Errorf("failed to reset progress: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Progress cleared. Fresh start.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "Skip confirmation prompt")
}

// confirmReset asks before progress is cleared: a confirmation screen on
// a terminal, a typed "yes" otherwise.
func confirmReset(cmd *cobra.Command) bool {
	if term.IsTerminal(os.Stdin.Fd()) && term.IsTerminal(os.Stdout.Fd()) {
		snap, err := currentSnapshot(context.Background())
		if err != nil {
			return false
		}
		ok, err := tui.ConfirmReset(snap, app.config.Theme.Palette(snap.Theme))
		if err != nil {
			app.log.Warn("reset confirmation failed", "error", err)
			return false
		}
		return ok
	}
	return promptYes(cmd.InOrStdin(), cmd.OutOrStdout())
}

func promptYes(in io.Reader, out io.Writer) bool {
	fmt.Fprint(out, "Reset all progress? Type 'yes' to confirm: ")
	reader := bufio.NewReader(in)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(strings.ToLower(input)) == "yes"
}
