package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xvierd/neck-cli/internal/services"
)

// nextCmd represents the next command
var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Move to the next exercise",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return navigate(cmd, (*services.RoutineService).Next)
	},
}

// prevCmd represents the prev command
var prevCmd = &cobra.Command{
	Use:   "prev",
	Short: "Move to the previous exercise",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return navigate(cmd, (*services.RoutineService).Prev)
	},
}

func navigate(cmd *cobra.Command, move func(*services.RoutineService, context.Context) error) error {
	ctx := context.Background()
	err := withService(ctx, func(svc *services.RoutineService) error {
		return move(svc, ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to move: %w", err)
	}
	return printActive(cmd)
}
