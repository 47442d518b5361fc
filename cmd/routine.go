package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xvierd/neck-cli/internal/catalog"
)

var routineCmd = &cobra.Command{
	Use:   "routine",
	Short: "Print the routine as YAML",
	Long: `Print the routine in use as YAML. The output is a valid --routine file,
so it can be saved, edited and loaded back.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := catalog.Marshal(app.routine)
		if err != nil {
			return fmt.Errorf("failed to encode routine: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}
