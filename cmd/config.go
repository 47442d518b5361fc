package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/xvierd/neck-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and edit cue, notification and timer settings",
	Long:  `Show the configuration file and interactively change sound, notifications, the tick interval or the routine file.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		reader := bufio.NewReader(cmd.InOrStdin())
		cfg := app.config

		printConfig(out, cfg)

		fmt.Fprintln(out, "  What would you like to change?")
		fmt.Fprintln(out, "    [s] Toggle sound")
		fmt.Fprintln(out, "    [v] Set volume")
		fmt.Fprintln(out, "    [n] Toggle notifications")
		fmt.Fprintln(out, "    [t] Set tick interval")
		fmt.Fprintln(out, "    [r] Set routine file")
		fmt.Fprintln(out, "    [q] Quit without saving")
		fmt.Fprint(out, "  Choose: ")

		choice := readLine(reader)
		switch strings.ToLower(choice) {
		case "s":
			cfg.Sound.Enabled = !cfg.Sound.Enabled
		case "n":
			cfg.Notifications.Enabled = !cfg.Notifications.Enabled
		case "v":
			if err := editVolume(reader, out, cfg); err != nil {
				return err
			}
		case "t":
			if err := editTick(reader, out, cfg); err != nil {
				return err
			}
		case "r":
			fmt.Fprintf(out, "  Routine file (empty for built-in) [%s]: ", cfg.Routine.File)
			cfg.Routine.File = readLine(reader)
		case "q", "":
			fmt.Fprintln(out, "  No changes made.")
			return nil
		default:
			return fmt.Errorf("invalid choice %q", choice)
		}

		if err := config.Save(cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Fprintln(out, "\n  Saved.")
		return nil
	},
}

func printConfig(out io.Writer, cfg *config.Config) {
	path, _ := config.GetConfigPath()
	routine := cfg.Routine.File
	if routine == "" {
		routine = "built-in"
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Config file:    %s\n", path)
	fmt.Fprintf(out, "  Database:       %s\n", config.GetDBPath(cfg))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "    Routine:        %s\n", routine)
	fmt.Fprintf(out, "    Sound:          %s (volume %.2f)\n", onOff(cfg.Sound.Enabled), cfg.Sound.Volume)
	fmt.Fprintf(out, "    Notifications:  %s\n", onOff(cfg.Notifications.Enabled))
	fmt.Fprintf(out, "    Tick:           %s\n", cfg.TickInterval())
	fmt.Fprintf(out, "    Log level:      %s\n", cfg.Log.Level)
	fmt.Fprintln(out)
}

func editVolume(reader *bufio.Reader, out io.Writer, cfg *config.Config) error {
	fmt.Fprintf(out, "  Volume 0-1 [%.2f]: ", cfg.Sound.Volume)
	input := readLine(reader)
	if input == "" {
		return nil
	}
	v, err := strconv.ParseFloat(input, 64)
	if err != nil || v < 0 || v > 1 {
		return fmt.Errorf("invalid volume %q: want a number from 0 to 1", input)
	}
	cfg.Sound.Volume = v
	return nil
}

func editTick(reader *bufio.Reader, out io.Writer, cfg *config.Config) error {
	fmt.Fprintf(out, "  Tick [%s]: ", cfg.TickInterval())
	input := readLine(reader)
	if input == "" {
		return nil
	}
	d, err := time.ParseDuration(input)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", input, err)
	}
	if d < 10*time.Millisecond || d > time.Second {
		return fmt.Errorf("tick must be between 10ms and 1s, got %s", d)
	}
	cfg.Timer.Tick = config.Duration(d)
	return nil
}

func readLine(reader *bufio.Reader) string {
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
