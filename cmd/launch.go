package cmd

import (
	"context"
	"fmt"

	"github.com/xvierd/neck-cli/internal/adapters/tui"
	"github.com/xvierd/neck-cli/internal/domain"
	"github.com/xvierd/neck-cli/internal/ports"
	"github.com/xvierd/neck-cli/internal/services"
)

// launchTUI opens the interactive routine and blocks until the user quits.
func launchTUI(ctx context.Context) error {
	view := tui.NewView(&app.config.Theme)

	// Commands arrive on the Bubbletea goroutine; Post hands them to the
	// routine loop without waiting for the result.
	view.SetCommandCallback(func(c ports.Command) {
		app.loop.Post(func() {
			if err := handleCommand(ctx, app.routines, c); err != nil {
				app.log.Warn("command failed", "command", c.Type, "error", err)
				view.ShowError(err)
			}
		})
	})

	var initial domain.Snapshot
	err := withService(ctx, func(svc *services.RoutineService) error {
		svc.OnChange(view.Update)
		initial = svc.Snapshot()
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to prepare routine: %w", err)
	}

	app.log.Info("tui started", "exercise", initial.Active.ID)
	return view.Run(ctx, initial)
}

// handleCommand applies one view command to the routine.
func handleCommand(ctx context.Context, svc *services.RoutineService, c ports.Command) error {
	switch c.Type {
	case ports.CmdStart:
		svc.Start()
	case ports.CmdPause:
		svc.Pause()
	case ports.CmdReset:
		svc.Reset()
	case ports.CmdRepInc:
		svc.IncReps()
	case ports.CmdRepDec:
		svc.DecReps()
	case ports.CmdSetInc:
		svc.IncSets()
	case ports.CmdSetDec:
		svc.DecSets()
	case ports.CmdPrev:
		return svc.Prev(ctx)
	case ports.CmdNext:
		return svc.Next(ctx)
	case ports.CmdSelect:
		return svc.Select(ctx, c.Index)
	case ports.CmdComplete:
		return svc.MarkComplete(ctx)
	case ports.CmdResetProgress:
		return svc.ResetProgress(ctx)
	case ports.CmdToggleTheme:
		return svc.ToggleTheme(ctx)
	default:
		return fmt.Errorf("unknown command %q", c.Type)
	}
	return nil
}
