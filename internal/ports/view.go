package ports

import (
	"context"

	"github.com/xvierd/neck-cli/internal/domain"
)

// CommandType represents a user action in the routine view.
type CommandType string

const (
	// CmdStart starts the active exercise according to its mode.
	CmdStart CommandType = "start"

	// CmdPause pauses the countdown and stops any hold sequence.
	CmdPause CommandType = "pause"

	// CmdReset zeroes the countdown and stops any hold sequence.
	CmdReset CommandType = "reset"

	// CmdRepInc and friends adjust the manual counters.
	CmdRepInc CommandType = "rep+"
	CmdRepDec CommandType = "rep-"
	CmdSetInc CommandType = "set+"
	CmdSetDec CommandType = "set-"

	// CmdPrev and CmdNext move to the neighbouring exercise.
	CmdPrev CommandType = "prev"
	CmdNext CommandType = "next"

	// CmdSelect activates the exercise at Command.Index.
	CmdSelect CommandType = "select"

	// CmdComplete marks the active exercise complete.
	CmdComplete CommandType = "complete"

	// CmdResetProgress clears all progress. The view confirms first.
	CmdResetProgress CommandType = "reset-progress"

	// CmdToggleTheme flips between light and dark.
	CmdToggleTheme CommandType = "theme"
)

// Command is one user action.
type Command struct {
	Type  CommandType
	Index int // for CmdSelect
}

// RoutineView is the interactive presentation of the routine.
// This is a driving port (called by the application layer).
type RoutineView interface {
	// Run starts the view and blocks until the user quits or ctx is done.
	Run(ctx context.Context, initial domain.Snapshot) error

	// Stop gracefully stops the view.
	Stop()

	// Update shows a new snapshot. Safe from any goroutine; never blocks.
	Update(snapshot domain.Snapshot)

	// ShowError shows a transient error. Safe from any goroutine; never blocks.
	ShowError(err error)

	// SetCommandCallback sets the function that receives user commands.
	SetCommandCallback(callback func(cmd Command))
}
