package tui

import (
	"context"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xvierd/neck-cli/internal/config"
	"github.com/xvierd/neck-cli/internal/domain"
	"github.com/xvierd/neck-cli/internal/ports"
)

// View implements the ports.RoutineView interface using Bubbletea.
//
// Update and ShowError only store the latest value and wake a forwarder
// goroutine, so callers never wait on the terminal.
type View struct {
	theme *config.ThemeConfig

	mu          sync.Mutex
	program     *tea.Program
	cancel      context.CancelFunc
	cmdCallback func(ports.Command)
	pendingSnap *domain.Snapshot
	pendingErr  error
	wake        chan struct{}
}

// Ensure View implements ports.RoutineView.
var _ ports.RoutineView = (*View)(nil)

// NewView creates a new TUI routine view.
func NewView(theme *config.ThemeConfig) *View {
	return &View{
		theme: theme,
		wake:  make(chan struct{}, 1),
	}
}

// Run starts the interface and blocks until the user quits or ctx is done.
func (v *View) Run(ctx context.Context, initial domain.Snapshot) error {
	model := NewModel(initial, v.theme)
	model.SetCommandCallback(v.dispatch)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := tea.NewProgram(model, tea.WithAltScreen())

	v.mu.Lock()
	v.program = program
	v.cancel = cancel
	v.mu.Unlock()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		v.forward(ctx, program)
	}()
	go func() {
		defer wg.Done()
		<-ctx.Done()
		program.Quit()
	}()

	_, err := program.Run()

	cancel()
	wg.Wait()

	v.mu.Lock()
	v.program = nil
	v.cancel = nil
	v.mu.Unlock()

	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// Stop gracefully stops the interface.
func (v *View) Stop() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.cancel != nil {
		v.cancel()
	}
}

// SetCommandCallback sets the function that receives user commands.
// It is called on the Bubbletea goroutine and must not block.
func (v *View) SetCommandCallback(callback func(cmd ports.Command)) {
	v.mu.Lock()
	v.cmdCallback = callback
	v.mu.Unlock()
}

// Update shows a new snapshot. Older undelivered snapshots are dropped.
func (v *View) Update(snapshot domain.Snapshot) {
	v.mu.Lock()
	v.pendingSnap = &snapshot
	v.mu.Unlock()
	v.signal()
}

// ShowError shows err in the footer for a few seconds.
func (v *View) ShowError(err error) {
	if err == nil {
		return
	}
	v.mu.Lock()
	v.pendingErr = err
	v.mu.Unlock()
	v.signal()
}

func (v *View) signal() {
	select {
	case v.wake <- struct{}{}:
	default:
	}
}

func (v *View) dispatch(cmd ports.Command) {
	v.mu.Lock()
	callback := v.cmdCallback
	v.mu.Unlock()
	if callback != nil {
		callback(cmd)
	}
}

// forward delivers pending values to the program until ctx is done.
func (v *View) forward(ctx context.Context, program *tea.Program) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-v.wake:
		}

		v.mu.Lock()
		snap, err := v.pendingSnap, v.pendingErr
		v.pendingSnap, v.pendingErr = nil, nil
		v.mu.Unlock()

		if snap != nil {
			program.Send(snapshotMsg(*snap))
		}
		if err != nil {
			program.Send(errMsg{err: err})
		}
	}
}
