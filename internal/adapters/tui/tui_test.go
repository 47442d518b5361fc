package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/neck-cli/internal/catalog"
	"github.com/xvierd/neck-cli/internal/config"
	"github.com/xvierd/neck-cli/internal/domain"
	"github.com/xvierd/neck-cli/internal/modes"
	"github.com/xvierd/neck-cli/internal/ports"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func pressKey(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// snapshotAt builds a frame of the built-in routine with index i active.
func snapshotAt(i int, completed ...string) domain.Snapshot {
	routine := catalog.Default()
	done := map[string]bool{}
	for _, id := range completed {
		done[id] = true
	}

	var steps []domain.StepView
	for j, ex := range routine.Exercises() {
		steps = append(steps, domain.StepView{
			Index:     j,
			ID:        ex.ID,
			Title:     ex.Title,
			Category:  ex.Category,
			Completed: done[ex.ID],
			Active:    j == i,
		})
	}
	active, _ := routine.At(i)
	return domain.Snapshot{
		Steps:          steps,
		ActiveIndex:    i,
		Active:         active,
		TargetSummary:  modes.ForMode(active.Mode).TargetSummary(active.Targets),
		Theme:          domain.ThemeDark,
		CompletedCount: len(done),
		Total:          routine.Len(),
	}
}

// commandTracker records which commands were sent via the command callback.
func commandTracker() (func(ports.Command), *[]ports.Command) {
	var cmds []ports.Command
	return func(cmd ports.Command) {
		cmds = append(cmds, cmd)
	}, &cmds
}

func newTestModel(snap domain.Snapshot) (Model, *[]ports.Command) {
	m := NewModel(snap, nil)
	cb, cmds := commandTracker()
	m.SetCommandCallback(cb)
	m.width = 120
	m.height = 40
	return m, cmds
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		result, _ := m.Update(pressKey(k))
		m = result.(Model)
	}
	return m
}

// ---------------------------------------------------------------------------
// Key dispatch
// ---------------------------------------------------------------------------

func TestModel_KeysSendCommands(t *testing.T) {
	tests := []struct {
		key  string
		want ports.CommandType
	}{
		{"s", ports.CmdStart},
		{"space", ports.CmdStart},
		{"p", ports.CmdPause},
		{"r", ports.CmdReset},
		{"+", ports.CmdRepInc},
		{"=", ports.CmdRepInc},
		{"-", ports.CmdRepDec},
		{"]", ports.CmdSetInc},
		{"[", ports.CmdSetDec},
		{"left", ports.CmdPrev},
		{"h", ports.CmdPrev},
		{"right", ports.CmdNext},
		{"l", ports.CmdNext},
		{"c", ports.CmdComplete},
		{"t", ports.CmdToggleTheme},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m, cmds := newTestModel(snapshotAt(0))
			press(m, tt.key)
			if len(*cmds) != 1 || (*cmds)[0].Type != tt.want {
				t.Errorf("key %q sent %v, want [%s]", tt.key, *cmds, tt.want)
			}
		})
	}
}

func TestModel_CursorAndSelect(t *testing.T) {
	m, cmds := newTestModel(snapshotAt(0))

	m = press(m, "down", "j", "j", "k")
	if m.cursor != 2 {
		t.Fatalf("cursor = %d, want 2", m.cursor)
	}
	if len(*cmds) != 0 {
		t.Errorf("moving the cursor should not send commands, got %v", *cmds)
	}

	press(m, "enter")
	if len(*cmds) != 1 || (*cmds)[0] != (ports.Command{Type: ports.CmdSelect, Index: 2}) {
		t.Errorf("enter sent %v, want select 2", *cmds)
	}
}

func TestModel_CursorStaysInBounds(t *testing.T) {
	m, _ := newTestModel(snapshotAt(0))
	m = press(m, "up", "k")
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}

	m, _ = newTestModel(snapshotAt(8))
	m = press(m, "down")
	if m.cursor != 8 {
		t.Errorf("cursor = %d, want 8", m.cursor)
	}
}

func TestModel_ResetAllNeedsTwoPresses(t *testing.T) {
	m, cmds := newTestModel(snapshotAt(3))

	m = press(m, "R")
	if !m.confirmReset {
		t.Fatal("first R should ask for confirmation")
	}
	if len(*cmds) != 0 {
		t.Fatalf("first R sent %v", *cmds)
	}
	if !strings.Contains(m.View(), "Press R again") {
		t.Error("view should show the reset confirmation")
	}

	m = press(m, "R")
	if m.confirmReset {
		t.Error("confirmation should clear after the second R")
	}
	if len(*cmds) != 1 || (*cmds)[0].Type != ports.CmdResetProgress {
		t.Errorf("second R sent %v, want reset-progress", *cmds)
	}
}

func TestModel_ResetAllCancelledByOtherKey(t *testing.T) {
	m, cmds := newTestModel(snapshotAt(3))

	m = press(m, "R", "esc", "R")
	if len(*cmds) != 0 {
		t.Errorf("interrupted confirmation sent %v", *cmds)
	}
	if !m.confirmReset {
		t.Error("R after another key should start a new confirmation")
	}
}

func TestModel_Quit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			m, _ := newTestModel(snapshotAt(0))
			_, cmd := m.Update(pressKey(k))
			if cmd == nil {
				t.Fatal("quit key returned no command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("quit key should return tea.Quit")
			}
		})
	}
}

func TestModel_HelpToggle(t *testing.T) {
	m, cmds := newTestModel(snapshotAt(0))
	m = press(m, "?")
	if !m.help.ShowAll {
		t.Error("? should expand help")
	}
	if !strings.Contains(m.View(), "reset progress") {
		t.Error("full help should list reset progress")
	}
	m = press(m, "?")
	if m.help.ShowAll {
		t.Error("? again should collapse help")
	}
	if len(*cmds) != 0 {
		t.Errorf("help sent %v", *cmds)
	}
}

// ---------------------------------------------------------------------------
// Messages
// ---------------------------------------------------------------------------

func TestModel_SnapshotMovesCursorOnSwitch(t *testing.T) {
	m, _ := newTestModel(snapshotAt(0))
	m = press(m, "down", "down", "down")

	// Same active exercise: cursor stays where the user put it.
	result, _ := m.Update(snapshotMsg(snapshotAt(0)))
	m = result.(Model)
	if m.cursor != 3 {
		t.Errorf("cursor = %d, want 3", m.cursor)
	}

	result, _ = m.Update(snapshotMsg(snapshotAt(5)))
	m = result.(Model)
	if m.cursor != 5 {
		t.Errorf("cursor = %d, want 5 after switch", m.cursor)
	}
	if m.snap.ActiveIndex != 5 {
		t.Errorf("ActiveIndex = %d, want 5", m.snap.ActiveIndex)
	}
}

func TestModel_ErrorExpires(t *testing.T) {
	m, _ := newTestModel(snapshotAt(0))

	result, cmd := m.Update(errMsg{err: errors.New("disk full")})
	m = result.(Model)
	if cmd == nil {
		t.Fatal("error should schedule its own expiry")
	}
	if !strings.Contains(m.View(), "disk full") {
		t.Error("view should show the error")
	}

	// A newer error keeps the older expiry from clearing it.
	result, _ = m.Update(errMsg{err: errors.New("still full")})
	m = result.(Model)
	result, _ = m.Update(clearErrMsg{seq: 1})
	m = result.(Model)
	if m.lastError == nil {
		t.Fatal("stale expiry cleared a newer error")
	}

	result, _ = m.Update(clearErrMsg{seq: 2})
	m = result.(Model)
	if m.lastError != nil {
		t.Error("matching expiry should clear the error")
	}
}

func TestModel_WindowSize(t *testing.T) {
	m := NewModel(snapshotAt(0), nil)
	if m.View() != "Loading..." {
		t.Error("view before the first size message should be Loading...")
	}
	result, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = result.(Model)
	if m.width != 100 || m.height != 30 {
		t.Errorf("size = %dx%d", m.width, m.height)
	}
}

// ---------------------------------------------------------------------------
// Rendering
// ---------------------------------------------------------------------------

func TestModel_ViewShowsDetail(t *testing.T) {
	m, _ := newTestModel(snapshotAt(1, "posture-breath"))
	view := m.View()

	ex := m.snap.Active
	for _, want := range []string{ex.Title, "1. ", m.snap.TargetSummary, "✓", "1/9 complete"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if ex.Caution != "" && !strings.Contains(view, "⚠") {
		t.Error("view should flag the caution")
	}
}

func TestModel_ViewRepsSetsHasNoClock(t *testing.T) {
	idx := -1
	for i, ex := range catalog.Default().Exercises() {
		if ex.Mode == domain.ModeRepsSets {
			idx = i
			break
		}
	}
	if idx < 0 {
		t.Skip("no manual-count exercise in the routine")
	}

	m, _ := newTestModel(snapshotAt(idx))
	if strings.Contains(m.View(), "▀▀▀") {
		t.Error("manual-count exercise should not draw the block clock")
	}
	if !strings.Contains(m.View(), "Reps 0   Sets 0") {
		t.Error("manual-count exercise should show both counters")
	}
}

func TestModel_ViewNarrowTerminal(t *testing.T) {
	m, _ := newTestModel(snapshotAt(0))
	m.width = 50
	if view := m.View(); !strings.Contains(view, m.snap.Active.Title) {
		t.Error("narrow view should still show the active exercise")
	}
}

func TestModel_ViewAllComplete(t *testing.T) {
	var ids []string
	for _, ex := range catalog.Default().Exercises() {
		ids = append(ids, ex.ID)
	}
	m, _ := newTestModel(snapshotAt(8, ids...))
	if !strings.Contains(m.View(), "routine complete") {
		t.Error("view should celebrate a finished routine")
	}
}

func TestModel_StatusText(t *testing.T) {
	hold := modes.ForMode(domain.ModeHoldReps)
	timer := modes.ForMode(domain.ModeTimer)

	tests := []struct {
		name string
		snap domain.Snapshot
		b    modes.Behavior
		want string
	}{
		{"holding", domain.Snapshot{Running: true, HoldLoopActive: true}, hold, "holding"},
		{"gap", domain.Snapshot{HoldLoopActive: true}, hold, "next hold"},
		{"paused", domain.Snapshot{Remaining: time.Minute}, timer, "paused"},
		{"idle", domain.Snapshot{}, timer, timer.StartHint()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Model{snap: tt.snap}
			if got := m.statusText(tt.b); !strings.Contains(got, tt.want) {
				t.Errorf("statusText() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestRenderBigTime(t *testing.T) {
	narrow := renderBigTime("02:00", lipgloss.Color("#fff"), 20)
	if strings.Contains(narrow, "\n") {
		t.Error("narrow clock should be one line")
	}

	wide := renderBigTime("02:00", lipgloss.Color("#fff"), 80)
	if lines := strings.Split(wide, "\n"); len(lines) != 3 {
		t.Errorf("wide clock has %d lines, want 3", len(lines))
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"Chin tucks", 20, "Chin tucks"},
		{"Upper trapezius stretch", 10, "Upper tra…"},
		{"abc", 1, "abc"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestResolveTheme(t *testing.T) {
	defaults := config.DefaultThemeConfig()
	if resolveTheme(nil) != defaults {
		t.Error("nil theme should resolve to defaults")
	}

	custom := config.ThemeConfig{Light: config.Palette{Accent: "#123456"}}
	got := resolveTheme(&custom)
	if got.Light.Accent != "#123456" {
		t.Errorf("custom accent lost: %q", got.Light.Accent)
	}
	if got.Light.Text != defaults.Light.Text || got.Dark != defaults.Dark {
		t.Error("empty colors should fall back to defaults")
	}
}

// ---------------------------------------------------------------------------
// View adapter
// ---------------------------------------------------------------------------

func TestView_UpdateKeepsLatest(t *testing.T) {
	v := NewView(nil)

	for i := 0; i < 5; i++ {
		v.Update(snapshotAt(i))
	}
	v.ShowError(nil)

	if v.pendingSnap == nil || v.pendingSnap.ActiveIndex != 4 {
		t.Errorf("pending snapshot = %+v, want index 4", v.pendingSnap)
	}
	if v.pendingErr != nil {
		t.Error("nil error should be ignored")
	}
	if len(v.wake) != 1 {
		t.Errorf("wake has %d signals, want 1", len(v.wake))
	}
}

func TestView_DispatchUsesCallback(t *testing.T) {
	v := NewView(nil)
	v.dispatch(ports.Command{Type: ports.CmdStart})

	cb, cmds := commandTracker()
	v.SetCommandCallback(cb)
	v.dispatch(ports.Command{Type: ports.CmdNext})

	if len(*cmds) != 1 || (*cmds)[0].Type != ports.CmdNext {
		t.Errorf("dispatched %v, want [next]", *cmds)
	}
	v.Stop()
}

// ---------------------------------------------------------------------------
// Reset confirmation
// ---------------------------------------------------------------------------

func confirmKeys(m resetConfirmModel, keys ...string) (resetConfirmModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(pressKey(k))
		m = next.(resetConfirmModel)
	}
	return m, cmd
}

func TestResetConfirm_ListsCompletedSteps(t *testing.T) {
	snap := snapshotAt(3, "posture-breath", "levator-stretch-left")
	view := newResetConfirm(snap, config.DefaultThemeConfig().Dark).View()

	for _, want := range []string{
		"Reset all progress?",
		"✓ Reset posture & breath",
		"✓ Levator scapulae stretch (left side)",
		"2 of 9 steps will be cleared.",
		"Your theme is kept.",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Chin tucks") {
		t.Error("steps that are not complete should not be listed")
	}
}

func TestResetConfirm_NothingComplete(t *testing.T) {
	view := newResetConfirm(snapshotAt(0), config.DefaultThemeConfig().Dark).View()
	if !strings.Contains(view, "Nothing is complete yet.") {
		t.Errorf("view = %q", view)
	}
	if strings.Contains(view, "✓") {
		t.Error("no step should carry a check mark")
	}
}

func TestResetConfirm_Choices(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want bool
	}{
		{"enter keeps by default", []string{"enter"}, false},
		{"move to reset then enter", []string{"right", "enter"}, true},
		{"move twice returns to keep", []string{"l", "h", "enter"}, false},
		{"y resets", []string{"y"}, true},
		{"n keeps", []string{"right", "n"}, false},
		{"esc keeps", []string{"right", "esc"}, false},
		{"ctrl+c keeps", []string{"ctrl+c"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newResetConfirm(snapshotAt(0, "chin-tucks"), config.DefaultThemeConfig().Dark)
			m, cmd := confirmKeys(m, tt.keys...)
			if !m.done {
				t.Fatal("model should be done")
			}
			if cmd == nil {
				t.Fatal("expected a quit command")
			}
			if m.confirmed != tt.want {
				t.Errorf("confirmed = %v, want %v", m.confirmed, tt.want)
			}
		})
	}
}

func TestResetConfirm_OtherKeysIgnored(t *testing.T) {
	m := newResetConfirm(snapshotAt(0), config.DefaultThemeConfig().Dark)
	m, cmd := confirmKeys(m, "x", "R")
	if m.done || cmd != nil {
		t.Error("unbound keys should not end the confirmation")
	}
}
