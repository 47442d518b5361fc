package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/neck-cli/internal/config"
	"github.com/xvierd/neck-cli/internal/domain"
)

type confirmKeyMap struct {
	Toggle key.Binding
	Choose key.Binding
	Yes    key.Binding
	No     key.Binding
}

func (k confirmKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Choose, k.Yes, k.No}
}

func (k confirmKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newConfirmKeyMap() confirmKeyMap {
	return confirmKeyMap{
		Toggle: key.NewBinding(key.WithKeys("left", "right", "h", "l", "tab"), key.WithHelp("←/→", "choose")),
		Choose: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Yes:    key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "reset")),
		No:     key.NewBinding(key.WithKeys("n", "N", "esc", "q", "ctrl+c"), key.WithHelp("n/esc", "keep")),
	}
}

// resetConfirmModel asks before routine progress is cleared. It lists
// the steps that lose their check mark. The cursor starts on "Keep".
type resetConfirmModel struct {
	snap      domain.Snapshot
	palette   config.Palette
	keys      confirmKeyMap
	help      help.Model
	onReset   bool
	done      bool
	confirmed bool
}

func newResetConfirm(snap domain.Snapshot, palette config.Palette) resetConfirmModel {
	return resetConfirmModel{
		snap:    snap,
		palette: palette,
		keys:    newConfirmKeyMap(),
		help:    help.New(),
	}
}

func (m resetConfirmModel) Init() tea.Cmd { return nil }

func (m resetConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(km, m.keys.Toggle):
		m.onReset = !m.onReset
		return m, nil
	case key.Matches(km, m.keys.Choose):
		m.confirmed = m.onReset
	case key.Matches(km, m.keys.Yes):
		m.confirmed = true
	case key.Matches(km, m.keys.No):
		m.confirmed = false
	default:
		return m, nil
	}
	m.done = true
	return m, tea.Quit
}

func (m resetConfirmModel) View() string {
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color(m.palette.Accent)).Bold(true)
	text := lipgloss.NewStyle().Foreground(lipgloss.Color(m.palette.Text))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(m.palette.Muted))
	doneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.palette.Done))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(accent.Render("  Reset all progress?") + "\n\n")

	if m.snap.CompletedCount == 0 {
		b.WriteString(muted.Render("  Nothing is complete yet.") + "\n")
	} else {
		for _, step := range m.snap.Steps {
			if step.Completed {
				b.WriteString(doneStyle.Render(fmt.Sprintf("  ✓ %s", step.Title)) + "\n")
			}
		}
		b.WriteString("\n")
		b.WriteString(text.Render(fmt.Sprintf("  %d of %d steps will be cleared.", m.snap.CompletedCount, m.snap.Total)) + "\n")
	}
	b.WriteString(muted.Render("  The routine restarts at step 1. Your theme is kept.") + "\n\n")

	keep, reset := "[ Keep ]", "[ Reset ]"
	if m.onReset {
		b.WriteString("  " + muted.Render(keep) + "  " + accent.Render(reset) + "\n\n")
	} else {
		b.WriteString("  " + accent.Render(keep) + "  " + muted.Render(reset) + "\n\n")
	}

	b.WriteString("  " + m.help.View(m.keys) + "\n")
	return b.String()
}

// ConfirmReset shows the reset confirmation for snap and reports whether
// the user chose to clear progress. Anything but an explicit yes keeps it.
func ConfirmReset(snap domain.Snapshot, palette config.Palette) (bool, error) {
	result, err := tea.NewProgram(newResetConfirm(snap, palette)).Run()
	if err != nil {
		return false, fmt.Errorf("failed to run confirmation: %w", err)
	}
	final := result.(resetConfirmModel)
	return final.done && final.confirmed, nil
}
