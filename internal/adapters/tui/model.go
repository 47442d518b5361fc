// Package tui provides the terminal user interface implementation
// using the Bubbletea framework.
package tui

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/neck-cli/internal/config"
	"github.com/xvierd/neck-cli/internal/domain"
	"github.com/xvierd/neck-cli/internal/modes"
	"github.com/xvierd/neck-cli/internal/ports"
)

// errorTTL is how long an error stays in the footer.
const errorTTL = 4 * time.Second

// listWidth is the width of the step list column.
const listWidth = 36

// resolveTheme fills any empty color in either palette with the default.
// If theme is nil, returns the full default theme.
func resolveTheme(theme *config.ThemeConfig) config.ThemeConfig {
	defaults := config.DefaultThemeConfig()
	if theme == nil {
		return defaults
	}
	resolved := *theme
	fillPalette(&resolved.Dark, defaults.Dark)
	fillPalette(&resolved.Light, defaults.Light)
	return resolved
}

func fillPalette(p *config.Palette, defaults config.Palette) {
	rv := reflect.ValueOf(p).Elem()
	dv := reflect.ValueOf(defaults)
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.String && f.String() == "" {
			f.SetString(dv.Field(i).String())
		}
	}
}

// snapshotMsg carries a new frame from the routine service.
type snapshotMsg domain.Snapshot

// errMsg carries an error to show in the footer.
type errMsg struct{ err error }

// clearErrMsg expires the error with the matching sequence number.
type clearErrMsg struct{ seq int }

type keyMap struct {
	Start    key.Binding
	Pause    key.Binding
	Reset    key.Binding
	RepInc   key.Binding
	RepDec   key.Binding
	SetInc   key.Binding
	SetDec   key.Binding
	Prev     key.Binding
	Next     key.Binding
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Complete key.Binding
	ResetAll key.Binding
	Theme    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Start:    key.NewBinding(key.WithKeys("s", " "), key.WithHelp("s/space", "start")),
		Pause:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset timer")),
		RepInc:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "rep")),
		RepDec:   key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "rep")),
		SetInc:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "set")),
		SetDec:   key.NewBinding(key.WithKeys("["), key.WithHelp("[", "set")),
		Prev:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev")),
		Next:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Complete: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "complete")),
		ResetAll: key.NewBinding(key.WithKeys("R"), key.WithHelp("R R", "reset progress")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Pause, k.Reset, k.Next, k.Complete, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Pause, k.Reset},
		{k.RepInc, k.RepDec, k.SetInc, k.SetDec},
		{k.Prev, k.Next, k.Up, k.Down, k.Select},
		{k.Complete, k.ResetAll, k.Theme, k.Help, k.Quit},
	}
}

// Model represents the TUI state.
type Model struct {
	snap            domain.Snapshot
	cursor          int
	keys            keyMap
	help            help.Model
	theme           config.ThemeConfig
	width           int
	height          int
	confirmReset    bool
	lastError       error
	errSeq          int
	commandCallback func(ports.Command)
}

// NewModel creates a new TUI model.
func NewModel(initial domain.Snapshot, theme *config.ThemeConfig) Model {
	return Model{
		snap:   initial,
		cursor: initial.ActiveIndex,
		keys:   defaultKeyMap(),
		help:   help.New(),
		theme:  resolveTheme(theme),
	}
}

// SetCommandCallback sets the function that receives user commands.
func (m *Model) SetCommandCallback(cb func(ports.Command)) {
	m.commandCallback = cb
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) send(t ports.CommandType) {
	if m.commandCallback != nil {
		m.commandCallback(ports.Command{Type: t})
	}
}

func (m Model) palette() config.Palette {
	return m.theme.Palette(m.snap.Theme)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case snapshotMsg:
		if msg.ActiveIndex != m.snap.ActiveIndex {
			m.cursor = msg.ActiveIndex
		}
		m.snap = domain.Snapshot(msg)
		if m.cursor >= len(m.snap.Steps) {
			m.cursor = m.snap.ActiveIndex
		}

	case errMsg:
		m.lastError = msg.err
		m.errSeq++
		seq := m.errSeq
		return m, tea.Tick(errorTTL, func(time.Time) tea.Msg { return clearErrMsg{seq: seq} })

	case clearErrMsg:
		if msg.seq == m.errSeq {
			m.lastError = nil
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	// Reset-all needs two presses in a row.
	if key.Matches(msg, m.keys.ResetAll) {
		if m.confirmReset {
			m.confirmReset = false
			m.send(ports.CmdResetProgress)
		} else {
			m.confirmReset = true
		}
		return m, nil
	}
	m.confirmReset = false

	switch {
	case key.Matches(msg, m.keys.Start):
		m.send(ports.CmdStart)
	case key.Matches(msg, m.keys.Pause):
		m.send(ports.CmdPause)
	case key.Matches(msg, m.keys.Reset):
		m.send(ports.CmdReset)
	case key.Matches(msg, m.keys.RepInc):
		m.send(ports.CmdRepInc)
	case key.Matches(msg, m.keys.RepDec):
		m.send(ports.CmdRepDec)
	case key.Matches(msg, m.keys.SetInc):
		m.send(ports.CmdSetInc)
	case key.Matches(msg, m.keys.SetDec):
		m.send(ports.CmdSetDec)
	case key.Matches(msg, m.keys.Prev):
		m.send(ports.CmdPrev)
	case key.Matches(msg, m.keys.Next):
		m.send(ports.CmdNext)
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.snap.Steps)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		if m.commandCallback != nil {
			m.commandCallback(ports.Command{Type: ports.CmdSelect, Index: m.cursor})
		}
	case key.Matches(msg, m.keys.Complete):
		m.send(ports.CmdComplete)
	case key.Matches(msg, m.keys.Theme):
		m.send(ports.CmdToggleTheme)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	p := m.palette()
	sections := []string{m.viewHeader(p)}

	detailWidth := m.width - listWidth - 6
	if detailWidth < 30 {
		sections = append(sections, m.viewDetail(p, m.width-2))
	} else {
		columns := lipgloss.JoinHorizontal(lipgloss.Top,
			m.viewSteps(p),
			lipgloss.NewStyle().Width(2).Render(""),
			m.viewDetail(p, detailWidth),
		)
		sections = append(sections, columns)
	}

	sections = append(sections, "", m.viewTimer(p), "", m.viewFooter(p))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, content)
}

func (m Model) viewHeader(p config.Palette) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Accent))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted))

	progressText := fmt.Sprintf("%d/%d complete", m.snap.CompletedCount, m.snap.Total)
	if m.snap.AllComplete() {
		progressText = lipgloss.NewStyle().Foreground(lipgloss.Color(p.Done)).Render("✓ routine complete")
	} else {
		progressText = mutedStyle.Render(progressText)
	}
	return lipgloss.NewStyle().MarginBottom(1).Render(
		titleStyle.Render("Neck routine") + mutedStyle.Render("  ·  ") + progressText)
}

func (m Model) viewSteps(p config.Palette) string {
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Accent))
	textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text))
	doneStyle := lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color(p.Done))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted))

	var rows []string
	for _, step := range m.snap.Steps {
		pointer := "  "
		if step.Index == m.cursor {
			pointer = activeStyle.Render("▸ ")
		}

		title := truncate(step.Title, listWidth-8)
		line := fmt.Sprintf("%2s  %s", step.Marker(), title)
		switch {
		case step.Active:
			line = activeStyle.Render(line)
		case step.Completed:
			line = doneStyle.Render(line)
		default:
			line = textStyle.Render(line)
		}
		rows = append(rows, pointer+line)
		rows = append(rows, "      "+mutedStyle.Render(truncate(step.Category, listWidth-8)))
	}

	return lipgloss.NewStyle().
		Width(listWidth).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.Border)).
		Padding(0, 1).
		Render(strings.Join(rows, "\n"))
}

func (m Model) viewDetail(p config.Palette, width int) string {
	ex := m.snap.Active
	inner := width - 4
	if inner < 10 {
		inner = 10
	}
	wrap := lipgloss.NewStyle().Width(inner)

	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Accent))
	textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text))
	cautionStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Caution))

	lines := []string{
		mutedStyle.Render(ex.Category),
		titleStyle.Render(ex.Title),
	}
	if ex.Note != "" {
		lines = append(lines, wrap.Inherit(mutedStyle).Italic(true).Render(ex.Note))
	}
	lines = append(lines, "")
	for i, step := range ex.Instructions {
		lines = append(lines, wrap.Inherit(textStyle).Render(fmt.Sprintf("%d. %s", i+1, step)))
	}
	lines = append(lines, "", textStyle.Bold(true).Render(m.snap.TargetSummary))
	if ex.Caution != "" {
		lines = append(lines, wrap.Inherit(cautionStyle).Render("⚠ "+ex.Caution))
	}

	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.Border)).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

func (m Model) viewTimer(p config.Palette) string {
	b := modes.ForMode(m.snap.Active.Mode)
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted))
	textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text))

	var sections []string
	if b.UsesTimer() {
		color := lipgloss.Color(p.Accent)
		if !m.snap.Running {
			color = lipgloss.Color(p.Muted)
		}
		sections = append(sections, renderBigTime(m.snap.RemainingText(), color, m.width))

		bar := progress.New(progress.WithSolidFill(p.Accent), progress.WithoutPercentage())
		bar.Width = min(m.width-4, 60)
		sections = append(sections, bar.ViewAs(m.snap.SegmentProgress()))
	}

	counters := fmt.Sprintf("Reps %d   Sets %d", m.snap.RepsDone, m.snap.SetsDone)
	if b.Loops() {
		target := b.LoopTarget(m.snap.Active.Targets)
		done := m.snap.RepsDone
		if b.Counter() == domain.CounterSets {
			done = m.snap.SetsDone
		}
		counters = fmt.Sprintf("%s %d / %d", b.Counter(), done, target)
	}
	sections = append(sections, textStyle.Render(counters)+"   "+mutedStyle.Render(m.statusText(b)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// statusText describes what the countdown is doing.
func (m Model) statusText(b modes.Behavior) string {
	switch {
	case m.snap.Running && m.snap.HoldLoopActive:
		return "● holding"
	case m.snap.Running:
		return "● running"
	case m.snap.HoldLoopActive:
		return "… next hold"
	case !b.UsesTimer():
		return "count as you go"
	case m.snap.Remaining > 0:
		return "⏸ paused"
	default:
		return "s: " + b.StartHint()
	}
}

func (m Model) viewFooter(p config.Palette) string {
	var lines []string
	if m.confirmReset {
		lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Caution)).
			Render("Reset all progress? Press R again to confirm."))
	}
	if m.lastError != nil {
		lines = append(lines, lipgloss.NewStyle().Foreground(lipgloss.Color(p.Caution)).
			Render("Error: "+m.lastError.Error()))
	}
	lines = append(lines, m.help.View(m.keys))
	return strings.Join(lines, "\n")
}

// truncate shortens s to at most n cells, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	if lipgloss.Width(s) <= n || n < 2 {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r)) > n-1 {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
