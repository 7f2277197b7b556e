package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/joshpbradley/missile-command/internal/config"
	"github.com/joshpbradley/missile-command/internal/core"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// ControlRows lists every input and scoring rule for the given configuration.
func ControlRows(cfg config.MissileConfig) []table.Row {
	keys := DefaultKeyMap()
	rows := []table.Row{
		{"Left click", "Launch from the nearest armed base"},
	}
	for _, b := range []key.Binding{keys.Pause, keys.Confirm, keys.Restart, keys.Screenshot, keys.Quit} {
		h := b.Help()
		rows = append(rows, table.Row{h.Key, h.Desc})
	}
	s := cfg.Scoring
	rows = append(rows,
		table.Row{"Interception", fmt.Sprintf("%d points", s.Interception)},
		table.Row{"Base survived", fmt.Sprintf("%d points", s.BaseSurvived)},
		table.Row{"Missile remaining", fmt.Sprintf("%d points", s.AmmoRemaining)},
		table.Row{"Game over", "Every city destroyed"},
	)
	return rows
}

// NewControlsTable builds the controls table sized for the given width.
func NewControlsTable(cfg config.MissileConfig, width, height int) table.Model {
	rows := ControlRows(cfg)
	descWidth := core.Clamp(width-24, 20, 44)
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Input", Width: 18},
			{Title: "Effect", Width: descWidth},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows)+1, max(3, height-6))),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// ControlsModel is the Bubble Tea model for the controls screen.
type ControlsModel struct {
	cfg       config.MissileConfig
	table     table.Model
	help      help.Model
	keys      MenuKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewControlsModel creates a controls screen.
func NewControlsModel(cfg config.MissileConfig, width, height int) ControlsModel {
	return ControlsModel{
		cfg:    cfg,
		table:  NewControlsTable(cfg, width, height),
		help:   help.New(),
		keys:   DefaultMenuKeyMap(),
		width:  width,
		height: height,
	}
}

// Init initializes the controls model.
func (m ControlsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the controls screen.
func (m ControlsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Select):
			m.goingBack = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = NewControlsTable(m.cfg, m.width, m.height)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the controls screen.
func (m ControlsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(centerText("CONTROLS", m.width)))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// RunControls shows the controls screen. goBack is true unless the player quit.
func RunControls(cfg config.MissileConfig, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewControlsModel(cfg, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("run controls: %w", err)
	}
	m, ok := final.(ControlsModel)
	if !ok {
		return false, nil
	}
	return !m.quitting, nil
}
