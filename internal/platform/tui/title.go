package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/joshpbradley/missile-command/internal/core"
)

// TitleChoice is an entry of the title screen.
type TitleChoice int

const (
	ChoiceNone TitleChoice = iota
	ChoicePlay
	ChoiceControls
	ChoiceQuit
)

// String returns the menu label of the choice.
func (c TitleChoice) String() string {
	switch c {
	case ChoicePlay:
		return "Play"
	case ChoiceControls:
		return "Controls"
	case ChoiceQuit:
		return "Quit"
	default:
		return ""
	}
}

var titleBanner = []string{
	`__  __ ___ ___ ___ ___ _    ___`,
	`|  \/  |_ _/ __/ __|_ _| |  | __|`,
	`| |\/| || |\__ \__ \| || |__| _|`,
	`|_|  |_|___|___/___/___|____|___|`,
	``,
	`C  O  M  M  A  N  D`,
}

var (
	bannerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

// TitleModel is the Bubble Tea model for the title screen.
type TitleModel struct {
	items    []TitleChoice
	cursor   int
	config   core.RuntimeConfig
	help     help.Model
	keys     MenuKeyMap
	selected TitleChoice
}

// NewTitleModel creates the title screen.
func NewTitleModel(cfg core.RuntimeConfig) TitleModel {
	return TitleModel{
		items:  []TitleChoice{ChoicePlay, ChoiceControls, ChoiceQuit},
		config: cfg,
		help:   help.New(),
		keys:   DefaultMenuKeyMap(),
	}
}

// Init initializes the title model.
func (m TitleModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the title screen.
func (m TitleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m TitleModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
		m.selected = ChoiceQuit
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.selected = m.items[m.cursor]
		return m, tea.Quit
	}
	return m, nil
}

// View renders the title screen.
func (m TitleModel) View() string {
	if m.selected != ChoiceNone {
		return ""
	}

	width := m.config.ScreenW
	var b strings.Builder
	b.WriteString("\n")
	for _, line := range titleBanner {
		b.WriteString(bannerStyle.Render(centerText(line, width)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, item := range m.items {
		line := "  " + item.String()
		if i == m.cursor {
			line = selectedStyle.Render(centerText("> "+item.String(), width))
		} else {
			line = centerText(line, width)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(centerText(m.help.View(m.keys), width)))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen entry, or ChoiceNone.
func (m TitleModel) Selected() TitleChoice {
	return m.selected
}

// Config returns the runtime config, updated by resize messages.
func (m TitleModel) Config() core.RuntimeConfig {
	return m.config
}

// TitleResult holds the outcome of the title screen.
type TitleResult struct {
	Choice TitleChoice
	Config core.RuntimeConfig
}

// RunTitle shows the title screen until the player picks an entry.
func RunTitle(cfg core.RuntimeConfig) (TitleResult, error) {
	p := tea.NewProgram(NewTitleModel(cfg), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return TitleResult{Config: cfg}, fmt.Errorf("run title screen: %w", err)
	}
	m, ok := final.(TitleModel)
	if !ok || m.Selected() == ChoiceNone {
		return TitleResult{Choice: ChoiceQuit, Config: cfg}, nil
	}
	return TitleResult{Choice: m.Selected(), Config: m.Config()}, nil
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}
