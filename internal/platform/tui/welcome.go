package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// WelcomeModel is the Bubble Tea model for the title screen.
// Any key continues to the game; Ctrl+C aborts.
type WelcomeModel struct {
	width    int
	height   int
	keys     KeyMap
	help     help.Model
	done     bool
	quitting bool
}

// NewWelcomeModel creates the title screen for a terminal of the given size.
func NewWelcomeModel(width, height int) WelcomeModel {
	h := help.New()
	h.ShowAll = true
	return WelcomeModel{
		width:  width,
		height: height,
		keys:   DefaultKeyMap(),
		help:   h,
	}
}

// Init implements tea.Model.
func (m WelcomeModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m WelcomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
		} else {
			m.done = true
		}
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// View implements tea.Model.
func (m WelcomeModel) View() string {
	if m.done || m.quitting {
		return ""
	}

	var b strings.Builder
	if m.width > wideScreen {
		b.WriteString(bannerStyle.Render(titleBanner))
	} else {
		b.WriteString(titleStyle.Render("River Raid"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return pinPrompt(b.String(), m.height)
}

// Continue reports whether the player chose to start the game.
func (m WelcomeModel) Continue() bool {
	return m.done
}

// RunWelcome shows the title screen until a key is pressed.
// Returns false if the player aborted with Ctrl+C.
func RunWelcome(width, height int) (bool, error) {
	p := tea.NewProgram(
		NewWelcomeModel(width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(WelcomeModel)
	if !ok {
		return false, nil
	}
	return m.Continue(), nil
}
