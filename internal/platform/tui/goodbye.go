package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-riverraid/internal/games/riverraid"
)

// CauseMessage describes how the run ended.
func CauseMessage(status riverraid.PlayerStatus) string {
	switch status.State {
	case riverraid.PlayerQuit:
		return "You quit."
	case riverraid.PlayerDead:
		switch status.Cause {
		case riverraid.CauseGround:
			return "You crashed in the ground."
		case riverraid.CauseEnemy:
			return "An enemy killed you."
		case riverraid.CauseFuel:
			return "You ran out of fuel."
		}
	}
	return ""
}

// GoodbyeModel is the Bubble Tea model for the end-of-game screen.
type GoodbyeModel struct {
	width  int
	height int
	status riverraid.PlayerStatus
	score  uint16
	done   bool
}

// NewGoodbyeModel creates the end screen for a finished run.
func NewGoodbyeModel(width, height int, status riverraid.PlayerStatus, score uint16) GoodbyeModel {
	return GoodbyeModel{
		width:  width,
		height: height,
		status: status,
		score:  score,
	}
}

// Init implements tea.Model.
func (m GoodbyeModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m GoodbyeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.done = true
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View implements tea.Model.
func (m GoodbyeModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	if m.width > lipgloss.Width(goodGameBanner) {
		b.WriteString(bannerStyle.Render(goodGameBanner))
		b.WriteString("\n\n")
		b.WriteString(bannerStyle.Render(thanksBanner))
	} else {
		b.WriteString(titleStyle.Render("Good game! Thanks."))
	}
	b.WriteString("\n\n")

	if msg := CauseMessage(m.status); msg != "" {
		b.WriteString("  ")
		b.WriteString(messageStyle.Render(msg))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(scoreStyle.Render(fmt.Sprintf("Final score: %d", m.score)))

	return pinPrompt(b.String(), m.height)
}

// RunGoodbye shows the end screen until a key is pressed.
func RunGoodbye(width, height int, status riverraid.PlayerStatus, score uint16) error {
	p := tea.NewProgram(
		NewGoodbyeModel(width, height, status, score),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
