package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Screens narrower than this get the short title instead of the banner.
const wideScreen = 100

var titleBanner = strings.Join([]string{
	"██████╗ ██╗██╗   ██╗███████╗██████╗ ██████╗  █████╗ ██╗██████╗ ",
	"██╔══██╗██║██║   ██║██╔════╝██╔══██╗██╔══██╗██╔══██╗██║██╔══██╗",
	"██████╔╝██║██║   ██║█████╗  ██████╔╝██████╔╝███████║██║██║  ██║",
	"██╔══██╗██║╚██╗ ██╔╝██╔══╝  ██╔══██╗██╔══██╗██╔══██║██║██║  ██║",
	"██║  ██║██║ ╚████╔╝ ███████╗██║  ██║██║  ██║██║  ██║██║██████╔╝",
	"╚═╝  ╚═╝╚═╝  ╚═══╝  ╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝╚═════╝ ",
}, "\n")

var goodGameBanner = strings.Join([]string{
	" ██████╗  ██████╗  ██████╗ ██████╗      ██████╗  █████╗ ███╗   ███╗███████╗██╗",
	"██╔════╝ ██╔═══██╗██╔═══██╗██╔══██╗    ██╔════╝ ██╔══██╗████╗ ████║██╔════╝██║",
	"██║  ███╗██║   ██║██║   ██║██║  ██║    ██║  ███╗███████║██╔████╔██║█████╗  ██║",
	"██║   ██║██║   ██║██║   ██║██║  ██║    ██║   ██║██╔══██║██║╚██╔╝██║██╔══╝  ╚═╝",
	"╚██████╔╝╚██████╔╝╚██████╔╝██████╔╝    ╚██████╔╝██║  ██║██║ ╚═╝ ██║███████╗██╗",
	" ╚═════╝  ╚═════╝  ╚═════╝ ╚═════╝      ╚═════╝ ╚═╝  ╚═╝╚═╝     ╚═╝╚══════╝╚═╝",
}, "\n")

var thanksBanner = strings.Join([]string{
	"████████╗██╗  ██╗ █████╗ ███╗   ██╗██╗  ██╗███████╗",
	"╚══██╔══╝██║  ██║██╔══██╗████╗  ██║██║ ██╔╝██╔════╝",
	"   ██║   ███████║███████║██╔██╗ ██║█████╔╝ ███████╗",
	"   ██║   ██╔══██║██╔══██║██║╚██╗██║██╔═██╗ ╚════██║",
	"   ██║   ██║  ██║██║  ██║██║ ╚████║██║  ██╗███████║██╗",
	"   ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═══╝╚═╝  ╚═╝╚══════╝╚═╝",
}, "\n")

const continuePrompt = "Press any key to continue..."

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("24")).
			Padding(0, 1)

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	scoreStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// pinPrompt lays out body from line 2 and puts the continue prompt two lines
// above the bottom of a height-line screen, indented two columns.
func pinPrompt(body string, height int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(body)

	// Body ends on line 1+h; the prompt goes on line height-2.
	for range max(height-3-lipgloss.Height(body), 1) {
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(promptStyle.Render(continuePrompt))
	return b.String()
}
