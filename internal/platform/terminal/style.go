package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-riverraid/internal/core"
)

// palette maps game colors to the 16-color ANSI set.
var palette = map[core.Color]tcell.Color{
	core.ColorRed:          tcell.ColorMaroon,
	core.ColorGreen:        tcell.ColorGreen,
	core.ColorYellow:       tcell.ColorOlive,
	core.ColorBlue:         tcell.ColorNavy,
	core.ColorMagenta:      tcell.ColorPurple,
	core.ColorCyan:         tcell.ColorTeal,
	core.ColorWhite:        tcell.ColorSilver,
	core.ColorBrightRed:    tcell.ColorRed,
	core.ColorBrightGreen:  tcell.ColorLime,
	core.ColorBrightYellow: tcell.ColorYellow,
	core.ColorBrightBlue:   tcell.ColorBlue,
	core.ColorOrange:       tcell.ColorOrange,
	core.ColorGray:         tcell.ColorGray,
}

// Style returns the tcell style for a game color.
// ColorDefault and unknown colors use the terminal's default foreground.
func Style(c core.Color) tcell.Style {
	fg, ok := palette[c]
	if !ok {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(fg)
}
