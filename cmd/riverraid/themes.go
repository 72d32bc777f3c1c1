package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-riverraid/internal/core"
	"github.com/vovakirdan/tui-riverraid/internal/games/riverraid"
	"github.com/vovakirdan/tui-riverraid/internal/platform/tui"
	"github.com/vovakirdan/tui-riverraid/internal/registry"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List all available themes",
	Long:  `Shows the registered glyph and colour themes with a small preview.`,
	Run:   runThemes,
}

func runThemes(cmd *cobra.Command, args []string) {
	themes := registry.List()

	if len(themes) == 0 {
		fmt.Println("No themes available.")
		return
	}

	fmt.Println("Available themes:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, th := range themes {
		if len(th.Name) > maxNameLen {
			maxNameLen = len(th.Name)
		}
	}

	for _, info := range themes {
		th, err := registry.Get(info.Name)
		if err != nil {
			continue
		}
		fmt.Printf("  %-*s  %s  %s\n", maxNameLen, info.Name, preview(th), info.Description)
	}

	fmt.Println()
	fmt.Println("Run 'riverraid --theme <name>' to play with a theme.")
}

// preview draws one row of every glyph in the theme.
func preview(th riverraid.Theme) string {
	cells := []core.Cell{
		th.Bank, th.Player, th.Enemy, th.EnemyWreck,
		th.Fuel, th.FuelWreck, th.BulletTip, th.Bullet, th.Bank,
	}
	c := core.NewCanvas(len(cells), 1)
	for x, cell := range cells {
		c.SetCell(x, 0, cell)
	}
	return tui.RenderCanvas(c)
}
