package registry

import (
	"github.com/vovakirdan/tui-riverraid/internal/core"
	"github.com/vovakirdan/tui-riverraid/internal/games/riverraid"
)

func init() {
	Register("classic", "Plain ASCII, terminal colors", riverraid.ClassicTheme)
	Register("color", "ASCII glyphs with a green river bank and colored boats", colorTheme)
	Register("unicode", "Block and symbol glyphs, needs a UTF-8 terminal", unicodeTheme)
}

func colorTheme() riverraid.Theme {
	th := riverraid.ClassicTheme()
	th.Bank.Color = core.ColorGreen
	th.Player.Color = core.ColorBrightYellow
	th.Enemy.Color = core.ColorBrightRed
	th.EnemyWreck.Color = core.ColorGray
	th.Fuel.Color = core.ColorBrightBlue
	th.FuelWreck.Color = core.ColorGray
	th.Bullet.Color = core.ColorWhite
	th.BulletTip.Color = core.ColorOrange
	th.HUD = core.ColorWhite
	th.Pause = core.ColorBrightYellow
	return th
}

func unicodeTheme() riverraid.Theme {
	th := colorTheme()
	th.Bank.Rune = '▓'
	th.Player.Rune = '▲'
	th.Enemy.Rune = '◆'
	th.EnemyWreck.Rune = '×'
	th.Fuel.Rune = '¤'
	th.FuelWreck.Rune = '·'
	th.Bullet.Rune = '│'
	th.BulletTip.Rune = '╵'
	return th
}
