// riverraid is a River Raid-style game for the terminal.
//
// Usage:
//
//	riverraid                - Play (same as "riverraid play")
//	riverraid play           - Play a run
//	riverraid sim            - Run the simulation headless and print the last frame
//	riverraid config         - Print the default config file
//	riverraid themes         - List the available themes
//
// Global flags:
//
//	--seed <value>      - RNG seed for a reproducible river (0 = time based)
//	--config <path>     - Config file (YAML, or TOML with a .toml extension)
//	--theme <name>      - Glyph and colour theme
//	--god               - Survive every crash (debug aid)
//	--sound             - Play sound cues
//	--log-file <path>   - Log file (default: ~/.riverraid/riverraid.log)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagTheme    string
	flagGod      bool
	flagSound    bool
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "riverraid",
	Short: "River Raid - fly down the river in your terminal",
	Long: `River Raid is a terminal game: keep your plane over the water while the
river scrolls toward you, shoot enemies and fly over fuel tanks before
the gas runs out.

Available commands:
  play     - Play a run (default)
  sim      - Headless simulation for a given seed
  config   - Print the default config
  themes   - List glyph and colour themes

Examples:
  riverraid
  riverraid --seed 42 --theme unicode
  riverraid sim --seed 42 --ticks 500 --autopilot
  riverraid config --format toml > ~/.riverraid/config.toml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Theme name (see 'riverraid themes')")
	rootCmd.PersistentFlags().BoolVar(&flagGod, "god", false, "Revive the player after every crash")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Enable sound cues")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(themesCmd)
}
