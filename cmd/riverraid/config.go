package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-riverraid/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config",
	Long: `Print the built-in config file. Save it to ~/.riverraid/config.yaml
(or .toml with --format toml) and edit it to change the defaults.

Examples:
  riverraid config > ~/.riverraid/config.yaml
  riverraid config --format toml > ~/.riverraid/config.toml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(cmd *cobra.Command, args []string) {
	format, err := config.ParseFormat(flagFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The YAML default is printed as embedded, comments included
	if format == config.FormatYAML {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	if err := config.Encode(os.Stdout, config.Default(), format); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
