// flappy is a Flappy Bird clone for the terminal.
//
// Usage:
//
//	flappy              - Play
//	flappy config       - Print the effective game configuration
//	flappy version      - Print version information
//
// Global flags:
//
//	--config <path>     - Game config YAML (default: search ~/.flappy/configs, ./configs, embedded)
//	--log-level <level> - debug, info, warn, error (default: info)
//	--log-file <path>   - Also write logs to a file, and only there while playing
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagLogFile  string

	// Play flags
	flagFPS     int
	flagSeed    int64
	flagAssets  string
	flagJournal string
	flagNoColor bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Guide the bird through the gaps between the pipes.

Controls:
  Space/Up/W/Enter - Flap (start, jump, restart after game over)
  H                - Round history (between rounds)
  Q/Esc/Ctrl+C     - Quit

Examples:
  flappy
  flappy --seed 42
  flappy --fps 30 --log-file flappy.log --log-level debug
  flappy --config ./my-flappy.yaml --assets ./my-assets`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while the game runs")

	rootCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory with bird.yaml, pipe.yaml and font.yaml (default: embedded)")
	rootCmd.Flags().StringVar(&flagJournal, "journal", ":memory:", "Round journal database; the default keeps it in memory, a file path is for debugging only")
	rootCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Draw without colors (also set by NO_COLOR)")

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
