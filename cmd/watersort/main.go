// watersort is a water sort puzzle for the terminal.
//
// Usage:
//
//	watersort                  - Play (same as "watersort play")
//	watersort play             - Play a board
//	watersort history          - Show journaled games
//	watersort serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: from config, 30)
//	--seed <value>      - Deal a specific board (0 = random based on time)
//	--db <path>         - Set journal path (default: ~/.watersort/journal.db)
//	--config <path>     - Use a custom config YAML
//	--sound <backend>   - Sound backend: bell, log, none
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/water-sort/internal/audio"
	"github.com/vovakirdan/water-sort/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagSound    string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "watersort",
	Short: "Water Sort - pour colored liquid until every tube holds one color",
	Long: `Water Sort is a puzzle for your terminal. Ten tubes hold portions of
eight colors; pour between tubes until every tube is empty or full of a
single color.

Available commands:
  play     - Play a board (default)
  history  - Show journaled games and their seeds
  serve    - Start SSH server for remote play

Examples:
  watersort
  watersort play --seed 1234
  watersort history --limit 50
  watersort serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second), overrides config")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.watersort/journal.db", "Path to play journal")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSound, "sound", "", fmt.Sprintf("Sound backend %v, overrides config", audio.List()))
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("fps") {
		cfg.TickRate = flagFPS
	}
	if flagSound != "" {
		cfg.Sound.Backend = flagSound
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: invalid overrides: %w", err)
	}
	if !audio.Exists(cfg.Sound.Backend) {
		return cfg, fmt.Errorf("unknown sound backend %q (available: %v)", cfg.Sound.Backend, audio.List())
	}
	return cfg, nil
}
