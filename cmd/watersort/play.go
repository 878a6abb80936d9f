package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/water-sort/internal/core"
	"github.com/vovakirdan/water-sort/internal/platform/tui"
	"github.com/vovakirdan/water-sort/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a board",
	Long: `Deal a board and play it.

Controls:
  1-9, 0       - Pick tube 1-10 (first pick chooses the source, second pours)
  Mouse click  - Pick the tube under the pointer
  Space/R      - New board
  ?            - More keys
  Q/Esc        - Quit

The seed of the last board is printed on exit; pass it back with --seed to
deal the same board again.

Examples:
  watersort play
  watersort play --seed 1700000000
  watersort play --sound none --fps 60
  watersort play --log-file watersort.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	palette, err := cfg.PaletteOverrides()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("watersort")
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open the journal
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open play journal: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	seed, runErr := tui.Run(tui.Options{
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.TickRate,
			Seed:     flagSeed,
		},
		Layout:  cfg.Layout.Layout(),
		Palette: tui.NewPalette(nil, palette),
		Store:   store,
		Logger:  logger,
		Sound:   cfg.Sound.Backend,
	})

	// Close store before reporting
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}

	fmt.Printf("seed: %d\n", seed)
	return nil
}
