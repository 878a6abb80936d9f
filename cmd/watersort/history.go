package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/water-sort/internal/platform/tui"
	"github.com/vovakirdan/water-sort/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryPlain bool
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show journaled games",
	Long: `Display recently played boards with their seeds and outcomes.

On a terminal the journal opens as a scrollable table; otherwise, or with
--plain, it is printed as text. With --seed only games dealt from that seed
are printed. --clear deletes every journaled game.

Examples:
  watersort history
  watersort history --limit 50
  watersort history --seed 1700000000
  watersort history --plain | grep cleared
  watersort history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of games to show")
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print text instead of an interactive table")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete every journaled game")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening play journal: %w", err)
	}
	defer store.Close()

	if flagHistoryClear {
		n, err := store.ClearJournal()
		if err != nil {
			return err
		}
		fmt.Printf("Journal cleared (%d games removed)\n", n)
		return nil
	}

	interactive := !flagHistoryPlain && term.IsTerminal(int(os.Stdout.Fd()))
	bySeed := cmd.Flags().Changed("seed")

	if interactive && !bySeed {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunHistory(store, flagHistoryLimit, width, height)
	}

	var games []storage.GameRecord
	if bySeed {
		games, err = store.GamesBySeed(flagSeed)
	} else {
		games, err = store.RecentGames(flagHistoryLimit)
	}
	if err != nil {
		return err
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}

	fmt.Println("Water Sort Journal")
	fmt.Println(tui.SummaryLine(stats))
	fmt.Println()

	if len(games) == 0 {
		fmt.Println("No games journaled yet.")
		return nil
	}

	// Print header
	fmt.Printf("  %-5s  %-20s  %-8s  %-5s  %-6s  %s\n", "#", "Seed", "Result", "Pours", "Ticks", "Date")
	fmt.Printf("  %-5s  %-20s  %-8s  %-5s  %-6s  %s\n", "-", "----", "------", "-----", "-----", "----")

	for _, row := range tui.HistoryRows(games) {
		fmt.Printf("  %-5s  %-20s  %-8s  %-5s  %-6s  %s\n", row[0], row[1], row[2], row[3], row[4], row[5])
	}
	return nil
}
