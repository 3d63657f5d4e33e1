package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hexes/internal/registry"
	"github.com/vovakirdan/tui-hexes/internal/storage"
)

var (
	flagScoresLevel string
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [pack]",
	Short: "Show results",
	Long: `Without a pack, summarise the results of every pack.
With a pack, list its best results (fewest moves first).

Examples:
  hexes scores
  hexes scores shift
  hexes scores spin --level 02-bands
  hexes scores blink --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresLevel, "level", "", "Only show results for this level")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every result of the pack")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if err := printStats(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
			os.Exit(1)
		}
		return
	}

	gameID := args[0]
	if err := checkPack(gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagScoresClear {
		if err := store.ClearResults(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared results for %s.\n", gameID)
		return
	}

	if err := printResults(store, gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}
}

func printResults(store *storage.Store, gameID string) error {
	results, err := store.TopResults(gameID, flagScoresLevel, flagScoresLimit)
	if err != nil {
		return err
	}

	title := gameID
	for _, g := range registry.List() {
		if g.ID == gameID {
			title = g.Title
		}
	}
	fmt.Printf("Results - %s\n", title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'hexes play %s' to record the first one!\n", gameID)
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-5s  %-3s  %-1s  %-12s  %s\n", "Rank", "Level", "Moves", "Par", "", "Player", "Date")
	fmt.Printf("  %-4s  %-12s  %-5s  %-3s  %-1s  %-12s  %s\n", "----", "-----", "-----", "---", "", "------", "----")

	for i, r := range results {
		star := " "
		if r.Bonus() {
			star = "*"
		}
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-12s  %-5d  %-3d  %s  %-12s  %s\n",
			i+1, r.Level, r.Moves, r.Par, star, player, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printStats(store *storage.Store) error {
	stats, err := store.Stats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No results recorded yet.")
		return nil
	}

	packs := make([]string, 0, len(stats))
	for p := range stats {
		packs = append(packs, p)
	}
	sort.Strings(packs)

	fmt.Printf("  %-6s  %-6s  %-6s  %-7s  %-9s  %s\n", "Pack", "Solves", "Levels", "Bonuses", "Avg moves", "Last played")
	fmt.Printf("  %-6s  %-6s  %-6s  %-7s  %-9s  %s\n", "----", "------", "------", "-------", "---------", "-----------")
	for _, p := range packs {
		s := stats[p]
		fmt.Printf("  %-6s  %-6d  %-6d  %-7d  %-9.1f  %s\n",
			s.Pack, s.Solves, s.Levels, s.Bonuses, s.AvgMoves, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
