package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hexes/internal/puzzle"
	"github.com/vovakirdan/tui-hexes/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List packs and levels",
	Long:  `Shows the registered packs and the levels available in each.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No packs available.")
		return
	}

	e, err := loadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Available packs:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, "ID", "Title", "Levels")
	fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, "--", "-----", "------")

	// Print packs
	for _, g := range games {
		var ids []string
		if pack, err := puzzle.ParsePack(g.ID); err == nil {
			for _, l := range e.catalog.ForPack(pack) {
				ids = append(ids, l.ID)
			}
		}
		fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, g.ID, g.Title, strings.Join(ids, " "))
	}

	fmt.Println()
	fmt.Println("Run 'hexes play <id>' to play a pack.")
}
