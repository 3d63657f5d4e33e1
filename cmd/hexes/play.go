package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hexes/internal/platform/tui"
	"github.com/vovakirdan/tui-hexes/internal/registry"
)

var flagLevel string

var playCmd = &cobra.Command{
	Use:   "play <pack>",
	Short: "Play a pack",
	Long: `Start playing the given pack, from its first level or from --level.

Controls:
  Arrows/WASD     - Move the cursor (Q/E/Z/C move diagonally)
  Space/Enter     - Pick the cell under the cursor
  X               - Clear the picks
  -/Backspace     - Undo
  =/Tab           - Redo
  V               - Preview the solved board
  ]               - Next level (after solving)
  R               - Restart the level
  P               - Pause
  ?               - Show all keys
  Esc/Ctrl+C      - Quit

Examples:
  hexes play shift
  hexes play blink --level 03-columns
  hexes play flip --levels ./my-levels`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Level ID to start with")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	if err := checkPack(gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	e, err := loadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig()
	cfg.Level = flagLevel

	// Create game instance
	game, err := registry.Create(gameID, e.deps())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open result storage; the game still works without it
	store := openStore()

	_, runErr := tui.Run(game, store, cfg, tui.Options{ShowHelp: e.config.Play.ShowHelp})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
