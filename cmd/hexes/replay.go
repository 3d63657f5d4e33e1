package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hexes/internal/core"
	"github.com/vovakirdan/tui-hexes/internal/games/hexes"
	"github.com/vovakirdan/tui-hexes/internal/puzzle"
)

var flagMoves string

var replayCmd = &cobra.Command{
	Use:   "replay <pack> <level>",
	Short: "Apply moves to a level and print the board",
	Long: `Load a level without the terminal UI, apply the moves given with
--moves in order and print the resulting board. Colours are not
relabelled, so move lists are reproducible across runs.

Moves use the "i1:i2[:i3]" notation, comma separated. A stored solution
from 'hexes scores' can be pasted as is.

Examples:
  hexes replay shift 01-hatch --moves 0:3
  hexes replay spin 01-hatch --moves 0:1:3`,
	Args: cobra.ExactArgs(2),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagMoves, "moves", "", "Comma separated moves to apply")
}

func runReplay(_ *cobra.Command, args []string) {
	if err := replay(args[0], args[1], flagMoves); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func replay(gameID, levelID, notation string) error {
	pack, err := puzzle.ParsePack(gameID)
	if err != nil {
		return err
	}
	moves, err := puzzle.ParseMoves(notation)
	if err != nil {
		return err
	}

	e, err := loadEnv()
	if err != nil {
		return err
	}
	deps := e.deps()
	deps.Config.Play.Permute = false

	game := hexes.New(pack, deps)
	game.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Level: levelID})
	session := game.Session()
	if session == nil {
		return fmt.Errorf("cannot load %s for %s: %w", levelID, gameID, game.Err())
	}

	for i, m := range moves {
		if !session.TryMove(m.I1, m.I2, m.I3) {
			return fmt.Errorf("move %d (%s) is not legal", i+1, m)
		}
	}

	// One idle tick settles the solved state
	game.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	game.Render(screen)
	fmt.Println(screen.String())

	fmt.Printf("Moves: %d  Par: %d  Solved: %t\n", session.MoveCount(), session.Par(), session.IsSolved())
	return nil
}
