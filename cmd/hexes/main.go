// hexes is a hexagonal colour puzzle played in the terminal.
//
// Usage:
//
//	hexes list                    - List packs and levels
//	hexes play <pack>             - Play a pack
//	hexes menu                    - Pick a pack and level interactively
//	hexes serve                   - Start SSH server for remote play
//	hexes scores [pack]           - Show results
//	hexes replay <pack> <level>   - Apply moves to a level and print the board
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 30)
//	--seed <value>      - Set colour relabelling seed
//	--db <path>         - Set database path (default: ~/.hexes/results.db)
//	--config <path>     - Use a custom config file
//	--levels <dir>      - Load levels from a directory
//	--log-level <name>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import the packs to register them
	_ "github.com/vovakirdan/tui-hexes/internal/games/hexes"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLevels   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hexes",
	Short: "Hexes - colour puzzles on a hexagonal board",
	Long: `Hexes is a terminal puzzle game. Every level is a scrambled hexagon
of coloured cells; group the colours back together in as few moves as
you can. Four packs play the same levels with different moves:

  shift  - rotate a line of cells by one step
  flip   - mirror a line of cells end to end
  spin   - rotate the cells around a triangle
  blink  - swap colours around a triangle

Available commands:
  list     - Show packs and levels
  play     - Play a pack directly
  menu     - Interactive pack and level picker
  serve    - Start SSH server for remote play
  scores   - View results
  replay   - Check a move list against a level

Examples:
  hexes list
  hexes play shift
  hexes play spin --level 02-bands
  hexes menu
  hexes serve --ssh :2222 --metrics :9090
  hexes replay flip 01-hatch --moves 0:6`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		log.SetLevel(level)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Colour seed (0 = from config, else random)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hexes/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory of level files (default: built-in levels)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
}
