// samegame is a terminal SameGame: erase groups of same-colored tiles,
// let the rest fall, and clear the board for a bonus.
//
// Usage:
//
//	samegame play [variant]  - Play a board (default: classic)
//	samegame list            - List available variants
//	samegame gen             - Generate a random board save file
//	samegame scores <id>     - Show high scores for a variant
//	samegame serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.samegame/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game variants to register them
	_ "github.com/udonpa/samegame/internal/game"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "samegame",
	Short: "SameGame - Erase tile groups in your terminal",
	Long: `SameGame is a terminal tile puzzle. Click or select a group of two
or more same-colored adjacent tiles to erase it; tiles above fall down
and emptied columns close up. Bigger groups score more, and clearing
the whole board earns a bonus.

Available commands:
  play     - Play a board
  list     - Show available variants
  gen      - Generate a random board save file
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  samegame play
  samegame play samegame_mini
  samegame play --load board.txt
  samegame gen --width 15 --height 12 -o board.txt
  samegame scores samegame
  samegame serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.samegame/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
