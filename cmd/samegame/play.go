package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/udonpa/samegame/internal/core"
	samegame "github.com/udonpa/samegame/internal/game"
	"github.com/udonpa/samegame/internal/platform/tui"
	"github.com/udonpa/samegame/internal/registry"
	"github.com/udonpa/samegame/internal/storage"
)

var (
	flagConfig string
	flagLoad   string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a board",
	Long: `Start playing the given variant (default: samegame).

Controls:
  Arrows/WASD/HJKL - Move the cursor
  Mouse            - Point at a group
  Space/Enter/Click - Erase the selected group
  Ctrl+S           - Save the board to ~/.samegame/saves
  R                - Start a fresh board
  P                - Pause
  Q/Esc/Ctrl+C     - Quit

Examples:
  samegame play
  samegame play samegame_mini
  samegame play --seed 42
  samegame play --load ~/.samegame/saves/samegame_20260831_120000.txt
  samegame play --config ./my-samegame.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagLoad, "load", "", "Path to a board save file to load")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "samegame"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if variant exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'samegame list' to see available variants.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config and board file before creation
	samegame.SetConfigPath(flagConfig)
	if flagLoad != "" {
		if _, err := os.Stat(flagLoad); err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot read board file: %v\n", err)
			os.Exit(1)
		}
		samegame.SetBoardFile(flagLoad)
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
