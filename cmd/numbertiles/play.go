package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/numbertiles/internal/core"
	"github.com/vovakirdan/numbertiles/internal/games/numbertiles"
	"github.com/vovakirdan/numbertiles/internal/platform/tui"
	"github.com/vovakirdan/numbertiles/internal/registry"
	"github.com/vovakirdan/numbertiles/internal/storage"
)

var (
	flagConfig string
	flagSize   int
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the given mode (default: classic).

Controls:
  Arrows/WASD  - Move cursor
  Space/Enter  - Collapse tile group
  P            - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Modes:
  classic - One board; play until no matching neighbors remain
  endless - Empty cells refill with fresh tiles after each collapse

Examples:
  numbertiles play
  numbertiles play endless
  numbertiles play classic --size 10
  numbertiles play --config ./my-board.yaml
  numbertiles play --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Board size (0 = use config)")
}

func runPlay(cmd *cobra.Command, args []string) {
	modeID := "classic"
	if len(args) > 0 {
		modeID = args[0]
	}

	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'numbertiles list' to see available modes.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Apply flags before game creation
	numbertiles.SetConfigPath(flagConfig)
	if flagSize > 0 {
		numbertiles.SetBoardSize(flagSize)
	}

	game, err := registry.Create(modeID)
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

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
