// numbertiles is a terminal tile-collapse puzzle game.
//
// Usage:
//
//	numbertiles list              - List available modes
//	numbertiles play [mode]       - Play a mode (default: classic)
//	numbertiles menu              - Start the interactive mode picker
//	numbertiles serve             - Start SSH server for remote play
//	numbertiles scores <mode>     - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.numbertiles/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game package to register its modes
	_ "github.com/vovakirdan/numbertiles/internal/games/numbertiles"
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
	Use:   "numbertiles",
	Short: "Number Tiles - a tile-collapse puzzle in your terminal",
	Long: `Number Tiles is a terminal puzzle game. Move the cursor over a tile,
collapse its group of equal neighbors, and watch the survivor grow by one.

Available commands:
  list     - Show available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  numbertiles play
  numbertiles play endless --size 8
  numbertiles menu
  numbertiles serve --ssh :2222
  numbertiles scores classic`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.numbertiles/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
