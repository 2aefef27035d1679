// flaptty is a flappy-bird style game for the terminal.
//
// Usage:
//
//	flaptty play      - Play in the current terminal
//	flaptty scores    - Show the best score and round history
//	flaptty serve     - Serve the game over SSH
//
// Global flags:
//
//	--fps <rate>    - Frame rate (default: 60)
//	--seed <value>  - RNG seed for a reproducible obstacle course
//	--db <path>     - Path to scores database (default: ~/.flaptty/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
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
	Use:   "flaptty",
	Short: "Flappy bird in your terminal",
	Long: `flaptty is a flappy-bird style game that runs in the terminal,
locally or over SSH.

Available commands:
  play     - Play in the current terminal
  scores   - View the best score and round history
  serve    - Start an SSH server for remote play

Examples:
  flaptty play
  flaptty play --seed 42
  flaptty scores
  flaptty serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flaptty/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
