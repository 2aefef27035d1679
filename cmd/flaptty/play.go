package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"flaptty/internal/config"
	"flaptty/internal/platform/tui"
	"flaptty/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  Space/Up/W  - Flap (also starts a round and retries after a crash)
  Left click  - Flap
  P/Esc       - Pause
  Ctrl+S      - Save a screenshot to ~/.flaptty/screenshots
  Q/Ctrl+C    - Quit

Examples:
  flaptty play
  flaptty play --seed 42
  flaptty play --config ./my-tuning.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
}

func runPlay(_ *cobra.Command, _ []string) {
	// Get terminal size before Bubble Tea takes over
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(cfg, tui.Options{
		Width:  width,
		Height: height,
		FPS:    flagFPS,
		Seed:   flagSeed,
	}, store)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
