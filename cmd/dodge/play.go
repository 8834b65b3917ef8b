package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/endless-dodge/internal/config"
	"github.com/vovakirdan/endless-dodge/internal/core"
	"github.com/vovakirdan/endless-dodge/internal/dodge"
	"github.com/vovakirdan/endless-dodge/internal/platform/tui"
	"github.com/vovakirdan/endless-dodge/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Endless Dodge",
	Long: `Start the game in the current terminal.

Difficulty options:
  easy   - Slower spawn ramp, gentler speed increase
  normal - Default tuning
  hard   - Faster spawns and a steeper speed ramp
  fixed  - No ramp at all; interval and speed stay constant

Examples:
  dodge play
  dodge play --difficulty hard
  dodge play --config ./my-dodge.yaml
  dodge play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Load gameplay tuning
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (easy, normal, hard, fixed)\n", flagDifficulty)
			os.Exit(1)
		}
		config.ApplyPreset(&cfg, preset)
	}

	// Get terminal size
	runtime := core.DefaultRuntimeConfig()
	runtime.TickRate = flagFPS
	runtime.Seed = flagSeed
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}

	// Open run history; the game still works without it
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history database: %v\n", err)
		store = nil
	}

	game := dodge.New(cfg, runtime.Seed, storage.NewHighScoreFile(flagHighScore))

	runErr := tui.Run(game, store, runtime)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
