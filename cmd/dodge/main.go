// dodge is a terminal arcade game: steer a paddle and avoid the falling
// blocks for as long as you can.
//
// Usage:
//
//	dodge play               - Play in the current terminal
//	dodge scores             - Show the best recorded runs
//	dodge serve              - Start an SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--db <path>          - Run history database (default: ~/.dodge/runs.db)
//	--highscore <path>   - High score file (default: ~/.dodge/highscore.dat)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagHighScore string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodge",
	Short: "Endless Dodge - avoid falling blocks in your terminal",
	Long: `Endless Dodge is a terminal arcade game. Obstacles fall faster and
more often the longer you survive; dodge them for points.

Controls:
  A/Left, D/Right - Move the paddle
  Enter           - Start / restart
  P               - Pause / resume
  Esc, Q          - Quit

Examples:
  dodge play
  dodge play --difficulty hard
  dodge scores
  dodge serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dodge/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagHighScore, "highscore", "~/.dodge/highscore.dat", "Path to high score file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
