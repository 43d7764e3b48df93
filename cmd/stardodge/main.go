// stardodge is a terminal dodge-'em arcade game: steer a starship
// through incoming debris before your power runs out.
//
// Usage:
//
//	stardodge play           - Play in the current terminal
//	stardodge scores         - Show high scores
//	stardodge serve          - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.stardodge/runs.db)
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
	Use:   "stardodge",
	Short: "Stardodge - dodge debris in your terminal",
	Long: `Stardodge is a terminal arcade game. A starship holds the left edge
of the screen while debris drifts in from the right; dodge it for as
long as your power lasts. Collisions cost power, and power drains a
little every frame regardless.

Examples:
  stardodge play
  stardodge play --seed 42
  stardodge scores
  stardodge serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.stardodge/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
