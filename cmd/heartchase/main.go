// heartchase is a terminal remake of a tiny maze chase game: steer the
// player through the maze, collect wandering hearts and stay ahead of the
// chasers across two levels.
//
// Usage:
//
//	heartchase play          - Play in the current terminal
//	heartchase serve         - Start SSH server for remote play
//	heartchase history       - Show recent runs and stats
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 50)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.heartchase/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "heartchase",
	Short: "Heart Chase - a maze chase game for your terminal",
	Long: `Heart Chase is a terminal maze game. Collect the required hearts on
each level while the chasers close in; clear both levels to win.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  history  - View recent runs and stats

Examples:
  heartchase play
  heartchase play --difficulty hard --seed 42
  heartchase serve --ssh :2222
  heartchase history`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 50, "Tick rate (simulation ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.heartchase/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}
