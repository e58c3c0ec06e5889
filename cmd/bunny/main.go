// bunny is a terminal catcher game: move the paddle, catch the carrots,
// dodge the bombs.
//
// Usage:
//
//	bunny play               - Play in the terminal
//	bunny scores [level]     - Show high scores
//	bunny sim                - Run a headless session with the autopilot
//	bunny config             - Print the effective game constants
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.bunny/scores.db)
//	--config <path>    - Use a custom constants YAML
//	--log-file <path>  - Write logs to this file (default: ~/.bunny/bunny.log)
//	--debug            - Log session events
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bunny",
	Short: "Bunny Catch - catch falling carrots in your terminal",
	Long: `Bunny Catch is a terminal arcade game. Move the paddle to catch every
falling carrot and keep away from the bombs. Missing a carrot or catching a
bomb ends the run.

Available commands:
  play     - Play in the terminal
  scores   - View high scores
  sim      - Run a headless session driven by the autopilot
  config   - Print the effective game constants

Examples:
  bunny play
  bunny play --level hard
  bunny scores easy
  bunny sim --ticks 6000 --seed 42`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bunny/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game constants YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.bunny/bunny.log", "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log session events at debug level")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
