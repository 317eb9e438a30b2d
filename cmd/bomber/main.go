// bomber detonates a bomb on a square maze and writes the resulting maze.
//
// Usage:
//
//	bomber <input> <output> <x> <y>   - Detonate the bomb at x,y and save the maze
//	bomber show <maze>                - Preview a maze or a detonation
//	bomber list [dir]                 - List maze files in a directory
//	bomber history                    - Browse recorded detonations
//
// Global flags:
//
//	--config <path>      - Path to a custom bomber YAML config
//	--db <path>          - Set history database path (default: ~/.bomber/history.db)
//	--log-level <level>  - debug, info, warn or error
//	--no-history         - Do not record this run
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig    string
	flagDBPath    string
	flagLogLevel  string
	flagNoHistory bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bomber <input> <output> <x> <y>",
	Short: "Detonate a bomb on a maze",
	Long: `bomber reads a square maze, detonates the bomb at column x and row y,
and writes the resulting maze to the output file.

On failure the message is written to the output file as "ERROR: <message>"
(or to the configured error file when no output path was given) and the
process exits with status 1. Flags must come before <input>.

Available commands:
  show     - Preview a maze or a detonation without writing anything
  list     - List maze files in a directory
  history  - Browse recorded detonations

Examples:
  bomber maze.txt out.txt 0 4
  bomber show maze.yaml --x 4 --y 2
  bomber list ./mazes
  bomber history --plain`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDetonate,
}

func init() {
	// Everything after <input> is positional, so negative coordinates
	// are not mistaken for shorthand flags.
	rootCmd.Flags().SetInterspersed(false)
	rootCmd.SetFlagErrorFunc(flagError)

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom bomber config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to history database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagNoHistory, "no-history", false, "Do not record runs in the history database")

	// Add subcommands
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(historyCmd)
}
