// harvest is a terminal grid game about collecting droppables against the clock.
//
// Usage:
//
//	harvest list              - List available rule sets
//	harvest play <rules>      - Play a round with the given rule set
//	harvest menu              - Start menu to pick rule sets interactively
//	harvest serve             - Start SSH server for remote play
//	harvest scores <rules>    - Show fastest rounds for a rule set
//
// Global flags:
//
//	--fps <rate>    - Set display refresh rate (default: 10)
//	--seed <value>  - Set RNG seed for reproducible layouts
//	--db <path>     - Set database path (default: ~/.harvest/rounds.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import rule sets to register them
	_ "github.com/vovakirdan/tui-harvest/internal/rules/fillup"
	_ "github.com/vovakirdan/tui-harvest/internal/rules/pickup"
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
	Use:   "harvest",
	Short: "Harvest - collect droppables on a terminal grid",
	Long: `Harvest is a terminal game about clearing a 10x10 board of droppables
as fast as possible. Each rule set changes what clearing the board takes.

Available commands:
  list     - Show all available rule sets
  play     - Play a rule set directly
  menu     - Interactive rule set picker menu
  serve    - Start SSH server for remote play
  scores   - View fastest rounds

Examples:
  harvest list
  harvest play pickup
  harvest play fillup --threshold 3
  harvest menu
  harvest serve --ssh :2222
  harvest scores fillup`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 10, "Display refresh rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.harvest/rounds.db", "Path to rounds database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
