package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-harvest/internal/platform/tui"
	"github.com/vovakirdan/tui-harvest/internal/registry"
	"github.com/vovakirdan/tui-harvest/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [rules]",
	Short: "Show fastest rounds",
	Long: `Display the 10 fastest rounds for the specified rule set, or open
the interactive scoreboard when no rule set is given.

Examples:
  harvest scores
  harvest scores pickup
  harvest scores fillup`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		runScoreboard()
		return
	}
	ruleID := args[0]

	if !registry.Exists(ruleID) {
		fmt.Fprintf(os.Stderr, "Error: unknown rule set %q\n", ruleID)
		fmt.Fprintln(os.Stderr, "Run 'harvest list' to see available rule sets.")
		os.Exit(1)
	}
	title := registry.Title(ruleID)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening rounds database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	rounds, err := store.TopRounds(ruleID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Fastest Rounds - %s\n", title)
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'harvest play %s' to set the first time!\n", ruleID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Time", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "----", "----")

	for i, entry := range rounds {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10s  %s\n", i+1, tui.FormatDuration(entry.Duration()), dateStr)
	}

	fmt.Println()
	best, err := store.BestTime(ruleID)
	if err == nil && best > 0 {
		fmt.Printf("Best: %s\n", tui.FormatDuration(best))
	}
}

// runScoreboard opens the interactive scoreboard across all rule sets.
func runScoreboard() {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening rounds database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	width, height := terminalSize()
	if _, err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
