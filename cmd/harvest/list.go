package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-harvest/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available rule sets",
	Long:  `Shows a list of all registered rule sets.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	ruleSets := registry.List()

	if len(ruleSets) == 0 {
		fmt.Println("No rule sets available.")
		return
	}

	fmt.Println("Available rule sets:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, r := range ruleSets {
		if len(r.ID) > maxIDLen {
			maxIDLen = len(r.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, r := range ruleSets {
		fmt.Printf("  %-*s  %s\n", maxIDLen, r.ID, r.Title)
	}

	fmt.Println()
	fmt.Println("Run 'harvest play <id>' to start a round.")
}
