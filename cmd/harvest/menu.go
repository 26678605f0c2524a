package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-harvest/internal/core"
	"github.com/vovakirdan/tui-harvest/internal/platform/tui"
	"github.com/vovakirdan/tui-harvest/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with an interactive rule set picker",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a rule set.
Pressing B or Esc during a round returns you to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select rule set
  Tab          - Scoreboard
  Q            - Quit

Examples:
  harvest menu
  harvest menu --db ./rounds.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
}

func runMenu(cmd *cobra.Command, _ []string) {
	harvestCfg := loadHarvestConfig(cmd)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open rounds database: %v\n", err)
		store = nil
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := tui.RunSession(store, harvestCfg, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	if store != nil {
		store.Close()
	}
}
