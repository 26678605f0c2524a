package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-harvest/internal/config"
	"github.com/vovakirdan/tui-harvest/internal/core"
	"github.com/vovakirdan/tui-harvest/internal/platform/tui"
	"github.com/vovakirdan/tui-harvest/internal/registry"
	"github.com/vovakirdan/tui-harvest/internal/storage"
)

var (
	flagConfig     string
	flagDroppables int
	flagRandom     bool
	flagThreshold  int
	flagTrail      bool
)

var playCmd = &cobra.Command{
	Use:   "play <rules>",
	Short: "Play a round with the given rule set",
	Long: `Start a round with the specified rule set. The clock starts on your
first move and stops when the board is cleared; the board then resets
for another round.

Controls:
  WASD/Arrows  - Move one cell
  Shift+Arrows - Dash to the boundary
  F            - Toggle fill mode (fillup)
  T            - Toggle trail display (pickup)
  R            - Reset the board
  Q/Ctrl+C     - Quit

Examples:
  harvest play pickup
  harvest play fillup --threshold 3
  harvest play pickup --droppables 8 --random=false
  harvest play fillup --config ./my-harvest.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().IntVar(&flagDroppables, "droppables", 0, "Number of droppables (0 = from config)")
	playCmd.Flags().BoolVar(&flagRandom, "random", true, "Use a random layout instead of the fixed one")
	playCmd.Flags().IntVar(&flagThreshold, "threshold", 0, "Fill-up visit threshold (0 = from config)")
	playCmd.Flags().BoolVar(&flagTrail, "trail", true, "Show the visited trail in pickup")
}

// loadHarvestConfig loads the YAML config and applies flag overrides.
func loadHarvestConfig(cmd *cobra.Command) config.HarvestConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load config: %v\n", err)
		cfg = config.DefaultHarvestConfig()
	}

	if flagDroppables > 0 {
		cfg.Board.Droppables = flagDroppables
	}
	if cmd.Flags().Changed("random") {
		cfg.Board.RandomLayout = flagRandom
	}
	if flagThreshold > 0 {
		cfg.FillUp.VisitThreshold = flagThreshold
	}
	if cmd.Flags().Changed("trail") {
		cfg.PickUp.Trail = flagTrail
	}

	return cfg
}

// terminalSize returns the terminal dimensions, with sane fallbacks.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

func runPlay(cmd *cobra.Command, args []string) {
	ruleID := args[0]

	if !registry.Exists(ruleID) {
		fmt.Fprintf(os.Stderr, "Error: unknown rule set %q\n", ruleID)
		fmt.Fprintln(os.Stderr, "Run 'harvest list' to see available rule sets.")
		os.Exit(1)
	}

	harvestCfg := loadHarvestConfig(cmd)

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	g, controls, err := tui.NewRound(ruleID, harvestCfg, cfg.Seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating round: %v\n", err)
		os.Exit(1)
	}

	// Open round storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open rounds database: %v\n", err)
		// Continue without storage - the round still works
		store = nil
	}

	runErr := tui.Run(ruleID, registry.Title(ruleID), g, controls, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running round: %v\n", runErr)
		os.Exit(1)
	}
}
