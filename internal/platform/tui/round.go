package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-harvest/internal/config"
	"github.com/vovakirdan/tui-harvest/internal/game"
	"github.com/vovakirdan/tui-harvest/internal/registry"
	"github.com/vovakirdan/tui-harvest/internal/rules/fillup"
	"github.com/vovakirdan/tui-harvest/internal/rules/pickup"
)

// RuleControls exposes the variant-specific toggles of the active rule set
// to the TUI. Each variant owns its own configuration surface, so the TUI
// holds closures over the concrete type it constructed instead of
// inspecting the plugin. Nil funcs mean the rule set has no such control.
type RuleControls struct {
	ToggleFill  func() bool   // flip fill mode, returns the new setting
	ToggleTrail func() bool   // flip trail display, returns the new setting
	HUD         func() string // extra HUD line (e.g. the visit budget)
}

// NewRound builds a game and its controls for the given rule set, applying
// the configured defaults. Rule sets without dedicated wiring fall back to
// the registry with no controls.
func NewRound(ruleID string, cfg config.HarvestConfig, seed int64) (*game.Game, RuleControls, error) {
	gameCfg := game.Config{
		DroppableCount: cfg.Board.Droppables,
		RandomLayout:   cfg.Board.RandomLayout,
		FixedLayout:    fixedLayout(cfg.Board.FixedLayout),
		Seed:           seed,
	}

	switch ruleID {
	case pickup.ID:
		r := pickup.New()
		r.SetTrailEnabled(cfg.PickUp.Trail)
		controls := RuleControls{
			ToggleTrail: r.ToggleTrail,
		}
		return game.New(r, gameCfg), controls, nil

	case fillup.ID:
		r := fillup.New()
		r.SetVisitThreshold(cfg.FillUp.VisitThreshold)
		r.SetFillMode(cfg.FillUp.FillOnStart)
		controls := RuleControls{
			ToggleFill: r.ToggleFillMode,
			HUD: func() string {
				mode := "off"
				if r.FillMode() {
					mode = "on"
				}
				return fmt.Sprintf("fill %s  visited %d/%d", mode, r.VisitedCount(), r.VisitThreshold())
			},
		}
		return game.New(r, gameCfg), controls, nil
	}

	plugin, err := registry.Create(ruleID)
	if err != nil {
		return nil, RuleControls{}, err
	}
	return game.New(plugin, gameCfg), RuleControls{}, nil
}

// fixedLayout converts configured cells to board positions, dropping
// anything outside the board.
func fixedLayout(cells []config.CellConfig) []game.Position {
	layout := make([]game.Position, 0, len(cells))
	for _, c := range cells {
		pos := game.Position{X: c.X, Y: c.Y}
		if pos.IsValid() {
			layout = append(layout, pos)
		}
	}
	return layout
}
