// Package pickup implements the classic rule set: every droppable is
// collected on contact and the round is won when the board is empty.
package pickup

import (
	"github.com/vovakirdan/tui-harvest/internal/game"
	"github.com/vovakirdan/tui-harvest/internal/registry"
)

// ID is the registry identifier for this rule set.
const ID = "pickup"

// Rules collects unconditionally on contact. It optionally keeps a trail of
// visited cells, which only affects rendering; the trail toggle is part of
// this type's own surface, not the RulePlugin contract.
type Rules struct {
	trailEnabled bool
	visited      map[game.Position]bool
}

// New creates the rule set with trail display off.
func New() *Rules {
	return &Rules{visited: make(map[game.Position]bool)}
}

func init() {
	registry.Register(ID, "Pick Up", func() game.RulePlugin {
		return New()
	})
}

// SetTrailEnabled toggles trail display. Disabling drops the trail
// collected so far.
func (r *Rules) SetTrailEnabled(on bool) {
	r.trailEnabled = on
	if !on {
		r.visited = make(map[game.Position]bool)
	}
}

// ToggleTrail flips trail display and returns the new setting.
func (r *Rules) ToggleTrail() bool {
	r.SetTrailEnabled(!r.trailEnabled)
	return r.trailEnabled
}

// TrailEnabled reports whether the trail is displayed.
func (r *Rules) TrailEnabled() bool {
	return r.trailEnabled
}

// OnGameStart implements game.RulePlugin.
func (r *Rules) OnGameStart(*game.Game) {}

// OnGameReset clears the trail.
func (r *Rules) OnGameReset(*game.Game) {
	r.visited = make(map[game.Position]bool)
}

// OnPlayerMoved records the new cell in the trail while trail display is on.
func (r *Rules) OnPlayerMoved(_, to game.Position, _ *game.Game) {
	if r.trailEnabled {
		r.visited[to] = true
	}
}

// ShouldCollectDroppable always collects on contact.
func (r *Rules) ShouldCollectDroppable(game.Position, *game.Game) bool {
	return true
}

// OnDroppableCollected implements game.RulePlugin.
func (r *Rules) OnDroppableCollected(game.Position, *game.Game) {}

// IsGameComplete reports whether the board is empty.
func (r *Rules) IsGameComplete(g *game.Game) bool {
	return g.RemainingDroppables() == 0
}

// CellVisualState marks trailed cells when trail display is on.
func (r *Rules) CellVisualState(pos game.Position, _ *game.Game) game.CellVisual {
	return game.CellVisual{Visited: r.trailEnabled && r.visited[pos]}
}

var _ game.RulePlugin = (*Rules)(nil)
