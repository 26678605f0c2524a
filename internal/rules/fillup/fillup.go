// Package fillup implements the economical rule set: trail tracking and
// collection are gated by fill mode, and the round only counts as won when
// the board is cleared without filling more cells than the visit threshold.
package fillup

import (
	"github.com/vovakirdan/tui-harvest/internal/game"
	"github.com/vovakirdan/tui-harvest/internal/registry"
)

// ID is the registry identifier for this rule set.
const ID = "fillup"

// DefaultVisitThreshold is the maximum number of distinct visited
// (non-collected) cells a winning round may have unless configured
// otherwise.
const DefaultVisitThreshold = 5

// Rules tracks visited and collected cells per round. Fill mode, the visit
// threshold and the read accessors below are this type's own surface; the
// engine only ever talks to it through the RulePlugin contract.
type Rules struct {
	fillMode  bool
	threshold int
	visited   map[game.Position]bool
	collected map[game.Position]bool
}

// New creates the rule set with fill mode off and the default threshold.
func New() *Rules {
	return &Rules{
		threshold: DefaultVisitThreshold,
		visited:   make(map[game.Position]bool),
		collected: make(map[game.Position]bool),
	}
}

func init() {
	registry.Register(ID, "Fill Up", func() game.RulePlugin {
		return New()
	})
}

// SetFillMode enables or disables fill mode.
func (r *Rules) SetFillMode(on bool) {
	r.fillMode = on
}

// ToggleFillMode flips fill mode and returns the new setting.
func (r *Rules) ToggleFillMode() bool {
	r.fillMode = !r.fillMode
	return r.fillMode
}

// FillMode reports whether fill mode is active.
func (r *Rules) FillMode() bool {
	return r.fillMode
}

// SetVisitThreshold changes the visit budget. Values below 1 are ignored.
func (r *Rules) SetVisitThreshold(n int) {
	if n >= 1 {
		r.threshold = n
	}
}

// VisitThreshold returns the visit budget.
func (r *Rules) VisitThreshold() int {
	return r.threshold
}

// VisitedCount returns the number of distinct visited cells this round.
func (r *Rules) VisitedCount() int {
	return len(r.visited)
}

// OnGameStart implements game.RulePlugin.
func (r *Rules) OnGameStart(*game.Game) {}

// OnGameReset clears the visited and collected tracking.
func (r *Rules) OnGameReset(*game.Game) {
	r.visited = make(map[game.Position]bool)
	r.collected = make(map[game.Position]bool)
}

// OnPlayerMoved fills the new cell while fill mode is on, skipping cells
// with a live droppable (collection handles those). While fill mode is off,
// stepping on a visited cell unfills it.
func (r *Rules) OnPlayerMoved(_, to game.Position, g *game.Game) {
	if r.fillMode {
		if !g.UncollectedDroppableAt(to) {
			r.visited[to] = true
		}
		return
	}
	delete(r.visited, to)
}

// ShouldCollectDroppable collects only while fill mode is on.
func (r *Rules) ShouldCollectDroppable(_ game.Position, _ *game.Game) bool {
	return r.fillMode
}

// OnDroppableCollected marks the cell as collected.
func (r *Rules) OnDroppableCollected(pos game.Position, _ *game.Game) {
	r.collected[pos] = true
}

// IsGameComplete requires an empty board and an economical fill: no more
// distinct visited cells than the threshold allows.
func (r *Rules) IsGameComplete(g *game.Game) bool {
	return g.RemainingDroppables() == 0 && len(r.visited) <= r.threshold
}

// CellVisualState marks collected cells as filled, visited cells as part of
// the trail.
func (r *Rules) CellVisualState(pos game.Position, _ *game.Game) game.CellVisual {
	if r.collected[pos] {
		return game.CellVisual{Filled: true}
	}
	return game.CellVisual{Visited: r.visited[pos]}
}

var _ game.RulePlugin = (*Rules)(nil)
