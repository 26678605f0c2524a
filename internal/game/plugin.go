package game

// CellVisual describes how a board cell should be presented, as derived by
// the active rule set. Renderers treat Filled as taking precedence over
// Visited.
type CellVisual struct {
	Visited bool // cell is part of the trail
	Filled  bool // cell has been filled/collected
}

// RulePlugin is the capability contract between the engine and a rule set.
// The engine drives every variant through this interface alone and never
// inspects the concrete type; variant-specific configuration (fill mode,
// trail display, visit thresholds) lives on the concrete types and is
// called directly by whoever constructed them.
type RulePlugin interface {
	// OnGameStart runs on the Ready -> Playing transition.
	OnGameStart(g *Game)

	// OnGameReset runs on every reset, including the one that follows a
	// completed round. It must clear all per-round tracking state.
	OnGameReset(g *Game)

	// OnPlayerMoved runs after every successful in-bounds move while the
	// game is playing. Plugins update their own tracking here and must
	// not mutate the game.
	OnPlayerMoved(from, to Position, g *Game)

	// ShouldCollectDroppable reports whether a droppable sitting at pos
	// should be collected now. Pure predicate over plugin and game state.
	ShouldCollectDroppable(pos Position, g *Game) bool

	// OnDroppableCollected runs immediately after the droppable at pos
	// transitions to collected.
	OnDroppableCollected(pos Position, g *Game)

	// IsGameComplete reports whether the round is won. Evaluated after
	// every successful move once collection has been processed, not only
	// when the board is empty, because variants may impose additional
	// constraints.
	IsGameComplete(g *Game) bool

	// CellVisualState derives the presentation state of a cell.
	// Side-effect free.
	CellVisualState(pos Position, g *Game) CellVisual
}
