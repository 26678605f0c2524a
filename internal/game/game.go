package game

import (
	"math/rand"
	"time"
)

// State is the game lifecycle phase. There is no terminal state: completed
// rounds return to Ready and the cycle repeats.
type State int

const (
	StateReady State = iota
	StatePlaying
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// DefaultDroppableCount is the number of droppables spawned per round when
// the configuration does not say otherwise.
const DefaultDroppableCount = 5

// Config carries the knobs a Game is built with.
type Config struct {
	DroppableCount int        // droppables per random round; <= 0 means DefaultDroppableCount
	RandomLayout   bool       // random placement instead of FixedLayout
	FixedLayout    []Position // used when RandomLayout is false; empty means DefaultFixedLayout
	Seed           int64      // RNG seed; 0 means time-based
}

// DefaultFixedLayout returns the stock droppable arrangement used when no
// fixed layout is configured.
func DefaultFixedLayout() []Position {
	return []Position{
		{X: 1, Y: 0},
		{X: 3, Y: 2},
		{X: 5, Y: 5},
		{X: 7, Y: 3},
		{X: 9, Y: 9},
	}
}

// Game orchestrates the player, the droppable batch and the active rule set
// through the Ready -> Playing -> Ready round cycle. It owns the timing and
// score bookkeeping; everything rule-specific is delegated to the plugin.
//
// A Game is driven by a single caller; it does no locking of its own.
type Game struct {
	player     *Player
	droppables []Droppable
	plugin     RulePlugin

	state     State
	startTime time.Time

	currentScore time.Duration
	bestScore    time.Duration
	rounds       int

	droppableCount int
	randomLayout   bool
	fixedLayout    []Position

	rng *rand.Rand
	now func() time.Time
}

// New creates a game in the Ready state with the player at the origin and a
// fresh droppable batch. The RNG is scoped to the instance so two games
// never share hidden random state; a zero seed falls back to the clock.
func New(plugin RulePlugin, cfg Config) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	count := cfg.DroppableCount
	if count <= 0 {
		count = DefaultDroppableCount
	}
	// Leave at least the player's cell free.
	if count >= GridWidth*GridHeight {
		count = GridWidth*GridHeight - 1
	}

	layout := cfg.FixedLayout
	if !cfg.RandomLayout && len(layout) == 0 {
		layout = DefaultFixedLayout()
	}

	g := &Game{
		player:         NewPlayer(Position{}),
		plugin:         plugin,
		droppableCount: count,
		randomLayout:   cfg.RandomLayout,
		fixedLayout:    append([]Position(nil), layout...),
		rng:            rand.New(rand.NewSource(seed)),
		now:            time.Now,
	}
	g.Reset()
	return g
}

// Start begins a round: records the start time, enters Playing and notifies
// the plugin. Calling it outside Ready is a silent no-op.
func (g *Game) Start() {
	if g.state != StateReady {
		return
	}
	g.startTime = g.now()
	g.state = StatePlaying
	g.plugin.OnGameStart(g)
}

// MovePlayer attempts one move. Boundary hits return false and nothing else
// happens, regardless of state. Successful moves outside an active round
// just reposition the player; while playing they additionally run the rule
// pipeline: movement notification, collection attempt, completion check.
func (g *Game) MovePlayer(d Direction) bool {
	from := g.player.Position()
	if !g.player.TryMove(d) {
		return false
	}
	if g.state != StatePlaying {
		return true
	}

	to := g.player.Position()
	g.plugin.OnPlayerMoved(from, to, g)
	g.tryCollect(to)
	if g.plugin.IsGameComplete(g) {
		g.finishRound()
	}
	return true
}

// MovePlayerMultiple repeats MovePlayer up to count times, stopping at the
// first boundary hit. Returns the number of successful moves. The batch is
// not atomic: collections and completions triggered by intermediate moves
// take full effect.
func (g *Game) MovePlayerMultiple(d Direction, count int) int {
	moved := 0
	for i := 0; i < count; i++ {
		if !g.MovePlayer(d) {
			break
		}
		moved++
	}
	return moved
}

// tryCollect asks the plugin whether a droppable at pos should be collected
// and, if so, collects the first uncollected match. No match is not an
// error.
func (g *Game) tryCollect(pos Position) {
	if !g.plugin.ShouldCollectDroppable(pos, g) {
		return
	}
	for i := range g.droppables {
		d := &g.droppables[i]
		if d.Collected() || d.Position() != pos {
			continue
		}
		d.Collect()
		g.plugin.OnDroppableCollected(pos, g)
		return
	}
}

// finishRound freezes the round's score and immediately rearms the board.
// The score pair stays readable after the reset.
func (g *Game) finishRound() {
	elapsed := g.now().Sub(g.startTime)
	g.currentScore = elapsed
	if g.bestScore == 0 || elapsed < g.bestScore {
		g.bestScore = elapsed
	}
	g.rounds++
	g.Reset()
}

// Reset regenerates the droppable batch, clears the round start time and
// returns to Ready. Scores survive and the player keeps its position.
func (g *Game) Reset() {
	g.spawnDroppables()
	g.startTime = time.Time{}
	g.state = StateReady
	g.plugin.OnGameReset(g)
}

// SetPlugin swaps the active rule set. The new plugin starts from clean
// tracking state; board, player and lifecycle state are untouched.
func (g *Game) SetPlugin(p RulePlugin) {
	g.plugin = p
	p.OnGameReset(g)
}

// spawnDroppables builds a fresh batch. Random placement guarantees
// pairwise-distinct cells that avoid the player's current position.
func (g *Game) spawnDroppables() {
	if !g.randomLayout && len(g.fixedLayout) > 0 {
		g.droppables = make([]Droppable, 0, len(g.fixedLayout))
		for _, pos := range g.fixedLayout {
			g.droppables = append(g.droppables, NewDroppable(pos))
		}
		g.droppableCount = len(g.fixedLayout)
		return
	}

	used := map[Position]bool{g.player.Position(): true}
	g.droppables = make([]Droppable, 0, g.droppableCount)
	for len(g.droppables) < g.droppableCount {
		pos := Position{X: g.rng.Intn(GridWidth), Y: g.rng.Intn(GridHeight)}
		if used[pos] {
			continue
		}
		used[pos] = true
		g.droppables = append(g.droppables, NewDroppable(pos))
	}
}

// --- Read-only surface for the presentation and input layers ---

// PlayerPosition returns the player's current cell.
func (g *Game) PlayerPosition() Position {
	return g.player.Position()
}

// Droppables returns a copy of the current batch with collected flags.
func (g *Game) Droppables() []Droppable {
	return append([]Droppable(nil), g.droppables...)
}

// UncollectedDroppableAt reports whether a live droppable sits at pos.
func (g *Game) UncollectedDroppableAt(pos Position) bool {
	for i := range g.droppables {
		if !g.droppables[i].Collected() && g.droppables[i].Position() == pos {
			return true
		}
	}
	return false
}

// CollectedDroppableAt reports whether a collected droppable sits at pos.
func (g *Game) CollectedDroppableAt(pos Position) bool {
	for i := range g.droppables {
		if g.droppables[i].Collected() && g.droppables[i].Position() == pos {
			return true
		}
	}
	return false
}

// RemainingDroppables counts the uncollected droppables. Recomputed on
// demand, never cached.
func (g *Game) RemainingDroppables() int {
	n := 0
	for i := range g.droppables {
		if !g.droppables[i].Collected() {
			n++
		}
	}
	return n
}

// DroppableCount returns the configured batch size.
func (g *Game) DroppableCount() int {
	return g.droppableCount
}

// State returns the current lifecycle phase.
func (g *Game) State() State {
	return g.state
}

// StartedAt returns when the current round started; zero when not started.
func (g *Game) StartedAt() time.Time {
	return g.startTime
}

// CurrentScore returns the elapsed time of the most recently completed
// round; zero before any round completes.
func (g *Game) CurrentScore() time.Duration {
	return g.currentScore
}

// BestScore returns the fastest completed round; zero before any round
// completes.
func (g *Game) BestScore() time.Duration {
	return g.bestScore
}

// RoundsCompleted returns how many rounds have been won on this instance.
func (g *Game) RoundsCompleted() int {
	return g.rounds
}

// Plugin returns the active rule set, for CellVisualState queries. Callers
// must not type-inspect the concrete variant.
func (g *Game) Plugin() RulePlugin {
	return g.plugin
}

// SetDroppableCount changes the random-layout batch size. Takes effect on
// the next reset.
func (g *Game) SetDroppableCount(n int) {
	if n <= 0 {
		return
	}
	if n >= GridWidth*GridHeight {
		n = GridWidth*GridHeight - 1
	}
	g.droppableCount = n
}

// SetRandomLayout switches between random and fixed placement. Takes effect
// on the next reset.
func (g *Game) SetRandomLayout(random bool) {
	g.randomLayout = random
	if !random && len(g.fixedLayout) == 0 {
		g.fixedLayout = DefaultFixedLayout()
	}
}

// RandomLayout reports whether droppables are placed randomly.
func (g *Game) RandomLayout() bool {
	return g.randomLayout
}
