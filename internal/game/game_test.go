package game

import (
	"testing"
	"time"
)

// recordingPlugin collects everything on contact, completes on an empty
// board, and records the callback sequence for pipeline assertions.
type recordingPlugin struct {
	calls   []string
	collect bool
}

func newRecordingPlugin() *recordingPlugin {
	return &recordingPlugin{collect: true}
}

func (p *recordingPlugin) OnGameStart(*Game) { p.calls = append(p.calls, "start") }
func (p *recordingPlugin) OnGameReset(*Game) { p.calls = append(p.calls, "reset") }
func (p *recordingPlugin) OnPlayerMoved(_, _ Position, _ *Game) {
	p.calls = append(p.calls, "moved")
}
func (p *recordingPlugin) ShouldCollectDroppable(_ Position, _ *Game) bool {
	p.calls = append(p.calls, "should")
	return p.collect
}
func (p *recordingPlugin) OnDroppableCollected(_ Position, _ *Game) {
	p.calls = append(p.calls, "collected")
}
func (p *recordingPlugin) IsGameComplete(g *Game) bool {
	p.calls = append(p.calls, "complete?")
	return g.RemainingDroppables() == 0
}
func (p *recordingPlugin) CellVisualState(Position, *Game) CellVisual {
	return CellVisual{}
}

// fixedClock replaces the game's wall clock so scoring is deterministic.
func fixedClock(g *Game, times ...time.Time) {
	i := 0
	g.now = func() time.Time {
		t := times[i]
		if i < len(times)-1 {
			i++
		}
		return t
	}
}

func newFixedGame(plugin RulePlugin, layout ...Position) *Game {
	return New(plugin, Config{FixedLayout: layout, Seed: 1})
}

func TestNewGameIsReady(t *testing.T) {
	g := newFixedGame(newRecordingPlugin(), Position{X: 1, Y: 0})

	if g.State() != StateReady {
		t.Errorf("State() = %v, expected ready", g.State())
	}
	if g.PlayerPosition() != (Position{X: 0, Y: 0}) {
		t.Errorf("Player should start at the origin, got %+v", g.PlayerPosition())
	}
	if !g.StartedAt().IsZero() {
		t.Error("StartedAt() should be zero before Start")
	}
	if g.RemainingDroppables() != 1 {
		t.Errorf("RemainingDroppables() = %d, expected 1", g.RemainingDroppables())
	}
}

func TestStartOnlyFromReady(t *testing.T) {
	g := newFixedGame(newRecordingPlugin(), Position{X: 5, Y: 5})

	g.Start()
	if g.State() != StatePlaying {
		t.Fatalf("State() = %v, expected playing", g.State())
	}
	started := g.StartedAt()
	if started.IsZero() {
		t.Error("StartedAt() should be set after Start")
	}

	// Redundant start is a silent no-op
	g.Start()
	if g.StartedAt() != started {
		t.Error("Start() while playing should not touch the start time")
	}
}

func TestMoveBoundary(t *testing.T) {
	g := newFixedGame(newRecordingPlugin(), Position{X: 5, Y: 5})

	// Boundary hits fail regardless of state
	if g.MovePlayer(DirUp) {
		t.Error("MovePlayer(Up) from (0,0) should fail")
	}
	if g.PlayerPosition() != (Position{X: 0, Y: 0}) {
		t.Errorf("Failed move changed position to %+v", g.PlayerPosition())
	}

	g.Start()
	if g.MovePlayer(DirLeft) {
		t.Error("MovePlayer(Left) from (0,0) should fail while playing too")
	}
}

func TestMoveOutsidePlayingSkipsPipeline(t *testing.T) {
	plugin := newRecordingPlugin()
	g := newFixedGame(plugin, Position{X: 1, Y: 0})
	plugin.calls = nil

	// Ready state: movement succeeds but no rule pipeline runs
	if !g.MovePlayer(DirRight) {
		t.Fatal("MovePlayer(Right) should succeed")
	}
	if len(plugin.calls) != 0 {
		t.Errorf("No plugin callbacks expected outside playing, got %v", plugin.calls)
	}
	// The droppable at (1,0) must not have been collected
	if g.RemainingDroppables() != 1 {
		t.Errorf("RemainingDroppables() = %d, expected 1", g.RemainingDroppables())
	}
}

func TestCollectionPipeline(t *testing.T) {
	plugin := newRecordingPlugin()
	g := newFixedGame(plugin, Position{X: 1, Y: 0}, Position{X: 9, Y: 9})
	g.Start()
	plugin.calls = nil

	if !g.MovePlayer(DirRight) {
		t.Fatal("MovePlayer(Right) should succeed")
	}

	want := []string{"moved", "should", "collected", "complete?"}
	if len(plugin.calls) != len(want) {
		t.Fatalf("calls = %v, expected %v", plugin.calls, want)
	}
	for i := range want {
		if plugin.calls[i] != want[i] {
			t.Fatalf("calls = %v, expected %v", plugin.calls, want)
		}
	}

	if g.RemainingDroppables() != 1 {
		t.Errorf("RemainingDroppables() = %d, expected 1", g.RemainingDroppables())
	}
}

func TestCollectionDeclined(t *testing.T) {
	plugin := newRecordingPlugin()
	plugin.collect = false
	g := newFixedGame(plugin, Position{X: 1, Y: 0})
	g.Start()

	g.MovePlayer(DirRight)

	if g.RemainingDroppables() != 1 {
		t.Error("Droppable should not be collected when the plugin declines")
	}
}

func TestEmptyCellCollectionIsNoop(t *testing.T) {
	plugin := newRecordingPlugin()
	g := newFixedGame(plugin, Position{X: 9, Y: 9})
	g.Start()
	plugin.calls = nil

	// Move onto an empty cell: collection is attempted, nothing matches
	g.MovePlayer(DirRight)

	for _, c := range plugin.calls {
		if c == "collected" {
			t.Error("OnDroppableCollected must not run when no droppable matches")
		}
	}
}

func TestRoundCompletionScoresAndResets(t *testing.T) {
	plugin := newRecordingPlugin()
	g := newFixedGame(plugin, Position{X: 1, Y: 0})

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	fixedClock(g, base, base.Add(7*time.Second))

	g.Start()
	if !g.MovePlayer(DirRight) {
		t.Fatal("MovePlayer(Right) should succeed")
	}

	// The same call that collected the last droppable finalized the round
	if g.State() != StateReady {
		t.Errorf("State() = %v, expected ready after completion", g.State())
	}
	if g.CurrentScore() != 7*time.Second {
		t.Errorf("CurrentScore() = %v, expected 7s", g.CurrentScore())
	}
	if g.BestScore() != 7*time.Second {
		t.Errorf("BestScore() = %v, expected 7s", g.BestScore())
	}
	if g.RoundsCompleted() != 1 {
		t.Errorf("RoundsCompleted() = %d, expected 1", g.RoundsCompleted())
	}
	// Fresh batch, cleared timestamps, player stays put
	if g.RemainingDroppables() != g.DroppableCount() {
		t.Errorf("RemainingDroppables() = %d, expected %d", g.RemainingDroppables(), g.DroppableCount())
	}
	if !g.StartedAt().IsZero() {
		t.Error("Reset should clear the round start time")
	}
	if g.PlayerPosition() != (Position{X: 1, Y: 0}) {
		t.Errorf("Player should keep its position across reset, got %+v", g.PlayerPosition())
	}
}

func TestBestScoreIsMinimum(t *testing.T) {
	plugin := newRecordingPlugin()
	g := newFixedGame(plugin, Position{X: 1, Y: 0})

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// First round: 10s
	fixedClock(g, base, base.Add(10*time.Second))
	g.Start()
	g.MovePlayer(DirRight)

	// Second round: 4s (player now at (1,0), droppable respawned there is
	// not possible with a fixed layout containing only (1,0)... move off
	// and back)
	fixedClock(g, base, base.Add(4*time.Second))
	g.Start()
	g.MovePlayer(DirLeft)
	g.MovePlayer(DirRight)

	if g.CurrentScore() != 4*time.Second {
		t.Errorf("CurrentScore() = %v, expected 4s", g.CurrentScore())
	}
	if g.BestScore() != 4*time.Second {
		t.Errorf("BestScore() = %v, expected 4s", g.BestScore())
	}

	// Third round: 30s, best must survive
	fixedClock(g, base, base.Add(30*time.Second))
	g.Start()
	g.MovePlayer(DirLeft)
	g.MovePlayer(DirRight)

	if g.CurrentScore() != 30*time.Second {
		t.Errorf("CurrentScore() = %v, expected 30s", g.CurrentScore())
	}
	if g.BestScore() != 4*time.Second {
		t.Errorf("BestScore() = %v, expected to stay at 4s", g.BestScore())
	}
	if g.BestScore() > g.CurrentScore() {
		t.Error("BestScore must never exceed CurrentScore after a round")
	}
}

func TestRandomLayoutDistinctAndOffPlayer(t *testing.T) {
	plugin := newRecordingPlugin()
	g := New(plugin, Config{DroppableCount: 20, RandomLayout: true, Seed: 12345})

	for i := 0; i < 50; i++ {
		g.Reset()

		seen := make(map[Position]bool)
		for _, d := range g.Droppables() {
			pos := d.Position()
			if !pos.IsValid() {
				t.Fatalf("Droppable spawned off the board at %+v", pos)
			}
			if seen[pos] {
				t.Fatalf("Duplicate droppable position %+v", pos)
			}
			seen[pos] = true
			if pos == g.PlayerPosition() {
				t.Fatalf("Droppable spawned on the player at %+v", pos)
			}
		}
		if len(seen) != 20 {
			t.Fatalf("Expected 20 droppables, got %d", len(seen))
		}
	}
}

func TestDeterministicLayouts(t *testing.T) {
	// Two games with the same seed produce identical boards round after round
	g1 := New(newRecordingPlugin(), Config{RandomLayout: true, Seed: 99})
	g2 := New(newRecordingPlugin(), Config{RandomLayout: true, Seed: 99})

	for i := 0; i < 10; i++ {
		s1, s2 := g1.Snapshot(), g2.Snapshot()
		if len(s1.Droppables) != len(s2.Droppables) {
			t.Fatalf("Round %d: batch sizes differ", i)
		}
		for j := range s1.Droppables {
			if s1.Droppables[j] != s2.Droppables[j] {
				t.Fatalf("Round %d: layouts diverge at %d: %+v vs %+v",
					i, j, s1.Droppables[j], s2.Droppables[j])
			}
		}
		g1.Reset()
		g2.Reset()
	}
}

func TestSetPluginResetsOnlyPluginState(t *testing.T) {
	g := newFixedGame(newRecordingPlugin(), Position{X: 1, Y: 0}, Position{X: 2, Y: 0})
	g.Start()
	g.MovePlayer(DirRight) // collect (1,0)

	replacement := newRecordingPlugin()
	g.SetPlugin(replacement)

	if len(replacement.calls) != 1 || replacement.calls[0] != "reset" {
		t.Errorf("New plugin should receive exactly OnGameReset, got %v", replacement.calls)
	}
	if g.State() != StatePlaying {
		t.Error("SetPlugin must not change the lifecycle state")
	}
	if g.RemainingDroppables() != 1 {
		t.Error("SetPlugin must not regenerate droppables")
	}
	if g.PlayerPosition() != (Position{X: 1, Y: 0}) {
		t.Error("SetPlugin must not move the player")
	}
	if g.Plugin() != RulePlugin(replacement) {
		t.Error("Plugin() should return the replacement")
	}
}

func TestMovePlayerMultipleStopsAtBoundary(t *testing.T) {
	g := newFixedGame(newRecordingPlugin(), Position{X: 9, Y: 9})

	moved := g.MovePlayerMultiple(DirRight, 100)
	if moved != GridWidth-1 {
		t.Errorf("MovePlayerMultiple(Right, 100) = %d, expected %d", moved, GridWidth-1)
	}
	if g.PlayerPosition() != (Position{X: 9, Y: 0}) {
		t.Errorf("Player should stop at the right edge, got %+v", g.PlayerPosition())
	}

	// Already at the edge: zero moves
	if moved := g.MovePlayerMultiple(DirRight, 5); moved != 0 {
		t.Errorf("MovePlayerMultiple at the edge = %d, expected 0", moved)
	}
}

func TestMovePlayerMultipleIntermediateEffects(t *testing.T) {
	// The batch is not atomic: a completion mid-batch resets the board and
	// later moves act on the fresh round.
	plugin := newRecordingPlugin()
	g := newFixedGame(plugin, Position{X: 2, Y: 0})
	fixedClock(g, time.Now())
	g.Start()

	g.MovePlayerMultiple(DirRight, 4)

	if g.RoundsCompleted() != 1 {
		t.Errorf("RoundsCompleted() = %d, expected 1", g.RoundsCompleted())
	}
	if g.PlayerPosition() != (Position{X: 4, Y: 0}) {
		t.Errorf("Player should have kept moving after the reset, got %+v", g.PlayerPosition())
	}
}

func TestUncollectedDroppableAt(t *testing.T) {
	g := newFixedGame(newRecordingPlugin(), Position{X: 1, Y: 0})

	if !g.UncollectedDroppableAt(Position{X: 1, Y: 0}) {
		t.Error("Expected a live droppable at (1,0)")
	}
	if g.UncollectedDroppableAt(Position{X: 5, Y: 5}) {
		t.Error("No droppable expected at (5,5)")
	}
	if g.CollectedDroppableAt(Position{X: 1, Y: 0}) {
		t.Error("Droppable at (1,0) is not collected yet")
	}
}

func TestConfigToggles(t *testing.T) {
	g := New(newRecordingPlugin(), Config{RandomLayout: true, Seed: 7})

	g.SetDroppableCount(8)
	g.Reset()
	if g.RemainingDroppables() != 8 {
		t.Errorf("RemainingDroppables() = %d, expected 8 after SetDroppableCount", g.RemainingDroppables())
	}

	g.SetRandomLayout(false)
	g.Reset()
	if g.RandomLayout() {
		t.Error("RandomLayout() should be false")
	}
	if g.RemainingDroppables() != len(DefaultFixedLayout()) {
		t.Errorf("Fixed layout should use the default arrangement, got %d droppables", g.RemainingDroppables())
	}
}
