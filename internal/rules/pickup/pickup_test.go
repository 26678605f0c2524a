package pickup

import (
	"testing"

	"github.com/vovakirdan/tui-harvest/internal/game"
)

func newGameWith(layout ...game.Position) (*game.Game, *Rules) {
	r := New()
	g := game.New(r, game.Config{FixedLayout: layout, Seed: 1})
	return g, r
}

func TestCollectOnContact(t *testing.T) {
	g, _ := newGameWith(game.Position{X: 1, Y: 0})
	g.Start()

	if !g.MovePlayer(game.DirRight) {
		t.Fatal("MovePlayer(Right) should succeed")
	}

	// Moving from (0,0) onto (1,0) collects the droppable there. The board
	// is now empty, so the same call completed the round and reset.
	if g.State() != game.StateReady {
		t.Errorf("State() = %v, expected ready after collecting the last droppable", g.State())
	}
	if g.RoundsCompleted() != 1 {
		t.Errorf("RoundsCompleted() = %d, expected 1", g.RoundsCompleted())
	}
	if g.CurrentScore() < 0 {
		t.Errorf("CurrentScore() = %v, expected >= 0", g.CurrentScore())
	}
	if g.BestScore() > g.CurrentScore() {
		t.Error("BestScore must not exceed CurrentScore")
	}
}

func TestCollectDecrementsRemaining(t *testing.T) {
	g, _ := newGameWith(game.Position{X: 1, Y: 0}, game.Position{X: 9, Y: 9})
	g.Start()

	before := g.RemainingDroppables()
	g.MovePlayer(game.DirRight)

	if g.RemainingDroppables() != before-1 {
		t.Errorf("RemainingDroppables() = %d, expected %d", g.RemainingDroppables(), before-1)
	}
}

func TestCompleteOnlyWhenBoardEmpty(t *testing.T) {
	g, r := newGameWith(game.Position{X: 1, Y: 0}, game.Position{X: 2, Y: 0})
	g.Start()

	g.MovePlayer(game.DirRight) // collects (1,0)
	if r.IsGameComplete(g) {
		t.Error("Round must not complete with droppables remaining")
	}

	g.MovePlayer(game.DirRight) // collects (2,0), completes
	if g.RoundsCompleted() != 1 {
		t.Errorf("RoundsCompleted() = %d, expected 1", g.RoundsCompleted())
	}
	// At the instant of completion the board was empty (fresh batch after)
	if g.RemainingDroppables() != g.DroppableCount() {
		t.Errorf("Fresh batch expected after completion, remaining = %d", g.RemainingDroppables())
	}
}

func TestTrailTracking(t *testing.T) {
	g, r := newGameWith(game.Position{X: 9, Y: 9})
	r.SetTrailEnabled(true)
	g.Start()

	g.MovePlayer(game.DirRight)
	g.MovePlayer(game.DirDown)

	if v := r.CellVisualState(game.Position{X: 1, Y: 0}, g); !v.Visited {
		t.Error("Visited cell should be part of the trail")
	}
	if v := r.CellVisualState(game.Position{X: 1, Y: 1}, g); !v.Visited {
		t.Error("Visited cell should be part of the trail")
	}
	if v := r.CellVisualState(game.Position{X: 5, Y: 5}, g); v.Visited {
		t.Error("Unvisited cell should not be part of the trail")
	}

	// Disabling the trail drops it
	r.SetTrailEnabled(false)
	if v := r.CellVisualState(game.Position{X: 1, Y: 0}, g); v.Visited {
		t.Error("Trail should be dropped when disabled")
	}
}

func TestTrailOffByDefault(t *testing.T) {
	g, r := newGameWith(game.Position{X: 9, Y: 9})
	g.Start()

	g.MovePlayer(game.DirRight)

	if r.TrailEnabled() {
		t.Error("Trail should be off by default")
	}
	if v := r.CellVisualState(game.Position{X: 1, Y: 0}, g); v.Visited {
		t.Error("No trail should be recorded while disabled")
	}
}

func TestTrailClearedOnReset(t *testing.T) {
	g, r := newGameWith(game.Position{X: 9, Y: 9})
	r.SetTrailEnabled(true)
	g.Start()
	g.MovePlayer(game.DirRight)

	g.Reset()

	if v := r.CellVisualState(game.Position{X: 1, Y: 0}, g); v.Visited {
		t.Error("Reset must clear the trail")
	}
}

func TestToggleTrail(t *testing.T) {
	_, r := newGameWith(game.Position{X: 9, Y: 9})

	if on := r.ToggleTrail(); !on {
		t.Error("First toggle should enable the trail")
	}
	if on := r.ToggleTrail(); on {
		t.Error("Second toggle should disable the trail")
	}
}
