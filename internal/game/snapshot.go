package game

// Snapshot captures the engine state for determinism testing.
type Snapshot struct {
	State          State
	PlayerX        int
	PlayerY        int
	Remaining      int
	Rounds         int
	CurrentScoreMS int64
	BestScoreMS    int64
	Droppables     []Position // uncollected, in batch order
}

// Snapshot returns the current engine snapshot.
func (g *Game) Snapshot() Snapshot {
	pos := g.player.Position()
	snap := Snapshot{
		State:          g.state,
		PlayerX:        pos.X,
		PlayerY:        pos.Y,
		Remaining:      g.RemainingDroppables(),
		Rounds:         g.rounds,
		CurrentScoreMS: g.currentScore.Milliseconds(),
		BestScoreMS:    g.bestScore.Milliseconds(),
	}
	for i := range g.droppables {
		if !g.droppables[i].Collected() {
			snap.Droppables = append(snap.Droppables, g.droppables[i].Position())
		}
	}
	return snap
}
