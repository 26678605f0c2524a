package game

// Player holds the single movable position on the board.
// The position only ever changes through TryMove.
type Player struct {
	pos Position
}

// NewPlayer creates a player at the given starting position.
func NewPlayer(start Position) *Player {
	return &Player{pos: start}
}

// Position returns the player's current position.
func (p *Player) Position() Position {
	return p.pos
}

// TryMove shifts the player one cell in the given direction. The move is
// committed only if the target cell is on the board; out-of-bounds attempts
// leave the position unchanged and return false.
func (p *Player) TryMove(d Direction) bool {
	next := p.pos.Move(d)
	if !next.IsValid() {
		return false
	}
	p.pos = next
	return true
}
