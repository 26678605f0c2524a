// Package game implements the harvest grid engine: a player moving across a
// fixed 10x10 board, collecting droppables under a pluggable rule set.
// It contains pure logic with no external dependencies (especially no Bubble
// Tea) to keep the engine deterministic and testable.
package game

// Board dimensions. Position bounds and the board renderer both rely on
// these; they must change together.
const (
	GridWidth  = 10
	GridHeight = 10
)

// Direction represents a single-cell movement on the board.
// DirNone is the neutral value used for defaults; it is never a valid
// movement input in normal play.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Position is a 2D board coordinate. It is a value type compared
// structurally; translation produces a new value and never mutates.
type Position struct {
	X, Y int
}

// Move returns the position shifted one cell in the given direction.
// Up decreases Y, Down increases it, Left decreases X, Right increases it.
// DirNone (or any unknown value) yields the same position.
func (p Position) Move(d Direction) Position {
	switch d {
	case DirUp:
		return Position{X: p.X, Y: p.Y - 1}
	case DirDown:
		return Position{X: p.X, Y: p.Y + 1}
	case DirLeft:
		return Position{X: p.X - 1, Y: p.Y}
	case DirRight:
		return Position{X: p.X + 1, Y: p.Y}
	default:
		return p
	}
}

// IsValid reports whether the position lies on the board.
func (p Position) IsValid() bool {
	return p.X >= 0 && p.X < GridWidth && p.Y >= 0 && p.Y < GridHeight
}
