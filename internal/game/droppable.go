package game

// Droppable is a collectible fixed at a board cell. The collected flag is
// one-way; there is no way to un-collect, a fresh batch replaces the old
// one on reset.
type Droppable struct {
	pos       Position
	collected bool
}

// NewDroppable creates an uncollected droppable at the given position.
func NewDroppable(pos Position) Droppable {
	return Droppable{pos: pos}
}

// Position returns the cell the droppable sits on.
func (d Droppable) Position() Position {
	return d.pos
}

// Collected reports whether the droppable has been picked up.
func (d Droppable) Collected() bool {
	return d.collected
}

// Collect marks the droppable as collected. Idempotent.
func (d *Droppable) Collect() {
	d.collected = true
}
