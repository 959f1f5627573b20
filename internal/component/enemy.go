package component

import "station-cat/internal/defs"

// Enemy представляет вражескую сущность.
type Enemy struct {
	X, Y   float64
	Radius float64
	Speed  float64
	Health int
	Kind   defs.EnemyKind
}

func (e *Enemy) Position() Point {
	return Point{X: e.X, Y: e.Y}
}

// Alive: враг удаляется в том же тике, когда здоровье падает до нуля.
func (e *Enemy) Alive() bool {
	return e.Health > 0
}
