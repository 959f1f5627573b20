package system

import (
	"math"
	"testing"

	"station-cat/internal/component"
)

func TestLaserMovesAlongAngle(t *testing.T) {
	w, _, _ := newTestWorld()
	s := NewLaserSystem(w)
	l := &component.Laser{X: 100, Y: 100, Angle: math.Pi / 2, Speed: 25, Active: true}
	w.Lasers = append(w.Lasers, l)

	s.Update()

	if math.Abs(l.X-100) > 1e-9 || math.Abs(l.Y-125) > 1e-9 {
		t.Fatalf("position: (%f, %f) want (100, 125)", l.X, l.Y)
	}
}

func TestLaserCulledOffscreenAndInactive(t *testing.T) {
	w, _, _ := newTestWorld()
	s := NewLaserSystem(w)
	w.Lasers = append(w.Lasers,
		&component.Laser{X: w.Width - 10, Y: 100, Angle: 0, Speed: 25, Active: true},
		&component.Laser{X: 300, Y: 300, Angle: 0, Speed: 25, Active: false},
		&component.Laser{X: 300, Y: 300, Angle: 0, Speed: 25, Active: true},
	)

	s.Update()

	if len(w.Lasers) != 1 || w.Lasers[0].X != 325 {
		t.Fatalf("lasers after update: %d", len(w.Lasers))
	}
}
