package system

import (
	"testing"

	"station-cat/internal/config"
	"station-cat/internal/defs"
	"station-cat/internal/utils"
)

func TestSpawnProducesEdgeEnemies(t *testing.T) {
	w, _, _ := newTestWorld()
	s := NewSpawnSystem(w, utils.NewPRNGService(5))

	for i := 0; i < 2000; i++ {
		s.Update()
	}
	if len(w.Enemies) == 0 {
		t.Fatalf("no enemies after 2000 ticks")
	}
	for _, e := range w.Enemies {
		right := e.X == w.Width+config.EnemySpawnMargin && e.Y >= 0 && e.Y < w.Height
		bottom := e.Y == w.Height+config.EnemySpawnMargin && e.X >= 0 && e.X < w.Width
		if !right && !bottom {
			t.Fatalf("enemy not on an edge: (%f, %f)", e.X, e.Y)
		}
		if e.Radius < 15 || e.Radius >= 40 || e.Speed < 0.8 || e.Speed >= 2.3 || e.Health != 1 {
			t.Fatalf("enemy out of range: %+v", *e)
		}
		if e.Kind != defs.EnemyHound && e.Kind != defs.EnemyYarn {
			t.Fatalf("unknown kind %q", e.Kind)
		}
	}
}

func TestNoSpawnDuringBossPhase(t *testing.T) {
	w, _, _ := newTestWorld()
	s := NewSpawnSystem(w, utils.NewPRNGService(5))
	w.Session.BossPhase = true

	for i := 0; i < 2000; i++ {
		s.Update()
	}
	if len(w.Enemies) != 0 {
		t.Fatalf("spawned %d enemies during boss phase", len(w.Enemies))
	}
}
