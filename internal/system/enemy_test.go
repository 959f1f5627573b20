package system

import (
	"testing"

	"station-cat/internal/component"
	"station-cat/internal/defs"
	"station-cat/internal/event"
)

func TestEnemyContactDamagesCat(t *testing.T) {
	w, d, _ := newTestWorld()
	s := NewEnemySystem(w, d, NewCombatSystem(w, d))
	cat := w.Player.Position
	w.Enemies = append(w.Enemies, &component.Enemy{
		X: cat.X + 30, Y: cat.Y, Radius: 20, Speed: 1, Health: 1, Kind: defs.EnemyHound,
	})

	s.Update()

	if len(w.Enemies) != 0 {
		t.Fatalf("enemy must die on contact")
	}
	if w.Session.Health != 95 {
		t.Fatalf("health: got=%d want=95", w.Session.Health)
	}
	if w.Cosmetics.Shake != 15 || w.Cosmetics.Flash != 0.6 {
		t.Fatalf("feedback: shake=%f flash=%f", w.Cosmetics.Shake, w.Cosmetics.Flash)
	}
	if w.Session.Score != 0 {
		t.Fatalf("contact must not score, got %d", w.Session.Score)
	}
}

func TestLaserKillsEnemy(t *testing.T) {
	w, d, log := newTestWorld()
	s := NewEnemySystem(w, d, NewCombatSystem(w, d))
	w.Enemies = append(w.Enemies, &component.Enemy{
		X: 800, Y: 400, Radius: 30, Speed: 0, Health: 1, Kind: defs.EnemyYarn,
	})
	hit := &component.Laser{X: 810, Y: 400, Active: true}
	spare := &component.Laser{X: 805, Y: 400, Active: true}
	w.Lasers = append(w.Lasers, hit, spare)

	s.Update()

	if len(w.Enemies) != 0 {
		t.Fatalf("enemy must be removed same tick")
	}
	if w.Session.Score != 10 {
		t.Fatalf("score: got=%d want=10", w.Session.Score)
	}
	if hit.Active || !spare.Active {
		t.Fatalf("exactly one laser must be consumed")
	}
	if w.Session.Health != 100 {
		t.Fatalf("killed enemy must not damage, health=%d", w.Session.Health)
	}
	if log.count(event.EnemyDestroyed) != 1 {
		t.Fatalf("EnemyDestroyed events: %d", log.count(event.EnemyDestroyed))
	}
}

func TestEnemySteersTowardCat(t *testing.T) {
	w, d, _ := newTestWorld()
	s := NewEnemySystem(w, d, NewCombatSystem(w, d))
	e := &component.Enemy{X: 1000, Y: 120, Radius: 15, Speed: 2, Health: 1}
	w.Enemies = append(w.Enemies, e)

	s.Update()

	if e.X != 998 || e.Y != 120 {
		t.Fatalf("position: (%f, %f) want (998, 120)", e.X, e.Y)
	}
}

func TestInactiveLaserIgnored(t *testing.T) {
	w, d, _ := newTestWorld()
	s := NewEnemySystem(w, d, NewCombatSystem(w, d))
	w.Enemies = append(w.Enemies, &component.Enemy{X: 800, Y: 400, Radius: 30, Health: 1})
	w.Lasers = append(w.Lasers, &component.Laser{X: 800, Y: 400, Active: false})

	s.Update()

	if len(w.Enemies) != 1 || w.Session.Score != 0 {
		t.Fatalf("inactive laser must not kill")
	}
}
