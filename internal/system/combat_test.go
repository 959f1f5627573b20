package system

import (
	"testing"

	"station-cat/internal/component"
	"station-cat/internal/event"
)

func TestApplyDamageTriggersFeedback(t *testing.T) {
	w, d, log := newTestWorld()
	s := NewCombatSystem(w, d)

	s.ApplyDamage(15)

	if w.Session.Health != 85 {
		t.Fatalf("health: got=%d want=85", w.Session.Health)
	}
	if w.Cosmetics.Shake != 15 || w.Cosmetics.Flash != 0.6 {
		t.Fatalf("feedback: shake=%f flash=%f", w.Cosmetics.Shake, w.Cosmetics.Flash)
	}
	if log.count(event.PlayerDamaged) != 1 {
		t.Fatalf("expected PlayerDamaged event")
	}
}

func TestLethalDamageClampsAndEndsOnce(t *testing.T) {
	w, d, log := newTestWorld()
	s := NewCombatSystem(w, d)
	w.Session.Health = 3
	w.Session.Score = 420

	s.ApplyDamage(5)
	s.ApplyDamage(15)

	if w.Session.Health != 0 {
		t.Fatalf("health: got=%d want=0", w.Session.Health)
	}
	if w.Session.Phase != component.GameOver {
		t.Fatalf("phase: got=%v want=GameOver", w.Session.Phase)
	}
	if n := log.count(event.GameOver); n != 1 {
		t.Fatalf("GameOver events: got=%d want=1", n)
	}
	if score, _ := log.events[len(log.events)-1].Data.(int); score != 420 {
		t.Fatalf("GameOver payload: got=%v want=420", log.events[len(log.events)-1].Data)
	}
}

func TestAddScoreOnlyIncreases(t *testing.T) {
	w, d, _ := newTestWorld()
	s := NewCombatSystem(w, d)

	s.AddScore(10)
	s.AddScore(-50)
	s.AddScore(0)
	if w.Session.Score != 10 {
		t.Fatalf("score: got=%d want=10", w.Session.Score)
	}

	w.Session.Phase = component.GameOver
	s.AddScore(10)
	if w.Session.Score != 10 {
		t.Fatalf("score changed after game over: %d", w.Session.Score)
	}
}
