package system

import (
	"testing"

	"station-cat/internal/component"
	"station-cat/internal/utils"
)

func TestDecay(t *testing.T) {
	w, _, _ := newTestWorld()
	s := NewVisualEffectSystem(w, utils.NewPRNGService(1), &fakeDeferrer{})
	w.Cosmetics.Shake = 15
	w.Cosmetics.Flash = 0.05

	s.Decay()
	if w.Cosmetics.Shake != 13.5 {
		t.Fatalf("shake: got=%f want=13.5", w.Cosmetics.Shake)
	}
	s.Decay()
	if w.Cosmetics.Flash != 0 {
		t.Fatalf("flash must clamp at zero, got %f", w.Cosmetics.Flash)
	}

	w.Cosmetics.Shake = 0.011
	s.Decay()
	if w.Cosmetics.Shake != 0 {
		t.Fatalf("shake must floor to zero, got %f", w.Cosmetics.Shake)
	}
}

func TestBlinkHoldsAndReschedules(t *testing.T) {
	w, _, _ := newTestWorld()
	d := &fakeDeferrer{now: 1}
	s := NewVisualEffectSystem(w, utils.NewPRNGService(1), d)

	s.UpdateTimers(1)
	if !w.Cosmetics.Blinking {
		t.Fatalf("blink must start once its time has come")
	}
	s.UpdateTimers(1.05)
	d.advance(1.1)
	if !w.Cosmetics.Blinking {
		t.Fatalf("blink released before hold elapsed")
	}

	d.advance(1.2)
	if w.Cosmetics.Blinking {
		t.Fatalf("blink not released after hold")
	}
	next := w.Cosmetics.NextBlink
	if next < 1.15+3 || next >= 1.15+7 {
		t.Fatalf("next blink out of window: %f", next)
	}
}

func TestTwitchOneEarAtATime(t *testing.T) {
	w, _, _ := newTestWorld()
	d := &fakeDeferrer{now: 1}
	s := NewVisualEffectSystem(w, utils.NewPRNGService(2), d)

	s.UpdateTimers(1)
	side := w.Cosmetics.TwitchSide
	if side != component.TwitchLeft && side != component.TwitchRight {
		t.Fatalf("twitch side: %d", side)
	}
	if w.Cosmetics.Twitching(1) == w.Cosmetics.Twitching(-1) {
		t.Fatalf("exactly one ear must twitch")
	}

	s.UpdateTimers(1.1)
	if w.Cosmetics.TwitchSide != side {
		t.Fatalf("side changed during hold")
	}

	d.advance(1.25)
	if w.Cosmetics.TwitchSide != component.TwitchNone {
		t.Fatalf("twitch not released")
	}
	if next := w.Cosmetics.NextTwitch; next < 1.2+2 || next >= 1.2+5 {
		t.Fatalf("next twitch out of window: %f", next)
	}
}
