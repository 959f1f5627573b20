package system

import (
	"math"
	"testing"

	"station-cat/internal/component"
	"station-cat/internal/config"
	"station-cat/internal/event"
	"station-cat/internal/utils"
)

func TestFireIgnoredWhileCharging(t *testing.T) {
	w, d, _ := newTestWorld()
	def := &fakeDeferrer{}
	s := NewFireSystem(w, d, utils.NewPRNGService(1), def)

	if !s.Fire() {
		t.Fatalf("first fire must be accepted")
	}
	if s.Fire() {
		t.Fatalf("second fire during charge must be ignored")
	}
	if !w.Cosmetics.Charging {
		t.Fatalf("charging flag not set")
	}
	if len(def.tasks) != 1 {
		t.Fatalf("pending tasks: got=%d want=1", len(def.tasks))
	}
}

func TestFireProducesThreeVolleys(t *testing.T) {
	w, d, log := newTestWorld()
	def := &fakeDeferrer{}
	s := NewFireSystem(w, d, utils.NewPRNGService(1), def)
	w.Aim = component.Point{X: 600, Y: 120 - config.LaserMuzzleLift}

	s.Fire()
	def.advance(config.ChargeDelay)
	if w.Cosmetics.Charging || !w.Cosmetics.Firing {
		t.Fatalf("expected firing after charge")
	}
	if len(w.Lasers) != 2 {
		t.Fatalf("first volley: got=%d want=2", len(w.Lasers))
	}
	if s.Fire() {
		t.Fatalf("fire must be ignored while firing")
	}

	w.Aim = component.Point{X: 120, Y: 700}
	def.advance(config.ChargeDelay + config.VolleyInterval + 0.01)
	def.advance(config.ChargeDelay + 2*config.VolleyInterval + 0.01)

	if len(w.Lasers) != 6 {
		t.Fatalf("lasers: got=%d want=6", len(w.Lasers))
	}
	if w.Cosmetics.Firing {
		t.Fatalf("firing flag must clear after the last volley")
	}
	if log.count(event.BurstStarted) != 1 {
		t.Fatalf("BurstStarted events: %d", log.count(event.BurstStarted))
	}

	for i, l := range w.Lasers {
		want := 0.0
		if i >= 2 {
			want = math.Pi / 2
		}
		if math.Abs(l.Angle-want) > config.LaserJitter/2 {
			t.Fatalf("laser %d angle: got=%f want≈%f", i, l.Angle, want)
		}
		if l.Speed != config.LaserSpeed || !l.Active {
			t.Fatalf("laser %d: %+v", i, *l)
		}
	}
	if w.Lasers[0].X != config.CatX-15 || w.Lasers[1].X != config.CatX+15 {
		t.Fatalf("muzzles: %f %f", w.Lasers[0].X, w.Lasers[1].X)
	}
}

func TestFireIgnoredWhenNotPlaying(t *testing.T) {
	w, d, _ := newTestWorld()
	def := &fakeDeferrer{}
	s := NewFireSystem(w, d, utils.NewPRNGService(1), def)
	w.Session.Phase = component.GameOver

	if s.Fire() || w.Cosmetics.Charging || len(def.tasks) != 0 {
		t.Fatalf("fire accepted outside Playing")
	}
}
