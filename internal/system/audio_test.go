package system

import (
	"testing"

	"station-cat/internal/event"
)

type countingCues struct {
	fire, impact int
	panicOnFire  bool
}

func (c *countingCues) PlayFire() {
	c.fire++
	if c.panicOnFire {
		panic("device gone")
	}
}

func (c *countingCues) PlayImpact() { c.impact++ }

func TestAudioCuesFollowEvents(t *testing.T) {
	d := event.NewDispatcher()
	cues := &countingCues{}
	NewAudioSystem(cues, d)

	d.Dispatch(event.Event{Type: event.BurstStarted})
	d.Dispatch(event.Event{Type: event.EnemyDestroyed})
	d.Dispatch(event.Event{Type: event.BossDefeated})
	d.Dispatch(event.Event{Type: event.PlayerDamaged})

	if cues.fire != 1 || cues.impact != 3 {
		t.Fatalf("cues: fire=%d impact=%d want 1 and 3", cues.fire, cues.impact)
	}
}

func TestAudioPanicDoesNotEscape(t *testing.T) {
	d := event.NewDispatcher()
	cues := &countingCues{panicOnFire: true}
	NewAudioSystem(cues, d)

	d.Dispatch(event.Event{Type: event.BurstStarted})
	if cues.fire != 1 {
		t.Fatalf("cue not attempted")
	}
}
