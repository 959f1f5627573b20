package system

import (
	"station-cat/internal/config"
	"station-cat/internal/entity"
	"station-cat/internal/event"
	"station-cat/internal/utils"
)

// fakeDeferrer копит отложенные вызовы и исполняет их при advance.
type fakeDeferrer struct {
	now   float64
	tasks []pendingCall
}

type pendingCall struct {
	due float64
	fn  func(now float64)
}

func (d *fakeDeferrer) Defer(delay float64, fn func(now float64)) {
	d.tasks = append(d.tasks, pendingCall{due: d.now + delay, fn: fn})
}

// advance исполняет по порядку все вызовы со сроком не позже to.
func (d *fakeDeferrer) advance(to float64) {
	for {
		idx := -1
		for i, t := range d.tasks {
			if t.due <= to && (idx < 0 || t.due < d.tasks[idx].due) {
				idx = i
			}
		}
		if idx < 0 {
			d.now = to
			return
		}
		t := d.tasks[idx]
		d.tasks = append(d.tasks[:idx], d.tasks[idx+1:]...)
		d.now = t.due
		t.fn(t.due)
	}
}

type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) {
	l.events = append(l.events, e)
}

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newTestWorld() (*entity.World, *event.Dispatcher, *eventLog) {
	w := entity.NewWorld(config.ScreenWidth, config.ScreenHeight, utils.NewPRNGService(1))
	w.Reset()
	d := event.NewDispatcher()
	log := &eventLog{}
	for _, t := range []event.EventType{
		event.BurstStarted, event.EnemyDestroyed, event.PlayerDamaged,
		event.BossSpawned, event.BossDefeated, event.GameOver,
	} {
		d.Subscribe(t, log)
	}
	return w, d, log
}
