// internal/system/audio.go
package system

import (
	"log"

	"station-cat/internal/event"
	"station-cat/internal/interfaces"
)

// AudioSystem переводит игровые события в звуковые сигналы.
// Сбой воспроизведения не должен доходить до игрового цикла.
type AudioSystem struct {
	cues interfaces.AudioCue
}

func NewAudioSystem(cues interfaces.AudioCue, eventDispatcher *event.Dispatcher) *AudioSystem {
	s := &AudioSystem{cues: cues}
	eventDispatcher.Subscribe(event.BurstStarted, s)
	eventDispatcher.Subscribe(event.EnemyDestroyed, s)
	eventDispatcher.Subscribe(event.BossDefeated, s)
	return s
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *AudioSystem) OnEvent(e event.Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("audio cue for %s panicked: %v", e.Type, r)
		}
	}()

	switch e.Type {
	case event.BurstStarted:
		s.cues.PlayFire()
	case event.EnemyDestroyed:
		s.cues.PlayImpact()
	case event.BossDefeated:
		s.cues.PlayImpact()
		s.cues.PlayImpact()
	}
}
