// internal/system/combat.go
package system

import (
	"station-cat/internal/component"
	"station-cat/internal/entity"
	"station-cat/internal/event"
)

// CombatSystem — единственное место, где меняются здоровье и счёт сессии.
type CombatSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(world *entity.World, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
	}
}

// ApplyDamage отнимает здоровье у кота и запускает тряску и вспышку.
// Падение до нуля переводит сессию в GameOver ровно один раз.
func (s *CombatSystem) ApplyDamage(amount int) {
	sess := s.world.Session
	if sess.Phase != component.Playing || amount <= 0 {
		return
	}

	s.world.Cosmetics.TriggerDamage()
	sess.Health -= amount
	if sess.Health > 0 {
		s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDamaged, Data: sess.Health})
		return
	}

	sess.Health = 0
	sess.Phase = component.GameOver
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: sess.Score})
}

// AddScore начисляет очки. Отрицательные значения игнорируются: счёт только растёт.
func (s *CombatSystem) AddScore(points int) {
	if points <= 0 || s.world.Session.Phase != component.Playing {
		return
	}
	s.world.Session.Score += points
}
