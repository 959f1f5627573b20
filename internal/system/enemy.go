// internal/system/enemy.go
package system

import (
	"math"

	"station-cat/internal/config"
	"station-cat/internal/entity"
	"station-cat/internal/event"
)

// EnemySystem ведёт врагов прямо на кота и разбирает столкновения
// с лазерами и самим котом. Мёртвые враги убираются в том же тике.
type EnemySystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	combat          *CombatSystem
}

func NewEnemySystem(world *entity.World, eventDispatcher *event.Dispatcher, combat *CombatSystem) *EnemySystem {
	return &EnemySystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		combat:          combat,
	}
}

func (s *EnemySystem) Update() {
	cat := s.world.Player.Position
	for _, e := range s.world.Enemies {
		if !e.Alive() {
			continue
		}
		angle := e.Position().AngleTo(cat)
		e.X += math.Cos(angle) * e.Speed
		e.Y += math.Sin(angle) * e.Speed

		for _, l := range s.world.Lasers {
			if !l.Active || l.Position().DistanceTo(e.Position()) >= e.Radius {
				continue
			}
			e.Health = 0
			l.Active = false
			s.combat.AddScore(config.EnemyKillScore)
			s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: e.Kind})
			break
		}
		// сбитый лазером враг до кота уже не долетает
		if !e.Alive() {
			continue
		}

		if e.Position().DistanceTo(cat) < e.Radius+config.EnemyContactReach {
			e.Health = 0
			s.combat.ApplyDamage(config.EnemyContactDamage)
		}
	}

	alive := s.world.Enemies[:0]
	for _, e := range s.world.Enemies {
		if e.Alive() {
			alive = append(alive, e)
		}
	}
	clearTail(s.world.Enemies, len(alive))
	s.world.Enemies = alive
}
