// internal/system/fire.go
package system

import (
	"station-cat/internal/component"
	"station-cat/internal/config"
	"station-cat/internal/entity"
	"station-cat/internal/event"
	"station-cat/internal/utils"
)

// FireSystem ведёт последовательность выстрела: заряд, затем три залпа
// по два лазера. Каждый залп целится в прицел на момент залпа.
type FireSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	deferrer        Deferrer
}

func NewFireSystem(world *entity.World, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, deferrer Deferrer) *FireSystem {
	return &FireSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		deferrer:        deferrer,
	}
}

// Fire начинает заряд. Возвращает false, если команда проигнорирована:
// кот уже заряжается или стреляет, либо сессия не идёт.
func (s *FireSystem) Fire() bool {
	c := s.world.Cosmetics
	if c.Charging || c.Firing || !s.world.Session.Playing() {
		return false
	}
	c.Charging = true
	s.deferrer.Defer(config.ChargeDelay, func(float64) {
		c.Charging = false
		c.Firing = true
		s.eventDispatcher.Dispatch(event.Event{Type: event.BurstStarted})
		for i := 0; i < config.VolleyCount; i++ {
			last := i == config.VolleyCount-1
			s.deferrer.Defer(float64(i)*config.VolleyInterval, func(float64) {
				s.volley()
				if last {
					c.Firing = false
				}
			})
		}
	})
	return true
}

// volley выпускает по лазеру из каждого глаза в текущую точку прицела.
func (s *FireSystem) volley() {
	target := s.world.Aim
	angle := s.world.Player.Eye().AngleTo(target)
	for _, m := range s.world.Player.Muzzles() {
		s.world.Lasers = append(s.world.Lasers, &component.Laser{
			Start:  m,
			Target: target,
			X:      m.X,
			Y:      m.Y,
			Angle:  angle + s.rng.Centered(config.LaserJitter),
			Speed:  config.LaserSpeed,
			Active: true,
		})
	}
}
