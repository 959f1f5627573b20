// internal/system/laser.go
package system

import (
	"math"

	"station-cat/internal/entity"
)

// LaserSystem двигает лазерные импульсы и убирает покинувшие экран.
type LaserSystem struct {
	world *entity.World
}

func NewLaserSystem(world *entity.World) *LaserSystem {
	return &LaserSystem{world: world}
}

func (s *LaserSystem) Update() {
	alive := s.world.Lasers[:0]
	for _, l := range s.world.Lasers {
		if !l.Active {
			continue
		}
		l.X += math.Cos(l.Angle) * l.Speed
		l.Y += math.Sin(l.Angle) * l.Speed
		if !s.world.Contains(l.Position(), 0) {
			l.Active = false
			continue
		}
		alive = append(alive, l)
	}
	clearTail(s.world.Lasers, len(alive))
	s.world.Lasers = alive
}
