// internal/system/projectile.go
package system

import (
	"station-cat/internal/config"
	"station-cat/internal/entity"
)

// ProjectileSystem двигает кости босса и проверяет попадание в кота.
type ProjectileSystem struct {
	world  *entity.World
	combat *CombatSystem
}

func NewProjectileSystem(world *entity.World, combat *CombatSystem) *ProjectileSystem {
	return &ProjectileSystem{world: world, combat: combat}
}

func (s *ProjectileSystem) Update() {
	cat := s.world.Player.Position
	for _, p := range s.world.BossProjectiles {
		if !p.Active {
			continue
		}
		p.X += p.VX
		p.Y += p.VY

		if p.Position().DistanceTo(cat) < p.Radius+config.BossProjectileReach {
			p.Active = false
			s.combat.ApplyDamage(config.BossProjectileDamage)
		}
		if !s.world.Contains(p.Position(), config.BossProjectileCullMargin) {
			p.Active = false
		}
	}

	alive := s.world.BossProjectiles[:0]
	for _, p := range s.world.BossProjectiles {
		if p.Active {
			alive = append(alive, p)
		}
	}
	clearTail(s.world.BossProjectiles, len(alive))
	s.world.BossProjectiles = alive
}
