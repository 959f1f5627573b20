// internal/system/spawn.go
package system

import (
	"station-cat/internal/component"
	"station-cat/internal/config"
	"station-cat/internal/defs"
	"station-cat/internal/entity"
	"station-cat/internal/utils"
)

// SpawnSystem с небольшой вероятностью за тик выпускает врага за правым
// или нижним краем экрана. Во время боя с боссом не работает.
type SpawnSystem struct {
	world *entity.World
	rng   *utils.PRNGService
}

func NewSpawnSystem(world *entity.World, rng *utils.PRNGService) *SpawnSystem {
	return &SpawnSystem{world: world, rng: rng}
}

func (s *SpawnSystem) Update() {
	if s.world.Session.BossPhase {
		return
	}
	if s.rng.Float64() >= config.EnemySpawnChance {
		return
	}
	s.spawnEnemy()
}

func (s *SpawnSystem) spawnEnemy() {
	var x, y float64
	if s.rng.Float64() > 0.5 {
		x = s.world.Width + config.EnemySpawnMargin
		y = s.rng.Float64() * s.world.Height
	} else {
		x = s.rng.Float64() * s.world.Width
		y = s.world.Height + config.EnemySpawnMargin
	}

	s.world.Enemies = append(s.world.Enemies, &component.Enemy{
		X:      x,
		Y:      y,
		Radius: s.rng.Spread(config.EnemyMinRadius, config.EnemyRadiusSpread),
		Speed:  s.rng.Spread(config.EnemyMinSpeed, config.EnemySpeedSpread),
		Health: 1,
		Kind:   s.rng.ChooseWeighted(defs.SpawnTable),
	})
}
