// internal/system/boss.go
package system

import (
	"math"

	"station-cat/internal/component"
	"station-cat/internal/config"
	"station-cat/internal/entity"
	"station-cat/internal/event"
)

// BossSystem появляется по порогу счёта, выходит на позицию, парит по
// вертикали, стреляет костями и принимает попадания лазеров.
type BossSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	combat          *CombatSystem
}

func NewBossSystem(world *entity.World, eventDispatcher *event.Dispatcher, combat *CombatSystem) *BossSystem {
	return &BossSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		combat:          combat,
	}
}

// CheckSpawn создаёт босса за правым краем экрана, когда счёт достиг порога.
func (s *BossSystem) CheckSpawn(now float64) {
	sess := s.world.Session
	if sess.BossPhase || sess.Score < sess.NextBossScore {
		return
	}
	s.world.Boss = &component.Boss{
		X:            s.world.Width + config.BossSpawnOffset,
		Y:            s.world.Height / 2,
		Width:        config.BossSize,
		Height:       config.BossSize,
		Health:       config.BossMaxHealth,
		MaxHealth:    config.BossMaxHealth,
		Active:       true,
		Velocity:     config.BossEntrySpeed,
		LastFireTime: now,
	}
	sess.BossPhase = true
	s.eventDispatcher.Dispatch(event.Event{Type: event.BossSpawned})
}

func (s *BossSystem) Update(now float64) {
	if !s.world.BossActive() {
		return
	}
	b := s.world.Boss

	if b.X > s.world.Width-config.BossStandOff {
		b.X -= config.BossEntrySpeed
	} else {
		s.hover(b)
	}

	if now-b.LastFireTime > config.BossFireCooldown {
		b.LastFireTime = now
		s.fire(b)
	}

	s.checkLaserHits(b)
}

// hover водит босса по вертикали между границами. Разворот только при
// движении за границу, поэтому босс не дрожит на ней. Если экран ниже
// двух отступов, босс стоит по центру.
func (s *BossSystem) hover(b *component.Boss) {
	top := config.BossHoverMargin
	bottom := s.world.Height - config.BossHoverMargin
	if bottom <= top {
		b.Y = s.world.Height / 2
		return
	}
	b.Y += b.Velocity
	if (b.Y > bottom && b.Velocity > 0) || (b.Y < top && b.Velocity < 0) {
		b.Velocity = -b.Velocity
	}
}

// fire выпускает кость в текущую позицию кота.
func (s *BossSystem) fire(b *component.Boss) {
	angle := b.Position().AngleTo(s.world.Player.Position)
	s.world.BossProjectiles = append(s.world.BossProjectiles, &component.BossProjectile{
		X:      b.X - config.BossProjectileMuzzle,
		Y:      b.Y,
		VX:     math.Cos(angle) * config.BossProjectileSpeed,
		VY:     math.Sin(angle) * config.BossProjectileSpeed,
		Radius: config.BossProjectileRadius,
		Active: true,
	})
}

func (s *BossSystem) checkLaserHits(b *component.Boss) {
	for _, l := range s.world.Lasers {
		if !l.Active || !b.Contains(l.Position()) {
			continue
		}
		l.Active = false
		b.Health -= config.BossLaserDamage
		if b.Health <= 0 {
			s.defeat(b)
			return
		}
	}
}

func (s *BossSystem) defeat(b *component.Boss) {
	b.Health = 0
	b.Active = false
	sess := s.world.Session
	sess.BossPhase = false
	s.combat.AddScore(config.BossKillScore)
	sess.NextBossScore += config.BossThresholdStep
	s.eventDispatcher.Dispatch(event.Event{Type: event.BossDefeated, Data: sess.Score})
}
