// internal/system/visual_effect.go
package system

import (
	"station-cat/internal/component"
	"station-cat/internal/config"
	"station-cat/internal/entity"
	"station-cat/internal/utils"
)

// VisualEffectSystem управляет косметикой: тряска, вспышка урона,
// моргание и подёргивание ушей. На исход игры не влияет.
type VisualEffectSystem struct {
	world    *entity.World
	rng      *utils.PRNGService
	deferrer Deferrer
}

func NewVisualEffectSystem(world *entity.World, rng *utils.PRNGService, deferrer Deferrer) *VisualEffectSystem {
	return &VisualEffectSystem{world: world, rng: rng, deferrer: deferrer}
}

// Decay гасит тряску и вспышку за один тик.
func (s *VisualEffectSystem) Decay() {
	c := s.world.Cosmetics
	if c.Shake > 0 {
		c.Shake *= config.ShakeDecay
		if c.Shake < config.ShakeFloor {
			c.Shake = 0
		}
	}
	if c.Flash > 0 {
		c.Flash -= config.FlashDecay
		if c.Flash < 0 {
			c.Flash = 0
		}
	}
}

// UpdateTimers запускает моргание и подёргивание уха, когда подошло их время.
// Возврат в исходное состояние откладывается через Deferrer.
func (s *VisualEffectSystem) UpdateTimers(now float64) {
	c := s.world.Cosmetics

	if !c.Blinking && now > c.NextBlink {
		c.Blinking = true
		s.deferrer.Defer(config.BlinkHold, func(at float64) {
			c.Blinking = false
			c.NextBlink = s.rng.Spread(at+config.BlinkMinDelay, config.BlinkSpread)
		})
	}

	if c.TwitchSide == component.TwitchNone && now > c.NextTwitch {
		c.TwitchSide = component.TwitchLeft
		if s.rng.Float64() > 0.5 {
			c.TwitchSide = component.TwitchRight
		}
		s.deferrer.Defer(config.TwitchHold, func(at float64) {
			c.TwitchSide = component.TwitchNone
			c.NextTwitch = s.rng.Spread(at+config.TwitchMinDelay, config.TwitchSpread)
		})
	}
}

// Reset назначает первое моргание и подёргивание уха для новой сессии.
func (s *VisualEffectSystem) Reset(now float64) {
	c := s.world.Cosmetics
	c.NextBlink = s.rng.Spread(now+config.BlinkMinDelay, config.BlinkSpread)
	c.NextTwitch = s.rng.Spread(now+config.TwitchMinDelay, config.TwitchSpread)
}
