// internal/component/visual.go
package component

import "station-cat/internal/config"

// Twitch sides. Одновременно дёргается не больше одного уха.
const (
	TwitchNone  = 0
	TwitchRight = 1
	TwitchLeft  = 2
)

// Cosmetics — чисто визуальное состояние. Никогда не влияет на исход игры.
type Cosmetics struct {
	Blinking   bool
	NextBlink  float64 // игровое время следующего моргания
	TwitchSide int
	NextTwitch float64
	Charging   bool
	Firing     bool
	Shake      float64 // интенсивность тряски экрана, затухает ×0.9 за тик
	Flash      float64 // непрозрачность красной вспышки, −0.04 за тик
}

// TriggerDamage запускает тряску и вспышку при получении урона.
func (c *Cosmetics) TriggerDamage() {
	c.Shake = config.DamageShake
	c.Flash = config.DamageFlash
}

// Twitching сообщает, дёргается ли ухо с данной стороны (1 правое, -1 левое).
func (c *Cosmetics) Twitching(side int) bool {
	return (side == 1 && c.TwitchSide == TwitchRight) || (side == -1 && c.TwitchSide == TwitchLeft)
}

// Star — звезда фона.
type Star struct {
	X, Y float64
	Size float64
}
