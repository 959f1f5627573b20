// internal/entity/world.go
package entity

import (
	"station-cat/internal/component"
	"station-cat/internal/config"
	"station-cat/internal/utils"
)

// World владеет всеми пулами сущностей и состоянием сессии.
// Изменяется только игровым циклом.
type World struct {
	Width, Height   float64
	Player          *component.Player
	Aim             component.Point
	Lasers          []*component.Laser
	Enemies         []*component.Enemy
	Boss            *component.Boss
	BossProjectiles []*component.BossProjectile
	Stars           []component.Star
	Session         *component.Session
	Cosmetics       *component.Cosmetics
}

func NewWorld(width, height float64, rng *utils.PRNGService) *World {
	w := &World{
		Width:     width,
		Height:    height,
		Player:    &component.Player{Position: component.Point{X: config.CatX, Y: config.CatY}},
		Aim:       component.Point{X: width / 2, Y: height / 2},
		Session:   component.NewSession(),
		Cosmetics: &component.Cosmetics{},
	}
	w.Stars = make([]component.Star, 0, config.StarCount)
	for i := 0; i < config.StarCount; i++ {
		w.Stars = append(w.Stars, component.Star{
			X:    rng.Float64() * width,
			Y:    rng.Float64() * height,
			Size: rng.Float64()*1.5 + 0.5,
		})
	}
	w.clearPools()
	return w
}

// Reset очищает пулы и визуальное состояние и начинает новую сессию.
// Звёзды и прицел сохраняются.
func (w *World) Reset() {
	w.clearPools()
	*w.Cosmetics = component.Cosmetics{}
	w.Session.Start()
}

func (w *World) clearPools() {
	w.Lasers = make([]*component.Laser, 0, 16)
	w.Enemies = make([]*component.Enemy, 0, 32)
	w.BossProjectiles = make([]*component.BossProjectile, 0, 8)
	w.Boss = nil
}

// BossActive сообщает, есть ли на экране живой босс.
func (w *World) BossActive() bool {
	return w.Boss != nil && w.Boss.Active
}

// Contains проверяет, находится ли точка в пределах экрана (с запасом margin).
func (w *World) Contains(p component.Point, margin float64) bool {
	return p.X >= -margin && p.X <= w.Width+margin && p.Y >= -margin && p.Y <= w.Height+margin
}
