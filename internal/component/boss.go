// internal/component/boss.go
package component

// Boss — единственный на экране босс. После гибели остаётся неактивным
// до появления следующего.
type Boss struct {
	X, Y          float64
	Width, Height float64
	Health        int
	MaxHealth     int
	Active        bool
	Velocity      float64 // вертикальная скорость парения
	LastFireTime  float64 // игровое время последнего выстрела, секунды
}

func (b *Boss) Position() Point {
	return Point{X: b.X, Y: b.Y}
}

// Contains проверяет попадание точки в ограничивающий прямоугольник босса.
func (b *Boss) Contains(p Point) bool {
	dx := p.X - b.X
	dy := p.Y - b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx < b.Width/2 && dy < b.Height/2
}

// HealthFraction возвращает долю оставшегося здоровья в диапазоне [0, 1].
func (b *Boss) HealthFraction() float64 {
	if b.MaxHealth <= 0 || b.Health <= 0 {
		return 0
	}
	return float64(b.Health) / float64(b.MaxHealth)
}
