// internal/component/projectile.go
package component

// Laser представляет летящий лазерный импульс кота.
type Laser struct {
	Start  Point
	Target Point
	X, Y   float64
	Angle  float64
	Speed  float64
	Active bool
}

// Position возвращает текущую позицию импульса.
func (l *Laser) Position() Point {
	return Point{X: l.X, Y: l.Y}
}

// BossProjectile — самонаводящийся (в момент выстрела) снаряд босса.
type BossProjectile struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Active bool
}

func (p *BossProjectile) Position() Point {
	return Point{X: p.X, Y: p.Y}
}
