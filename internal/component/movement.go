// component/movement.go
package component

import "math"

// Point — позиция на экране
type Point struct {
	X, Y float64
}

// DistanceTo возвращает евклидово расстояние до другой точки.
func (p Point) DistanceTo(o Point) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// AngleTo возвращает угол направления на другую точку.
func (p Point) AngleTo(o Point) float64 {
	return math.Atan2(o.Y-p.Y, o.X-p.X)
}
