// internal/component/player.go
package component

import "station-cat/internal/config"

// Player хранит позицию кота-турели. Кот неподвижен, меняется только прицел.
type Player struct {
	Position Point
}

// Muzzles возвращает точки вылета лазеров (левый и правый глаз).
func (p *Player) Muzzles() [2]Point {
	y := p.Position.Y - config.LaserMuzzleLift
	return [2]Point{
		{X: p.Position.X - config.LaserMuzzleOffset, Y: y},
		{X: p.Position.X + config.LaserMuzzleOffset, Y: y},
	}
}

// Eye возвращает точку, от которой считается угол прицеливания.
func (p *Player) Eye() Point {
	return Point{X: p.Position.X, Y: p.Position.Y - config.LaserMuzzleLift}
}
