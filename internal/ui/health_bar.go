// internal/ui/health_bar.go
package ui

import (
	"image/color"

	"station-cat/internal/config"
	"station-cat/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const healthBarLabel = "DEFLECTOR STATUS"

// HealthBar отображает здоровье игрока полосой с подписью.
type HealthBar struct {
	X, Y          float32
	Width, Height float32
	fontFace      font.Face
}

// NewHealthBar создает новый индикатор здоровья.
func NewHealthBar(x, y, width, height float32, face font.Face) *HealthBar {
	return &HealthBar{X: x, Y: y, Width: width, Height: height, fontFace: face}
}

// HealthFraction переводит здоровье в долю заполнения 0..1.
func HealthFraction(health, maxHealth int) float32 {
	if maxHealth <= 0 || health <= 0 {
		return 0
	}
	if health >= maxHealth {
		return 1
	}
	return float32(health) / float32(maxHealth)
}

// Draw рисует полосу; заливка идёт градиентом из тёмно-красного в светлый.
func (b *HealthBar) Draw(screen *ebiten.Image, health, maxHealth int) {
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width, b.Height, color.RGBA{17, 24, 39, 255}, true)

	fill := b.Width * HealthFraction(health, maxHealth)
	if fill > 0 {
		const steps = 8
		from := color.RGBA{220, 38, 38, 255}
		to := color.RGBA{248, 113, 113, 255}
		seg := fill / steps
		for i := 0; i < steps; i++ {
			vector.DrawFilledRect(screen, b.X+seg*float32(i), b.Y, seg+0.5, b.Height, lerpColor(from, to, float64(i)/(steps-1)), false)
		}
	}
	vector.StrokeRect(screen, b.X, b.Y, b.Width, b.Height, 1, config.PanelBorder, true)

	if b.fontFace != nil {
		DrawRight(screen, healthBarLabel, b.fontFace, int(b.X+b.Width), int(b.Y+b.Height)+LineHeight(b.fontFace), config.TextMutedColor)
	}
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 { return uint8(utils.Lerp(float64(x), float64(y), t)) }
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}
