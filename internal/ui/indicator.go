// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const bossBannerText = "BOSS ENCOUNTER"

// BossIndicator пульсирующая рамка и надпись во время боя с боссом.
type BossIndicator struct {
	Width, Height float32
	fontFace      font.Face
}

func NewBossIndicator(width, height float32, face font.Face) *BossIndicator {
	return &BossIndicator{Width: width, Height: height, fontFace: face}
}

// PulseAlpha возвращает непрозрачность рамки в момент t (секунды), период 2 с.
func PulseAlpha(t float64) float64 {
	return 0.5 + 0.5*math.Sin(t*math.Pi)
}

// Draw рисует индикатор в момент игрового времени t.
func (i *BossIndicator) Draw(screen *ebiten.Image, t float64) {
	a := PulseAlpha(t)
	border := color.NRGBA{127, 29, 29, uint8(20 + 50*a)}
	const w = 10
	vector.DrawFilledRect(screen, 0, 0, i.Width, w, border, false)
	vector.DrawFilledRect(screen, 0, i.Height-w, i.Width, w, border, false)
	vector.DrawFilledRect(screen, 0, w, w, i.Height-2*w, border, false)
	vector.DrawFilledRect(screen, i.Width-w, w, w, i.Height-2*w, border, false)

	DrawCentered(screen, bossBannerText, i.fontFace, int(i.Width/2), int(i.Height/2), color.NRGBA{220, 38, 38, uint8(16 + 16*a)})
}
