// internal/ui/score_panel.go
package ui

import (
	"station-cat/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// ScorePanel отображает счёт шестью цифрами и полосу дефлектора под ним.
type ScorePanel struct {
	X, Y          float32
	Width, Height float32
	scoreFace     font.Face
	labelFace     font.Face
	health        *HealthBar
}

// NewScorePanel создает панель в правом верхнем углу экрана.
func NewScorePanel(screenWidth float32, scoreFace, labelFace font.Face) *ScorePanel {
	const (
		width  = 220
		height = 96
		margin = 8
	)
	x := screenWidth - width - margin
	p := &ScorePanel{
		X:         x,
		Y:         margin,
		Width:     width,
		Height:    height,
		scoreFace: scoreFace,
		labelFace: labelFace,
	}
	p.health = NewHealthBar(x+16, margin+58, width-32, 8, labelFace)
	return p
}

func (p *ScorePanel) Draw(screen *ebiten.Image, score, health int) {
	vector.DrawFilledRect(screen, p.X, p.Y, p.Width, p.Height, config.PanelColor, true)
	// правая акцентная кромка
	vector.DrawFilledRect(screen, p.X+p.Width-4, p.Y, 4, p.Height, config.AccentGoldColor, true)

	right := int(p.X + p.Width - 16)
	DrawRight(screen, PadScore(score), p.scoreFace, right, int(p.Y)+LineHeight(p.scoreFace), config.AccentGoldColor)
	DrawRight(screen, "CREDITS EARNED", p.labelFace, right, int(p.Y)+LineHeight(p.scoreFace)+LineHeight(p.labelFace)+2, config.TextMutedColor)

	p.health.Draw(screen, health, config.MaxHealth)
}
