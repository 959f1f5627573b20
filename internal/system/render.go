// internal/system/render.go
package system

import (
	"math"

	"station-cat/internal/component"
	"station-cat/internal/config"
	"station-cat/internal/defs"
	"station-cat/internal/entity"
	"station-cat/internal/utils"
	"station-cat/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// RenderSystem рисует мир сзади наперёд. Мир только читается.
type RenderSystem struct {
	world     *entity.World
	canvas    *render.Canvas
	rng       *utils.PRNGService // только для смещения тряски, отдельный от симуляции
	labelFace font.Face
}

func NewRenderSystem(world *entity.World, rng *utils.PRNGService, labelFace font.Face) *RenderSystem {
	return &RenderSystem{
		world:     world,
		rng:       rng,
		labelFace: labelFace,
	}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	if s.canvas == nil {
		s.canvas = render.NewCanvas()
	}
	c := s.canvas
	w := s.world
	c.Begin(screen)

	if w.Cosmetics.Shake > config.ShakeVisible {
		c.Translate(s.rng.Centered(w.Cosmetics.Shake), s.rng.Centered(w.Cosmetics.Shake))
	}

	bg := config.BackgroundColor
	if w.Session.BossPhase {
		bg = config.BossBackgroundColor
	}
	c.FillRect(-50, -50, w.Width+100, w.Height+100, bg)

	for _, star := range w.Stars {
		c.FillCircle(star.X, star.Y, star.Size, config.StarColor)
	}

	if w.BossActive() {
		s.drawBoss(w.Boss)
	}
	for _, p := range w.BossProjectiles {
		if p.Active {
			drawBone(c, p.X, p.Y)
		}
	}
	for _, l := range w.Lasers {
		if l.Active {
			s.drawLaser(l)
		}
	}
	drawCat(c, w.Player.Position, w.Cosmetics)
	for _, e := range w.Enemies {
		if !e.Alive() {
			continue
		}
		size := e.Radius * config.EnemyGlyphScale
		def, ok := defs.EnemyLibrary[e.Kind]
		if !ok {
			c.FillCircle(e.X, e.Y, size/2, config.AccentRedColor)
			continue
		}
		switch e.Kind {
		case defs.EnemyYarn:
			drawYarn(c, e.X, e.Y, size, def.Visuals)
		default:
			drawHound(c, e.X, e.Y, size, def.Visuals)
		}
	}

	// вспышка урона поверх всего и без тряски
	if w.Cosmetics.Flash > config.FlashVisible {
		c.Begin(screen)
		c.FillRect(0, 0, w.Width, w.Height, render.WithAlpha(config.FlashColor, w.Cosmetics.Flash))
	}
}

func (s *RenderSystem) drawBoss(b *component.Boss) {
	c := s.canvas
	c.Glow(b.X, b.Y, b.Width*0.6, config.BossGlowColor)
	drawHound(c, b.X, b.Y, b.Width*0.9, defs.EnemyLibrary[defs.EnemyHound].Visuals)

	x := b.X - config.BossBarWidth/2
	y := b.Y - config.BossBarOffsetY
	c.FillRect(x, y, config.BossBarWidth, config.BossBarHeight, config.BossBarBackground)
	c.FillRect(x, y, config.BossBarWidth*b.HealthFraction(), config.BossBarHeight, config.BossBarFill)
	c.StrokeRect(x, y, config.BossBarWidth, config.BossBarHeight, 1, config.BossBarStroke)
	if s.labelFace != nil {
		c.Text(config.BossLabel, s.labelFace, x, y-10, config.TextLightColor)
	}
}

func (s *RenderSystem) drawLaser(l *component.Laser) {
	tx := l.X - math.Cos(l.Angle)*config.LaserTrailLength
	ty := l.Y - math.Sin(l.Angle)*config.LaserTrailLength
	s.canvas.StrokeLine(l.X, l.Y, tx, ty, config.LaserWidth*3, config.LaserGlowColor)
	s.canvas.StrokeLine(l.X, l.Y, tx, ty, config.LaserWidth, config.LaserColor)
}
