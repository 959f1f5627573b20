// internal/system/glyphs.go
package system

import (
	"station-cat/internal/component"
	"station-cat/internal/config"
	"station-cat/internal/defs"
	"station-cat/pkg/render"
)

// Глифы рисуются в локальной системе координат 100x100 с центром в нуле
// и масштабируются до нужного размера.
const glyphUnit = 100.0

func drawHound(c *render.Canvas, x, y, size float64, v defs.Visuals) {
	saved := c.Save()
	defer c.Restore(saved)
	c.Translate(x, y)
	c.Scale(size/glyphUnit, size/glyphUnit)

	c.FillEllipse(-36, -4, 13, 30, v.Accent)
	c.FillEllipse(36, -4, 13, 30, v.Accent)
	// внутренняя сторона ушей
	c.FillEllipse(-36, 2, 7, 20, render.DarkenColor(v.Accent))
	c.FillEllipse(36, 2, 7, 20, render.DarkenColor(v.Accent))
	c.FillCircle(0, 0, 38, v.Fill)
	c.FillEllipse(0, 16, 21, 16, render.LightenColor(v.Fill, 40))
	c.FillEllipse(0, 7, 8, 6, v.Detail)
	c.FillCircle(-14, -10, 5, v.Detail)
	c.FillCircle(14, -10, 5, v.Detail)
	c.FillEllipse(0, 30, 6, 5, config.AccentRedColor)
}

func drawYarn(c *render.Canvas, x, y, size float64, v defs.Visuals) {
	saved := c.Save()
	defer c.Restore(saved)
	c.Translate(x, y)
	k := size / glyphUnit
	c.Scale(k, k)

	c.FillCircle(0, 0, 45, v.Fill)
	width := 3 * k
	for i, off := range []float64{-28, -10, 10, 28} {
		strand := &render.Shape{}
		strand.MoveTo(-40, off)
		bend := 18.0
		if i%2 == 1 {
			bend = -18
		}
		strand.QuadTo(0, off+bend, 40, off-bend/2)
		c.StrokeShape(strand, width, v.Accent)
	}
	c.StrokeCircle(0, 0, 45, width, v.Accent)

	thread := &render.Shape{}
	thread.MoveTo(30, 32)
	thread.QuadTo(48, 40, 56, 58)
	c.StrokeShape(thread, width, v.Detail)
}

func drawBone(c *render.Canvas, x, y float64) {
	saved := c.Save()
	defer c.Restore(saved)
	c.Translate(x, y)
	c.Rotate(-0.6)

	c.Glow(0, 0, config.BossProjectileRadius, config.BoneGlowColor)
	c.FillRect(-13, -4, 26, 8, config.BoneColor)
	for _, p := range [][2]float64{{-13, -5}, {-13, 5}, {13, -5}, {13, 5}} {
		c.FillCircle(p[0], p[1], 6, config.BoneColor)
	}
}

// drawCat рисует кота в его позиции; состояние глаз и ушей берётся из косметики.
func drawCat(c *render.Canvas, pos component.Point, cos *component.Cosmetics) {
	saved := c.Save()
	defer c.Restore(saved)
	c.Translate(pos.X, pos.Y)

	c.FillEllipse(0, 46, 56, 66, config.CatShadowColor)
	c.FillEllipse(0, 40, 50, 60, config.CatBodyColor)

	head := &render.Shape{}
	head.MoveTo(-45, -10)
	head.QuadTo(-50, 30, 0, 45)
	head.QuadTo(50, 30, 45, -10)
	head.QuadTo(40, -40, 0, -45)
	head.QuadTo(-40, -40, -45, -10)
	head.Close()
	c.FillShape(head, config.CatHeadColor)

	drawEar(c, 1, cos)
	drawEar(c, -1, cos)

	switch {
	case cos.Firing:
		c.Glow(-18, -10, 22, config.FireGlowColor)
		c.Glow(18, -10, 22, config.FireGlowColor)
	case cos.Charging:
		c.Glow(-18, -10, 28, config.ChargeGlowColor)
		c.Glow(18, -10, 28, config.ChargeGlowColor)
	}
	drawEye(c, -18, cos)
	drawEye(c, 18, cos)

	c.FillCircle(0, 15, 12, config.CatMuzzleColor)
	nose := &render.Shape{}
	nose.MoveTo(-4, 10)
	nose.LineTo(4, 10)
	nose.LineTo(0, 16)
	nose.Close()
	c.FillShape(nose, config.CatEyeColor)

	for _, side := range []float64{-1, 1} {
		c.StrokeLine(side*10, 18, side*50, 12, 1, config.CatWhiskerColor)
		c.StrokeLine(side*10, 21, side*50, 25, 1, config.CatWhiskerColor)
	}
}

func drawEar(c *render.Canvas, side int, cos *component.Cosmetics) {
	saved := c.Save()
	defer c.Restore(saved)
	c.Scale(float64(side), 1)
	if cos.Twitching(side) {
		c.Rotate(-config.TwitchAngle)
	}

	outer := &render.Shape{}
	outer.MoveTo(15, -35)
	outer.LineTo(45, -75)
	outer.LineTo(40, -20)
	outer.Close()
	c.FillShape(outer, config.CatEarColor)

	inner := &render.Shape{}
	inner.MoveTo(20, -35)
	inner.LineTo(38, -60)
	inner.LineTo(35, -25)
	inner.Close()
	c.FillShape(inner, config.CatEarInner)
}

func drawEye(c *render.Canvas, x float64, cos *component.Cosmetics) {
	hot := cos.Firing || cos.Charging
	if cos.Blinking && !hot {
		c.StrokeLine(x-8, -10, x+8, -10, 3, config.CatEyeColor)
		return
	}

	eye := config.CatEyeColor
	pupil := config.CatPupilColor
	switch {
	case cos.Firing:
		eye = config.CatHotEyeColor
		pupil = config.TextLightColor
	case cos.Charging:
		eye = config.CatHotEyeColor
		pupil = config.AccentGoldColor
	}
	c.FillCircle(x, -10, 8, eye)
	c.FillCircle(x, -10, 3, pupil)
}
