// pkg/render/canvas.go
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const ellipseSegments = 40

// Canvas рисует векторные фигуры поверх ebiten.Image с текущей матрицей
// преобразования (сдвиг, поворот, масштаб), как 2D-контекст браузера.
// Все фигуры заливаются через DrawTriangles с белой текстурой 1x1.
type Canvas struct {
	dst     *ebiten.Image
	geo     ebiten.GeoM
	fillImg *ebiten.Image
	vs      []ebiten.Vertex
	is      []uint16
}

func NewCanvas() *Canvas {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &Canvas{
		fillImg: fillImg,
		vs:      make([]ebiten.Vertex, 0, 128),
		is:      make([]uint16, 0, 192),
	}
}

// Begin привязывает холст к кадру и сбрасывает преобразование.
func (c *Canvas) Begin(dst *ebiten.Image) {
	c.dst = dst
	c.geo.Reset()
}

func (c *Canvas) Bounds() image.Rectangle {
	return c.dst.Bounds()
}

// Save возвращает текущее преобразование для последующего Restore.
func (c *Canvas) Save() ebiten.GeoM {
	return c.geo
}

func (c *Canvas) Restore(g ebiten.GeoM) {
	c.geo = g
}

// Translate, Rotate и Scale применяются к локальным координатам до текущей матрицы.
func (c *Canvas) Translate(x, y float64) {
	var t ebiten.GeoM
	t.Translate(x, y)
	c.prepend(t)
}

func (c *Canvas) Rotate(theta float64) {
	var t ebiten.GeoM
	t.Rotate(theta)
	c.prepend(t)
}

func (c *Canvas) Scale(sx, sy float64) {
	var t ebiten.GeoM
	t.Scale(sx, sy)
	c.prepend(t)
}

func (c *Canvas) prepend(t ebiten.GeoM) {
	t.Concat(c.geo)
	c.geo = t
}

// Shape — набор замкнутых контуров в локальных координатах.
type Shape struct {
	contours [][]vec
	cur      []vec
}

type vec struct{ x, y float64 }

func (s *Shape) MoveTo(x, y float64) {
	s.flush()
	s.cur = append(s.cur, vec{x, y})
}

func (s *Shape) LineTo(x, y float64) {
	s.cur = append(s.cur, vec{x, y})
}

// QuadTo аппроксимирует квадратичную кривую Безье отрезками.
func (s *Shape) QuadTo(cx, cy, x, y float64) {
	if len(s.cur) == 0 {
		s.MoveTo(cx, cy)
	}
	p0 := s.cur[len(s.cur)-1]
	const steps = 12
	for i := 1; i <= steps; i++ {
		t := float64(i) / steps
		u := 1 - t
		s.cur = append(s.cur, vec{
			x: u*u*p0.x + 2*u*t*cx + t*t*x,
			y: u*u*p0.y + 2*u*t*cy + t*t*y,
		})
	}
}

func (s *Shape) Close() {
	s.flush()
}

func (s *Shape) flush() {
	if len(s.cur) > 0 {
		s.contours = append(s.contours, s.cur)
		s.cur = nil
	}
}

func (c *Canvas) path(s *Shape) *vector.Path {
	s.flush()
	p := &vector.Path{}
	for _, contour := range s.contours {
		for i, v := range contour {
			x, y := c.geo.Apply(v.x, v.y)
			if i == 0 {
				p.MoveTo(float32(x), float32(y))
			} else {
				p.LineTo(float32(x), float32(y))
			}
		}
		p.Close()
	}
	return p
}

// FillShape заливает фигуру цветом clr.
func (c *Canvas) FillShape(s *Shape, clr color.RGBA) {
	c.vs, c.is = c.path(s).AppendVerticesAndIndicesForFilling(c.vs[:0], c.is[:0])
	c.flushTriangles(clr)
}

// StrokeShape обводит фигуру линией толщиной width (в пикселях экрана).
func (c *Canvas) StrokeShape(s *Shape, width float64, clr color.RGBA) {
	c.vs, c.is = c.path(s).AppendVerticesAndIndicesForStroke(c.vs[:0], c.is[:0], &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
	})
	c.flushTriangles(clr)
}

func (c *Canvas) flushTriangles(clr color.RGBA) {
	if len(c.is) == 0 {
		return
	}
	for i := range c.vs {
		c.vs[i].SrcX = 0
		c.vs[i].SrcY = 0
		c.vs[i].ColorR = float32(clr.R) / 255
		c.vs[i].ColorG = float32(clr.G) / 255
		c.vs[i].ColorB = float32(clr.B) / 255
		c.vs[i].ColorA = float32(clr.A) / 255
	}
	c.dst.DrawTriangles(c.vs, c.is, c.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func ellipseShape(cx, cy, rx, ry float64) *Shape {
	s := &Shape{}
	for i := 0; i < ellipseSegments; i++ {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		x, y := cx+rx*math.Cos(a), cy+ry*math.Sin(a)
		if i == 0 {
			s.MoveTo(x, y)
		} else {
			s.LineTo(x, y)
		}
	}
	s.Close()
	return s
}

func rectShape(x, y, w, h float64) *Shape {
	s := &Shape{}
	s.MoveTo(x, y)
	s.LineTo(x+w, y)
	s.LineTo(x+w, y+h)
	s.LineTo(x, y+h)
	s.Close()
	return s
}

func (c *Canvas) FillEllipse(cx, cy, rx, ry float64, clr color.RGBA) {
	c.FillShape(ellipseShape(cx, cy, rx, ry), clr)
}

func (c *Canvas) FillCircle(cx, cy, r float64, clr color.RGBA) {
	c.FillEllipse(cx, cy, r, r, clr)
}

func (c *Canvas) StrokeCircle(cx, cy, r, width float64, clr color.RGBA) {
	c.StrokeShape(ellipseShape(cx, cy, r, r), width, clr)
}

func (c *Canvas) FillRect(x, y, w, h float64, clr color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	c.FillShape(rectShape(x, y, w, h), clr)
}

func (c *Canvas) StrokeRect(x, y, w, h, width float64, clr color.RGBA) {
	c.StrokeShape(rectShape(x, y, w, h), width, clr)
}

// StrokeLine рисует отрезок без замыкания контура.
func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.RGBA) {
	ax, ay := c.geo.Apply(x0, y0)
	bx, by := c.geo.Apply(x1, y1)
	p := &vector.Path{}
	p.MoveTo(float32(ax), float32(ay))
	p.LineTo(float32(bx), float32(by))
	c.vs, c.is = p.AppendVerticesAndIndicesForStroke(c.vs[:0], c.is[:0], &vector.StrokeOptions{
		Width:   float32(width),
		LineCap: vector.LineCapRound,
	})
	c.flushTriangles(clr)
}

// Glow имитирует размытую тень: несколько полупрозрачных кругов убывающей яркости.
func (c *Canvas) Glow(cx, cy, r float64, clr color.RGBA) {
	const layers = 4
	for i := layers; i >= 1; i-- {
		k := float64(i) / layers
		layer := clr
		layer.A = uint8(float64(clr.A) * (1 - k) * 0.8)
		c.FillCircle(cx, cy, r*(0.6+0.4*k), layer)
	}
}

// Text рисует строку, (x, y) задаёт левый край базовой линии в локальных координатах.
// Поворот и масштаб на текст не влияют.
func (c *Canvas) Text(s string, face font.Face, x, y float64, clr color.Color) {
	tx, ty := c.geo.Apply(x, y)
	text.Draw(c.dst, s, face, int(math.Round(tx)), int(math.Round(ty)), clr)
}

// TextCentered центрирует строку по точке (cx, cy).
func (c *Canvas) TextCentered(s string, face font.Face, cx, cy float64, clr color.Color) {
	w, h := MeasureText(face, s)
	c.Text(s, face, cx-float64(w)/2, cy+float64(h)/2, clr)
}

// MeasureText возвращает ширину и высоту строки в пикселях.
func MeasureText(face font.Face, s string) (int, int) {
	b := text.BoundString(face, s)
	return b.Max.X - b.Min.X, b.Max.Y - b.Min.Y
}
