// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"station-cat/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// HoverLight подсветка светлых кнопок.
var HoverLight = color.RGBA{229, 231, 235, 255}

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect        image.Rectangle
	Text        string
	TextColor   color.Color
	BgColor     color.Color
	HoverColor  color.Color
	BorderColor color.Color
	Font        font.Face
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string, face font.Face) *Button {
	return &Button{
		Rect:        rect,
		Text:        label,
		TextColor:   config.TextLightColor,
		BgColor:     config.AccentRedColor,
		HoverColor:  color.RGBA{239, 68, 68, 255},
		BorderColor: config.PanelBorder,
		Font:        face,
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// IsClicked проверяет, был ли в этом кадре клик или касание по кнопке.
func (b *Button) IsClicked() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && b.Contains(ebiten.CursorPosition()) {
		return true
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		if b.Contains(ebiten.TouchPosition(id)) {
			return true
		}
	}
	return false
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image) {
	bg := b.BgColor
	if b.Contains(ebiten.CursorPosition()) {
		bg = b.HoverColor
	}

	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 2, b.BorderColor, true)

	bounds := text.BoundString(b.Font, b.Text)
	textX := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2 - bounds.Min.X
	textY := b.Rect.Min.Y + (b.Rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, b.Text, b.Font, textX, textY, b.TextColor)
}

// CenteredRect возвращает прямоугольник ширины w и высоты h с центром по cx и верхом top.
func CenteredRect(cx, top, w, h int) image.Rectangle {
	return image.Rect(cx-w/2, top, cx-w/2+w, top+h)
}
