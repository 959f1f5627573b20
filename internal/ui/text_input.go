// internal/ui/text_input.go
package ui

import (
	"image"
	"strings"
	"unicode"

	"station-cat/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// TextInput однострочное поле ввода позывного. Текст хранится в верхнем регистре.
type TextInput struct {
	Rect      image.Rectangle
	Label     string
	MaxRunes  int
	value     []rune
	chars     []rune
	fontFace  font.Face
	labelFace font.Face
	blink     float64
}

func NewTextInput(rect image.Rectangle, label, initial string, maxRunes int, face, labelFace font.Face) *TextInput {
	in := &TextInput{Rect: rect, Label: label, MaxRunes: maxRunes, fontFace: face, labelFace: labelFace}
	in.SetValue(initial)
	return in
}

func (in *TextInput) Value() string {
	return string(in.value)
}

func (in *TextInput) SetValue(s string) {
	in.value = []rune(SanitizeName(s, in.MaxRunes))
}

// Update читает введённые символы и Backspace с автоповтором.
func (in *TextInput) Update(deltaTime float64) {
	in.blink += deltaTime
	in.chars = ebiten.AppendInputChars(in.chars[:0])
	if len(in.chars) > 0 {
		in.Type(string(in.chars))
	}
	if repeatPressed(ebiten.KeyBackspace) {
		in.Backspace()
	}
}

// Type добавляет символы с учётом лимита длины.
func (in *TextInput) Type(s string) {
	in.SetValue(string(in.value) + s)
}

func (in *TextInput) Backspace() {
	if len(in.value) > 0 {
		in.value = in.value[:len(in.value)-1]
	}
}

// SanitizeName переводит строку в верхний регистр, выкидывает управляющие
// символы и обрезает до maxRunes рун.
func SanitizeName(s string, maxRunes int) string {
	var out []rune
	for _, r := range strings.ToUpper(s) {
		if unicode.IsControl(r) {
			continue
		}
		if maxRunes > 0 && len(out) >= maxRunes {
			break
		}
		out = append(out, r)
	}
	return string(out)
}

func repeatPressed(key ebiten.Key) bool {
	const (
		delay    = 30
		interval = 3
	)
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= delay && (d-delay)%interval == 0
}

func (in *TextInput) Draw(screen *ebiten.Image) {
	x, y := float32(in.Rect.Min.X), float32(in.Rect.Min.Y)
	w, h := float32(in.Rect.Dx()), float32(in.Rect.Dy())

	if in.labelFace != nil && in.Label != "" {
		text.Draw(screen, in.Label, in.labelFace, in.Rect.Min.X+8, in.Rect.Min.Y-8, config.TextMutedColor)
	}
	vector.DrawFilledRect(screen, x, y, w, h, config.PanelDarkColor, true)
	vector.StrokeRect(screen, x, y, w, h, 1, config.AccentRedColor, true)

	s := string(in.value)
	if int(in.blink*2)%2 == 0 {
		s += "_"
	}
	b := text.BoundString(in.fontFace, "M")
	textY := in.Rect.Min.Y + (in.Rect.Dy()-b.Dy())/2 - b.Min.Y
	text.Draw(screen, s, in.fontFace, in.Rect.Min.X+16, textY, config.TextLightColor)
}
