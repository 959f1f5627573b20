package ui

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// DrawCentered рисует строку с центром по горизонтали в cx, y задаёт базовую линию.
func DrawCentered(screen *ebiten.Image, s string, face font.Face, cx, y int, clr color.Color) {
	b := text.BoundString(face, s)
	text.Draw(screen, s, face, cx-b.Dx()/2-b.Min.X, y, clr)
}

// DrawRight рисует строку, прижатую правым краем к right.
func DrawRight(screen *ebiten.Image, s string, face font.Face, right, y int, clr color.Color) {
	b := text.BoundString(face, s)
	text.Draw(screen, s, face, right-b.Max.X, y, clr)
}

// LineHeight возвращает высоту строки начертания в пикселях.
func LineHeight(face font.Face) int {
	return face.Metrics().Height.Ceil()
}

// PadScore дополняет счёт нулями слева до шести цифр.
func PadScore(score int) string {
	s := strconv.Itoa(score)
	if len(s) >= 6 {
		return s
	}
	return strings.Repeat("0", 6-len(s)) + s
}

// Thousands форматирует число с разделителем групп: 12345 -> "12,345".
func Thousands(n int) string {
	if n < 0 {
		return "-" + Thousands(-n)
	}
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var sb strings.Builder
	head := len(s) % 3
	if head > 0 {
		sb.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(s[i : i+3])
	}
	return sb.String()
}

// Wrap разбивает текст на строки не шире width по функции измерения measure.
// Слово длиннее строки переносится целиком на отдельную строку.
func Wrap(s string, width int, measure func(string) int) []string {
	var lines []string
	var cur string
	for _, word := range strings.Fields(s) {
		if cur == "" {
			cur = word
			continue
		}
		candidate := cur + " " + word
		if measure(candidate) <= width {
			cur = candidate
			continue
		}
		lines = append(lines, cur)
		cur = word
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// FaceMeasure возвращает функцию измерения ширины строки для начертания.
func FaceMeasure(face font.Face) func(string) int {
	return func(s string) int {
		return font.MeasureString(face, s).Ceil()
	}
}
