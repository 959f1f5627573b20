// internal/ui/briefing_panel.go
package ui

import (
	"station-cat/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	briefingTitle   = "TACTICAL BRIEFING"
	briefingPadding = 14
)

// BossBriefing заменяет брифинг, пока на поле босс.
const BossBriefing = "VOID HOUND DETECTED. ALL PLASMA POWER TO EYES!"

// BriefingPanel показывает текст брифинга в левом верхнем углу с переносом строк.
type BriefingPanel struct {
	X, Y          float32
	Width         float32
	titleFontFace font.Face
	fontFace      font.Face

	// кэш переноса: пересчитывается только при смене текста
	text  string
	lines []string
}

// NewBriefingPanel creates a new briefing panel.
func NewBriefingPanel(x, y, width float32, titleFace, face font.Face) *BriefingPanel {
	return &BriefingPanel{X: x, Y: y, Width: width, titleFontFace: titleFace, fontFace: face}
}

// SetText задаёт текст брифинга; в панели он выводится в кавычках.
func (p *BriefingPanel) SetText(s string) {
	s = `"` + s + `"`
	if s == p.text {
		return
	}
	p.text = s
	p.lines = Wrap(s, int(p.Width)-2*briefingPadding, FaceMeasure(p.fontFace))
}

func (p *BriefingPanel) Lines() []string {
	return p.lines
}

func (p *BriefingPanel) Draw(screen *ebiten.Image) {
	lh := LineHeight(p.fontFace)
	th := LineHeight(p.titleFontFace)
	height := float32(briefingPadding*2 + th + 6 + lh*len(p.lines))

	vector.DrawFilledRect(screen, p.X, p.Y, p.Width, height, config.PanelColor, true)
	vector.DrawFilledRect(screen, p.X, p.Y, 4, height, config.AccentRedColor, true)

	x := int(p.X) + briefingPadding
	y := int(p.Y) + briefingPadding + th
	vector.DrawFilledCircle(screen, float32(x+4), float32(y-th/3), 4, config.AccentRedColor, true)
	text.Draw(screen, briefingTitle, p.titleFontFace, x+14, y, config.AccentRedColor)

	y += 6
	for _, line := range p.lines {
		y += lh
		text.Draw(screen, line, p.fontFace, x, y, config.TextLightColor)
	}
}
