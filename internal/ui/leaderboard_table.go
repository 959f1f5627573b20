// internal/ui/leaderboard_table.go
package ui

import (
	"fmt"
	"image/color"

	"station-cat/internal/config"
	"station-cat/internal/leaderboard"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var playerRowColor = color.NRGBA{250, 204, 21, 26}

// LeaderboardTable отображает таблицу рекордов. Строки игрока подсвечены.
type LeaderboardTable struct {
	IsVisible bool
	X, Y      float32
	Width     float32
	fontFace  font.Face
	// Compact: короткий список "1. NAME  SCORE" без заголовка колонок
	Compact bool
	Title   string
}

// NewLeaderboardTable создает новую таблицу.
func NewLeaderboardTable(x, y, width float32, face font.Face) *LeaderboardTable {
	return &LeaderboardTable{X: x, Y: y, Width: width, fontFace: face}
}

// Toggle переключает видимость таблицы.
func (t *LeaderboardTable) Toggle() {
	t.IsVisible = !t.IsVisible
}

// RankLabel форматирует место в таблице: 0 -> "#01".
func RankLabel(i int) string {
	return fmt.Sprintf("#%02d", i+1)
}

// Height возвращает высоту таблицы для rows строк.
func (t *LeaderboardTable) Height(rows int) float32 {
	lh := float32(LineHeight(t.fontFace) + 6)
	return lh*float32(rows+1) + 24
}

// Draw рисует не более limit строк (при limit <= 0 все).
func (t *LeaderboardTable) Draw(screen *ebiten.Image, entries []leaderboard.Entry, limit int) {
	if !t.IsVisible {
		return
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	h := t.Height(len(entries))
	vector.DrawFilledRect(screen, t.X, t.Y, t.Width, h, config.PanelDarkColor, true)
	vector.StrokeRect(screen, t.X, t.Y, t.Width, h, 1, config.PanelBorder, true)

	lh := LineHeight(t.fontFace) + 6
	left := int(t.X) + 14
	right := int(t.X+t.Width) - 14
	y := int(t.Y) + 12 + LineHeight(t.fontFace)

	if t.Compact {
		text.Draw(screen, t.Title, t.fontFace, left, y, config.TextMutedColor)
	} else {
		text.Draw(screen, "RANK", t.fontFace, left, y, config.TextMutedColor)
		text.Draw(screen, "PILOT", t.fontFace, left+60, y, config.TextMutedColor)
		DrawRight(screen, "SCORE", t.fontFace, right, y, config.TextMutedColor)
	}
	vector.StrokeLine(screen, float32(left), float32(y+5), float32(right), float32(y+5), 1, config.PanelBorder, true)

	for i, e := range entries {
		y += lh
		clr := color.Color(config.TextLightColor)
		if t.Compact {
			clr = config.TextMutedColor
		}
		if e.IsPlayer {
			clr = config.AccentGoldColor
			vector.DrawFilledRect(screen, float32(left-4), float32(y-lh+8), float32(right-left+8), float32(lh-2), playerRowColor, true)
		}
		if t.Compact {
			text.Draw(screen, fmt.Sprintf("%d. %s", i+1, e.Name), t.fontFace, left, y, clr)
		} else {
			text.Draw(screen, RankLabel(i), t.fontFace, left, y, clr)
			text.Draw(screen, e.Name, t.fontFace, left+60, y, clr)
		}
		DrawRight(screen, Thousands(e.Score), t.fontFace, right, y, clr)
	}
}
