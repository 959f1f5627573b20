// internal/state/game_over_state.go
package state

import (
	"fmt"

	"station-cat/internal/assets"
	"station-cat/internal/config"
	"station-cat/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const debriefPending = "Retrieving debrief..."

var _ State = (*GameOverState)(nil)

// GameOverState показывает итог сессии: счёт, комментарий командования, лучшие пилоты.
type GameOverState struct {
	sm      *StateMachine
	deps    *Deps
	restart *ui.Button
	table   *ui.LeaderboardTable
}

func NewGameOverState(sm *StateMachine, deps *Deps) *GameOverState {
	w, h := deps.size()
	cx := w / 2
	top := h/2 - 250
	fonts := deps.Fonts

	restart := ui.NewButton(ui.CenteredRect(cx, top+440, 440, 56), "RE-ENGAGE DEFENSES", fonts.Face(assets.SizeLarge, true))
	restart.BgColor = config.TextLightColor
	restart.HoverColor = ui.HoverLight
	restart.TextColor = config.BackgroundColor

	table := ui.NewLeaderboardTable(float32(cx-220), float32(top+250), 440, fonts.Face(assets.SizeSmall, false))
	table.Compact = true
	table.Title = "TOP SECTOR GUARD SCORES"
	table.IsVisible = true

	return &GameOverState{sm: sm, deps: deps, restart: restart, table: table}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	// комментарий приходит асинхронно
	s.deps.Game.Update(deltaTime)

	if s.restart.IsClicked() || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.deps.Game.Start()
		s.sm.SetState(NewGameState(s.sm, s.deps))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	game := s.deps.Game
	game.Draw(screen)

	w, h := s.deps.size()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), config.DefeatOverlay, false)

	cx := w / 2
	top := h/2 - 250
	fonts := s.deps.Fonts

	vector.DrawFilledRect(screen, float32(cx-260), float32(top), 520, 520, config.BackgroundColor, true)
	vector.StrokeRect(screen, float32(cx-260), float32(top), 520, 520, 2, config.AccentRedColor, true)

	ui.DrawCentered(screen, "SYSTEM DEFEAT", fonts.Face(assets.SizeSmall, false), cx, top+36, config.AccentRedColor)
	ui.DrawCentered(screen, "SCRATCHED", fonts.Face(assets.SizeBanner, true), cx, top+104, config.TextLightColor)
	ui.DrawCentered(screen, fmt.Sprintf("%s PTS", ui.Thousands(game.World.Session.Score)), fonts.Face(assets.SizeLarge, true), cx, top+156, config.AccentRedColor)

	summary := fmt.Sprintf("BOSS ENCOUNTERS %d   CLOSEST CALL %d%%", game.BossEncounters, game.LowestHealth)
	ui.DrawCentered(screen, summary, fonts.Face(assets.SizeSmall, false), cx, top+178, config.TextMutedColor)

	comment := game.Commentary
	if comment == "" {
		comment = debriefPending
	}
	face := fonts.Face(assets.SizeBody, false)
	y := top + 192
	for _, line := range ui.Wrap(`"`+comment+`"`, 460, ui.FaceMeasure(face)) {
		y += ui.LineHeight(face)
		b := text.BoundString(face, line)
		text.Draw(screen, line, face, cx-b.Dx()/2, y, config.TextMutedColor)
	}

	s.table.Draw(screen, game.Leaderboard, config.GameOverTopRows)
	s.restart.Draw(screen)
}

func (s *GameOverState) Exit() {}
