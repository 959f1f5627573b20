// internal/state/game_state.go
package state

import (
	"station-cat/internal/assets"
	"station-cat/internal/component"
	"station-cat/internal/input"
	"station-cat/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*GameState)(nil)

// GameState — идущая сессия: ввод, тик симуляции и HUD.
type GameState struct {
	sm         *StateMachine
	deps       *Deps
	controller *input.Controller
	briefing   *ui.BriefingPanel
	score      *ui.ScorePanel
	boss       *ui.BossIndicator
}

func NewGameState(sm *StateMachine, deps *Deps) *GameState {
	w, h := deps.size()
	fonts := deps.Fonts
	return &GameState{
		sm:         sm,
		deps:       deps,
		controller: input.NewController(deps.Game),
		// слева сверху место под кота
		briefing: ui.NewBriefingPanel(220, 8, 420, fonts.Face(assets.SizeBody, true), fonts.Face(assets.SizeBody, false)),
		score:    ui.NewScorePanel(float32(w), fonts.Face(assets.SizeLarge, true), fonts.Face(assets.SizeSmall, false)),
		boss:     ui.NewBossIndicator(float32(w), float32(h), fonts.Face(assets.SizeBanner, true)),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g, g.deps))
		return
	}

	game := g.deps.Game
	g.controller.Update()
	game.Update(deltaTime)

	if game.Phase() == component.GameOver {
		g.sm.SetState(NewGameOverState(g.sm, g.deps))
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	game := g.deps.Game
	game.Draw(screen)

	s := game.World.Session
	if s.BossPhase {
		g.boss.Draw(screen, game.GameTime())
		g.briefing.SetText(ui.BossBriefing)
	} else {
		g.briefing.SetText(game.MissionText)
	}
	g.briefing.Draw(screen)
	g.score.Draw(screen, s.Score, s.Health)
}

func (g *GameState) Exit() {}
