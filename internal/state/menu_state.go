// internal/state/menu_state.go
package state

import (
	"station-cat/internal/assets"
	"station-cat/internal/config"
	"station-cat/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hallOpenText  = "View Hall of Fame"
	hallCloseText = "Close Hall of Fame"
)

var _ State = (*MenuState)(nil)

// MenuState — стартовый экран: позывной, запуск миссии, зал славы.
type MenuState struct {
	sm    *StateMachine
	deps  *Deps
	name  *ui.TextInput
	start *ui.Button
	hall  *ui.Button
	table *ui.LeaderboardTable
}

func NewMenuState(sm *StateMachine, deps *Deps) *MenuState {
	w, h := deps.size()
	cx := w / 2
	top := h/2 - 170
	fonts := deps.Fonts

	name := ui.NewTextInput(ui.CenteredRect(cx, top+130, 420, 48), "PILOT CALLSIGN",
		deps.Game.PlayerName, config.MaxPlayerNameRunes,
		fonts.Face(assets.SizeLarge, false), fonts.Face(assets.SizeSmall, false))

	start := ui.NewButton(ui.CenteredRect(cx, top+200, 420, 56), "INITIALIZE MISSION", fonts.Face(assets.SizeLarge, true))

	hall := ui.NewButton(ui.CenteredRect(cx, top+268, 240, 26), hallOpenText, fonts.Face(assets.SizeSmall, true))
	hall.BgColor = config.PanelDarkColor
	hall.HoverColor = config.PanelBorder
	hall.TextColor = config.TextMutedColor

	table := ui.NewLeaderboardTable(float32(cx-210), float32(top+310), 420, fonts.Face(assets.SizeSmall, false))

	return &MenuState{sm: sm, deps: deps, name: name, start: start, hall: hall, table: table}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	// брифинг и таблица рекордов догружаются в фоне
	m.deps.Game.Update(deltaTime)
	m.name.Update(deltaTime)

	if m.hall.IsClicked() || inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		m.table.Toggle()
		m.hall.Text = hallOpenText
		if m.table.IsVisible {
			m.hall.Text = hallCloseText
		}
	}
	if m.start.IsClicked() || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g := m.deps.Game
		g.PlayerName = m.name.Value()
		g.Start()
		m.sm.SetState(NewGameState(m.sm, m.deps))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	m.deps.Game.Draw(screen)

	w, h := m.deps.size()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), config.OverlayColor, false)

	cx := w / 2
	top := h/2 - 170
	fonts := m.deps.Fonts

	panelH := float32(320)
	if m.table.IsVisible {
		panelH += m.table.Height(len(m.deps.Game.Leaderboard)) + 20
	}
	vector.DrawFilledRect(screen, float32(cx-250), float32(top-20), 500, panelH, config.PanelDarkColor, true)
	vector.StrokeRect(screen, float32(cx-250), float32(top-20), 500, panelH, 1, config.PanelBorder, true)

	ui.DrawCentered(screen, "STATION-CAT", fonts.Face(assets.SizeBanner, true), cx, top+52, config.TextLightColor)
	ui.DrawCentered(screen, "VOID-BOUND GUARD UNIT", fonts.Face(assets.SizeBody, false), cx, top+82, config.AccentRedColor)

	m.name.Draw(screen)
	m.start.Draw(screen)
	m.hall.Draw(screen)
	m.table.Draw(screen, m.deps.Game.Leaderboard, 0)
}

func (m *MenuState) Exit() {}
