// internal/state/pause_state.go
package state

import (
	"image/color"

	"station-cat/internal/assets"
	"station-cat/internal/config"
	"station-cat/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает игровые часы: пока он активен, Game.Update не вызывается.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	deps          *Deps
}

func NewPauseState(sm *StateMachine, prevState State, deps *Deps) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		deps:          deps,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}

	w, h := s.deps.size()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{0, 0, 0, 128}, false)
	ui.DrawCentered(screen, "PAUSED", s.deps.Fonts.Face(assets.SizeHuge, true), w/2, h/2, config.TextLightColor)
	ui.DrawCentered(screen, "P / ESC TO RESUME", s.deps.Fonts.Face(assets.SizeSmall, false), w/2, h/2+36, config.TextMutedColor)
}

func (s *PauseState) Exit() {}
