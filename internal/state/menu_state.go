// internal/state/menu_state.go
package state

import (
	"go-planes/internal/config"
	"go-planes/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

// MenuState — стартовый экран, Enter начинает игру
type MenuState struct {
	sm      *StateMachine
	session *Session
	score   int64 // last run, shown under the prompt
}

func NewMenuState(sm *StateMachine, session *Session, lastScore int64) *MenuState {
	return &MenuState{sm: sm, session: session, score: lastScore}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	if m.session.Input.Intent().Confirm {
		m.sm.SetState(NewGameState(m.sm, m.session))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	if m.session.FontFace == nil {
		return
	}
	cx := float32(m.session.Config.ScreenWidth()) / 2
	cy := float32(m.session.Config.General.ScreenHeight) / 2
	lines := []string{config.WindowTitle, "", "press Enter"}
	if m.score > 0 {
		lines = append(lines, "", "last score "+formatScore(m.score))
	}
	ui.DrawTextCentered(screen, m.session.FontFace, cx, cy-30, lines...)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
