// internal/state/pause_state.go
package state

import (
	"go-planes/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState freezes the run; the same key resumes it.
type PauseState struct {
	stateMachine  *StateMachine
	session       *Session
	previousState *GameState
}

func NewPauseState(sm *StateMachine, session *Session, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		session:       session,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if s.session.Input.Intent().Pause {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	s.previousState.drawBanner(screen, "PAUSED")
}

func (s *PauseState) Exit() {}

func (s *PauseState) ApplyConfig(cfg config.Config) {
	s.previousState.ApplyConfig(cfg)
}
