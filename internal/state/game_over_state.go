// internal/state/game_over_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GameOverState shows the final score over the frozen run until Enter.
type GameOverState struct {
	sm       *StateMachine
	session  *Session
	finished *GameState
}

func NewGameOverState(sm *StateMachine, session *Session, finished *GameState) *GameOverState {
	return &GameOverState{sm: sm, session: session, finished: finished}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	if s.session.Input.Intent().Confirm {
		s.sm.SetState(NewMenuState(s.sm, s.session, s.finished.game.ECS.Score))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.finished.Draw(screen)
	s.finished.drawBanner(screen, "GAME OVER", "score "+formatScore(s.finished.game.ECS.Score), "press Enter")
}

func (s *GameOverState) Exit() {}
