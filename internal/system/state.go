// internal/system/state.go
package system

import (
	"go-planes/internal/component"
	"go-planes/internal/entity"
	"go-planes/internal/event"
)

// StateSystem переключает фазу забега по событиям конца уровня и смерти игрока.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.LevelCompleted, ss)
	eventDispatcher.Subscribe(event.PlayerDied, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlayerDied:
		s.ecs.GameState = component.GameOverState
	case event.LevelCompleted:
		// смерть важнее победы
		if s.ecs.GameState == component.PlayingState {
			s.ecs.GameState = component.LevelCompleteState
		}
	}
}

func (s *StateSystem) Current() component.GameState {
	return s.ecs.GameState
}
