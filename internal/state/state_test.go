package state

import (
	"testing"

	"go-planes/internal/config"
	"go-planes/internal/defs"
	"go-planes/internal/event"
	"go-planes/internal/input"
)

// scripted replays one intent per call, then returns zero intents.
type scripted struct {
	intents []input.Intent
}

func (s *scripted) Intent() input.Intent {
	if len(s.intents) == 0 {
		return input.Intent{}
	}
	in := s.intents[0]
	s.intents = s.intents[1:]
	return in
}

func (s *scripted) push(in ...input.Intent) {
	s.intents = append(s.intents, in...)
}

func newTestSession(src input.Source) *Session {
	return &Session{Config: config.Default(), Waves: defs.DefaultWaves(), Input: src, Seed: 1}
}

func TestStateMachine_MenuStartsGame(t *testing.T) {
	src := &scripted{}
	session := newTestSession(src)
	sm := NewStateMachine()
	sm.SetState(NewMenuState(sm, session, 0))

	sm.Update(0.016)
	if _, ok := sm.Current().(*MenuState); !ok {
		t.Fatalf("left the menu without input: %T", sm.Current())
	}

	src.push(input.Intent{Confirm: true})
	sm.Update(0.016)
	if _, ok := sm.Current().(*GameState); !ok {
		t.Fatalf("state = %T, want *GameState", sm.Current())
	}
}

func TestStateMachine_PauseFreezesRun(t *testing.T) {
	src := &scripted{}
	session := newTestSession(src)
	sm := NewStateMachine()
	gs := NewGameState(sm, session)
	sm.SetState(gs)

	src.push(input.Intent{Pause: true})
	sm.Update(0.016)
	if _, ok := sm.Current().(*PauseState); !ok {
		t.Fatalf("state = %T, want *PauseState", sm.Current())
	}

	before := gs.Game().ECS.Camera.Y
	for i := 0; i < 10; i++ {
		sm.Update(0.016)
	}
	if gs.Game().ECS.Camera.Y != before {
		t.Error("run advanced while paused")
	}

	src.push(input.Intent{Pause: true})
	sm.Update(0.016)
	if sm.Current() != gs {
		t.Fatalf("state = %T, want the paused game", sm.Current())
	}
}

func TestStateMachine_GameOverReturnsToMenu(t *testing.T) {
	src := &scripted{}
	session := newTestSession(src)
	sm := NewStateMachine()
	gs := NewGameState(sm, session)
	sm.SetState(gs)

	ecs := gs.Game().ECS
	ecs.AddScore(42)
	ecs.Damage.Push(event.DamageEvent{Amount: 1000, Target: ecs.PlayerID})
	sm.Update(0.016) // damage lands
	sm.Update(0.016) // phase checked

	if _, ok := sm.Current().(*GameOverState); !ok {
		t.Fatalf("state = %T, want *GameOverState", sm.Current())
	}

	src.push(input.Intent{Confirm: true})
	sm.Update(0.016)
	menu, ok := sm.Current().(*MenuState)
	if !ok {
		t.Fatalf("state = %T, want *MenuState", sm.Current())
	}
	if menu.score != 42 {
		t.Errorf("menu score = %d, want 42", menu.score)
	}
}

func TestStateMachine_ApplyConfig(t *testing.T) {
	session := newTestSession(&scripted{})
	sm := NewStateMachine()
	gs := NewGameState(sm, session)
	sm.SetState(gs)

	cfg := config.Default()
	cfg.General.ScrollSpeed = 77
	sm.ApplyConfig(session, cfg)

	if session.Config.General.ScrollSpeed != 77 {
		t.Error("session config not updated")
	}
	if gs.Game().ECS.Config.General.ScrollSpeed != 77 {
		t.Error("running game kept the old config")
	}
}
