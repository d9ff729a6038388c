// internal/state/game_state.go
package state

import (
	"strconv"

	game "go-planes/internal/app"
	"go-planes/internal/component"
	"go-planes/internal/config"
	"go-planes/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GameState — состояние игры
type GameState struct {
	sm      *StateMachine
	session *Session
	game    *game.Game
}

func NewGameState(sm *StateMachine, session *Session) *GameState {
	return &GameState{
		sm:      sm,
		session: session,
		game:    game.NewGame(session.Config, session.Waves, session.Input, session.FontFace, session.Seed),
	}
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

// Game exposes the running game.
func (g *GameState) Game() *game.Game {
	return g.game
}

func (g *GameState) Update(deltaTime float64) {
	intent := g.session.Input.Intent()

	switch g.game.Phase() {
	case component.GameOverState:
		g.sm.SetState(NewGameOverState(g.sm, g.session, g))
		return
	case component.LevelCompleteState:
		if intent.Confirm {
			g.sm.SetState(NewMenuState(g.sm, g.session, g.game.ECS.Score))
			return
		}
	}

	if intent.Pause {
		g.sm.SetState(NewPauseState(g.sm, g.session, g))
		return
	}

	g.game.Update(deltaTime)
}

func (g *GameState) ApplyConfig(cfg config.Config) {
	g.game.ApplyConfig(cfg)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.game.Draw(screen)
	if g.game.Phase() == component.LevelCompleteState {
		g.drawBanner(screen, "LEVEL COMPLETE", "score "+formatScore(g.game.ECS.Score), "press Enter")
	}
}

// drawBanner затемняет экран и пишет сообщение по центру
func (g *GameState) drawBanner(screen *ebiten.Image, lines ...string) {
	w := float32(g.game.ECS.Config.ScreenWidth())
	h := float32(g.game.ECS.Config.General.ScreenHeight)
	vector.DrawFilledRect(screen, 0, 0, w, h, config.OverlayColor, false)
	if g.session.FontFace != nil {
		ui.DrawTextCentered(screen, g.session.FontFace, w/2, h/2-20, lines...)
	}
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}

func formatScore(score int64) string {
	return strconv.FormatInt(score, 10)
}
