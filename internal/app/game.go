// internal/app/game.go
package app

import (
	"log"

	"go-planes/internal/component"
	"go-planes/internal/config"
	"go-planes/internal/defs"
	"go-planes/internal/entity"
	"go-planes/internal/event"
	"go-planes/internal/input"
	"go-planes/internal/system"
	"go-planes/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// Game holds one run: the world, its systems in update order and the HUD.
type Game struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher

	CameraSystem    *system.CameraSystem
	PlayerSystem    *system.PlayerSystem
	ShootSystem     *system.ShootSystem
	MovementSystem  *system.MovementSystem
	PathSystem      *system.PathSystem
	WaveSystem      *system.WaveSystem
	CollisionSystem *system.CollisionSystem
	DamageSystem    *system.DamageSystem
	AnimationSystem *system.AnimationSystem
	EffectSystem    *system.VisualEffectSystem
	StateSystem     *system.StateSystem
	RenderSystem    *system.RenderSystem

	ScoreIndicator  *ui.ScoreIndicator
	HealthIndicator *ui.PlayerHealthIndicator
	WaveIndicator   *ui.WaveIndicator
	FontFace        font.Face
}

// NewGame initializes a new run with the player at the start of the level.
func NewGame(cfg config.Config, waves []defs.WaveDefinition, source input.Source, fontFace font.Face, seed int64) *Game {
	ecs := entity.NewECS(cfg, waves, seed)
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		CameraSystem:    system.NewCameraSystem(ecs),
		PlayerSystem:    system.NewPlayerSystem(ecs, source),
		ShootSystem:     system.NewShootSystem(ecs),
		MovementSystem:  system.NewMovementSystem(ecs),
		PathSystem:      system.NewPathSystem(ecs),
		WaveSystem:      system.NewWaveSystem(ecs, eventDispatcher),
		CollisionSystem: system.NewCollisionSystem(ecs),
		DamageSystem:    system.NewDamageSystem(ecs, eventDispatcher),
		AnimationSystem: system.NewAnimationSystem(ecs),
		EffectSystem:    system.NewVisualEffectSystem(ecs),
		StateSystem:     system.NewStateSystem(ecs, eventDispatcher),
		RenderSystem:    system.NewRenderSystem(ecs),
		FontFace:        fontFace,
	}
	g.initUI()

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.ScoreChanged, listener)
	eventDispatcher.Subscribe(event.WaveTriggered, listener)
	eventDispatcher.Subscribe(event.ConfigReloaded, g.PlayerSystem)

	ecs.SpawnPlayer()
	return g
}

func (g *Game) initUI() {
	g.ScoreIndicator = ui.NewScoreIndicator(0, 0, g.FontFace)
	g.HealthIndicator = ui.NewPlayerHealthIndicator(0, 0, g.FontFace)
	g.WaveIndicator = ui.NewWaveIndicator(0, 0, 60, g.FontFace)
	g.layoutUI()
}

// layoutUI anchors the HUD to the corners of the current screen size.
func (g *Game) layoutUI() {
	width := float32(g.ECS.Config.ScreenWidth())
	height := float32(g.ECS.Config.General.ScreenHeight)
	g.ScoreIndicator.X, g.ScoreIndicator.Y = config.HUDMargin, config.HUDMargin+12
	g.HealthIndicator.X = config.HUDMargin
	g.HealthIndicator.Y = height - config.HUDMargin - config.HealthBarHeight - 18
	g.WaveIndicator.X, g.WaveIndicator.Y = width-config.HUDMargin, config.HUDMargin+12
}

// Update advances the run by one frame.
func (g *Game) Update(deltaTime float64) {
	g.CameraSystem.Update(deltaTime)
	g.PlayerSystem.Update(deltaTime)
	g.ShootSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.PathSystem.Update(deltaTime)
	g.WaveSystem.Update(deltaTime)
	g.CollisionSystem.Update(deltaTime)
	g.DamageSystem.Update(deltaTime)
	g.AnimationSystem.Update(deltaTime)
	g.EffectSystem.Update(deltaTime)
}

// Phase is the run's current phase.
func (g *Game) Phase() component.GameState {
	return g.StateSystem.Current()
}

// ApplyConfig swaps in a reloaded config and re-anchors the HUD. Entities
// already spawned keep the values they were created with, except the
// player's speeds.
func (g *Game) ApplyConfig(cfg config.Config) {
	g.ECS.Config = cfg
	g.layoutUI()
	log.Printf("config reloaded: scroll speed %.1f", cfg.General.ScrollSpeed)
	g.EventDispatcher.Dispatch(event.Event{Type: event.ConfigReloaded, Data: cfg})
}

// PlayerHealth returns the player's current and max health; zero once dead.
func (g *Game) PlayerHealth() (int, int) {
	entry, ok := g.ECS.Player()
	if !ok {
		return 0, g.ECS.Config.Player.BaseHealth
	}
	h := component.Health.Get(entry)
	return h.Amount, h.Max
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.RenderSystem.Draw(screen)
	g.DrawUI(screen)
}

// DrawUI рисует HUD поверх мира
func (g *Game) DrawUI(screen *ebiten.Image) {
	g.ScoreIndicator.Draw(screen)
	health, maxHealth := g.PlayerHealth()
	g.HealthIndicator.Draw(screen, health, maxHealth)
	g.WaveIndicator.Draw(screen, g.ECS.Waves)
}

// GameEventListener обрабатывает события, важные для HUD.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.ScoreChanged:
		if score, ok := e.Data.(int64); ok {
			l.game.ScoreIndicator.SetScore(score)
		}
	case event.WaveTriggered:
		if i, ok := e.Data.(int); ok {
			log.Printf("wave %d of %d incoming", i+1, len(l.game.ECS.Waves))
		}
	}
}
