// internal/entity/ecs.go
package entity

import (
	"go-planes/internal/component"
	"go-planes/internal/config"
	"go-planes/internal/defs"
	"go-planes/internal/event"
	"go-planes/internal/utils"
	"go-planes/pkg/geom"

	"github.com/yohamta/donburi"
)

// ECS is the per-run context handed to every system: the donburi world plus
// the shared resources systems read and write each tick.
type ECS struct {
	World     donburi.World
	Config    config.Config
	Camera    geom.Vec2 // view center; Y is the scroll position
	Score     int64
	Waves     []*component.Wave
	Damage    event.Queue[event.DamageEvent]
	Collected event.Queue[event.CollectionEvent]
	GameState component.GameState
	PlayerID  donburi.Entity
	Rng       *utils.PRNGService
}

// NewECS builds an empty world with fresh wave counters.
func NewECS(cfg config.Config, waves []defs.WaveDefinition, seed int64) *ECS {
	ecs := &ECS{
		World:     donburi.NewWorld(),
		Config:    cfg,
		Waves:     make([]*component.Wave, 0, len(waves)),
		GameState: component.PlayingState,
		Rng:       utils.NewPRNGService(seed),
	}
	for _, def := range waves {
		ecs.Waves = append(ecs.Waves, &component.Wave{
			EnemiesToSpawn: def.EnemiesToSpawn,
			TriggerY:       def.TriggerY,
			EnemyPath:      append([]geom.Vec2(nil), def.EnemyPath...),
		})
	}
	return ecs
}

// Alive reports whether e still exists.
func (ecs *ECS) Alive(e donburi.Entity) bool {
	return e != donburi.Null && ecs.World.Valid(e)
}

// Despawn removes e; removing a dead entity is a no-op.
func (ecs *ECS) Despawn(e donburi.Entity) {
	if ecs.Alive(e) {
		ecs.World.Remove(e)
	}
}

// Player returns the player entry if the player is alive.
func (ecs *ECS) Player() (*donburi.Entry, bool) {
	if !ecs.Alive(ecs.PlayerID) {
		return nil, false
	}
	return ecs.World.Entry(ecs.PlayerID), true
}

// ViewHalfSize is half the visible area in world units.
func (ecs *ECS) ViewHalfSize() geom.Vec2 {
	return geom.Vec2{X: ecs.Config.ScreenWidth() / 2, Y: ecs.Config.General.ScreenHeight / 2}
}

// InView reports whether p lies inside the visible area grown by margin.
func (ecs *ECS) InView(p geom.Vec3, margin float64) bool {
	half := ecs.ViewHalfSize()
	d := p.XY().Sub(ecs.Camera)
	return d.X >= -half.X-margin && d.X <= half.X+margin &&
		d.Y >= -half.Y-margin && d.Y <= half.Y+margin
}

// AddScore changes the score and returns the new value.
func (ecs *ECS) AddScore(amount int64) int64 {
	ecs.Score += amount
	return ecs.Score
}
