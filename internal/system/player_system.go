// internal/system/player_system.go
package system

import (
	"go-planes/internal/component"
	"go-planes/internal/config"
	"go-planes/internal/entity"
	"go-planes/internal/event"
	"go-planes/internal/input"
	"go-planes/internal/utils"
)

// PlayerSystem переводит ввод в движение и стрельбу самолёта игрока.
type PlayerSystem struct {
	ecs   *entity.ECS
	input input.Source
}

func NewPlayerSystem(ecs *entity.ECS, source input.Source) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, input: source}
}

func (s *PlayerSystem) Update(deltaTime float64) {
	entry, ok := s.ecs.Player()
	if !ok {
		return
	}
	intent := s.input.Intent()
	player := component.Player.Get(entry)
	pos := component.Position.Get(entry)

	player.MovementDirection = intent.Move.Normalize()
	speed := utils.Clamp(player.MovementSpeed, 0, player.MaxSpeed)
	step := player.MovementDirection.Scale(speed * deltaTime)

	half := s.ecs.ViewHalfSize()
	extent := s.ecs.Config.Collision.HalfExtent
	pos.X = utils.Clamp(pos.X+step.X, s.ecs.Camera.X-half.X+extent, s.ecs.Camera.X+half.X-extent)
	pos.Y = utils.Clamp(pos.Y+step.Y, s.ecs.Camera.Y-half.Y+extent, s.ecs.Camera.Y+half.Y-extent)

	player.TargetAnimationFrame = 0
	if player.MovementDirection.X != 0 {
		player.TargetAnimationFrame = 1
	}
	if entry.HasComponent(component.FrameAnimation) {
		component.FrameAnimation.Get(entry).Current = player.TargetAnimationFrame
	}
	if entry.HasComponent(component.Shootable) {
		component.Shootable.Get(entry).IsShooting = intent.Shoot
	}
}

// OnEvent применяет новые скорости после перезагрузки конфига.
func (s *PlayerSystem) OnEvent(e event.Event) {
	if e.Type != event.ConfigReloaded {
		return
	}
	cfg, ok := e.Data.(config.Config)
	if !ok {
		return
	}
	entry, alive := s.ecs.Player()
	if !alive {
		return
	}
	player := component.Player.Get(entry)
	player.MovementSpeed = cfg.Player.MovementSpeed
	player.MaxSpeed = cfg.Player.MaxSpeed
}
