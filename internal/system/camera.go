// internal/system/camera.go
package system

import (
	"go-planes/internal/component"
	"go-planes/internal/entity"
)

// CameraSystem scrolls the view upward and carries the player along.
type CameraSystem struct {
	ecs *entity.ECS
}

func NewCameraSystem(ecs *entity.ECS) *CameraSystem {
	return &CameraSystem{ecs: ecs}
}

func (s *CameraSystem) Update(deltaTime float64) {
	dy := s.ecs.Config.General.ScrollSpeed * deltaTime
	s.ecs.Camera.Y += dy
	if player, ok := s.ecs.Player(); ok {
		component.Position.Get(player).Y += dy
	}
}
