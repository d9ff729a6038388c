// internal/system/movement.go
package system

import (
	"go-planes/internal/component"
	"go-planes/internal/config"
	"go-planes/internal/entity"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var moveableQuery = donburi.NewQuery(filter.Contains(component.Position, component.Moveable))

// MovementSystem двигает сущности с постоянной скоростью
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(deltaTime float64) {
	var gone []donburi.Entity
	moveableQuery.Each(s.ecs.World, func(entry *donburi.Entry) {
		m := component.Moveable.Get(entry)
		pos := component.Position.Get(entry)
		step := m.Direction.Scale(m.Speed * deltaTime)
		pos.X += step.X
		pos.Y += step.Y

		if m.AutoDestroy && !s.ecs.InView(*pos, config.ScreenMargin) {
			gone = append(gone, entry.Entity())
		}
	})
	despawnAll(s.ecs, gone)
}
