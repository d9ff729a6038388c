// internal/system/path.go
package system

import (
	"go-planes/internal/component"
	"go-planes/internal/entity"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var pathFollowerQuery = donburi.NewQuery(filter.Contains(component.Position, component.PathMoveable))

// PathSystem walks path followers through their waypoints and removes them
// after the last one.
type PathSystem struct {
	ecs *entity.ECS
}

func NewPathSystem(ecs *entity.ECS) *PathSystem {
	return &PathSystem{ecs: ecs}
}

func (s *PathSystem) Update(deltaTime float64) {
	var finished []donburi.Entity
	pathFollowerQuery.Each(s.ecs.World, func(entry *donburi.Entry) {
		path := component.PathMoveable.Get(entry)
		if path.Done() {
			finished = append(finished, entry.Entity())
			return
		}

		pos := component.Position.Get(entry)
		target := path.Waypoints[path.NextIndex]
		toTarget := target.Sub(pos.XY())
		step := path.Speed * deltaTime

		if toTarget.Len() <= step {
			// snap, then aim for the next point on the following tick
			pos.X, pos.Y = target.X, target.Y
			path.NextIndex++
			if path.Done() {
				finished = append(finished, entry.Entity())
			}
			return
		}

		move := toTarget.Normalize().Scale(step)
		pos.X += move.X
		pos.Y += move.Y
	})
	despawnAll(s.ecs, finished)
}
