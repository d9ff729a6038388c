// internal/component/movement.go
package component

import (
	"go-planes/pkg/geom"

	"github.com/yohamta/donburi"
)

// Position is the world position of an entity; Z orders drawing.
var Position = donburi.NewComponentType[geom.Vec3]()

// MoveableData drives constant velocity translation.
type MoveableData struct {
	Direction   geom.Vec2
	Speed       float64 // world units per second
	AutoDestroy bool    // despawn once outside the view
}

var Moveable = donburi.NewComponentType[MoveableData]()

// PathMoveableData makes an entity walk a fixed list of waypoints and
// despawn after the last one.
type PathMoveableData struct {
	Waypoints []geom.Vec2
	NextIndex int
	Speed     float64 // world units per second
}

// Done reports whether every waypoint has been consumed.
func (p *PathMoveableData) Done() bool {
	return p.NextIndex >= len(p.Waypoints)
}

var PathMoveable = donburi.NewComponentType[PathMoveableData]()
