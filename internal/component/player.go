// internal/component/player.go
package component

import (
	"go-planes/pkg/geom"

	"github.com/yohamta/donburi"
)

// PlayerData holds the controllable plane's movement state.
type PlayerData struct {
	MovementSpeed        float64
	MaxSpeed             float64
	MovementDirection    geom.Vec2
	TargetAnimationFrame int // 0 level flight, 1 banking
}

var Player = donburi.NewComponentType[PlayerData]()
