// internal/component/tags.go
package component

import "github.com/yohamta/donburi"

var (
	// Collider marks entities that projectiles can hit.
	Collider = donburi.NewTag()
	EnemyTag = donburi.NewTag()
)
