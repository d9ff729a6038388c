// internal/component/combat.go
package component

import (
	"go-planes/pkg/geom"

	"github.com/yohamta/donburi"
)

// Faction keeps projectiles from hurting their own side.
type Faction int

const (
	FactionPlayer Faction = iota
	FactionEnemy
)

// HealthData — entity hit points. Amount never stays below zero.
type HealthData struct {
	Amount int
	Max    int
}

// TakeDamage subtracts amount once and reports whether the entity is dead.
func (h *HealthData) TakeDamage(amount int) bool {
	h.Amount -= amount
	if h.Amount <= 0 {
		h.Amount = 0
		return true
	}
	return false
}

var Health = donburi.NewComponentType[HealthData]()

// FactionOf returns the side an entity fights for.
var FactionOf = donburi.NewComponentType[Faction]()

// ProjectileData is a flying shot.
type ProjectileData struct {
	Source  donburi.Entity // the shooter, never damaged by this shot
	Damage  int
	Faction Faction
}

var Projectile = donburi.NewComponentType[ProjectileData]()

// ShootableData lets an entity emit projectiles at a fixed interval.
type ShootableData struct {
	Direction  geom.Vec2
	Interval   float64 // seconds between shots
	Timer      float64 // time since the last shot
	IsShooting bool
	Auto       bool // fire without input (enemies)
	Speed      float64
	Damage     int
}

var Shootable = donburi.NewComponentType[ShootableData]()

// CollectableData is a pickup dropped by destroyed enemies.
type CollectableData struct {
	Value int64
}

var Collectable = donburi.NewComponentType[CollectableData]()
