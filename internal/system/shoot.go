// internal/system/shoot.go
package system

import (
	"go-planes/internal/component"
	"go-planes/internal/config"
	"go-planes/internal/entity"
	"go-planes/pkg/geom"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var shootableQuery = donburi.NewQuery(filter.Contains(component.Position, component.Shootable))

type shot struct {
	source  donburi.Entity
	faction component.Faction
	pos     geom.Vec3
	dir     geom.Vec2
	speed   float64
	damage  int
}

// ShootSystem fires projectiles from every shootable whose timer elapsed.
// Enemies fire on their own while on screen; the player fires while Shoot is
// held.
type ShootSystem struct {
	ecs *entity.ECS
}

func NewShootSystem(ecs *entity.ECS) *ShootSystem {
	return &ShootSystem{ecs: ecs}
}

func (s *ShootSystem) Update(deltaTime float64) {
	var shots []shot
	shootableQuery.Each(s.ecs.World, func(entry *donburi.Entry) {
		gun := component.Shootable.Get(entry)
		gun.Timer += deltaTime
		if gun.Timer > gun.Interval {
			// не копим выстрелы, пока кнопка отпущена
			gun.Timer = gun.Interval
		}

		pos := *component.Position.Get(entry)
		wantsToFire := gun.IsShooting || (gun.Auto && s.ecs.InView(pos, 0))
		if !wantsToFire || gun.Timer < gun.Interval {
			return
		}
		gun.Timer = 0

		faction := component.FactionEnemy
		if entry.HasComponent(component.FactionOf) {
			faction = *component.FactionOf.Get(entry)
		}
		dir := gun.Direction.Normalize()
		muzzle := pos.XY().Add(dir.Scale(config.ProjectileOffset))
		shots = append(shots, shot{
			source:  entry.Entity(),
			faction: faction,
			pos:     muzzle.Extend(pos.Z),
			dir:     dir,
			speed:   gun.Speed,
			damage:  gun.Damage,
		})
	})

	for _, sh := range shots {
		s.ecs.SpawnProjectile(sh.source, sh.faction, sh.pos, sh.dir, sh.speed, sh.damage)
	}
}
