// internal/system/collision.go
package system

import (
	"go-planes/internal/component"
	"go-planes/internal/entity"
	"go-planes/internal/event"
	"go-planes/pkg/geom"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var (
	projectileQuery  = donburi.NewQuery(filter.Contains(component.Position, component.Projectile))
	colliderQuery    = donburi.NewQuery(filter.Contains(component.Position, component.Collider))
	collectableQuery = donburi.NewQuery(filter.Contains(component.Position, component.Collectable))
)

type collider struct {
	entity     donburi.Entity
	pos        geom.Vec3
	faction    component.Faction
	hasFaction bool
}

// CollisionSystem turns projectile hits into damage events and player
// pickups into collection events.
type CollisionSystem struct {
	ecs *entity.ECS
}

func NewCollisionSystem(ecs *entity.ECS) *CollisionSystem {
	return &CollisionSystem{ecs: ecs}
}

func (s *CollisionSystem) Update(deltaTime float64) {
	s.checkProjectiles()
	s.checkCollectables()
}

func (s *CollisionSystem) boxSize() geom.Vec2 {
	side := s.ecs.Config.Collision.HalfExtent * 2
	return geom.Vec2{X: side, Y: side}
}

func (s *CollisionSystem) checkProjectiles() {
	world := s.ecs.World
	size := s.boxSize()

	var colliders []collider
	colliderQuery.Each(world, func(entry *donburi.Entry) {
		c := collider{entity: entry.Entity(), pos: *component.Position.Get(entry)}
		if entry.HasComponent(component.FactionOf) {
			c.faction = *component.FactionOf.Get(entry)
			c.hasFaction = true
		}
		colliders = append(colliders, c)
	})
	if len(colliders) == 0 {
		return
	}

	var consumed []donburi.Entity
	projectileQuery.Each(world, func(entry *donburi.Entry) {
		shot := component.Projectile.Get(entry)
		pos := *component.Position.Get(entry)
		self := entry.Entity()
		for _, c := range colliders {
			if c.entity == self || c.entity == shot.Source {
				continue
			}
			if c.hasFaction && c.faction == shot.Faction {
				continue
			}
			if geom.Collide(c.pos, size, pos, size) == geom.CollisionNone {
				continue
			}
			consumed = append(consumed, self)
			s.ecs.Damage.Push(event.DamageEvent{
				Amount:      shot.Damage,
				Target:      c.entity,
				Translation: pos,
			})
			return
		}
	})

	despawnAll(s.ecs, consumed)
}

func (s *CollisionSystem) checkCollectables() {
	player, ok := s.ecs.Player()
	if !ok {
		return
	}
	playerPos := *component.Position.Get(player)
	half := s.ecs.Config.Collision.HalfExtent

	var picked []donburi.Entity
	collectableQuery.Each(s.ecs.World, func(entry *donburi.Entry) {
		if !geom.Overlaps(*component.Position.Get(entry), half, playerPos, half) {
			return
		}
		picked = append(picked, entry.Entity())
		s.ecs.Collected.Push(event.CollectionEvent{Value: component.Collectable.Get(entry).Value})
	})

	despawnAll(s.ecs, picked)
}
