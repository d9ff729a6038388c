// internal/entity/factory.go
package entity

import (
	"go-planes/internal/component"
	"go-planes/internal/config"
	"go-planes/pkg/geom"

	"github.com/yohamta/donburi"
)

var (
	planeFrames     = []int{0, 1}
	enemyFrames     = []int{0, 1}
	coinFrames      = []int{0, 1, 2}
	explosionFrames = []int{0, 1, 2, 3}
)

// SpawnPlayer creates the player plane at the view center.
func (ecs *ECS) SpawnPlayer() donburi.Entity {
	cfg := ecs.Config
	e := ecs.World.Create(
		component.Position,
		component.Player,
		component.Health,
		component.Collider,
		component.FactionOf,
		component.Shootable,
		component.Sprite,
		component.FrameAnimation,
	)
	entry := ecs.World.Entry(e)
	component.Position.SetValue(entry, ecs.Camera.Extend(config.PlayerDepth))
	component.Player.SetValue(entry, component.PlayerData{
		MovementSpeed: cfg.Player.MovementSpeed,
		MaxSpeed:      cfg.Player.MaxSpeed,
	})
	component.Health.SetValue(entry, component.HealthData{Amount: cfg.Player.BaseHealth, Max: cfg.Player.BaseHealth})
	component.FactionOf.SetValue(entry, component.FactionPlayer)
	component.Shootable.SetValue(entry, component.ShootableData{
		Direction: geom.Vec2{X: 0, Y: 1},
		Interval:  cfg.Projectiles.Interval,
		Timer:     cfg.Projectiles.Interval,
		Speed:     cfg.Projectiles.Speed,
		Damage:    cfg.Projectiles.Damage,
	})
	component.Sprite.SetValue(entry, component.SpriteData{Kind: component.SpritePlane, Size: cfg.Collision.HalfExtent * 2, Shadow: true})
	component.FrameAnimation.SetValue(entry, component.FrameAnimationData{
		Frames:        planeFrames,
		FrameDuration: cfg.Animations.DefaultFrameDuration,
		Looping:       true,
		Driven:        true,
	})
	ecs.PlayerID = e
	return e
}

// SpawnEnemy creates an enemy that flies path, given as offsets from the view
// center at spawn time. It starts on the first point and heads for the second.
func (ecs *ECS) SpawnEnemy(path []geom.Vec2) donburi.Entity {
	cfg := ecs.Config
	if len(path) == 0 {
		half := ecs.ViewHalfSize()
		path = []geom.Vec2{{X: 0, Y: half.Y + config.ScreenMargin}, {X: 0, Y: -half.Y - config.ScreenMargin}}
	}
	waypoints := make([]geom.Vec2, len(path))
	for i, p := range path {
		waypoints[i] = ecs.Camera.Add(p)
	}

	e := ecs.World.Create(
		component.Position,
		component.PathMoveable,
		component.Health,
		component.Collider,
		component.EnemyTag,
		component.FactionOf,
		component.Shootable,
		component.Sprite,
		component.FrameAnimation,
	)
	entry := ecs.World.Entry(e)
	component.Position.SetValue(entry, waypoints[0].Extend(config.EnemyDepth))
	component.PathMoveable.SetValue(entry, component.PathMoveableData{
		Waypoints: waypoints,
		NextIndex: 1,
		Speed:     cfg.Enemies.MovementSpeed,
	})
	component.Health.SetValue(entry, component.HealthData{Amount: cfg.Enemies.BaseHealth, Max: cfg.Enemies.BaseHealth})
	component.FactionOf.SetValue(entry, component.FactionEnemy)
	component.Shootable.SetValue(entry, component.ShootableData{
		Direction: geom.Vec2{X: 0, Y: -1},
		Interval:  cfg.Enemies.ShootInterval,
		Auto:      true,
		Speed:     cfg.Projectiles.Speed * 0.6,
		Damage:    cfg.Projectiles.Damage,
	})
	component.Sprite.SetValue(entry, component.SpriteData{Kind: component.SpriteEnemy, Size: cfg.Collision.HalfExtent * 2, Shadow: true})
	component.FrameAnimation.SetValue(entry, component.FrameAnimationData{
		Frames:        enemyFrames,
		FrameDuration: cfg.Animations.DefaultFrameDuration,
		Looping:       true,
	})
	return e
}

// SpawnProjectile fires a shot owned by source.
func (ecs *ECS) SpawnProjectile(source donburi.Entity, faction component.Faction, pos geom.Vec3, dir geom.Vec2, speed float64, damage int) donburi.Entity {
	e := ecs.World.Create(
		component.Position,
		component.Moveable,
		component.Projectile,
		component.Sprite,
	)
	entry := ecs.World.Entry(e)
	component.Position.SetValue(entry, geom.Vec3{X: pos.X, Y: pos.Y, Z: config.ProjectileDepth})
	component.Moveable.SetValue(entry, component.MoveableData{Direction: dir.Normalize(), Speed: speed, AutoDestroy: true})
	component.Projectile.SetValue(entry, component.ProjectileData{Source: source, Damage: damage, Faction: faction})
	component.Sprite.SetValue(entry, component.SpriteData{Kind: component.SpriteShot, Size: ecs.Config.Collision.HalfExtent / 2})
	return e
}

// SpawnCollectable drops a coin that stays in place in the world and is
// cleaned up once it scrolls out of view.
func (ecs *ECS) SpawnCollectable(pos geom.Vec3) donburi.Entity {
	cfg := ecs.Config
	e := ecs.World.Create(
		component.Position,
		component.Moveable,
		component.Collectable,
		component.Sprite,
		component.FrameAnimation,
	)
	entry := ecs.World.Entry(e)
	component.Position.SetValue(entry, geom.Vec3{X: pos.X, Y: pos.Y, Z: config.CollectableDepth})
	component.Moveable.SetValue(entry, component.MoveableData{AutoDestroy: true})
	component.Collectable.SetValue(entry, component.CollectableData{Value: cfg.Collectables.Value})
	component.Sprite.SetValue(entry, component.SpriteData{Kind: component.SpriteCoin, Size: cfg.Collision.HalfExtent * 1.5})
	component.FrameAnimation.SetValue(entry, component.FrameAnimationData{
		Frames:        coinFrames,
		FrameDuration: cfg.Animations.DefaultFrameDuration,
		Looping:       true,
	})
	return e
}

// SpawnExplosion plays a one-shot explosion at pos.
func (ecs *ECS) SpawnExplosion(pos geom.Vec3) donburi.Entity {
	cfg := ecs.Config
	e := ecs.World.Create(
		component.Position,
		component.Sprite,
		component.FrameAnimation,
	)
	entry := ecs.World.Entry(e)
	component.Position.SetValue(entry, geom.Vec3{X: pos.X, Y: pos.Y, Z: config.EffectDepth})
	component.Sprite.SetValue(entry, component.SpriteData{Kind: component.SpriteExplosion, Size: cfg.Collision.HalfExtent * 3})
	component.FrameAnimation.SetValue(entry, component.FrameAnimationData{
		Frames:        explosionFrames,
		FrameDuration: cfg.Animations.ExplosionFrameDuration,
	})
	return e
}
