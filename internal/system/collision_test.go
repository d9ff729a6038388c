package system

import (
	"testing"

	"go-planes/internal/component"
	"go-planes/pkg/geom"

	"github.com/yohamta/donburi"
)

var up = geom.Vec2{X: 0, Y: 1}

func TestCollisionSystem_Projectiles(t *testing.T) {
	tests := []struct {
		name       string
		faction    component.Faction
		fromTarget bool // projectile fired by the entity it overlaps
		offset     float64
		wantHit    bool
	}{
		{name: "player shot hits enemy", faction: component.FactionPlayer, wantHit: true},
		{name: "never hits its source", faction: component.FactionPlayer, fromTarget: true},
		{name: "same faction passes through", faction: component.FactionEnemy},
		{name: "edges touching is a miss", faction: component.FactionPlayer, offset: 16},
		{name: "partial overlap hits", faction: component.FactionPlayer, offset: 10, wantHit: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ecs := newTestECS(t)
			enemy := ecs.SpawnEnemy([]geom.Vec2{{X: 0, Y: 0}, {X: 0, Y: -100}})
			source := donburi.Null
			if tt.fromTarget {
				source = enemy
			}
			shot := ecs.SpawnProjectile(source, tt.faction, geom.Vec3{X: tt.offset, Y: 0}, up, 100, 15)

			NewCollisionSystem(ecs).Update(0.016)

			events := ecs.Damage.Drain()
			if !tt.wantHit {
				if len(events) != 0 {
					t.Fatalf("got %d damage events, want none", len(events))
				}
				if !ecs.Alive(shot) {
					t.Error("projectile removed without a hit")
				}
				return
			}
			if len(events) != 1 {
				t.Fatalf("got %d damage events, want 1", len(events))
			}
			evt := events[0]
			if evt.Target != enemy || evt.Amount != 15 || evt.Translation.X != tt.offset {
				t.Errorf("event = %+v", evt)
			}
			if ecs.Alive(shot) {
				t.Error("projectile survived its hit")
			}
		})
	}
}

func TestCollisionSystem_ProjectileConsumedByFirstHit(t *testing.T) {
	ecs := newTestECS(t)
	path := []geom.Vec2{{X: 0, Y: 0}, {X: 0, Y: -100}}
	ecs.SpawnEnemy(path)
	ecs.SpawnEnemy(path)
	ecs.SpawnProjectile(donburi.Null, component.FactionPlayer, geom.Vec3{}, up, 100, 15)

	NewCollisionSystem(ecs).Update(0.016)

	if got := ecs.Damage.Len(); got != 1 {
		t.Errorf("damage events = %d, want 1", got)
	}
}

func TestCollisionSystem_EnemyShotHitsPlayer(t *testing.T) {
	ecs := newTestECS(t)
	player := ecs.SpawnPlayer()
	enemy := ecs.SpawnEnemy(straightPath())
	ecs.SpawnProjectile(enemy, component.FactionEnemy, geom.Vec3{X: 2, Y: 2}, up.Scale(-1), 100, 15)

	NewCollisionSystem(ecs).Update(0.016)

	events := ecs.Damage.Drain()
	if len(events) != 1 || events[0].Target != player {
		t.Fatalf("events = %+v, want one hit on the player", events)
	}
}

func TestCollisionSystem_PlayerCollectsPickup(t *testing.T) {
	ecs := newTestECS(t)
	ecs.SpawnPlayer()
	near := ecs.SpawnCollectable(geom.Vec3{X: 4, Y: -4})
	far := ecs.SpawnCollectable(geom.Vec3{X: 100, Y: 0})

	NewCollisionSystem(ecs).Update(0.016)

	collected := ecs.Collected.Drain()
	if len(collected) != 1 || collected[0].Value != ecs.Config.Collectables.Value {
		t.Fatalf("collected = %+v", collected)
	}
	if ecs.Alive(near) {
		t.Error("collected pickup still alive")
	}
	if !ecs.Alive(far) {
		t.Error("distant pickup removed")
	}
}

func TestCollisionSystem_NoPlayerNoPickup(t *testing.T) {
	ecs := newTestECS(t)
	ecs.SpawnCollectable(geom.Vec3{})

	NewCollisionSystem(ecs).Update(0.016)

	if ecs.Collected.Len() != 0 {
		t.Error("pickup collected without a player")
	}
}
