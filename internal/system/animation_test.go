package system

import (
	"testing"

	"go-planes/internal/component"
	"go-planes/pkg/geom"
)

func TestAnimationSystem_OneShotDespawns(t *testing.T) {
	ecs := newTestECS(t)
	boom := ecs.SpawnExplosion(geom.Vec3{})
	anims := NewAnimationSystem(ecs)
	step := ecs.Config.Animations.ExplosionFrameDuration

	for frame := 1; frame <= 3; frame++ {
		anims.Update(step)
		if !ecs.Alive(boom) {
			t.Fatalf("explosion gone at frame %d", frame)
		}
		if got := component.Sprite.Get(ecs.World.Entry(boom)).Frame; got != frame {
			t.Fatalf("frame = %d, want %d", got, frame)
		}
	}
	anims.Update(step)
	if ecs.Alive(boom) {
		t.Error("explosion alive after its last frame")
	}
}

func TestAnimationSystem_LoopingWraps(t *testing.T) {
	ecs := newTestECS(t)
	ecs.Config.Animations.DefaultFrameDuration = 0.25
	coin := ecs.SpawnCollectable(geom.Vec3{})
	anims := NewAnimationSystem(ecs)

	want := []int{1, 2, 0, 1}
	for i, w := range want {
		anims.Update(0.25)
		if got := component.Sprite.Get(ecs.World.Entry(coin)).Frame; got != w {
			t.Fatalf("update %d: frame = %d, want %d", i, got, w)
		}
	}
}

func TestAnimationSystem_DrivenFollowsController(t *testing.T) {
	ecs := newTestECS(t)
	player := ecs.SpawnPlayer()
	entry := ecs.World.Entry(player)
	component.FrameAnimation.Get(entry).Current = 1

	NewAnimationSystem(ecs).Update(10)

	if got := component.Sprite.Get(entry).Frame; got != 1 {
		t.Errorf("frame = %d, want 1", got)
	}
}
