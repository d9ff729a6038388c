package system

import (
	"testing"

	"go-planes/internal/component"
	"go-planes/internal/defs"
	"go-planes/internal/event"
)

func TestWaveSystem_FirstWaveFinishesBeforeSecondStarts(t *testing.T) {
	ecs := newTestECS(t,
		defs.WaveDefinition{EnemiesToSpawn: 5, TriggerY: 0, EnemyPath: straightPath()},
		defs.WaveDefinition{EnemiesToSpawn: 5, TriggerY: 15, EnemyPath: straightPath()},
	)
	d := event.NewDispatcher()
	waves := NewWaveSystem(ecs, d)
	camera := NewCameraSystem(ecs)

	first, second := ecs.Waves[0], ecs.Waves[1]
	for i := 0; i < 400; i++ {
		camera.Update(0.05)
		waves.Update(0.05)

		for n, w := range ecs.Waves {
			if w.EnemiesSpawned > w.EnemiesToSpawn {
				t.Fatalf("step %d: wave %d spawned %d of %d", i, n, w.EnemiesSpawned, w.EnemiesToSpawn)
			}
		}
		if second.EnemiesSpawned > 0 && first.EnemiesSpawned != 5 {
			t.Fatalf("step %d: second wave started with first at %d", i, first.EnemiesSpawned)
		}
	}
	if first.EnemiesSpawned != 5 || second.EnemiesSpawned != 5 {
		t.Errorf("spawned = %d, %d; want 5, 5", first.EnemiesSpawned, second.EnemiesSpawned)
	}
}

func TestWaveSystem_AtMostOneSpawnPerInvocation(t *testing.T) {
	ecs := newTestECS(t,
		defs.WaveDefinition{EnemiesToSpawn: 3, TriggerY: 0, EnemyPath: straightPath()},
		defs.WaveDefinition{EnemiesToSpawn: 3, TriggerY: 0, EnemyPath: straightPath()},
	)
	waves := NewWaveSystem(ecs, event.NewDispatcher())

	waves.Update(ecs.Config.Spawner.Interval)

	if got := pathMoveableQuery.Count(ecs.World); got != 1 {
		t.Fatalf("enemies = %d, want 1", got)
	}
	if ecs.Waves[0].EnemiesSpawned != 1 || ecs.Waves[1].EnemiesSpawned != 0 {
		t.Errorf("counters = %d, %d; want 1, 0", ecs.Waves[0].EnemiesSpawned, ecs.Waves[1].EnemiesSpawned)
	}
}

func TestWaveSystem_WaitsForTrigger(t *testing.T) {
	ecs := newTestECS(t, defs.WaveDefinition{EnemiesToSpawn: 2, TriggerY: 50, EnemyPath: straightPath()})
	d := event.NewDispatcher()
	rec := newRecorder(d, event.WaveTriggered)
	waves := NewWaveSystem(ecs, d)

	waves.Update(1)
	if got := pathMoveableQuery.Count(ecs.World); got != 0 {
		t.Fatalf("spawned %d enemies before trigger", got)
	}

	ecs.Camera.Y = 50
	waves.Update(ecs.Config.Spawner.Interval)
	waves.Update(ecs.Config.Spawner.Interval)
	if got := pathMoveableQuery.Count(ecs.World); got != 2 {
		t.Fatalf("enemies = %d, want 2", got)
	}
	if rec.counts[event.WaveTriggered] != 1 {
		t.Errorf("WaveTriggered dispatched %d times, want 1", rec.counts[event.WaveTriggered])
	}
}

func TestWaveSystem_LevelCompletedOnce(t *testing.T) {
	ecs := newTestECS(t, defs.WaveDefinition{EnemiesToSpawn: 1, TriggerY: 0, EnemyPath: straightPath()})
	d := event.NewDispatcher()
	rec := newRecorder(d, event.LevelCompleted)
	waves := NewWaveSystem(ecs, d)
	interval := ecs.Config.Spawner.Interval

	waves.Update(interval)
	enemy, ok := pathMoveableQuery.First(ecs.World)
	if !ok {
		t.Fatal("no enemy spawned")
	}

	waves.Update(interval)
	if rec.counts[event.LevelCompleted] != 0 {
		t.Fatal("level completed while an enemy is alive")
	}

	ecs.Despawn(enemy.Entity())
	for i := 0; i < 5; i++ {
		waves.Update(interval)
	}
	if rec.counts[event.LevelCompleted] != 1 {
		t.Errorf("LevelCompleted dispatched %d times, want 1", rec.counts[event.LevelCompleted])
	}
	if !waves.Completed() {
		t.Error("Completed() = false")
	}
}

func TestWaveSystem_SpawnedEnemyStartsOnPath(t *testing.T) {
	ecs := newTestECS(t, defs.WaveDefinition{EnemiesToSpawn: 1, TriggerY: 0, EnemyPath: straightPath()})
	ecs.Camera.Y = 20
	NewWaveSystem(ecs, event.NewDispatcher()).Update(ecs.Config.Spawner.Interval)

	enemy, ok := pathMoveableQuery.First(ecs.World)
	if !ok {
		t.Fatal("no enemy spawned")
	}
	pos := component.Position.Get(enemy)
	if pos.X != 0 || pos.Y != 120 {
		t.Errorf("spawn at (%v, %v), want (0, 120)", pos.X, pos.Y)
	}
	if !enemy.HasComponent(component.EnemyTag) || !enemy.HasComponent(component.Collider) {
		t.Error("enemy is missing its tags")
	}
}
