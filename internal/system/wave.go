// internal/system/wave.go
package system

import (
	"log"

	"go-planes/internal/component"
	"go-planes/internal/entity"
	"go-planes/internal/event"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var pathMoveableQuery = donburi.NewQuery(filter.Contains(component.PathMoveable))

// WaveSystem spawns enemies from the wave list as the scroll position passes
// each wave's trigger.
type WaveSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	timer           float64
	completed       bool
}

func NewWaveSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

// Update accumulates frame time and runs the spawner every Spawner.Interval.
func (s *WaveSystem) Update(deltaTime float64) {
	if s.completed {
		return
	}
	interval := s.ecs.Config.Spawner.Interval
	if interval <= 0 {
		return
	}
	s.timer += deltaTime
	for s.timer >= interval && !s.completed {
		s.timer -= interval
		s.tick()
	}
}

// Completed reports whether LevelCompleted has been dispatched.
func (s *WaveSystem) Completed() bool {
	return s.completed
}

// tick spawns at most one enemy, from the first triggered wave that still has
// enemies left.
func (s *WaveSystem) tick() {
	scrollY := s.ecs.Camera.Y
	for i, wave := range s.ecs.Waves {
		if wave.Exhausted() || !wave.Triggered(scrollY) {
			continue
		}
		if wave.EnemiesSpawned == 0 {
			log.Printf("wave %d triggered at y=%.1f", i+1, scrollY)
			s.eventDispatcher.Dispatch(event.Event{Type: event.WaveTriggered, Data: i})
		}
		s.ecs.SpawnEnemy(wave.EnemyPath)
		wave.EnemiesSpawned++
		return
	}

	for _, wave := range s.ecs.Waves {
		if !wave.Exhausted() {
			return
		}
	}
	if pathMoveableQuery.Count(s.ecs.World) > 0 {
		return
	}
	s.completed = true
	log.Printf("level completed, score %d", s.ecs.Score)
	s.eventDispatcher.Dispatch(event.Event{Type: event.LevelCompleted})
}
