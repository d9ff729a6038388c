// internal/system/damage.go
package system

import (
	"log"

	"go-planes/internal/component"
	"go-planes/internal/config"
	"go-planes/internal/entity"
	"go-planes/internal/event"
)

// DamageSystem is the single consumer of the damage and collection queues.
type DamageSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewDamageSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *DamageSystem {
	return &DamageSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *DamageSystem) Update(deltaTime float64) {
	for _, evt := range s.ecs.Damage.Drain() {
		s.apply(evt)
	}
	for _, evt := range s.ecs.Collected.Drain() {
		s.addScore(evt.Value)
	}
}

func (s *DamageSystem) apply(evt event.DamageEvent) {
	if !s.ecs.Alive(evt.Target) {
		return
	}
	entry := s.ecs.World.Entry(evt.Target)
	if !entry.HasComponent(component.Health) {
		return
	}

	isEnemy := entry.HasComponent(component.EnemyTag)
	if isEnemy {
		s.addScore(int64(evt.Amount))
	}

	health := component.Health.Get(entry)
	if !health.TakeDamage(evt.Amount) {
		Flash(entry, config.DamageFlashDuration)
		return
	}

	isPlayer := evt.Target == s.ecs.PlayerID
	s.ecs.Despawn(evt.Target)
	s.ecs.SpawnExplosion(evt.Translation)

	switch {
	case isEnemy:
		s.addScore(s.ecs.Config.Enemies.ScoreValue)
		if s.ecs.Rng.Chance(s.ecs.Config.Collectables.DropChance) {
			s.ecs.SpawnCollectable(evt.Translation)
		}
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: evt.Target})
	case isPlayer:
		log.Printf("player died, score %d", s.ecs.Score)
		s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDied})
	}
}

func (s *DamageSystem) addScore(amount int64) {
	if amount == 0 {
		return
	}
	score := s.ecs.AddScore(amount)
	s.eventDispatcher.Dispatch(event.Event{Type: event.ScoreChanged, Data: score})
}
