// internal/system/visual_effect.go
package system

import (
	"go-planes/internal/component"
	"go-planes/internal/entity"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var flashQuery = donburi.NewQuery(filter.Contains(component.DamageFlash))

// VisualEffectSystem управляет визуальными эффектами, такими как вспышки урона.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update обновляет таймеры вспышек урона
func (s *VisualEffectSystem) Update(deltaTime float64) {
	var expired []*donburi.Entry
	flashQuery.Each(s.ecs.World, func(entry *donburi.Entry) {
		flash := component.DamageFlash.Get(entry)
		flash.Timer += deltaTime
		if flash.Timer >= flash.Duration {
			expired = append(expired, entry)
		}
	})
	for _, entry := range expired {
		entry.RemoveComponent(component.DamageFlash)
	}
}

// Flash starts, or restarts, the damage flash on entry.
func Flash(entry *donburi.Entry, duration float64) {
	if !entry.HasComponent(component.DamageFlash) {
		entry.AddComponent(component.DamageFlash)
	}
	component.DamageFlash.SetValue(entry, component.DamageFlashData{Duration: duration})
}
