// internal/component/wave.go
package component

import "go-planes/pkg/geom"

// Wave is the runtime counter for one wave definition.
type Wave struct {
	EnemiesToSpawn int
	EnemiesSpawned int
	TriggerY       float64
	EnemyPath      []geom.Vec2
}

// Exhausted reports whether the wave has nothing left to spawn.
func (w *Wave) Exhausted() bool {
	return w.EnemiesSpawned >= w.EnemiesToSpawn
}

// Triggered reports whether the scroll position reached the wave.
func (w *Wave) Triggered(scrollY float64) bool {
	return scrollY >= w.TriggerY
}
