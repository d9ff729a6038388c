// internal/defs/waves.go
package defs

import "go-planes/pkg/geom"

// WaveDefinition describes one batch of enemies released when the scroll
// position reaches TriggerY. Path points are offsets from the view center at
// the moment the enemy spawns.
type WaveDefinition struct {
	EnemiesToSpawn int         `yaml:"enemies_to_spawn"`
	TriggerY       float64     `yaml:"trigger_y"`
	EnemyPath      []geom.Vec2 `yaml:"-"`
	Path           []PathPoint `yaml:"enemy_path"`
}

// PathPoint is the file representation of a waypoint.
type PathPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// DefaultPath sweeps in from the top left, crosses the screen and leaves at
// the bottom right.
var DefaultPath = []geom.Vec2{
	{X: -120, Y: 260},
	{X: -80, Y: 120},
	{X: 0, Y: 60},
	{X: 80, Y: 0},
	{X: 60, Y: -120},
	{X: 120, Y: -300},
}

// DefaultWaves is the level used when no wave file is configured.
func DefaultWaves() []WaveDefinition {
	return []WaveDefinition{
		{EnemiesToSpawn: 5, TriggerY: 5, EnemyPath: clonePath(DefaultPath)},
		{EnemiesToSpawn: 5, TriggerY: 50, EnemyPath: mirrorPath(DefaultPath)},
	}
}

func clonePath(path []geom.Vec2) []geom.Vec2 {
	return append([]geom.Vec2(nil), path...)
}

func mirrorPath(path []geom.Vec2) []geom.Vec2 {
	out := make([]geom.Vec2, len(path))
	for i, p := range path {
		out[i] = geom.Vec2{X: -p.X, Y: p.Y}
	}
	return out
}
