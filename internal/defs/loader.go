// internal/defs/loader.go
package defs

import (
	"fmt"
	"os"

	"go-planes/pkg/geom"

	"gopkg.in/yaml.v3"
)

type waveFile struct {
	Waves []WaveDefinition `yaml:"waves"`
}

// LoadWaves reads a YAML wave list. Waves keep the order of the file.
func LoadWaves(path string) ([]WaveDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read waves file: %w", err)
	}
	return ParseWaves(data)
}

// ParseWaves decodes and validates a YAML wave list.
func ParseWaves(data []byte) ([]WaveDefinition, error) {
	var f waveFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal waves: %w", err)
	}
	if len(f.Waves) == 0 {
		return nil, fmt.Errorf("waves file defines no waves")
	}
	for i := range f.Waves {
		w := &f.Waves[i]
		if w.EnemiesToSpawn < 0 {
			return nil, fmt.Errorf("wave %d: enemies_to_spawn must not be negative", i+1)
		}
		if len(w.Path) == 0 {
			w.EnemyPath = clonePath(DefaultPath)
			continue
		}
		w.EnemyPath = make([]geom.Vec2, len(w.Path))
		for j, p := range w.Path {
			w.EnemyPath[j] = geom.Vec2{X: p.X, Y: p.Y}
		}
	}
	return f.Waves, nil
}
