package defs

import (
	"os"
	"path/filepath"
	"testing"

	"go-planes/pkg/geom"
)

func TestParseWaves(t *testing.T) {
	src := []byte(`
waves:
  - enemies_to_spawn: 3
    trigger_y: 0
    enemy_path:
      - {x: 0, y: 100}
      - {x: 10, y: -100}
  - enemies_to_spawn: 2
    trigger_y: 40
`)
	waves, err := ParseWaves(src)
	if err != nil {
		t.Fatalf("ParseWaves: %v", err)
	}
	if len(waves) != 2 {
		t.Fatalf("got %d waves, want 2", len(waves))
	}
	if waves[0].EnemiesToSpawn != 3 || waves[1].TriggerY != 40 {
		t.Fatalf("unexpected waves: %+v", waves)
	}
	want := []geom.Vec2{{X: 0, Y: 100}, {X: 10, Y: -100}}
	for i, p := range want {
		if waves[0].EnemyPath[i] != p {
			t.Fatalf("path[%d] = %v, want %v", i, waves[0].EnemyPath[i], p)
		}
	}
	if len(waves[1].EnemyPath) != len(DefaultPath) {
		t.Fatalf("wave without path should fall back to the default path")
	}
}

func TestParseWavesErrors(t *testing.T) {
	cases := map[string]string{
		"malformed":     "waves: [",
		"empty":         "waves: []",
		"negative_size": "waves:\n  - enemies_to_spawn: -1\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseWaves([]byte(src)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoadWaves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "waves.yaml")
	if err := os.WriteFile(path, []byte("waves:\n  - enemies_to_spawn: 1\n    trigger_y: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	waves, err := LoadWaves(path)
	if err != nil {
		t.Fatalf("LoadWaves: %v", err)
	}
	if waves[0].TriggerY != 2 {
		t.Fatalf("trigger_y = %v, want 2", waves[0].TriggerY)
	}
	if _, err := LoadWaves(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("missing file should fail")
	}
}

func TestDefaultWavesAreIndependent(t *testing.T) {
	a := DefaultWaves()
	a[0].EnemyPath[0].X = 999
	b := DefaultWaves()
	if b[0].EnemyPath[0].X == 999 {
		t.Fatalf("DefaultWaves must not share path storage")
	}
	if b[1].EnemyPath[0].X != -b[0].EnemyPath[0].X {
		t.Fatalf("second wave should mirror the first path")
	}
}
