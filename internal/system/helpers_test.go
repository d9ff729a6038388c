package system

import (
	"testing"

	"go-planes/internal/config"
	"go-planes/internal/defs"
	"go-planes/internal/entity"
	"go-planes/internal/event"
	"go-planes/pkg/geom"
)

func newTestECS(t *testing.T, waves ...defs.WaveDefinition) *entity.ECS {
	t.Helper()
	cfg := config.Default()
	cfg.Animations.ExplosionFrameDuration = 0.25
	return entity.NewECS(cfg, waves, 1)
}

// recorder counts dispatched events by type.
type recorder struct {
	counts map[event.EventType]int
	last   map[event.EventType]event.Event
}

func newRecorder(d *event.Dispatcher, types ...event.EventType) *recorder {
	r := &recorder{counts: map[event.EventType]int{}, last: map[event.EventType]event.Event{}}
	for _, typ := range types {
		d.Subscribe(typ, r)
	}
	return r
}

func (r *recorder) OnEvent(e event.Event) {
	r.counts[e.Type]++
	r.last[e.Type] = e
}

func straightPath() []geom.Vec2 {
	return []geom.Vec2{{X: 0, Y: 100}, {X: 0, Y: -100}}
}
