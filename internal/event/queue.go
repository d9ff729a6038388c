// internal/event/queue.go
package event

import (
	"go-planes/pkg/geom"

	"github.com/yohamta/donburi"
)

// DamageEvent asks the damage pipeline to hurt Target.
type DamageEvent struct {
	Amount      int
	Target      donburi.Entity
	Translation geom.Vec3 // impact point
}

// CollectionEvent is raised when the player picks up a collectable.
type CollectionEvent struct {
	Value int64
}

// Queue is a FIFO of events produced during a tick and drained once by a
// single consumer.
type Queue[T any] struct {
	items []T
}

// Push adds an event.
func (q *Queue[T]) Push(evt T) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *Queue[T]) Drain() []T {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of pending events.
func (q *Queue[T]) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
