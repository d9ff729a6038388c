package event

import "testing"

func TestDispatcherOrderAndUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	var got []string
	first := &recorder{name: "first", out: &got}
	second := &recorder{name: "second", out: &got}
	d.Subscribe(PlayerDied, first)
	d.Subscribe(PlayerDied, second)
	d.Subscribe(LevelCompleted, ListenerFunc(func(Event) { got = append(got, "level") }))

	d.Dispatch(Event{Type: PlayerDied})
	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Fatalf("unexpected delivery order %v", got)
	}

	d.Unsubscribe(PlayerDied, first)
	got = nil
	d.Dispatch(Event{Type: PlayerDied})
	if len(got) != 1 || got[0] != "second" {
		t.Fatalf("unsubscribe failed, got %v", got)
	}

	got = nil
	d.Dispatch(Event{Type: ScoreChanged})
	if len(got) != 0 {
		t.Fatalf("no listener should fire for ScoreChanged, got %v", got)
	}
}

type recorder struct {
	name string
	out  *[]string
}

func (r *recorder) OnEvent(Event) { *r.out = append(*r.out, r.name) }

func TestQueueDrain(t *testing.T) {
	var q Queue[DamageEvent]
	if q.Drain() != nil {
		t.Fatalf("empty queue should drain to nil")
	}
	q.Push(DamageEvent{Amount: 1})
	q.Push(DamageEvent{Amount: 2})
	if q.Len() != 2 {
		t.Fatalf("Len = %d, want 2", q.Len())
	}
	out := q.Drain()
	if len(out) != 2 || out[0].Amount != 1 || out[1].Amount != 2 {
		t.Fatalf("unexpected drain %+v", out)
	}
	if q.Len() != 0 {
		t.Fatalf("queue should be empty after drain")
	}

	var nilQueue *Queue[CollectionEvent]
	nilQueue.Push(CollectionEvent{Value: 1})
	if nilQueue.Len() != 0 || nilQueue.Drain() != nil {
		t.Fatalf("nil queue must be inert")
	}
}
