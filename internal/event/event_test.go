package event

import "testing"

type recorder struct {
	events []Event
}

func (r *recorder) OnEvent(e Event) {
	r.events = append(r.events, e)
}

func TestDispatchReachesSubscribers(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(WaveStarted, a)
	d.SubscribeAll(b, WaveStarted, WaveEnded)

	d.Dispatch(Event{Type: WaveStarted, Data: WaveData{Index: 0, Total: 3}})
	d.Dispatch(Event{Type: WaveEnded})
	d.Dispatch(Event{Type: GameOver})

	if len(a.events) != 1 {
		t.Fatalf("expected 1 event for a, got %d", len(a.events))
	}
	if data, ok := a.events[0].Data.(WaveData); !ok || data.Total != 3 {
		t.Fatalf("unexpected payload: %+v", a.events[0].Data)
	}
	if len(b.events) != 2 {
		t.Fatalf("expected 2 events for b, got %d", len(b.events))
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(EnemyKilled, r)
	d.Unsubscribe(EnemyKilled, r)
	d.Dispatch(Event{Type: EnemyKilled})
	if len(r.events) != 0 {
		t.Fatalf("unsubscribed listener still received %d events", len(r.events))
	}
}

func TestNilDispatcherIsSilent(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Type: GameOver})
}
