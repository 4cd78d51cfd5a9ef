package ecs

import (
	"testing"

	"github.com/phanxgames/sprig"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []sprig.InteractionEvent
	InteractionEventType.Subscribe(world, func(w donburi.World, e sprig.InteractionEvent) {
		received = append(received, e)
	})

	store.EmitEvent(sprig.InteractionEvent{
		Type:     sprig.EventMouseDown,
		RawType:  sprig.EventMouseDown,
		EntityID: 42,
		X:        100,
		Y:        200,
		Button:   sprig.MouseButtonLeft,
	})
	store.EmitEvent(sprig.InteractionEvent{
		Type:     sprig.EventMouseOver,
		RawType:  sprig.EventMouseMove,
		EntityID: 7,
	})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("expected no events before ProcessEvents, got %d", len(received))
	}
	InteractionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != sprig.EventMouseDown || e0.EntityID != 42 {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.X != 100 || e0.Y != 200 {
		t.Errorf("event 0 position: (%v,%v)", e0.X, e0.Y)
	}
	e1 := received[1]
	if e1.Type != sprig.EventMouseOver || e1.RawType != sprig.EventMouseMove {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiStore_DispatcherBridge(t *testing.T) {
	world := donburi.NewWorld()

	var received []sprig.InteractionEvent
	InteractionEventType.Subscribe(world, func(w donburi.World, e sprig.InteractionEvent) {
		received = append(received, e)
	})

	root := sprig.NewGroup("root")
	tagged := sprig.NewRect("tagged", 50, 50)
	tagged.EntityID = 9
	plain := sprig.NewRect("plain", 50, 50)
	plain.X = 100
	root.AddChild(tagged)
	root.AddChild(plain)

	surface := sprig.NewInjectSurface()
	d := sprig.NewDispatcher(sprig.WithEntityStore(NewDonburiStore(world)))
	d.Initialize(surface, 0, 0).SetScene(root)

	surface.InjectClick(10, 10)
	surface.InjectMove(120, 10)
	surface.Flush()
	events.ProcessAllEvents(world)

	// Events fire without handlers; plain has no EntityID and is never forwarded.
	want := []sprig.EventType{
		sprig.EventMouseOver, sprig.EventMouseMove, sprig.EventMouseDown,
		sprig.EventClick, sprig.EventMouseOut,
	}
	if len(received) != len(want) {
		t.Fatalf("received %d events, want %d: %+v", len(received), len(want), received)
	}
	for i, e := range received {
		if e.Type != want[i] || e.EntityID != 9 {
			t.Errorf("event %d = %s on %d, want %s on 9", i, e.Type, e.EntityID, want[i])
		}
	}
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	InteractionEventType.Subscribe(world, func(w donburi.World, e sprig.InteractionEvent) {
		count1++
	})
	InteractionEventType.Subscribe(world, func(w donburi.World, e sprig.InteractionEvent) {
		count2++
	})

	store.EmitEvent(sprig.InteractionEvent{Type: sprig.EventClick})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
