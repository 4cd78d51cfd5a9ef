package ecs

import (
	"github.com/phanxgames/sprig"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for sprig interaction events.
// Subscribe to this in your ECS systems to receive hover, press and click events.
var InteractionEventType = events.NewEventType[sprig.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) sprig.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event sprig.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}
