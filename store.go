package sprig

// EntityStore is the interface for optional ECS integration.
// When set on a Dispatcher, semantic events on items with a non-zero
// EntityID are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type      EventType // semantic type
	RawType   EventType
	EntityID  uint32
	X, Y      float64 // surface coordinates
	Button    MouseButton
	Modifiers KeyModifiers
}

func (d *Dispatcher) emitInteractionEvent(typ EventType, evt *Event, item *Node) {
	if d.store == nil || item == nil || item.EntityID == 0 {
		return
	}
	d.store.EmitEvent(InteractionEvent{
		Type:      typ,
		RawType:   evt.Type,
		EntityID:  item.EntityID,
		X:         evt.X,
		Y:         evt.Y,
		Button:    evt.Button,
		Modifiers: evt.Modifiers,
	})
}
