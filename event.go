package sprig

// TouchPoint is one contact in a touch event, in surface coordinates.
type TouchPoint struct {
	ID   int
	X, Y float64
}

// Event is a raw input event as delivered by a Surface. Fire stamps Semantic
// with the synthesized event type before handlers see it, so a single raw
// event may be observed under several semantic types during one dispatch.
type Event struct {
	Type     EventType // raw type reported by the surface
	Semantic EventType // type of the semantic event currently being fired

	// Pointer position relative to the surface's top-left corner.
	X, Y float64

	Button    MouseButton
	Modifiers KeyModifiers

	// Touches holds the contacts that changed for touch events. Pick uses
	// the first entry.
	Touches []TouchPoint

	// Wheel deltas, valid for EventWheel.
	WheelX, WheelY float64
}

// touchEvent returns a copy of e positioned at its first changed touch.
// Events without touches are returned unchanged.
func (e *Event) touchEvent() *Event {
	if len(e.Touches) == 0 {
		return e
	}
	t := *e
	t.X, t.Y = e.Touches[0].X, e.Touches[0].Y
	return &t
}
