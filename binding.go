package sprig

// Surface is the host's native input subscription mechanism: a rendering
// surface that delivers raw events of a given type to attached listeners.
// Listeners are never detached; the whole Dispatcher is discarded instead.
type Surface interface {
	AddEventListener(typ EventType, fn func(evt *Event))
}

// bootstrapEvents are attached at Initialize regardless of registrations so
// the active sets stay consistent before any handler exists.
var bootstrapEvents = []EventType{
	EventClick, EventMouseDown, EventMouseMove, EventMouseOut, EventDragLeave,
}

// eventBundle returns the raw types that must be attached together with typ.
// The touch types share the touch set, so start, move and end are observed
// as one unit.
func eventBundle(typ EventType) []EventType {
	switch typ {
	case EventTouchStart, EventTouchMove, EventTouchEnd:
		return []EventType{EventTouchStart, EventTouchMove, EventTouchEnd}
	}
	return []EventType{typ}
}

// attachBundle attaches every type in typ's bundle.
func (d *Dispatcher) attachBundle(typ EventType) {
	for _, t := range eventBundle(typ) {
		d.attach(t)
	}
}

// attach subscribes to typ at most once. Without a surface nothing is
// recorded, so the type is attached later by Initialize.
func (d *Dispatcher) attach(typ EventType) {
	if d.surface == nil || d.attached[typ] {
		return
	}
	d.attached[typ] = true

	route, ok := d.routes[typ]
	if !ok {
		route = func(evt *Event) { d.Fire(typ, evt, nil) }
	}
	d.surface.AddEventListener(typ, func(evt *Event) {
		if evt.Type == "" {
			evt.Type = typ
		}
		route(evt)
	})

	d.logger.Debug("listener attached", "type", string(typ))
	if d.observer != nil {
		d.observer.ListenerAttached(typ)
	}
}

// Attached reports whether the dispatcher listens for raw events of typ.
func (d *Dispatcher) Attached(typ EventType) bool {
	return d.attached[typ]
}
