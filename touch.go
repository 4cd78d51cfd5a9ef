package sprig

// Touch path: the touch set is picked once per touchstart and then tracks the
// start target, not the live contact position.

func (d *Dispatcher) touchStart(evt *Event) {
	d.touch = newActiveSet(d.PickEvent(evt.touchEvent()))

	// Touch-only surfaces never see a mousemove, so the first touch seeds
	// the pointer active set once.
	if d.firstTouch {
		d.actives = newActiveSet(d.touch.items)
		d.firstTouch = false
	}

	for _, item := range d.touch.items {
		d.Fire(EventTouchStart, evt, item)
	}
}

func (d *Dispatcher) touchMove(evt *Event) {
	for _, item := range d.touch.items {
		d.Fire(EventTouchMove, evt, item)
	}
}

func (d *Dispatcher) touchEnd(evt *Event) {
	for _, item := range d.touch.items {
		d.Fire(EventTouchEnd, evt, item)
	}
	d.touch = activeSet{}
}
