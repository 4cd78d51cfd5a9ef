package sprig

// Pointer path: hover and drag tracking share the pointer active set, and
// press/click bookkeeping runs against it.

func (d *Dispatcher) mouseMove(evt *Event) {
	d.trackMove(evt, EventMouseMove, EventMouseOver, EventMouseOut)
}

func (d *Dispatcher) dragOver(evt *Event) {
	d.trackMove(evt, EventDragOver, EventDragEnter, EventDragLeave)
}

func (d *Dispatcher) mouseOut(evt *Event) {
	d.deactivate(evt, EventMouseOut)
}

func (d *Dispatcher) dragLeave(evt *Event) {
	d.deactivate(evt, EventDragLeave)
}

// mouseDown snapshots the active set for click validation and fires
// mousedown on every active item.
func (d *Dispatcher) mouseDown(evt *Event) {
	d.down = newActiveSet(d.actives.items)
	for _, item := range d.actives.items {
		d.Fire(EventMouseDown, evt, item)
	}
}

// click fires for items active both now and at the last mousedown. Only
// membership in the press snapshot is checked: an item removed from the
// scene between press and release still receives its click.
func (d *Dispatcher) click(evt *Event) {
	for _, item := range d.actives.items {
		if d.down.has(item) {
			d.Fire(EventClick, evt, item)
		}
	}
	d.down = activeSet{}
}
