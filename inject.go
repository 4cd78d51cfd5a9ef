package sprig

// InjectSurface is a synthetic Surface. Events are either delivered at once
// with Emit or queued with the Inject* methods and delivered one frame per
// Step, which is how scripted tests and headless replays drive a Dispatcher.
// Events of a type nobody listens for are dropped, like a real surface would.
type InjectSurface struct {
	listeners map[EventType][]func(*Event)
	order     []EventType
	queue     [][]*Event
}

// NewInjectSurface returns an empty synthetic surface.
func NewInjectSurface() *InjectSurface {
	return &InjectSurface{listeners: make(map[EventType][]func(*Event))}
}

// AddEventListener implements Surface.
func (s *InjectSurface) AddEventListener(typ EventType, fn func(evt *Event)) {
	if _, ok := s.listeners[typ]; !ok {
		s.order = append(s.order, typ)
	}
	s.listeners[typ] = append(s.listeners[typ], fn)
}

// Listening reports whether at least one listener is attached for typ.
func (s *InjectSurface) Listening(typ EventType) bool {
	return len(s.listeners[typ]) > 0
}

// Listeners reports how many listeners are attached for typ.
func (s *InjectSurface) Listeners(typ EventType) int {
	return len(s.listeners[typ])
}

// Attached returns the listened-for types in the order they were first attached.
func (s *InjectSurface) Attached() []EventType {
	out := make([]EventType, len(s.order))
	copy(out, s.order)
	return out
}

// Emit delivers evt to the listeners of evt.Type immediately.
func (s *InjectSurface) Emit(evt *Event) {
	for _, fn := range s.listeners[evt.Type] {
		fn(evt)
	}
}

// --- Queued injection ---

func (s *InjectSurface) push(frame ...*Event) {
	s.queue = append(s.queue, frame)
}

// InjectMove queues a mousemove at (x, y).
func (s *InjectSurface) InjectMove(x, y float64) {
	s.push(&Event{Type: EventMouseMove, X: x, Y: y})
}

// InjectPress queues a left-button mousedown at (x, y).
func (s *InjectSurface) InjectPress(x, y float64) {
	s.push(&Event{Type: EventMouseDown, X: x, Y: y, Button: MouseButtonLeft})
}

// InjectRelease queues a mouseup followed by a click at (x, y). Both are
// delivered in the same frame.
func (s *InjectSurface) InjectRelease(x, y float64) {
	s.push(
		&Event{Type: EventMouseUp, X: x, Y: y, Button: MouseButtonLeft},
		&Event{Type: EventClick, X: x, Y: y, Button: MouseButtonLeft},
	)
}

// InjectClick queues a move, press and release at the same coordinates.
// Consumes three frames.
func (s *InjectSurface) InjectClick(x, y float64) {
	s.InjectMove(x, y)
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), linearly interpolated moves
// over frames-2 intermediate frames, and a release at (toX, toY). Minimum
// frames is 2 (press + release).
func (s *InjectSurface) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// InjectLeave queues a mouseout: the pointer left the surface.
func (s *InjectSurface) InjectLeave() {
	s.push(&Event{Type: EventMouseOut})
}

// InjectDragOver queues a dragover at (x, y).
func (s *InjectSurface) InjectDragOver(x, y float64) {
	s.push(&Event{Type: EventDragOver, X: x, Y: y})
}

// InjectDragLeave queues a dragleave: a drag left the surface.
func (s *InjectSurface) InjectDragLeave() {
	s.push(&Event{Type: EventDragLeave})
}

// InjectWheel queues a wheel event at (x, y) with the given deltas.
func (s *InjectSurface) InjectWheel(x, y, dx, dy float64) {
	s.push(&Event{Type: EventWheel, X: x, Y: y, WheelX: dx, WheelY: dy})
}

// InjectTouchStart queues a touchstart for contact id at (x, y).
func (s *InjectSurface) InjectTouchStart(id int, x, y float64) {
	s.push(touchEventAt(EventTouchStart, id, x, y))
}

// InjectTouchMove queues a touchmove for contact id at (x, y).
func (s *InjectSurface) InjectTouchMove(id int, x, y float64) {
	s.push(touchEventAt(EventTouchMove, id, x, y))
}

// InjectTouchEnd queues a touchend for contact id at (x, y).
func (s *InjectSurface) InjectTouchEnd(id int, x, y float64) {
	s.push(touchEventAt(EventTouchEnd, id, x, y))
}

func touchEventAt(typ EventType, id int, x, y float64) *Event {
	return &Event{
		Type:    typ,
		X:       x,
		Y:       y,
		Touches: []TouchPoint{{ID: id, X: x, Y: y}},
	}
}

// Pending returns the number of queued frames.
func (s *InjectSurface) Pending() int {
	return len(s.queue)
}

// Step delivers the next queued frame. Returns false if the queue was empty.
func (s *InjectSurface) Step() bool {
	if len(s.queue) == 0 {
		return false
	}
	frame := s.queue[0]
	copy(s.queue, s.queue[1:])
	s.queue[len(s.queue)-1] = nil
	s.queue = s.queue[:len(s.queue)-1]

	for _, evt := range frame {
		s.Emit(evt)
	}
	return true
}

// Flush delivers every queued frame.
func (s *InjectSurface) Flush() {
	for s.Step() {
	}
}
