package sprig

import (
	"io"
	"log/slog"
)

// HrefFunc is invoked when a click lands on an item carrying a link target.
type HrefFunc func(evt *Event, item *Node, href string)

// TooltipFunc is invoked on tooltip show (mousemove) and hide (mouseout) for
// items carrying a tooltip payload.
type TooltipFunc func(evt *Event, item *Node, show bool)

// Observer is notified of dispatcher activity. It is intended for metrics;
// see the metrics package for a Prometheus implementation.
type Observer interface {
	EventFired(typ EventType, item *Node)
	ListenerAttached(typ EventType)
}

// Dispatcher sits between a Surface delivering raw input and a scene graph.
// It picks the items under each event, tracks which are active and fires
// semantic events to registered handlers.
//
// A Dispatcher is single-threaded: every raw event is handled synchronously
// on the goroutine the surface delivers it on. Handlers may set Exit markers
// while an event is being dispatched but must not re-enter dispatch for the
// same raw event.
type Dispatcher struct {
	handlers handlerRegistry
	picker   *Picker
	scene    *Node

	surface          Surface
	originX, originY float64
	attached         map[EventType]bool
	routes           map[EventType]func(*Event)

	actives    activeSet // pointer path
	down       activeSet // actives snapshot at the last mousedown
	touch      activeSet // touch path
	firstTouch bool

	href     HrefFunc
	tooltip  TooltipFunc
	store    EntityStore
	observer Observer
	logger   *slog.Logger
	debug    bool
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// WithPicker replaces the default Picker.
func WithPicker(p *Picker) Option {
	return func(d *Dispatcher) {
		d.picker = p
	}
}

// WithHrefHandler sets the hyperlink side channel.
func WithHrefHandler(fn HrefFunc) Option {
	return func(d *Dispatcher) {
		d.href = fn
	}
}

// WithTooltipHandler sets the tooltip side channel.
func WithTooltipHandler(fn TooltipFunc) Option {
	return func(d *Dispatcher) {
		d.tooltip = fn
	}
}

// WithEntityStore forwards fired events to an ECS bridge.
func WithEntityStore(store EntityStore) Option {
	return func(d *Dispatcher) {
		d.store = store
	}
}

// WithObserver sets an activity observer.
func WithObserver(o Observer) Option {
	return func(d *Dispatcher) {
		d.observer = o
	}
}

// NewDispatcher creates a Dispatcher with empty active sets. It does not
// listen to anything until Initialize binds it to a surface.
func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		handlers:   newHandlerRegistry(),
		attached:   make(map[EventType]bool),
		firstTouch: true,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.picker == nil {
		d.picker = NewPicker()
	}
	if d.logger == nil {
		d.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	d.routes = map[EventType]func(*Event){
		EventMouseMove:  d.mouseMove,
		EventDragOver:   d.dragOver,
		EventMouseOut:   d.mouseOut,
		EventDragLeave:  d.dragLeave,
		EventMouseDown:  d.mouseDown,
		EventClick:      d.click,
		EventTouchStart: d.touchStart,
		EventTouchMove:  d.touchMove,
		EventTouchEnd:   d.touchEnd,
	}
	return d
}

// Initialize binds the dispatcher to a surface whose top-left corner sits at
// (originX, originY) relative to the scene origin. The bootstrap listeners
// are attached immediately, followed by those for every type registered so
// far. A Dispatcher binds to one surface for its lifetime; replacing the
// surface means creating a new Dispatcher. Panics if called twice.
func (d *Dispatcher) Initialize(surface Surface, originX, originY float64) *Dispatcher {
	if d.surface != nil {
		panic("sprig: dispatcher already initialized; create a new Dispatcher for a new surface")
	}
	d.surface = surface
	d.originX, d.originY = originX, originY

	for _, typ := range bootstrapEvents {
		d.attachBundle(typ)
	}
	for _, typ := range d.handlers.types() {
		d.attachBundle(typ)
	}
	return d
}

// SetScene sets the scene graph root used for picking.
func (d *Dispatcher) SetScene(root *Node) *Dispatcher {
	d.scene = root
	return d
}

// Scene returns the scene graph root, or nil if none was set.
func (d *Dispatcher) Scene() *Node {
	return d.scene
}

// Surface returns the bound surface, or nil before Initialize.
func (d *Dispatcher) Surface() Surface {
	return d.surface
}

// Origin returns the offset passed to Initialize.
func (d *Dispatcher) Origin() (float64, float64) {
	return d.originX, d.originY
}

// SetDebugMode enables or disables per-event debug logging.
func (d *Dispatcher) SetDebugMode(enabled bool) {
	d.debug = enabled
}

// Register adds handler for typ unless the pair is already registered, and
// makes sure the surface listens for typ. Returns d for chaining.
// Panics if handler is nil or not comparable.
func (d *Dispatcher) Register(typ EventType, handler Handler) *Dispatcher {
	mustComparable(handler)
	if d.handlers.add(typ, handler) {
		d.attachBundle(typ)
	}
	return d
}

// Unregister removes the exact (typ, handler) pair. Absent pairs are ignored.
func (d *Dispatcher) Unregister(typ EventType, handler Handler) *Dispatcher {
	// Incomparable handlers can never have been registered.
	if !isComparable(handler) {
		return d
	}
	d.handlers.remove(typ, handler)
	return d
}

// On registers fn for typ and returns a handle that unregisters it.
func (d *Dispatcher) On(typ EventType, fn func(evt *Event, item *Node)) CallbackHandle {
	h := HandlerFunc(fn)
	d.Register(typ, h)
	return CallbackHandle{d: d, event: typ, handler: h}
}

// Handlers reports how many handlers are registered for typ.
func (d *Dispatcher) Handlers(typ EventType) int {
	return len(d.handlers.byType[typ])
}

// Fire dispatches one semantic event. It stamps evt with typ, runs the href
// or tooltip side channel when typ and item call for it, then calls every
// handler registered for typ in registration order. Everything completes
// before Fire returns.
func (d *Dispatcher) Fire(typ EventType, evt *Event, item *Node) {
	if evt == nil {
		evt = &Event{Type: typ}
	}
	evt.Semantic = typ

	if typ == EventHref && item != nil && item.Href != "" {
		d.handleHref(evt, item, item.Href)
	} else if typ == EventTooltipShow || typ == EventTooltipHide {
		d.handleTooltip(evt, item, typ != EventTooltipHide)
	}

	if d.debug {
		d.logger.Debug("fire", "type", string(typ), "raw", string(evt.Type), "item", itemName(item))
	}

	for _, rec := range d.handlers.snapshot(typ) {
		rec.handler.HandleEvent(evt, item)
	}

	d.emitInteractionEvent(typ, evt, item)
	if d.observer != nil {
		d.observer.EventFired(typ, item)
	}
}

func (d *Dispatcher) handleHref(evt *Event, item *Node, href string) {
	if d.href != nil {
		d.href(evt, item, href)
	}
}

func (d *Dispatcher) handleTooltip(evt *Event, item *Node, show bool) {
	if d.tooltip != nil && item != nil && item.Tooltip != nil {
		d.tooltip(evt, item, show)
	}
}

// Pick returns the items under (x, y), topmost first. x, y are absolute
// surface coordinates and gx, gy are relative to the active group's origin.
// Panics if the dispatcher is not bound to a surface.
func (d *Dispatcher) Pick(scene *Node, x, y, gx, gy float64) []*Node {
	if d.surface == nil {
		panic("sprig: pick without a bound surface; call Initialize first")
	}
	return d.picker.Pick(scene, x, y, gx, gy)
}

// PickEvent picks the current scene at the event position.
func (d *Dispatcher) PickEvent(evt *Event) []*Node {
	x, y := evt.X, evt.Y
	return d.Pick(d.scene, x, y, x-d.originX, y-d.originY)
}

// Actives returns a copy of the pointer active set, in firing order.
func (d *Dispatcher) Actives() []*Node {
	return d.actives.list()
}

// Touches returns a copy of the touch set.
func (d *Dispatcher) Touches() []*Node {
	return d.touch.list()
}

func itemName(item *Node) string {
	if item == nil {
		return ""
	}
	return item.Name
}
