package sprig

// Vec2 is a 2D vector used for positions and polygon points.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// MarkType selects the pick delegate used for a node.
type MarkType string

const (
	MarkGroup  MarkType = "group"  // holds child marks; offsets their coordinates
	MarkRect   MarkType = "rect"   // axis-aligned box from Width/Height
	MarkSymbol MarkType = "symbol" // circle around the node position
	MarkPath   MarkType = "path"   // convex polygon
	MarkText   MarkType = "text"   // text run, picked by its bounds
	MarkImage  MarkType = "image"  // bitmap, picked by its bounds
)

// EventType names both raw surface events and the semantic events synthesized
// from them. The same tag is used for both when they coincide (mousemove is
// delivered by the surface and also fired per active item).
type EventType string

const (
	EventMouseDown  EventType = "mousedown"
	EventMouseUp    EventType = "mouseup"
	EventMouseMove  EventType = "mousemove"
	EventMouseOver  EventType = "mouseover"
	EventMouseOut   EventType = "mouseout"
	EventClick      EventType = "click"
	EventDblClick   EventType = "dblclick"
	EventWheel      EventType = "wheel"
	EventDragEnter  EventType = "dragenter"
	EventDragOver   EventType = "dragover"
	EventDragLeave  EventType = "dragleave"
	EventTouchStart EventType = "touchstart"
	EventTouchMove  EventType = "touchmove"
	EventTouchEnd   EventType = "touchend"
)

// Side-channel event types. Hyperlinks ride on click; tooltips are shown on
// move and hidden on out.
const (
	EventHref        = EventClick
	EventTooltipShow = EventMouseMove
	EventTooltipHide = EventMouseOut
)

// Events lists every event type a Dispatcher accepts for registration.
var Events = []EventType{
	EventDragEnter, EventDragLeave, EventDragOver,
	EventMouseDown, EventMouseUp, EventMouseMove, EventMouseOut, EventMouseOver,
	EventClick, EventDblClick, EventWheel,
	EventTouchStart, EventTouchMove, EventTouchEnd,
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)
