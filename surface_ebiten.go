package sprig

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenSurface is a Surface backed by Ebitengine's polled input. Call Update
// once per tick from the game's Update; it compares the current input state
// with the previous tick and delivers the resulting raw events. Only types
// with an attached listener are delivered.
type EbitenSurface struct {
	// Bounds is the surface area in screen pixels. Event coordinates are
	// relative to its top-left corner. A zero-size Bounds covers the whole
	// screen.
	Bounds Rect

	listeners map[EventType][]func(*Event)

	inside       bool
	hasLast      bool
	lastX, lastY float64

	touches  map[ebiten.TouchID]TouchPoint
	touchBuf []ebiten.TouchID
}

// NewEbitenSurface creates a surface covering bounds.
func NewEbitenSurface(bounds Rect) *EbitenSurface {
	return &EbitenSurface{
		Bounds:    bounds,
		listeners: make(map[EventType][]func(*Event)),
		touches:   make(map[ebiten.TouchID]TouchPoint),
	}
}

// AddEventListener implements Surface.
func (s *EbitenSurface) AddEventListener(typ EventType, fn func(evt *Event)) {
	s.listeners[typ] = append(s.listeners[typ], fn)
}

func (s *EbitenSurface) emit(evt *Event) {
	for _, fn := range s.listeners[evt.Type] {
		fn(evt)
	}
}

func (s *EbitenSurface) contains(sx, sy float64) bool {
	if s.Bounds.Width == 0 && s.Bounds.Height == 0 {
		return true
	}
	return s.Bounds.Contains(sx, sy)
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

var mouseButtons = [...]struct {
	eb  ebiten.MouseButton
	btn MouseButton
}{
	{ebiten.MouseButtonLeft, MouseButtonLeft},
	{ebiten.MouseButtonRight, MouseButtonRight},
	{ebiten.MouseButtonMiddle, MouseButtonMiddle},
}

// Update polls mouse and touch input and delivers this tick's events.
func (s *EbitenSurface) Update() {
	mods := readModifiers()
	s.updateMouse(mods)
	s.updateTouches(mods)
}

func (s *EbitenSurface) updateMouse(mods KeyModifiers) {
	mx, my := ebiten.CursorPosition()
	sx, sy := float64(mx), float64(my)
	x, y := sx-s.Bounds.X, sy-s.Bounds.Y

	inside := s.contains(sx, sy)
	if inside != s.inside {
		s.inside = inside
		if inside {
			s.emit(&Event{Type: EventMouseOver, X: x, Y: y, Modifiers: mods})
		} else {
			s.emit(&Event{Type: EventMouseOut, X: x, Y: y, Modifiers: mods})
			s.hasLast = false
			return
		}
	}
	if !inside {
		return
	}

	if !s.hasLast || x != s.lastX || y != s.lastY {
		s.emit(&Event{Type: EventMouseMove, X: x, Y: y, Modifiers: mods})
		s.lastX, s.lastY = x, y
		s.hasLast = true
	}

	for _, mb := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(mb.eb) {
			s.emit(&Event{Type: EventMouseDown, X: x, Y: y, Button: mb.btn, Modifiers: mods})
		}
		if inpututil.IsMouseButtonJustReleased(mb.eb) {
			s.emit(&Event{Type: EventMouseUp, X: x, Y: y, Button: mb.btn, Modifiers: mods})
			if mb.btn == MouseButtonLeft {
				s.emit(&Event{Type: EventClick, X: x, Y: y, Button: mb.btn, Modifiers: mods})
			}
		}
	}

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		s.emit(&Event{Type: EventWheel, X: x, Y: y, WheelX: wx, WheelY: wy, Modifiers: mods})
	}
}

func (s *EbitenSurface) updateTouches(mods KeyModifiers) {
	s.touchBuf = inpututil.AppendJustPressedTouchIDs(s.touchBuf[:0])
	for _, id := range s.touchBuf {
		tx, ty := ebiten.TouchPosition(id)
		tp := TouchPoint{ID: int(id), X: float64(tx) - s.Bounds.X, Y: float64(ty) - s.Bounds.Y}
		s.touches[id] = tp
		s.emit(&Event{Type: EventTouchStart, X: tp.X, Y: tp.Y, Touches: []TouchPoint{tp}, Modifiers: mods})
	}

	s.touchBuf = ebiten.AppendTouchIDs(s.touchBuf[:0])
	var moved []TouchPoint
	for _, id := range s.touchBuf {
		prev, ok := s.touches[id]
		if !ok {
			continue
		}
		tx, ty := ebiten.TouchPosition(id)
		tp := TouchPoint{ID: int(id), X: float64(tx) - s.Bounds.X, Y: float64(ty) - s.Bounds.Y}
		if tp != prev {
			s.touches[id] = tp
			moved = append(moved, tp)
		}
	}
	if len(moved) > 0 {
		s.emit(&Event{Type: EventTouchMove, X: moved[0].X, Y: moved[0].Y, Touches: moved, Modifiers: mods})
	}

	s.touchBuf = inpututil.AppendJustReleasedTouchIDs(s.touchBuf[:0])
	for _, id := range s.touchBuf {
		tp, ok := s.touches[id]
		if !ok {
			tx, ty := inpututil.TouchPositionInPreviousTick(id)
			tp = TouchPoint{ID: int(id), X: float64(tx) - s.Bounds.X, Y: float64(ty) - s.Bounds.Y}
		}
		delete(s.touches, id)
		s.emit(&Event{Type: EventTouchEnd, X: tp.X, Y: tp.Y, Touches: []TouchPoint{tp}, Modifiers: mods})
	}
}
