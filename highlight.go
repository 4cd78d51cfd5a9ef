package sprig

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween eases a float64 field toward a target value. Call Update(dt) each
// frame; the current value is written through to the field.
type Tween struct {
	tween *gween.Tween
	field *float64
	Done  bool
}

// NewTween creates a Tween that moves *field to `to` over duration seconds
// using the easing function. A nil fn means linear.
func NewTween(field *float64, to float64, duration float32, fn ease.TweenFunc) *Tween {
	if fn == nil {
		fn = ease.Linear
	}
	return &Tween{
		tween: gween.New(float32(*field), float32(to), duration, fn),
		field: field,
	}
}

// Update advances the tween by dt seconds.
func (t *Tween) Update(dt float32) {
	if t.Done {
		return
	}
	val, finished := t.tween.Update(dt)
	*t.field = float64(val)
	t.Done = finished
}

// Highlight keeps a hover level in [0, 1] for every item the pointer has
// entered. Levels ease toward 1 on mouseover and dragenter and back to 0 on
// mouseout and dragleave. Renderers read Level when drawing.
type Highlight struct {
	Duration float32
	Ease     ease.TweenFunc

	levels map[*Node]*float64
	tweens map[*Node]*Tween
}

// NewHighlight creates a Highlight and registers its handlers on d.
func NewHighlight(d *Dispatcher, duration float32, fn ease.TweenFunc) *Highlight {
	h := &Highlight{
		Duration: duration,
		Ease:     fn,
		levels:   make(map[*Node]*float64),
		tweens:   make(map[*Node]*Tween),
	}
	d.On(EventMouseOver, func(_ *Event, item *Node) { h.target(item, 1) })
	d.On(EventDragEnter, func(_ *Event, item *Node) { h.target(item, 1) })
	d.On(EventMouseOut, func(_ *Event, item *Node) { h.target(item, 0) })
	d.On(EventDragLeave, func(_ *Event, item *Node) { h.target(item, 0) })
	return h
}

func (h *Highlight) target(item *Node, to float64) {
	if item == nil {
		return
	}
	level, ok := h.levels[item]
	if !ok {
		level = new(float64)
		h.levels[item] = level
	}
	h.tweens[item] = NewTween(level, to, h.Duration, h.Ease)
}

// Update advances every running tween by dt seconds. Items that have faded
// back to zero are forgotten.
func (h *Highlight) Update(dt float32) {
	for item, tw := range h.tweens {
		tw.Update(dt)
		if !tw.Done {
			continue
		}
		delete(h.tweens, item)
		if *h.levels[item] == 0 {
			delete(h.levels, item)
		}
	}
}

// Level returns the current hover level of item.
func (h *Highlight) Level(item *Node) float64 {
	if level, ok := h.levels[item]; ok {
		return *level
	}
	return 0
}

// Animating reports whether any tween is still running.
func (h *Highlight) Animating() bool {
	return len(h.tweens) > 0
}
