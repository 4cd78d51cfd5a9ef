package sprig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tanema/gween/ease"
)

func TestTween(t *testing.T) {
	v := 0.0
	tw := NewTween(&v, 10, 1, nil)

	tw.Update(0.5)
	assert.InDelta(t, 5.0, v, 1e-6)
	assert.False(t, tw.Done)

	tw.Update(0.5)
	assert.InDelta(t, 10.0, v, 1e-6)
	assert.True(t, tw.Done)

	tw.Update(1)
	assert.InDelta(t, 10.0, v, 1e-6, "finished tweens stop writing")
}

func TestHighlightFollowsHover(t *testing.T) {
	root := NewGroup("root")
	a := NewRect("a", 10, 10)
	b := NewRect("b", 10, 10)
	b.X = 20
	root.AddChild(a)
	root.AddChild(b)

	surface := NewInjectSurface()
	d := NewDispatcher().Initialize(surface, 0, 0).SetScene(root)
	h := NewHighlight(d, 1, ease.Linear)

	surface.Emit(&Event{Type: EventMouseMove, X: 5, Y: 5})
	assert.True(t, h.Animating())
	h.Update(0.5)
	assert.InDelta(t, 0.5, h.Level(a), 1e-6)
	h.Update(0.5)
	assert.InDelta(t, 1.0, h.Level(a), 1e-6)
	assert.False(t, h.Animating())

	surface.Emit(&Event{Type: EventMouseMove, X: 25, Y: 5})
	h.Update(0.25)
	assert.InDelta(t, 0.75, h.Level(a), 1e-6)
	assert.InDelta(t, 0.25, h.Level(b), 1e-6)

	h.Update(1)
	assert.Equal(t, 0.0, h.Level(a))
	assert.NotContains(t, h.levels, a, "faded items are forgotten")
	assert.InDelta(t, 1.0, h.Level(b), 1e-6)
}

func TestHighlightLeave(t *testing.T) {
	root := NewGroup("root")
	a := NewRect("a", 10, 10)
	root.AddChild(a)

	surface := NewInjectSurface()
	d := NewDispatcher().Initialize(surface, 0, 0).SetScene(root)
	h := NewHighlight(d, 0.5, ease.OutQuad)

	surface.Emit(&Event{Type: EventMouseMove, X: 5, Y: 5})
	h.Update(1)
	assert.InDelta(t, 1.0, h.Level(a), 1e-6)

	surface.Emit(&Event{Type: EventMouseOut})
	h.Update(1)
	assert.Equal(t, 0.0, h.Level(a))
	assert.False(t, h.Animating())
}
