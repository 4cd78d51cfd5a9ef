package sprig

import (
	"fmt"
	"reflect"
	"slices"
)

// Handler receives semantic events. Registration is deduplicated by
// (type, handler) identity, so implementations must be comparable; pointer
// receivers are the usual choice.
type Handler interface {
	HandleEvent(evt *Event, item *Node)
}

// Func adapts a plain function to Handler. Each HandlerFunc call returns a
// distinct *Func: registering the same *Func twice is deduplicated, wrapping
// the same function twice is not.
type Func struct {
	fn func(*Event, *Node)
}

// HandlerFunc wraps fn as a comparable Handler.
func HandlerFunc(fn func(evt *Event, item *Node)) *Func {
	return &Func{fn: fn}
}

// HandleEvent calls the wrapped function.
func (f *Func) HandleEvent(evt *Event, item *Node) {
	f.fn(evt, item)
}

type handlerRecord struct {
	typ     EventType
	handler Handler
}

// handlerRegistry keeps handlers per event type in registration order.
type handlerRegistry struct {
	byType map[EventType][]handlerRecord
}

func newHandlerRegistry() handlerRegistry {
	return handlerRegistry{byType: make(map[EventType][]handlerRecord)}
}

// index returns the position of (typ, h) or -1.
func (r *handlerRegistry) index(typ EventType, h Handler) int {
	for i, rec := range r.byType[typ] {
		if rec.handler == h {
			return i
		}
	}
	return -1
}

// add appends (typ, h) unless already present. Reports whether it was added.
func (r *handlerRegistry) add(typ EventType, h Handler) bool {
	if r.index(typ, h) >= 0 {
		return false
	}
	r.byType[typ] = append(r.byType[typ], handlerRecord{typ: typ, handler: h})
	return true
}

// remove deletes (typ, h) if present. Reports whether it was removed.
func (r *handlerRegistry) remove(typ EventType, h Handler) bool {
	i := r.index(typ, h)
	if i < 0 {
		return false
	}
	s := r.byType[typ]
	copy(s[i:], s[i+1:])
	s[len(s)-1] = handlerRecord{}
	s = s[:len(s)-1]
	if len(s) == 0 {
		delete(r.byType, typ)
	} else {
		r.byType[typ] = s
	}
	return true
}

// snapshot returns the handlers for typ. The result is a copy, so handlers
// may register or unregister while it is being iterated.
func (r *handlerRegistry) snapshot(typ EventType) []handlerRecord {
	s := r.byType[typ]
	if len(s) == 0 {
		return nil
	}
	out := make([]handlerRecord, len(s))
	copy(out, s)
	return out
}

// types returns every event type with at least one handler, sorted.
func (r *handlerRegistry) types() []EventType {
	out := make([]EventType, 0, len(r.byType))
	for typ := range r.byType {
		out = append(out, typ)
	}
	slices.Sort(out)
	return out
}

func isComparable(h Handler) bool {
	return h != nil && reflect.TypeOf(h).Comparable()
}

func mustComparable(h Handler) {
	if h == nil {
		panic("sprig: nil handler")
	}
	if !isComparable(h) {
		panic(fmt.Sprintf("sprig: handler type %T is not comparable; use HandlerFunc or a pointer", h))
	}
}

// CallbackHandle allows removing a callback registered with Dispatcher.On.
type CallbackHandle struct {
	d       *Dispatcher
	event   EventType
	handler Handler
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.d == nil {
		return
	}
	h.d.Unregister(h.event, h.handler)
}
