package sprig

// activeSet is an ordered collection of items without duplicates. The slice
// keeps firing order; the map gives O(1) identity membership.
type activeSet struct {
	items []*Node
	index map[*Node]struct{}
}

// newActiveSet builds a set from items, keeping the first occurrence of each.
func newActiveSet(items []*Node) activeSet {
	s := activeSet{
		items: make([]*Node, 0, len(items)),
		index: make(map[*Node]struct{}, len(items)),
	}
	for _, item := range items {
		s.add(item)
	}
	return s
}

func (s *activeSet) add(item *Node) {
	if s.index == nil {
		s.index = make(map[*Node]struct{})
	}
	if _, ok := s.index[item]; ok {
		return
	}
	s.index[item] = struct{}{}
	s.items = append(s.items, item)
}

func (s *activeSet) has(item *Node) bool {
	_, ok := s.index[item]
	return ok
}

func (s *activeSet) len() int {
	return len(s.items)
}

// list returns a copy of the items in order.
func (s *activeSet) list() []*Node {
	out := make([]*Node, len(s.items))
	copy(out, s.items)
	return out
}

// trackMove diffs the active set against a fresh pick and fires, in order:
// moveType for items still active, outType for items no longer picked (unless
// flagged Exit), then overType followed by moveType for each new item. The
// new active set is the still-active items followed by the new ones.
func (d *Dispatcher) trackMove(evt *Event, moveType, overType, outType EventType) {
	prev := d.actives
	picked := newActiveSet(d.PickEvent(evt))

	var still, gone, fresh []*Node
	for _, item := range prev.items {
		if picked.has(item) {
			still = append(still, item)
		} else {
			gone = append(gone, item)
		}
	}
	for _, item := range picked.items {
		if !prev.has(item) {
			fresh = append(fresh, item)
		}
	}

	for _, item := range still {
		d.Fire(moveType, evt, item)
	}
	for _, item := range gone {
		// Checked at fire time: a move handler above may have removed it.
		if !item.Exit {
			d.Fire(outType, evt, item)
		}
	}
	for _, item := range fresh {
		d.Fire(overType, evt, item)
		d.Fire(moveType, evt, item)
	}

	d.actives = newActiveSet(append(still, fresh...))
}

// deactivate fires outType for every active item and clears the set. Leaving
// the surface is unconditional, so Exit is not consulted.
func (d *Dispatcher) deactivate(evt *Event, outType EventType) {
	items := d.actives.items
	for _, item := range items {
		d.Fire(outType, evt, item)
	}
	d.actives = activeSet{}
}
