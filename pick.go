package sprig

// PickFunc is the pick delegate for one mark type. x, y are absolute surface
// coordinates; gx, gy are relative to the origin of the group containing n.
// It returns the intersecting items ordered topmost first. A nil result
// means nothing was hit.
type PickFunc func(p *Picker, n *Node, x, y, gx, gy float64) []*Node

// PickOne adapts a delegate that reports at most one item into a PickFunc.
// A nil item becomes an empty result and a non-nil item a one-element list.
func PickOne(fn func(p *Picker, n *Node, x, y, gx, gy float64) *Node) PickFunc {
	return func(p *Picker, n *Node, x, y, gx, gy float64) []*Node {
		if hit := fn(p, n, x, y, gx, gy); hit != nil {
			return []*Node{hit}
		}
		return nil
	}
}

// Picker resolves coordinates against a scene graph by delegating to the
// PickFunc registered for each node's mark type. The geometry test itself
// belongs to the delegate; Picker only owns the invocation contract.
type Picker struct {
	marks map[MarkType]PickFunc
}

// NewPicker returns a Picker with the built-in delegates: groups recurse into
// their children and every other mark is tested against its hit region.
func NewPicker() *Picker {
	leaf := PickOne(pickLeaf)
	return &Picker{marks: map[MarkType]PickFunc{
		MarkGroup:  pickGroup,
		MarkRect:   leaf,
		MarkSymbol: leaf,
		MarkPath:   leaf,
		MarkText:   leaf,
		MarkImage:  leaf,
	}}
}

// SetPicker replaces the delegate for a mark type. A nil fn restores the
// default leaf test.
func (p *Picker) SetPicker(mark MarkType, fn PickFunc) {
	if fn == nil {
		fn = PickOne(pickLeaf)
	}
	p.marks[mark] = fn
}

// Pick returns the items under (x, y), topmost first. Never returns nil.
// Nodes whose mark type has no delegate are tested as leaves.
func (p *Picker) Pick(n *Node, x, y, gx, gy float64) []*Node {
	if n == nil {
		return []*Node{}
	}
	fn, ok := p.marks[n.Mark]
	if !ok {
		fn = PickOne(pickLeaf)
	}
	return normalizePicked(fn(p, n, x, y, gx, gy))
}

func normalizePicked(items []*Node) []*Node {
	if items == nil {
		return []*Node{}
	}
	return items
}

// pickLeaf tests a single mark against its hit region, in coordinates local
// to the mark position.
func pickLeaf(_ *Picker, n *Node, _, _, gx, gy float64) *Node {
	if !n.Visible || !n.Interactive {
		return nil
	}
	if nodeContainsLocal(n, gx-n.X, gy-n.Y) {
		return n
	}
	return nil
}

// pickGroup walks children in reverse draw order so the last-drawn item comes
// first. The group itself is reported after its children when it carries a
// hit shape containing the point.
func pickGroup(p *Picker, g *Node, x, y, gx, gy float64) []*Node {
	if !g.Visible || !g.Interactive {
		return nil
	}
	cx, cy := gx-g.X, gy-g.Y

	var hits []*Node
	children := g.drawOrder()
	for i := len(children) - 1; i >= 0; i-- {
		hits = append(hits, p.Pick(children[i], x, y, cx, cy)...)
	}
	if g.HitShape != nil && g.HitShape.Contains(cx, cy) {
		hits = append(hits, g)
	}
	return hits
}
