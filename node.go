package sprig

// nodeIDCounter is a plain counter; sprig is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a scene graph item. Identity is the pointer: two *Node values denote
// the same item iff they are equal. A single flat struct is used for every
// mark type; Mark selects how the node is picked.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Mark MarkType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Position within the parent group. For groups this is also the origin
	// of the children's coordinate space.
	X, Y float64

	// Bounds used when HitShape is nil.
	Width, Height float64

	// Hit testing
	HitShape HitShape

	// Visibility & interaction
	Visible     bool
	Interactive bool

	// Ordering
	ZIndex int

	// Exit marks an item removed from the scene as of the most recent
	// update. It stays pickable but no out event is synthesized for it when
	// it drops out of an active set.
	Exit bool

	// Side-channel payloads
	Href    string
	Tooltip any

	// Metadata
	UserData any
	EntityID uint32

	// Internal
	childrenSorted bool
	sortedChildren []*Node // reused buffer for ZIndex-sorted traversal order
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Visible = true
	n.Interactive = true
	n.childrenSorted = true
}

// NewGroup creates a group node. Groups offset the coordinates of their
// children by (X, Y) and are only hit themselves when given a HitShape.
func NewGroup(name string) *Node {
	n := &Node{Name: name, Mark: MarkGroup}
	nodeDefaults(n)
	return n
}

// NewMark creates a leaf node of the given mark type with no bounds.
func NewMark(name string, mark MarkType) *Node {
	n := &Node{Name: name, Mark: mark}
	nodeDefaults(n)
	return n
}

// NewRect creates a rect mark covering (0, 0)-(w, h) in local coordinates.
func NewRect(name string, w, h float64) *Node {
	n := NewMark(name, MarkRect)
	n.Width = w
	n.Height = h
	return n
}

// NewSymbol creates a circular symbol mark centered on the node position.
func NewSymbol(name string, radius float64) *Node {
	n := NewMark(name, MarkSymbol)
	n.HitShape = HitCircle{Radius: radius}
	return n
}

// NewPath creates a path mark hit-tested as a convex polygon.
func NewPath(name string, points []Vec2) *Node {
	n := NewMark(name, MarkPath)
	n.HitShape = HitPolygon{Points: points}
	return n
}

// MarkExit flags the node as removed from the scene. See Node.Exit.
func (n *Node) MarkExit() {
	n.Exit = true
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("sprig: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("sprig: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
		child.Parent.childrenSorted = false
	}
	child.Parent = n
	n.children = append(n.children, child)
	n.childrenSorted = false
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("sprig: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("sprig: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
		child.Parent.childrenSorted = false
	}
	if index < 0 || index > len(n.children) {
		panic("sprig: child index out of range")
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	n.childrenSorted = false
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("sprig: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	n.childrenSorted = false
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// SetZIndex sets the node's ZIndex and marks the parent's children as unsorted.
func (n *Node) SetZIndex(z int) {
	if n.ZIndex == z {
		return
	}
	n.ZIndex = z
	if n.Parent != nil {
		n.Parent.childrenSorted = false
	}
}

// drawOrder returns the children in draw order: by ZIndex, ties broken by
// insertion order. The slice is cached until the children change.
func (n *Node) drawOrder() []*Node {
	if n.childrenSorted {
		if n.sortedChildren == nil {
			return n.children
		}
		return n.sortedChildren
	}
	nc := len(n.children)
	if cap(n.sortedChildren) < nc {
		n.sortedChildren = make([]*Node, nc)
	}
	n.sortedChildren = n.sortedChildren[:nc]
	copy(n.sortedChildren, n.children)
	// Stable insertion sort by ZIndex.
	for i := 1; i < nc; i++ {
		key := n.sortedChildren[i]
		j := i - 1
		for j >= 0 && n.sortedChildren[j].ZIndex > key.ZIndex {
			n.sortedChildren[j+1] = n.sortedChildren[j]
			j--
		}
		n.sortedChildren[j+1] = key
	}
	n.childrenSorted = true
	return n.sortedChildren
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
