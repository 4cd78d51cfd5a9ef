package sprig

import "testing"

// --- Constructor defaults ---

func TestNewGroupDefaults(t *testing.T) {
	n := NewGroup("g")
	assertNodeDefaults(t, n, "g", MarkGroup)
	if n.HitShape != nil {
		t.Error("group should have no HitShape by default")
	}
}

func TestNewRectDefaults(t *testing.T) {
	n := NewRect("r", 32, 16)
	assertNodeDefaults(t, n, "r", MarkRect)
	if n.Width != 32 || n.Height != 16 {
		t.Errorf("size = (%v, %v), want (32, 16)", n.Width, n.Height)
	}
}

func TestNewSymbolDefaults(t *testing.T) {
	n := NewSymbol("s", 8)
	assertNodeDefaults(t, n, "s", MarkSymbol)
	if c, ok := n.HitShape.(HitCircle); !ok || c.Radius != 8 {
		t.Errorf("HitShape = %#v, want HitCircle radius 8", n.HitShape)
	}
}

func TestNewPathDefaults(t *testing.T) {
	pts := []Vec2{{0, 0}, {1, 0}, {0, 1}}
	n := NewPath("p", pts)
	assertNodeDefaults(t, n, "p", MarkPath)
	if poly, ok := n.HitShape.(HitPolygon); !ok || len(poly.Points) != 3 {
		t.Errorf("HitShape = %#v, want 3-point HitPolygon", n.HitShape)
	}
}

func assertNodeDefaults(t *testing.T, n *Node, name string, mark MarkType) {
	t.Helper()
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Name != name {
		t.Errorf("Name = %q, want %q", n.Name, name)
	}
	if n.Mark != mark {
		t.Errorf("Mark = %q, want %q", n.Mark, mark)
	}
	if !n.Visible {
		t.Error("Visible should be true")
	}
	if !n.Interactive {
		t.Error("Interactive should be true")
	}
	if n.Exit {
		t.Error("Exit should be false")
	}
}

func TestUniqueIDs(t *testing.T) {
	a := NewGroup("a")
	b := NewGroup("b")
	c := NewRect("c", 1, 1)
	if a.ID == b.ID || b.ID == c.ID || a.ID == c.ID {
		t.Errorf("IDs should be unique: %d, %d, %d", a.ID, b.ID, c.ID)
	}
}

func TestMarkExit(t *testing.T) {
	n := NewRect("r", 1, 1)
	n.MarkExit()
	if !n.Exit {
		t.Error("Exit should be true after MarkExit")
	}
}

// --- AddChild ---

func TestAddChildBasic(t *testing.T) {
	parent := NewGroup("parent")
	child := NewGroup("child")
	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("child.Parent should be parent")
	}
	if parent.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", parent.NumChildren())
	}
	if parent.ChildAt(0) != child {
		t.Error("ChildAt(0) should be child")
	}
}

func TestAddChildReparent(t *testing.T) {
	p1 := NewGroup("p1")
	p2 := NewGroup("p2")
	child := NewGroup("child")

	p1.AddChild(child)
	p2.AddChild(child)
	if p1.NumChildren() != 0 {
		t.Error("p1 should have 0 children after reparent")
	}
	if p2.NumChildren() != 1 {
		t.Error("p2 should have 1 child")
	}
	if child.Parent != p2 {
		t.Error("child.Parent should be p2")
	}
}

func TestAddChildPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"nil child", func() { NewGroup("n").AddChild(nil) }},
		{"self", func() {
			n := NewGroup("self")
			n.AddChild(n)
		}},
		{"cycle", func() {
			parent := NewGroup("parent")
			child := NewGroup("child")
			grandchild := NewGroup("grandchild")
			parent.AddChild(child)
			child.AddChild(grandchild)
			grandchild.AddChild(parent)
		}},
		{"index out of range", func() { NewGroup("p").AddChildAt(NewGroup("c"), 2) }},
		{"wrong parent", func() {
			p1 := NewGroup("p1")
			child := NewGroup("child")
			p1.AddChild(child)
			NewGroup("p2").RemoveChild(child)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("expected panic for %s, got none", tt.name)
				}
			}()
			tt.fn()
		})
	}
}

func TestAddChildAt(t *testing.T) {
	parent := NewGroup("parent")
	a := NewGroup("a")
	b := NewGroup("b")
	c := NewGroup("c")
	parent.AddChild(a)
	parent.AddChild(c)

	parent.AddChildAt(b, 1)

	if parent.NumChildren() != 3 {
		t.Fatalf("NumChildren = %d, want 3", parent.NumChildren())
	}
	if parent.ChildAt(0) != a || parent.ChildAt(1) != b || parent.ChildAt(2) != c {
		t.Error("children order should be [a, b, c]")
	}
}

// --- RemoveChild ---

func TestRemoveChild(t *testing.T) {
	parent := NewGroup("parent")
	child := NewGroup("child")
	parent.AddChild(child)
	parent.RemoveChild(child)

	if parent.NumChildren() != 0 {
		t.Error("parent should have 0 children")
	}
	if child.Parent != nil {
		t.Error("child.Parent should be nil")
	}
}

func TestRemoveFromParent(t *testing.T) {
	parent := NewGroup("parent")
	child := NewGroup("child")
	parent.AddChild(child)

	child.RemoveFromParent()
	if parent.NumChildren() != 0 || child.Parent != nil {
		t.Error("child should be detached")
	}
	child.RemoveFromParent() // no-op without a parent
}

// --- Draw order ---

func TestDrawOrderStableByZIndex(t *testing.T) {
	parent := NewGroup("parent")
	a := NewRect("a", 1, 1)
	b := NewRect("b", 1, 1)
	c := NewRect("c", 1, 1)
	parent.AddChild(a)
	parent.AddChild(b)
	parent.AddChild(c)

	a.SetZIndex(1)
	order := parent.drawOrder()
	if order[0] != b || order[1] != c || order[2] != a {
		t.Errorf("draw order = %v, want [b c a]", names(order))
	}

	parent.RemoveChild(b)
	order = parent.drawOrder()
	if len(order) != 2 || order[0] != c || order[1] != a {
		t.Errorf("draw order after remove = %v, want [c a]", names(order))
	}
	if parent.NumChildren() != 2 || parent.Children()[0] != a {
		t.Error("Children should keep insertion order")
	}
}
