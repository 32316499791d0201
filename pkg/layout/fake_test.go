package layout

import "dockui/pkg/geometry"

type fakeNode struct {
	dock      Flags
	rect      geometry.Rect
	min       geometry.Vec2
	children  []ID
	container bool
	scrollbar bool
	reloads   int
	scroll    *fakeScroll
	absParent ID
	targeting bool
}

func (n *fakeNode) Dock() Flags                 { return n.dock }
func (n *fakeNode) Children() []ID              { return n.children }
func (n *fakeNode) MinSize() geometry.Vec2      { return n.min }
func (n *fakeNode) Rect() *geometry.Rect        { return &n.rect }
func (n *fakeNode) AbsoluteRect() geometry.Rect { return n.rect }
func (n *fakeNode) IsFlowParticipant() bool     { return !n.scrollbar }
func (n *fakeNode) IsDocknizable() bool         { return n.container }
func (n *fakeNode) MarkForReload()              { n.reloads++ }

func (n *fakeNode) Scroll() Scroller {
	if n.scroll == nil {
		return nil
	}
	return n.scroll
}

func (n *fakeNode) TakeAbsoluteParent() (ID, bool) {
	if !n.targeting {
		return 0, false
	}
	n.targeting = false
	return n.absParent, n.absParent != 0
}

// fakeScroll derives its state from the children of its container like the
// widget scroll does.
type fakeScroll struct {
	tree      *fakeTree
	container ID
}

func (s *fakeScroll) ContentRect() geometry.Rect {
	var content geometry.Rect
	for _, id := range s.tree.nodes[s.container].children {
		c := s.tree.nodes[id]
		if c == nil || c.scrollbar {
			continue
		}
		content.W = max(content.W, c.rect.Right())
		content.H = max(content.H, c.rect.Bottom())
	}
	return content
}

func (s *fakeScroll) AxisEnabled() (bool, bool) {
	mother := s.tree.nodes[s.container].rect
	content := s.ContentRect()
	return content.W > mother.W, content.H > mother.H
}

type fakeTree struct {
	nodes map[ID]*fakeNode
	next  ID
}

func newFakeTree() *fakeTree {
	return &fakeTree{nodes: make(map[ID]*fakeNode)}
}

func (t *fakeTree) Lookup(id ID) Node {
	n, ok := t.nodes[id]
	if !ok {
		return nil
	}
	return n
}

func (t *fakeTree) add(parent ID, n *fakeNode) ID {
	t.next++
	t.nodes[t.next] = n
	if p := t.nodes[parent]; p != nil {
		p.children = append(p.children, t.next)
	}
	return t.next
}

func (t *fakeTree) frame(parent ID, w, h float64, dock Flags) ID {
	return t.add(parent, &fakeNode{container: true, dock: dock, rect: geometry.Rect{W: w, H: h}})
}

func (t *fakeTree) leaf(parent ID, w, h float64, dock Flags) ID {
	return t.add(parent, &fakeNode{dock: dock, rect: geometry.Rect{W: w, H: h}})
}

func (t *fakeTree) rect(id ID) geometry.Rect {
	return t.nodes[id].rect
}

func testMetrics() Metrics {
	return Metrics{LayoutOffset: 2, ScrollbarThickness: 6}
}
