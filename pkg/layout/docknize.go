package layout

import (
	"math"

	"dockui/pkg/diag"
	"dockui/pkg/geometry"
)

// Engine lays out container widgets of a tree.
type Engine struct {
	Tree    Tree
	Metrics Metrics
}

// NewEngine returns an engine over tree using the given theme metrics.
func NewEngine(tree Tree, metrics Metrics) *Engine {
	return &Engine{Tree: tree, Metrics: metrics}
}

// Docknize lays out the children of the container root and recurses into
// nested containers.
func (e *Engine) Docknize(root ID) {
	var sc ScanContext
	e.DocknizeWith(&sc, root)
}

// DocknizeWith is Docknize with a caller-owned scan context, so the caller
// can inspect the scan counter.
func (e *Engine) DocknizeWith(sc *ScanContext, root ID) {
	e.docknize(sc, root, 1)
}

// corners are the running cursors of one container pass. X of the left
// corners is the next free position; X of the right corners is the width
// reserved from the far edge. Y of the bottom corners is the height of the
// bottom rows already stacked upwards.
type corners struct {
	topLeft, topRight       geometry.Vec2
	bottomLeft, bottomRight geometry.Vec2
	highestTop              float64
	highestBottom           float64
}

func (e *Engine) docknize(sc *ScanContext, id ID, retries int) {
	log := diag.Logger()

	parent := e.Tree.Lookup(id)
	if parent == nil || !parent.IsDocknizable() {
		return
	}

	abs := parent.AbsoluteRect()
	if abs.W == 0 || abs.H == 0 {
		log.Debug("docknize: skipping zero-sized container", "id", id)
		return
	}

	if target, ok := parent.TakeAbsoluteParent(); ok && target != id {
		log.Debug("docknize: redirecting to absolute parent", "id", id, "target", target)
		e.docknize(sc, target, retries)
		return
	}

	offset := e.Metrics.LayoutOffset
	thickness := e.Metrics.ScrollbarThickness
	container := *parent.Rect()
	reserved := 0.0

	scroll := parent.Scroll()
	var scrollingH, scrollingV bool
	if scroll != nil {
		scrollingH, scrollingV = scroll.AxisEnabled()
		if scrollingH || scrollingV {
			if e.Metrics.SymmetricLayout {
				reserved = thickness
			} else {
				if scrollingV {
					container.W -= thickness
				}
				if scrollingH {
					container.H -= thickness
				}
			}
		}
	}

	margin := offset + reserved
	container.W -= margin * 2
	container.H -= margin * 2

	children := parent.Children()
	siblings := NodeSiblings{Tree: e.Tree, IDs: children}
	sc.Reset()

	c := corners{
		topLeft:    geometry.Vec2{X: margin, Y: margin},
		topRight:   geometry.Vec2{X: 0, Y: margin},
		bottomLeft: geometry.Vec2{X: margin, Y: 0},
	}
	contentRight := margin + container.W

	for it, childID := range children {
		child := e.Tree.Lookup(childID)
		if child == nil {
			log.Debug("docknize: dangling child", "container", id, "child", childID)
			continue
		}
		if !child.IsFlowParticipant() {
			continue
		}

		flags := child.Dock()
		rect := child.Rect()
		if flags.Has(None) {
			*rect = geometry.Rect{}
			continue
		}
		if flags.Has(Free) {
			e.recurse(sc, childID, child)
			continue
		}

		isRight := flags.Has(Right) && !flags.Has(Left)
		isBottom := isBottomRow(flags)

		stop := Next | Bottom
		if isBottom {
			stop = Next | Top
		}
		run := sc.Extentnize(siblings, Fill, stop, it, Horizontal, offset)

		isFill := flags.Has(Fill)
		minSize := child.MinSize()
		if isFill {
			rect.W = math.Max(DimensionFromExtent(container.W, run.Extent, offset, run.Count), minSize.X)
			child.MarkForReload()
		}

		if flags.Has(Next) {
			c.breakRow(isBottom, margin, offset)
		}

		if isBottom {
			e.placeBottom(&c, rect, isRight, container, margin, offset)
		} else {
			e.placeTop(&c, rect, isRight, container, margin, offset)
		}

		// The last fill of a run closed by fixed items takes the exact gap
		// left in the row instead of its truncated share.
		if isFill && !isRight && run.Latched() && it == run.LastFill {
			reservedRight := c.topRight.X
			if isBottom {
				reservedRight = c.bottomRight.X
			}
			exact := contentRight - reservedRight - rect.X - run.Tail
			rect.W = math.Max(exact, minSize.X)
			if isBottom {
				c.bottomLeft.X = rect.X + rect.W + offset
			} else {
				c.topLeft.X = rect.X + rect.W + offset
			}
		}

		*rect = rect.Sanitize()
		e.recurse(sc, childID, child)
	}

	if scroll != nil && !scrollingV && retries > 0 {
		if _, needed := scroll.AxisEnabled(); needed {
			log.Debug("docknize: vertical scroll became necessary, running again", "id", id)
			e.docknize(sc, id, retries-1)
		}
	}
}

// breakRow starts a new row on the top or bottom side.
func (c *corners) breakRow(bottom bool, margin, offset float64) {
	if bottom {
		if c.highestBottom > 0 {
			c.bottomLeft.Y += c.highestBottom + offset
			c.bottomRight.Y = c.bottomLeft.Y
		}
		c.bottomLeft.X = margin
		c.bottomRight.X = 0
		c.highestBottom = 0
		return
	}

	c.topLeft.Y += c.highestTop + offset
	c.topRight.Y = c.topLeft.Y
	c.topLeft.X = margin
	c.topRight.X = 0
	c.highestTop = 0
}

func (e *Engine) placeTop(c *corners, rect *geometry.Rect, right bool, container geometry.Rect, margin, offset float64) {
	if right {
		c.topRight.X += rect.W
		rect.X = FarSidePosition(c.topLeft.X, c.topRight.X, container.W, margin)
		c.topRight.X += offset
	} else {
		rect.X = c.topLeft.X
		c.topLeft.X += rect.W + offset
	}
	rect.Y = c.topLeft.Y
	c.highestTop = math.Max(c.highestTop, rect.H)
}

func (e *Engine) placeBottom(c *corners, rect *geometry.Rect, right bool, container geometry.Rect, margin, offset float64) {
	if right {
		c.bottomRight.X += rect.W
		rect.X = FarSidePosition(c.bottomLeft.X, c.bottomRight.X, container.W, margin)
		c.bottomRight.X += offset
	} else {
		rect.X = c.bottomLeft.X
		c.bottomLeft.X += rect.W + offset
	}

	belowTop := c.topLeft.Y
	if c.highestTop > 0 {
		belowTop += c.highestTop + offset
	}
	rect.Y = FarSidePosition(belowTop, c.bottomLeft.Y+rect.H, container.H, margin)
	c.highestBottom = math.Max(c.highestBottom, rect.H)
}

// recurse lays out a child container with its own scan window, then puts
// the parent's window back.
func (e *Engine) recurse(sc *ScanContext, id ID, child Node) {
	if !child.IsDocknizable() || len(child.Children()) == 0 {
		return
	}
	saved := sc.save()
	e.docknize(sc, id, 1)
	sc.restore(saved)
}
