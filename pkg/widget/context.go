// Package widget is the retained widget runtime: a registry of widgets
// keyed by ID, builders that nest widgets into frames, per-kind content
// measurement and the per-frame queue that drives the layout engine.
package widget

import (
	"errors"

	"dockui/pkg/diag"
	"dockui/pkg/geometry"
	"dockui/pkg/layout"
	"dockui/pkg/text"
	"dockui/pkg/theme"
)

// ErrNoGroup is returned when a builder needs an open frame and there is
// none.
var ErrNoGroup = errors.New("no open group")

// Context owns every widget built through it. It is not safe for
// concurrent use; build and update from one goroutine.
type Context struct {
	Theme    theme.Theme
	Measurer text.Measurer
	Viewport geometry.Vec2
	// Scale multiplies every theme font size.
	Scale float64

	widgets map[layout.ID]*Widget
	order   []layout.ID
	nextID  layout.ID
	groups  []layout.ID

	engine *layout.Engine
	mask   layout.Mask

	reloadQ []layout.ID
	syncQ   []layout.ID
}

// New returns an empty context. A nil measurer falls back to
// text.Estimate.
func New(th theme.Theme, m text.Measurer) *Context {
	if m == nil {
		m = text.Estimate{}
	}
	c := &Context{
		Theme:    th,
		Measurer: m,
		Scale:    1,
		widgets:  make(map[layout.ID]*Widget),
		nextID:   1,
	}
	c.engine = layout.NewEngine(c, th.Metrics())
	return c
}

// Lookup implements layout.Tree.
func (c *Context) Lookup(id layout.ID) layout.Node {
	w, ok := c.widgets[id]
	if !ok {
		return nil
	}
	return w
}

func (c *Context) widget(id layout.ID) *Widget {
	if id == 0 {
		return nil
	}
	return c.widgets[id]
}

// Widget returns the widget with id, or nil.
func (c *Context) Widget(id layout.ID) *Widget {
	return c.widget(id)
}

// Widgets returns every widget in creation order. Parents come before
// their children.
func (c *Context) Widgets() []*Widget {
	out := make([]*Widget, 0, len(c.order))
	for _, id := range c.order {
		if w := c.widgets[id]; w != nil {
			out = append(out, w)
		}
	}
	return out
}

// FindTag returns the first widget with tag, or nil.
func (c *Context) FindTag(tag string) *Widget {
	for _, id := range c.order {
		if w := c.widgets[id]; w != nil && w.tag == tag {
			return w
		}
	}
	return nil
}

// Engine returns the layout engine bound to this context.
func (c *Context) Engine() *layout.Engine {
	return c.engine
}

// SetTheme switches theme and reloads every widget.
func (c *Context) SetTheme(th theme.Theme) {
	c.Theme = th
	c.engine.Metrics = th.Metrics()
	for _, id := range c.order {
		c.Reload(id)
	}
}

// SetViewport resizes the viewport. Top-level frames created without a
// width follow it.
func (c *Context) SetViewport(width, height float64) {
	c.Viewport = geometry.Vec2{X: width, Y: height}
	for _, id := range c.order {
		w := c.widgets[id]
		if w.parent == 0 && w.kind == KindFrame && w.autoWidth {
			w.rect.W = width - w.rect.X
			c.SyncLayout(id)
		}
	}
}

// AutoScale derives Scale from the viewport, a base resolution and the
// display size in steps of interval percent.
func (c *Context) AutoScale(base, display geometry.Vec2, interval float64) {
	c.Scale = layout.ScaleFactor(c.Viewport, base, display, interval)
	for _, id := range c.order {
		c.Reload(id)
	}
}

// Reload queues a re-measure of the widget's content.
func (c *Context) Reload(id layout.ID) {
	c.reloadQ = append(c.reloadQ, id)
}

// SyncLayout queues a layout pass over the container holding id.
func (c *Context) SyncLayout(id layout.ID) {
	c.syncQ = append(c.syncQ, id)
}

func (c *Context) add(kind Kind, tag string, dock layout.Flags) *Widget {
	w := &Widget{
		ctx:          c,
		id:           c.nextID,
		kind:         kind,
		tag:          tag,
		dock:         dock,
		textDock:     layout.Center,
		scaledHeight: 1,
	}
	c.nextID++

	if len(c.groups) > 0 {
		parent := c.widgets[c.groups[len(c.groups)-1]]
		w.parent = parent.id
		parent.children = append(parent.children, w.id)
	}

	c.widgets[w.id] = w
	c.order = append(c.order, w.id)
	c.Reload(w.id)
	return w
}

// Frame builds a container and opens its group: widgets built until the
// matching PopGroup become its children. A zero width or height is sized
// automatically.
func (c *Context) Frame(tag string, rect geometry.Rect, dock layout.Flags) *Widget {
	w := c.add(KindFrame, tag, dock)
	w.rect = rect
	w.autoWidth = rect.W == 0
	w.autoHeight = rect.H == 0
	if w.parent == 0 && w.autoWidth {
		w.rect.W = c.Viewport.X - rect.X
	}
	c.groups = append(c.groups, w.id)
	return w
}

// PopGroup closes the innermost open frame.
func (c *Context) PopGroup() error {
	if len(c.groups) == 0 {
		return ErrNoGroup
	}
	c.groups = c.groups[:len(c.groups)-1]
	return nil
}

func (c *Context) Button(text string, dock layout.Flags) *Widget {
	w := c.add(KindButton, "", dock)
	w.text = text
	w.autoWidth = true
	return w
}

func (c *Context) Label(text string, dock layout.Flags) *Widget {
	w := c.add(KindLabel, "", dock)
	w.text = text
	w.textDock = layout.Left
	w.autoWidth = true
	return w
}

func (c *Context) Checkbox(text string, checked bool, dock layout.Flags) *Widget {
	w := c.add(KindCheckbox, "", dock)
	w.text = text
	w.checked = checked
	w.textDock = layout.Left
	w.autoWidth = true
	return w
}

// Slider builds a slider over [min, max]; value is clamped into it.
func (c *Context) Slider(tag string, value, min, max float64, dock layout.Flags) *Widget {
	if max < min {
		min, max = max, min
	}
	w := c.add(KindSlider, tag, dock)
	w.min, w.max = min, max
	w.value = geometry.Clamp(value, min, max)
	w.textDock = layout.Right
	w.autoWidth = true
	return w
}

func (c *Context) Textbox(tag, text string, dock layout.Flags) *Widget {
	w := c.add(KindTextbox, tag, dock)
	w.text = text
	w.textDock = layout.Left | layout.Top
	w.autoWidth = true
	return w
}

// Listbox builds a table; items are row-major cells, one per column.
func (c *Context) Listbox(tag string, columns, items []string, dock layout.Flags) *Widget {
	w := c.add(KindListbox, tag, dock)
	w.columns = columns
	w.items = items
	w.autoWidth = true
	w.autoHeight = true
	return w
}

// Popup builds a menu of items. It is anchored to the top-level frame it
// was built in, so its layout passes run from that frame.
func (c *Context) Popup(tag string, items []string, dock layout.Flags) *Widget {
	w := c.add(KindPopup, tag, dock)
	w.items = items
	w.autoWidth = true
	if w.parent != 0 {
		w.absParent = c.root(w.parent)
	}
	return w
}

// Scrollbar embeds a scroll into the innermost open frame.
func (c *Context) Scrollbar(tag string) (*Widget, error) {
	if len(c.groups) == 0 {
		return nil, ErrNoGroup
	}
	w := c.add(KindScrollbar, tag, layout.Free)
	mother := c.widgets[w.parent]
	w.mother = mother.id
	if mother.scroll == nil {
		mother.scroll = &Scroll{ctx: c, mother: mother.id}
	}
	w.scroll = mother.scroll
	return w, nil
}

// root returns the top-level ancestor of id.
func (c *Context) root(id layout.ID) layout.ID {
	for {
		w := c.widget(id)
		if w == nil || w.parent == 0 {
			return id
		}
		id = w.parent
	}
}

// container returns the nearest docknizable widget holding id, id itself
// included.
func (c *Context) container(id layout.ID) layout.ID {
	w := c.widget(id)
	if w == nil {
		return 0
	}
	if w.IsDocknizable() {
		return id
	}
	return w.parent
}

func drain(q *[]layout.ID) []layout.ID {
	out := *q
	*q = nil
	return out
}

// Update runs one frame of queued work: reloads first, then one layout
// pass per affected top-level frame, then the reloads the layout pass
// requested, then scroll clamping.
func (c *Context) Update() {
	log := diag.Logger()

	reloads := drain(&c.reloadQ)
	for _, id := range dedup(reloads) {
		if w := c.widget(id); w != nil {
			c.reload(w)
		}
	}

	syncs := drain(&c.syncQ)
	done := make(map[layout.ID]bool)
	for _, id := range append(reloads, syncs...) {
		if c.widget(id) == nil {
			continue
		}
		root := c.root(id)
		if done[root] {
			continue
		}
		done[root] = true
		c.fitHeights(root)

		target := c.container(id)
		if target == 0 {
			continue
		}
		if t := c.widget(target); target != root && !t.AbsoluteRect().IsEmpty() {
			if t.kind != KindPopup {
				t.absParent = root
			}
			t.targeting = true
			c.engine.Docknize(target)
			continue
		}
		c.engine.Docknize(root)
	}

	late := drain(&c.reloadQ)
	for _, id := range dedup(late) {
		if w := c.widget(id); w != nil {
			c.reload(w)
		}
	}

	for _, id := range c.order {
		if w := c.widgets[id]; w.scroll != nil {
			w.scroll.Clamp()
		}
	}

	log.Debug("widget: update", "reloaded", len(reloads)+len(late), "layouts", len(done))
}

func dedup(ids []layout.ID) []layout.ID {
	seen := make(map[layout.ID]bool, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// fitHeights sizes auto-height containers below and including id,
// innermost first.
func (c *Context) fitHeights(id layout.ID) {
	w := c.widget(id)
	if w == nil {
		return
	}
	for _, child := range w.children {
		c.fitHeights(child)
	}
	if w.autoHeight && w.IsDocknizable() {
		w.rect.H = 0
		w.rect.H = c.engine.EstimateHeight(id)
	}
}

// WidgetAt returns the topmost widget whose visible area contains the
// point, or 0.
func (c *Context) WidgetAt(x, y float64) layout.ID {
	for i := len(c.order) - 1; i >= 0; i-- {
		w := c.widgets[c.order[i]]
		if w.kind == KindScrollbar || w.dock.Has(layout.None) {
			continue
		}
		if w.Scissor().Contains(x, y) {
			return w.id
		}
	}
	return 0
}
