package widget

import (
	"dockui/pkg/geometry"
	"dockui/pkg/layout"
)

// FontSize selects one of the theme's font sizes.
type FontSize int

const (
	FontNormal FontSize = iota
	FontSmall
	FontBig
)

// Widget is one element of a Context's registry. Rects are local to the
// parent widget; content rects (text, box, bar, columns, items) are local
// to the widget itself.
type Widget struct {
	ctx *Context

	id       layout.ID
	kind     Kind
	tag      string
	parent   layout.ID
	children []layout.ID

	dock     layout.Flags
	textDock layout.Flags
	rect     geometry.Rect
	minSize  geometry.Vec2
	font     FontSize

	autoWidth    bool
	autoHeight   bool
	scaledHeight int

	text    string
	checked bool
	value   float64
	min     float64
	max     float64
	items   []string
	columns []string

	// absolute-parent redirect requested for the next layout pass.
	absParent layout.ID
	targeting bool

	scroll *Scroll
	// mother is the frame a scrollbar is embedded into.
	mother layout.ID

	textRect    geometry.Rect
	boxRect     geometry.Rect
	barRect     geometry.Rect
	columnRects []geometry.Rect
	itemRects   []geometry.Rect
	lines       []string
}

func (w *Widget) ID() layout.ID { return w.id }
func (w *Widget) Kind() Kind { return w.kind }
func (w *Widget) Tag() string { return w.tag }
func (w *Widget) Parent() layout.ID { return w.parent }
func (w *Widget) Text() string { return w.text }
func (w *Widget) TextDock() layout.Flags { return w.textDock }
func (w *Widget) Checked() bool { return w.checked }
func (w *Widget) Value() float64 { return w.value }
func (w *Widget) Range() (lo, hi float64) {
	return w.min, w.max
}
func (w *Widget) Items() []string { return w.items }
func (w *Widget) Columns() []string { return w.columns }
func (w *Widget) Font() FontSize { return w.font }

// Lines are the wrapped lines of a textbox.
func (w *Widget) Lines() []string { return w.lines }

func (w *Widget) TextRect() geometry.Rect { return w.textRect }
func (w *Widget) BoxRect() geometry.Rect { return w.boxRect }
func (w *Widget) BarRect() geometry.Rect { return w.barRect }
func (w *Widget) ColumnRects() []geometry.Rect { return w.columnRects }
func (w *Widget) ItemRects() []geometry.Rect { return w.itemRects }

// Mother returns the frame a scrollbar is embedded into.
func (w *Widget) Mother() layout.ID { return w.mother }

// Embedded returns the frame's embedded scroll, or nil.
func (w *Widget) Embedded() *Scroll { return w.scroll }

// layout.Node

func (w *Widget) Dock() layout.Flags { return w.dock }
func (w *Widget) Children() []layout.ID { return w.children }
func (w *Widget) MinSize() geometry.Vec2 { return w.minSize }
func (w *Widget) Rect() *geometry.Rect { return &w.rect }
func (w *Widget) IsFlowParticipant() bool { return w.kind.caps().flow }
func (w *Widget) IsDocknizable() bool { return w.kind.caps().docknizable }

func (w *Widget) MarkForReload() {
	w.ctx.Reload(w.id)
}

func (w *Widget) Scroll() layout.Scroller {
	if w.scroll == nil {
		return nil
	}
	return w.scroll
}

func (w *Widget) TakeAbsoluteParent() (layout.ID, bool) {
	if !w.targeting {
		return 0, false
	}
	w.targeting = false
	return w.absParent, w.absParent != 0
}

// AbsoluteRect is the widget's rect in viewport coordinates: the parent's
// absolute rect plus the local rect, shifted by the parent's scroll.
func (w *Widget) AbsoluteRect() geometry.Rect {
	p := w.ctx.widget(w.parent)
	if p == nil {
		return w.rect
	}
	abs := p.AbsoluteRect()
	r := w.rect.Translate(abs.X, abs.Y)
	if p.scroll != nil && w.kind != KindScrollbar {
		r = r.Translate(p.scroll.Offset.X, p.scroll.Offset.Y)
	}
	return r
}

// Scissor is the visible part of the widget: its absolute rect clipped by
// every ancestor.
func (w *Widget) Scissor() geometry.Rect {
	abs := w.AbsoluteRect()
	if w.kind == KindScrollbar {
		if m := w.ctx.widget(w.mother); m != nil {
			return m.Scissor()
		}
	}
	p := w.ctx.widget(w.parent)
	if p == nil {
		return abs
	}
	return abs.Intersect(p.Scissor())
}

// Setters queue a reload; the change is visible after the next Update.

func (w *Widget) SetTag(tag string) {
	w.tag = tag
}

func (w *Widget) SetText(s string) {
	w.text = s
	w.autoWidth = w.autoWidth || w.rect.W == 0
	w.ctx.Reload(w.id)
}

func (w *Widget) SetTextDock(f layout.Flags) {
	w.textDock = f
	w.ctx.Reload(w.id)
}

func (w *Widget) SetDock(f layout.Flags) {
	w.dock = f
	w.ctx.SyncLayout(w.id)
}

// SetSize sets the local size. Zero width or height means auto-size.
func (w *Widget) SetSize(width, height float64) {
	w.rect.W = width
	w.rect.H = height
	w.autoWidth = width == 0
	if w.kind == KindFrame || w.kind == KindListbox {
		w.autoHeight = height == 0
	}
	w.ctx.Reload(w.id)
}

func (w *Widget) SetMinSize(v geometry.Vec2) {
	w.minSize = v
	w.ctx.SyncLayout(w.id)
}

func (w *Widget) SetPosition(x, y float64) {
	w.rect.X = x
	w.rect.Y = y
	w.ctx.SyncLayout(w.id)
}

func (w *Widget) SetFont(f FontSize) {
	w.font = f
	w.ctx.Reload(w.id)
}

// SetScaledHeight sets the height in text lines.
func (w *Widget) SetScaledHeight(n int) {
	if n < 1 {
		n = 1
	}
	w.scaledHeight = n
	w.ctx.Reload(w.id)
}

func (w *Widget) SetChecked(b bool) {
	w.checked = b
	w.ctx.Reload(w.id)
}

// SetValue sets a slider's value, clamped to its range.
func (w *Widget) SetValue(v float64) {
	w.value = geometry.Clamp(v, w.min, w.max)
	w.ctx.Reload(w.id)
}

func (w *Widget) SetItems(items []string) {
	w.items = items
	w.ctx.Reload(w.id)
}

func (w *Widget) SetColumns(columns []string) {
	w.columns = columns
	w.ctx.Reload(w.id)
}
