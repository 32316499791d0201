package widget

import (
	"math"
	"strconv"

	"dockui/pkg/geometry"
	"dockui/pkg/layout"
	"dockui/pkg/text"
)

// FontPixels returns the pixel size of a font for the current theme and
// scale.
func (c *Context) FontPixels(f FontSize) float64 {
	var px float64
	switch f {
	case FontSmall:
		px = c.Theme.Font.Small
	case FontBig:
		px = c.Theme.Font.Big
	default:
		px = c.Theme.Font.Normal
	}
	return px * c.Scale
}

// metrics are the measurements shared by every text-bearing kind.
type metrics struct {
	px         float64
	textW      float64
	textH      float64
	halfHeight float64
	offset     float64
}

func (c *Context) measure(w *Widget, s string) metrics {
	px := c.FontPixels(w.font)
	m := metrics{
		px:    px,
		textW: c.Measurer.Width(s, px),
		textH: c.Measurer.Height(px),
	}
	m.halfHeight = float64(int32(m.textH / 2))
	m.offset = layout.MinOffset(m.textW, m.halfHeight)
	return m
}

func (c *Context) reload(w *Widget) {
	switch w.kind {
	case KindButton, KindLabel:
		c.reloadButton(w)
	case KindCheckbox:
		c.reloadCheckbox(w)
	case KindSlider:
		c.reloadSlider(w)
	case KindTextbox:
		c.reloadTextbox(w)
	case KindListbox:
		c.reloadListbox(w)
	case KindPopup:
		c.reloadPopup(w)
	case KindScrollbar:
		if m := c.widget(w.mother); m != nil {
			w.rect = geometry.Rect{W: m.rect.W, H: m.rect.H}
			m.scroll.Clamp()
		}
	case KindFrame:
		if w.scroll != nil {
			w.scroll.Clamp()
		}
	}
}

func (c *Context) reloadButton(w *Widget) {
	m := c.measure(w, w.text)

	if w.autoWidth {
		w.rect.W = math.Max(w.rect.W, m.textW+m.offset*2)
		w.minSize.X = math.Max(w.minSize.X, m.textH)
		w.autoWidth = false
	}
	w.rect.H = (m.textH + m.halfHeight) * float64(w.scaledHeight)
	w.minSize.Y = math.Max(w.minSize.Y, w.rect.H)

	w.textRect = geometry.Rect{W: m.textW, H: m.textH}

	c.mask.Preset(geometry.Vec3{X: m.offset, Y: m.offset, Z: w.rect.H}, layout.Horizontal, w.rect.W)
	c.mask.Insert(layout.Descriptor{Rect: &w.textRect, Flags: w.textDock})
	c.mask.Docknize()

	w.rect.H = math.Max(w.rect.H, c.mask.Rect().H)
}

func (c *Context) reloadCheckbox(w *Widget) {
	m := c.measure(w, w.text)
	box := m.textH

	if w.autoWidth {
		w.rect.W = math.Max(w.rect.W, box+m.textW+m.offset*3)
		w.minSize.X = math.Max(w.minSize.X, box+m.offset*2)
		w.autoWidth = false
	}
	w.rect.H = (m.textH + m.halfHeight) * float64(w.scaledHeight)
	w.minSize.Y = math.Max(w.minSize.Y, w.rect.H)

	w.boxRect = geometry.Rect{W: box, H: box}
	w.textRect = geometry.Rect{W: m.textW, H: m.textH}

	c.mask.Preset(geometry.Vec3{X: m.offset, Y: m.offset, Z: w.rect.H}, layout.Horizontal, w.rect.W)
	c.mask.Insert(layout.Descriptor{Rect: &w.boxRect, Flags: layout.Left})
	c.mask.Insert(layout.Descriptor{Rect: &w.textRect, Flags: w.textDock})
	c.mask.Docknize()

	w.rect.H = math.Max(w.rect.H, c.mask.Rect().H)
}

// FormatValue renders a slider value the way it is displayed.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (c *Context) reloadSlider(w *Widget) {
	m := c.measure(w, FormatValue(w.value))

	if w.autoWidth {
		w.rect.W = math.Max(w.rect.W, m.textW+m.textH*4+m.offset*3)
		w.minSize.X = math.Max(w.minSize.X, m.textW+m.offset*2)
		w.autoWidth = false
	}
	w.rect.H = (m.textH + m.halfHeight) * float64(w.scaledHeight)
	w.minSize.Y = math.Max(w.minSize.Y, w.rect.H)

	w.textRect = geometry.Rect{W: m.textW, H: m.textH}
	w.barRect = geometry.Rect{H: math.Max(m.halfHeight/2, 1)}

	c.mask.Preset(geometry.Vec3{X: m.offset, Y: m.offset, Z: w.rect.H}, layout.Horizontal, w.rect.W)
	c.mask.Insert(layout.Descriptor{Rect: &w.barRect, Flags: layout.Left | layout.Fill})
	c.mask.Insert(layout.Descriptor{Rect: &w.textRect, Flags: w.textDock})
	c.mask.Docknize()
}

// SliderKnob returns the knob position along the bar, local to the widget.
func (w *Widget) SliderKnob() float64 {
	span := w.max - w.min
	if span <= 0 {
		return w.barRect.X
	}
	return w.barRect.X + (w.value-w.min)/span*w.barRect.W
}

func (c *Context) reloadTextbox(w *Widget) {
	m := c.measure(w, w.text)

	if w.autoWidth {
		longest := 0.0
		for _, line := range text.BreakLines(c.Measurer, w.text, m.px, math.Inf(1)) {
			longest = math.Max(longest, c.Measurer.Width(line, m.px))
		}
		w.rect.W = math.Max(w.rect.W, longest+m.halfHeight*2)
		w.autoWidth = false
	}
	w.rect.H = m.textH*float64(w.scaledHeight) + m.halfHeight
	w.minSize.Y = math.Max(w.minSize.Y, w.rect.H)

	w.lines = text.BreakLines(c.Measurer, w.text, m.px, math.Max(w.rect.W-m.halfHeight*2, 1))

	w.textRect = geometry.Rect{W: math.Max(w.rect.W-m.halfHeight*2, 0), H: m.textH * float64(len(w.lines))}
	c.mask.Preset(geometry.Vec3{X: m.halfHeight, Y: m.halfHeight / 2, Z: w.rect.H}, layout.Horizontal, w.rect.W)
	c.mask.Insert(layout.Descriptor{Rect: &w.textRect, Flags: w.textDock})
	c.mask.Docknize()
}

// RowHeight is the height of one listbox row or popup item.
func (c *Context) RowHeight(w *Widget) float64 {
	m := c.measure(w, "")
	return m.textH + m.halfHeight
}

func (c *Context) reloadListbox(w *Widget) {
	row := c.RowHeight(w)
	spacing := c.Theme.LayoutOffset

	if w.autoWidth {
		width := spacing
		for _, col := range w.columns {
			width += c.measure(w, col).textW + row + spacing
		}
		w.rect.W = math.Max(w.rect.W, width)
		w.autoWidth = false
	}

	cols := len(w.columns)
	if cols == 0 {
		cols = 1
	}
	rows := (len(w.items) + cols - 1) / cols
	if w.autoHeight {
		w.rect.H = row * float64(rows+1)
	}
	w.minSize.Y = math.Max(w.minSize.Y, row)

	w.columnRects = make([]geometry.Rect, len(w.columns))
	c.mask.Preset(geometry.Vec3{X: spacing, Y: 0, Z: row}, layout.Horizontal, w.rect.W)
	for i := range w.columnRects {
		w.columnRects[i] = geometry.Rect{H: row}
		c.mask.Insert(layout.Descriptor{Rect: &w.columnRects[i], Flags: layout.Left | layout.Fill})
	}
	c.mask.Docknize()
}

// Cell returns the rect of an item cell, local to the listbox.
func (w *Widget) Cell(index int) geometry.Rect {
	if len(w.columnRects) == 0 {
		return geometry.Rect{}
	}
	col := w.columnRects[index%len(w.columnRects)]
	row := index / len(w.columnRects)
	return geometry.Rect{X: col.X, Y: col.H * float64(row+1), W: col.W, H: col.H}
}

func (c *Context) reloadPopup(w *Widget) {
	row := c.RowHeight(w)
	spacing := c.Theme.LayoutOffset

	if w.autoWidth {
		widest := 0.0
		for _, item := range w.items {
			widest = math.Max(widest, c.measure(w, item).textW)
		}
		w.rect.W = math.Max(w.rect.W, widest+row+spacing*2)
		w.autoWidth = false
	}

	span := spacing + float64(len(w.items))*(row+spacing)
	w.itemRects = make([]geometry.Rect, len(w.items))
	c.mask.Preset(geometry.Vec3{X: spacing, Y: spacing, Z: w.rect.W}, layout.Vertical, span)
	for i := range w.itemRects {
		w.itemRects[i] = geometry.Rect{W: math.Max(w.rect.W-spacing*2, 1), H: row}
		c.mask.Insert(layout.Descriptor{Rect: &w.itemRects[i], Flags: layout.Top | layout.Left})
	}
	c.mask.Docknize()

	w.rect.H = c.mask.Rect().H
	w.minSize.Y = math.Max(w.minSize.Y, w.rect.H)
}
