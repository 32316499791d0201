package render

import (
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"dockui/pkg/geometry"
	"dockui/pkg/layout"
	"dockui/pkg/text"
	"dockui/pkg/theme"
	"dockui/pkg/widget"
)

type Renderer struct {
	context *gg.Context
	faces   *text.FaceSet
	theme   theme.Theme
}

// NewRenderer draws with the embedded Go Regular font.
func NewRenderer(width, height int) (*Renderer, error) {
	faces, err := text.DefaultFaces()
	if err != nil {
		return nil, err
	}
	return NewRendererWithFaces(width, height, faces), nil
}

func NewRendererWithFaces(width, height int, faces *text.FaceSet) *Renderer {
	return &Renderer{context: gg.NewContext(width, height), faces: faces}
}

// NewRendererForImage draws directly into target.
func NewRendererForImage(target *image.RGBA) (*Renderer, error) {
	faces, err := text.DefaultFaces()
	if err != nil {
		return nil, err
	}
	return NewRendererForImageWithFaces(target, faces), nil
}

func NewRendererForImageWithFaces(target *image.RGBA, faces *text.FaceSet) *Renderer {
	return &Renderer{context: gg.NewContextForRGBA(target), faces: faces}
}

// Render draws every widget of c, parents before children, each clipped to
// its scissor.
func (r *Renderer) Render(c *widget.Context) {
	r.theme = c.Theme
	r.context.ResetClip()
	r.setColor(r.theme.Colors.Background)
	r.context.Clear()

	for _, w := range c.Widgets() {
		if w.Dock().Has(layout.None) {
			continue
		}
		scissor := w.Scissor()
		if scissor.IsEmpty() {
			continue
		}

		// gg's Clip intersects with the previous mask and Pop does not
		// restore it, so every widget starts from a reset clip.
		r.context.ResetClip()
		r.context.DrawRectangle(scissor.X, scissor.Y, scissor.W, scissor.H)
		r.context.Clip()

		r.drawWidget(c, w)
	}
	r.context.ResetClip()
}

func (r *Renderer) drawWidget(c *widget.Context, w *widget.Widget) {
	abs := w.AbsoluteRect()
	colors := r.theme.Colors
	face := r.faces.Face(c.FontPixels(w.Font()))

	switch w.Kind() {
	case widget.KindFrame:
		r.fill(abs, colors.Frame)
		r.outline(abs, colors.FrameOutline)

	case widget.KindButton:
		r.fill(abs, colors.Button)
		r.outline(abs, colors.ButtonOutline)
		r.drawText(face, w.Text(), abs, w.TextRect())

	case widget.KindLabel:
		r.drawText(face, w.Text(), abs, w.TextRect())

	case widget.KindCheckbox:
		box := w.BoxRect().Translate(abs.X, abs.Y)
		r.fill(box, colors.Button)
		r.outline(box, colors.ButtonOutline)
		if w.Checked() {
			inset := box.W / 4
			r.fill(geometry.Rect{X: box.X + inset, Y: box.Y + inset, W: box.W - inset*2, H: box.H - inset*2}, colors.Highlight)
		}
		r.drawText(face, w.Text(), abs, w.TextRect())

	case widget.KindSlider:
		bar := w.BarRect().Translate(abs.X, abs.Y)
		r.fill(bar, colors.Button)
		knob := abs.X + w.SliderKnob()
		filled := bar
		filled.W = knob - bar.X
		r.fill(filled, colors.Highlight)
		r.context.DrawCircle(knob, bar.Y+bar.H/2, bar.H*1.5)
		r.setColor(colors.Highlight)
		r.context.Fill()
		r.drawText(face, widget.FormatValue(w.Value()), abs, w.TextRect())

	case widget.KindTextbox:
		r.fill(abs, colors.Frame)
		r.outline(abs, colors.ButtonOutline)
		textRect := w.TextRect()
		lineH := 0.0
		if n := len(w.Lines()); n > 0 {
			lineH = textRect.H / float64(n)
		}
		for i, line := range w.Lines() {
			lr := geometry.Rect{X: textRect.X, Y: textRect.Y + float64(i)*lineH, W: textRect.W, H: lineH}
			r.drawText(face, line, abs, lr)
		}

	case widget.KindListbox:
		r.fill(abs, colors.Frame)
		for i, col := range w.ColumnRects() {
			header := col.Translate(abs.X, abs.Y)
			r.fill(header, colors.Button)
			r.drawText(face, w.Columns()[i], abs, col)
		}
		for i, item := range w.Items() {
			cell := w.Cell(i)
			if cell.IsEmpty() {
				break
			}
			r.drawText(face, item, abs, cell)
		}
		r.outline(abs, colors.FrameOutline)

	case widget.KindPopup:
		r.fill(abs, colors.Frame)
		r.outline(abs, colors.Highlight)
		for i, item := range w.ItemRects() {
			r.drawText(face, w.Items()[i], abs, item)
		}

	case widget.KindScrollbar:
		r.drawScrollbar(w, abs)
	}
}

func (r *Renderer) drawScrollbar(w *widget.Widget, abs geometry.Rect) {
	s := w.Embedded()
	if s == nil {
		return
	}
	colors := r.theme.Colors
	horizontal, vertical := s.Bars()
	for _, bar := range []geometry.Rect{horizontal, vertical} {
		if bar.IsEmpty() {
			continue
		}
		r.fill(bar.Translate(abs.X, abs.Y), colors.ScrollbarBar)
	}
}

func (r *Renderer) setColor(c theme.Color) {
	r.context.SetColor(c.RGBA())
}

func (r *Renderer) fill(rect geometry.Rect, c theme.Color) {
	if rect.IsEmpty() {
		return
	}
	r.setColor(c)
	r.context.DrawRectangle(rect.X, rect.Y, rect.W, rect.H)
	r.context.Fill()
}

func (r *Renderer) outline(rect geometry.Rect, c theme.Color) {
	if rect.IsEmpty() {
		return
	}
	r.setColor(c)
	r.context.SetLineWidth(1)
	r.context.DrawRectangle(rect.X+0.5, rect.Y+0.5, rect.W-1, rect.H-1)
	r.context.Stroke()
}

// drawText draws s in rect, which is local to the widget at abs. The
// baseline sits so the line is centred vertically in rect.
func (r *Renderer) drawText(face font.Face, s string, abs, rect geometry.Rect) {
	if s == "" {
		return
	}
	m := face.Metrics()
	ascent := float64(m.Ascent) / 64
	descent := float64(m.Descent) / 64

	x := abs.X + rect.X
	y := abs.Y + rect.Y + (rect.H+ascent-descent)/2

	r.context.SetFontFace(face)
	r.setColor(r.theme.Colors.Text)
	r.context.DrawString(s, x, y)
}

func (r *Renderer) Image() image.Image {
	return r.context.Image()
}

func (r *Renderer) SavePNG(filename string) error {
	return r.context.SavePNG(filename)
}
