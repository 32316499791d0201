package render

import (
	"image/color"
	"path/filepath"
	"testing"

	"dockui/pkg/geometry"
	"dockui/pkg/layout"
	"dockui/pkg/text"
	"dockui/pkg/theme"
	"dockui/pkg/widget"
)

func rgbaAt(r *Renderer, x, y int) color.RGBA {
	return color.RGBAModel.Convert(r.Image().At(x, y)).(color.RGBA)
}

func buildScene(t *testing.T) *widget.Context {
	t.Helper()
	c := widget.New(theme.Dark(), text.Estimate{})
	c.SetViewport(200, 120)
	c.Frame("root", geometry.Rect{X: 10, Y: 10, W: 180, H: 100}, 0)
	c.Button("OK", layout.Left)
	c.Frame("clipped", geometry.Rect{W: 40, H: 20}, layout.Left|layout.Next)
	c.Button("a long button that overflows", layout.Left)
	if err := c.PopGroup(); err != nil {
		t.Fatal(err)
	}
	if err := c.PopGroup(); err != nil {
		t.Fatal(err)
	}
	c.Update()
	return c
}

func TestRenderFillsByKind(t *testing.T) {
	c := buildScene(t)
	r, err := NewRenderer(200, 120)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	r.Render(c)

	th := theme.Dark()
	if got := rgbaAt(r, 2, 2); got != th.Colors.Background.RGBA() {
		t.Errorf("background pixel = %v, want %v", got, th.Colors.Background.RGBA())
	}

	// Frame interior right of every child.
	if got := rgbaAt(r, 180, 100); got != th.Colors.Frame.RGBA() {
		t.Errorf("frame pixel = %v, want %v", got, th.Colors.Frame.RGBA())
	}

	// Button corner, inside the outline and away from the text.
	ok := c.FindTag("")
	abs := ok.AbsoluteRect()
	if got := rgbaAt(r, int(abs.X)+2, int(abs.Y)+2); got != th.Colors.Button.RGBA() {
		t.Errorf("button pixel = %v, want %v", got, th.Colors.Button.RGBA())
	}
}

func TestRenderClipsToScissor(t *testing.T) {
	c := buildScene(t)
	r, err := NewRenderer(200, 120)
	if err != nil {
		t.Fatal(err)
	}
	r.Render(c)

	clipped := c.FindTag("clipped").AbsoluteRect()
	// Just right of the small frame the long button must not be drawn.
	x, y := int(clipped.Right())+3, int(clipped.Y)+3
	if got := rgbaAt(r, x, y); got == theme.Dark().Colors.Button.RGBA() {
		t.Errorf("pixel (%d,%d) outside the scissor was painted with the button colour", x, y)
	}
}

func TestSavePNG(t *testing.T) {
	c := buildScene(t)
	r, err := NewRenderer(200, 120)
	if err != nil {
		t.Fatal(err)
	}
	r.Render(c)
	if err := r.SavePNG(filepath.Join(t.TempDir(), "out.png")); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
}
