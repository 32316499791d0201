package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dockui/pkg/geometry"
	"dockui/pkg/layout"
	"dockui/pkg/theme"
)

// gridMeasurer makes every rune 10px wide and every line 20px tall.
type gridMeasurer struct{}

func (gridMeasurer) Width(s string, px float64) float64 { return float64(len([]rune(s))) * 10 }
func (gridMeasurer) Height(px float64) float64 { return 20 }

func newTestContext() *Context {
	c := New(theme.Dark(), gridMeasurer{})
	c.SetViewport(400, 300)
	return c
}

func TestParseKind(t *testing.T) {
	k, ok := ParseKind(" Button ")
	require.True(t, ok)
	assert.Equal(t, KindButton, k)
	assert.Equal(t, "listbox", KindListbox.String())

	_, ok = ParseKind("window")
	assert.False(t, ok)
}

func TestIDsStartAtOne(t *testing.T) {
	c := newTestContext()
	f := c.Frame("root", geometry.Rect{W: 100, H: 100}, 0)
	b := c.Button("a", 0)
	assert.Equal(t, layout.ID(1), f.ID())
	assert.Equal(t, layout.ID(2), b.ID())
	assert.Nil(t, c.Lookup(0))
	assert.Nil(t, c.Lookup(99))
}

func TestGroups(t *testing.T) {
	c := newTestContext()
	assert.ErrorIs(t, c.PopGroup(), ErrNoGroup)
	_, err := c.Scrollbar("bar")
	assert.ErrorIs(t, err, ErrNoGroup)

	outer := c.Frame("outer", geometry.Rect{W: 200, H: 200}, 0)
	inner := c.Frame("inner", geometry.Rect{W: 100, H: 100}, layout.Left)
	a := c.Button("a", 0)
	require.NoError(t, c.PopGroup())
	b := c.Button("b", 0)
	require.NoError(t, c.PopGroup())
	top := c.Button("top", 0)

	assert.Equal(t, []layout.ID{inner.ID(), b.ID()}, outer.Children())
	assert.Equal(t, []layout.ID{a.ID()}, inner.Children())
	assert.Equal(t, layout.ID(0), top.Parent())
	assert.Equal(t, inner, c.FindTag("inner"))
}

func TestButtonReload(t *testing.T) {
	c := newTestContext()
	c.Frame("root", geometry.Rect{W: 200, H: 100}, 0)
	ok := c.Button("OK", layout.Left)
	cancel := c.Button("Cancel", layout.Left)
	c.Update()

	// text 20x20, half height 10, offset min(10, 20/2) = 10
	assert.Equal(t, geometry.Rect{X: 2, Y: 2, W: 40, H: 30}, *ok.Rect())
	assert.Equal(t, geometry.Rect{X: 10, Y: 5, W: 20, H: 20}, ok.TextRect())
	assert.Equal(t, geometry.Vec2{X: 20, Y: 30}, ok.MinSize())

	assert.Equal(t, geometry.Rect{X: 44, Y: 2, W: 80, H: 30}, *cancel.Rect())
}

func TestFillButtonIsRemeasured(t *testing.T) {
	c := newTestContext()
	c.Frame("root", geometry.Rect{W: 200, H: 100}, 0)
	c.Button("OK", layout.Left)
	wide := c.Button("Wide", layout.Fill|layout.Next)
	c.Update()

	r := *wide.Rect()
	assert.Equal(t, 2.0, r.X)
	assert.Equal(t, 34.0, r.Y)
	assert.Equal(t, 194.0, r.W)
	// Text re-centred in the resized button.
	assert.Equal(t, 77.0, wide.TextRect().X)
}

func TestCheckboxReload(t *testing.T) {
	c := newTestContext()
	cb := c.Checkbox("On", true, 0)
	c.Update()

	assert.True(t, cb.Checked())
	// box 20, text 20, three offsets of 10
	assert.Equal(t, 70.0, cb.Rect().W)
	assert.Equal(t, geometry.Rect{X: 10, Y: 5, W: 20, H: 20}, cb.BoxRect())
	assert.Equal(t, geometry.Rect{X: 40, Y: 5, W: 20, H: 20}, cb.TextRect())
}

func TestSlider(t *testing.T) {
	c := newTestContext()
	s := c.Slider("volume", 150, 0, 100, 0)
	c.Update()

	assert.Equal(t, 100.0, s.Value())
	s.SetValue(-5)
	c.Update()
	assert.Equal(t, 0.0, s.Value())
	assert.Equal(t, "0", FormatValue(s.Value()))

	bar := s.BarRect()
	assert.Greater(t, bar.W, 0.0)
	assert.LessOrEqual(t, bar.X+bar.W, s.TextRect().X)
	assert.Equal(t, bar.X, s.SliderKnob())
}

func TestTextboxWraps(t *testing.T) {
	c := newTestContext()
	c.Frame("root", geometry.Rect{W: 200, H: 200}, 0)
	tb := c.Textbox("notes", "aaaa bbbb cccc", layout.Left)
	tb.SetSize(120, 0)
	tb.SetScaledHeight(3)
	c.Update()

	// 120 wide minus 2*10 padding holds ten runes per line.
	assert.Equal(t, []string{"aaaa bbbb", "cccc"}, tb.Lines())
	assert.Equal(t, 70.0, tb.Rect().H)
}

func TestListbox(t *testing.T) {
	c := newTestContext()
	lb := c.Listbox("people", []string{"name", "age"}, []string{"ann", "31", "bob", "27"}, 0)
	c.Update()

	assert.Equal(t, 136.0, lb.Rect().W)
	assert.Equal(t, 90.0, lb.Rect().H)

	cols := lb.ColumnRects()
	require.Len(t, cols, 2)
	assert.Equal(t, geometry.Rect{X: 2, Y: 0, W: 64, H: 30}, cols[0])
	assert.Equal(t, 68.0, cols[1].X)
	assert.Equal(t, geometry.Rect{X: 68, Y: 60, W: 64, H: 30}, lb.Cell(3))
}

func TestPopup(t *testing.T) {
	c := newTestContext()
	root := c.Frame("root", geometry.Rect{W: 300, H: 200}, 0)
	p := c.Popup("menu", []string{"Open", "Save"}, layout.Left)
	c.Update()

	assert.Equal(t, 74.0, p.Rect().W)
	assert.Equal(t, 66.0, p.Rect().H)
	items := p.ItemRects()
	require.Len(t, items, 2)
	assert.Equal(t, geometry.Rect{X: 2, Y: 34, W: 70, H: 30}, items[1])

	// Layout passes requested on the popup run from its window.
	p.SetDock(layout.Right)
	c.Update()
	assert.Equal(t, 300-2-74.0, p.Rect().X)
	_, targeting := p.TakeAbsoluteParent()
	assert.False(t, targeting)
	assert.Equal(t, root.ID(), c.root(p.ID()))
}

func TestNestedFrameAutoHeight(t *testing.T) {
	c := newTestContext()
	c.Frame("root", geometry.Rect{W: 200, H: 200}, 0)
	inner := c.Frame("inner", geometry.Rect{}, layout.Fill|layout.Left)
	label := c.Label("hi", layout.Left)
	require.NoError(t, c.PopGroup())
	require.NoError(t, c.PopGroup())
	c.Update()

	assert.Equal(t, geometry.Rect{X: 2, Y: 2, W: 194, H: 34}, *inner.Rect())
	assert.Equal(t, geometry.Rect{X: 2, Y: 2, W: 40, H: 30}, *label.Rect())
	assert.Equal(t, geometry.Rect{X: 4, Y: 4, W: 40, H: 30}, label.AbsoluteRect())
}

func TestSyncLayoutOnNestedFrameRedirects(t *testing.T) {
	c := newTestContext()
	c.Frame("root", geometry.Rect{W: 200, H: 200}, 0)
	c.Button("left", layout.Left)
	inner := c.Frame("inner", geometry.Rect{W: 50, H: 50}, layout.Left)
	c.Update()
	require.Equal(t, 2+60+2.0, inner.Rect().X)

	inner.SetDock(layout.Right)
	c.Update()
	assert.Equal(t, 200-2-50.0, inner.Rect().X)
	_, pending := inner.TakeAbsoluteParent()
	assert.False(t, pending)
}

func TestTopLevelFrameFollowsViewport(t *testing.T) {
	c := New(theme.Dark(), gridMeasurer{})
	f := c.Frame("root", geometry.Rect{H: 100}, 0)
	c.SetViewport(640, 480)
	c.Update()
	assert.Equal(t, 640.0, f.Rect().W)
}

func scrollingFrame(t *testing.T) (*Context, *Widget, *Widget) {
	t.Helper()
	c := newTestContext()
	frame := c.Frame("list", geometry.Rect{W: 100, H: 50}, 0)
	c.Button("a", layout.Left)
	c.Button("b", layout.Left|layout.Next)
	last := c.Button("c", layout.Left|layout.Next)
	_, err := c.Scrollbar("bar")
	require.NoError(t, err)
	require.NoError(t, c.PopGroup())
	c.Update()
	return c, frame, last
}

func TestEmbeddedScroll(t *testing.T) {
	c, frame, last := scrollingFrame(t)

	s := frame.Embedded()
	require.NotNil(t, s)
	h, v := s.AxisEnabled()
	assert.False(t, h)
	assert.True(t, v)
	assert.Equal(t, geometry.Rect{W: 22, H: 96}, s.ContentRect())
	assert.NotNil(t, frame.Scroll())

	s.ScrollBy(0, 100)
	assert.Equal(t, -46.0, s.Offset.Y)
	assert.Equal(t, 20.0, last.AbsoluteRect().Y)

	_, bar := s.Bars()
	assert.Equal(t, 94.0, bar.X)
	assert.InDelta(t, 50*50/96.0, bar.H, 1e-9)
	assert.InDelta(t, 50-50*50/96.0, bar.Y, 1e-9)

	s.ScrollBy(0, -1000)
	assert.Equal(t, 0.0, s.Offset.Y)

	// Growing the frame past its content turns scrolling off.
	frame.SetSize(100, 200)
	s.ScrollBy(0, 10)
	c.Update()
	assert.Equal(t, 0.0, s.Offset.Y)
}

func TestFrameWithoutScrollReturnsNilInterface(t *testing.T) {
	c := newTestContext()
	f := c.Frame("plain", geometry.Rect{W: 10, H: 10}, 0)
	assert.Nil(t, f.Scroll())
}

func TestScissorAndHitTest(t *testing.T) {
	c, frame, last := scrollingFrame(t)

	// The last row sits below the frame and is clipped away.
	assert.True(t, last.Scissor().IsEmpty())
	assert.Equal(t, frame.ID(), c.WidgetAt(50, 40))

	frame.Embedded().ScrollBy(0, 46)
	assert.Equal(t, last.ID(), c.WidgetAt(5, 25))
	assert.Equal(t, layout.ID(0), c.WidgetAt(500, 500))
}

func TestSetThemeReloads(t *testing.T) {
	c := newTestContext()
	c.Frame("root", geometry.Rect{W: 200, H: 100}, 0)
	b := c.Button("OK", layout.Left)
	c.Update()
	require.Equal(t, 2.0, b.Rect().X)

	th := theme.Dark()
	th.LayoutOffset = 5
	c.SetTheme(th)
	c.Update()
	assert.Equal(t, 5.0, b.Rect().X)
}
