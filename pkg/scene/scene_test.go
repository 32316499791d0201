package scene

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dockui/pkg/geometry"
	"dockui/pkg/theme"
	"dockui/pkg/widget"
)

// gridMeasurer makes every rune 10px wide and every line 20px tall.
type gridMeasurer struct{}

func (gridMeasurer) Width(s string, px float64) float64 { return float64(len([]rune(s))) * 10 }
func (gridMeasurer) Height(px float64) float64 { return 20 }

func loadAndBuild(t *testing.T, name string) *widget.Context {
	t.Helper()
	doc, err := Load(filepath.Join("testdata", name))
	require.NoError(t, err)

	ctx := widget.New(theme.Dark(), gridMeasurer{})
	require.NoError(t, Build(ctx, doc))
	ctx.Update()
	return ctx
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]Format{
		"a.toml":    FormatTOML,
		"b.YAML":    FormatYAML,
		"dir/c.yml": FormatYAML,
	} {
		got, err := FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatFromPath("scene.json")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestBuildForm(t *testing.T) {
	ctx := loadAndBuild(t, "form.toml")

	assert.Equal(t, "light", ctx.Theme.Name)
	assert.Equal(t, geometry.Vec2{X: 320, Y: 200}, ctx.Viewport)

	window := ctx.FindTag("window")
	require.NotNil(t, window)
	assert.Equal(t, widget.KindFrame, window.Kind())
	assert.Len(t, window.Children(), 5)

	assert.Equal(t, geometry.Rect{X: 2, Y: 2, W: 100, H: 30}, *ctx.FindTag("title").Rect())
	assert.Equal(t, geometry.Rect{X: 278, Y: 2, W: 20, H: 30}, *ctx.FindTag("close").Rect())

	vsync := ctx.FindTag("vsync")
	assert.True(t, vsync.Checked())
	assert.Equal(t, geometry.Rect{X: 2, Y: 34, W: 100, H: 30}, *vsync.Rect())

	volume := ctx.FindTag("volume")
	assert.Equal(t, 40.0, volume.Value())
	assert.Equal(t, 104.0, volume.Rect().X)
	assert.Equal(t, 298.0, volume.Rect().Right())

	ok := ctx.FindTag("ok")
	assert.Equal(t, geometry.Rect{X: 258, Y: 148, W: 40, H: 30}, *ok.Rect())
}

func TestTOMLAndYAMLAgree(t *testing.T) {
	a := loadAndBuild(t, "form.toml")
	b := loadAndBuild(t, "form.yaml")

	wa, wb := a.Widgets(), b.Widgets()
	require.Len(t, wb, len(wa))
	for i := range wa {
		assert.Equal(t, wa[i].Tag(), wb[i].Tag())
		assert.Equal(t, wa[i].Kind(), wb[i].Kind())
		assert.Equal(t, *wa[i].Rect(), *wb[i].Rect(), wa[i].Tag())
	}
}

func TestScrollAndNesting(t *testing.T) {
	doc, err := Decode([]byte(`
width = 200
height = 100

[[widget]]
kind = "frame"
tag = "list"
rect = [0, 0, 100, 50]
scroll = true

  [[widget.children]]
  kind = "button"
  text = "a"

  [[widget.children]]
  kind = "button"
  text = "b"
  dock = "next"

  [[widget.children]]
  kind = "button"
  text = "c"
  dock = "next"
`), FormatTOML)
	require.NoError(t, err)

	ctx := widget.New(theme.Dark(), gridMeasurer{})
	require.NoError(t, Build(ctx, doc))
	ctx.Update()

	list := ctx.FindTag("list")
	require.NotNil(t, list.Embedded())
	_, v := list.Embedded().AxisEnabled()
	assert.True(t, v)
	assert.NotNil(t, ctx.FindTag("list.scroll"))
}

func TestMinSizeHoldsFillWidth(t *testing.T) {
	doc, err := Decode([]byte(`
width = 204
height = 100

[[widget]]
kind = "frame"
tag = "row"
rect = [0, 0, 204, 100]

  [[widget.children]]
  kind = "label"
  tag = "wide"
  text = "a"
  dock = "fill"
  min_size = [150, 0]

  [[widget.children]]
  kind = "label"
  tag = "rest"
  text = "b"
  dock = "fill"
`), FormatTOML)
	require.NoError(t, err)

	ctx := widget.New(theme.Dark(), gridMeasurer{})
	require.NoError(t, Build(ctx, doc))
	ctx.Update()

	wide, rest := ctx.FindTag("wide"), ctx.FindTag("rest")
	assert.Equal(t, 150.0, wide.MinSize().X)
	assert.Equal(t, geometry.Rect{X: 2, Y: 2, W: 150, H: 30}, *wide.Rect())
	assert.Equal(t, 154.0, rest.Rect().X)
	assert.Equal(t, 98.0, rest.Rect().W)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode([]byte("widht = 10\n"), FormatTOML)
	assert.ErrorContains(t, err, "widht")

	_, err = Decode([]byte("widht: 10\n"), FormatYAML)
	assert.Error(t, err)

	_, err = Decode([]byte("x"), Format("ini"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Load(filepath.Join("testdata", "missing.toml"))
	assert.Error(t, err)
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
	}{
		{"unknown kind", Document{Widgets: []Entry{{Kind: "window"}}}},
		{"bad dock", Document{Widgets: []Entry{{Kind: "button", Dock: "sideways"}}}},
		{"bad rect", Document{Widgets: []Entry{{Kind: "frame", Rect: []float64{1, 2}}}}},
		{"bad min size", Document{Widgets: []Entry{{Kind: "label", MinSize: []float64{10}}}}},
		{"bad font", Document{Widgets: []Entry{{Kind: "label", Font: "huge"}}}},
		{"leaf children", Document{Widgets: []Entry{{Kind: "button", Children: []Entry{{Kind: "label"}}}}}},
		{"orphan scrollbar", Document{Widgets: []Entry{{Kind: "scrollbar"}}}},
		{"unknown theme", Document{Theme: "solarized"}},
		{"bad child", Document{Widgets: []Entry{{Kind: "frame", Children: []Entry{{Kind: "gauge"}}}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := widget.New(theme.Dark(), gridMeasurer{})
			assert.Error(t, Build(ctx, &tt.doc))
		})
	}

	ctx := widget.New(theme.Dark(), gridMeasurer{})
	err := Build(ctx, &Document{Widgets: []Entry{{Kind: "gauge"}}})
	assert.ErrorIs(t, err, ErrUnknownKind)
	err = Build(ctx, &Document{Theme: "solarized"})
	assert.ErrorIs(t, err, theme.ErrUnknownTheme)
	err = Build(ctx, &Document{Widgets: []Entry{{Kind: "scrollbar"}}})
	assert.ErrorIs(t, err, widget.ErrNoGroup)
}
