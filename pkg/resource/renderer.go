package resource

import (
	"context"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"dockui/pkg/diag"
	"dockui/pkg/geometry"
	"dockui/pkg/js"
	"dockui/pkg/render"
	"dockui/pkg/scene"
	"dockui/pkg/text"
	"dockui/pkg/theme"
	"dockui/pkg/widget"
	stdnet "dockui/std/net"
)

// Options control how a scene source is turned into an image.
type Options struct {
	// Width and Height override the scene's viewport when non-zero.
	Width, Height int
	// Theme is a theme name or .toml path applied before the scene's own.
	Theme string
	// Measurer defaults to HarfBuzz shaping of the embedded font, or to gg
	// measuring of Font when that is set.
	Measurer text.Measurer
	// Font is a TrueType file used instead of the embedded font.
	Font string
	// Scale multiplies every font size when positive.
	Scale float64
	// Display, when set, derives the scale from the viewport with
	// widget.Context.AutoScale and overrides Scale.
	Display geometry.Vec2
}

const (
	defaultWidth  = 800
	defaultHeight = 600

	// ScaleInterval is the AutoScale step in percent.
	ScaleInterval = 25
)

// BaseResolution is the viewport scenes are designed for at scale 1.
var BaseResolution = geometry.Vec2{X: 1280, Y: 720}

// Build decodes src, picking the loader from name's extension (.toml,
// .yaml, .yml or .js), and returns the updated widget context.
func Build(src []byte, name string, opts Options) (*widget.Context, error) {
	ctx, _, err := build(src, name, opts)
	return ctx, err
}

// build also returns the faces loaded from opts.Font, nil for the embedded
// font.
func build(src []byte, name string, opts Options) (*widget.Context, *text.FaceSet, error) {
	th, err := theme.Resolve(opts.Theme)
	if err != nil {
		return nil, nil, err
	}

	var faces *text.FaceSet
	if opts.Font != "" {
		if faces, err = text.LoadFaceSet(opts.Font); err != nil {
			return nil, nil, err
		}
	}

	m := opts.Measurer
	switch {
	case m != nil:
	case faces != nil:
		m = &text.GGMeasurer{Faces: faces}
	default:
		shaper, err := text.NewDefaultShaper()
		if err != nil {
			return nil, nil, err
		}
		m = shaper
	}

	ctx := widget.New(th, m)
	if opts.Scale > 0 {
		ctx.Scale = opts.Scale
	}
	ctx.SetViewport(defaultWidth, defaultHeight)
	if opts.Width > 0 && opts.Height > 0 {
		ctx.SetViewport(float64(opts.Width), float64(opts.Height))
	}

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".js":
		if err := js.New(ctx).Run(name, string(src)); err != nil {
			return nil, nil, err
		}
	default:
		format, err := scene.FormatFromPath(name)
		if err != nil {
			return nil, nil, err
		}
		doc, err := scene.Decode(src, format)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", name, err)
		}
		if opts.Width > 0 && opts.Height > 0 {
			doc.Width, doc.Height = float64(opts.Width), float64(opts.Height)
		}
		if err := scene.Build(ctx, doc); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", name, err)
		}
	}

	if opts.Display.X > 0 && opts.Display.Y > 0 {
		ctx.AutoScale(BaseResolution, opts.Display, ScaleInterval)
	}

	ctx.Update()
	diag.Logger().Debug("resource: built scene", "name", name, "widgets", len(ctx.Widgets()), "scale", ctx.Scale)
	return ctx, faces, nil
}

// RenderSource builds src and renders it at the viewport size.
func RenderSource(src []byte, name string, opts Options) (image.Image, error) {
	ctx, faces, err := build(src, name, opts)
	if err != nil {
		return nil, err
	}
	target := image.NewRGBA(image.Rect(0, 0, int(ctx.Viewport.X), int(ctx.Viewport.Y)))
	var r *render.Renderer
	if faces != nil {
		r = render.NewRendererForImageWithFaces(target, faces)
	} else if r, err = render.NewRendererForImage(target); err != nil {
		return nil, err
	}
	r.Render(ctx)
	return target, nil
}

// RenderURI fetches uri and renders it.
func RenderURI(c context.Context, f Fetcher, uri string, opts Options) (image.Image, error) {
	src, err := f.Fetch(c, uri)
	if err != nil {
		return nil, err
	}
	return RenderSource(src, stdnet.PathOf(uri), opts)
}
