package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/nfnt/resize"

	"dockui/pkg/diag"
	"dockui/pkg/geometry"
	"dockui/pkg/resource"
	"dockui/pkg/visualtest"
	"dockui/pkg/widget"
	stdnet "dockui/std/net"
)

func main() {
	width := flag.Int("w", 0, "viewport width in pixels (default: the scene's)")
	height := flag.Int("h", 0, "viewport height in pixels (default: the scene's)")
	output := flag.String("o", "output.png", "output PNG file path")
	themeRef := flag.String("theme", "", "theme name or .toml file")
	fontPath := flag.String("font", "", "TrueType font file (default: Go Regular)")
	scale := flag.Float64("scale", 0, "font scale factor (default: 1)")
	display := flag.String("display", "", "display size WxH; derives the scale from the viewport")
	thumb := flag.Uint("thumb", 0, "also write a thumbnail no larger than N pixels")
	dump := flag.Bool("dump", false, "print every widget's absolute rectangle")
	verbose := flag.Bool("v", false, "log layout decisions to stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: dockui [flags] <scene.toml|scene.yaml|scene.js|url>\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	if *verbose {
		diag.Verbose(os.Stderr, slog.LevelDebug)
	}
	displaySize, err := parseSize(*display)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: -display: %v\n", err)
		os.Exit(1)
	}

	if err := run(flag.Arg(0), *output, *thumb, *dump, resource.Options{
		Width:   *width,
		Height:  *height,
		Theme:   *themeRef,
		Font:    *fontPath,
		Scale:   *scale,
		Display: displaySize,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(uri, output string, thumb uint, dump bool, opts resource.Options) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	fmt.Fprintf(os.Stderr, "Loading %s...\n", uri)
	src, err := resource.NewFetcher("").Fetch(ctx, uri)
	if err != nil {
		return err
	}
	name := stdnet.PathOf(uri)

	if dump {
		wctx, err := resource.Build(src, name, opts)
		if err != nil {
			return err
		}
		dumpTree(wctx)
	}

	img, err := resource.RenderSource(src, name, opts)
	if err != nil {
		return err
	}
	if err := visualtest.SavePNG(img, output); err != nil {
		return fmt.Errorf("saving %s: %w", output, err)
	}
	fmt.Fprintf(os.Stderr, "Saved %dx%d to %s\n", img.Bounds().Dx(), img.Bounds().Dy(), output)

	if thumb > 0 {
		path := thumbnailPath(output)
		if err := visualtest.SavePNG(thumbnail(img, thumb), path); err != nil {
			return fmt.Errorf("saving %s: %w", path, err)
		}
		fmt.Fprintf(os.Stderr, "Saved thumbnail to %s\n", path)
	}
	return nil
}

// parseSize reads "WxH". The empty string is the zero size.
func parseSize(s string) (geometry.Vec2, error) {
	if s == "" {
		return geometry.Vec2{}, nil
	}
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return geometry.Vec2{}, fmt.Errorf("%q is not WxH", s)
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(ws), 64)
	if err != nil {
		return geometry.Vec2{}, fmt.Errorf("%q: %w", s, err)
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(hs), 64)
	if err != nil {
		return geometry.Vec2{}, fmt.Errorf("%q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return geometry.Vec2{}, fmt.Errorf("%q must be positive", s)
	}
	return geometry.Vec2{X: w, Y: h}, nil
}

func thumbnail(img image.Image, size uint) image.Image {
	return resize.Thumbnail(size, size, img, resize.Lanczos3)
}

func thumbnailPath(output string) string {
	if i := strings.LastIndex(output, "."); i > 0 {
		return output[:i] + "-thumb" + output[i:]
	}
	return output + "-thumb"
}

func dumpTree(c *widget.Context) {
	var walk func(w *widget.Widget, depth int)
	walk = func(w *widget.Widget, depth int) {
		r := w.AbsoluteRect()
		fmt.Printf("%s%s %q dock=%s rect=%g,%g %gx%g\n",
			strings.Repeat("  ", depth), w.Kind(), w.Tag(), w.Dock(), r.X, r.Y, r.W, r.H)
		for _, id := range w.Children() {
			walk(c.Widget(id), depth+1)
		}
	}
	for _, w := range c.Widgets() {
		if w.Parent() == 0 {
			walk(w, 0)
		}
	}
}
