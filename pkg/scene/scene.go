// Package scene decodes declarative widget trees from TOML and YAML and
// builds them into a widget.Context.
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"dockui/pkg/geometry"
	"dockui/pkg/layout"
	"dockui/pkg/theme"
	"dockui/pkg/widget"
)

var (
	ErrUnknownKind   = errors.New("unknown widget kind")
	ErrUnknownFormat = errors.New("unknown scene format")
)

type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Document is a scene file.
type Document struct {
	Width   float64 `toml:"width" yaml:"width"`
	Height  float64 `toml:"height" yaml:"height"`
	Theme   string  `toml:"theme" yaml:"theme"`
	Widgets []Entry `toml:"widget" yaml:"widget"`
}

// Entry describes one widget. Children are only allowed on frames.
type Entry struct {
	Kind     string    `toml:"kind" yaml:"kind"`
	Tag      string    `toml:"tag" yaml:"tag"`
	Text     string    `toml:"text" yaml:"text"`
	Dock     string    `toml:"dock" yaml:"dock"`
	TextDock string    `toml:"text_dock" yaml:"text_dock"`
	Rect     []float64 `toml:"rect" yaml:"rect"`
	MinSize  []float64 `toml:"min_size" yaml:"min_size"`
	Font     string    `toml:"font" yaml:"font"`
	Checked  bool      `toml:"checked" yaml:"checked"`
	Value    float64   `toml:"value" yaml:"value"`
	Min      float64   `toml:"min" yaml:"min"`
	Max      float64   `toml:"max" yaml:"max"`
	Items    []string  `toml:"items" yaml:"items"`
	Columns  []string  `toml:"columns" yaml:"columns"`
	Lines    int       `toml:"lines" yaml:"lines"`
	Scroll   bool      `toml:"scroll" yaml:"scroll"`
	Children []Entry   `toml:"children" yaml:"children"`
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// Decode parses a scene. Unknown keys are an error in both formats.
func Decode(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &doc)
		if err != nil {
			return nil, fmt.Errorf("decode scene: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("decode scene: unknown keys %s", strings.Join(keys, ", "))
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode scene: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return &doc, nil
}

// Load reads and decodes a scene file.
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load scene: %w", err)
	}
	doc, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Build applies the document's viewport and theme to ctx and builds its
// widgets. The caller runs ctx.Update.
func Build(ctx *widget.Context, doc *Document) error {
	if doc.Width > 0 && doc.Height > 0 {
		ctx.SetViewport(doc.Width, doc.Height)
	}
	if doc.Theme != "" {
		th, err := theme.Resolve(doc.Theme)
		if err != nil {
			return err
		}
		ctx.SetTheme(th)
	}
	for i := range doc.Widgets {
		if err := build(ctx, &doc.Widgets[i]); err != nil {
			return fmt.Errorf("widget %d: %w", i, err)
		}
	}
	return nil
}

func parseRect(v []float64) (geometry.Rect, error) {
	switch len(v) {
	case 0:
		return geometry.Rect{}, nil
	case 4:
		return geometry.Rect{X: v[0], Y: v[1], W: v[2], H: v[3]}, nil
	}
	return geometry.Rect{}, fmt.Errorf("rect needs 4 values, got %d", len(v))
}

func parseMinSize(v []float64) (geometry.Vec2, error) {
	switch len(v) {
	case 0:
		return geometry.Vec2{}, nil
	case 2:
		return geometry.Vec2{X: v[0], Y: v[1]}, nil
	}
	return geometry.Vec2{}, fmt.Errorf("min_size needs 2 values, got %d", len(v))
}

func parseFont(s string) (widget.FontSize, error) {
	switch strings.ToLower(s) {
	case "", "normal":
		return widget.FontNormal, nil
	case "small":
		return widget.FontSmall, nil
	case "big":
		return widget.FontBig, nil
	}
	return 0, fmt.Errorf("unknown font size %q", s)
}

func build(ctx *widget.Context, e *Entry) error {
	kind, ok := widget.ParseKind(e.Kind)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKind, e.Kind)
	}
	if len(e.Children) > 0 && kind != widget.KindFrame {
		return fmt.Errorf("%s %q: only frames have children", kind, e.Tag)
	}

	dock, err := layout.ParseFlags(e.Dock)
	if err != nil {
		return err
	}
	rect, err := parseRect(e.Rect)
	if err != nil {
		return err
	}
	font, err := parseFont(e.Font)
	if err != nil {
		return err
	}
	minSize, err := parseMinSize(e.MinSize)
	if err != nil {
		return err
	}

	var w *widget.Widget
	switch kind {
	case widget.KindFrame:
		f := ctx.Frame(e.Tag, rect, dock)
		if minSize != (geometry.Vec2{}) {
			f.SetMinSize(minSize)
		}
		for i := range e.Children {
			if err := build(ctx, &e.Children[i]); err != nil {
				return fmt.Errorf("%s child %d: %w", e.Tag, i, err)
			}
		}
		if e.Scroll {
			if _, err := ctx.Scrollbar(e.Tag + ".scroll"); err != nil {
				return err
			}
		}
		if err := ctx.PopGroup(); err != nil {
			return err
		}
		return nil
	case widget.KindButton:
		w = ctx.Button(e.Text, dock)
	case widget.KindLabel:
		w = ctx.Label(e.Text, dock)
	case widget.KindCheckbox:
		w = ctx.Checkbox(e.Text, e.Checked, dock)
	case widget.KindSlider:
		lo, hi := e.Min, e.Max
		if lo == 0 && hi == 0 {
			hi = 100
		}
		w = ctx.Slider(e.Tag, e.Value, lo, hi, dock)
	case widget.KindTextbox:
		w = ctx.Textbox(e.Tag, e.Text, dock)
	case widget.KindListbox:
		w = ctx.Listbox(e.Tag, e.Columns, e.Items, dock)
	case widget.KindPopup:
		w = ctx.Popup(e.Tag, e.Items, dock)
	case widget.KindScrollbar:
		_, err := ctx.Scrollbar(e.Tag)
		return err
	}

	w.SetTag(e.Tag)
	if e.TextDock != "" {
		td, err := layout.ParseFlags(e.TextDock)
		if err != nil {
			return err
		}
		w.SetTextDock(td)
	}
	if rect != (geometry.Rect{}) {
		w.SetSize(rect.W, rect.H)
		w.SetPosition(rect.X, rect.Y)
	}
	if minSize != (geometry.Vec2{}) {
		w.SetMinSize(minSize)
	}
	if e.Lines > 0 {
		w.SetScaledHeight(e.Lines)
	}
	if font != widget.FontNormal {
		w.SetFont(font)
	}
	return nil
}
