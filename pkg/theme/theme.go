// Package theme holds the layout metrics, font sizes and colours used to lay
// out and draw widgets.
package theme

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"dockui/pkg/layout"
)

// ErrUnknownTheme is returned by Lookup for names that were never
// registered.
var ErrUnknownTheme = errors.New("unknown theme")

type Theme struct {
	Name            string    `toml:"name"`
	LayoutOffset    float64   `toml:"layout_offset"`
	SymmetricLayout bool      `toml:"symmetric_layout"`
	Scrollbar       Scrollbar `toml:"scrollbar"`
	Font            Font      `toml:"font"`
	Colors          Scheme    `toml:"colors"`
}

type Scrollbar struct {
	Thickness  float64 `toml:"thickness"`
	MinBarSize float64 `toml:"min_bar_size"`
}

// Font sizes in pixels.
type Font struct {
	Small  float64 `toml:"small"`
	Normal float64 `toml:"normal"`
	Big    float64 `toml:"big"`
}

type Scheme struct {
	Background    Color `toml:"background"`
	Frame         Color `toml:"frame"`
	FrameOutline  Color `toml:"frame_outline"`
	Button        Color `toml:"button"`
	ButtonOutline Color `toml:"button_outline"`
	Text          Color `toml:"text"`
	Scrollbar     Color `toml:"scrollbar"`
	ScrollbarBar  Color `toml:"scrollbar_bar"`
	Highlight     Color `toml:"highlight"`
}

// Metrics returns the values the docknizer needs.
func (t Theme) Metrics() layout.Metrics {
	return layout.Metrics{
		LayoutOffset:       t.LayoutOffset,
		ScrollbarThickness: t.Scrollbar.Thickness,
		SymmetricLayout:    t.SymmetricLayout,
	}
}

func mustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Dark is the default theme.
func Dark() Theme {
	return Theme{
		Name:         "dark",
		LayoutOffset: 2,
		Scrollbar:    Scrollbar{Thickness: 6, MinBarSize: 12},
		Font:         Font{Small: 12, Normal: 16, Big: 24},
		Colors: Scheme{
			Background:    mustColor("#1e1f22"),
			Frame:         mustColor("#2b2d31"),
			FrameOutline:  mustColor("#3a3c42"),
			Button:        mustColor("#41444b"),
			ButtonOutline: mustColor("#55585f"),
			Text:          mustColor("#e6e6e6"),
			Scrollbar:     mustColor("#26272b"),
			ScrollbarBar:  mustColor("#6b6e76"),
			Highlight:     mustColor("#5865f2"),
		},
	}
}

// Light is a bright variant of Dark.
func Light() Theme {
	t := Dark()
	t.Name = "light"
	t.Colors = Scheme{
		Background:    mustColor("whitesmoke"),
		Frame:         mustColor("#ffffff"),
		FrameOutline:  mustColor("lightgray"),
		Button:        mustColor("gainsboro"),
		ButtonOutline: mustColor("darkgray"),
		Text:          mustColor("#202124"),
		Scrollbar:     mustColor("#eeeeee"),
		ScrollbarBar:  mustColor("gray"),
		Highlight:     mustColor("dodgerblue"),
	}
	return t
}

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	Register(Dark())
	Register(Light())
}

// Register adds or replaces a theme by name.
func Register(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[t.Name] = t
}

// Lookup returns a registered theme.
func Lookup(name string) (Theme, error) {
	mu.RLock()
	defer mu.RUnlock()
	t, ok := registry[name]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	return t, nil
}

// Names lists the registered themes in order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Decode reads a TOML theme. Keys that are missing keep the values of the
// dark theme; unknown keys are an error.
func Decode(r io.Reader) (Theme, error) {
	t := Dark()
	t.Name = ""
	md, err := toml.NewDecoder(r).Decode(&t)
	if err != nil {
		return Theme{}, fmt.Errorf("decode theme: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Theme{}, fmt.Errorf("decode theme: unknown keys %s", strings.Join(keys, ", "))
	}
	if t.Name == "" {
		t.Name = "custom"
	}
	return t, nil
}

// Load decodes a TOML theme file.
func Load(path string) (Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return Theme{}, fmt.Errorf("load theme: %w", err)
	}
	defer f.Close()

	t, err := Decode(f)
	if err != nil {
		return Theme{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Resolve returns the dark theme for an empty reference, loads references
// ending in .toml from disk and looks anything else up by name.
func Resolve(ref string) (Theme, error) {
	switch {
	case ref == "":
		return Dark(), nil
	case strings.HasSuffix(ref, ".toml"):
		return Load(ref)
	default:
		return Lookup(ref)
	}
}
