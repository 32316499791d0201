package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// Shaper measures text by shaping it with HarfBuzz. Widths account for
// kerning and ligatures, unlike a per-glyph advance sum.
type Shaper struct {
	mu     sync.Mutex
	face   *font.Face
	shaper shaping.HarfbuzzShaper
	lang   language.Language
	cache  map[shapeKey]float64
}

type shapeKey struct {
	text string
	px   float64
}

// maxCached bounds the width cache; it is dropped whole when full.
const maxCached = 4096

// NewShaper parses a TrueType or OpenType font.
func NewShaper(data []byte) (*Shaper, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Shaper{
		face:  face,
		lang:  language.NewLanguage("en"),
		cache: make(map[shapeKey]float64),
	}, nil
}

// NewDefaultShaper shapes with the embedded Go Regular font.
func NewDefaultShaper() (*Shaper, error) {
	return NewShaper(goregular.TTF)
}

func (s *Shaper) shape(runes []rune, px float64) shaping.Output {
	script := language.Latin
	if len(runes) > 0 {
		script = language.LookupScript(runes[0])
	}
	return s.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      s.face,
		Size:      fixed.Int26_6(px * 64),
		Script:    script,
		Language:  s.lang,
	})
}

func (s *Shaper) Width(str string, px float64) float64 {
	if str == "" {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := shapeKey{text: str, px: px}
	if w, ok := s.cache[key]; ok {
		return w
	}

	out := s.shape([]rune(str), px)
	w := fixedToFloat(out.Advance)
	if w < 0 {
		w = -w
	}

	if len(s.cache) >= maxCached {
		s.cache = make(map[shapeKey]float64)
	}
	s.cache[key] = w
	return w
}

func (s *Shaper) Height(px float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.shape([]rune("Hg"), px)
	b := out.LineBounds
	return fixedToFloat(b.Ascent) - fixedToFloat(b.Descent) + fixedToFloat(b.Gap)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
