package text

import (
	"strings"

	"github.com/fogleman/gg"
)

// Measurer measures single lines of text at a pixel size.
type Measurer interface {
	Width(s string, px float64) float64
	// Height is the line height at px.
	Height(px float64) float64
}

// Estimate is a font-less measurer: every glyph is 0.6em wide and lines are
// 1.2em tall.
type Estimate struct{}

func (Estimate) Width(s string, px float64) float64 {
	return float64(len([]rune(s))) * px * 0.6
}

func (Estimate) Height(px float64) float64 {
	return px * 1.2
}

// GGMeasurer measures with gg and the faces of a FaceSet.
type GGMeasurer struct {
	Faces *FaceSet
}

// NewGGMeasurer measures with the embedded Go Regular font.
func NewGGMeasurer() (*GGMeasurer, error) {
	faces, err := DefaultFaces()
	if err != nil {
		return nil, err
	}
	return &GGMeasurer{Faces: faces}, nil
}

func (m *GGMeasurer) Width(s string, px float64) float64 {
	dc := gg.NewContext(1, 1)
	dc.SetFontFace(m.Faces.Face(px))
	w, _ := dc.MeasureString(s)
	return w
}

func (m *GGMeasurer) Height(px float64) float64 {
	dc := gg.NewContext(1, 1)
	dc.SetFontFace(m.Faces.Face(px))
	return dc.FontHeight()
}

// BreakLines breaks text into lines no wider than maxWidth. Words wider
// than maxWidth get a line of their own. Explicit newlines are kept.
func BreakLines(m Measurer, text string, px, maxWidth float64) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		lines = append(lines, breakParagraph(m, paragraph, px, maxWidth)...)
	}
	return lines
}

func breakParagraph(m Measurer, text string, px, maxWidth float64) []string {
	if m.Width(text, px) <= maxWidth {
		return []string{text}
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{text}
	}

	var lines []string
	current := ""
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if m.Width(candidate, px) <= maxWidth {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
