package text

import (
	"fmt"
	"math"
	"os"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// FaceSet caches font.Faces of one parsed TrueType font by pixel size.
type FaceSet struct {
	font *truetype.Font

	mu    sync.Mutex
	faces map[float64]font.Face
}

// NewFaceSet parses TrueType data.
func NewFaceSet(ttf []byte) (*FaceSet, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &FaceSet{font: f, faces: make(map[float64]font.Face)}, nil
}

// LoadFaceSet reads a TrueType file from disk.
func LoadFaceSet(path string) (*FaceSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return NewFaceSet(data)
}

var (
	defaultOnce  sync.Once
	defaultFaces *FaceSet
	defaultErr   error
)

// DefaultFaces returns the shared face set of the embedded Go Regular font.
func DefaultFaces() (*FaceSet, error) {
	defaultOnce.Do(func() {
		defaultFaces, defaultErr = NewFaceSet(goregular.TTF)
	})
	return defaultFaces, defaultErr
}

// Face returns the face for a pixel size. Sizes are rounded to a quarter
// pixel so slightly different scales share a face.
func (s *FaceSet) Face(px float64) font.Face {
	key := math.Round(px*4) / 4
	if key <= 0 {
		key = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.faces[key]; ok {
		return f
	}
	f := truetype.NewFace(s.font, &truetype.Options{Size: key, Hinting: font.HintingFull})
	s.faces[key] = f
	return f
}
