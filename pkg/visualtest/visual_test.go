package visualtest

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestCompare_Identical(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	result, err := Compare(solid(10, 10, red), solid(10, 10, red), DefaultOptions())
	if err != nil {
		t.Fatalf("comparison failed: %v", err)
	}
	if !result.Match {
		t.Errorf("expected images to match")
	}
	if result.DifferentPixels != 0 {
		t.Errorf("expected 0 different pixels, got %d", result.DifferentPixels)
	}
	if result.TotalPixels != 100 {
		t.Errorf("expected 100 total pixels, got %d", result.TotalPixels)
	}
}

func TestCompare_Different(t *testing.T) {
	dir := t.TempDir()
	opts := DefaultOptions()
	opts.DiffImagePath = filepath.Join(dir, "diff.png")

	result, err := Compare(solid(10, 10, color.RGBA{255, 0, 0, 255}), solid(10, 10, color.RGBA{0, 0, 255, 255}), opts)
	if err != nil {
		t.Fatalf("comparison failed: %v", err)
	}
	if result.Match {
		t.Errorf("expected images to not match")
	}
	if result.DifferentPixels != 100 {
		t.Errorf("expected 100 different pixels, got %d", result.DifferentPixels)
	}
	if result.MaxDifference != 255 {
		t.Errorf("expected max difference 255, got %d", result.MaxDifference)
	}
	if _, err := os.Stat(opts.DiffImagePath); err != nil {
		t.Errorf("expected diff image: %v", err)
	}
}

func TestCompare_Tolerance(t *testing.T) {
	a := solid(4, 4, color.RGBA{100, 100, 100, 255})
	b := solid(4, 4, color.RGBA{102, 99, 100, 255})

	result, err := Compare(a, b, CompareOptions{Tolerance: 2})
	if err != nil {
		t.Fatal(err)
	}
	if !result.Match {
		t.Errorf("expected match within tolerance, max difference %d", result.MaxDifference)
	}

	result, err = Compare(a, b, CompareOptions{Tolerance: 1})
	if err != nil {
		t.Fatal(err)
	}
	if result.Match {
		t.Errorf("expected mismatch beyond tolerance")
	}
}

func TestCompare_FuzzyRadius(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	black := color.RGBA{0, 0, 0, 255}
	a := solid(8, 8, white)
	b := solid(8, 8, white)
	a.SetRGBA(3, 3, black)
	b.SetRGBA(4, 3, black)

	result, err := Compare(a, b, CompareOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if result.DifferentPixels != 2 {
		t.Errorf("expected 2 different pixels without fuzz, got %d", result.DifferentPixels)
	}

	result, err = Compare(a, b, CompareOptions{FuzzyRadius: 1})
	if err != nil {
		t.Fatal(err)
	}
	if !result.Match {
		t.Errorf("expected a one pixel shift to match with radius 1, %d differ", result.DifferentPixels)
	}
}

func TestCompare_MaxDifferentPercent(t *testing.T) {
	a := solid(10, 10, color.RGBA{255, 255, 255, 255})
	b := solid(10, 10, color.RGBA{255, 255, 255, 255})
	b.SetRGBA(0, 0, color.RGBA{0, 0, 0, 255})

	result, err := Compare(a, b, CompareOptions{MaxDifferentPercent: 1})
	if err != nil {
		t.Fatal(err)
	}
	if !result.Match || result.DifferentPixels != 1 {
		t.Errorf("expected 1%% difference to pass, got match=%v differing=%d", result.Match, result.DifferentPixels)
	}
}

func TestCompare_BoundsMismatch(t *testing.T) {
	c := color.RGBA{0, 0, 0, 255}
	if _, err := Compare(solid(4, 4, c), solid(5, 4, c), DefaultOptions()); err == nil {
		t.Errorf("expected an error for different bounds")
	}
}

func TestCompareFiles(t *testing.T) {
	dir := t.TempDir()
	green := solid(6, 6, color.RGBA{0, 200, 0, 255})
	p1 := filepath.Join(dir, "a.png")
	p2 := filepath.Join(dir, "b.png")
	if err := SavePNG(green, p1); err != nil {
		t.Fatal(err)
	}
	if err := SavePNG(green, p2); err != nil {
		t.Fatal(err)
	}

	result, err := CompareFiles(p1, p2, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if !result.Match {
		t.Errorf("expected files to match")
	}

	if _, err := CompareFiles(p1, filepath.Join(dir, "missing.png"), DefaultOptions()); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}

func TestReferencePaths(t *testing.T) {
	scene := filepath.Join("testdata", "scenes", "form.toml")
	if got, want := ReferencePath(scene), filepath.Join("testdata", "scenes", "reference", "form.png"); got != want {
		t.Errorf("ReferencePath = %q, want %q", got, want)
	}
	if got, want := DiffPath(scene), filepath.Join("testdata", "scenes", "output", "form-diff.png"); got != want {
		t.Errorf("DiffPath = %q, want %q", got, want)
	}
}
