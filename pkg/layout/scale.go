package layout

import (
	"math"

	"dockui/pkg/geometry"
)

// DimensionFromExtent returns the share of dimension left to each of count
// fill items once extent and one offset per item are taken. Every term is
// truncated to an integer and the share is floored, so a container too
// narrow for its offsets rounds down as well. count must be >= 1.
func DimensionFromExtent(dimension, extent, offset float64, count int) float64 {
	left := int32(dimension) - int32(extent) - int32(float64(count)*offset)
	return math.Floor(float64(left) / float64(count))
}

// PixelPerfectPosition resolves a far-side coordinate from the near-side
// accumulator sideA and the far-side accumulator sideB of the same
// container. The result never exceeds sideA.
func PixelPerfectPosition(sideA, sideB, dimension, offset float64) float64 {
	return math.Min((sideA+(dimension-sideA)+offset)-sideB, sideA)
}

// FarSidePosition is the counterpart of PixelPerfectPosition used when
// anchoring to the far edge: the result never starts before sideA, so a
// right or bottom anchor cannot overlap what the near side already placed.
func FarSidePosition(sideA, sideB, dimension, offset float64) float64 {
	return math.Max((sideA+(dimension-sideA)+offset)-sideB, sideA)
}

// ScaleFactor computes the step-based GUI scale for a viewport. base is the
// resolution the GUI was designed for, display the physical display size
// and interval the step in percent (25 gives 0.25 steps). The result is
// clamped to [0.5, 2].
func ScaleFactor(viewport, base, display geometry.Vec2, interval float64) float64 {
	baseArea := base.X * base.Y
	displayArea := display.X * display.Y
	if baseArea <= 0 || displayArea <= 0 || interval <= 0 {
		return 1
	}

	displayPercent := displayArea / baseArea * 100
	factor := (viewport.X * viewport.Y) / baseArea * 100
	factor = math.Round(factor/interval) / (displayPercent / interval)

	return geometry.Clamp(factor, 0.5, 2)
}

// MinOffset shrinks offset so that two of them still fit in width. Widgets
// use it to pad measured text.
func MinOffset(width, offset float64) float64 {
	if width < offset*2 {
		return math.Max(width/2, 0)
	}
	return offset
}
