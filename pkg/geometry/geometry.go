package geometry

import "math"

// Vec2 is a 2D vector or size.
type Vec2 struct {
	X, Y float64
}

// Vec3 carries a per-axis spacing (X, Y) and a thickness (Z).
type Vec3 struct {
	X, Y, Z float64
}

// Rect is a position and size. The coordinate space (local to the parent,
// absolute or scissor) depends on where the rect is stored.
type Rect struct {
	X, Y, W, H float64
}

// Right returns X + W.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns Y + H.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// IsEmpty reports whether the rect has no area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Translate returns the rect moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Contains reports whether the point lies inside the rect. The right and
// bottom edges are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Collide reports whether the two rects overlap.
func (r Rect) Collide(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X && r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Intersect returns the overlapping area of both rects. Disjoint rects yield
// a zero-sized rect positioned at the clamped origin.
func (r Rect) Intersect(o Rect) Rect {
	x := math.Max(r.X, o.X)
	y := math.Max(r.Y, o.Y)
	right := math.Min(r.Right(), o.Right())
	bottom := math.Min(r.Bottom(), o.Bottom())
	return Rect{X: x, Y: y, W: math.Max(right-x, 0), H: math.Max(bottom-y, 0)}
}

// Union returns the smallest rect containing both.
func (r Rect) Union(o Rect) Rect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	x := math.Min(r.X, o.X)
	y := math.Min(r.Y, o.Y)
	return Rect{X: x, Y: y, W: math.Max(r.Right(), o.Right()) - x, H: math.Max(r.Bottom(), o.Bottom()) - y}
}

// Sanitize replaces NaN and negative sizes with zero.
func (r Rect) Sanitize() Rect {
	if math.IsNaN(r.X) {
		r.X = 0
	}
	if math.IsNaN(r.Y) {
		r.Y = 0
	}
	if math.IsNaN(r.W) || r.W < 0 {
		r.W = 0
	}
	if math.IsNaN(r.H) || r.H < 0 {
		r.H = 0
	}
	return r
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
