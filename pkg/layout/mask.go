package layout

import (
	"math"

	"dockui/pkg/geometry"
)

// Descriptor is one rect handed to a Mask. The mask writes the solved
// position (and fill size) back through Rect; it does not own it.
type Descriptor struct {
	Rect  *geometry.Rect
	Flags Flags
}

type descriptors []Descriptor

func (d descriptors) Len() int {
	return len(d)
}

func (d descriptors) Slot(i int, axis Axis) Slot {
	if d[i].Rect == nil {
		return Slot{Kind: SlotSkip}
	}
	return Slot{Flags: d[i].Flags, Size: mainSize(d[i].Rect, axis)}
}

// Mask places a small flat set of rects (a button's text, a checkbox box,
// listbox column headers) inside one band. Preset, Insert each rect, then
// Docknize; the pending list is cleared afterwards so the mask can be
// reused for the next widget.
type Mask struct {
	offset  geometry.Vec3
	axis    Axis
	size    float64
	rect    geometry.Rect
	pending descriptors
	scan    ScanContext
}

// Preset configures the spacing (offset.X, offset.Y), the band thickness
// (offset.Z) and the size available along axis.
func (m *Mask) Preset(offset geometry.Vec3, axis Axis, initialSize float64) {
	m.offset = offset
	m.axis = axis
	m.size = initialSize
	m.rect = geometry.Rect{}
	m.pending = m.pending[:0]
	m.scan.Reset()
}

// Insert queues a descriptor. Rects flagged none are zeroed and dropped;
// rects without area are dropped, except that a fill rect may have no size
// along the axis since the solver provides it.
func (m *Mask) Insert(d Descriptor) {
	if d.Rect == nil {
		return
	}
	if d.Flags.Has(None) {
		*d.Rect = geometry.Rect{}
		return
	}

	main, cross := d.Rect.W, d.Rect.H
	if m.axis == Vertical {
		main, cross = cross, main
	}
	if cross <= 0 || (main <= 0 && !d.Flags.Has(Fill)) {
		return
	}
	m.pending = append(m.pending, d)
}

// Rect returns the bounding mask of the last Docknize call.
func (m *Mask) Rect() geometry.Rect {
	return m.rect
}

// axisView exposes a rect as main axis / cross axis fields so both axes
// share one solver.
type axisView struct {
	pos, size           *float64
	crossPos, crossSize *float64
}

func viewOf(r *geometry.Rect, axis Axis) axisView {
	if axis == Vertical {
		return axisView{pos: &r.Y, size: &r.H, crossPos: &r.X, crossSize: &r.W}
	}
	return axisView{pos: &r.X, size: &r.W, crossPos: &r.Y, crossSize: &r.H}
}

// Docknize solves the pending descriptors and clears the list.
func (m *Mask) Docknize() {
	defer func() {
		m.pending = m.pending[:0]
	}()

	var (
		near, far           = Left, Right
		crossNear, crossFar = Top, Bottom
		spacing             = m.offset.X
		crossSpacing        = m.offset.Y
	)
	if m.axis == Vertical {
		near, far = Top, Bottom
		crossNear, crossFar = Left, Right
		spacing, crossSpacing = crossSpacing, spacing
	}

	span := m.size
	thickness := m.offset.Z

	if len(m.pending) == 0 {
		m.setRect(span, thickness)
		return
	}

	// leading holds the next near-side position, opposite the space
	// reserved from the far edge. used is the running mask size.
	leading := spacing
	opposite := spacing
	used := spacing
	band := thickness

	for _, d := range m.pending {
		v := viewOf(d.Rect, m.axis)
		flags := d.Flags

		if flags.Has(Fill) {
			e := m.scan.Extentnize(m.pending, Fill, 0, 0, m.axis, spacing)
			*v.size = math.Max(DimensionFromExtent(span-spacing*2, e.Extent, spacing, e.Count), 1)
		}

		switch {
		case flags.Has(far) && !flags.Has(near):
			// uniform: the far anchor never starts before the near cursor.
			opposite += *v.size
			*v.pos = FarSidePosition(leading, opposite, span, 0)
			opposite += spacing
			used += *v.size + spacing
		case flags.Has(Center) && !flags.Has(near):
			*v.pos = span/2 - *v.size/2
			used = math.Max(used, *v.size+spacing*2)
		default:
			pos := leading
			if opposite > spacing {
				// opposite: keep clear of what the far side reserved.
				pos = math.Max(PixelPerfectPosition(leading, opposite+*v.size, span, 0), spacing)
			}
			*v.pos = pos
			leading = pos + *v.size + spacing
			used += *v.size + spacing
		}

		clamped := geometry.Clamp(*v.crossSize+crossSpacing-thickness, 0, crossSpacing)
		switch {
		case flags.Has(crossNear):
			*v.crossPos = crossSpacing - clamped
		case flags.Has(crossFar):
			*v.crossPos = thickness - *v.crossSize - crossSpacing + clamped
		default:
			*v.crossPos = thickness/2 - *v.crossSize/2
		}
		band = math.Max(band, *v.crossSize)
	}

	m.setRect(math.Min(span, used), band)
}

func (m *Mask) setRect(main, cross float64) {
	if m.axis == Vertical {
		m.rect = geometry.Rect{W: cross, H: main}
		return
	}
	m.rect = geometry.Rect{W: main, H: cross}
}
