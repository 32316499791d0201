package layout

import (
	"math"

	"dockui/pkg/geometry"
)

// SlotKind tells the extent tracker how to treat one sibling.
type SlotKind int

const (
	// SlotFlow takes part in the run.
	SlotFlow SlotKind = iota
	// SlotSkip is ignored (dangling ID, nil rect, none/free flagged).
	SlotSkip
	// SlotBarrier closes the run before itself (scrollbars).
	SlotBarrier
)

// Slot is what the tracker needs to know about one sibling.
type Slot struct {
	Kind  SlotKind
	Flags Flags
	Size  float64
}

// Siblings is a list the extent tracker can scan: the children of a
// container or the descriptors of a mask.
type Siblings interface {
	Len() int
	Slot(i int, axis Axis) Slot
}

// Extent is the memoized result of one scan run over [Begin, End).
type Extent struct {
	Begin, End int
	// Count is the number of fill items in the run, at least 1.
	Count int
	// Extent is the size taken by the non-fill items, gaps included, minus
	// one trailing offset.
	Extent float64
	// LastFill is the index of the last fill item of the run, -1 if none.
	LastFill int
	// Tail is the size (with the gap before each item) of the non-fill
	// items following LastFill. A fill run closed by a non-fill item has a
	// positive Tail.
	Tail float64

	fill, stop Flags
	valid      bool
}

// contains reports whether i falls in a window scanned with the same fill
// and stop sets.
func (e *Extent) contains(i int, fill, stop Flags) bool {
	return e.valid && e.fill == fill && e.stop == stop && i >= e.Begin && i < e.End
}

// Latched reports whether the run has fill items closed out by non-fill
// items, in which case the last fill item is stretched to the exact gap.
func (e Extent) Latched() bool {
	return e.LastFill >= 0 && e.Tail > 0
}

// ScanContext holds the extent caches of one docknizing pass. The
// docknizer saves it before recursing into a child container and restores
// it afterwards.
type ScanContext struct {
	H, V Extent
	// Scans counts full scans; cache hits do not increment it.
	Scans int
}

// Reset drops both cached windows.
func (sc *ScanContext) Reset() {
	sc.H = Extent{}
	sc.V = Extent{}
}

type scanState struct {
	h, v Extent
}

func (sc *ScanContext) save() scanState {
	return scanState{h: sc.H, v: sc.V}
}

func (sc *ScanContext) restore(s scanState) {
	sc.H = s.h
	sc.V = s.v
}

func (sc *ScanContext) cache(axis Axis) *Extent {
	if axis == Vertical {
		return &sc.V
	}
	return &sc.H
}

// Extentnize measures the run starting at begin: the summed size plus
// offset of its non-fill items and the number of fill items. A run ends
// before an item carrying stop (other than the first), before a barrier,
// or at the end of the list. A begin index inside the last window computed
// with the same fill and stop sets returns the cached result.
func (sc *ScanContext) Extentnize(list Siblings, fill, stop Flags, begin int, axis Axis, offset float64) Extent {
	cached := sc.cache(axis)
	if cached.contains(begin, fill, stop) {
		return *cached
	}
	sc.Scans++

	var (
		extent   float64
		tail     float64
		count    int
		lastFill = -1
		n        = list.Len()
		end      = n
	)

	for i := begin; i < n; i++ {
		slot := list.Slot(i, axis)
		if slot.Kind == SlotBarrier || (i != begin && stop != 0 && slot.Flags.Any(stop)) {
			end = i
			break
		}
		if slot.Kind == SlotSkip {
			continue
		}
		if slot.Flags.Any(fill) {
			count++
			lastFill = i
			tail = 0
			continue
		}
		extent += slot.Size + offset
		if lastFill >= 0 {
			tail += slot.Size + offset
		}
	}

	*cached = Extent{
		Begin:    begin,
		End:      end,
		Count:    max(count, 1),
		Extent:   math.Max(extent-offset, 0),
		LastFill: lastFill,
		Tail:     tail,
		fill:     fill,
		stop:     stop,
		valid:    true,
	}
	return *cached
}

// NodeSiblings adapts the children of a container to Siblings.
type NodeSiblings struct {
	Tree Tree
	IDs  []ID
}

func (s NodeSiblings) Len() int {
	return len(s.IDs)
}

func (s NodeSiblings) Slot(i int, axis Axis) Slot {
	n := s.Tree.Lookup(s.IDs[i])
	if n == nil {
		return Slot{Kind: SlotSkip}
	}
	if !n.IsFlowParticipant() {
		return Slot{Kind: SlotBarrier}
	}
	flags := n.Dock()
	if flags.Any(None | Free) {
		return Slot{Kind: SlotSkip}
	}
	return Slot{Flags: resolveRow(flags), Size: mainSize(n.Rect(), axis)}
}

// resolveRow rewrites the top and bottom bits to the row the docknizer
// places an item in: the bottom row needs Bottom without Top, everything
// else goes to the top row. A run on one row stops at the first item of the
// other.
func resolveRow(f Flags) Flags {
	if isBottomRow(f) {
		return f
	}
	return f&^Bottom | Top
}

func isBottomRow(f Flags) bool {
	return f.Has(Bottom) && !f.Has(Top)
}

func mainSize(r *geometry.Rect, axis Axis) float64 {
	if axis == Vertical {
		return r.H
	}
	return r.W
}
