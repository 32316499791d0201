package widget

import (
	"math"

	"dockui/pkg/geometry"
	"dockui/pkg/layout"
)

// Scroll is the scroll state a scrollbar embeds into its frame. Offset is
// zero or negative; children are drawn shifted by it.
type Scroll struct {
	ctx    *Context
	mother layout.ID

	Offset geometry.Vec2
}

func (s *Scroll) motherRect() geometry.Rect {
	m := s.ctx.widget(s.mother)
	if m == nil {
		return geometry.Rect{}
	}
	return m.rect
}

// ContentRect spans the children of the frame, scrollbars excluded.
func (s *Scroll) ContentRect() geometry.Rect {
	var content geometry.Rect
	m := s.ctx.widget(s.mother)
	if m == nil {
		return content
	}
	for _, id := range m.children {
		child := s.ctx.widget(id)
		if child == nil || child.kind == KindScrollbar || child.dock.Has(layout.None) {
			continue
		}
		content.W = math.Max(content.W, child.rect.X+child.rect.W)
		content.H = math.Max(content.H, child.rect.Y+child.rect.H)
	}
	return content
}

// AxisEnabled reports which axes overflow the frame.
func (s *Scroll) AxisEnabled() (horizontal, vertical bool) {
	content := s.ContentRect()
	mother := s.motherRect()
	return content.W > mother.W, content.H > mother.H
}

// Clamp keeps the offset inside [min(0, mother-content), 0] and resets
// axes that no longer overflow.
func (s *Scroll) Clamp() {
	content := s.ContentRect()
	mother := s.motherRect()
	h, v := content.W > mother.W, content.H > mother.H

	if h {
		s.Offset.X = geometry.Clamp(s.Offset.X, math.Min(0, mother.W-content.W), 0)
	} else {
		s.Offset.X = 0
	}
	if v {
		s.Offset.Y = geometry.Clamp(s.Offset.Y, math.Min(0, mother.H-content.H), 0)
	} else {
		s.Offset.Y = 0
	}
}

// ScrollBy moves the content; positive deltas reveal content further down
// or right.
func (s *Scroll) ScrollBy(dx, dy float64) {
	s.Offset.X -= dx
	s.Offset.Y -= dy
	s.Clamp()
}

// Bars returns the horizontal and vertical bar rects local to the frame.
// A rect is empty when its axis does not overflow.
func (s *Scroll) Bars() (horizontal, vertical geometry.Rect) {
	content := s.ContentRect()
	mother := s.motherRect()
	h, v := content.W > mother.W, content.H > mother.H

	thickness := s.ctx.Theme.Scrollbar.Thickness
	minBar := s.ctx.Theme.Scrollbar.MinBarSize

	if v {
		track := mother.H
		if h {
			track -= thickness
		}
		length := math.Max(track*mother.H/content.H, minBar)
		length = math.Min(length, track)
		pos := (-s.Offset.Y) / (content.H - mother.H) * (track - length)
		vertical = geometry.Rect{X: mother.W - thickness, Y: pos, W: thickness, H: length}
	}
	if h {
		track := mother.W
		if v {
			track -= thickness
		}
		length := math.Max(track*mother.W/content.W, minBar)
		length = math.Min(length, track)
		pos := (-s.Offset.X) / (content.W - mother.W) * (track - length)
		horizontal = geometry.Rect{X: pos, Y: mother.H - thickness, W: length, H: thickness}
	}
	return horizontal, vertical
}
