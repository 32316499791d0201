package layout

import "dockui/pkg/geometry"

// ID identifies a widget in the registry. Zero means "no widget".
type ID uint32

// Node is the view of a widget the docknizer works with.
type Node interface {
	Dock() Flags
	Children() []ID
	MinSize() geometry.Vec2

	// Rect is the widget's rect local to its parent. The docknizer writes
	// positions and fill widths through it.
	Rect() *geometry.Rect
	AbsoluteRect() geometry.Rect

	// IsFlowParticipant is false for widgets that never take part in row
	// flow (scrollbars).
	IsFlowParticipant() bool
	// IsDocknizable is true for containers whose children are laid out.
	IsDocknizable() bool

	// MarkForReload schedules a re-measure after the widget was resized.
	MarkForReload()

	// Scroll returns the embedded scroll of a container, or nil.
	Scroll() Scroller

	// TakeAbsoluteParent clears the "targeting absolute parent" state and
	// returns the parent the pass must be redirected to, if any.
	TakeAbsoluteParent() (ID, bool)
}

// Scroller is the embedded scroll state bound to a container.
type Scroller interface {
	AxisEnabled() (horizontal, vertical bool)
	ContentRect() geometry.Rect
}

// Tree resolves widget IDs. Lookup must return a nil interface for unknown
// IDs.
type Tree interface {
	Lookup(id ID) Node
}

// Metrics are the theme values the docknizer depends on.
type Metrics struct {
	LayoutOffset       float64
	ScrollbarThickness float64
	SymmetricLayout    bool
}
