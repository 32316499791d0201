package layout

import "math"

// EstimateHeight returns the height a container needs to show its flow
// children in rows, margins included. Child containers without a height
// are estimated recursively.
func (e *Engine) EstimateHeight(id ID) float64 {
	n := e.Tree.Lookup(id)
	if n == nil {
		return 0
	}

	offset := e.Metrics.LayoutOffset
	total := offset
	highest := 0.0
	started := false

	for _, childID := range n.Children() {
		child := e.Tree.Lookup(childID)
		if child == nil || !child.IsFlowParticipant() || child.Dock().Any(None|Free) {
			continue
		}

		h := child.Rect().H
		if h == 0 && child.IsDocknizable() && len(child.Children()) > 0 {
			h = e.EstimateHeight(childID)
		}

		if child.Dock().Has(Next) && started {
			total += highest + offset
			highest = 0
		}
		highest = math.Max(highest, h)
		started = true
	}

	return total + highest + offset
}
