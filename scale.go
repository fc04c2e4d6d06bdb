package dateaxis

import "time"

// TimeScale maps instants to pixel coordinates along one edge of a
// rectangle. The mapping is linear in time: Min maps to the start of the
// edge, Max to its end. Instants outside [Min, Max] extrapolate linearly,
// which is what the mid-interval anchor shift relies on for the last tick.
//
// On horizontal edges time increases left to right. On vertical edges time
// increases bottom to top, so Min maps to MaxY (screen y grows downward).
type TimeScale struct {
	Min time.Time
	Max time.Time
}

// PixelFor returns the pixel coordinate of t along the given edge of area.
// The result is monotonic in t for a fixed area and edge.
func (s TimeScale) PixelFor(t time.Time, area Rect, edge Edge) float64 {
	span := s.Max.Sub(s.Min)
	if span <= 0 {
		// Degenerate range: everything collapses onto the edge start.
		if edge.IsTopOrBottom() {
			return area.MinX
		}
		return area.MaxY
	}
	frac := float64(t.Sub(s.Min)) / float64(span)
	if edge.IsTopOrBottom() {
		return area.MinX + frac*area.Width()
	}
	return area.MaxY - frac*area.Height()
}
