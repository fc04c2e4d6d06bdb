package dateaxis

import "fmt"

// Point is a pixel coordinate on the rendering surface. Y grows downward,
// matching SVG and raster image conventions.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned pixel rectangle described by its corner bounds.
type Rect struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Empty reports whether the rectangle is degenerate (zero or negative extent
// in either direction).
func (r Rect) Empty() bool { return r.MaxX <= r.MinX || r.MaxY <= r.MinY }

// Edge identifies which side of the data area an axis occupies. The edge
// determines the axis's primary pixel direction: horizontal (x) for top and
// bottom edges, vertical (y) for left and right edges.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// ParseEdge converts a configuration string ("top", "bottom", "left",
// "right") to an Edge.
func ParseEdge(s string) (Edge, error) {
	switch s {
	case "top":
		return EdgeTop, nil
	case "bottom":
		return EdgeBottom, nil
	case "left":
		return EdgeLeft, nil
	case "right":
		return EdgeRight, nil
	}
	return 0, fmt.Errorf("invalid axis position %q (must be top, bottom, left, or right)", s)
}

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	}
	return fmt.Sprintf("Edge(%d)", int(e))
}

// IsTopOrBottom reports whether the edge's primary direction is horizontal.
func (e Edge) IsTopOrBottom() bool { return e == EdgeTop || e == EdgeBottom }

// IsLeftOrRight reports whether the edge's primary direction is vertical.
func (e Edge) IsLeftOrRight() bool { return e == EdgeLeft || e == EdgeRight }

// Primary returns the coordinate of p along the edge's primary direction:
// x for top/bottom edges, y for left/right edges.
func (e Edge) Primary(p Point) float64 {
	if e.IsTopOrBottom() {
		return p.X
	}
	return p.Y
}

// ShiftPrimary returns p moved by d along the edge's primary direction. The
// perpendicular coordinate is never altered.
func (e Edge) ShiftPrimary(p Point, d float64) Point {
	if e.IsTopOrBottom() {
		p.X += d
	} else {
		p.Y += d
	}
	return p
}
