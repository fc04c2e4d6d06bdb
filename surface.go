package dateaxis

import "io"

// LineStyle describes how a line segment is stroked.
type LineStyle struct {
	Color string // hex color code, e.g. "#333333"
	Width float64
}

// TextStyle describes how a text run is painted.
type TextStyle struct {
	Color string // hex color code
	Size  float64
}

// Surface is the drawing target of a render pass. The axis needs only
// lines and rotated text; concrete surfaces carry further methods for the
// host chart (background, series polyline).
type Surface interface {
	// DrawLine strokes a segment from (x1, y1) to (x2, y2).
	DrawLine(x1, y1, x2, y2 float64, style LineStyle)

	// DrawRotatedText paints text with its textAnchor reference point at
	// anchor, rotated by angle radians about its rotationAnchor reference
	// point.
	DrawRotatedText(text string, anchor Point, textAnchor TextAnchor, angle float64, rotationAnchor TextAnchor, style TextStyle)
}

// Canvas extends Surface with the chart-plumbing operations the host CLI
// uses around the axis, plus output encoding.
type Canvas interface {
	Surface
	FillRect(r Rect, color string)
	Polyline(points []Point, style LineStyle)
	Save(w io.Writer) error
}
