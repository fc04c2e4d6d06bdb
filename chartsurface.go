package dateaxis

import (
	"fmt"
	"io"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ChartSurface adapts a go-chart renderer to the Surface contract, giving
// the axis a raster (PNG) backend alongside the native SVG writer.
type ChartSurface struct {
	r    chart.Renderer
	font *Font
}

// NewPNGSurface creates a raster surface of the given pixel size.
func NewPNGSurface(width, height int, font *Font) (*ChartSurface, error) {
	r, err := chart.PNG(width, height)
	if err != nil {
		return nil, fmt.Errorf("error creating PNG renderer: %w", err)
	}
	return NewChartSurface(r, font), nil
}

// NewChartSurface wraps an existing go-chart renderer.
func NewChartSurface(r chart.Renderer, font *Font) *ChartSurface {
	return &ChartSurface{r: r, font: font}
}

// DrawLine implements Surface.
func (s *ChartSurface) DrawLine(x1, y1, x2, y2 float64, style LineStyle) {
	s.r.SetStrokeColor(colorFromHex(style.Color))
	s.r.SetStrokeWidth(style.Width)
	s.r.MoveTo(int(x1+0.5), int(y1+0.5))
	s.r.LineTo(int(x2+0.5), int(y2+0.5))
	s.r.Stroke()
}

// DrawRotatedText implements Surface. The renderer places text with (x, y)
// at the baseline left, so the anchor alignment becomes an offset computed
// from the measured text box.
func (s *ChartSurface) DrawRotatedText(text string, anchor Point, textAnchor TextAnchor, angle float64, rotationAnchor TextAnchor, style TextStyle) {
	if text == "" {
		return
	}
	w, ascent, descent := s.font.Measure(text, style.Size)
	fx, fy := textAnchor.fractions()
	x := anchor.X - fx*w
	y := anchor.Y - fy*(ascent+descent) + ascent

	s.r.SetFont(s.font.TrueType())
	s.r.SetFontSize(style.Size)
	s.r.SetFontColor(colorFromHex(style.Color))
	if angle != 0 {
		s.r.SetTextRotation(angle)
	}
	s.r.Text(text, int(x+0.5), int(y+0.5))
	if angle != 0 {
		s.r.ClearTextRotation()
	}
}

// FillRect implements Canvas.
func (s *ChartSurface) FillRect(rect Rect, color string) {
	s.r.SetFillColor(colorFromHex(color))
	s.r.MoveTo(int(rect.MinX+0.5), int(rect.MinY+0.5))
	s.r.LineTo(int(rect.MaxX+0.5), int(rect.MinY+0.5))
	s.r.LineTo(int(rect.MaxX+0.5), int(rect.MaxY+0.5))
	s.r.LineTo(int(rect.MinX+0.5), int(rect.MaxY+0.5))
	s.r.Close()
	s.r.Fill()
}

// Polyline implements Canvas.
func (s *ChartSurface) Polyline(points []Point, style LineStyle) {
	if len(points) < 2 {
		return
	}
	s.r.SetStrokeColor(colorFromHex(style.Color))
	s.r.SetStrokeWidth(style.Width)
	s.r.MoveTo(int(points[0].X+0.5), int(points[0].Y+0.5))
	for _, p := range points[1:] {
		s.r.LineTo(int(p.X+0.5), int(p.Y+0.5))
	}
	s.r.Stroke()
}

// Save implements Canvas, encoding the rendered image.
func (s *ChartSurface) Save(w io.Writer) error {
	if err := s.r.Save(w); err != nil {
		return fmt.Errorf("error encoding chart image: %w", err)
	}
	return nil
}

func colorFromHex(c string) drawing.Color {
	if c == "" {
		return drawing.Color{A: 255}
	}
	return drawing.ColorFromHex(strings.TrimPrefix(c, "#"))
}
