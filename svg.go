package dateaxis

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// SVGSurface accumulates SVG elements into a strings.Builder and emits a
// complete document on Save.
type SVGSurface struct {
	width      int
	height     int
	fontFamily string
	body       strings.Builder
}

// NewSVGSurface creates a surface for a document of the given pixel size.
func NewSVGSurface(width, height int, fontFamily string) *SVGSurface {
	if fontFamily == "" {
		fontFamily = "Arial, sans-serif"
	}
	return &SVGSurface{width: width, height: height, fontFamily: fontFamily}
}

// DrawLine implements Surface.
func (s *SVGSurface) DrawLine(x1, y1, x2, y2 float64, style LineStyle) {
	s.body.WriteString(fmt.Sprintf(`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f"/>`+"\n",
		x1, y1, x2, y2, style.Color, style.Width))
}

// DrawRotatedText implements Surface. Alignment maps onto SVG text-anchor
// and dominant-baseline; rotation becomes a transform about the anchor
// point, which for the axis's tick labels coincides with the rotation
// anchor.
func (s *SVGSurface) DrawRotatedText(text string, anchor Point, textAnchor TextAnchor, angle float64, rotationAnchor TextAnchor, style TextStyle) {
	if text == "" {
		return
	}
	transform := ""
	if angle != 0 {
		transform = fmt.Sprintf(` transform="rotate(%.2f %.2f %.2f)"`, angle*180/math.Pi, anchor.X, anchor.Y)
	}
	s.body.WriteString(fmt.Sprintf(`<text x="%.2f" y="%.2f" font-family="%s" font-size="%.1fpx" fill="%s" text-anchor="%s" dominant-baseline="%s"%s>%s</text>`+"\n",
		anchor.X, anchor.Y, s.fontFamily, style.Size, style.Color,
		svgTextAnchor(textAnchor), svgBaseline(textAnchor), transform, escapeXML(text)))
}

// FillRect implements Canvas.
func (s *SVGSurface) FillRect(r Rect, color string) {
	s.body.WriteString(fmt.Sprintf(`<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
		r.MinX, r.MinY, r.Width(), r.Height(), color))
}

// Polyline implements Canvas.
func (s *SVGSurface) Polyline(points []Point, style LineStyle) {
	if len(points) < 2 {
		return
	}
	var pts strings.Builder
	for i, p := range points {
		if i > 0 {
			pts.WriteByte(' ')
		}
		pts.WriteString(fmt.Sprintf("%.2f,%.2f", p.X, p.Y))
	}
	s.body.WriteString(fmt.Sprintf(`<polyline points="%s" fill="none" stroke="%s" stroke-width="%.2f"/>`+"\n",
		pts.String(), style.Color, style.Width))
}

// Save implements Canvas, writing the complete SVG document.
func (s *SVGSurface) Save(w io.Writer) error {
	var doc strings.Builder
	doc.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">
`, s.width, s.height))
	doc.WriteString(s.body.String())
	doc.WriteString("</svg>\n")
	_, err := io.WriteString(w, doc.String())
	if err != nil {
		return fmt.Errorf("error writing SVG: %w", err)
	}
	return nil
}

func svgTextAnchor(a TextAnchor) string {
	switch a {
	case AnchorTopLeft, AnchorCenterLeft, AnchorBottomLeft:
		return "start"
	case AnchorTopCenter, AnchorCenter, AnchorBottomCenter:
		return "middle"
	default:
		return "end"
	}
}

func svgBaseline(a TextAnchor) string {
	switch a {
	case AnchorTopLeft, AnchorTopCenter, AnchorTopRight:
		return "hanging"
	case AnchorCenterLeft, AnchorCenter, AnchorCenterRight:
		return "middle"
	default:
		return "text-bottom"
	}
}

func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
