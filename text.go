package dateaxis

import (
	"fmt"
	"math"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// TextAnchor names the reference point of a text's bounding box that is
// placed at (or rotated about) an anchor coordinate.
type TextAnchor int

const (
	AnchorTopLeft TextAnchor = iota
	AnchorTopCenter
	AnchorTopRight
	AnchorCenterLeft
	AnchorCenter
	AnchorCenterRight
	AnchorBottomLeft
	AnchorBottomCenter
	AnchorBottomRight
)

// fractions returns the anchor's position inside the text box as fractions
// of its width and height, measured from the top-left corner.
func (a TextAnchor) fractions() (fx, fy float64) {
	switch a {
	case AnchorTopLeft, AnchorCenterLeft, AnchorBottomLeft:
		fx = 0
	case AnchorTopCenter, AnchorCenter, AnchorBottomCenter:
		fx = 0.5
	default:
		fx = 1
	}
	switch a {
	case AnchorTopLeft, AnchorTopCenter, AnchorTopRight:
		fy = 0
	case AnchorCenterLeft, AnchorCenter, AnchorCenterRight:
		fy = 0.5
	default:
		fy = 1
	}
	return fx, fy
}

// TextMeasurer computes single-line text metrics in pixels: advance width,
// ascent above the baseline, and descent below it.
type TextMeasurer interface {
	Measure(text string, size float64) (width, ascent, descent float64)
}

// Font wraps a parsed TTF font. It produces x/image faces for measurement
// and keeps a freetype handle for the raster chart renderer. Face creation
// is cached per size; a Font is not safe for concurrent use, matching the
// single-threaded render pass model.
type Font struct {
	otf   *sfnt.Font
	ttf   *truetype.Font
	faces map[float64]font.Face
}

// NewFont parses TTF data into a Font.
func NewFont(data []byte) (*Font, error) {
	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing font: %w", err)
	}
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing font: %w", err)
	}
	return &Font{otf: otf, ttf: ttf, faces: make(map[float64]font.Face)}, nil
}

// DefaultFont returns the embedded Go Regular font.
func DefaultFont() *Font {
	f, err := NewFont(goregular.TTF)
	if err != nil {
		// The embedded font always parses.
		panic(err)
	}
	return f
}

// LoadFont reads and parses a TTF font file.
func LoadFont(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading font file: %w", err)
	}
	return NewFont(data)
}

// TrueType returns the freetype handle consumed by go-chart renderers.
func (f *Font) TrueType() *truetype.Font { return f.ttf }

func (f *Font) face(size float64) font.Face {
	if face, ok := f.faces[size]; ok {
		return face
	}
	face, err := opentype.NewFace(f.otf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		// A face that cannot be built from an already-parsed font is a
		// fatal configuration error, not a recoverable one.
		panic(fmt.Sprintf("cannot create %gpx face: %v", size, err))
	}
	f.faces[size] = face
	return face
}

// Measure implements TextMeasurer.
func (f *Font) Measure(text string, size float64) (width, ascent, descent float64) {
	face := f.face(size)
	adv := font.MeasureString(face, text)
	m := face.Metrics()
	return fixedToFloat(adv), fixedToFloat(m.Ascent), fixedToFloat(m.Descent)
}

func fixedToFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }

// RotatedTextBounds computes the axis-aligned bounding rectangle of text as
// it would be drawn: the box is positioned so that its textAnchor reference
// point lies at anchor, then rotated by angle radians about its
// rotationAnchor reference point.
func RotatedTextBounds(m TextMeasurer, text string, size float64, anchor Point, textAnchor TextAnchor, angle float64, rotationAnchor TextAnchor) Rect {
	w, ascent, descent := m.Measure(text, size)
	h := ascent + descent

	fx, fy := textAnchor.fractions()
	minX := anchor.X - fx*w
	minY := anchor.Y - fy*h

	if angle == 0 {
		return Rect{MinX: minX, MinY: minY, MaxX: minX + w, MaxY: minY + h}
	}

	rx, ry := rotationAnchor.fractions()
	cx := minX + rx*w
	cy := minY + ry*h
	sin, cos := math.Sincos(angle)

	corners := [4]Point{
		{minX, minY},
		{minX + w, minY},
		{minX + w, minY + h},
		{minX, minY + h},
	}
	out := Rect{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	for _, c := range corners {
		dx, dy := c.X-cx, c.Y-cy
		x := cx + dx*cos - dy*sin
		y := cy + dx*sin + dy*cos
		out.MinX = math.Min(out.MinX, x)
		out.MinY = math.Min(out.MinY, y)
		out.MaxX = math.Max(out.MaxX, x)
		out.MaxY = math.Max(out.MaxY, y)
	}
	return out
}
