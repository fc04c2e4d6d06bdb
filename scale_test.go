package dateaxis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeScale_PixelFor(t *testing.T) {
	min := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	max := min.Add(10 * time.Hour)
	s := TimeScale{Min: min, Max: max}
	area := Rect{MinX: 100, MinY: 50, MaxX: 300, MaxY: 250}

	// Horizontal edges map min..max onto MinX..MaxX.
	assert.InDelta(t, 100.0, s.PixelFor(min, area, EdgeBottom), 1e-9)
	assert.InDelta(t, 300.0, s.PixelFor(max, area, EdgeBottom), 1e-9)
	assert.InDelta(t, 200.0, s.PixelFor(min.Add(5*time.Hour), area, EdgeTop), 1e-9)

	// Vertical edges run bottom-up: min at MaxY, max at MinY.
	assert.InDelta(t, 250.0, s.PixelFor(min, area, EdgeLeft), 1e-9)
	assert.InDelta(t, 50.0, s.PixelFor(max, area, EdgeRight), 1e-9)

	// Instants past the range extrapolate linearly; the mid-interval
	// shift of the last tick depends on this.
	assert.InDelta(t, 340.0, s.PixelFor(max.Add(2*time.Hour), area, EdgeBottom), 1e-9)
	assert.InDelta(t, 60.0, s.PixelFor(min.Add(-2*time.Hour), area, EdgeBottom), 1e-9)
}

func TestTimeScale_Monotonic(t *testing.T) {
	min := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := TimeScale{Min: min, Max: min.Add(24 * time.Hour)}
	area := Rect{MinX: 0, MinY: 0, MaxX: 1000, MaxY: 500}

	for _, edge := range []Edge{EdgeTop, EdgeBottom, EdgeLeft, EdgeRight} {
		prev := s.PixelFor(min, area, edge)
		for h := 1; h <= 24; h++ {
			cur := s.PixelFor(min.Add(time.Duration(h)*time.Hour), area, edge)
			if edge.IsTopOrBottom() {
				assert.Greater(t, cur, prev, "edge %s hour %d", edge, h)
			} else {
				assert.Less(t, cur, prev, "edge %s hour %d", edge, h)
			}
			prev = cur
		}
	}
}

func TestTimeScale_DegenerateRange(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := TimeScale{Min: at, Max: at}
	area := Rect{MinX: 100, MinY: 50, MaxX: 300, MaxY: 250}

	assert.Equal(t, 100.0, s.PixelFor(at, area, EdgeBottom))
	assert.Equal(t, 250.0, s.PixelFor(at, area, EdgeLeft))
}
