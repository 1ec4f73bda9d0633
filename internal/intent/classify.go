package intent

import "math"

// DefaultGutter is the minimum edge-zone thickness, in row geometry units
const DefaultGutter = 8.0

// Rect is the vertical extent of a row as reported by the presentation layer
type Rect struct {
	Top    float64
	Height float64
}

// Classify maps the pointer's offset from the top of a row to an Intent.
//
// The top and bottom edge zones are max(gutter, rowHeight/3) thick. When the
// zones would overlap each is capped at half the row, so the midpoint belongs
// to Above and Over disappears rather than winning a boundary. Negative or
// NaN geometry is treated as zero and the offset is clamped into the row.
func Classify(offsetY, rowHeight, gutter float64) Intent {
	height := nonNegative(rowHeight)
	zone := math.Max(nonNegative(gutter), height/3)
	if math.IsInf(height, 1) {
		// unbounded row: both edge zones are unbounded too
		if math.IsInf(offsetY, 1) {
			return Below
		}
		return Above
	}
	zone = math.Min(zone, height/2)

	y := offsetY
	if math.IsNaN(y) {
		y = 0
	}
	y = math.Min(math.Max(y, 0), height)

	if y <= zone {
		return Above
	}
	if y >= height-zone {
		return Below
	}
	return Over
}

// ClassifyRect classifies an absolute pointer position against a row's rect
func ClassifyRect(pointerY float64, rect Rect, gutter float64) Intent {
	return Classify(pointerY-rect.Top, rect.Height, gutter)
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
