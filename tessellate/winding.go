package tessellate

// Winding is the orientation of a triangle.
type Winding int8

const (
	// Degenerate triangles have zero area.
	Degenerate Winding = iota
	// CounterClockwise triangles have positive signed area when the y
	// axis points up. On a y-down screen they appear clockwise.
	CounterClockwise
	// Clockwise triangles have negative signed area.
	Clockwise
)

// String returns the name of the winding.
func (w Winding) String() string {
	switch w {
	case CounterClockwise:
		return "CounterClockwise"
	case Clockwise:
		return "Clockwise"
	default:
		return "Degenerate"
	}
}

// SignedArea returns the signed area of triangle abc.
func SignedArea(a, b, c Vertex) float64 {
	abx, aby := float64(b[0]-a[0]), float64(b[1]-a[1])
	acx, acy := float64(c[0]-a[0]), float64(c[1]-a[1])
	return (abx*acy - aby*acx) / 2
}

// WindingOf classifies triangle abc by the sign of its area. NaN
// coordinates yield Degenerate.
func WindingOf(a, b, c Vertex) Winding {
	s := SignedArea(a, b, c)
	switch {
	case s > 0:
		return CounterClockwise
	case s < 0:
		return Clockwise
	default:
		return Degenerate
	}
}
