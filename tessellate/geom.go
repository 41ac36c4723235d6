package tessellate

// Point is a position in the caller's local coordinate space.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle given by its origin corner and size.
// Negative sizes are not normalized.
type Rect struct {
	X, Y, W, H float64
}

// Vertex is a device-space position as submitted to a rendering backend.
type Vertex [2]float32

// Edge is a pair of corresponding points on the outer and inner contour
// of a ring.
type Edge struct {
	Outer, Inner Point
}

// Transform maps local points into device space.
type Transform interface {
	TransformPoint(p Point) Point
}

// TransformFunc adapts an ordinary function to the Transform interface.
type TransformFunc func(Point) Point

// TransformPoint calls f(p).
func (f TransformFunc) TransformPoint(p Point) Point {
	return f(p)
}

// vertex maps p through m. A nil transform is the identity.
func vertex(m Transform, p Point) Vertex {
	if m != nil {
		p = m.TransformPoint(p)
	}
	return Vertex{float32(p.X), float32(p.Y)}
}

// vertexXY is vertex for a bare coordinate pair.
func vertexXY(m Transform, x, y float64) Vertex {
	return vertex(m, Point{X: x, Y: y})
}
