package tessellate

import (
	"iter"
	"math"
)

// cornerCenter returns the arc center of corner k of a rounded rectangle.
// Corners are numbered in walk order: 0 lower-right, 1 lower-left,
// 2 upper-left, 3 upper-right (y down).
func cornerCenter(r Rect, radius float64, k int) Point {
	switch k {
	case 0:
		return Point{X: r.X + r.W - radius, Y: r.Y + r.H - radius}
	case 1:
		return Point{X: r.X + radius, Y: r.Y + r.H - radius}
	case 2:
		return Point{X: r.X + radius, Y: r.Y + radius}
	default:
		return Point{X: r.X + r.W - radius, Y: r.Y + radius}
	}
}

// arcStep returns the corner and angle of step j of an arc walk with
// segments points per corner. Corner k spans [k*90, (k+1)*90] degrees
// inclusive, so consecutive corners are joined by straight sides. A single
// point per corner sits at the corner's starting angle.
func arcStep(j, segments int) (corner int, angle float64) {
	corner, i := j/segments, j%segments
	t := float64(corner)
	if segments > 1 {
		t += float64(i) / float64(segments-1)
	}
	return corner, t * (math.Pi / 2)
}

// RoundRectOutline walks the outline of r with quarter-circle corners of
// the given radius, yielding segments points per corner. Point i of a
// corner lies at i/(segments-1) * 90 degrees past the corner's start, so
// both ends of every quarter are emitted and the sides between corners are
// axis aligned. Two points per corner give a straight bevel cut.
//
// A non-positive segment count yields no points.
func RoundRectOutline(r Rect, radius float64, segments int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if segments <= 0 {
			return
		}
		for j := range segments * 4 {
			k, a := arcStep(j, segments)
			c := cornerCenter(r, radius, k)
			p := Point{X: c.X + math.Cos(a)*radius, Y: c.Y + math.Sin(a)*radius}
			if !yield(p) {
				return
			}
		}
	}
}

// RoundRectBorderEdges walks the same arcs as RoundRectOutline for a ring
// of thickness 2*border centered on the outline: outer points use radius
// radius+border and inner points radius-border around the same centers.
// A final edge repeats the first one to close the ring, so the walk yields
// segments*4 + 1 edges.
func RoundRectBorderEdges(r Rect, radius, border float64, segments int) iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		if segments <= 0 {
			return
		}
		outer, inner := radius+border, radius-border
		n := segments * 4
		for j := 0; j <= n; j++ {
			k, a := arcStep(j%n, segments)
			c := cornerCenter(r, radius, k)
			cos, sin := math.Cos(a), math.Sin(a)
			e := Edge{
				Outer: Point{X: c.X + cos*outer, Y: c.Y + sin*outer},
				Inner: Point{X: c.X + cos*inner, Y: c.Y + sin*inner},
			}
			if !yield(e) {
				return
			}
		}
	}
}

// RoundRectTriList tessellates the interior of a rounded rectangle as a
// fan over RoundRectOutline. With segments per corner the fan holds
// 4*segments-2 triangles.
func RoundRectTriList(m Transform, r Rect, radius float64, segments, batch int) iter.Seq[[]Vertex] {
	return PolygonTriList(m, RoundRectOutline(r, radius, segments), batch)
}

// RoundRectBorderTriList tessellates the border ring of a rounded
// rectangle from RoundRectBorderEdges. With segments per corner the ring
// holds 4*segments quads.
func RoundRectBorderTriList(m Transform, r Rect, radius, border float64, segments, batch int) iter.Seq[[]Vertex] {
	return QuadStripTriList(m, RoundRectBorderEdges(r, radius, border, segments), batch)
}
