package ggrect

import "github.com/gogpu/ggrect/tessellate"

// Rect is an axis-aligned rectangle in local coordinates.
type Rect = tessellate.Rect

// Vertex is a device-space triangle vertex.
type Vertex = tessellate.Vertex

// Border is a ring drawn around a rectangle. Radius is the border
// thickness, not a corner radius: the ring extends Radius on both sides of
// the rectangle edge.
type Border struct {
	Color  RGBA
	Radius float64
}

// Rectangle is the style of a filled rectangle: fill color, corner shape
// and an optional border. The zero value draws nothing (transparent fill,
// no border).
//
// Rectangle is a value type; the With methods return an updated copy and
// never modify the receiver.
type Rectangle struct {
	Color  RGBA
	Shape  Shape
	Border *Border
}

// New returns a rectangle style with the given fill color, square corners
// and no border.
func New(color RGBA) Rectangle {
	return Rectangle{
		Color: color,
		Shape: Square{},
	}
}

// WithColor returns a copy of s with the fill color replaced.
func (s Rectangle) WithColor(color RGBA) Rectangle {
	s.Color = color
	return s
}

// WithShape returns a copy of s with the corner shape replaced.
func (s Rectangle) WithShape(shape Shape) Rectangle {
	s.Shape = shape
	return s
}

// WithBorder returns a copy of s with the border replaced.
func (s Rectangle) WithBorder(b Border) Rectangle {
	s.Border = &b
	return s
}

// WithoutBorder returns a copy of s with no border.
func (s Rectangle) WithoutBorder() Rectangle {
	s.Border = nil
	return s
}
