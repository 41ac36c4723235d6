package ggrect

import (
	"math"

	"github.com/gogpu/ggrect/tessellate"
)

// Point is a position in local coordinates.
type Point = tessellate.Point

// Matrix is the affine map Draw applies to every vertex:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//
// The zero Matrix collapses everything onto the origin; start from
// Identity.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the matrix that leaves points unchanged.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate returns a matrix moving points by (x, y).
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale returns a matrix scaling by x and y about the origin.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, E: y}
}

// Rotate returns a rotation by angle radians about the origin. With y
// pointing down a positive angle turns clockwise on screen.
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{A: cos, B: -sin, D: sin, E: cos}
}

// Shear returns a matrix adding x*y to x and y*x to y.
func Shear(x, y float64) Matrix {
	return Matrix{A: 1, B: x, D: y, E: 1}
}

// Multiply returns m * other, which applies other first and then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint implements tessellate.Transform.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// Determinant returns the determinant of the linear part. A negative
// determinant mirrors geometry and reverses triangle winding; zero
// flattens it.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// IsIdentity reports whether m leaves every point unchanged.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// transform returns m as a tessellate.Transform, or nil for the identity
// so tessellation skips the per-vertex multiply.
func (m Matrix) transform() tessellate.Transform {
	if m.IsIdentity() {
		return nil
	}
	return m
}
