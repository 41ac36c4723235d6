package ggrect

import "strconv"

// Shape is the corner shape of a rectangle. It is one of Square, Round or
// Bevel; the set is closed.
type Shape interface {
	// CornerRadius returns the corner radius, 0 for Square.
	CornerRadius() float64

	String() string

	isShape()
}

// Square corners are not rounded.
type Square struct{}

// Round corners are quarter circles of the given radius.
type Round struct {
	Radius float64
}

// Bevel corners are cut by a coarse arc of the given radius. A bevel is
// tessellated like Round with two segments per corner.
type Bevel struct {
	Radius float64
}

func (Square) isShape() {}
func (Round) isShape()  {}
func (Bevel) isShape()  {}

// CornerRadius implements Shape.
func (Square) CornerRadius() float64 { return 0 }

// CornerRadius implements Shape.
func (s Round) CornerRadius() float64 { return s.Radius }

// CornerRadius implements Shape.
func (s Bevel) CornerRadius() float64 { return s.Radius }

func (Square) String() string { return "square" }

func (s Round) String() string {
	return "round(" + strconv.FormatFloat(s.Radius, 'g', -1, 64) + ")"
}

func (s Bevel) String() string {
	return "bevel(" + strconv.FormatFloat(s.Radius, 'g', -1, 64) + ")"
}
