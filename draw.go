package ggrect

import (
	"iter"

	"github.com/gogpu/ggrect/tessellate"
)

// Draw draws r with style s through b, mapping every vertex through m.
//
// The fill is drawn first, unless its alpha is exactly zero. The border,
// if any, follows unless its alpha is exactly zero. Each visible layer
// costs one SetColor call followed by one or more TriList calls.
//
// Draw never fails: non-finite coordinates, negative sizes and radii
// larger than the rectangle produce degenerate or overlapping triangles,
// not errors. A nil backend draws nothing.
func (s Rectangle) Draw(r Rect, m Matrix, b Backend, opts ...DrawOption) {
	if b == nil {
		return
	}
	o := newDrawOptions(opts)
	t := m.transform()

	if s.Color.Transparent() {
		Logger().Debug("ggrect: fill skipped, transparent", "shape", shapeName(s.Shape))
	} else {
		b.SetColor(s.Color)
		drawFill(s.Shape, r, t, b, &o)
	}

	if s.Border == nil {
		return
	}
	if s.Border.Color.Transparent() {
		Logger().Debug("ggrect: border skipped, transparent", "shape", shapeName(s.Shape))
		return
	}
	b.SetColor(s.Border.Color)
	drawBorder(s.Shape, r, s.Border.Radius, t, b, &o)
}

// Draw draws r with style s. It is shorthand for s.Draw.
func Draw(s Rectangle, r Rect, m Matrix, b Backend, opts ...DrawOption) {
	s.Draw(r, m, b, opts...)
}

func drawFill(shape Shape, r Rect, m tessellate.Transform, b Backend, o *drawOptions) {
	switch sh := shape.(type) {
	case Round:
		submit(b, tessellate.RoundRectTriList(m, r, sh.Radius, o.roundSegments, o.batchSize))
	case Bevel:
		submit(b, tessellate.RoundRectTriList(m, r, sh.Radius, o.bevelSegments, o.batchSize))
	default:
		// Square, and the nil Shape of a zero Rectangle.
		tris := tessellate.RectTriList(m, r)
		b.TriList(tris[:])
	}
}

func drawBorder(shape Shape, r Rect, border float64, m tessellate.Transform, b Backend, o *drawOptions) {
	switch sh := shape.(type) {
	case Round:
		submit(b, tessellate.RoundRectBorderTriList(m, r, sh.Radius, border, o.borderRoundSegments, o.batchSize))
	case Bevel:
		submit(b, tessellate.RoundRectBorderTriList(m, r, sh.Radius, border, o.borderBevelSegments, o.batchSize))
	default:
		tris := tessellate.RectBorderTriList(m, r, border)
		b.TriList(tris[:])
	}
}

// submit forwards every batch of seq to the backend.
func submit(b Backend, seq iter.Seq[[]Vertex]) {
	for batch := range seq {
		b.TriList(batch)
	}
}

func shapeName(s Shape) string {
	if s == nil {
		return Square{}.String()
	}
	return s.String()
}
