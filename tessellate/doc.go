// Package tessellate turns axis-aligned rectangles into triangle lists.
//
// Every function in this package is pure: the same inputs always produce
// the same vertex stream. Geometry is described in a caller-local space
// (Rect, Point) and every emitted Vertex has already been mapped through
// a Transform into device space.
//
// # Shapes
//
// Square rectangles are small enough to be returned as fixed-size arrays:
//
//	tris := tessellate.RectTriList(m, tessellate.Rect{X: 0, Y: 0, W: 100, H: 50})
//	backend.TriList(tris[:])
//
// Rounded rectangles are streamed as batches so the peak memory of a
// draw does not depend on the arc resolution:
//
//	for batch := range tessellate.RoundRectTriList(m, r, 10, 32, 0) {
//	    backend.TriList(batch)
//	}
//
// A batch is only valid until the loop body returns; the next batch reuses
// the same storage. Copy it if it must outlive the iteration.
//
// # Arc walk
//
// A rounded outline visits the four corners in the order lower-right,
// lower-left, upper-left, upper-right (screen coordinates, y down) and
// samples each quarter circle at segments evenly spaced angles. Radii are
// used as given: a radius larger than half the smaller side produces a
// self-intersecting outline rather than being clamped.
//
// # Winding
//
// For non-negative sizes, and a corner radius not smaller than the border
// thickness, every emitted triangle has positive signed area in the space
// it is emitted in. See WindingOf.
package tessellate
