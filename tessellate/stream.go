package tessellate

import "iter"

// DefaultBatchSize is the vertex capacity of one emitted batch when the
// caller passes a non-positive batch size. It holds a 128 segment border
// ring in a single batch.
const DefaultBatchSize = 4096

// initialBatchCap bounds the up-front allocation of a batch buffer; the
// buffer grows on demand up to the batch size.
const initialBatchCap = 384

// batchSize normalizes a requested batch size to a positive multiple of
// prim, the vertex count of one primitive.
func batchSize(n, prim int) int {
	if n <= 0 {
		n = DefaultBatchSize
	}
	n -= n % prim
	if n < prim {
		n = prim
	}
	return n
}

// appendQuad appends the quad o0 o1 i1 i0 as the two triangles
// (i0, o0, o1) and (i0, o1, i1).
func appendQuad(dst []Vertex, o0, i0, o1, i1 Vertex) []Vertex {
	return append(dst,
		i0, o0, o1,
		i0, o1, i1,
	)
}

// PolygonTriList triangulates a polygon as a fan anchored at its first
// point. The fan is gap free for convex polygons and for polygons that are
// star-shaped around the first point. Polygons with fewer than three
// points produce no batches.
//
// Each batch holds at most batch vertices (DefaultBatchSize if batch is
// not positive) and a whole number of triangles.
func PolygonTriList(m Transform, polygon iter.Seq[Point], batch int) iter.Seq[[]Vertex] {
	batch = batchSize(batch, 3)
	return func(yield func([]Vertex) bool) {
		buf := make([]Vertex, 0, min(batch, initialBatchCap))
		var first, prev Vertex
		n := 0
		for p := range polygon {
			v := vertex(m, p)
			if n >= 2 {
				if len(buf)+3 > batch {
					if !yield(buf) {
						return
					}
					buf = buf[:0]
				}
				buf = append(buf, first, prev, v)
			} else if n == 0 {
				first = v
			}
			prev = v
			n++
		}
		if len(buf) > 0 {
			yield(buf)
		}
	}
}

// QuadStripTriList joins consecutive edges into quads, two triangles each.
// A sequence of k edges produces k-1 quads; to close a ring the last edge
// must repeat the first.
//
// Batching follows PolygonTriList with six vertices per quad.
func QuadStripTriList(m Transform, edges iter.Seq[Edge], batch int) iter.Seq[[]Vertex] {
	batch = batchSize(batch, 6)
	return func(yield func([]Vertex) bool) {
		buf := make([]Vertex, 0, min(batch, initialBatchCap))
		var o0, i0 Vertex
		started := false
		for e := range edges {
			o1, i1 := vertex(m, e.Outer), vertex(m, e.Inner)
			if started {
				if len(buf)+6 > batch {
					if !yield(buf) {
						return
					}
					buf = buf[:0]
				}
				buf = appendQuad(buf, o0, i0, o1, i1)
			}
			o0, i0 = o1, i1
			started = true
		}
		if len(buf) > 0 {
			yield(buf)
		}
	}
}
