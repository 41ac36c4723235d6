package tessellate

// RectTriList returns the two triangles covering r:
// (x, y) (x+w, y) (x, y+h) and (x+w, y) (x+w, y+h) (x, y+h).
func RectTriList(m Transform, r Rect) [6]Vertex {
	x2, y2 := r.X+r.W, r.Y+r.H

	tl := vertexXY(m, r.X, r.Y)
	tr := vertexXY(m, x2, r.Y)
	br := vertexXY(m, x2, y2)
	bl := vertexXY(m, r.X, y2)

	return [6]Vertex{
		tl, tr, bl,
		tr, br, bl,
	}
}

// RectBorderTriList returns a ring of eight triangles between r grown by
// border on every side and r shrunk by border on every side. The ring is
// centered on the edge of r, so its total thickness is 2*border.
func RectBorderTriList(m Transform, r Rect, border float64) [24]Vertex {
	ox1, oy1 := r.X-border, r.Y-border
	ox2, oy2 := r.X+r.W+border, r.Y+r.H+border
	ix1, iy1 := r.X+border, r.Y+border
	ix2, iy2 := r.X+r.W-border, r.Y+r.H-border

	// Corners in the same rotational order as the rounded outline.
	outer := [4]Vertex{
		vertexXY(m, ox1, oy1),
		vertexXY(m, ox2, oy1),
		vertexXY(m, ox2, oy2),
		vertexXY(m, ox1, oy2),
	}
	inner := [4]Vertex{
		vertexXY(m, ix1, iy1),
		vertexXY(m, ix2, iy1),
		vertexXY(m, ix2, iy2),
		vertexXY(m, ix1, iy2),
	}

	var out [24]Vertex
	buf := out[:0]
	for i := range 4 {
		j := (i + 1) % 4
		buf = appendQuad(buf, outer[i], inner[i], outer[j], inner[j])
	}
	return out
}
