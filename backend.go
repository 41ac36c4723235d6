package ggrect

// Backend receives the triangles produced by Draw.
//
// Implementations draw immediately and synchronously. A Backend is driven
// from one goroutine at a time; Draw adds no locking of its own.
type Backend interface {
	// SetColor sets the color used by subsequent TriList calls.
	SetColor(c RGBA)

	// TriList draws a triangle list. len(vertices) is a multiple of 3.
	// The slice is reused after TriList returns and must not be retained.
	TriList(vertices []Vertex)
}
