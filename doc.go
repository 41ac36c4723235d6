// Package ggrect draws styled rectangles as triangle lists.
//
// # Overview
//
// A Rectangle is a style: a fill color, a corner Shape (Square, Round or
// Bevel) and an optional Border. Drawing a style tessellates the
// rectangle with package tessellate, maps every vertex through a Matrix
// and hands the triangles to a Backend:
//
//	style := ggrect.New(ggrect.Red).
//	    WithShape(ggrect.Round{Radius: 10}).
//	    WithBorder(ggrect.Border{Color: ggrect.Black, Radius: 2})
//
//	style.Draw(ggrect.Rect{X: 20, Y: 20, W: 200, H: 100}, ggrect.Identity(), backend)
//
// ggrect owns no window, GPU context or event loop. Backends live in
// separate packages:
//   - backend/raster: software rasterizer into an *image.RGBA
//   - backend/ebitengine: DrawTriangles on an *ebiten.Image
//   - recording: captures calls for inspection and playback
//
// # Drawing model
//
// Each Draw call is self-contained: it keeps no state between calls and
// allocates only transient vertex batches. A layer whose alpha is exactly
// zero is skipped without touching the backend. Round corners use 32
// segments per corner for fills and 128 for borders; Bevel corners use 2.
// See the With*Segments options to change them.
//
// # Coordinate System
//
// Geometry is given in local coordinates and mapped by the Matrix into
// the backend's device space. Backends in this module use pixel
// coordinates with the origin at the top-left and y increasing downward.
//
// # Errors
//
// Drawing never fails. Invalid geometry (NaN, negative sizes, radii larger
// than the rectangle) produces degenerate or overlapping triangles rather
// than an error or a panic. Radii are not clamped.
package ggrect
