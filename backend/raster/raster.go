// Package raster is a software ggrect.Backend that rasterizes triangle
// lists into an *image.RGBA with golang.org/x/image/vector.
//
// Each TriList call becomes one anti-aliased fill: the triangles of the
// batch are accumulated into a single vector path and composited with the
// current color. Vertices are pixel coordinates in the destination
// image's coordinate space.
//
// The backend honors a subset of ggrect.DrawState: cull mode and front
// face, scissor, a color mask of ColorWriteMaskNone (nothing is written)
// and blending. Any non-nil Blend state composites with Porter-Duff
// source-over; a nil Blend replaces the destination.
package raster

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/ggrect"
	"github.com/gogpu/ggrect/tessellate"
	"github.com/gogpu/gputypes"
)

// coordLimit bounds vertex coordinates handed to the rasterizer, which
// walks every scanline between a segment's end points.
const coordLimit = 1 << 20

// Option configures a Backend.
type Option func(*Backend)

// WithDrawState sets the render state. The default is
// ggrect.DefaultDrawState().
func WithDrawState(s ggrect.DrawState) Option {
	return func(b *Backend) {
		b.state = s
	}
}

// Backend rasterizes triangle lists into an image.
//
// Backend is not safe for concurrent use.
type Backend struct {
	dst   *image.RGBA
	state ggrect.DrawState
	src   *image.Uniform
	ras   vector.Rasterizer

	culled  int
	dropped int
}

// New creates a Backend drawing into dst. The current color starts as
// opaque black.
func New(dst *image.RGBA, opts ...Option) *Backend {
	b := &Backend{
		dst:   dst,
		state: ggrect.DefaultDrawState(),
		src:   image.NewUniform(ggrect.Black.NRGBA()),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewImage creates a Backend with a new transparent image of the given
// size.
func NewImage(width, height int, opts ...Option) *Backend {
	return New(image.NewRGBA(image.Rect(0, 0, width, height)), opts...)
}

// Image returns the destination image.
func (b *Backend) Image() *image.RGBA {
	return b.dst
}

// Clear fills the whole image with c, ignoring the draw state.
func (b *Backend) Clear(c ggrect.RGBA) {
	draw.Draw(b.dst, b.dst.Bounds(), image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
}

// Culled returns how many triangles were discarded by the cull mode.
func (b *Backend) Culled() int {
	return b.culled
}

// Dropped returns how many triangles were discarded for having
// non-finite coordinates.
func (b *Backend) Dropped() int {
	return b.dropped
}

// SetColor implements ggrect.Backend.
func (b *Backend) SetColor(c ggrect.RGBA) {
	b.src = image.NewUniform(c.NRGBA())
}

// TriList implements ggrect.Backend.
func (b *Backend) TriList(vertices []ggrect.Vertex) {
	if b.dst == nil || b.state.ColorMask == gputypes.ColorWriteMaskNone {
		return
	}
	clip := b.dst.Bounds()
	if b.state.Scissor != nil {
		clip = clip.Intersect(*b.state.Scissor)
	}
	if clip.Empty() {
		return
	}

	b.ras.Reset(clip.Dx(), clip.Dy())
	if b.state.Blend == nil {
		b.ras.DrawOp = draw.Src
	} else {
		b.ras.DrawOp = draw.Over
	}

	ox, oy := float32(clip.Min.X), float32(clip.Min.Y)
	culled, dropped, drawn := 0, 0, 0
	for i := 0; i+2 < len(vertices); i += 3 {
		p0, p1, p2 := vertices[i], vertices[i+1], vertices[i+2]
		if !finite(p0) || !finite(p1) || !finite(p2) {
			dropped++
			continue
		}
		if b.state.Culls(tessellate.WindingOf(p0, p1, p2)) {
			culled++
			continue
		}
		b.ras.MoveTo(clamp(p0[0]-ox), clamp(p0[1]-oy))
		b.ras.LineTo(clamp(p1[0]-ox), clamp(p1[1]-oy))
		b.ras.LineTo(clamp(p2[0]-ox), clamp(p2[1]-oy))
		b.ras.ClosePath()
		drawn++
	}
	b.culled += culled
	b.dropped += dropped
	if culled > 0 || dropped > 0 {
		ggrect.Logger().Debug("raster: triangles discarded", "culled", culled, "non-finite", dropped)
	}
	if drawn == 0 {
		return
	}
	b.ras.Draw(b.dst, clip, b.src, image.Point{})
}

func finite(v ggrect.Vertex) bool {
	for _, c := range v {
		if math.IsNaN(float64(c)) || math.IsInf(float64(c), 0) {
			return false
		}
	}
	return true
}

func clamp(x float32) float32 {
	return max(-coordLimit, min(coordLimit, x))
}

var _ ggrect.Backend = (*Backend)(nil)
