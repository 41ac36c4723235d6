// Package ebitengine is a ggrect.Backend that draws triangle lists onto an
// *ebiten.Image with DrawTriangles.
//
// A Backend is cheap; a game typically keeps one and points it at the
// screen image every frame:
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//	    g.backend.SetTarget(screen)
//	    g.style.Draw(g.rect, ggrect.Identity(), g.backend)
//	}
//
// The draw state maps onto DrawTrianglesOptions: Blend becomes an
// ebiten.Blend, a multisample count above one enables anti-aliasing, a
// scissor rectangle selects a sub-image and the cull mode drops triangles
// before submission.
package ebitengine

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/ggrect"
	"github.com/gogpu/ggrect/tessellate"
	"github.com/gogpu/gputypes"
)

// maxVertices is the largest vertex count one DrawTriangles call can index
// with uint16 indices, rounded down to whole triangles.
const maxVertices = math.MaxUint16 - math.MaxUint16%3

// whiteSubImage is the 1x1 white source all triangles sample from.
var whiteSubImage = sync.OnceValue(func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
})

// Option configures a Backend.
type Option func(*Backend)

// WithDrawState sets the render state. The default is
// ggrect.DefaultDrawState().
func WithDrawState(s ggrect.DrawState) Option {
	return func(b *Backend) {
		b.state = s
	}
}

// WithAntiAlias forces DrawTrianglesOptions.AntiAlias on or off,
// regardless of the draw state's multisample setting.
func WithAntiAlias(on bool) Option {
	return func(b *Backend) {
		b.antiAlias = &on
	}
}

// Backend submits triangle lists to an ebiten image.
//
// Backend is not safe for concurrent use; call it from the goroutine that
// runs the game's Draw.
type Backend struct {
	dst       *ebiten.Image
	state     ggrect.DrawState
	antiAlias *bool
	color     ggrect.RGBA

	vertices []ebiten.Vertex
	indices  []uint16
	options  ebiten.DrawTrianglesOptions
}

// New creates a Backend drawing onto dst. dst may be nil and set later
// with SetTarget. The current color starts as opaque black.
func New(dst *ebiten.Image, opts ...Option) *Backend {
	b := &Backend{
		dst:   dst,
		state: ggrect.DefaultDrawState(),
		color: ggrect.Black,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.options = drawOptions(b.state, b.antiAlias)
	return b
}

// SetTarget changes the destination image.
func (b *Backend) SetTarget(dst *ebiten.Image) {
	b.dst = dst
}

// SetColor implements ggrect.Backend.
func (b *Backend) SetColor(c ggrect.RGBA) {
	b.color = c
}

// TriList implements ggrect.Backend.
func (b *Backend) TriList(vertices []ggrect.Vertex) {
	if b.dst == nil || b.state.ColorMask == gputypes.ColorWriteMaskNone {
		return
	}
	target := b.dst
	if b.state.Scissor != nil {
		sub, ok := b.dst.SubImage(*b.state.Scissor).(*ebiten.Image)
		if !ok || sub.Bounds().Empty() {
			return
		}
		target = sub
	}

	for len(vertices) > 0 {
		n := min(len(vertices), maxVertices)
		b.vertices, b.indices = appendTriangles(b.vertices[:0], b.indices[:0], vertices[:n], b.color, b.state)
		if len(b.indices) > 0 {
			target.DrawTriangles(b.vertices, b.indices, whiteSubImage(), &b.options)
		}
		vertices = vertices[n:]
	}
}

// appendTriangles converts a triangle list into ebiten vertices and
// indices, skipping culled triangles. Every vertex carries the straight
// alpha color c.
func appendTriangles(vs []ebiten.Vertex, is []uint16, tris []ggrect.Vertex, c ggrect.RGBA, state ggrect.DrawState) ([]ebiten.Vertex, []uint16) {
	for i := 0; i+2 < len(tris); i += 3 {
		if state.Culls(tessellate.WindingOf(tris[i], tris[i+1], tris[i+2])) {
			continue
		}
		for _, p := range tris[i : i+3] {
			is = append(is, uint16(len(vs)))
			vs = append(vs, ebiten.Vertex{
				DstX:   p[0],
				DstY:   p[1],
				SrcX:   1,
				SrcY:   1,
				ColorR: c.R,
				ColorG: c.G,
				ColorB: c.B,
				ColorA: c.A,
			})
		}
	}
	return vs, is
}

// drawOptions derives DrawTrianglesOptions from a draw state.
func drawOptions(s ggrect.DrawState, antiAlias *bool) ebiten.DrawTrianglesOptions {
	aa := s.Multisample != nil && s.Multisample.Count > 1
	if antiAlias != nil {
		aa = *antiAlias
	}
	return ebiten.DrawTrianglesOptions{
		Blend:     blend(s.Blend),
		AntiAlias: aa,
	}
}

// blend converts a blend state to an ebiten.Blend. Ebiten composites
// premultiplied colors, so a SrcAlpha color factor, which premultiplies
// a straight source, becomes One. States using factors or operations
// outside the mapped set fall back to source-over.
func blend(s *gputypes.BlendState) ebiten.Blend {
	if s == nil {
		return ebiten.BlendCopy
	}
	srcRGB := s.Color.SrcFactor
	if srcRGB == gputypes.BlendFactorSrcAlpha {
		srcRGB = gputypes.BlendFactorOne
	}
	factors := [4]gputypes.BlendFactor{srcRGB, s.Alpha.SrcFactor, s.Color.DstFactor, s.Alpha.DstFactor}
	var mapped [4]ebiten.BlendFactor
	for i, f := range factors {
		ef, ok := blendFactors[f]
		if !ok {
			return ebiten.BlendSourceOver
		}
		mapped[i] = ef
	}
	opRGB, ok1 := blendOperations[s.Color.Operation]
	opAlpha, ok2 := blendOperations[s.Alpha.Operation]
	if !ok1 || !ok2 {
		return ebiten.BlendSourceOver
	}
	return ebiten.Blend{
		BlendFactorSourceRGB:        mapped[0],
		BlendFactorSourceAlpha:      mapped[1],
		BlendFactorDestinationRGB:   mapped[2],
		BlendFactorDestinationAlpha: mapped[3],
		BlendOperationRGB:           opRGB,
		BlendOperationAlpha:         opAlpha,
	}
}

var blendFactors = map[gputypes.BlendFactor]ebiten.BlendFactor{
	gputypes.BlendFactorZero:             ebiten.BlendFactorZero,
	gputypes.BlendFactorOne:              ebiten.BlendFactorOne,
	gputypes.BlendFactorSrcAlpha:         ebiten.BlendFactorSourceAlpha,
	gputypes.BlendFactorOneMinusSrcAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
}

var blendOperations = map[gputypes.BlendOperation]ebiten.BlendOperation{
	gputypes.BlendOperationAdd: ebiten.BlendOperationAdd,
}

var _ ggrect.Backend = (*Backend)(nil)
