package ggrect

import (
	"image"

	"github.com/gogpu/ggrect/tessellate"
	"github.com/gogpu/gputypes"
)

// DrawState is the fixed-function render state a backend applies to the
// triangles produced by Draw. Nil pointer fields mean "no override": the
// backend keeps its own setting for that stage.
type DrawState struct {
	// Primitive holds topology, front face and culling.
	Primitive gputypes.PrimitiveState

	// Multisample overrides the sample count and mask.
	Multisample *gputypes.MultisampleState

	// Scissor restricts drawing to a device-space rectangle.
	Scissor *image.Rectangle

	// Stencil configures the stencil test.
	Stencil *StencilState

	// Depth configures the depth test.
	Depth *DepthState

	// Blend is the color and alpha blend equation. Nil disables blending:
	// the source replaces the destination.
	Blend *gputypes.BlendState

	// ColorMask selects the channels written to the target.
	ColorMask gputypes.ColorWriteMask
}

// DepthState configures the depth test.
type DepthState struct {
	Compare gputypes.CompareFunction
	Write   bool
}

// StencilState configures the stencil test for both faces.
type StencilState struct {
	Compare   gputypes.CompareFunction
	Reference uint32
	ReadMask  uint32
	WriteMask uint32
}

// DefaultDrawState returns the render state rectangles are designed for:
// counter-clockwise front faces, no culling, no multisample, scissor,
// stencil or depth override, alpha blending and all channels written.
//
// Blending is source-alpha over for color and additive for alpha:
//
//	color = src.rgb*src.a + dst.rgb*(1-src.a)
//	alpha = src.a + dst.a
//
// Each call returns a fresh value, so callers may modify it freely.
func DefaultDrawState() DrawState {
	return DrawState{
		Primitive: gputypes.PrimitiveState{
			Topology:  gputypes.PrimitiveTopologyTriangleList,
			FrontFace: gputypes.FrontFaceCCW,
			CullMode:  gputypes.CullModeNone,
		},
		Blend: &gputypes.BlendState{
			Color: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorSrcAlpha,
				DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
				Operation: gputypes.BlendOperationAdd,
			},
			Alpha: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorOne,
				DstFactor: gputypes.BlendFactorOne,
				Operation: gputypes.BlendOperationAdd,
			},
		},
		ColorMask: gputypes.ColorWriteMaskAll,
	}
}

// Culls reports whether a triangle with winding w is discarded by the
// state's cull mode. A triangle is front facing when w matches the
// state's front face; degenerate triangles are never culled.
func (s DrawState) Culls(w tessellate.Winding) bool {
	if w == tessellate.Degenerate {
		return false
	}
	front := (w == tessellate.CounterClockwise) == (s.Primitive.FrontFace == gputypes.FrontFaceCCW)
	switch s.Primitive.CullMode {
	case gputypes.CullModeFront:
		return front
	case gputypes.CullModeBack:
		return !front
	default:
		return false
	}
}
