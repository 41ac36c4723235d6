package ggrect

import (
	"testing"

	"github.com/gogpu/ggrect/tessellate"
	"github.com/gogpu/gputypes"
)

func TestDefaultDrawState(t *testing.T) {
	s := DefaultDrawState()

	if s.Primitive.FrontFace != gputypes.FrontFaceCCW {
		t.Errorf("FrontFace = %v, want CCW", s.Primitive.FrontFace)
	}
	if s.Primitive.CullMode != gputypes.CullModeNone {
		t.Errorf("CullMode = %v, want none", s.Primitive.CullMode)
	}
	if s.Primitive.Topology != gputypes.PrimitiveTopologyTriangleList {
		t.Errorf("Topology = %v, want triangle list", s.Primitive.Topology)
	}
	if s.Multisample != nil || s.Scissor != nil || s.Stencil != nil || s.Depth != nil {
		t.Errorf("default state has overrides: %+v", s)
	}
	if s.ColorMask != gputypes.ColorWriteMaskAll {
		t.Errorf("ColorMask = %v, want all", s.ColorMask)
	}
	if s.Blend == nil {
		t.Fatal("Blend = nil, want alpha blending")
	}
	wantColor := gputypes.BlendComponent{
		SrcFactor: gputypes.BlendFactorSrcAlpha,
		DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
		Operation: gputypes.BlendOperationAdd,
	}
	wantAlpha := gputypes.BlendComponent{
		SrcFactor: gputypes.BlendFactorOne,
		DstFactor: gputypes.BlendFactorOne,
		Operation: gputypes.BlendOperationAdd,
	}
	if s.Blend.Color != wantColor {
		t.Errorf("Blend.Color = %+v, want %+v", s.Blend.Color, wantColor)
	}
	if s.Blend.Alpha != wantAlpha {
		t.Errorf("Blend.Alpha = %+v, want %+v", s.Blend.Alpha, wantAlpha)
	}
}

func TestDefaultDrawStateIsFresh(t *testing.T) {
	a := DefaultDrawState()
	a.Blend.Color.SrcFactor = gputypes.BlendFactorZero
	a.Primitive.CullMode = gputypes.CullModeBack

	b := DefaultDrawState()
	if b.Blend.Color.SrcFactor != gputypes.BlendFactorSrcAlpha {
		t.Error("modifying one DefaultDrawState leaked into the next")
	}
	if b.Primitive.CullMode != gputypes.CullModeNone {
		t.Error("cull mode leaked between DefaultDrawState values")
	}
}

func TestDrawStateCulls(t *testing.T) {
	ccw, cw, flat := tessellate.CounterClockwise, tessellate.Clockwise, tessellate.Degenerate
	tests := []struct {
		name  string
		front gputypes.FrontFace
		cull  gputypes.CullMode
		w     tessellate.Winding
		want  bool
	}{
		{"none keeps ccw", gputypes.FrontFaceCCW, gputypes.CullModeNone, ccw, false},
		{"none keeps cw", gputypes.FrontFaceCCW, gputypes.CullModeNone, cw, false},
		{"back drops cw", gputypes.FrontFaceCCW, gputypes.CullModeBack, cw, true},
		{"back keeps ccw", gputypes.FrontFaceCCW, gputypes.CullModeBack, ccw, false},
		{"front drops ccw", gputypes.FrontFaceCCW, gputypes.CullModeFront, ccw, true},
		{"cw front face, back drops ccw", gputypes.FrontFaceCW, gputypes.CullModeBack, ccw, true},
		{"degenerate never culled", gputypes.FrontFaceCCW, gputypes.CullModeBack, flat, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultDrawState()
			s.Primitive.FrontFace = tt.front
			s.Primitive.CullMode = tt.cull
			if got := s.Culls(tt.w); got != tt.want {
				t.Errorf("Culls(%v) = %v, want %v", tt.w, got, tt.want)
			}
		})
	}
}

func TestGeneratedGeometryIsFrontFacing(t *testing.T) {
	s := DefaultDrawState()
	s.Primitive.CullMode = gputypes.CullModeBack

	b := &countingBackend{}
	New(Red).WithShape(Round{Radius: 8}).WithBorder(Border{Color: Blue, Radius: 2}).
		Draw(Rect{X: 10, Y: 10, W: 100, H: 60}, Translate(3, 4), b)
	for _, vs := range b.triLists() {
		for i := 0; i < len(vs); i += 3 {
			if s.Culls(tessellate.WindingOf(vs[i], vs[i+1], vs[i+2])) {
				t.Fatalf("triangle %v would be culled with back-face culling", vs[i:i+3])
			}
		}
	}
}
