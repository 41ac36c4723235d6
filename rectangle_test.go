package ggrect

import "testing"

func TestNew(t *testing.T) {
	s := New(Red)
	if s.Color != Red {
		t.Errorf("Color = %v, want red", s.Color)
	}
	if _, ok := s.Shape.(Square); !ok {
		t.Errorf("Shape = %v, want square", s.Shape)
	}
	if s.Border != nil {
		t.Errorf("Border = %+v, want nil", s.Border)
	}
}

func TestRectangleWith(t *testing.T) {
	base := New(NewRGBA(1, 1, 1, 1))
	s := base.
		WithColor(NewRGBA(0, 0, 0, 0)).
		WithShape(Round{Radius: 10}).
		WithBorder(Border{Color: NewRGBA(0, 0, 0, 0), Radius: 4})

	if s.Color != TransparentBlack {
		t.Errorf("Color = %v, want transparent", s.Color)
	}
	if s.Shape != (Round{Radius: 10}) {
		t.Errorf("Shape = %v, want round(10)", s.Shape)
	}
	if s.Border == nil || *s.Border != (Border{Color: TransparentBlack, Radius: 4}) {
		t.Errorf("Border = %+v", s.Border)
	}

	// The receiver is never modified.
	if base.Color != White || base.Border != nil {
		t.Errorf("base modified: %+v", base)
	}
	if _, ok := base.Shape.(Square); !ok {
		t.Errorf("base shape modified: %v", base.Shape)
	}

	if s.WithoutBorder().Border != nil {
		t.Error("WithoutBorder() kept the border")
	}
	if s.Border == nil {
		t.Error("WithoutBorder() modified the receiver")
	}
}

func TestWithShapeReplacesWholesale(t *testing.T) {
	s := New(Red).WithShape(Round{Radius: 10}).WithShape(Bevel{Radius: 3})
	if s.Shape != (Bevel{Radius: 3}) {
		t.Errorf("Shape = %v, want bevel(3)", s.Shape)
	}
}

func TestShape(t *testing.T) {
	tests := []struct {
		shape      Shape
		wantRadius float64
		wantString string
	}{
		{Square{}, 0, "square"},
		{Round{Radius: 10}, 10, "round(10)"},
		{Bevel{Radius: 2.5}, 2.5, "bevel(2.5)"},
	}
	for _, tt := range tests {
		if got := tt.shape.CornerRadius(); got != tt.wantRadius {
			t.Errorf("%v.CornerRadius() = %v, want %v", tt.shape, got, tt.wantRadius)
		}
		if got := tt.shape.String(); got != tt.wantString {
			t.Errorf("String() = %q, want %q", got, tt.wantString)
		}
	}
}
