package main

import (
	"fmt"
	"math"

	"github.com/gogpu/ggrect"
	"github.com/gogpu/ggrect/internal/scenefile"
)

// demoScene is drawn when no scene file is given: a row of each shape
// with and without borders, and a ring of rotated bevelled squares.
func demoScene() *scenefile.Scene {
	s := &scenefile.Scene{
		Width:      800,
		Height:     600,
		Background: "#1a2333",
	}

	shapes := []struct {
		shape  string
		radius float64
		color  ggrect.RGBA
	}{
		{"square", 0, ggrect.RGB(1, 0.8, 0)},
		{"round", 20, ggrect.NewRGBA(1, 0.3, 0.3, 0.8)},
		{"bevel", 20, ggrect.NewRGBA(0.3, 0.6, 1, 0.8)},
	}
	for i, sh := range shapes {
		x := 60 + float64(i)*160
		s.Rects = append(s.Rects,
			scenefile.RectEntry{
				X: x, Y: 80, W: 120, H: 80,
				Color: sh.color.String(), Shape: sh.shape, Radius: sh.radius,
			},
			scenefile.RectEntry{
				X: x, Y: 220, W: 120, H: 80,
				Color: sh.color.String(), Shape: sh.shape, Radius: sh.radius,
				BorderColor: "#ffffff", BorderRadius: 3,
			},
		)
	}

	// Rotated squares
	for i := 0; i < 8; i++ {
		s.Rects = append(s.Rects, scenefile.RectEntry{
			X: -30, Y: -30, W: 60, H: 60,
			Color:     hue(float64(i) * 45).String(),
			Shape:     "bevel",
			Radius:    8,
			Translate: []float64{620, 190},
			Rotate:    float64(i) * 45,
			Scale:     []float64{1 + float64(i)*0.1},
		})
	}

	// Bar of thin rounded strips along the bottom.
	for i := 0; i < 12; i++ {
		s.Rects = append(s.Rects, scenefile.RectEntry{
			X: 60 + float64(i)*56, Y: 400, W: 40, H: 140,
			Color:  fmt.Sprintf("#%02x%02x%02x", 40+i*16, 120, 220-i*12),
			Shape:  "round",
			Radius: float64(i) * 2,
		})
	}
	return s
}

// hue returns a saturated color for h in degrees.
func hue(h float64) ggrect.RGBA {
	h = math.Mod(h, 360) / 60
	x := float32(1 - math.Abs(math.Mod(h, 2)-1))
	switch int(h) {
	case 0:
		return ggrect.RGB(1, x, 0)
	case 1:
		return ggrect.RGB(x, 1, 0)
	case 2:
		return ggrect.RGB(0, 1, x)
	case 3:
		return ggrect.RGB(0, x, 1)
	case 4:
		return ggrect.RGB(x, 0, 1)
	default:
		return ggrect.RGB(1, 0, x)
	}
}
