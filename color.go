package ggrect

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
)

// ErrInvalidHex is returned by ParseHex for strings that are not a
// 3, 4, 6 or 8 digit hexadecimal color.
var ErrInvalidHex = errors.New("ggrect: invalid hex color")

// RGBA is a color with red, green, blue and alpha components, not
// premultiplied. Components are nominally in [0, 1] but are not
// validated; out of range values are passed to the backend as given.
type RGBA struct {
	R, G, B, A float32
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float32) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// NewRGBA creates a color from RGBA components.
func NewRGBA(r, g, b, a float32) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RGBA{
		R: float32(n.R) / 0xffff,
		G: float32(n.G) / 0xffff,
		B: float32(n.B) / 0xffff,
		A: float32(n.A) / 0xffff,
	}
}

// Array returns the components as a [4]float32 in R, G, B, A order.
func (c RGBA) Array() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

// Transparent reports whether the alpha component is exactly zero.
// Nothing is drawn for a transparent layer.
func (c RGBA) Transparent() bool {
	return c.A == 0
}

// NRGBA converts c to an 8-bit color.NRGBA, clamping each component.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

// RGBA implements color.Color.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	a = uint32(to16(c.A))
	r = uint32(to16(c.R)) * a / 0xffff
	g = uint32(to16(c.G)) * a / 0xffff
	b = uint32(to16(c.B)) * a / 0xffff
	return r, g, b, a
}

// Premultiply returns c with its color channels multiplied by alpha.
func (c RGBA) Premultiply() RGBA {
	return RGBA{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// String formats c as #rrggbbaa.
func (c RGBA) String() string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// clamp01 restricts x to [0, 1]. NaN maps to 0.
func clamp01(x float32) float32 {
	if math32.IsNaN(x) {
		return 0
	}
	return math32.Max(0, math32.Min(1, x))
}

func to8(x float32) uint8 {
	return uint8(math32.Round(clamp01(x) * 0xff))
}

func to16(x float32) uint16 {
	return uint16(math32.Round(clamp01(x) * 0xffff))
}

// ParseHex parses a color from "RGB", "RGBA", "RRGGBB" or "RRGGBBAA"
// hexadecimal notation, with an optional leading '#'.
func ParseHex(s string) (RGBA, error) {
	h := s
	if h != "" && h[0] == '#' {
		h = h[1:]
	}

	var digits [8]uint8
	if len(h) > len(digits) {
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	for i := 0; i < len(h); i++ {
		d, ok := hexDigit(h[i])
		if !ok {
			return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
		digits[i] = d
	}

	var r, g, b, a uint8
	a = 0xff
	switch len(h) {
	case 3:
		r, g, b = digits[0]*17, digits[1]*17, digits[2]*17
	case 4:
		r, g, b, a = digits[0]*17, digits[1]*17, digits[2]*17, digits[3]*17
	case 6:
		r, g, b = digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5]
	case 8:
		r, g, b = digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5]
		a = digits[6]<<4 | digits[7]
	default:
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	return RGBA{
		R: float32(r) / 0xff,
		G: float32(g) / 0xff,
		B: float32(b) / 0xff,
		A: float32(a) / 0xff,
	}, nil
}

// Hex is ParseHex for literals known to be valid. Invalid input yields
// opaque black.
func Hex(s string) RGBA {
	c, err := ParseHex(s)
	if err != nil {
		return Black
	}
	return c
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Common colors
var (
	Black            = RGB(0, 0, 0)
	White            = RGB(1, 1, 1)
	Red              = RGB(1, 0, 0)
	Green            = RGB(0, 1, 0)
	Blue             = RGB(0, 0, 1)
	TransparentBlack = NewRGBA(0, 0, 0, 0)
)
