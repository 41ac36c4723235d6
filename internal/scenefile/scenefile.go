// Package scenefile loads rectangle scenes from TOML or YAML files.
//
// A scene is a canvas size, a background color and a list of styled
// rectangles, each with an optional transform:
//
//	width = 320
//	height = 200
//	background = "#202020"
//
//	[[rects]]
//	x = 20
//	y = 20
//	w = 120
//	h = 80
//	color = "#3366ccff"
//	shape = "round"
//	radius = 12
//	border_color = "#ffffff"
//	border_radius = 2
//	rotate = 15
package scenefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggrect"
)

var (
	// ErrUnknownFormat is returned for files whose extension is not
	// .toml, .yaml or .yml.
	ErrUnknownFormat = errors.New("scenefile: unknown format")

	// ErrUnknownShape is returned for a shape name other than square,
	// round or bevel.
	ErrUnknownShape = errors.New("scenefile: unknown shape")

	// ErrInvalidScene is returned when a decoded scene fails validation.
	ErrInvalidScene = errors.New("scenefile: invalid scene")
)

// Format is a scene file encoding.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Default canvas size for scenes that leave it out.
const (
	DefaultWidth  = 256
	DefaultHeight = 256
)

// Scene is a decoded scene file.
type Scene struct {
	Width      int         `toml:"width" yaml:"width"`
	Height     int         `toml:"height" yaml:"height"`
	Background string      `toml:"background" yaml:"background"`
	Rects      []RectEntry `toml:"rects" yaml:"rects"`
}

// RectEntry is one rectangle entry. Colors are hex strings accepted by
// ggrect.ParseHex. Rotate is in degrees; transforms apply scale, then
// shear, then rotate, then translate.
type RectEntry struct {
	X      float64 `toml:"x" yaml:"x"`
	Y      float64 `toml:"y" yaml:"y"`
	W      float64 `toml:"w" yaml:"w"`
	H      float64 `toml:"h" yaml:"h"`
	Color  string  `toml:"color" yaml:"color"`
	Shape  string  `toml:"shape" yaml:"shape"`
	Radius float64 `toml:"radius" yaml:"radius"`

	BorderColor  string  `toml:"border_color" yaml:"border_color"`
	BorderRadius float64 `toml:"border_radius" yaml:"border_radius"`

	Translate []float64 `toml:"translate" yaml:"translate"`
	Rotate    float64   `toml:"rotate" yaml:"rotate"`
	Shear     []float64 `toml:"shear" yaml:"shear"`
	Scale     []float64 `toml:"scale" yaml:"scale"`
}

// Item is a RectEntry resolved into drawable values.
type Item struct {
	Style  ggrect.Rectangle
	Rect   ggrect.Rect
	Matrix ggrect.Matrix
}

// Load reads and decodes a scene file, choosing the format by extension.
func Load(path string) (*Scene, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scene from memory.
func Parse(data []byte, format Format) (*Scene, error) {
	return Decode(bytes.NewReader(data), format)
}

// Decode decodes a scene from r. Unknown keys are rejected. A zero
// width or height is replaced by the default.
func Decode(r io.Reader, format Format) (*Scene, error) {
	var s Scene
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("scenefile: decoding toml: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("scenefile: decoding yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}

	if s.Width == 0 {
		s.Width = DefaultWidth
	}
	if s.Height == 0 {
		s.Height = DefaultHeight
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the canvas size and that every rectangle resolves.
func (s *Scene) Validate() error {
	if s.Width < 0 || s.Height < 0 {
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalidScene, s.Width, s.Height)
	}
	if _, err := s.BackgroundColor(); err != nil {
		return fmt.Errorf("%w: background: %w", ErrInvalidScene, err)
	}
	_, err := s.Items()
	return err
}

// BackgroundColor parses Background. An empty background is transparent.
func (s *Scene) BackgroundColor() (ggrect.RGBA, error) {
	if s.Background == "" {
		return ggrect.TransparentBlack, nil
	}
	return ggrect.ParseHex(s.Background)
}

// Items resolves every rectangle in file order.
func (s *Scene) Items() ([]Item, error) {
	items := make([]Item, 0, len(s.Rects))
	for i, rs := range s.Rects {
		it, err := rs.Item()
		if err != nil {
			return nil, fmt.Errorf("%w: rects[%d]: %w", ErrInvalidScene, i, err)
		}
		items = append(items, it)
	}
	return items, nil
}

// Draw draws every rectangle onto b in file order.
func (s *Scene) Draw(b ggrect.Backend, opts ...ggrect.DrawOption) error {
	items, err := s.Items()
	if err != nil {
		return err
	}
	for _, it := range items {
		it.Style.Draw(it.Rect, it.Matrix, b, opts...)
	}
	return nil
}

// Item resolves the entry into a style, bounds and transform.
func (rs RectEntry) Item() (Item, error) {
	style, err := rs.Style()
	if err != nil {
		return Item{}, err
	}
	m, err := rs.Matrix()
	if err != nil {
		return Item{}, err
	}
	return Item{
		Style:  style,
		Rect:   ggrect.Rect{X: rs.X, Y: rs.Y, W: rs.W, H: rs.H},
		Matrix: m,
	}, nil
}

// Style builds the ggrect.Rectangle for the entry. An empty color is
// opaque black; a border is added only when BorderColor is set.
func (rs RectEntry) Style() (ggrect.Rectangle, error) {
	color := ggrect.Black
	if rs.Color != "" {
		c, err := ggrect.ParseHex(rs.Color)
		if err != nil {
			return ggrect.Rectangle{}, fmt.Errorf("color: %w", err)
		}
		color = c
	}
	shape, err := ParseShape(rs.Shape, rs.Radius)
	if err != nil {
		return ggrect.Rectangle{}, err
	}
	style := ggrect.New(color).WithShape(shape)
	if rs.BorderColor != "" {
		bc, err := ggrect.ParseHex(rs.BorderColor)
		if err != nil {
			return ggrect.Rectangle{}, fmt.Errorf("border_color: %w", err)
		}
		style = style.WithBorder(ggrect.Border{Color: bc, Radius: rs.BorderRadius})
	}
	return style, nil
}

// Matrix builds the entry's transform. Scale is applied first, then
// shear, rotation and translation. A transform that flattens the
// rectangle to a line is rejected.
func (rs RectEntry) Matrix() (ggrect.Matrix, error) {
	tx, ty, err := pair("translate", rs.Translate, 0)
	if err != nil {
		return ggrect.Matrix{}, err
	}
	sx, sy, err := pair("scale", rs.Scale, 1)
	if err != nil {
		return ggrect.Matrix{}, err
	}
	hx, hy, err := pair("shear", rs.Shear, 0)
	if err != nil {
		return ggrect.Matrix{}, err
	}
	if len(rs.Shear) == 1 {
		// A single shear factor slants along x only.
		hy = 0
	}
	m := ggrect.Identity()
	if rs.Translate != nil {
		m = m.Multiply(ggrect.Translate(tx, ty))
	}
	if rs.Rotate != 0 {
		m = m.Multiply(ggrect.Rotate(rs.Rotate * math.Pi / 180))
	}
	if rs.Shear != nil {
		m = m.Multiply(ggrect.Shear(hx, hy))
	}
	if rs.Scale != nil {
		m = m.Multiply(ggrect.Scale(sx, sy))
	}
	if m.Determinant() == 0 {
		return ggrect.Matrix{}, fmt.Errorf("singular transform %+v", m)
	}
	return m, nil
}

// pair reads a one- or two-element list. A single value is used for
// both axes; an absent list yields def.
func pair(name string, v []float64, def float64) (float64, float64, error) {
	switch len(v) {
	case 0:
		return def, def, nil
	case 1:
		return v[0], v[0], nil
	case 2:
		return v[0], v[1], nil
	default:
		return 0, 0, fmt.Errorf("%s: want 1 or 2 values, got %d", name, len(v))
	}
}

// ParseShape maps a shape name to a ggrect.Shape. The empty name is
// square.
func ParseShape(name string, radius float64) (ggrect.Shape, error) {
	switch strings.ToLower(name) {
	case "", "square":
		return ggrect.Square{}, nil
	case "round":
		return ggrect.Round{Radius: radius}, nil
	case "bevel":
		return ggrect.Bevel{Radius: radius}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
}
