package ggrect

import "github.com/gogpu/ggrect/tessellate"

// Segments per corner used when no option overrides them.
const (
	// DefaultRoundSegments is the arc resolution of a Round fill.
	DefaultRoundSegments = 32

	// DefaultBevelSegments is the arc resolution of a Bevel fill and
	// border.
	DefaultBevelSegments = 2

	// DefaultBorderRoundSegments is the arc resolution of a Round border.
	// Thin rings show faceting sooner than filled corners.
	DefaultBorderRoundSegments = 128
)

// DrawOption configures a single Draw call.
//
// Example:
//
//	// Coarser arcs and smaller batches for a constrained backend
//	style.Draw(r, m, b,
//	    ggrect.WithRoundSegments(8),
//	    ggrect.WithBatchSize(600),
//	)
type DrawOption func(*drawOptions)

// drawOptions holds the tessellation settings of one draw call.
type drawOptions struct {
	roundSegments       int
	bevelSegments       int
	borderRoundSegments int
	borderBevelSegments int
	batchSize           int
}

// defaultDrawOptions returns the default draw options.
func defaultDrawOptions() drawOptions {
	return drawOptions{
		roundSegments:       DefaultRoundSegments,
		bevelSegments:       DefaultBevelSegments,
		borderRoundSegments: DefaultBorderRoundSegments,
		borderBevelSegments: DefaultBevelSegments,
		batchSize:           tessellate.DefaultBatchSize,
	}
}

func newDrawOptions(opts []DrawOption) drawOptions {
	o := defaultDrawOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// orDefault returns n if positive, def otherwise.
func orDefault(n, def int) int {
	if n > 0 {
		return n
	}
	return def
}

// WithRoundSegments sets the segments per corner of a Round fill.
// Non-positive values restore DefaultRoundSegments.
func WithRoundSegments(n int) DrawOption {
	return func(o *drawOptions) {
		o.roundSegments = orDefault(n, DefaultRoundSegments)
	}
}

// WithBevelSegments sets the segments per corner of a Bevel fill.
// Non-positive values restore DefaultBevelSegments.
func WithBevelSegments(n int) DrawOption {
	return func(o *drawOptions) {
		o.bevelSegments = orDefault(n, DefaultBevelSegments)
	}
}

// WithBorderRoundSegments sets the segments per corner of a Round border.
// Non-positive values restore DefaultBorderRoundSegments.
func WithBorderRoundSegments(n int) DrawOption {
	return func(o *drawOptions) {
		o.borderRoundSegments = orDefault(n, DefaultBorderRoundSegments)
	}
}

// WithBorderBevelSegments sets the segments per corner of a Bevel border.
// Non-positive values restore DefaultBevelSegments.
func WithBorderBevelSegments(n int) DrawOption {
	return func(o *drawOptions) {
		o.borderBevelSegments = orDefault(n, DefaultBevelSegments)
	}
}

// WithBatchSize limits the number of vertices passed to one
// Backend.TriList call. The limit is rounded down to whole triangles
// (whole quads for borders). Non-positive values restore
// tessellate.DefaultBatchSize.
//
// Square shapes are always submitted in one call.
func WithBatchSize(n int) DrawOption {
	return func(o *drawOptions) {
		o.batchSize = orDefault(n, tessellate.DefaultBatchSize)
	}
}
