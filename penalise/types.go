package penalise

import (
	"errors"

	"github.com/solenoidal/stencil/field"
)

var (
	// ErrWidth indicates a penalisation band width below 1.
	ErrWidth = errors.New("penalise: width must be a positive integer")
	// ErrSpacing indicates a non-positive grid spacing.
	ErrSpacing = errors.New("penalise: grid spacing must be positive")
	// ErrCoordinateShape indicates missing or mismatched coordinate fields.
	ErrCoordinateShape = errors.New("penalise: coordinate fields must be present and match in shape")
)

// Option configures an Operator at construction.
type Option func(*options)

type options struct {
	workers int
}

// WithWorkers sets the number of workers sweeping band rows/columns in
// parallel. Values below 1 keep the serial default.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// Operator applies sine-taper boundary penalisation to 2D scalar fields.
// Everything static — band width, taper frequency ω, the coordinate fields
// and their reference endpoints — is captured at construction; Apply takes
// only the field to penalise.
type Operator[T field.Real] struct {
	width   int
	omega   float64
	xc, yc  *field.Scalar2D[T]
	xStart  float64
	xEnd    float64
	yStart  float64
	yEnd    float64
	workers int
}
