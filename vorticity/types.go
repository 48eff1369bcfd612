package vorticity

import "github.com/solenoidal/stencil/field"

// Option configures an Accumulator at construction.
type Option func(*options)

type options struct {
	workers int
}

// WithWorkers sets the number of workers sweeping z-planes in parallel.
// Values below 1 keep the serial default.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// Accumulator holds the construction-time configuration of the 3D curl
// accumulation kernels. It carries no per-call state and may be reused
// across time steps.
type Accumulator[T field.Real] struct {
	workers int
}

// New constructs an Accumulator for element type T.
func New[T field.Real](opts ...Option) *Accumulator[T] {
	o := options{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}

	return &Accumulator[T]{workers: o.workers}
}
