package curl

import "github.com/solenoidal/stencil/field"

// Option configures an Operator at construction.
type Option func(*options)

type options struct {
	workers int
}

// WithWorkers sets the number of workers sweeping rows in parallel.
// Values below 1 keep the serial default.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// Operator is the 2D out-of-plane curl kernel. It is stateless apart from
// the construction-time worker count and safe for sequential reuse across
// time steps.
type Operator[T field.Real] struct {
	workers int
}

// New constructs a curl Operator for element type T.
func New[T field.Real](opts ...Option) *Operator[T] {
	o := options{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}

	return &Operator[T]{workers: o.workers}
}
