package curl

import (
	"fmt"

	"github.com/solenoidal/stencil/field"
	"github.com/solenoidal/stencil/parallel"
)

// Apply computes dst = prefactor·curl(src) at all interior points and zeroes
// the outermost one-cell ring of both components. dst component 0 receives
// ∂src/∂y, component 1 receives −∂src/∂x (see package doc for the exact
// stencil). dst must not alias src.
//
// The shape check precedes all writes, so a failed call leaves dst
// untouched.
func (op *Operator[T]) Apply(dst *field.Vector2D[T], src *field.Scalar2D[T], prefactor T) error {
	if dst == nil || src == nil || dst.NY != src.NY || dst.NX != src.NX {
		return fmt.Errorf("curl: dst vs src: %w", field.ErrShapeMismatch)
	}

	ny, nx := src.NY, src.NX
	cx := dst.Component(0)
	cy := dst.Component(1)

	parallel.For(1, ny-1, op.workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			base := i * nx
			up := base + nx   // row i+1
			down := base - nx // row i-1
			for j := 1; j < nx-1; j++ {
				cx.Data[base+j] = prefactor * (src.Data[up+j] - src.Data[down+j])
				cy.Data[base+j] = prefactor * (src.Data[base+j-1] - src.Data[base+j+1])
			}
		}
	})

	// Stencil values on the outer ring are discarded, not corrected.
	_ = cx.SetBoundary(1, 0)
	_ = cy.SetBoundary(1, 0)

	return nil
}
