package penalise

import (
	"fmt"
	"math"

	"github.com/solenoidal/stencil/field"
	"github.com/solenoidal/stencil/parallel"
)

// New constructs a penalisation Operator with band width (in grid points),
// spacing dx, and the precomputed physical coordinate fields xCoord and
// yCoord (x- and y-coordinate at every grid point, monotonically increasing
// along their axes). The taper frequency ω = (π/2)/(width·dx) and the axis
// endpoints are fixed here and reused by every Apply.
//
// Returns ErrWidth, ErrSpacing or ErrCoordinateShape on invalid static
// parameters; no Operator becomes callable in that case.
func New[T field.Real](width int, dx float64, xCoord, yCoord *field.Scalar2D[T], opts ...Option) (*Operator[T], error) {
	if width < 1 {
		return nil, ErrWidth
	}
	if dx <= 0 {
		return nil, ErrSpacing
	}
	if xCoord == nil || yCoord == nil || !xCoord.SameShape(yCoord) {
		return nil, ErrCoordinateShape
	}

	o := options{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}

	return &Operator[T]{
		width:   width,
		omega:   (math.Pi / 2) / (float64(width) * dx),
		xc:      xCoord,
		yc:      yCoord,
		xStart:  float64(xCoord.At(0, 0)),
		xEnd:    float64(xCoord.At(0, xCoord.NX-1)),
		yStart:  float64(yCoord.At(0, 0)),
		yEnd:    float64(yCoord.At(yCoord.NY-1, 0)),
		workers: o.workers,
	}, nil
}

// Width reports the band width in grid points.
func (op *Operator[T]) Width() int { return op.width }

// Apply penalises f in place: four sequential stages (x-front, x-back,
// y-front, y-back), each flat-extrapolating its band from the innermost
// cell and multiplying by the sine taper. Cells more than width away from
// every edge are never touched.
//
// Returns field.ErrShapeMismatch, before any write, if f does not match the
// coordinate fields captured at construction.
func (op *Operator[T]) Apply(f *field.Scalar2D[T]) error {
	if f == nil || !f.SameShape(op.xc) {
		return fmt.Errorf("penalise: field vs coordinates: %w", field.ErrShapeMismatch)
	}

	ny, nx, w := f.NY, f.NX, op.width

	// Along x: each row's band collapses to its innermost value, tapered by
	// distance from the axis minimum (front) or maximum (back).
	parallel.For(0, ny, op.workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			inner := f.At(i, w-1)
			for j := 0; j < w; j++ {
				phase := op.omega * (float64(op.xc.At(i, j)) - op.xStart)
				f.Set(i, j, inner*T(math.Sin(phase)))
			}
			inner = f.At(i, nx-w)
			for j := nx - w; j < nx; j++ {
				phase := op.omega * (op.xEnd - float64(op.xc.At(i, j)))
				f.Set(i, j, inner*T(math.Sin(phase)))
			}
		}
	})

	// Then along y, over the rows already penalised in x; corners pick up
	// the product of both tapers.
	parallel.For(0, nx, op.workers, func(lo, hi int) {
		for j := lo; j < hi; j++ {
			inner := f.At(w-1, j)
			for i := 0; i < w; i++ {
				phase := op.omega * (float64(op.yc.At(i, j)) - op.yStart)
				f.Set(i, j, inner*T(math.Sin(phase)))
			}
			inner = f.At(ny-w, j)
			for i := ny - w; i < ny; i++ {
				phase := op.omega * (op.yEnd - float64(op.yc.At(i, j)))
				f.Set(i, j, inner*T(math.Sin(phase)))
			}
		}
	})

	return nil
}
