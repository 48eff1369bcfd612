package grid

import (
	"gonum.org/v1/gonum/floats"

	"github.com/solenoidal/stencil/field"
)

// XCoordinates returns a full NY×NX field holding the physical x-coordinate
// j·DX at every cell. The result is monotonically increasing along each row,
// as the penalisation operator requires of its reference buffers.
func XCoordinates[T field.Real](g Grid) *field.Scalar2D[T] {
	row := axisCoordinates(g.NX, g.DX)
	out, _ := field.NewScalar2D[T](g.NY, g.NX)
	for i := 0; i < g.NY; i++ {
		base := i * g.NX
		for j, x := range row {
			out.Data[base+j] = T(x)
		}
	}

	return out
}

// YCoordinates returns a full NY×NX field holding the physical y-coordinate
// i·DX at every cell, monotonically increasing down each column.
func YCoordinates[T field.Real](g Grid) *field.Scalar2D[T] {
	col := axisCoordinates(g.NY, g.DX)
	out, _ := field.NewScalar2D[T](g.NY, g.NX)
	for i, y := range col {
		base := i * g.NX
		for j := 0; j < g.NX; j++ {
			out.Data[base+j] = T(y)
		}
	}

	return out
}

// axisCoordinates builds the 1D node positions 0, dx, ..., (n-1)·dx.
func axisCoordinates(n int, dx float64) []float64 {
	c := make([]float64, n)
	if n == 1 {
		return c
	}
	floats.Span(c, 0, float64(n-1)*dx)

	return c
}
