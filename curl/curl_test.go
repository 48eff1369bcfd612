package curl_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/solenoidal/stencil/curl"
	"github.com/solenoidal/stencil/field"
)

const tol = 1e-12

func randomScalar2D(ny, nx int, rng *rand.Rand) *field.Scalar2D[float64] {
	s, _ := field.NewScalar2D[float64](ny, nx)
	for n := range s.Data {
		s.Data[n] = rng.Float64()*2 - 1
	}

	return s
}

// TestApply_ConstantField verifies the degenerate round trip: the curl of a
// constant stream function is exactly zero everywhere, interior stencil and
// zero-boundary overwrite agreeing on every cell.
func TestApply_ConstantField(t *testing.T) {
	src, _ := field.NewScalar2D[float64](8, 8)
	src.Fill(5.0)
	dst, _ := field.NewVector2D[float64](8, 8)
	dst.Component(0).Fill(3) // stale values must be overwritten
	dst.Component(1).Fill(-3)

	op := curl.New[float64]()
	require.NoError(t, op.Apply(dst, src, 0.5))

	for n, v := range dst.Data {
		if v != 0 {
			t.Fatalf("curl of constant field non-zero at offset %d: %v", n, v)
		}
	}
}

// TestApply_ZeroBoundaryRing checks that both components are exactly zero
// within one cell of every edge, whatever the input.
func TestApply_ZeroBoundaryRing(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	src := randomScalar2D(9, 12, rng)
	dst, _ := field.NewVector2D[float64](9, 12)

	op := curl.New[float64]()
	require.NoError(t, op.Apply(dst, src, 1.0))

	for c := 0; c < 2; c++ {
		comp := dst.Component(c)
		for i := 0; i < comp.NY; i++ {
			for j := 0; j < comp.NX; j++ {
				if i == 0 || i == comp.NY-1 || j == 0 || j == comp.NX-1 {
					require.Zero(t, comp.At(i, j), "component %d ring cell (%d,%d)", c, i, j)
				}
			}
		}
	}
}

// TestApply_AxisConvention pins the axis-to-index mapping: for the stream
// function ψ(x,y) = y with prefactor 1/(2·dx), the x-velocity ∂ψ/∂y is 1 at
// every interior point and the y-velocity −∂ψ/∂x is 0.
func TestApply_AxisConvention(t *testing.T) {
	const dx = 0.5
	src, _ := field.NewScalar2D[float64](7, 6)
	for i := 0; i < src.NY; i++ {
		for j := 0; j < src.NX; j++ {
			src.Set(i, j, float64(i)*dx) // ψ = y
		}
	}
	dst, _ := field.NewVector2D[float64](7, 6)

	op := curl.New[float64]()
	require.NoError(t, op.Apply(dst, src, 1/(2*dx)))

	cx, cy := dst.Component(0), dst.Component(1)
	for i := 1; i < src.NY-1; i++ {
		for j := 1; j < src.NX-1; j++ {
			require.True(t, scalar.EqualWithinAbs(cx.At(i, j), 1, tol), "curl_x(%d,%d) = %v", i, j, cx.At(i, j))
			require.True(t, scalar.EqualWithinAbs(cy.At(i, j), 0, tol), "curl_y(%d,%d) = %v", i, j, cy.At(i, j))
		}
	}
}

// TestApply_Linearity verifies curl(a·f1 + b·f2) == a·curl(f1) + b·curl(f2)
// at every cell (the zero ring satisfies it trivially).
func TestApply_Linearity(t *testing.T) {
	const a, b = 2.5, -1.25
	rng := rand.New(rand.NewSource(11))
	f1 := randomScalar2D(10, 10, rng)
	f2 := randomScalar2D(10, 10, rng)

	combined, _ := field.NewScalar2D[float64](10, 10)
	for n := range combined.Data {
		combined.Data[n] = a*f1.Data[n] + b*f2.Data[n]
	}

	op := curl.New[float64]()
	c1, _ := field.NewVector2D[float64](10, 10)
	c2, _ := field.NewVector2D[float64](10, 10)
	cc, _ := field.NewVector2D[float64](10, 10)
	require.NoError(t, op.Apply(c1, f1, 0.5))
	require.NoError(t, op.Apply(c2, f2, 0.5))
	require.NoError(t, op.Apply(cc, combined, 0.5))

	for n := range cc.Data {
		want := a*c1.Data[n] + b*c2.Data[n]
		require.True(t, scalar.EqualWithinAbs(cc.Data[n], want, tol),
			"offset %d: got %v want %v", n, cc.Data[n], want)
	}
}

// TestApply_ShapeMismatch must fail fast without touching dst.
func TestApply_ShapeMismatch(t *testing.T) {
	src, _ := field.NewScalar2D[float64](8, 8)
	dst, _ := field.NewVector2D[float64](8, 9)
	dst.Component(0).Fill(4)

	op := curl.New[float64]()
	err := op.Apply(dst, src, 1.0)
	require.ErrorIs(t, err, field.ErrShapeMismatch)
	require.Equal(t, 4.0, dst.Component(0).At(3, 3), "dst mutated by rejected call")

	require.ErrorIs(t, op.Apply(nil, src, 1.0), field.ErrShapeMismatch)
	require.ErrorIs(t, op.Apply(dst, nil, 1.0), field.ErrShapeMismatch)
}

// TestApply_ParallelMatchesSerial: worker count must not change the output.
func TestApply_ParallelMatchesSerial(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	src := randomScalar2D(33, 17, rng)

	serial, _ := field.NewVector2D[float64](33, 17)
	require.NoError(t, curl.New[float64]().Apply(serial, src, 2.0))

	for _, workers := range []int{2, 4, 9} {
		par, _ := field.NewVector2D[float64](33, 17)
		require.NoError(t, curl.New[float64](curl.WithWorkers(workers)).Apply(par, src, 2.0))
		require.Equal(t, serial.Data, par.Data, "workers=%d", workers)
	}
}

// TestApply_Float32 instantiates the kernel at single precision.
func TestApply_Float32(t *testing.T) {
	src, _ := field.NewScalar2D[float32](6, 6)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			src.Set(i, j, float32(i))
		}
	}
	dst, _ := field.NewVector2D[float32](6, 6)
	require.NoError(t, curl.New[float32]().Apply(dst, src, 0.5))
	require.Equal(t, float32(1), dst.Component(0).At(2, 2))
	require.Equal(t, float32(0), dst.Component(1).At(2, 2))
}
