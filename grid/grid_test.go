package grid_test

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/solenoidal/stencil/grid"
)

// TestNew_Errors verifies extent and spacing validation for both ranks.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		make func() error
		err  error
	}{
		{"ZeroNX2D", func() error { _, err := grid.New2D(0, 8, 0.1); return err }, grid.ErrExtent},
		{"NegativeNY2D", func() error { _, err := grid.New2D(8, -2, 0.1); return err }, grid.ErrExtent},
		{"ZeroDX2D", func() error { _, err := grid.New2D(8, 8, 0); return err }, grid.ErrSpacing},
		{"ZeroNZ3D", func() error { _, err := grid.New3D(8, 8, 0, 0.1); return err }, grid.ErrExtent},
		{"NegativeDX3D", func() error { _, err := grid.New3D(8, 8, 8, -1); return err }, grid.ErrSpacing},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.make(); !errors.Is(err, tc.err) {
				t.Errorf("error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestDim distinguishes 2D and 3D descriptors.
func TestDim(t *testing.T) {
	g2, err := grid.New2D(8, 8, 1)
	if err != nil || g2.Dim() != 2 {
		t.Fatalf("New2D: err=%v dim=%d; want dim 2", err, g2.Dim())
	}
	g3, err := grid.New3D(8, 8, 8, 1)
	if err != nil || g3.Dim() != 3 {
		t.Fatalf("New3D: err=%v dim=%d; want dim 3", err, g3.Dim())
	}
}

// TestCoordinates checks that the coordinate fields hold j·DX and i·DX and
// increase monotonically along their axes — the contract the penalisation
// operator relies on when it reads the first/last row or column.
func TestCoordinates(t *testing.T) {
	g, err := grid.New2D(5, 4, 0.25)
	if err != nil {
		t.Fatalf("New2D: %v", err)
	}
	xc := grid.XCoordinates[float64](g)
	yc := grid.YCoordinates[float64](g)

	for i := 0; i < g.NY; i++ {
		for j := 0; j < g.NX; j++ {
			if !scalar.EqualWithinAbs(xc.At(i, j), float64(j)*g.DX, 1e-14) {
				t.Errorf("x(%d,%d) = %v; want %v", i, j, xc.At(i, j), float64(j)*g.DX)
			}
			if !scalar.EqualWithinAbs(yc.At(i, j), float64(i)*g.DX, 1e-14) {
				t.Errorf("y(%d,%d) = %v; want %v", i, j, yc.At(i, j), float64(i)*g.DX)
			}
		}
	}
	for j := 1; j < g.NX; j++ {
		if xc.At(0, j) <= xc.At(0, j-1) {
			t.Fatalf("x coordinates not increasing at column %d", j)
		}
	}
	for i := 1; i < g.NY; i++ {
		if yc.At(i, 0) <= yc.At(i-1, 0) {
			t.Fatalf("y coordinates not increasing at row %d", i)
		}
	}
}

// TestCoordinates_Float32 instantiates the generic builders at float32.
func TestCoordinates_Float32(t *testing.T) {
	g, _ := grid.New2D(3, 3, 0.5)
	xc := grid.XCoordinates[float32](g)
	if xc.At(2, 2) != 1.0 {
		t.Errorf("x(2,2) = %v; want 1.0", xc.At(2, 2))
	}
}
