package vorticity

import (
	"fmt"

	"github.com/solenoidal/stencil/field"
	"github.com/solenoidal/stencil/parallel"
)

// AddForcingCurl accumulates w += prefactor·curl(f) at every interior point.
// f is read-only; w is the in-place accumulation target and must not alias
// f. The outer ring of w is left untouched (see package doc).
//
// The shape check precedes all writes, so a failed call leaves w untouched.
func (a *Accumulator[T]) AddForcingCurl(w, f *field.Vector3D[T], prefactor T) error {
	if w == nil || f == nil || !w.SameShape(f) {
		return fmt.Errorf("vorticity: w vs f: %w", field.ErrShapeMismatch)
	}

	nz, ny, nx := w.NZ, w.NY, w.NX
	sy, sz := nx, nx*ny // row and plane strides

	wx, wy, wz := w.Component(0).Data, w.Component(1).Data, w.Component(2).Data
	fx, fy, fz := f.Component(0).Data, f.Component(1).Data, f.Component(2).Data

	parallel.For(1, nz-1, a.workers, func(lo, hi int) {
		for k := lo; k < hi; k++ {
			for j := 1; j < ny-1; j++ {
				base := (k*ny + j) * nx
				for i := 1; i < nx-1; i++ {
					n := base + i
					// ω_x += p·(∂f_z/∂y − ∂f_y/∂z), step-2 differences
					wx[n] += prefactor * (fz[n+sy] - fz[n-sy] - fy[n+sz] + fy[n-sz])
					// ω_y += p·(∂f_x/∂z − ∂f_z/∂x)
					wy[n] += prefactor * (fx[n+sz] - fx[n-sz] - fz[n+1] + fz[n-1])
					// ω_z += p·(∂f_y/∂x − ∂f_x/∂y)
					wz[n] += prefactor * (fy[n+1] - fy[n-1] - fx[n+sy] + fx[n-sy])
				}
			}
		}
	})

	return nil
}

// AddPenalisedCurl accumulates w += prefactor·curl(pv − v) at every interior
// point, differencing pv and v pointwise inside the stencil instead of
// forming an intermediate pv − v field. pv and v are read-only; w is the
// in-place target and must alias neither.
//
// Given identical inputs related by f = pv − v, AddPenalisedCurl and
// AddForcingCurl produce the same accumulation up to floating-point
// reassociation.
func (a *Accumulator[T]) AddPenalisedCurl(w, pv, v *field.Vector3D[T], prefactor T) error {
	if w == nil || pv == nil || v == nil || !w.SameShape(pv) || !w.SameShape(v) {
		return fmt.Errorf("vorticity: w vs pv/v: %w", field.ErrShapeMismatch)
	}

	nz, ny, nx := w.NZ, w.NY, w.NX
	sy, sz := nx, nx*ny

	wx, wy, wz := w.Component(0).Data, w.Component(1).Data, w.Component(2).Data
	px, py, pz := pv.Component(0).Data, pv.Component(1).Data, pv.Component(2).Data
	vx, vy, vz := v.Component(0).Data, v.Component(1).Data, v.Component(2).Data

	parallel.For(1, nz-1, a.workers, func(lo, hi int) {
		for k := lo; k < hi; k++ {
			for j := 1; j < ny-1; j++ {
				base := (k*ny + j) * nx
				for i := 1; i < nx-1; i++ {
					n := base + i
					wx[n] += prefactor * (pz[n+sy] - vz[n+sy] -
						pz[n-sy] + vz[n-sy] -
						py[n+sz] + vy[n+sz] +
						py[n-sz] - vy[n-sz])
					wy[n] += prefactor * (px[n+sz] - vx[n+sz] -
						px[n-sz] + vx[n-sz] -
						pz[n+1] + vz[n+1] +
						pz[n-1] - vz[n-1])
					wz[n] += prefactor * (py[n+1] - vy[n+1] -
						py[n-1] + vy[n-1] -
						px[n+sy] + vx[n+sy] +
						px[n-sy] - vx[n-sy])
				}
			}
		}
	})

	return nil
}
