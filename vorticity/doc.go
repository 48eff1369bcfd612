// Package vorticity accumulates discrete-curl contributions into a 3D
// vorticity field, the in-place update a vortex-method time step applies
// after computing velocity forcing or penalised velocity.
//
// What:
//
//	AddForcingCurl performs, at every interior point,
//
//	  ω += prefactor · curl(f)
//
//	with step-2 central differences; each vorticity component reads only the
//	two other components of f. AddPenalisedCurl performs
//
//	  ω += prefactor · curl(p − v)
//
//	term by term, without materialising the difference field p − v: the two
//	calls are numerically equivalent whenever f = p − v, and the second
//	saves a full field-sized temporary plus an extra sweep.
//
// Layout is [plane k (z)][row j (y)][column i (x)]; vector component c maps
// to spatial axis c (0=x, 1=y, 2=z). Writing the x-component stencil in that
// layout:
//
//	ω_x[k,j,i] += p·( f_z[k,j+1,i] − f_z[k,j−1,i] − f_y[k+1,j,i] + f_y[k−1,j,i] )
//
// and cyclically for ω_y, ω_z.
//
// Unlike the 2D curl operator, nothing here zeroes the outer ring: the
// accumulation simply skips non-interior points and leaves whatever the
// boundary already holds. Boundary treatment belongs to a separate step in
// the surrounding solver.
//
// Complexity: O(NZ·NY·NX) time, O(1) extra memory; z-planes are swept in
// parallel under WithWorkers(n > 1) with identical output.
//
// Errors:
//
//   - field.ErrShapeMismatch: any two participating fields disagree in
//     extents; returned before any cell is written.
//
// The vorticity output must not alias any input field; in-place
// accumulation into ω itself is the one sanctioned mutation. Aliasing
// beyond that is undefined and not checked.
package vorticity
