// Package curl computes the in-plane curl of a 2D out-of-plane scalar
// field — the step that turns a stream function ψ into a velocity field in
// a vortex-method solver.
//
// What:
//
//	For interior points (i, j) of an NY×NX field f, with prefactor p
//	(typically 1/(2·dx)):
//
//	  curl_x[i,j] = p·(f[i+1,j] − f[i−1,j])   //  ∂f/∂y
//	  curl_y[i,j] = p·(f[i,j−1] − f[i,j+1])   // −∂f/∂x
//
//	The outermost one-cell ring of both components is then set to exactly
//	zero: central differences are never evaluated there, and the discarded
//	ring is overwritten via (*field.Scalar2D).SetBoundary.
//
// Why:
//
//   - ψ → velocity each substep; the zeroed ring gives downstream kernels a
//     defined (if crude) boundary value instead of one-sided garbage.
//
// Complexity: O(NY·NX) time, O(1) extra memory; rows are swept in parallel
// when WithWorkers(n > 1) is set, with identical output.
//
// Options:
//
//   - WithWorkers(n): worker count for the row sweep (default 1, serial).
//
// Errors:
//
//   - field.ErrShapeMismatch: dst and src extents disagree; returned before
//     any cell is written.
//
// Extents below 3 leave no interior and are contract-undefined: the zero
// ring is still written, nothing else is.
package curl
