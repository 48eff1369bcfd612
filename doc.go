// Package stencil is a toolkit of finite-difference stencil operators for
// vorticity–velocity (vortex-method) incompressible flow solvers on uniform
// Cartesian grids.
//
// 🌀 What is stencil?
//
//	A small, allocation-free library of grid kernels that a time-stepping
//	driver composes each step:
//		• grid/      — grid descriptor, axis conventions, coordinate fields
//		• field/     — dense scalar & vector field buffers + boundary setter
//		• curl/      — 2D out-of-plane curl (stream function → velocity)
//		• vorticity/ — 3D curl accumulators (forcing & penalised velocity)
//		• penalise/  — sine-taper boundary penalisation of 2D fields
//		• parallel/  — chunked loop scheduler behind every WithWorkers option
//
// ✨ Why choose stencil?
//
//   - Caller-owned buffers — kernels mutate in place, never allocate fields
//   - Precision by generics — every kernel works on float32 and float64
//   - Explicit conventions — [y][x] and [z][y][x] layouts are documented and
//     tested, not implied by stencil offsets
//   - Deterministic — pure functions of their inputs, serial or parallel
//
// All operators are stateless apart from constants captured at construction
// (taper frequency, coordinate endpoints, worker count). The outer time
// integrator, the Poisson solve producing velocity, and all I/O live
// upstream; this library only ever sees correctly shaped numeric buffers.
//
// Dive into the per-package docs for formulas, complexity and error
// contracts.
package stencil
