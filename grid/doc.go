// Package grid describes the uniform Cartesian grid all stencil kernels
// operate on, and pins down the axis-to-index convention the kernels rely
// on.
//
// What:
//
//   - Grid: immutable extents + spacing descriptor for 2D and 3D grids.
//   - XCoordinates / YCoordinates: precomputed physical-coordinate fields,
//     the reference buffers the boundary penalisation operator captures at
//     construction.
//
// Index convention (first-class, not implied by stencil offsets):
//
//   - 2D scalar fields are indexed [row i][column j] where axis 0 (rows)
//     is the y-axis and axis 1 (columns) is the x-axis. The physical
//     position of cell (i, j) is (x, y) = (j·DX, i·DX).
//   - 3D fields are indexed [plane k][row j][column i] with axes (z, y, x).
//   - Vector component c maps to spatial axis c: 0=x, 1=y, 2=z.
//
// Swapping this convention silently flips derivative signs, which is why it
// lives here and is exercised by tests rather than buried in kernel loops.
//
// Errors:
//
//   - ErrExtent: an extent below 1.
//   - ErrSpacing: a non-positive grid spacing.
package grid
