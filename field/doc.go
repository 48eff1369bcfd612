// Package field provides the dense, caller-owned buffers every stencil
// kernel reads and mutates: 2D/3D scalar fields and their component-major
// vector counterparts, plus the elementwise boundary setter shared by the
// curl kernels.
//
// What:
//
//   - Scalar2D / Scalar3D wrap a flat, row-major slice with explicit extents.
//   - Vector2D / Vector3D store components contiguously (component-major);
//     Component(c) returns a zero-copy scalar view of component c.
//   - Wrap* constructors adopt caller-owned storage after a length check;
//     New* constructors allocate zeroed storage.
//   - (*Scalar2D).SetBoundary overwrites every cell within a given width of
//     any of the four edges with a fixed value.
//
// Why:
//
//   - Stencil kernels must compose in place across a time step; fields are
//     therefore plain views over caller memory, never owning copies.
//   - Precision is a compile-time property: all types are generic over
//     Real (float32 | float64), so each kernel instantiation is specialised
//     to its element type.
//
// Index convention (load-bearing, see also package grid):
//
//   - 2D: Data[i*NX+j] is the cell at row i (y-axis) and column j (x-axis).
//   - 3D: Data[(k*NY+j)*NX+i] is the cell at plane k (z), row j (y),
//     column i (x).
//   - Vector component c maps to spatial axis c: 0=x, 1=y, 2=z.
//
// Errors:
//
//   - ErrExtent: a constructor received a non-positive extent.
//   - ErrShapeMismatch: a wrapped slice or companion field has the wrong
//     length or extents.
//   - ErrWidth: SetBoundary received a width below 1.
//
// Overlapping boundary bands (width greater than half an extent) are a
// documented precondition violation: cells are simply overwritten more than
// once with the same value.
package field
