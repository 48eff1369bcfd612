// Package penalise damps a 2D scalar field inside a band of configurable
// width at each of the four domain edges, emulating far-field conditions by
// tapering the field smoothly to zero at the boundary.
//
// What:
//
//	Each Apply runs four stages in a fixed order — x-front, x-back,
//	y-front, y-back. A stage first flat-extrapolates the band from its
//	innermost cell (a constant boundary condition, so the taper multiplies
//	a uniform value rather than the original edge data), then multiplies
//	every band cell by
//
//	  sin(ω · d),   ω = (π/2)/(width·dx),
//
//	where d is the physical distance from the band's outer edge, read from
//	the coordinate fields captured at construction. The factor is 0 at the
//	outermost cell, rises monotonically inward and meets the untouched
//	interior continuously.
//
//	Corner cells sit in both an x-band and a y-band and receive both tapers
//	in sequence, so their attenuation is the product of the two factors.
//	The stages are deliberately not blended.
//
// Complexity: O(width·(NX+NY)) time per Apply, O(1) extra memory.
//
// Options:
//
//   - WithWorkers(n): worker count for the band sweeps (default 1, serial).
//
// Errors:
//
//   - ErrWidth: width below 1 at construction (checked before anything
//     else becomes callable).
//   - ErrSpacing: non-positive dx at construction.
//   - ErrCoordinateShape: coordinate fields missing or disagreeing in shape.
//   - field.ErrShapeMismatch: the field passed to Apply does not match the
//     coordinate fields; returned before any cell is written.
//
// Widths beyond half an extent make opposite bands overlap; that is a
// precondition violation and the overwrite order is unspecified.
package penalise
