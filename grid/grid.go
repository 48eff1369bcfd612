package grid

import "errors"

var (
	// ErrExtent indicates a grid extent below 1.
	ErrExtent = errors.New("grid: extents must be positive")
	// ErrSpacing indicates a non-positive grid spacing.
	ErrSpacing = errors.New("grid: grid spacing must be positive")
)

// Grid is the immutable descriptor shared by a kernel set: per-axis extents
// and the uniform spacing DX. A 2D grid has NZ == 0. Central-difference
// kernels are only well-defined for extents of at least 3 along each
// differenced axis; that is a documented precondition, not a checked one.
type Grid struct {
	NX, NY, NZ int
	DX         float64
}

// New2D constructs a 2D grid descriptor with nx columns (x-axis) and
// ny rows (y-axis). Returns ErrExtent or ErrSpacing on invalid input.
func New2D(nx, ny int, dx float64) (Grid, error) {
	if nx < 1 || ny < 1 {
		return Grid{}, ErrExtent
	}
	if dx <= 0 {
		return Grid{}, ErrSpacing
	}

	return Grid{NX: nx, NY: ny, DX: dx}, nil
}

// New3D constructs a 3D grid descriptor with nx columns (x-axis), ny rows
// (y-axis) and nz planes (z-axis). Returns ErrExtent or ErrSpacing on
// invalid input.
func New3D(nx, ny, nz int, dx float64) (Grid, error) {
	if nx < 1 || ny < 1 || nz < 1 {
		return Grid{}, ErrExtent
	}
	if dx <= 0 {
		return Grid{}, ErrSpacing
	}

	return Grid{NX: nx, NY: ny, NZ: nz, DX: dx}, nil
}

// Dim reports the grid dimensionality, 2 or 3.
func (g Grid) Dim() int {
	if g.NZ > 0 {
		return 3
	}

	return 2
}
