package field

// Scalar3D is a dense scalar field on an NZ×NY×NX grid, stored row-major:
// Data[(k*NY+j)*NX+i] holds the value at plane k (z-axis), row j (y-axis),
// column i (x-axis).
type Scalar3D[T Real] struct {
	NZ, NY, NX int
	Data       []T
}

// NewScalar3D allocates a zeroed NZ×NY×NX scalar field.
// Returns ErrExtent if any extent is below 1.
func NewScalar3D[T Real](nz, ny, nx int) (*Scalar3D[T], error) {
	if nz < 1 || ny < 1 || nx < 1 {
		return nil, ErrExtent
	}

	return &Scalar3D[T]{NZ: nz, NY: ny, NX: nx, Data: make([]T, nz*ny*nx)}, nil
}

// WrapScalar3D adopts caller-owned storage as an NZ×NY×NX scalar field.
// Returns ErrExtent on non-positive extents,
// ErrShapeMismatch if len(data) != nz*ny*nx.
func WrapScalar3D[T Real](data []T, nz, ny, nx int) (*Scalar3D[T], error) {
	if nz < 1 || ny < 1 || nx < 1 {
		return nil, ErrExtent
	}
	if len(data) != nz*ny*nx {
		return nil, ErrShapeMismatch
	}

	return &Scalar3D[T]{NZ: nz, NY: ny, NX: nx, Data: data}, nil
}

// Idx maps (plane k, row j, column i) to the row-major offset. Complexity: O(1).
func (s *Scalar3D[T]) Idx(k, j, i int) int { return (k*s.NY+j)*s.NX + i }

// At returns the value at plane k, row j, column i. Complexity: O(1).
func (s *Scalar3D[T]) At(k, j, i int) T { return s.Data[(k*s.NY+j)*s.NX+i] }

// Set stores v at plane k, row j, column i. Complexity: O(1).
func (s *Scalar3D[T]) Set(k, j, i int, v T) { s.Data[(k*s.NY+j)*s.NX+i] = v }

// SameShape reports whether o has identical extents. Complexity: O(1).
func (s *Scalar3D[T]) SameShape(o *Scalar3D[T]) bool {
	return o != nil && s.NZ == o.NZ && s.NY == o.NY && s.NX == o.NX
}

// Fill sets every cell to v.
func (s *Scalar3D[T]) Fill(v T) {
	for n := range s.Data {
		s.Data[n] = v
	}
}

// Vector3D is a dense 3-component vector field on an NZ×NY×NX grid with
// components stored contiguously (component-major): component c occupies
// Data[c*NZ*NY*NX : (c+1)*NZ*NY*NX] in the same layout as Scalar3D.
// Components 0, 1, 2 are the x-, y- and z-components.
type Vector3D[T Real] struct {
	NZ, NY, NX int
	Data       []T
}

// NewVector3D allocates a zeroed 3-component NZ×NY×NX vector field.
// Returns ErrExtent if any extent is below 1.
func NewVector3D[T Real](nz, ny, nx int) (*Vector3D[T], error) {
	if nz < 1 || ny < 1 || nx < 1 {
		return nil, ErrExtent
	}

	return &Vector3D[T]{NZ: nz, NY: ny, NX: nx, Data: make([]T, 3*nz*ny*nx)}, nil
}

// WrapVector3D adopts caller-owned storage as a 3-component NZ×NY×NX vector
// field. Returns ErrExtent on non-positive extents,
// ErrShapeMismatch if len(data) != 3*nz*ny*nx.
func WrapVector3D[T Real](data []T, nz, ny, nx int) (*Vector3D[T], error) {
	if nz < 1 || ny < 1 || nx < 1 {
		return nil, ErrExtent
	}
	if len(data) != 3*nz*ny*nx {
		return nil, ErrShapeMismatch
	}

	return &Vector3D[T]{NZ: nz, NY: ny, NX: nx, Data: data}, nil
}

// Component returns a zero-copy scalar view of component c (0=x, 1=y, 2=z).
// Mutating the view mutates the vector field. c outside [0,3) panics via
// the slice bounds check.
func (v *Vector3D[T]) Component(c int) *Scalar3D[T] {
	block := v.NZ * v.NY * v.NX

	return &Scalar3D[T]{NZ: v.NZ, NY: v.NY, NX: v.NX, Data: v.Data[c*block : (c+1)*block]}
}

// SameShape reports whether o has identical extents. Complexity: O(1).
func (v *Vector3D[T]) SameShape(o *Vector3D[T]) bool {
	return o != nil && v.NZ == o.NZ && v.NY == o.NY && v.NX == o.NX
}
