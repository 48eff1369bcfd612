package field

// Real is the element type every field and kernel is generic over.
// Instantiating a kernel at float32 or float64 specialises the whole
// stencil to that precision at compile time.
type Real interface {
	~float32 | ~float64
}

// Scalar2D is a dense scalar field on an NY×NX grid, stored row-major:
// Data[i*NX+j] holds the value at row i (y-axis) and column j (x-axis).
// The backing slice is caller-visible and may be shared with a Vector2D.
type Scalar2D[T Real] struct {
	NY, NX int
	Data   []T
}

// NewScalar2D allocates a zeroed NY×NX scalar field.
// Returns ErrExtent if either extent is below 1.
func NewScalar2D[T Real](ny, nx int) (*Scalar2D[T], error) {
	if ny < 1 || nx < 1 {
		return nil, ErrExtent
	}

	return &Scalar2D[T]{NY: ny, NX: nx, Data: make([]T, ny*nx)}, nil
}

// WrapScalar2D adopts caller-owned storage as an NY×NX scalar field.
// No copy is made; the caller retains ownership of data.
// Returns ErrExtent on non-positive extents,
// ErrShapeMismatch if len(data) != ny*nx.
func WrapScalar2D[T Real](data []T, ny, nx int) (*Scalar2D[T], error) {
	if ny < 1 || nx < 1 {
		return nil, ErrExtent
	}
	if len(data) != ny*nx {
		return nil, ErrShapeMismatch
	}

	return &Scalar2D[T]{NY: ny, NX: nx, Data: data}, nil
}

// Idx maps (row i, column j) to the row-major offset i*NX+j. Complexity: O(1).
func (s *Scalar2D[T]) Idx(i, j int) int { return i*s.NX + j }

// At returns the value at row i, column j. Complexity: O(1).
func (s *Scalar2D[T]) At(i, j int) T { return s.Data[i*s.NX+j] }

// Set stores v at row i, column j. Complexity: O(1).
func (s *Scalar2D[T]) Set(i, j int, v T) { s.Data[i*s.NX+j] = v }

// SameShape reports whether o has identical extents. Complexity: O(1).
func (s *Scalar2D[T]) SameShape(o *Scalar2D[T]) bool {
	return o != nil && s.NY == o.NY && s.NX == o.NX
}

// Fill sets every cell to v.
func (s *Scalar2D[T]) Fill(v T) {
	for n := range s.Data {
		s.Data[n] = v
	}
}

// CopyFrom copies o's cells into s.
// Returns ErrShapeMismatch if extents differ.
func (s *Scalar2D[T]) CopyFrom(o *Scalar2D[T]) error {
	if !s.SameShape(o) {
		return ErrShapeMismatch
	}
	copy(s.Data, o.Data)

	return nil
}

// Vector2D is a dense in-plane vector field on an NY×NX grid with two
// components stored contiguously (component-major): component c occupies
// Data[c*NY*NX : (c+1)*NY*NX] in the same row-major layout as Scalar2D.
// Component 0 is the x-component, component 1 the y-component.
type Vector2D[T Real] struct {
	NY, NX int
	Data   []T
}

// NewVector2D allocates a zeroed 2-component NY×NX vector field.
// Returns ErrExtent if either extent is below 1.
func NewVector2D[T Real](ny, nx int) (*Vector2D[T], error) {
	if ny < 1 || nx < 1 {
		return nil, ErrExtent
	}

	return &Vector2D[T]{NY: ny, NX: nx, Data: make([]T, 2*ny*nx)}, nil
}

// WrapVector2D adopts caller-owned storage as a 2-component NY×NX vector
// field. Returns ErrExtent on non-positive extents,
// ErrShapeMismatch if len(data) != 2*ny*nx.
func WrapVector2D[T Real](data []T, ny, nx int) (*Vector2D[T], error) {
	if ny < 1 || nx < 1 {
		return nil, ErrExtent
	}
	if len(data) != 2*ny*nx {
		return nil, ErrShapeMismatch
	}

	return &Vector2D[T]{NY: ny, NX: nx, Data: data}, nil
}

// Component returns a zero-copy scalar view of component c (0=x, 1=y).
// Mutating the view mutates the vector field. c outside [0,2) panics via
// the slice bounds check.
func (v *Vector2D[T]) Component(c int) *Scalar2D[T] {
	plane := v.NY * v.NX

	return &Scalar2D[T]{NY: v.NY, NX: v.NX, Data: v.Data[c*plane : (c+1)*plane]}
}

// SameShape reports whether o has identical extents. Complexity: O(1).
func (v *Vector2D[T]) SameShape(o *Vector2D[T]) bool {
	return o != nil && v.NY == o.NY && v.NX == o.NX
}
