package field

import "errors"

var (
	// ErrExtent indicates a constructor received a non-positive extent.
	ErrExtent = errors.New("field: extents must be positive")
	// ErrShapeMismatch indicates a buffer's length or extents disagree with
	// the shape a kernel or constructor expects.
	ErrShapeMismatch = errors.New("field: buffer shape mismatch")
	// ErrWidth indicates a boundary width below 1.
	ErrWidth = errors.New("field: boundary width must be at least 1")
)
