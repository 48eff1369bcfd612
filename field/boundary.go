package field

// SetBoundary overwrites every cell within width grid points of any of the
// four edges (top and bottom rows, left and right columns) with val.
// The interior, all cells at least width away from every edge, is untouched.
//
// Returns ErrWidth if width < 1. Widths above half an extent make the edge
// bands overlap; the affected cells are then written more than once with the
// same value, which is harmless but a contract violation on the caller's
// side.
//
// Time: O(width·(NX+NY)), Memory: O(1).
func (s *Scalar2D[T]) SetBoundary(width int, val T) error {
	if width < 1 {
		return ErrWidth
	}
	w := width
	if w > s.NY {
		w = s.NY
	}
	// Top and bottom rows.
	for i := 0; i < w; i++ {
		row := s.Data[i*s.NX : (i+1)*s.NX]
		for j := range row {
			row[j] = val
		}
		row = s.Data[(s.NY-1-i)*s.NX : (s.NY-i)*s.NX]
		for j := range row {
			row[j] = val
		}
	}
	w = width
	if w > s.NX {
		w = s.NX
	}
	// Left and right columns of the remaining rows.
	for i := 0; i < s.NY; i++ {
		base := i * s.NX
		for j := 0; j < w; j++ {
			s.Data[base+j] = val
			s.Data[base+s.NX-1-j] = val
		}
	}

	return nil
}
