package parallel

import "golang.org/x/sync/errgroup"

// For splits the half-open range [lo, hi) into near-equal chunks and runs
// body on each, with at most workers chunks in flight. body receives a
// disjoint sub-range [clo, chi) and must not touch indices outside it.
//
// workers <= 1, an empty range, or a range smaller than the worker count
// falls back to a single serial call, matching the loop the kernel would
// otherwise run inline. For returns only after every chunk has finished.
func For(lo, hi, workers int, body func(lo, hi int)) {
	total := hi - lo
	if total <= 0 {
		return
	}
	if workers <= 1 || total < workers {
		body(lo, hi)

		return
	}

	chunk := (total + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for s := lo; s < hi; s += chunk {
		e := s + chunk
		if e > hi {
			e = hi
		}
		s, e := s, e
		g.Go(func() error {
			body(s, e)

			return nil
		})
	}
	_ = g.Wait() // bodies cannot fail
}
