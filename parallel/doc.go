// Package parallel supplies the chunked loop scheduler behind every
// kernel's WithWorkers option.
//
// A kernel parallelises over its outermost grid axis by handing For a body
// that sweeps a half-open sub-range of rows or planes. Chunks are disjoint,
// so bodies never race on output cells, and the result is identical to the
// serial sweep regardless of worker count.
package parallel
