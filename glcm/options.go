// SPDX-License-Identifier: MIT

// Package glcm: functional configuration for the counters.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions helper that applies setters on top of the defaults.
//
// Options never change the counts, only how the work is scheduled: the
// parallel result is bit-identical to the serial one.
package glcm

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers keeps counting on the calling goroutine.
	DefaultWorkers = 1

	// DefaultMinBlockRows is the smallest number of reference rows worth
	// handing to a separate worker.
	DefaultMinBlockRows = 64
)

// ---------- Internal panic messages ----------

const (
	panicWorkersInvalid   = "glcm: WithWorkers: n must be >= 1"
	panicBlockRowsInvalid = "glcm: WithMinBlockRows: rows must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	workers      int // >= 1; DefaultWorkers
	minBlockRows int // >= 1; DefaultMinBlockRows
}

// WithWorkers splits the valid reference rows across at most n goroutines.
// Each worker fills a private matrix; the partials are summed once all
// workers are done.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithMinBlockRows sets the minimum number of rows per worker block.
// Grids with fewer valid rows than 2×rows are counted serially.
// Panics if rows < 1.
func WithMinBlockRows(rows int) Option {
	if rows < 1 {
		panic(panicBlockRowsInvalid)
	}

	return func(o *Options) { o.minBlockRows = rows }
}

// gatherOptions applies user setters on top of defaults, last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		workers:      DefaultWorkers,
		minBlockRows: DefaultMinBlockRows,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// blocks splits [lo, hi) into at most o.workers contiguous ranges of at
// least o.minBlockRows rows each. An empty range yields nil.
func (o Options) blocks(lo, hi int) [][2]int {
	n := hi - lo
	if n <= 0 {
		return nil
	}
	k := n / o.minBlockRows
	if k > o.workers {
		k = o.workers
	}
	if k < 1 {
		k = 1
	}
	out := make([][2]int, 0, k)
	size, rem := n/k, n%k
	start := lo
	for b := 0; b < k; b++ {
		end := start + size
		if b < rem {
			end++
		}
		out = append(out, [2]int{start, end})
		start = end
	}

	return out
}
