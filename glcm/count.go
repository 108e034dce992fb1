// SPDX-License-Identifier: MIT

package glcm

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Count builds the co-occurrence matrix of g for direction dir and distance d.
//
// Algorithm:
//  1. Validate 1 ≤ nGrey ≤ MaxGreyLevels, d ≥ 1, dir, and every cell of g against [0, nGrey-1].
//  2. Derive the offset (dRow, dCol) = dir.Offset(d) and, per axis, the range
//     of reference coordinates whose neighbour stays inside the grid.
//  3. For every reference (i, j) in that range, increment
//     counts[idx(g[i][j])][idx(g[i+dRow][j+dCol])], where Missing maps to nGrey.
//
// Pairs reaching outside the grid are skipped, so a distance at least as
// large as the grid extent yields the all-zero matrix.
//
// Errors (before any counting, never with a partial result):
//   - ErrNilGrid, ErrGreyLevels, ErrTooManyGreyLevels, ErrDistance, ErrDirection.
//   - *LevelError (ErrLevelOutOfRange) for the first offending cell.
//
// Complexity: O(R×C + nGrey²) time, O(workers×nGrey²) memory.
func Count(g *Grid, nGrey, d int, dir Direction, opts ...Option) (*Counts, error) {
	if err := validateArgs(g, nGrey, d, dir); err != nil {
		return nil, opErrorf("Count", err)
	}
	if err := g.validate(nGrey); err != nil {
		return nil, opErrorf("Count", err)
	}

	return count(g, nGrey, d, dir, gatherOptions(opts...)), nil
}

// Count0 counts pairs (i, j) → (i, j+d).
func Count0(g *Grid, nGrey, d int, opts ...Option) (*Counts, error) {
	return Count(g, nGrey, d, Deg0, opts...)
}

// Count90 counts pairs (i, j) → (i-d, j).
func Count90(g *Grid, nGrey, d int, opts ...Option) (*Counts, error) {
	return Count(g, nGrey, d, Deg90, opts...)
}

// Count45 counts pairs (i, j) → (i-d, j+d).
func Count45(g *Grid, nGrey, d int, opts ...Option) (*Counts, error) {
	return Count(g, nGrey, d, Deg45, opts...)
}

// Count135 counts pairs (i, j) → (i-d, j-d).
func Count135(g *Grid, nGrey, d int, opts ...Option) (*Counts, error) {
	return Count(g, nGrey, d, Deg135, opts...)
}

// CountAll counts all four directions concurrently and returns them keyed
// by Direction. The grid is validated once. If ctx is done before the
// directions start, ctx.Err() is returned.
func CountAll(ctx context.Context, g *Grid, nGrey, d int, opts ...Option) (map[Direction]*Counts, error) {
	if err := validateArgs(g, nGrey, d, Deg0); err != nil {
		return nil, opErrorf("CountAll", err)
	}
	if err := g.validate(nGrey); err != nil {
		return nil, opErrorf("CountAll", err)
	}
	o := gatherOptions(opts...)

	results := make([]*Counts, len(Directions))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, dir := range Directions {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			results[i] = count(g, nGrey, d, dir, o)

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := make(map[Direction]*Counts, len(Directions))
	for i, dir := range Directions {
		out[dir] = results[i]
	}

	return out, nil
}

// validateArgs checks the scalar arguments in a fixed order:
// grid → nGrey → d → direction.
func validateArgs(g *Grid, nGrey, d int, dir Direction) error {
	switch {
	case g == nil:
		return ErrNilGrid
	case nGrey < 1:
		return ErrGreyLevels
	case nGrey > MaxGreyLevels:
		return ErrTooManyGreyLevels
	case d < 1:
		return ErrDistance
	case !dir.Valid():
		return ErrDirection
	}

	return nil
}

// span returns the half-open range of reference coordinates along an axis
// of length n for which coordinate+delta stays inside [0, n).
// The range is empty (lo >= hi) when |delta| >= n.
func span(n, delta int) (lo, hi int) {
	if delta < 0 {
		return -delta, n
	}

	return 0, n - delta
}

// count is the shared routine behind every direction. Arguments are
// assumed valid. Row blocks are counted into private matrices and summed.
func count(g *Grid, nGrey, d int, dir Direction, o Options) *Counts {
	dRow, dCol := dir.Offset(d)
	rowLo, rowHi := span(g.rows, dRow)
	colLo, colHi := span(g.cols, dCol)

	out := newCounts(nGrey)
	if rowLo >= rowHi || colLo >= colHi {
		return out
	}

	blocks := o.blocks(rowLo, rowHi)
	if len(blocks) == 1 {
		accumulate(out, g, dRow, dCol, rowLo, rowHi, colLo, colHi)
		return out
	}

	partial := make([]*Counts, len(blocks))
	var eg errgroup.Group
	eg.SetLimit(o.workers)
	for b, blk := range blocks {
		eg.Go(func() error {
			c := newCounts(nGrey)
			accumulate(c, g, dRow, dCol, blk[0], blk[1], colLo, colHi)
			partial[b] = c

			return nil
		})
	}
	_ = eg.Wait() // blocks always return nil

	for _, c := range partial {
		out.merge(c)
	}

	return out
}

// accumulate adds every pair with reference rows in [rowLo, rowHi) and
// reference columns in [colLo, colHi) into c.
func accumulate(c *Counts, g *Grid, dRow, dCol, rowLo, rowHi, colLo, colHi int) {
	side := c.n + 1
	for i := rowLo; i < rowHi; i++ {
		ref := g.cells[i*g.cols : (i+1)*g.cols]
		nei := g.cells[(i+dRow)*g.cols : (i+dRow+1)*g.cols]
		for j := colLo; j < colHi; j++ {
			r, _ := ref[j].index(c.n)
			n, _ := nei[j+dCol].index(c.n)
			c.data[r*side+n]++
		}
	}
}
