// SPDX-License-Identifier: MIT

// Package glcm builds Gray-Level Co-occurrence Matrices (GLCM) from a
// quantized 2D grid.
//
// What:
//
//   - Grid wraps a rectangular grid of Levels; each Level is either a real
//     grey level Grey(u) or Missing().
//   - Count walks every reference pixel whose neighbour at the chosen
//     Direction and distance d lies inside the grid, and counts the ordered
//     pair (reference, neighbour).
//   - Counts is the (nGrey+1)×(nGrey+1) result. Index nGrey is reserved for
//     pairs where either pixel is missing.
//
// Directions (reference at (i,j), neighbour offset):
//
//	Deg0   — (i,   j+d)
//	Deg90  — (i-d, j)
//	Deg45  — (i-d, j+d)
//	Deg135 — (i-d, j-d)
//
// Pairs whose neighbour would fall outside the grid are excluded: there is
// no padding and no wraparound. A distance larger than the grid yields an
// all-zero matrix, not an error.
//
// Complexity:
//
//   - Count:    O(R×C + nGrey²) time, O(nGrey²) memory.
//   - CountAll: four Count calls run concurrently.
//
// Options:
//
//   - WithWorkers(n): split reference rows across n workers, each with a
//     private matrix; partial matrices are summed afterwards.
//   - WithMinBlockRows(k): never hand a worker fewer than k rows.
//
// Errors (all match errors.Is(err, ErrInvalidArgument)):
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrNotInteger: grid construction.
//   - ErrNilGrid, ErrGreyLevels, ErrDistance, ErrDirection: bad arguments.
//   - ErrLevelOutOfRange: a grey level outside [0, nGrey-1], reported as
//     *LevelError with the offending cell.
//   - ErrTooManyGreyLevels: nGrey > MaxGreyLevels (4096); also matches
//     ErrGreyLevels.
package glcm
