// SPDX-License-Identifier: MIT

package glcm

import "math"

// Grid is an immutable R×C grid of Levels stored row-major.
// It is safe for concurrent reads once built.
type Grid struct {
	rows, cols int
	cells      []Level // len == rows*cols
}

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later changes to levels do not leak in.
// Returns ErrEmptyGrid if levels has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func NewGrid(levels [][]Level) (*Grid, error) {
	h, w, err := shape(len(levels), func(y int) int { return len(levels[y]) })
	if err != nil {
		return nil, opErrorf("NewGrid", err)
	}
	g := &Grid{rows: h, cols: w, cells: make([]Level, 0, h*w)}
	for _, row := range levels {
		g.cells = append(g.cells, row...)
	}

	return g, nil
}

// FromInts builds a Grid from integer cells. Every cell equal to missing
// becomes Missing(); all others become Grey(v).
// Errors as NewGrid.
func FromInts(values [][]int, missing int) (*Grid, error) {
	h, w, err := shape(len(values), func(y int) int { return len(values[y]) })
	if err != nil {
		return nil, opErrorf("FromInts", err)
	}
	g := &Grid{rows: h, cols: w, cells: make([]Level, 0, h*w)}
	for _, row := range values {
		for _, v := range row {
			if v == missing {
				g.cells = append(g.cells, Missing())
				continue
			}
			g.cells = append(g.cells, Grey(v))
		}
	}

	return g, nil
}

// FromFloats builds a Grid from a numeric matrix. NaN cells become
// Missing(); every other cell must hold an exact integer.
// Returns ErrNotInteger for ±Inf, fractional values or values that do not
// fit into the int32 range, otherwise errors as NewGrid.
func FromFloats(values [][]float64) (*Grid, error) {
	h, w, err := shape(len(values), func(y int) int { return len(values[y]) })
	if err != nil {
		return nil, opErrorf("FromFloats", err)
	}
	g := &Grid{rows: h, cols: w, cells: make([]Level, 0, h*w)}
	for _, row := range values {
		for _, v := range row {
			if math.IsNaN(v) {
				g.cells = append(g.cells, Missing())
				continue
			}
			if math.IsInf(v, 0) || v != math.Trunc(v) || v < math.MinInt32 || v > math.MaxInt32 {
				return nil, opErrorf("FromFloats", ErrNotInteger)
			}
			g.cells = append(g.cells, Grey(int(v)))
		}
	}

	return g, nil
}

// shape validates a row count and per-row lengths, returning (rows, cols).
func shape(h int, rowLen func(y int) int) (int, int, error) {
	if h == 0 || rowLen(0) == 0 {
		return 0, 0, ErrEmptyGrid
	}
	w := rowLen(0)
	for y := 1; y < h; y++ {
		if rowLen(y) != w {
			return 0, 0, ErrNonRectangular
		}
	}

	return h, w, nil
}

// Rows returns the number of rows R.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns C.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the Level stored at (row, col), or ErrOutOfRange.
func (g *Grid) At(row, col int) (Level, error) {
	if !g.InBounds(row, col) {
		return Level{}, opErrorf("Grid.At", ErrOutOfRange)
	}

	return g.cells[g.index(row, col)], nil
}

// index maps (row, col) to the row-major offset row*cols + col.
func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

// validate checks every cell against [0, nGrey-1] and reports the first
// offender in row-major order.
// Complexity: O(R×C).
func (g *Grid) validate(nGrey int) error {
	for i, l := range g.cells {
		if _, ok := l.index(nGrey); !ok {
			return &LevelError{Row: i / g.cols, Col: i % g.cols, Value: l.value, GreyLevels: nGrey}
		}
	}

	return nil
}
