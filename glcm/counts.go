// SPDX-License-Identifier: MIT

package glcm

import (
	"fmt"
	"strings"
)

// Counts is a square co-occurrence matrix of size (nGrey+1)×(nGrey+1).
// Rows index the reference level, columns the neighbour level; index nGrey
// collects pairs where that member is missing. Entries are stored row-major
// in a flat slice. A Counts returned by this package is never mutated again.
type Counts struct {
	n    int      // real grey levels; side is n+1
	data []uint64 // len == (n+1)*(n+1)
}

// newCounts allocates a zeroed matrix for nGrey real levels.
func newCounts(nGrey int) *Counts {
	side := nGrey + 1

	return &Counts{n: nGrey, data: make([]uint64, side*side)}
}

// GreyLevels returns nGrey, the number of real grey levels.
func (c *Counts) GreyLevels() int { return c.n }

// Size returns the side length nGrey+1.
func (c *Counts) Size() int { return c.n + 1 }

// MissingIndex returns the row/column index reserved for missing values.
func (c *Counts) MissingIndex() int { return c.n }

// indexOf computes the flat offset for (ref, nei) or returns ErrOutOfRange.
// Complexity: O(1).
func (c *Counts) indexOf(ref, nei int) (int, error) {
	side := c.n + 1
	if ref < 0 || ref >= side || nei < 0 || nei >= side {
		return 0, fmt.Errorf("Counts.AtIndex(%d,%d): %w", ref, nei, ErrOutOfRange)
	}

	return ref*side + nei, nil
}

// AtIndex returns the count at raw matrix position (ref, nei).
// Returns ErrOutOfRange if either index is outside [0, Size()-1].
func (c *Counts) AtIndex(ref, nei int) (uint64, error) {
	idx, err := c.indexOf(ref, nei)
	if err != nil {
		return 0, err
	}

	return c.data[idx], nil
}

// At returns how often the pair (ref, nei) was observed. Missing levels
// address the trailing row/column. A grey level outside [0, nGrey-1]
// yields ErrLevelOutOfRange.
func (c *Counts) At(ref, nei Level) (uint64, error) {
	i, ok := ref.index(c.n)
	if !ok {
		return 0, fmt.Errorf("Counts.At(%s,%s): %w", ref, nei, ErrLevelOutOfRange)
	}
	j, ok := nei.index(c.n)
	if !ok {
		return 0, fmt.Errorf("Counts.At(%s,%s): %w", ref, nei, ErrLevelOutOfRange)
	}

	return c.data[i*(c.n+1)+j], nil
}

// Total returns the sum of all entries, i.e. the number of pairs counted.
// Complexity: O(nGrey²).
func (c *Counts) Total() uint64 {
	var sum uint64
	for _, v := range c.data {
		sum += v
	}

	return sum
}

// Rows returns a deep copy of the matrix as a slice of rows.
func (c *Counts) Rows() [][]uint64 {
	side := c.n + 1
	out := make([][]uint64, side)
	for i := range out {
		out[i] = make([]uint64, side)
		copy(out[i], c.data[i*side:(i+1)*side])
	}

	return out
}

// Equal reports whether c and o have the same size and identical entries.
func (c *Counts) Equal(o *Counts) bool {
	if c == nil || o == nil {
		return c == o
	}
	if c.n != o.n {
		return false
	}
	for i := range c.data {
		if c.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent deep copy.
// Complexity: O(nGrey²).
func (c *Counts) Clone() *Counts {
	data := make([]uint64, len(c.data))
	copy(data, c.data)

	return &Counts{n: c.n, data: data}
}

// merge adds o into c element-wise. Both must have the same size.
func (c *Counts) merge(o *Counts) {
	for i, v := range o.data {
		c.data[i] += v
	}
}

// String implements fmt.Stringer, one bracketed row per line.
func (c *Counts) String() string {
	side := c.n + 1
	var sb strings.Builder
	for i := 0; i < side; i++ {
		sb.WriteByte('[')
		for j := 0; j < side; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", c.data[i*side+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
