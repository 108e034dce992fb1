// SPDX-License-Identifier: MIT

// Package glcm: domain types shared by the grid, the counters and the result.
package glcm

import "strconv"

// MaxGreyLevels is the largest nGrey accepted by the counters. A matrix for
// MaxGreyLevels holds (MaxGreyLevels+1)² uint64 entries, about 128 MiB.
const MaxGreyLevels = 1 << 12

// Level is a single grid cell: either a real grey level or the missing marker.
// The zero value is Missing().
type Level struct {
	value int
	grey  bool
}

// Grey returns the real grey level u. Range is checked against nGrey only
// when the grid is counted.
func Grey(u int) Level {
	return Level{value: u, grey: true}
}

// Missing returns the missing-value marker (NA).
func Missing() Level {
	return Level{}
}

// Value returns the grey level and true, or 0 and false for Missing.
func (l Level) Value() (int, bool) {
	return l.value, l.grey
}

// IsMissing reports whether l is the missing marker.
func (l Level) IsMissing() bool {
	return !l.grey
}

// String renders a grey level as its number and Missing as "NA".
func (l Level) String() string {
	if !l.grey {
		return "NA"
	}

	return strconv.Itoa(l.value)
}

// index maps l onto a Counts row/column for a matrix of nGrey real levels.
// Missing maps to nGrey. ok is false when a grey level is outside [0, nGrey-1].
func (l Level) index(nGrey int) (idx int, ok bool) {
	if !l.grey {
		return nGrey, true
	}
	if l.value < 0 || l.value >= nGrey {
		return 0, false
	}

	return l.value, true
}

// Direction selects the neighbour offset relative to the reference pixel.
type Direction int

const (
	// Deg0 pairs (i, j) with (i, j+d).
	Deg0 Direction = iota
	// Deg45 pairs (i, j) with (i-d, j+d).
	Deg45
	// Deg90 pairs (i, j) with (i-d, j).
	Deg90
	// Deg135 pairs (i, j) with (i-d, j-d).
	Deg135
)

// Directions lists every supported direction in ascending angle order.
var Directions = [...]Direction{Deg0, Deg45, Deg90, Deg135}

// unit holds the per-direction offset for d=1 as {dRow, dCol}.
var unit = [...][2]int{
	Deg0:   {0, 1},
	Deg45:  {-1, 1},
	Deg90:  {-1, 0},
	Deg135: {-1, -1},
}

// Valid reports whether dir is one of the four supported directions.
func (dir Direction) Valid() bool {
	return dir >= Deg0 && dir <= Deg135
}

// Degrees returns the angle of dir in degrees, or -1 if dir is invalid.
func (dir Direction) Degrees() int {
	if !dir.Valid() {
		return -1
	}

	return int(dir) * 45
}

// String implements fmt.Stringer, e.g. "45°".
func (dir Direction) String() string {
	if !dir.Valid() {
		return "Direction(" + strconv.Itoa(int(dir)) + ")"
	}

	return strconv.Itoa(dir.Degrees()) + "°"
}

// Offset returns the neighbour displacement (dRow, dCol) for distance d.
// Invalid directions return (0, 0).
func (dir Direction) Offset(d int) (dRow, dCol int) {
	if !dir.Valid() {
		return 0, 0
	}
	u := unit[dir]

	return u[0] * d, u[1] * d
}

// ParseDirection converts an angle in degrees (0, 45, 90 or 135) to a Direction.
// Returns ErrDirection for any other angle.
func ParseDirection(deg int) (Direction, error) {
	for _, dir := range Directions {
		if dir.Degrees() == deg {
			return dir, nil
		}
	}

	return 0, opErrorf("ParseDirection", ErrDirection)
}
