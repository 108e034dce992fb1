package glcm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/texture/glcm"
)

// TestCounts_Accessors exercises the read-only surface on Scenario A.
func TestCounts_Accessors(t *testing.T) {
	g := mustInts(t, [][]int{{0, 1}, {1, 0}})
	c, err := glcm.Count0(g, 2, 1)
	require.NoError(t, err)

	assert.Equal(t, 2, c.GreyLevels())
	assert.Equal(t, 3, c.Size())
	assert.Equal(t, 2, c.MissingIndex())
	assert.Equal(t, "[0, 1, 0]\n[1, 0, 0]\n[0, 0, 0]\n", c.String())

	v, err := c.At(glcm.Grey(1), glcm.Grey(0))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v)

	v, err = c.At(glcm.Missing(), glcm.Grey(0))
	require.NoError(t, err)
	assert.Zero(t, v)

	_, err = c.At(glcm.Grey(2), glcm.Grey(0))
	assert.ErrorIs(t, err, glcm.ErrLevelOutOfRange)
	_, err = c.At(glcm.Grey(0), glcm.Grey(-1))
	assert.ErrorIs(t, err, glcm.ErrLevelOutOfRange)

	for _, ij := range [][2]int{{-1, 0}, {0, 3}, {3, 3}} {
		_, err = c.AtIndex(ij[0], ij[1])
		assert.ErrorIs(t, err, glcm.ErrOutOfRange, "AtIndex%v", ij)
	}
}

// TestCounts_RowsAndCloneAreCopies: mutating exported copies leaves c intact.
func TestCounts_RowsAndCloneAreCopies(t *testing.T) {
	g := mustInts(t, [][]int{{0, 0, 1}, {1, 1, 0}})
	c, err := glcm.Count0(g, 2, 1)
	require.NoError(t, err)

	rows := c.Rows()
	rows[0][0] = 100
	v, err := c.AtIndex(0, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v)

	cl := c.Clone()
	assert.True(t, c.Equal(cl))
	assert.NotSame(t, c, cl)
}

func TestCounts_Equal(t *testing.T) {
	g := mustInts(t, [][]int{{0, 0}, {1, 1}})
	a, err := glcm.Count0(g, 2, 1)
	require.NoError(t, err)
	b, err := glcm.Count90(g, 2, 1)
	require.NoError(t, err)
	wide, err := glcm.Count0(g, 3, 1)
	require.NoError(t, err)

	assert.False(t, a.Equal(b), "different directions differ here")
	assert.False(t, a.Equal(wide), "different sizes")
	assert.False(t, a.Equal(nil))

	var nilCounts *glcm.Counts
	assert.True(t, nilCounts.Equal(nil))
}
