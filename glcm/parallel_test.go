package glcm_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/texture/glcm"
)

// ParallelSuite checks that worker partitioning never changes the counts.
type ParallelSuite struct {
	suite.Suite
	grid *glcm.Grid
}

func (s *ParallelSuite) SetupSuite() {
	s.grid = randomGrid(s.T(), 2024, 97, 41, 8, 7)
}

// TestWorkersMatchSerial compares many worker/block combinations to the serial pass.
func (s *ParallelSuite) TestWorkersMatchSerial() {
	for _, dir := range glcm.Directions {
		for _, d := range []int{1, 3, 40, 96} {
			serial, err := glcm.Count(s.grid, 8, d, dir)
			require.NoError(s.T(), err)

			for _, w := range []int{2, 3, 8, 200} {
				for _, rows := range []int{1, 5, 64} {
					par, err := glcm.Count(s.grid, 8, d, dir, glcm.WithWorkers(w), glcm.WithMinBlockRows(rows))
					require.NoError(s.T(), err)
					s.True(serial.Equal(par), "dir=%s d=%d workers=%d rows=%d", dir, d, w, rows)
				}
			}
		}
	}
}

// TestCountAll returns one matrix per direction, each equal to Count.
func (s *ParallelSuite) TestCountAll() {
	all, err := glcm.CountAll(context.Background(), s.grid, 8, 2, glcm.WithWorkers(4), glcm.WithMinBlockRows(8))
	require.NoError(s.T(), err)
	s.Len(all, 4)

	for _, dir := range glcm.Directions {
		want, err := glcm.Count(s.grid, 8, 2, dir)
		require.NoError(s.T(), err)
		s.True(want.Equal(all[dir]), "dir=%s", dir)
	}
}

// TestCountAllCanceled reports ctx.Err() when the context is already done.
func (s *ParallelSuite) TestCountAllCanceled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	all, err := glcm.CountAll(ctx, s.grid, 8, 1)
	s.ErrorIs(err, context.Canceled)
	s.Nil(all)
}

// TestCountAllValidates rejects bad arguments before starting work.
func (s *ParallelSuite) TestCountAllValidates() {
	_, err := glcm.CountAll(context.Background(), s.grid, 4, 1)
	s.ErrorIs(err, glcm.ErrLevelOutOfRange)

	_, err = glcm.CountAll(context.Background(), nil, 4, 1)
	s.ErrorIs(err, glcm.ErrNilGrid)

	_, err = glcm.CountAll(context.Background(), s.grid, 8, 0)
	s.ErrorIs(err, glcm.ErrDistance)
}

// TestOptionPanics: nonsensical option values are programmer errors.
func (s *ParallelSuite) TestOptionPanics() {
	s.PanicsWithValue("glcm: WithWorkers: n must be >= 1", func() { glcm.WithWorkers(0) })
	s.PanicsWithValue("glcm: WithMinBlockRows: rows must be >= 1", func() { glcm.WithMinBlockRows(-2) })
}

func TestParallelSuite(t *testing.T) {
	suite.Run(t, new(ParallelSuite))
}
