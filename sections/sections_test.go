package sections_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-netkit/sections"
)

// TestSelect_Validation covers every input error.
func TestSelect_Validation(t *testing.T) {
	_, _, err := sections.SelectMinimum(nil)
	assert.ErrorIs(t, err, sections.ErrEmptyGrid, "no rows")

	_, _, err = sections.SelectMinimum([][]float64{{}})
	assert.ErrorIs(t, err, sections.ErrEmptyGrid, "no columns")

	_, _, err = sections.SelectMinimum([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, sections.ErrNonRectangular, "ragged grid")
	assert.ErrorIs(t, err, sections.ErrInvalidInput)

	_, _, err = sections.SelectMinimum([][]float64{{1, math.NaN()}})
	assert.ErrorIs(t, err, sections.ErrBadValue, "NaN cell")

	opts := sections.DefaultOptions()
	opts.MemoryMode = sections.TwoRows
	_, err = sections.Select([][]float64{{1}}, &opts)
	assert.ErrorIs(t, err, sections.ErrPathNeedsTable)
}

// Grid:
//
//	1 2 3
//	4 1 6
//	7 8 1
//
// Diagonal 1+1+1 is reachable because each step moves one column.
func TestSelectMinimum_Diagonal(t *testing.T) {
	grid := [][]float64{
		{1, 2, 3},
		{4, 1, 6},
		{7, 8, 1},
	}
	total, cells, err := sections.SelectMinimum(grid)
	require.NoError(t, err)
	assert.Equal(t, 3.0, total)
	assert.Equal(t, []sections.Cell{{0, 0}, {1, 1}, {2, 2}}, cells)
}

// The far corner cannot be reached in one row: 0 at (0,0) and 0 at (1,2)
// are two columns apart. Column 2 then ties between itself and column 1
// above and keeps itself.
func TestSelectMinimum_AdjacencyBinds(t *testing.T) {
	grid := [][]float64{
		{0, 5, 5},
		{9, 9, 0},
	}
	total, cells, err := sections.SelectMinimum(grid)
	require.NoError(t, err)
	assert.Equal(t, 5.0, total)
	assert.Equal(t, []sections.Cell{{0, 2}, {1, 2}}, cells)
}

func TestSelectMinimum_SingleColumn(t *testing.T) {
	total, cells, err := sections.SelectMinimum([][]float64{{0.5}, {0.25}, {1}})
	require.NoError(t, err)
	assert.Equal(t, 1.75, total)
	assert.Equal(t, []sections.Cell{{0, 0}, {1, 0}, {2, 0}}, cells)
}

func TestSelectMinimum_SingleRow(t *testing.T) {
	total, cells, err := sections.SelectMinimum([][]float64{{4, 2, 2, 3}})
	require.NoError(t, err)
	assert.Equal(t, 2.0, total)
	assert.Equal(t, []sections.Cell{{0, 1}}, cells, "lowest column wins the tie")
}

// All-equal grid: every predecessor ties, so the centre rule keeps column 0.
func TestSelectMinimum_TieBreakCentre(t *testing.T) {
	grid := [][]float64{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	}
	_, cells, err := sections.SelectMinimum(grid)
	require.NoError(t, err)
	assert.Equal(t, []sections.Cell{{0, 0}, {1, 0}, {2, 0}}, cells)
}

// Row 0 ties left and right of column 1; left is preferred over right.
func TestSelectMinimum_TieBreakLeftBeforeRight(t *testing.T) {
	grid := [][]float64{
		{0, 5, 0},
		{9, 0, 9},
	}
	_, cells, err := sections.SelectMinimum(grid)
	require.NoError(t, err)
	assert.Equal(t, []sections.Cell{{0, 0}, {1, 1}}, cells)
}

func TestSelect_TwoRowsMatchesFullTable(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for trial := 0; trial < 50; trial++ {
		grid := randomGrid(r, 1+r.Intn(12), 1+r.Intn(6))

		full, err := sections.Select(grid, nil)
		require.NoError(t, err)

		opts := sections.DefaultOptions()
		opts.MemoryMode = sections.TwoRows
		opts.ReturnPath = false
		rolled, err := sections.Select(grid, &opts)
		require.NoError(t, err)

		assert.Equal(t, full.Total, rolled.Total)
		assert.Nil(t, rolled.Cells)
	}
}

// TestSelect_TwoRowsTallGrid reads the last row from the rolling buffer
// once the grid outgrows it.
func TestSelect_TwoRowsTallGrid(t *testing.T) {
	opts := sections.DefaultOptions()
	opts.MemoryMode = sections.TwoRows
	opts.ReturnPath = false

	var sel sections.Selection
	var err error
	require.NotPanics(t, func() {
		sel, err = sections.Select([][]float64{{1, 2}, {3, 4}, {5, 6}}, &opts)
	})
	require.NoError(t, err)
	assert.Equal(t, 9.0, sel.Total)

	for rows := 3; rows <= 6; rows++ {
		grid := make([][]float64, rows)
		for i := range grid {
			grid[i] = []float64{float64(i + 1), 0.5}
		}
		sel, err = sections.Select(grid, &opts)
		require.NoError(t, err, "rows=%d", rows)
		assert.Equal(t, 0.5*float64(rows), sel.Total, "rows=%d", rows)
	}
}

// TestSelectMinimum_Properties checks the selection shape and optimality
// against exhaustive enumeration of column sequences.
func TestSelectMinimum_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for trial := 0; trial < 200; trial++ {
		n, m := 1+r.Intn(6), 1+r.Intn(4)
		grid := randomGrid(r, n, m)

		total, cells, err := sections.SelectMinimum(grid)
		require.NoError(t, err)
		require.Len(t, cells, n, "one cell per row")

		var sum float64
		for i, c := range cells {
			require.Equal(t, i, c.Row)
			require.True(t, c.Col >= 0 && c.Col < m)
			if i > 0 {
				require.LessOrEqual(t, abs(c.Col-cells[i-1].Col), 1, "adjacent columns")
			}
			sum += grid[c.Row][c.Col]
		}
		require.Equal(t, total, sum, "total equals selected values")
		require.Equal(t, bruteForce(grid), total, "trial %d optimal", trial)
	}
}

// randomGrid fills an n×m grid with small integers so float sums are exact.
func randomGrid(r *rand.Rand, n, m int) [][]float64 {
	grid := make([][]float64, n)
	for i := range grid {
		grid[i] = make([]float64, m)
		for j := range grid[i] {
			grid[i][j] = float64(r.Intn(10))
		}
	}

	return grid
}

func bruteForce(grid [][]float64) float64 {
	best := math.Inf(1)
	var walk func(i, col int, acc float64)
	walk = func(i, col int, acc float64) {
		acc += grid[i][col]
		if i == len(grid)-1 {
			best = math.Min(best, acc)
			return
		}
		for d := -1; d <= 1; d++ {
			if c := col + d; c >= 0 && c < len(grid[0]) {
				walk(i+1, c, acc)
			}
		}
	}
	for j := range grid[0] {
		walk(0, j, 0)
	}

	return best
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
