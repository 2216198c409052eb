package sections

import (
	"fmt"
	"math"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// SelectMinimum picks one cell per row of grid so that the sum of the picked
// values is minimal and every row's column is within one of the previous
// row's column. It returns the total and the cells in row order.
func SelectMinimum(grid [][]float64) (float64, []Cell, error) {
	opts := DefaultOptions()
	sel, err := Select(grid, &opts)
	if err != nil {
		return 0, nil, err
	}

	return sel.Total, sel.Cells, nil
}

// Select runs the row-by-row dynamic program.
//
// Recurrence (n rows, m columns):
//
//	cost[0][j] = grid[0][j]
//	cost[i][j] = grid[i][j] + min(cost[i-1][k]) for k in {j, j-1, j+1} ∩ [0, m)
//
// Ties among the candidates prefer the same column, then the left one, then
// the right one. The final row's minimum is taken at its lowest column. With
// ReturnPath the stored predecessor columns are followed upward and the cells
// reversed into row order.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m) (FullTable) or O(m) (TwoRows)
//
// Errors: ErrEmptyGrid, ErrNonRectangular, ErrBadValue, ErrPathNeedsTable.
func Select(grid [][]float64, opts *Options) (Selection, error) {
	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}
	if cfg.ReturnPath && cfg.MemoryMode != FullTable {
		return Selection{}, ErrPathNeedsTable
	}

	n, m, err := validate(grid)
	if err != nil {
		return Selection{}, err
	}

	// Prepare DP storage
	rows := n
	if cfg.MemoryMode == TwoRows {
		rows = 2
	}
	cost := make([][]float64, rows)
	for i := range cost {
		cost[i] = make([]float64, m)
	}
	var from [][]int
	if cfg.MemoryMode == FullTable {
		from = make([][]int, n)
		from[0] = make([]int, m)
		for j := range from[0] {
			from[0][j] = -1 // row 0 has no predecessor
		}
	}
	copy(cost[0], grid[0])

	// Fill DP
	for i := 1; i < n; i++ {
		curr, prev := i, i-1
		if cfg.MemoryMode == TwoRows {
			curr, prev = i%2, (i-1)%2
		} else {
			from[i] = make([]int, m)
		}
		for j := 0; j < m; j++ {
			best, col := bestAbove(cost[prev], j)
			cost[curr][j] = grid[i][j] + best
			if from != nil {
				from[i][j] = col
			}
		}
	}

	// Extract the minimum of the last row
	var last []float64
	if cfg.MemoryMode == TwoRows {
		last = cost[(n-1)%2]
	} else {
		last = cost[n-1]
	}
	col := 0
	for j := 1; j < m; j++ {
		if last[j] < last[col] {
			col = j
		}
	}
	sel := Selection{Total: last[col]}

	// Backtrack if requested
	if cfg.ReturnPath {
		cells := make([]Cell, 0, n)
		for i := n - 1; i >= 0; i-- {
			cells = append(cells, Cell{Row: i, Col: col})
			col = from[i][col]
		}
		sel.Cells = lo.Reverse(cells)
	}

	cfg.Logger.WithFields(logrus.Fields{
		"rows":  n,
		"cols":  m,
		"total": sel.Total,
	}).Debug("sections: minimum selected")

	return sel, nil
}

// bestAbove returns the cheapest of the up-to-three admissible columns of the
// previous row for column j, scanning centre, left, right and replacing only
// on a strict improvement.
func bestAbove(prev []float64, j int) (float64, int) {
	best, col := prev[j], j
	if j > 0 && prev[j-1] < best {
		best, col = prev[j-1], j-1
	}
	if j+1 < len(prev) && prev[j+1] < best {
		best, col = prev[j+1], j+1
	}

	return best, col
}

// validate checks that grid is a non-empty rectangle of finite values.
func validate(grid [][]float64) (n, m int, err error) {
	n = len(grid)
	if n == 0 || len(grid[0]) == 0 {
		return 0, 0, ErrEmptyGrid
	}
	m = len(grid[0])
	for i, row := range grid {
		if len(row) != m {
			return 0, 0, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, i, len(row), m)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, 0, fmt.Errorf("%w: cell (%d,%d)=%g", ErrBadValue, i, j, v)
			}
		}
	}

	return n, m, nil
}
