package sections

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

var (
	// ErrInvalidInput is the category every grid validation error wraps.
	ErrInvalidInput = errors.New("sections: invalid input")

	// ErrEmptyGrid indicates the grid has no rows or its rows have no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrInvalidInput)

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrInvalidInput)

	// ErrBadValue indicates a NaN or infinite cell.
	ErrBadValue = fmt.Errorf("%w: cell values must be finite", ErrInvalidInput)

	// ErrPathNeedsTable indicates ReturnPath was requested with MemoryMode=TwoRows.
	ErrPathNeedsTable = errors.New("sections: ReturnPath requires MemoryMode=FullTable")
)

// MemoryMode controls how Select stores its decision table.
//
//   - FullTable – keep all n rows of (cost, previous column) entries.
//     Allows the selected cells to be recovered. Memory: O(n·m).
//
//   - TwoRows   – keep only the previous and current cost rows.
//     Returns the minimum total without cells. Memory: O(m).
type MemoryMode int

const (
	// FullTable stores every row and supports backtracking.
	FullTable MemoryMode = iota

	// TwoRows stores two cost rows only; no backtracking.
	TwoRows
)

// Options configures Select.
//
// Fields:
//   - ReturnPath – if true, Select backtracks and fills Selection.Cells.
//     Requires MemoryMode=FullTable.
//   - MemoryMode – FullTable or TwoRows.
//   - Logger     – receives a Debug summary; nil means the logrus standard logger.
type Options struct {
	ReturnPath bool
	MemoryMode MemoryMode
	Logger     logrus.FieldLogger
}

// DefaultOptions returns options that recover the selected cells.
func DefaultOptions() Options {
	return Options{
		ReturnPath: true,
		MemoryMode: FullTable,
		Logger:     logrus.StandardLogger(),
	}
}

// Cell addresses one grid entry.
type Cell struct {
	Row int
	Col int
}

// Selection is the result of Select.
// Cells holds one cell per row in ascending row order, or nil when
// ReturnPath is off.
type Selection struct {
	Total float64
	Cells []Cell
}
