// Package sections selects one cell per row of a cost grid under a
// neighbouring-column constraint.
//
// Given an n×m grid, Select picks exactly one column in every row so that
// consecutive rows' columns differ by at most one and the sum of the picked
// values is minimal. A typical use is removing one section per floor of a
// building where removed sections must stack within one column of each other.
//
// The solution is a bottom-up dynamic program over a decision table whose
// entry (i, j) holds the cheapest cumulative cost of ending row i at column j
// together with the column used in row i-1. Backtracking follows those stored
// columns, so recovering the cells costs O(n).
//
// Tie-breaking is deterministic:
//
//   - among the candidate columns of the previous row: same column, then left, then right;
//   - in the last row: the lowest column attaining the minimum.
//
// Memory modes mirror the usual DP trade-off: FullTable keeps the whole table
// and can return the cells, TwoRows keeps two rows and returns the total only.
package sections
