// Package grid provides the immutable occupancy grid that mazes are searched on.
//
// # Overview
//
// A [Grid] is a rows × cols matrix of cells, each either [Open] or [Blocked].
// Dimensions are fixed at construction and the cells are never mutated
// afterwards, so a single Grid can be shared by any number of concurrent
// searches without locking.
//
// # Construction
//
// Grids are built from one of three descriptions:
//
//   - [New]: dimensions plus a list of wall coordinates. Walls outside the
//     grid are silently ignored.
//   - [FromMatrix]: a rectangular 0/1 matrix (0 = open, 1 = blocked).
//   - [FromLayout]: rows of text where '#' is a wall and '.' is open.
//
// Malformed descriptions (non-positive dimensions, ragged rows, unknown cell
// values) fail with an error coded MALFORMED_GRID. So does any grid with more
// than [MaxCells] cells (1<<20, e.g. 1024 × 1024).
//
// # Adjacency
//
// Movement is 4-connected. [Grid.Neighbors] always yields candidates in the
// order up, down, left, right and filters out only off-grid cells; callers
// check [Grid.IsWalkable] themselves. The fixed order is what makes search
// traces reproducible.
package grid
