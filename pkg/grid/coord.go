package grid

import (
	"encoding/json"
	"fmt"
)

// Coord identifies a cell by row and column. Coordinates are plain values and
// may lie outside any particular grid; [Grid.InBounds] decides validity.
//
// The JSON form is a two-element array, [row, col].
type Coord struct {
	Row int
	Col int
}

// C is shorthand for Coord{Row: row, Col: col}.
func C(row, col int) Coord { return Coord{Row: row, Col: col} }

// String formats the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns c shifted by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// MarshalJSON encodes the coordinate as [row, col].
func (c Coord) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{c.Row, c.Col})
}

// UnmarshalJSON decodes a [row, col] pair. Arrays of any other length are rejected.
func (c *Coord) UnmarshalJSON(data []byte) error {
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("coordinate must be a [row, col] array: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("coordinate must have exactly 2 elements, got %d", len(pair))
	}
	c.Row, c.Col = pair[0], pair[1]
	return nil
}

// Manhattan returns |Δrow| + |Δcol| between a and b.
func Manhattan(a, b Coord) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// Adjacent reports whether a and b differ by exactly one step in one axis.
func Adjacent(a, b Coord) bool {
	return Manhattan(a, b) == 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
