package maze

import (
	errs "github.com/matzehuels/mazetrace/pkg/errors"
	"github.com/matzehuels/mazetrace/pkg/grid"
)

// Description is a maze as clients describe it: dimensions, a wall list and
// the two endpoints. Coordinates are [row, col] pairs.
//
// Walls are lenient: entries that are not pairs, and pairs outside the grid,
// are skipped. Endpoints are strict: anything but an in-bounds open pair is
// rejected when the search runs.
type Description struct {
	Rows  int     `json:"rows" toml:"rows"`
	Cols  int     `json:"cols" toml:"cols"`
	Walls [][]int `json:"walls" toml:"walls"`
	Start []int   `json:"start" toml:"start"`
	End   []int   `json:"end" toml:"end"`
}

// Describe builds a Description from a grid and its endpoints.
func Describe(g *grid.Grid, start, end grid.Coord) *Description {
	walls := g.Walls()
	d := &Description{
		Rows:  g.Rows(),
		Cols:  g.Cols(),
		Walls: make([][]int, len(walls)),
		Start: []int{start.Row, start.Col},
		End:   []int{end.Row, end.Col},
	}
	for i, w := range walls {
		d.Walls[i] = []int{w.Row, w.Col}
	}
	return d
}

// Grid builds the occupancy grid. Non-positive dimensions fail with
// MALFORMED_GRID.
func (d *Description) Grid() (*grid.Grid, error) {
	walls := make([]grid.Coord, 0, len(d.Walls))
	for _, w := range d.Walls {
		if len(w) != 2 {
			continue
		}
		walls = append(walls, grid.C(w[0], w[1]))
	}
	return grid.New(d.Rows, d.Cols, walls)
}

// Endpoints returns the start and end coordinates. A missing or non-pair
// endpoint fails with INVALID_ENDPOINT; bounds and walkability are checked by
// the search itself.
func (d *Description) Endpoints() (start, end grid.Coord, err error) {
	if start, err = Point("start", d.Start); err != nil {
		return
	}
	end, err = Point("end", d.End)
	return
}

// Point converts a [row, col] pair into a coordinate.
func Point(label string, p []int) (grid.Coord, error) {
	if len(p) != 2 {
		return grid.Coord{}, errs.New(errs.ErrCodeInvalidEndpoint,
			"%s must be a [row, col] pair, got %d values", label, len(p))
	}
	return grid.C(p[0], p[1]), nil
}
