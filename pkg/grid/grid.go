package grid

import (
	"strings"

	errs "github.com/matzehuels/mazetrace/pkg/errors"
)

// Cell is the occupancy state of a single grid cell.
type Cell uint8

const (
	// Open cells can be entered.
	Open Cell = 0
	// Blocked cells are walls.
	Blocked Cell = 1
)

// Layout runes accepted by [FromLayout] and produced by [Grid.Layout].
const (
	LayoutOpen    = '.'
	LayoutBlocked = '#'
)

// MaxCells bounds rows × cols for every grid. Searches allocate per-cell
// state, so larger grids are rejected up front.
const MaxCells = 1 << 20

// directions is the fixed expansion order: up, down, left, right.
var directions = [4]Coord{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// Grid is an immutable rows × cols occupancy matrix.
//
// The zero value is not usable - construct grids with [New], [FromMatrix]
// or [FromLayout].
type Grid struct {
	rows  int
	cols  int
	cells []Cell // row-major
}

// New creates an all-open rows × cols grid and blocks every wall coordinate
// that lies inside it. Walls outside the grid are ignored rather than
// rejected, so a layout drawn for a larger canvas still loads.
//
// Returns a MALFORMED_GRID error if rows or cols is not positive or the grid
// would exceed [MaxCells].
func New(rows, cols int, walls []Coord) (*Grid, error) {
	if err := checkDims(rows, cols); err != nil {
		return nil, err
	}
	g := &Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
	for _, w := range walls {
		if g.InBounds(w) {
			g.cells[g.index(w)] = Blocked
		}
	}
	return g, nil
}

// FromMatrix builds a grid from a rectangular matrix where 0 is open and 1 is
// blocked. The matrix is copied.
//
// Returns a MALFORMED_GRID error for an empty matrix, rows of differing
// length, or any value other than 0 or 1.
func FromMatrix(m [][]int) (*Grid, error) {
	if len(m) == 0 {
		return nil, errs.New(errs.ErrCodeMalformedGrid, "grid has no rows")
	}
	rows, cols := len(m), len(m[0])
	if err := checkDims(rows, cols); err != nil {
		return nil, err
	}
	g := &Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
	for r, line := range m {
		if len(line) != cols {
			return nil, errs.New(errs.ErrCodeMalformedGrid,
				"row %d has %d columns, expected %d", r, len(line), cols)
		}
		for c, v := range line {
			switch v {
			case int(Open), int(Blocked):
				g.cells[r*cols+c] = Cell(v)
			default:
				return nil, errs.New(errs.ErrCodeMalformedGrid,
					"cell (%d,%d) has value %d, expected 0 or 1", r, c, v)
			}
		}
	}
	return g, nil
}

// FromLayout builds a grid from text rows where '#' marks a wall and '.' an
// open cell. Leading and trailing whitespace on each row is ignored.
//
// Returns a MALFORMED_GRID error for an empty layout, rows of differing
// length, or any other rune.
func FromLayout(lines []string) (*Grid, error) {
	m := make([][]int, 0, len(lines))
	for r, line := range lines {
		line = strings.TrimSpace(line)
		row := make([]int, 0, len(line))
		for c, ch := range line {
			switch ch {
			case LayoutOpen:
				row = append(row, int(Open))
			case LayoutBlocked:
				row = append(row, int(Blocked))
			default:
				return nil, errs.New(errs.ErrCodeMalformedGrid,
					"layout row %d has invalid rune %q at offset %d", r, ch, c)
			}
		}
		m = append(m, row)
	}
	return FromMatrix(m)
}

func checkDims(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return errs.New(errs.ErrCodeMalformedGrid,
			"grid dimensions must be positive, got %dx%d", rows, cols)
	}
	// Divide rather than multiply so the check cannot overflow.
	if rows > MaxCells/cols {
		return errs.New(errs.ErrCodeMalformedGrid,
			"grid %dx%d exceeds the limit of %d cells", rows, cols, MaxCells)
	}
	return nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns rows × cols, the upper bound on expansions of any search.
func (g *Grid) Size() int { return g.rows * g.cols }

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the state of c. Out-of-bounds coordinates report Blocked.
func (g *Grid) At(c Coord) Cell {
	if !g.InBounds(c) {
		return Blocked
	}
	return g.cells[g.index(c)]
}

// IsWalkable reports whether c is inside the grid and open.
func (g *Grid) IsWalkable(c Coord) bool {
	return g.InBounds(c) && g.cells[g.index(c)] == Open
}

// Neighbors returns the in-bounds 4-neighbours of c in the order up, down,
// left, right. Blocked neighbours are included.
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(directions))
	for _, d := range directions {
		if n := c.Add(d); g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Index returns the row-major index of c. The result is only meaningful for
// in-bounds coordinates.
func (g *Grid) Index(c Coord) int { return g.index(c) }

// CoordAt is the inverse of [Grid.Index].
func (g *Grid) CoordAt(i int) Coord {
	return Coord{Row: i / g.cols, Col: i % g.cols}
}

func (g *Grid) index(c Coord) int { return c.Row*g.cols + c.Col }

// Matrix returns a fresh 0/1 matrix of the grid.
func (g *Grid) Matrix() [][]int {
	m := make([][]int, g.rows)
	for r := range m {
		m[r] = make([]int, g.cols)
		for c := range m[r] {
			m[r][c] = int(g.cells[r*g.cols+c])
		}
	}
	return m
}

// Walls returns every blocked coordinate in row-major order.
func (g *Grid) Walls() []Coord {
	var walls []Coord
	for i, cell := range g.cells {
		if cell == Blocked {
			walls = append(walls, g.CoordAt(i))
		}
	}
	return walls
}

// Layout renders the grid with [LayoutBlocked] and [LayoutOpen] runes,
// one string per row. It round-trips through [FromLayout].
func (g *Grid) Layout() []string {
	lines := make([]string, g.rows)
	var b strings.Builder
	for r := range lines {
		b.Reset()
		for c := 0; c < g.cols; c++ {
			if g.cells[r*g.cols+c] == Blocked {
				b.WriteRune(LayoutBlocked)
			} else {
				b.WriteRune(LayoutOpen)
			}
		}
		lines[r] = b.String()
	}
	return lines
}

// String returns the layout joined by newlines.
func (g *Grid) String() string {
	return strings.Join(g.Layout(), "\n")
}
