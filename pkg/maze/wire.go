package maze

import (
	"github.com/matzehuels/mazetrace/pkg/grid"
	"github.com/matzehuels/mazetrace/pkg/search"
)

// RunRequest asks for a search over a custom maze.
type RunRequest struct {
	Algorithm string       `json:"algorithm"`
	Custom    *Description `json:"maze_custom"`
}

// PresetRequest asks for a search over a catalog maze. The algorithm is
// taken from the route.
type PresetRequest struct {
	MazeName string `json:"maze_name"`
	Start    []int  `json:"start"`
	End      []int  `json:"end"`
}

// RunResponse is the wire form of a search result.
type RunResponse struct {
	Algorithm string        `json:"algorithm"`
	Maze      string        `json:"maze,omitempty"`
	Found     bool          `json:"found"`
	Path      []grid.Coord  `json:"path"`
	Visited   []grid.Coord  `json:"visited"`
	Length    int           `json:"length"`
	Steps     []search.Step `json:"steps"`
}

// NewRunResponse converts a search result. name is the catalog maze, empty
// for custom mazes.
func NewRunResponse(name string, res *search.Result) *RunResponse {
	return &RunResponse{
		Algorithm: res.Algorithm.String(),
		Maze:      name,
		Found:     res.Found,
		Path:      res.Path,
		Visited:   res.Visited,
		Length:    res.Length,
		Steps:     res.Steps(),
	}
}

// Info is the wire form of a catalog maze: its occupancy matrix plus the
// suggested endpoints.
type Info struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Rows        int        `json:"rows"`
	Cols        int        `json:"cols"`
	Grid        [][]int    `json:"grid"`
	Start       grid.Coord `json:"start"`
	End         grid.Coord `json:"end"`
}

// NewInfo builds the wire form of a named maze.
func NewInfo(name, description string, g *grid.Grid, start, end grid.Coord) *Info {
	return &Info{
		Name:        name,
		Description: description,
		Rows:        g.Rows(),
		Cols:        g.Cols(),
		Grid:        g.Matrix(),
		Start:       start,
		End:         end,
	}
}

// ListResponse names the available catalog mazes.
type ListResponse struct {
	Mazes []string `json:"mazes"`
}
