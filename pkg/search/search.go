package search

import (
	errs "github.com/matzehuels/mazetrace/pkg/errors"
	"github.com/matzehuels/mazetrace/pkg/grid"
)

// noParent marks the start cell and undiscovered cells in the parent table.
const noParent = -1

// Run searches g for a path from start to end with the given algorithm.
//
// Preconditions are checked before any traversal state is allocated:
//   - algo must be one of BFS, DFS, Greedy, AStar (UNKNOWN_ALGORITHM)
//   - g must be non-nil (MALFORMED_GRID)
//   - start and end must be in bounds and open (INVALID_ENDPOINT)
//
// An unreachable end is not an error: the result has Found == false and an
// empty path. When start == end the result is found immediately with a
// single-cell path and a single-cell trace.
//
// Run is a pure function of its arguments and safe to call concurrently.
func Run(algo Algorithm, g *grid.Grid, start, end grid.Coord) (*Result, error) {
	if !algo.Valid() {
		return nil, errs.New(errs.ErrCodeUnknownAlgorithm, "unknown algorithm %d", int(algo))
	}
	if g == nil {
		return nil, errs.New(errs.ErrCodeMalformedGrid, "grid is nil")
	}
	if err := checkEndpoint(g, "start", start); err != nil {
		return nil, err
	}
	if err := checkEndpoint(g, "end", end); err != nil {
		return nil, err
	}

	if start == end {
		return &Result{
			Algorithm: algo,
			Found:     true,
			Visited:   []grid.Coord{start},
			Path:      []grid.Coord{start},
			Tree:      []Edge{},
		}, nil
	}

	return newRun(algo, g, end).execute(start), nil
}

// RunNamed parses name with [ParseAlgorithm] and calls [Run].
func RunNamed(name string, g *grid.Grid, start, end grid.Coord) (*Result, error) {
	algo, err := ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}
	return Run(algo, g, start, end)
}

func checkEndpoint(g *grid.Grid, label string, c grid.Coord) error {
	if !g.InBounds(c) {
		return errs.New(errs.ErrCodeInvalidEndpoint,
			"%s %v is outside the %dx%d grid", label, c, g.Rows(), g.Cols())
	}
	if !g.IsWalkable(c) {
		return errs.New(errs.ErrCodeInvalidEndpoint, "%s %v is a wall", label, c)
	}
	return nil
}

// run holds the state of a single search. Cells are addressed by their
// row-major grid index.
type run struct {
	algo     Algorithm
	grid     *grid.Grid
	goal     grid.Coord
	frontier frontier

	visited []bool
	parent  []int
	cost    []int // best known g; -1 until discovered
	seq     int
	peak    int

	trace []grid.Coord
	tree  []Edge
}

func newRun(algo Algorithm, g *grid.Grid, goal grid.Coord) *run {
	size := g.Size()
	r := &run{
		algo:     algo,
		grid:     g,
		goal:     goal,
		frontier: newFrontier(algo, size),
		visited:  make([]bool, size),
		parent:   make([]int, size),
		cost:     make([]int, size),
	}
	for i := range r.parent {
		r.parent[i] = noParent
		r.cost[i] = -1
	}
	return r
}

func (r *run) execute(start grid.Coord) *Result {
	goalIdx := r.grid.Index(r.goal)
	r.discover(r.grid.Index(start), noParent, 0)

	for r.frontier.len() > 0 {
		e := r.frontier.pop()
		if r.visited[e.cell] {
			continue
		}
		r.visited[e.cell] = true

		cur := r.grid.CoordAt(e.cell)
		r.trace = append(r.trace, cur)
		if p := r.parent[e.cell]; p != noParent {
			r.tree = append(r.tree, Edge{From: r.grid.CoordAt(p), To: cur})
		}

		if e.cell == goalIdx {
			return r.result(r.reconstruct(goalIdx))
		}
		r.expand(e.cell, cur)
	}
	return r.result(nil)
}

// expand relaxes every walkable, unvisited neighbour of cur.
func (r *run) expand(idx int, cur grid.Coord) {
	next := r.cost[idx] + 1
	for _, n := range r.grid.Neighbors(cur) {
		if !r.grid.IsWalkable(n) {
			continue
		}
		ni := r.grid.Index(n)
		if r.visited[ni] {
			continue
		}
		known := r.cost[ni]

		switch r.algo {
		case BFS, DFS:
			// First discovery wins.
			if known < 0 {
				r.discover(ni, idx, next)
			}
		case Greedy:
			// The key ignores g, so a cheaper route only re-parents.
			if known < 0 {
				r.discover(ni, idx, next)
			} else if next < known {
				r.parent[ni] = idx
				r.cost[ni] = next
			}
		case AStar:
			if known < 0 || next < known {
				r.discover(ni, idx, next)
			}
		}
	}
}

// discover records a route to cell and pushes it onto the frontier.
func (r *run) discover(cell, parent, g int) {
	r.parent[cell] = parent
	r.cost[cell] = g
	r.frontier.push(entry{
		cell: cell,
		g:    g,
		h:    grid.Manhattan(r.grid.CoordAt(cell), r.goal),
		seq:  r.seq,
	})
	r.seq++
	if n := r.frontier.len(); n > r.peak {
		r.peak = n
	}
}

// reconstruct follows parent links from goal back to the start and returns
// the path in start-to-goal order.
func (r *run) reconstruct(goal int) []grid.Coord {
	var path []grid.Coord
	for cur := goal; cur != noParent; cur = r.parent[cur] {
		path = append(path, r.grid.CoordAt(cur))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func (r *run) result(path []grid.Coord) *Result {
	res := &Result{
		Algorithm:    r.algo,
		Found:        path != nil,
		Visited:      r.trace,
		Path:         path,
		Tree:         r.tree,
		FrontierPeak: r.peak,
	}
	if res.Found {
		res.Length = len(path) - 1
	}
	if res.Path == nil {
		res.Path = []grid.Coord{}
	}
	if res.Tree == nil {
		res.Tree = []Edge{}
	}
	return res
}
