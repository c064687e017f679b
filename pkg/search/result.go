package search

import (
	"fmt"

	"github.com/matzehuels/mazetrace/pkg/grid"
)

// Result is the outcome of a single search. It is created fresh by [Run] and
// owned by the caller.
type Result struct {
	// Algorithm is the strategy that produced the result.
	Algorithm Algorithm `json:"algorithm"`

	// Found reports whether the end cell was reached.
	Found bool `json:"found"`

	// Path lists the cells from start to end inclusive. Empty when not found.
	Path []grid.Coord `json:"path"`

	// Visited lists expanded cells in expansion order, without duplicates.
	Visited []grid.Coord `json:"visited"`

	// Length is the number of edges in Path (len(Path)-1), 0 when not found.
	Length int `json:"length"`

	// Tree holds one parent-to-child edge per visited cell except the start,
	// in visitation order.
	Tree []Edge `json:"-"`

	// FrontierPeak is the largest frontier size observed during the run.
	FrontierPeak int `json:"-"`
}

// Edge links a cell to the cell it was discovered from.
type Edge struct {
	From grid.Coord `json:"from"`
	To   grid.Coord `json:"to"`
}

// Step is one frame of the exploration animation.
type Step struct {
	// Cell is the cell expanded in this frame.
	Cell grid.Coord `json:"cell"`
	// FromStart is the index of the start cell the expansion originated
	// from. Searches have a single start, so it is always 0.
	FromStart int `json:"from_start"`
	// Initial marks the start cell's frame.
	Initial bool `json:"initial,omitempty"`
}

// Steps returns the visitation trace as animation frames.
func (r *Result) Steps() []Step {
	steps := make([]Step, len(r.Visited))
	for i, c := range r.Visited {
		steps[i] = Step{Cell: c, Initial: i == 0}
	}
	return steps
}

// Start returns the first visited cell, which is always the start.
func (r *Result) Start() grid.Coord {
	if len(r.Visited) == 0 {
		return grid.Coord{}
	}
	return r.Visited[0]
}

// Validate checks the structural guarantees of a result against the grid it
// was computed on:
//   - Visited is non-empty and has no duplicates
//   - every visited cell is walkable
//   - when found, Path runs from the first visited cell through adjacent
//     walkable cells and Length == len(Path)-1
//   - when not found, Path is empty and Length is 0
func (r *Result) Validate(g *grid.Grid) error {
	if len(r.Visited) == 0 {
		return fmt.Errorf("visited trace is empty")
	}
	seen := make(map[grid.Coord]bool, len(r.Visited))
	for _, c := range r.Visited {
		if seen[c] {
			return fmt.Errorf("cell %v visited twice", c)
		}
		if !g.IsWalkable(c) {
			return fmt.Errorf("visited cell %v is not walkable", c)
		}
		seen[c] = true
	}

	if !r.Found {
		if len(r.Path) != 0 || r.Length != 0 {
			return fmt.Errorf("unfound result has path of %d cells and length %d", len(r.Path), r.Length)
		}
		return nil
	}

	if len(r.Path) == 0 {
		return fmt.Errorf("found result has empty path")
	}
	if r.Path[0] != r.Visited[0] {
		return fmt.Errorf("path starts at %v, want %v", r.Path[0], r.Visited[0])
	}
	if last := r.Path[len(r.Path)-1]; last != r.Visited[len(r.Visited)-1] {
		return fmt.Errorf("path ends at %v, want %v", last, r.Visited[len(r.Visited)-1])
	}
	if r.Length != len(r.Path)-1 {
		return fmt.Errorf("length %d does not match path of %d cells", r.Length, len(r.Path))
	}
	for i, c := range r.Path {
		if !g.IsWalkable(c) {
			return fmt.Errorf("path cell %v is not walkable", c)
		}
		if i > 0 && !grid.Adjacent(r.Path[i-1], c) {
			return fmt.Errorf("path cells %v and %v are not adjacent", r.Path[i-1], c)
		}
	}
	return nil
}
