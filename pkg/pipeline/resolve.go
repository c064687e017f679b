package pipeline

import (
	"context"

	"github.com/matzehuels/mazetrace/pkg/maze"
)

// Resolve turns the maze source of opts into a grid with endpoints.
//
// Presets are looked up in the runner's catalog (NOT_FOUND if absent) and
// use their stored endpoints unless opts.Start or opts.End override them.
// Custom mazes must carry both endpoints. Wall entries of a custom maze that
// are not [row, col] pairs, or lie outside the grid, are skipped.
//
// Endpoints are only checked for shape here. Bounds and walkability are the
// search's concern.
func (r *Runner) Resolve(ctx context.Context, opts Options) (Maze, error) {
	if err := opts.ValidateForSearch(); err != nil {
		return Maze{}, err
	}
	if err := ctx.Err(); err != nil {
		return Maze{}, err
	}

	if opts.IsPreset() {
		return r.resolvePreset(opts)
	}
	return resolveCustom(opts.Custom)
}

func (r *Runner) resolvePreset(opts Options) (Maze, error) {
	preset, err := r.Catalog.Get(opts.Maze)
	if err != nil {
		return Maze{}, err
	}

	m := Maze{
		Name:  preset.Name,
		Grid:  preset.Grid,
		Start: preset.Start,
		End:   preset.End,
	}
	if opts.Start != nil {
		if m.Start, err = maze.Point("start", opts.Start); err != nil {
			return Maze{}, err
		}
	}
	if opts.End != nil {
		if m.End, err = maze.Point("end", opts.End); err != nil {
			return Maze{}, err
		}
	}
	return m, nil
}

func resolveCustom(d *maze.Description) (Maze, error) {
	g, err := d.Grid()
	if err != nil {
		return Maze{}, err
	}
	start, end, err := d.Endpoints()
	if err != nil {
		return Maze{}, err
	}
	return Maze{Grid: g, Start: start, End: end}, nil
}
