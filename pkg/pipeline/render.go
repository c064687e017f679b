package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	errs "github.com/matzehuels/mazetrace/pkg/errors"
	"github.com/matzehuels/mazetrace/pkg/maze"
	"github.com/matzehuels/mazetrace/pkg/observability"
	"github.com/matzehuels/mazetrace/pkg/render"
	"github.com/matzehuels/mazetrace/pkg/render/board"
	"github.com/matzehuels/mazetrace/pkg/render/tree"
	"github.com/matzehuels/mazetrace/pkg/search"
)

// Render generates output artifacts for a finished search in the requested
// formats. Formats are rendered in order and the first failure aborts.
func (r *Runner) Render(ctx context.Context, m Maze, res *search.Result, opts Options) (map[string][]byte, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if _, done := artifacts[format]; done {
			continue
		}

		hooks.OnRenderStart(ctx, format)
		start := time.Now()
		data, err := RenderFormat(format, m, res, opts)
		hooks.OnRenderComplete(ctx, format, len(data), time.Since(start), err)
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInternal, err, "render %s", format)
		}

		opts.Logger.Debug("rendered artifact", "format", format, "bytes", len(data))
		artifacts[format] = data
	}

	return artifacts, nil
}

// RenderFormat produces a single artifact.
func RenderFormat(format string, m Maze, res *search.Result, opts Options) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(maze.NewRunResponse(m.Name, res), "", "  ")
	case FormatSVG:
		return renderBoard(m, res, opts), nil
	case FormatPNG:
		return board.RenderPNG(m.Grid, res, &board.Endpoints{Start: m.Start, End: m.End}, opts.CellSize, DefaultPNGScale)
	case FormatPDF:
		return render.ToPDF(renderBoard(m, res, opts))
	case FormatDOT:
		return []byte(tree.ToDOT(res, tree.Options{Detailed: opts.Detailed})), nil
	case FormatTree:
		return tree.RenderSVG(tree.ToDOT(res, tree.Options{Detailed: opts.Detailed}))
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func renderBoard(m Maze, res *search.Result, opts Options) []byte {
	svgOpts := []board.SVGOption{
		board.WithCellSize(opts.CellSize),
		board.WithTitle(Title(m, res)),
		board.WithEndpoints(m.Start, m.End),
	}
	if opts.AnimationStep > 0 {
		svgOpts = append(svgOpts, board.WithAnimation(opts.AnimationStep))
	}
	return board.RenderSVG(m.Grid, res, svgOpts...)
}

// Title summarises a run in one line, e.g. "astar on spiral: length 44, 45 visited".
func Title(m Maze, res *search.Result) string {
	if !res.Found {
		return fmt.Sprintf("%s on %s: no path, %d visited", res.Algorithm, displayName(m.Name), len(res.Visited))
	}
	return fmt.Sprintf("%s on %s: length %d, %d visited", res.Algorithm, displayName(m.Name), res.Length, len(res.Visited))
}
