package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mazetrace/pkg/catalog"
	errs "github.com/matzehuels/mazetrace/pkg/errors"
	"github.com/matzehuels/mazetrace/pkg/observability"
	"github.com/matzehuels/mazetrace/pkg/search"
)

// Runner encapsulates pipeline execution.
// Both CLI and API use it so that a request behaves the same on either side.
//
// The Runner holds only the preset catalog and a logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Catalog *catalog.Catalog
	Logger  *log.Logger
}

// NewRunner creates a runner over the given catalog.
// If cat is nil, the built-in presets are used.
func NewRunner(cat *catalog.Catalog, logger *log.Logger) *Runner {
	if cat == nil {
		cat = catalog.Default()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Catalog: cat,
		Logger:  logger,
	}
}

// Execute runs the complete resolve → search → render pipeline.
//
// Every input error is reported before the search allocates any state. The
// returned error carries a code from package errors.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	// Stage 1: Resolve
	resolveStart := time.Now()
	m, err := r.Resolve(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Maze = m
	result.Stats.ResolveTime = time.Since(resolveStart)
	result.Stats.Rows = m.Grid.Rows()
	result.Stats.Cols = m.Grid.Cols()

	opts.Logger.Debug("resolved maze",
		"maze", displayName(m.Name),
		"rows", m.Grid.Rows(),
		"cols", m.Grid.Cols(),
		"start", m.Start,
		"end", m.End)

	// Stage 2: Search
	searchStart := time.Now()
	res, err := r.Search(ctx, m, opts)
	if err != nil {
		return nil, err
	}
	result.Search = res
	result.Stats.SearchTime = time.Since(searchStart)
	result.Stats.Visited = len(res.Visited)
	result.Stats.PathLength = res.Length
	result.Stats.FrontierPeak = res.FrontierPeak

	opts.Logger.Info("searched maze",
		"algorithm", res.Algorithm,
		"maze", displayName(m.Name),
		"found", res.Found,
		"length", res.Length,
		"visited", len(res.Visited),
		"duration", result.Stats.SearchTime)

	// Stage 3: Render
	if len(opts.Formats) > 0 {
		renderStart := time.Now()
		artifacts, err := r.Render(ctx, m, res, opts)
		if err != nil {
			return nil, err
		}
		result.Artifacts = artifacts
		result.Stats.RenderTime = time.Since(renderStart)

		opts.Logger.Info("rendered outputs",
			"formats", opts.Formats,
			"duration", result.Stats.RenderTime)
	}

	return result, nil
}

// Search runs the selected strategy over a resolved maze.
func (r *Runner) Search(ctx context.Context, m Maze, opts Options) (*search.Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForSearch(); err != nil {
		return nil, err
	}
	if m.Grid == nil {
		return nil, errs.New(errs.ErrCodeMalformedGrid, "maze has no grid")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnSearchStart(ctx, opts.algorithm.String(), m.Name, m.Grid.Rows(), m.Grid.Cols())

	start := time.Now()
	res, err := search.Run(opts.algorithm, m.Grid, m.Start, m.End)
	if err == nil && opts.Verify {
		if verr := res.Validate(m.Grid); verr != nil {
			err = errs.Wrap(errs.ErrCodeInternal, verr, "%s produced an invalid result", opts.algorithm)
		}
	}

	visited, found := 0, false
	if res != nil {
		visited, found = len(res.Visited), res.Found
	}
	hooks.OnSearchComplete(ctx, opts.algorithm.String(), m.Name, visited, found, time.Since(start), err)

	if err != nil {
		return nil, err
	}
	return res, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func displayName(name string) string {
	if name == "" {
		return "custom"
	}
	return name
}
