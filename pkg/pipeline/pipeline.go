// Package pipeline provides the core search pipeline for mazetrace.
//
// This package implements the complete resolve → search → render pipeline
// used by both the CLI and the HTTP server. By centralizing this logic, both
// entry points validate requests and report errors identically.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Resolve: Look up a preset maze or build a custom one, and fix the endpoints
//  2. Search: Run the selected strategy over the grid
//  3. Render: Generate optional artifacts (JSON, SVG board, discovery tree)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(nil, logger)
//	opts := pipeline.Options{
//	    Algorithm: "astar",
//	    Maze:      "spiral",
//	    Formats:   []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	m, err := runner.Resolve(ctx, opts)
//	res, err := runner.Search(ctx, m, opts)
//	artifacts, err := runner.Render(ctx, m, res, opts)
package pipeline

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/mazetrace/pkg/errors"
	"github.com/matzehuels/mazetrace/pkg/grid"
	"github.com/matzehuels/mazetrace/pkg/maze"
	"github.com/matzehuels/mazetrace/pkg/render/board"
	"github.com/matzehuels/mazetrace/pkg/search"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultAlgorithm is used by the CLI when no algorithm flag is given.
	// The pipeline itself requires an explicit algorithm.
	DefaultAlgorithm = "astar"

	// DefaultCellSize is the board cell edge in pixels.
	DefaultCellSize = board.DefaultCellSize

	// DefaultAnimationStep is the delay between frames of animated boards.
	DefaultAnimationStep = 40 * time.Millisecond

	// DefaultPNGScale is the raster scale for PNG output.
	DefaultPNGScale = 2.0
)

// Format constants for output artifacts.
const (
	FormatJSON = "json" // wire response body
	FormatSVG  = "svg"  // maze board with exploration overlay
	FormatPNG  = "png"  // board rasterised in-process
	FormatPDF  = "pdf"  // board via rsvg-convert
	FormatDOT  = "dot"  // discovery tree as Graphviz source
	FormatTree = "tree" // discovery tree rendered to SVG
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatDOT:  true,
	FormatTree: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
// Exactly one of Maze and Custom must be set.
type Options struct {
	// Search options
	Algorithm string            `json:"algorithm"`
	Maze      string            `json:"maze,omitempty"`        // preset name
	Custom    *maze.Description `json:"maze_custom,omitempty"` // custom maze
	Start     []int             `json:"start,omitempty"`       // overrides the preset start
	End       []int             `json:"end,omitempty"`         // overrides the preset end
	Verify    bool              `json:"verify,omitempty"`      // check structural guarantees of the result

	// Render options
	Formats       []string      `json:"formats,omitempty"`
	CellSize      float64       `json:"cell_size,omitempty"`
	AnimationStep time.Duration `json:"animation_step,omitempty"` // 0 renders a static board
	Detailed      bool          `json:"detailed,omitempty"`       // visit order in tree labels

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// algorithm is the parsed form of Algorithm.
	algorithm search.Algorithm

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Maze is the resolved maze. Name is empty for custom mazes.
	Maze Maze

	// Search is the engine's result.
	Search *search.Result

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Response converts the result to its wire form.
func (r *Result) Response() *maze.RunResponse {
	return maze.NewRunResponse(r.Maze.Name, r.Search)
}

// Maze is a resolved maze: a grid with concrete endpoints.
type Maze struct {
	Name  string
	Grid  *grid.Grid
	Start grid.Coord
	End   grid.Coord
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Rows         int
	Cols         int
	Visited      int
	PathLength   int
	FrontierPeak int
	ResolveTime  time.Duration
	SearchTime   time.Duration
	RenderTime   time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errs.New(errs.ErrCodeInvalidInput,
			"invalid format: %q (must be one of: json, svg, png, pdf, dot, tree)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForSearch(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForSearch checks the algorithm and the maze source.
func (o *Options) ValidateForSearch() error {
	algo, err := search.ParseAlgorithm(o.Algorithm)
	if err != nil {
		return err
	}
	o.algorithm = algo

	switch {
	case o.Maze == "" && o.Custom == nil:
		return errs.New(errs.ErrCodeInvalidInput, "maze or maze_custom is required")
	case o.Maze != "" && o.Custom != nil:
		return errs.New(errs.ErrCodeInvalidInput, "maze and maze_custom are mutually exclusive")
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if o.CellSize == 0 {
		o.CellSize = DefaultCellSize
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if o.CellSize < 0 {
		return errs.New(errs.ErrCodeInvalidInput, "cell_size must be positive, got %g", o.CellSize)
	}
	if o.AnimationStep < 0 {
		return errs.New(errs.ErrCodeInvalidInput, "animation_step must not be negative")
	}
	return ValidateFormats(o.Formats)
}

// IsPreset returns true if the run targets a catalog maze.
func (o *Options) IsPreset() bool {
	return o.Maze != ""
}

// Wants reports whether format is among the requested artifacts.
func (o *Options) Wants(format string) bool {
	return slices.Contains(o.Formats, format)
}
