package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/mazetrace/pkg/errors"
	mio "github.com/matzehuels/mazetrace/pkg/io"
	"github.com/matzehuels/mazetrace/pkg/pipeline"
	"github.com/matzehuels/mazetrace/pkg/search"
)

// runOpts holds the command-line flags for the run command.
type runOpts struct {
	algorithm string        // bfs, dfs, greedy or astar
	maze      string        // preset name
	file      string        // custom maze file (.json or .toml)
	start     string        // "row,col" override
	end       string        // "row,col" override
	format    string        // text or a pipeline format
	output    string        // output file path
	animate   bool          // play the search back in the terminal (text) or in the SVG
	verify    bool          // check the result's structural guarantees
	detailed  bool          // visit order in tree labels
	cellSize  float64       // board cell edge in pixels
	step      time.Duration // delay between frames
}

// runCommand creates the run command, which searches one maze and shows or
// writes the result.
func (c *CLI) runCommand() *cobra.Command {
	opts := runOpts{
		algorithm: pipeline.DefaultAlgorithm,
		format:    formatText,
		cellSize:  pipeline.DefaultCellSize,
		step:      pipeline.DefaultAnimationStep,
	}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Search a maze and show the exploration",
		Long: `Search a preset or custom maze with one strategy.

The text format prints the board with visited cells and the path. Every other
format is written to a file named after the maze and algorithm unless -o is
given; json and dot print to stdout when no output file is set.`,
		Example: `  mazetrace run --maze spiral
  mazetrace run -a bfs --maze detour --start 0,0 --end 7,11
  mazetrace run -a greedy --file room.toml --animate
  mazetrace run -a astar --maze corridors -f svg --animate -o corridors.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSearch(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", opts.algorithm, "search strategy: bfs, dfs, greedy, astar")
	cmd.Flags().StringVarP(&opts.maze, "maze", "m", "", "preset maze name (see 'mazetrace mazes list')")
	cmd.Flags().StringVar(&opts.file, "file", "", "custom maze file (.json or .toml)")
	cmd.Flags().StringVar(&opts.start, "start", "", "start cell as row,col (overrides the preset)")
	cmd.Flags().StringVar(&opts.end, "end", "", "end cell as row,col (overrides the preset)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text, json, svg, png, pdf, dot, tree")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file")
	cmd.Flags().BoolVar(&opts.animate, "animate", false, "animate the exploration (terminal playback for text, SMIL for svg; other formats are rejected)")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "check path and trace invariants of the result")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show visit order in tree labels")
	cmd.Flags().Float64Var(&opts.cellSize, "cell-size", opts.cellSize, "board cell size in pixels")
	cmd.Flags().DurationVar(&opts.step, "step", opts.step, "delay between animation frames")
	cmd.MarkFlagsMutuallyExclusive("maze", "file")
	cmd.MarkFlagsOneRequired("maze", "file")

	_ = cmd.RegisterFlagCompletionFunc("algorithm", completeAlgorithms)
	_ = cmd.RegisterFlagCompletionFunc("maze", completeMazes)
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)

	return cmd
}

// pipelineOptions turns flags into pipeline options.
func (o runOpts) pipelineOptions() (pipeline.Options, error) {
	if err := validateFormat(o.format); err != nil {
		return pipeline.Options{}, err
	}
	if o.animate && o.format != formatText && o.format != pipeline.FormatSVG {
		return pipeline.Options{}, errs.New(errs.ErrCodeInvalidInput,
			"--animate applies to text and svg output, not %s", o.format)
	}
	start, err := parseCoord(o.start)
	if err != nil {
		return pipeline.Options{}, err
	}
	end, err := parseCoord(o.end)
	if err != nil {
		return pipeline.Options{}, err
	}

	opts := pipeline.Options{
		Algorithm: o.algorithm,
		Maze:      o.maze,
		Verify:    o.verify,
		CellSize:  o.cellSize,
		Detailed:  o.detailed,
	}
	if o.format != formatText {
		opts.Formats = []string{o.format}
	}
	if o.animate && o.format == pipeline.FormatSVG {
		opts.AnimationStep = o.step
	}

	if o.file != "" {
		d, err := mio.Import(o.file)
		if err != nil {
			return pipeline.Options{}, err
		}
		// Flags override the endpoints stored in the file.
		if start != nil {
			d.Start = start
		}
		if end != nil {
			d.End = end
		}
		opts.Custom = d
		return opts, nil
	}

	opts.Start, opts.End = start, end
	return opts, nil
}

func (c *CLI) runSearch(ctx context.Context, w io.Writer, o runOpts) error {
	logger := loggerFromContext(ctx)

	opts, err := o.pipelineOptions()
	if err != nil {
		return err
	}
	opts.Logger = logger

	result, err := c.newRunner().Execute(ctx, opts)
	if err != nil {
		return err
	}

	if o.format == formatText {
		if o.animate {
			return playback(ctx, w, result, o.step)
		}
		printResult(w, result)
		return nil
	}

	name := result.Maze.Name
	if name == "" && o.file != "" {
		name = basePath(o.file)
	}
	fallback := defaultOutput(name, result.Search.Algorithm.String(), o.format)

	path, err := writeArtifact(ctx, w, result.Artifacts[o.format], o.format, o.output, fallback)
	if err != nil {
		return err
	}
	if path != "" {
		printSuccess(w, "%s", pipeline.Title(result.Maze, result.Search))
		printFile(w, path)
	}
	return nil
}

// printResult prints the final board and a summary of the search.
func printResult(w io.Writer, result *pipeline.Result) {
	m, res := result.Maze, result.Search
	fmt.Fprintln(w, StyleTitle.Render(pipeline.Title(m, res)))
	fmt.Fprintln(w)
	fmt.Fprintln(w, boardView{
		grid:    m.Grid,
		start:   m.Start,
		end:     m.End,
		visited: res.Visited,
		path:    res.Path,
	}.render())
	fmt.Fprintln(w)
	fmt.Fprintln(w, legend())
	fmt.Fprintln(w)

	if res.Found {
		printKeyValue(w, "length", StyleNumber.Render(fmt.Sprint(res.Length)))
	} else {
		printWarning(w, "no path from %v to %v", m.Start, m.End)
	}
	printKeyValue(w, "visited", StyleNumber.Render(fmt.Sprintf("%d of %d open cells", len(res.Visited), openCells(result))))
	printStats(w,
		fmt.Sprintf("%dx%d", result.Stats.Rows, result.Stats.Cols),
		fmt.Sprintf("frontier peak %d", result.Stats.FrontierPeak),
		fmt.Sprintf("searched in %s", result.Stats.SearchTime.Round(time.Microsecond)))
	if res.Algorithm.Optimal() {
		printInfo(w, "%s paths are shortest", res.Algorithm)
	} else if res.Found {
		printInfo(w, "%s paths are not guaranteed shortest; compare with -a %s", res.Algorithm, search.BFS)
	}
}

func openCells(result *pipeline.Result) int {
	g := result.Maze.Grid
	return g.Size() - len(g.Walls())
}
