package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/matzehuels/mazetrace/pkg/pipeline"
)

// fileExt maps an artifact format to its file extension. The discovery tree
// is an SVG document.
func fileExt(format string) string {
	if format == pipeline.FormatTree {
		return "svg"
	}
	return format
}

// defaultOutput derives an output file name such as "spiral_astar.svg" or
// "spiral_astar_tree.svg" from the maze and algorithm.
func defaultOutput(mazeName, algorithm, format string) string {
	if mazeName == "" {
		mazeName = "custom"
	}
	base := mazeName + "_" + algorithm
	if format == pipeline.FormatTree {
		base += "_tree"
	}
	return base + "." + fileExt(format)
}

// basePath derives an output stem from the input file, stripping its
// extension, e.g. "mazes/room.toml" becomes "mazes/room".
func basePath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input))
}

// textual reports whether a format is safe to print to a terminal.
func textual(format string) bool {
	return format == pipeline.FormatJSON || format == pipeline.FormatDOT
}

// writeArtifact writes data for format to the chosen destination. Textual
// formats go to w when no output path is given; binary ones always go to a
// file so they never spill onto the terminal.
func writeArtifact(ctx context.Context, w io.Writer, data []byte, format, output, fallback string) (string, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	path := output
	if path == "" && !textual(format) {
		path = fallback
	}

	out, err := openOutput(path, w)
	if err != nil {
		return "", fmt.Errorf("open output: %w", err)
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return "", fmt.Errorf("write %s: %w", format, err)
	}
	if path != "" {
		prog.done(fmt.Sprintf("Wrote %s (%d bytes)", path, len(data)))
	}
	return path, nil
}
