// Package cli implements the mazetrace command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mazetrace/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display and default file names.
	appName = "mazetrace"

	// formatText prints the board to the terminal instead of writing an artifact.
	formatText = "text"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner over the built-in presets.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(nil, c.Logger)
}

// =============================================================================
// Flag Parsing
// =============================================================================

// parseCoord parses a "row,col" flag value. An empty string yields nil so the
// preset's own endpoint is kept.
func parseCoord(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid coordinate %q (want row,col)", s)
	}
	out := make([]int, 2)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q: %w", s, err)
		}
		out[i] = v
	}
	return out, nil
}

// validateFormat accepts the terminal format plus every pipeline artifact.
func validateFormat(format string) error {
	if format == formatText {
		return nil
	}
	return pipeline.ValidateFormat(format)
}

// =============================================================================
// Output
// =============================================================================

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for path, or w when path is empty.
func openOutput(path string, w io.Writer) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{w}, nil
	}
	return os.Create(path)
}
