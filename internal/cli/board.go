package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/mazetrace/pkg/grid"
)

// Board glyphs. Each cell is drawn as its glyph followed by a space so the
// board keeps a roughly square aspect in a terminal.
const (
	glyphOpen    = "."
	glyphWall    = "#"
	glyphVisited = "o"
	glyphPath    = "*"
	glyphStart   = "S"
	glyphEnd     = "E"
)

var (
	styleOpen    = lipgloss.NewStyle().Foreground(colorDim)
	styleWall    = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleVisited = lipgloss.NewStyle().Foreground(colorBlue)
	stylePath    = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	styleStart   = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	styleEnd     = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
)

// boardView is one frame of a board: the grid plus whatever overlay has been
// revealed so far.
type boardView struct {
	grid    *grid.Grid
	start   grid.Coord
	end     grid.Coord
	visited []grid.Coord
	path    []grid.Coord
}

// render draws the frame. Later layers win: path over visited, endpoints over
// everything.
func (b boardView) render() string {
	rows, cols := b.grid.Rows(), b.grid.Cols()
	layer := make([]byte, rows*cols)
	for _, c := range b.visited {
		layer[b.grid.Index(c)] = 'v'
	}
	for _, c := range b.path {
		layer[b.grid.Index(c)] = 'p'
	}

	var sb strings.Builder
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.cell(grid.C(r, c), layer[r*cols+c]))
		}
		if r < rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (b boardView) cell(c grid.Coord, layer byte) string {
	switch {
	case c == b.start:
		return styleStart.Render(glyphStart)
	case c == b.end:
		return styleEnd.Render(glyphEnd)
	case !b.grid.IsWalkable(c):
		return styleWall.Render(glyphWall)
	case layer == 'p':
		return stylePath.Render(glyphPath)
	case layer == 'v':
		return styleVisited.Render(glyphVisited)
	default:
		return styleOpen.Render(glyphOpen)
	}
}

// legend explains the glyphs on one line.
func legend() string {
	return strings.Join([]string{
		styleStart.Render(glyphStart) + " start",
		styleEnd.Render(glyphEnd) + " end",
		styleWall.Render(glyphWall) + " wall",
		styleVisited.Render(glyphVisited) + " visited",
		stylePath.Render(glyphPath) + " path",
	}, "  ")
}
