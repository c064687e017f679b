package tree

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/mazetrace/pkg/grid"
	"github.com/matzehuels/mazetrace/pkg/render"
	"github.com/matzehuels/mazetrace/pkg/search"
)

// Options configures discovery tree rendering.
type Options struct {
	// Detailed adds the visit order to each node label.
	// When false, only the coordinate is shown.
	Detailed bool
}

const (
	colorStart = "#a7f3d0"
	colorPath  = "#fde68a"
	colorEnd   = "#fca5a5"
	colorEdge  = "#d97706"
)

// ToDOT converts the discovery tree of a search to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
//
// Every visited cell becomes a node and every tree edge points from the cell
// that discovered it. Cells on the final path are filled and their edges
// drawn bold, so the path reads as the one root-to-leaf branch that reached
// the goal.
func ToDOT(res *search.Result, opts Options) string {
	onPath := make(map[grid.Coord]bool, len(res.Path))
	for _, c := range res.Path {
		onPath[c] = true
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=18, margin=\"0.15,0.08\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.25;\n")
	fmt.Fprintf(&buf, "  label=%q;\n", fmtTitle(res))
	buf.WriteString("  labelloc=t;\n")
	buf.WriteString("\n")

	for i, c := range res.Visited {
		attrs := fmtAttrs(res, c, i, onPath[c], opts.Detailed)
		fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(c), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range res.Tree {
		if onPath[e.From] && onPath[e.To] {
			fmt.Fprintf(&buf, "  %q -> %q [color=%q, penwidth=2.5];\n", nodeID(e.From), nodeID(e.To), colorEdge)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", nodeID(e.From), nodeID(e.To))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(c grid.Coord) string {
	return strconv.Itoa(c.Row) + "_" + strconv.Itoa(c.Col)
}

func fmtTitle(res *search.Result) string {
	if !res.Found {
		return fmt.Sprintf("%s: no path, %d visited", res.Algorithm, len(res.Visited))
	}
	return fmt.Sprintf("%s: length %d, %d visited", res.Algorithm, res.Length, len(res.Visited))
}

func fmtLabel(c grid.Coord, order int, detailed bool) string {
	if !detailed {
		return c.String()
	}
	return fmt.Sprintf("%s\n#%d", c, order)
}

func fmtAttrs(res *search.Result, c grid.Coord, order int, onPath, detailed bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(c, order, detailed))}
	switch {
	case order == 0:
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", colorStart), "penwidth=2")
	case res.Found && order == len(res.Visited)-1:
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", colorEnd), "penwidth=2")
	case onPath:
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", colorPath))
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with a plain
// pixel viewBox so the SVG scales inside a browser container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// Requires librsvg.
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion at the given scale.
// Requires librsvg.
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
