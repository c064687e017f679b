// Package render turns search results into pictures.
//
// # Overview
//
// Two views are provided by subpackages:
//
//   - [board]: the maze itself as SVG, with visited cells shaded in
//     exploration order and the final path on top
//   - [tree]: the discovery tree (which cell found which) as a Graphviz
//     diagram
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg):
//
//	svg := board.RenderSVG(g, res)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [board]: github.com/matzehuels/mazetrace/pkg/render/board
// [tree]: github.com/matzehuels/mazetrace/pkg/render/tree
package render
