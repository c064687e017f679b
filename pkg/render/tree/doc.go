// Package tree renders the discovery tree of a search as a node-link diagram.
//
// # Overview
//
// Every search builds a spanning tree over the cells it expands: each cell
// except the start hangs off the cell that discovered it. Drawing that tree
// shows how a strategy fans out. bfs produces a wide, shallow tree, dfs a
// single long spine, and astar a narrow wedge pointed at the goal.
//
// # Usage
//
// Convert a result to DOT, then render to SVG:
//
//	res, _ := search.Run(search.AStar, g, start, end)
//	dot := tree.ToDOT(res, tree.Options{Detailed: true})
//	svg, err := tree.RenderSVG(dot)
//
// For PDF or PNG output:
//
//	pdf, err := tree.RenderPDF(dot)
//	png, err := tree.RenderPNG(dot, 2.0)  // 2x scale
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package tree
