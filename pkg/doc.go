// Package pkg provides the core libraries for mazetrace, a grid maze
// pathfinding engine that records how each search explores the maze.
//
// # Overview
//
// The pkg directory is organized from the leaves up:
//
//  1. [grid] - Immutable occupancy grid and coordinates
//  2. [search] - bfs, dfs, greedy and astar over a grid
//  3. [maze], [io] - Wire and file formats for mazes and results
//  4. [catalog] - Embedded preset mazes
//  5. [render] - SVG boards and discovery tree diagrams
//  6. [pipeline] - Orchestration (resolve → search → render)
//
// # Architecture
//
// The typical data flow:
//
//	preset name or custom description
//	         ↓
//	    [pipeline] resolve (catalog / maze)
//	         ↓
//	    [search] Run over a [grid.Grid]
//	         ↓
//	    trace + path → JSON, SVG, DOT
//
// # Quick Start
//
//	g, _ := grid.FromLayout([]string{
//	    "....",
//	    ".##.",
//	    "....",
//	})
//	res, err := search.Run(search.AStar, g, grid.C(0, 0), grid.C(2, 3))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Found, res.Length, len(res.Visited))
//
// The engine never depends on a transport. Both the CLI and the HTTP server
// call [pipeline.Runner], which reports failures as coded [errors.Error]
// values.
package pkg
