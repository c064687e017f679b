// Package search implements the pathfinding engine: breadth-first, depth-first,
// greedy best-first and A* search over a [grid.Grid].
//
// # Overview
//
// All four strategies share one traversal loop and differ only in how the
// next cell is taken from the frontier:
//
//	bfs     FIFO queue                     oldest first
//	dfs     LIFO stack                     newest first
//	greedy  heap keyed by h                ties by insertion order
//	astar   heap keyed by f = g + h        ties by smaller h, then insertion order
//
// h is the Manhattan distance to the end cell and g the number of edges from
// the start. On a 4-connected uniform-cost grid Manhattan distance is
// admissible and consistent, so astar (like bfs) returns a shortest path.
//
// # Determinism
//
// Neighbours are always expanded up, down, left, right and ties are never
// broken by coordinate value, so a given (algorithm, grid, start, end) always
// yields the same Visited and Path sequences.
//
// # Usage
//
//	g, _ := grid.New(3, 3, nil)
//	res, err := search.Run(search.AStar, g, grid.C(0, 0), grid.C(2, 2))
//	if err != nil {
//	    // UNKNOWN_ALGORITHM, MALFORMED_GRID or INVALID_ENDPOINT
//	}
//	fmt.Println(res.Found, res.Length) // true 4
//
// A missing path is a normal result with Found == false, not an error.
//
// # Concurrency
//
// Every call allocates its own frontier and visited set and only reads the
// grid, so Run is safe for concurrent use. Each run halts after at most
// rows*cols expansions.
package search
