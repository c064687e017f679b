// Package maze defines how mazes and search results cross process
// boundaries: the custom maze [Description], the HTTP request and response
// bodies, and the catalog [Info] payload.
//
// A Description is converted to a [grid.Grid] with [Description.Grid], which
// skips wall entries that are not [row, col] pairs or fall outside the grid:
//
//	d := &maze.Description{
//	    Rows:  3, Cols: 3,
//	    Walls: [][]int{{1, 1}, {9, 9}, {2}},
//	    Start: []int{0, 0}, End: []int{2, 2},
//	}
//	g, _ := d.Grid() // only (1,1) is blocked
//
// File encodings live in package io.
package maze
