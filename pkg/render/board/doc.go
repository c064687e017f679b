// Package board renders a maze and its exploration as SVG or PNG.
//
// Walls are drawn dark, visited cells light blue, the final path amber, and
// the start and end cells green and red. With [WithAnimation] the visited
// cells appear in exploration order followed by the path, which mirrors the
// playback of the web frontend:
//
//	svg := board.RenderSVG(g, res,
//	    board.WithCellSize(20),
//	    board.WithAnimation(40*time.Millisecond),
//	    board.WithTitle("astar on spiral"),
//	    board.WithEndpoints(start, end),
//	)
//
// Pass a nil result to draw the bare maze. Without [WithEndpoints] the end
// marker only appears when a path was found.
package board
