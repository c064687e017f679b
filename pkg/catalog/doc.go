// Package catalog holds the preset mazes served by name.
//
// Presets are TOML files embedded in the binary, one per maze, named after
// the file:
//
//	# mazes/spiral.toml
//	description = "Clockwise spiral into the centre"
//	start = [0, 0]
//	end   = [4, 4]
//	layout = [
//	  ".........",
//	  "########.",
//	  ...
//	]
//
// '#' marks a blocked cell and '.' an open one. The table is parsed once on
// first access by [Default] and never changes afterwards, so lookups are safe
// from any goroutine.
package catalog
