// Package io reads and writes custom maze descriptions as JSON or TOML
// files.
//
// # Formats
//
// Both encodings carry the same fields as [maze.Description]:
//
//	{
//	  "rows": 5,
//	  "cols": 5,
//	  "walls": [[1, 1], [1, 2], [3, 3]],
//	  "start": [0, 0],
//	  "end": [4, 4]
//	}
//
// or, in TOML:
//
//	rows  = 5
//	cols  = 5
//	walls = [[1, 1], [1, 2], [3, 3]]
//	start = [0, 0]
//	end   = [4, 4]
//
// The format of a file is chosen from its extension with [FormatFromPath].
// Decoding does not validate the maze; wall filtering and endpoint checks
// happen when the description is turned into a grid and searched.
//
// # Import
//
//	d, err := io.Import("maze.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Export
//
// [Export] writes the format matching the target extension. JSON output is
// indented for hand editing.
//
// [maze.Description]: github.com/matzehuels/mazetrace/pkg/maze.Description
package io
