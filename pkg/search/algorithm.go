package search

import (
	"encoding/json"
	"strings"

	errs "github.com/matzehuels/mazetrace/pkg/errors"
)

// Algorithm selects a traversal strategy. The set is closed: names are mapped
// to an Algorithm once at the boundary by [ParseAlgorithm].
type Algorithm int

const (
	// BFS expands cells in discovery order (FIFO).
	BFS Algorithm = iota + 1
	// DFS expands the most recently discovered cell first (LIFO).
	DFS
	// Greedy expands the cell closest to the goal by Manhattan distance.
	Greedy
	// AStar expands the cell with the lowest path cost plus Manhattan distance.
	AStar
)

var algorithmNames = map[Algorithm]string{
	BFS:    "bfs",
	DFS:    "dfs",
	Greedy: "greedy",
	AStar:  "astar",
}

// Algorithms returns every supported algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{BFS, DFS, Greedy, AStar}
}

// Names returns the wire names of every supported algorithm.
func Names() []string {
	algos := Algorithms()
	names := make([]string, len(algos))
	for i, a := range algos {
		names[i] = a.String()
	}
	return names
}

// ParseAlgorithm maps a wire name (bfs, dfs, greedy, astar) to an Algorithm.
// Surrounding whitespace is ignored; matching is case-sensitive.
//
// Returns an UNKNOWN_ALGORITHM error for any other name.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.TrimSpace(name)
	for a, n := range algorithmNames {
		if n == name {
			return a, nil
		}
	}
	return 0, errs.New(errs.ErrCodeUnknownAlgorithm,
		"unknown algorithm %q (must be one of: %s)", name, strings.Join(Names(), ", "))
}

// Valid reports whether a is one of the four supported algorithms.
func (a Algorithm) Valid() bool {
	_, ok := algorithmNames[a]
	return ok
}

// String returns the wire name, or "unknown" for invalid values.
func (a Algorithm) String() string {
	if n, ok := algorithmNames[a]; ok {
		return n
	}
	return "unknown"
}

// Optimal reports whether the algorithm guarantees a shortest path on a
// uniform-cost grid.
func (a Algorithm) Optimal() bool {
	return a == BFS || a == AStar
}

// MarshalJSON encodes the algorithm as its wire name.
func (a Algorithm) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON decodes a wire name via [ParseAlgorithm].
func (a *Algorithm) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseAlgorithm(name)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
