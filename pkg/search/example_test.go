package search_test

import (
	"fmt"

	"github.com/matzehuels/mazetrace/pkg/grid"
	"github.com/matzehuels/mazetrace/pkg/search"
)

func ExampleRun() {
	// 3x3 open field, corner to corner
	g, _ := grid.New(3, 3, nil)

	res, err := search.Run(search.BFS, g, grid.C(0, 0), grid.C(2, 2))
	if err != nil {
		panic(err)
	}
	fmt.Println("Found:", res.Found)
	fmt.Println("Length:", res.Length)
	fmt.Println("Path:", res.Path)
	fmt.Println("Visited:", len(res.Visited))
	// Output:
	// Found: true
	// Length: 4
	// Path: [(0,0) (1,0) (2,0) (2,1) (2,2)]
	// Visited: 9
}

func ExampleRun_astar() {
	// A* heads straight for the goal on an open field
	g, _ := grid.New(3, 3, nil)

	res, _ := search.Run(search.AStar, g, grid.C(0, 0), grid.C(2, 2))
	fmt.Println("Visited:", res.Visited)
	// Output:
	// Visited: [(0,0) (1,0) (2,0) (2,1) (2,2)]
}

func ExampleRun_unreachable() {
	// The end cell is walled off
	g, _ := grid.FromLayout([]string{
		"..#",
		".#.",
	})

	res, err := search.Run(search.DFS, g, grid.C(0, 0), grid.C(1, 2))
	fmt.Println("Error:", err)
	fmt.Println("Found:", res.Found)
	fmt.Println("Path:", res.Path)
	fmt.Println("Visited:", res.Visited)
	// Output:
	// Error: <nil>
	// Found: false
	// Path: []
	// Visited: [(0,0) (0,1) (1,0)]
}

func ExampleParseAlgorithm() {
	algo, _ := search.ParseAlgorithm("greedy")
	fmt.Println(algo, algo.Optimal())

	_, err := search.ParseAlgorithm("dijkstra")
	fmt.Println(err != nil)
	// Output:
	// greedy false
	// true
}
