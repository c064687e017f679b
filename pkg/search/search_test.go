package search

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	errs "github.com/matzehuels/mazetrace/pkg/errors"
	"github.com/matzehuels/mazetrace/pkg/grid"
)

var c = grid.C

func mustGrid(t *testing.T, layout ...string) *grid.Grid {
	t.Helper()
	g, err := grid.FromLayout(layout)
	if err != nil {
		t.Fatalf("FromLayout() error = %v", err)
	}
	return g
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		input   string
		want    Algorithm
		wantErr bool
	}{
		{"bfs", BFS, false},
		{"dfs", DFS, false},
		{"greedy", Greedy, false},
		{"astar", AStar, false},
		{" astar\n", AStar, false},

		{"", 0, true},
		{"BFS", 0, true},
		{"dijkstra", 0, true},
		{"a*", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAlgorithm(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr && !errs.Is(err, errs.ErrCodeUnknownAlgorithm) {
				t.Errorf("ParseAlgorithm(%q) code = %v, want UNKNOWN_ALGORITHM", tt.input, errs.GetCode(err))
			}
			if got != tt.want {
				t.Errorf("ParseAlgorithm(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAlgorithmString(t *testing.T) {
	if diff := cmp.Diff([]string{"bfs", "dfs", "greedy", "astar"}, Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	if Algorithm(99).String() != "unknown" {
		t.Errorf("Algorithm(99).String() = %q, want unknown", Algorithm(99).String())
	}
	if !BFS.Optimal() || !AStar.Optimal() || DFS.Optimal() || Greedy.Optimal() {
		t.Error("only bfs and astar are optimal")
	}
}

func TestOpenGridTraces(t *testing.T) {
	g := mustGrid(t,
		"...",
		"...",
		"...",
	)

	tests := []struct {
		algo    Algorithm
		visited []grid.Coord
		path    []grid.Coord
	}{
		{
			algo:    BFS,
			visited: []grid.Coord{c(0, 0), c(1, 0), c(0, 1), c(2, 0), c(1, 1), c(0, 2), c(2, 1), c(1, 2), c(2, 2)},
			path:    []grid.Coord{c(0, 0), c(1, 0), c(2, 0), c(2, 1), c(2, 2)},
		},
		{
			algo:    DFS,
			visited: []grid.Coord{c(0, 0), c(0, 1), c(0, 2), c(1, 2), c(2, 2)},
			path:    []grid.Coord{c(0, 0), c(0, 1), c(0, 2), c(1, 2), c(2, 2)},
		},
		{
			algo:    Greedy,
			visited: []grid.Coord{c(0, 0), c(1, 0), c(2, 0), c(2, 1), c(2, 2)},
			path:    []grid.Coord{c(0, 0), c(1, 0), c(2, 0), c(2, 1), c(2, 2)},
		},
		{
			algo:    AStar,
			visited: []grid.Coord{c(0, 0), c(1, 0), c(2, 0), c(2, 1), c(2, 2)},
			path:    []grid.Coord{c(0, 0), c(1, 0), c(2, 0), c(2, 1), c(2, 2)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.algo.String(), func(t *testing.T) {
			res, err := Run(tt.algo, g, c(0, 0), c(2, 2))
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if !res.Found {
				t.Fatal("Found = false, want true")
			}
			if res.Length != 4 {
				t.Errorf("Length = %d, want 4", res.Length)
			}
			if diff := cmp.Diff(tt.visited, res.Visited); diff != "" {
				t.Errorf("Visited mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.path, res.Path); diff != "" {
				t.Errorf("Path mismatch (-want +got):\n%s", diff)
			}
			if err := res.Validate(g); err != nil {
				t.Errorf("Validate() error = %v", err)
			}
		})
	}
}

func TestEnclosedEnd(t *testing.T) {
	g := mustGrid(t,
		".....",
		".....",
		".....",
		"....#",
		"...#.",
	)

	for _, algo := range Algorithms() {
		t.Run(algo.String(), func(t *testing.T) {
			res, err := Run(algo, g, c(0, 0), c(4, 4))
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if res.Found {
				t.Error("Found = true, want false")
			}
			if len(res.Path) != 0 || res.Path == nil {
				t.Errorf("Path = %v, want empty non-nil slice", res.Path)
			}
			if res.Length != 0 {
				t.Errorf("Length = %d, want 0", res.Length)
			}
			// Every reachable open cell is expanded before giving up.
			if len(res.Visited) != 22 {
				t.Errorf("len(Visited) = %d, want 22", len(res.Visited))
			}
			if err := res.Validate(g); err != nil {
				t.Errorf("Validate() error = %v", err)
			}
		})
	}
}

func TestStartEqualsEnd(t *testing.T) {
	g := mustGrid(t, "..", "..")

	for _, algo := range Algorithms() {
		t.Run(algo.String(), func(t *testing.T) {
			res, err := Run(algo, g, c(1, 1), c(1, 1))
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if !res.Found || res.Length != 0 {
				t.Errorf("Found, Length = %v, %d, want true, 0", res.Found, res.Length)
			}
			if diff := cmp.Diff([]grid.Coord{c(1, 1)}, res.Path); diff != "" {
				t.Errorf("Path mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff([]grid.Coord{c(1, 1)}, res.Visited); diff != "" {
				t.Errorf("Visited mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunPreconditions(t *testing.T) {
	g := mustGrid(t,
		"..#",
		"...",
	)

	tests := []struct {
		name       string
		algo       Algorithm
		grid       *grid.Grid
		start, end grid.Coord
		code       errs.Code
	}{
		{"unknown algorithm", Algorithm(0), g, c(0, 0), c(1, 1), errs.ErrCodeUnknownAlgorithm},
		{"nil grid", BFS, nil, c(0, 0), c(1, 1), errs.ErrCodeMalformedGrid},
		{"start negative row", BFS, g, c(-1, 0), c(1, 1), errs.ErrCodeInvalidEndpoint},
		{"start past cols", AStar, g, c(0, 3), c(1, 1), errs.ErrCodeInvalidEndpoint},
		{"end past rows", DFS, g, c(0, 0), c(2, 0), errs.ErrCodeInvalidEndpoint},
		{"end on wall", Greedy, g, c(0, 0), c(0, 2), errs.ErrCodeInvalidEndpoint},
		{"start on wall", BFS, g, c(0, 2), c(0, 0), errs.ErrCodeInvalidEndpoint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Run(tt.algo, tt.grid, tt.start, tt.end)
			if res != nil {
				t.Errorf("Run() result = %+v, want nil", res)
			}
			if !errs.Is(err, tt.code) {
				t.Errorf("Run() error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestRunNamed(t *testing.T) {
	g := mustGrid(t, "...")

	res, err := RunNamed("astar", g, c(0, 0), c(0, 2))
	if err != nil {
		t.Fatalf("RunNamed() error = %v", err)
	}
	if res.Algorithm != AStar || res.Length != 2 {
		t.Errorf("RunNamed() = %v/%d, want astar/2", res.Algorithm, res.Length)
	}

	if _, err := RunNamed("bogus", g, c(0, 0), c(0, 2)); !errs.Is(err, errs.ErrCodeUnknownAlgorithm) {
		t.Errorf("RunNamed(bogus) error = %v, want UNKNOWN_ALGORITHM", err)
	}
}

func TestInformedSearchLengths(t *testing.T) {
	g := mustGrid(t,
		".......",
		".#####.",
		".#...#.",
		".#.#.#.",
		"...#...",
	)
	start, end := c(2, 2), c(4, 4)

	astar, err := Run(AStar, g, start, end)
	if err != nil {
		t.Fatalf("Run(astar) error = %v", err)
	}
	greedy, err := Run(Greedy, g, start, end)
	if err != nil {
		t.Fatalf("Run(greedy) error = %v", err)
	}
	bfs, err := Run(BFS, g, start, end)
	if err != nil {
		t.Fatalf("Run(bfs) error = %v", err)
	}

	if astar.Length != bfs.Length {
		t.Errorf("astar Length = %d, bfs Length = %d; want equal", astar.Length, bfs.Length)
	}
	if greedy.Length < astar.Length {
		t.Errorf("greedy Length = %d shorter than optimal %d", greedy.Length, astar.Length)
	}
	for _, res := range []*Result{astar, greedy, bfs} {
		if err := res.Validate(g); err != nil {
			t.Errorf("%s Validate() error = %v", res.Algorithm, err)
		}
	}
}

func TestTree(t *testing.T) {
	g := mustGrid(t, "...", "...")
	res, err := Run(BFS, g, c(0, 0), c(1, 2))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(res.Tree) != len(res.Visited)-1 {
		t.Fatalf("len(Tree) = %d, want %d", len(res.Tree), len(res.Visited)-1)
	}
	for i, e := range res.Tree {
		if e.To != res.Visited[i+1] {
			t.Errorf("Tree[%d].To = %v, want %v", i, e.To, res.Visited[i+1])
		}
		if !grid.Adjacent(e.From, e.To) {
			t.Errorf("Tree[%d] joins non-adjacent cells %v -> %v", i, e.From, e.To)
		}
	}
}

func TestSteps(t *testing.T) {
	g := mustGrid(t, "...")
	res, _ := Run(BFS, g, c(0, 0), c(0, 2))

	want := []Step{
		{Cell: c(0, 0), Initial: true},
		{Cell: c(0, 1)},
		{Cell: c(0, 2)},
	}
	if diff := cmp.Diff(want, res.Steps()); diff != "" {
		t.Errorf("Steps() mismatch (-want +got):\n%s", diff)
	}
}

// =============================================================================
// Properties over random grids
// =============================================================================

// distances computes shortest edge counts from start by plain BFS.
func distances(g *grid.Grid, start grid.Coord) map[grid.Coord]int {
	dist := map[grid.Coord]int{start: 0}
	queue := []grid.Coord{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range g.Neighbors(cur) {
			if _, ok := dist[n]; ok || !g.IsWalkable(n) {
				continue
			}
			dist[n] = dist[cur] + 1
			queue = append(queue, n)
		}
	}
	return dist
}

func randomGrid(rng *rand.Rand, rows, cols int, density float64) *grid.Grid {
	var walls []grid.Coord
	for r := 0; r < rows; r++ {
		for col := 0; col < cols; col++ {
			if rng.Float64() < density {
				walls = append(walls, c(r, col))
			}
		}
	}
	g, _ := grid.New(rows, cols, walls)
	return g
}

func randomOpenCell(rng *rand.Rand, g *grid.Grid) (grid.Coord, bool) {
	var open []grid.Coord
	for i := 0; i < g.Size(); i++ {
		if cell := g.CoordAt(i); g.IsWalkable(cell) {
			open = append(open, cell)
		}
	}
	if len(open) == 0 {
		return grid.Coord{}, false
	}
	return open[rng.Intn(len(open))], true
}

func TestRandomGridProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		rows, cols := 2+rng.Intn(7), 2+rng.Intn(7)
		g := randomGrid(rng, rows, cols, 0.3)
		start, ok1 := randomOpenCell(rng, g)
		end, ok2 := randomOpenCell(rng, g)
		if !ok1 || !ok2 {
			continue
		}

		dist, reachable := distances(g, start)[end]

		for _, algo := range Algorithms() {
			res, err := Run(algo, g, start, end)
			if err != nil {
				t.Fatalf("case %d %s: Run() error = %v", i, algo, err)
			}
			if res.Found != reachable {
				t.Fatalf("case %d %s: Found = %v, want %v\n%s", i, algo, res.Found, reachable, g)
			}
			if err := res.Validate(g); err != nil {
				t.Fatalf("case %d %s: Validate() error = %v\n%s", i, algo, err, g)
			}
			if reachable && algo.Optimal() && res.Length != dist {
				t.Errorf("case %d %s: Length = %d, want shortest %d\n%s", i, algo, res.Length, dist, g)
			}
			if reachable && res.Length < dist {
				t.Errorf("case %d %s: Length = %d shorter than shortest %d", i, algo, res.Length, dist)
			}

			again, _ := Run(algo, g, start, end)
			if diff := cmp.Diff(res, again, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("case %d %s: non-deterministic result (-first +second):\n%s", i, algo, diff)
			}
		}
	}
}

func TestConcurrentRuns(t *testing.T) {
	g := randomGrid(rand.New(rand.NewSource(3)), 20, 20, 0.2)
	start, end := c(0, 0), c(19, 19)
	if !g.IsWalkable(start) || !g.IsWalkable(end) {
		g, _ = grid.New(20, 20, nil)
	}

	want := make(map[Algorithm]*Result)
	for _, algo := range Algorithms() {
		res, err := Run(algo, g, start, end)
		if err != nil {
			t.Fatalf("Run(%s) error = %v", algo, err)
		}
		want[algo] = res
	}

	var wg sync.WaitGroup
	results := make([]*Result, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Run(Algorithms()[i%4], g, start, end)
		}(i)
	}
	wg.Wait()

	for i, res := range results {
		if diff := cmp.Diff(want[res.Algorithm], res); diff != "" {
			t.Errorf("goroutine %d result differs (-want +got):\n%s", i, diff)
		}
	}
}
