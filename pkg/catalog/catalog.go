package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/mazetrace/pkg/errors"
	"github.com/matzehuels/mazetrace/pkg/grid"
	"github.com/matzehuels/mazetrace/pkg/maze"
)

//go:embed mazes/*.toml
var embedded embed.FS

// Maze is a named preset. Grid is immutable and may be shared.
type Maze struct {
	Name        string
	Description string
	Grid        *grid.Grid
	Start       grid.Coord
	End         grid.Coord
}

// Info returns the wire form of the maze.
func (m Maze) Info() *maze.Info {
	return maze.NewInfo(m.Name, m.Description, m.Grid, m.Start, m.End)
}

// Catalog is a read-only table of preset mazes.
type Catalog struct {
	mazes map[string]Maze
	names []string
}

// file is the on-disk form of a preset. The name comes from the file name.
type file struct {
	Description string   `toml:"description"`
	Start       []int    `toml:"start"`
	End         []int    `toml:"end"`
	Layout      []string `toml:"layout"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog of built-in presets. It is parsed on first use
// and shared by every caller. A broken embedded preset is a build defect, so
// Default panics rather than returning an error.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(embedded, "mazes")
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded presets: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Load reads every *.toml file under dir in fsys. Each preset must have a
// valid name, a well-formed layout, and open in-bounds endpoints.
func Load(fsys fs.FS, dir string) (*Catalog, error) {
	paths, err := fs.Glob(fsys, path.Join(dir, "*.toml"))
	if err != nil {
		return nil, err
	}

	c := &Catalog{mazes: make(map[string]Maze, len(paths))}
	for _, p := range paths {
		m, err := loadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path.Base(p), err)
		}
		c.mazes[m.Name] = m
		c.names = append(c.names, m.Name)
	}
	sort.Strings(c.names)
	return c, nil
}

func loadFile(fsys fs.FS, p string) (Maze, error) {
	name := strings.TrimSuffix(path.Base(p), ".toml")
	if err := errs.ValidateMazeName(name); err != nil {
		return Maze{}, err
	}

	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return Maze{}, err
	}
	var f file
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return Maze{}, errs.Wrap(errs.ErrCodeMalformedGrid, err, "decode preset")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Maze{}, errs.New(errs.ErrCodeMalformedGrid, "unknown key %q", undecoded[0].String())
	}

	g, err := grid.FromLayout(f.Layout)
	if err != nil {
		return Maze{}, err
	}
	start, err := maze.Point("start", f.Start)
	if err != nil {
		return Maze{}, err
	}
	end, err := maze.Point("end", f.End)
	if err != nil {
		return Maze{}, err
	}
	for _, c := range []grid.Coord{start, end} {
		if !g.IsWalkable(c) {
			return Maze{}, errs.New(errs.ErrCodeInvalidEndpoint, "endpoint %v is blocked or outside the grid", c)
		}
	}

	return Maze{
		Name:        name,
		Description: f.Description,
		Grid:        g,
		Start:       start,
		End:         end,
	}, nil
}

// Names returns the preset names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}

// Len returns the number of presets.
func (c *Catalog) Len() int { return len(c.names) }

// Get returns the named preset or a NOT_FOUND error. Names that could never
// be in a catalog still report NOT_FOUND, with the validation failure as the
// cause.
func (c *Catalog) Get(name string) (Maze, error) {
	if err := errs.ValidateMazeName(name); err != nil {
		return Maze{}, errs.Wrap(errs.ErrCodeNotFound, err, "maze %q not found", name)
	}
	m, ok := c.mazes[name]
	if !ok {
		return Maze{}, errs.New(errs.ErrCodeNotFound, "maze %q not found", name)
	}
	return m, nil
}

// Names lists the built-in presets.
func Names() []string { return Default().Names() }

// Get looks up a built-in preset.
func Get(name string) (Maze, error) { return Default().Get(name) }
