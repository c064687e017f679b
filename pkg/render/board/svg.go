package board

import (
	"bytes"
	"fmt"
	"html"
	"time"

	"github.com/matzehuels/mazetrace/pkg/grid"
	"github.com/matzehuels/mazetrace/pkg/search"
)

// DefaultCellSize is the cell edge in pixels used when no size is given.
const DefaultCellSize = 24.0

const (
	titleMargin = 28.0

	fillOpen    = "#ffffff"
	fillWall    = "#1f2937"
	fillVisited = "#bfdbfe"
	fillPath    = "#fbbf24"
	fillStart   = "#34d399"
	fillEnd     = "#f87171"
	strokeGrid  = "#e5e7eb"
)

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	cellSize float64
	step     time.Duration
	title    string
	start    *grid.Coord
	end      *grid.Coord
}

// WithCellSize sets the edge length of one cell in pixels.
func WithCellSize(px float64) SVGOption { return func(r *svgRenderer) { r.cellSize = px } }

// WithAnimation reveals visited cells one by one, step apart, followed by
// the path. Zero disables animation.
func WithAnimation(step time.Duration) SVGOption { return func(r *svgRenderer) { r.step = step } }

// Endpoints are the start and end cells of a maze.
type Endpoints struct {
	Start grid.Coord
	End   grid.Coord
}

// WithEndpoints marks start and end on the board even when the search never
// reached the end.
func WithEndpoints(start, end grid.Coord) SVGOption {
	return func(r *svgRenderer) { r.start, r.end = &start, &end }
}

// WithTitle prints a caption above the board.
func WithTitle(title string) SVGOption { return func(r *svgRenderer) { r.title = title } }

// RenderSVG draws g with the exploration of res laid over it. res may be nil
// to draw the bare maze.
func RenderSVG(g *grid.Grid, res *search.Result, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	top := 0.0
	if r.title != "" {
		top = titleMargin
	}
	width := float64(g.Cols()) * r.cellSize
	height := float64(g.Rows())*r.cellSize + top

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	if r.title != "" {
		fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="14" text-anchor="middle">%s</text>`+"\n",
			width/2, titleMargin*0.7, html.EscapeString(r.title))
	}

	fmt.Fprintf(&buf, `  <g transform="translate(0, %.1f)">`+"\n", top)
	r.renderCells(&buf, g)
	if res != nil {
		r.renderTrace(&buf, res)
	}
	r.renderEndpoints(&buf, res)
	buf.WriteString("  </g>\n")

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{cellSize: DefaultCellSize}
	for _, opt := range opts {
		opt(&r)
	}
	if r.cellSize <= 0 {
		r.cellSize = DefaultCellSize
	}
	return r
}

func (r *svgRenderer) renderCells(buf *bytes.Buffer, g *grid.Grid) {
	for i := 0; i < g.Size(); i++ {
		c := g.CoordAt(i)
		fill := fillOpen
		if !g.IsWalkable(c) {
			fill = fillWall
		}
		r.rect(buf, c, fill, "cell", -1)
	}
}

// renderTrace overlays visited cells, then the path. In animated mode each
// overlay starts hidden and appears at its frame.
func (r *svgRenderer) renderTrace(buf *bytes.Buffer, res *search.Result) {
	for i, c := range res.Visited {
		r.rect(buf, c, fillVisited, "visited", i)
	}
	offset := len(res.Visited)
	for i, c := range res.Path {
		r.rect(buf, c, fillPath, "path", offset+i)
	}
}

// renderEndpoints draws the start and end markers, always visible. Explicit
// endpoints win over those derived from res.
func (r *svgRenderer) renderEndpoints(buf *bytes.Buffer, res *search.Result) {
	if start, ok := endpoint(r.start, res, true); ok {
		r.rect(buf, start, fillStart, "start", -1)
	}
	if end, ok := endpoint(r.end, res, false); ok {
		r.rect(buf, end, fillEnd, "end", -1)
	}
}

// endpoint resolves a marker position. Without an explicit coordinate, the
// start is the first visited cell and the end is the last cell of a found
// path.
func endpoint(explicit *grid.Coord, res *search.Result, start bool) (grid.Coord, bool) {
	switch {
	case explicit != nil:
		return *explicit, true
	case res == nil:
		return grid.Coord{}, false
	case start && len(res.Visited) > 0:
		return res.Start(), true
	case !start && res.Found && len(res.Path) > 0:
		return res.Path[len(res.Path)-1], true
	}
	return grid.Coord{}, false
}

func (r *svgRenderer) rect(buf *bytes.Buffer, c grid.Coord, fill, class string, frame int) {
	x, y := float64(c.Col)*r.cellSize, float64(c.Row)*r.cellSize
	if frame < 0 || r.step <= 0 {
		fmt.Fprintf(buf, `    <rect class="%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s"/>`+"\n",
			class, x, y, r.cellSize, r.cellSize, fill, strokeGrid)
		return
	}
	begin := time.Duration(frame) * r.step
	fmt.Fprintf(buf, `    <rect class="%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s" opacity="0">`+
		`<set attributeName="opacity" to="1" begin="%.3fs" fill="freeze"/></rect>`+"\n",
		class, x, y, r.cellSize, r.cellSize, fill, strokeGrid, begin.Seconds())
}
