package board

import (
	"bytes"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/mazetrace/pkg/grid"
	"github.com/matzehuels/mazetrace/pkg/search"
)

// RenderPNG rasterises the board directly, without an SVG step. The path is
// drawn as a line through cell centres and the endpoints as discs. ends may
// be nil, in which case the endpoints are taken from res. scale multiplies
// cellSize; values <= 0 mean 1.
func RenderPNG(g *grid.Grid, res *search.Result, ends *Endpoints, cellSize, scale float64) ([]byte, error) {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	if scale <= 0 {
		scale = 1
	}
	cell := cellSize * scale

	w := int(math.Ceil(float64(g.Cols()) * cell))
	h := int(math.Ceil(float64(g.Rows()) * cell))
	dc := gg.NewContext(w, h)
	dc.SetHexColor(fillOpen)
	dc.Clear()

	fillCell := func(c grid.Coord, hex string) {
		dc.SetHexColor(hex)
		dc.DrawRectangle(float64(c.Col)*cell, float64(c.Row)*cell, cell, cell)
		dc.Fill()
	}
	for i := 0; i < g.Size(); i++ {
		if c := g.CoordAt(i); !g.IsWalkable(c) {
			fillCell(c, fillWall)
		}
	}

	if res != nil {
		for _, c := range res.Visited {
			fillCell(c, fillVisited)
		}
	}

	// Grid lines.
	dc.SetHexColor(strokeGrid)
	dc.SetLineWidth(1)
	for r := 0; r <= g.Rows(); r++ {
		dc.DrawLine(0, float64(r)*cell, float64(w), float64(r)*cell)
	}
	for c := 0; c <= g.Cols(); c++ {
		dc.DrawLine(float64(c)*cell, 0, float64(c)*cell, float64(h))
	}
	dc.Stroke()

	centre := func(c grid.Coord) (float64, float64) {
		return (float64(c.Col) + 0.5) * cell, (float64(c.Row) + 0.5) * cell
	}
	if res != nil && len(res.Path) > 1 {
		dc.SetHexColor(fillPath)
		dc.SetLineWidth(cell / 3)
		dc.SetLineCapRound()
		dc.SetLineJoinRound()
		dc.MoveTo(centre(res.Path[0]))
		for _, c := range res.Path[1:] {
			dc.LineTo(centre(c))
		}
		dc.Stroke()
	}
	disc := func(c grid.Coord, hex string) {
		x, y := centre(c)
		dc.SetHexColor(hex)
		dc.DrawCircle(x, y, cell*0.35)
		dc.Fill()
	}
	var start, end *grid.Coord
	if ends != nil {
		start, end = &ends.Start, &ends.End
	}
	if c, ok := endpoint(start, res, true); ok {
		disc(c, fillStart)
	}
	if c, ok := endpoint(end, res, false); ok {
		disc(c, fillEnd)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
