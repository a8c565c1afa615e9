package render

import (
	"fmt"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/pdrpinto/gridpath"
)

// PNGOptions controls raster output.
type PNGOptions struct {
	// CellSize is the edge length of one cell in pixels. Defaults to 24.
	CellSize int
	// Labels prints row and column indices along the top and left edges.
	Labels bool
}

var (
	colorBackground = color.White
	colorFree       = color.RGBA{230, 230, 230, 255}
	colorObstacles  = [...]color.RGBA{
		gridpath.Obstacle1: {60, 60, 60, 255},
		gridpath.Obstacle2: {120, 70, 40, 255},
		gridpath.Obstacle3: {40, 70, 120, 255},
	}
	colorPath  = color.RGBA{220, 40, 40, 255}
	colorStart = color.RGBA{0, 200, 0, 255}
	colorEnd   = color.RGBA{0, 0, 255, 255}
	colorLabel = color.Black
)

// PNG draws grid with path overlaid and encodes it to w.
func PNG(w io.Writer, grid *gridpath.Grid, path []gridpath.Cell, opts PNGOptions) error {
	scale := opts.CellSize
	if scale <= 0 {
		scale = 24
	}
	margin := 0
	if opts.Labels {
		margin = 2 * scale
	}
	n := grid.Size()
	size := n*scale + margin

	dc := gg.NewContext(size, size)
	dc.SetColor(colorBackground)
	dc.Clear()

	// X is the row, so it maps to the vertical axis.
	origin := func(c gridpath.Cell) (float64, float64) {
		return float64(margin + c.Y*scale), float64(margin + c.X*scale)
	}
	center := func(c gridpath.Cell) (float64, float64) {
		px, py := origin(c)
		return px + float64(scale)/2, py + float64(scale)/2
	}

	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			state, err := grid.State(x, y)
			if err != nil {
				return fmt.Errorf("render cell (%d,%d): %w", x, y, err)
			}
			if state.IsObstacle() {
				dc.SetColor(colorObstacles[state])
			} else {
				dc.SetColor(colorFree)
			}
			px, py := origin(gridpath.Cell{X: x, Y: y})
			dc.DrawRectangle(px+1, py+1, float64(scale-2), float64(scale-2))
			dc.Fill()
		}
	}

	if len(path) > 1 {
		dc.SetColor(colorPath)
		dc.SetLineWidth(float64(scale) / 4)
		dc.MoveTo(center(path[0]))
		for _, c := range path[1:] {
			dc.LineTo(center(c))
		}
		dc.Stroke()
	}

	if start, ok := grid.Start(); ok {
		dc.SetColor(colorStart)
		cx, cy := center(start)
		dc.DrawCircle(cx, cy, float64(scale)/3)
		dc.Fill()
	}
	if end, ok := grid.End(); ok {
		dc.SetColor(colorEnd)
		cx, cy := center(end)
		dc.DrawCircle(cx, cy, float64(scale)/3)
		dc.Fill()
	}

	if opts.Labels {
		dc.SetFontFace(basicfont.Face7x13)
		dc.SetColor(colorLabel)
		for i := 0; i < n; i++ {
			cx, cy := center(gridpath.Cell{X: i, Y: i})
			label := fmt.Sprintf("%d", i)
			dc.DrawStringAnchored(label, cx, float64(margin)/2, 0.5, 0.5)
			dc.DrawStringAnchored(label, float64(margin)/2, cy, 0.5, 0.5)
		}
	}

	return dc.EncodePNG(w)
}
