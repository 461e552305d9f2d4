package render

import (
	"image/color"

	"cgol/internal/core"
)

// Canvas is the drawing surface a frame is rendered onto. Line endpoints are
// inclusive pixel coordinates.
type Canvas interface {
	Clear(c color.Color)
	DrawLine(x0, y0, x1, y1 float32, c color.Color)
	FillRect(x, y, w, h float32, c color.Color)
}

// Palette holds the colors used for a frame.
type Palette struct {
	Background color.RGBA
	GridLine   color.RGBA
	Cell       color.RGBA
	Progress   color.RGBA
}

// DefaultPalette returns the standard black/grey/white/green scheme.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{A: 255},
		GridLine:   color.RGBA{R: 100, G: 100, B: 100, A: 255},
		Cell:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Progress:   color.RGBA{G: 255, A: 255},
	}
}

// Frame is everything needed to draw one frame.
type Frame struct {
	Geometry core.Geometry
	Cells    []uint8
	Playing  bool
	Progress float64
}

// Draw renders the full frame: background, gridlines, live cells and, while
// playing, the period progress bar along the bottom edge.
func Draw(c Canvas, f Frame, p Palette) {
	c.Clear(p.Background)

	g := f.Geometry
	cs := g.CellSize
	if cs <= 0 {
		return
	}
	lpad, tpad := float32(g.LPad), float32(g.TPad)
	for i := 0; i < g.Width; i += cs {
		x := float32(i) + lpad
		c.DrawLine(x, tpad, x, float32(g.Height-1)+tpad, p.GridLine)
	}
	for i := 0; i < g.Height; i += cs {
		y := float32(i) + tpad
		c.DrawLine(lpad, y, float32(g.Width-1)+lpad, y, p.GridLine)
	}

	if len(f.Cells) >= g.Cols*g.Rows {
		side := float32(cs - 1)
		for y := 0; y < g.Rows; y++ {
			for x := 0; x < g.Cols; x++ {
				if f.Cells[y*g.Cols+x] == 0 {
					continue
				}
				c.FillRect(float32(x*cs+1)+lpad, float32(y*cs+1)+tpad, side, side, p.Cell)
			}
		}
	}

	if f.Playing {
		progress := f.Progress
		if progress < 0 {
			progress = 0
		}
		if progress > 1 {
			progress = 1
		}
		y := float32(g.RealHeight - 1)
		c.DrawLine(0, y, float32(progress*float64(g.RealWidth-1)), y, p.Progress)
	}
}
