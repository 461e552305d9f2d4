//go:build ebiten

package render

import (
	"image/color"

	"cgol/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads per-cell values into an image with one pixel per cell
// and draws it scaled over the grid area.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{}
	gp.ensure(w, h)
	return gp
}

func (gp *GridPainter) ensure(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	if gp.img != nil && gp.w == w && gp.h == h {
		return
	}
	if gp.img != nil {
		gp.img.Deallocate()
	}
	gp.w, gp.h = w, h
	gp.img = ebiten.NewImage(w, h)
	gp.buf = make([]byte, 4*w*h)
}

// Blit colors values through palette and draws them aligned to the geometry's cells.
func (gp *GridPainter) Blit(dst *ebiten.Image, values []uint8, palette []color.RGBA, g core.Geometry) {
	gp.ensure(g.Cols, g.Rows)
	if gp.img == nil || len(values) != gp.w*gp.h {
		return
	}
	fillPaletteRGBA(gp.buf, values, palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.CellSize), float64(g.CellSize))
	op.GeoM.Translate(float64(g.LPad), float64(g.TPad))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
