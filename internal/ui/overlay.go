//go:build ebiten

package ui

import (
	"image/color"

	"cgol/internal/core"
	"cgol/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type neighborSource interface {
	NeighborCounts(dst []uint8) []uint8
	Geometry() core.Geometry
}

// Overlay tints every cell by its live-neighbor count. Toggled with 1.
type Overlay struct {
	source  neighborSource
	show    bool
	painter *render.GridPainter
	palette []color.RGBA
	counts  []uint8
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(source neighborSource, show bool) *Overlay {
	g := source.Geometry()
	return &Overlay{
		source:  source,
		show:    show,
		painter: render.NewGridPainter(g.Cols, g.Rows),
		palette: render.NeighborPalette(),
	}
}

// Update allows the overlay to update internal state.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.show = !o.show
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	o.counts = o.source.NeighborCounts(o.counts)
	o.painter.Blit(screen, o.counts, o.palette, o.source.Geometry())
}
