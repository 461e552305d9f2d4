//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Screen adapts an ebiten image to the Canvas interface.
type Screen struct {
	dst *ebiten.Image
}

// NewScreen wraps dst for a single frame.
func NewScreen(dst *ebiten.Image) *Screen { return &Screen{dst: dst} }

// Clear fills the whole image.
func (s *Screen) Clear(c color.Color) { s.dst.Fill(c) }

// DrawLine draws a one pixel line. Axis-aligned lines are filled as pixel
// rects so both endpoints are covered exactly.
func (s *Screen) DrawLine(x0, y0, x1, y1 float32, c color.Color) {
	switch {
	case x0 == x1:
		top, bottom := order(y0, y1)
		vector.FillRect(s.dst, x0, top, 1, bottom-top+1, c, false)
	case y0 == y1:
		left, right := order(x0, x1)
		vector.FillRect(s.dst, left, y0, right-left+1, 1, c, false)
	default:
		vector.StrokeLine(s.dst, x0+0.5, y0+0.5, x1+0.5, y1+0.5, 1, c, false)
	}
}

// FillRect fills an axis-aligned rectangle.
func (s *Screen) FillRect(x, y, w, h float32, c color.Color) {
	vector.FillRect(s.dst, x, y, w, h, c, false)
}

func order(a, b float32) (float32, float32) {
	if a > b {
		return b, a
	}
	return a, b
}
