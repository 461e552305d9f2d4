//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"cgol/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a status panel in the top-left corner of the window. It is
// toggled with H and lets the period be adjusted with -/+ buttons.
type HUD struct {
	provider core.ParameterProvider
	controls []core.ParameterControl
	setter   core.IntParameterSetter

	visible bool
	rows    []hudRow
	height  int
}

// NewHUD constructs a HUD for the provided parameter source.
func NewHUD(provider core.ParameterProvider, visible bool) *HUD {
	h := &HUD{provider: provider, visible: visible}
	if cp, ok := provider.(core.ParameterControlsProvider); ok {
		h.controls = cp.ParameterControls()
	}
	if setter, ok := provider.(core.IntParameterSetter); ok {
		h.setter = setter
	}
	return h
}

// Update refreshes the rows and handles HUD input. It reports whether a
// mouse press landed on the panel and must not reach the grid.
func (h *HUD) Update() bool {
	if h == nil {
		return false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
	if !h.visible {
		return false
	}
	h.rows, h.height = layoutRows(h.provider.Parameters(), h.controls)

	left := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	right := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	if !left && !right {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if !pointInRect(mx, my, image.Rect(0, 0, panelWidth, h.height)) {
		return false
	}
	if left {
		if row, dir, ok := hitButton(h.rows, mx, my); ok {
			h.apply(row, dir)
		}
	}
	return true
}

func (h *HUD) apply(row *hudRow, dir int) {
	if h.setter == nil || row.control == nil {
		return
	}
	current, err := strconv.Atoi(row.value)
	if err != nil {
		return
	}
	target := adjustValue(*row.control, current, dir)
	if target == current {
		return
	}
	if h.setter.SetIntParameter(row.control.Key, target) {
		row.value = strconv.Itoa(target)
	}
}

// Draw paints the panel when visible.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible || len(h.rows) == 0 {
		return
	}
	vector.FillRect(screen, 0, 0, panelWidth, float32(h.height), color.RGBA{R: 16, G: 16, B: 20, A: 220}, false)

	face := basicfont.Face7x13
	for i := range h.rows {
		row := &h.rows[i]
		y := row.top + textBaseline
		if row.header {
			text.Draw(screen, row.label, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
			continue
		}
		text.Draw(screen, row.label, face, panelPadding+paramIndent, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})

		right := panelWidth - panelPadding
		if row.control != nil {
			right = panelWidth - valueRightPad
		}
		bounds := text.BoundString(face, row.value)
		text.Draw(screen, row.value, face, right-bounds.Dx(), y, color.RGBA{R: 220, G: 220, B: 230, A: 255})

		if row.control != nil {
			h.drawButton(screen, row.minusRect, "-")
			h.drawButton(screen, row.plusRect, "+")
		}
	}
}

func (h *HUD) drawButton(screen *ebiten.Image, rect image.Rectangle, label string) {
	vector.FillRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), color.RGBA{R: 54, G: 56, B: 64, A: 255}, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(screen, label, face, x, y, color.RGBA{R: 230, G: 230, B: 240, A: 255})
}
