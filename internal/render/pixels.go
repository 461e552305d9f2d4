package render

import "image/color"

// NeighborPalette maps live-neighbor counts 0..8 to translucent heat colors
// in premultiplied form. Counts of 2 and 3, which keep a cell alive, are the
// warmest.
func NeighborPalette() []color.RGBA {
	heat := []color.NRGBA{
		{},
		{R: 20, G: 30, B: 70, A: 90},
		{R: 40, G: 70, B: 140, A: 120},
		{R: 200, G: 140, B: 40, A: 150},
		{R: 120, G: 40, B: 60, A: 120},
		{R: 100, G: 30, B: 50, A: 120},
		{R: 80, G: 20, B: 40, A: 120},
		{R: 60, G: 15, B: 30, A: 120},
		{R: 40, G: 10, B: 20, A: 120},
	}
	palette := make([]color.RGBA, len(heat))
	for i, c := range heat {
		palette[i] = color.RGBAModel.Convert(c).(color.RGBA)
	}
	return palette
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
