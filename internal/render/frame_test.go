package render

import (
	"image/color"
	"testing"

	"cgol/internal/core"
)

type line struct {
	x0, y0, x1, y1 float32
	c              color.Color
}

type rect struct {
	x, y, w, h float32
}

type recordingCanvas struct {
	cleared []color.Color
	lines   []line
	rects   []rect
}

func (r *recordingCanvas) Clear(c color.Color) { r.cleared = append(r.cleared, c) }

func (r *recordingCanvas) DrawLine(x0, y0, x1, y1 float32, c color.Color) {
	r.lines = append(r.lines, line{x0, y0, x1, y1, c})
}

func (r *recordingCanvas) FillRect(x, y, w, h float32, _ color.Color) {
	r.rects = append(r.rects, rect{x, y, w, h})
}

func TestDrawGridAndCells(t *testing.T) {
	g := core.NewGeometry(110, 80, 25, 0, 0)
	cells := make([]uint8, g.Cols*g.Rows)
	cells[0] = 1
	cells[g.Cols*g.Rows-1] = 1

	var c recordingCanvas
	Draw(&c, Frame{Geometry: g, Cells: cells}, DefaultPalette())

	if len(c.cleared) != 1 {
		t.Fatalf("expected one clear, got %d", len(c.cleared))
	}
	wantLines := (g.Cols + 1) + (g.Rows + 1)
	if len(c.lines) != wantLines {
		t.Fatalf("expected %d gridlines, got %d", wantLines, len(c.lines))
	}
	first := c.lines[0]
	if first.x0 != float32(g.LPad) || first.y0 != float32(g.TPad) || first.y1 != float32(g.Height-1+g.TPad) {
		t.Fatalf("unexpected first vertical line %+v", first)
	}
	if len(c.rects) != 2 {
		t.Fatalf("expected two live cells drawn, got %d", len(c.rects))
	}
	r := c.rects[0]
	if r.x != float32(1+g.LPad) || r.y != float32(1+g.TPad) || r.w != 24 || r.h != 24 {
		t.Fatalf("cell (0,0) drawn at %+v", r)
	}
	last := c.rects[1]
	wantX := float32((g.Cols-1)*25 + 1 + g.LPad)
	wantY := float32((g.Rows-1)*25 + 1 + g.TPad)
	if last.x != wantX || last.y != wantY {
		t.Fatalf("last cell drawn at %+v, expected (%v,%v)", last, wantX, wantY)
	}
}

func TestDrawProgressOnlyWhilePlaying(t *testing.T) {
	g := core.NewGeometry(101, 101, 25, 0, 0)
	cells := make([]uint8, g.Cols*g.Rows)
	palette := DefaultPalette()

	var paused recordingCanvas
	Draw(&paused, Frame{Geometry: g, Cells: cells, Progress: 0.5}, palette)

	var playing recordingCanvas
	Draw(&playing, Frame{Geometry: g, Cells: cells, Playing: true, Progress: 0.5}, palette)

	if len(playing.lines) != len(paused.lines)+1 {
		t.Fatalf("expected one extra progress line, got %d vs %d", len(playing.lines), len(paused.lines))
	}
	bar := playing.lines[len(playing.lines)-1]
	if bar.c != palette.Progress {
		t.Fatalf("progress bar color %v", bar.c)
	}
	if bar.y0 != 100 || bar.x0 != 0 || bar.x1 != 50 {
		t.Fatalf("unexpected progress bar %+v", bar)
	}
}

func TestFillPaletteRGBA(t *testing.T) {
	palette := NeighborPalette()
	cells := []uint8{0, 3, 42}
	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, palette)
	if buf[3] != 0 {
		t.Fatal("zero neighbors should be transparent")
	}
	three := palette[3]
	if buf[4] != three.R || buf[7] != three.A {
		t.Fatal("count 3 should use palette entry 3")
	}
	top := palette[len(palette)-1]
	if buf[8] != top.R || buf[11] != top.A {
		t.Fatal("out-of-range values clamp to the last palette entry")
	}

	fillPaletteRGBA(buf, cells, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("empty palette must clear, byte %d = %d", i, b)
		}
	}
}
