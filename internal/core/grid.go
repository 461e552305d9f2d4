package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize reports a grid dimension that is zero or negative.
	ErrInvalidSize = errors.New("invalid grid size")
	// ErrOutOfMemory reports a grid allocation that exceeds the permitted capacity.
	ErrOutOfMemory = errors.New("out of memory")
)

// MaxCells bounds a single grid allocation.
const MaxCells = 1 << 26

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a zeroed grid with the given dimensions.
func NewByteGrid(w, h int) (*ByteGrid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	if w > MaxCells/h {
		return nil, fmt.Errorf("%w: %dx%d cells", ErrOutOfMemory, w, h)
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}, nil
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Contains reports whether (x, y) lies inside the grid.
func (g *ByteGrid) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *ByteGrid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// At returns the value at (x, y), wrapping out-of-range coordinates.
func (g *ByteGrid) At(x, y int) uint8 {
	x, y = g.Wrap(x, y)
	return g.data[g.Index(x, y)]
}

// Count returns the number of nonzero cells.
func (g *ByteGrid) Count() int {
	n := 0
	for _, c := range g.data {
		if c != 0 {
			n++
		}
	}
	return n
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	clear(g.data)
}

// SameSize reports whether two grids share dimensions.
func (g *ByteGrid) SameSize(o *ByteGrid) bool {
	return o != nil && g.W == o.W && g.H == o.H
}
