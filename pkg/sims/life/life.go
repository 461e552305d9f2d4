package life

import (
	"fmt"

	"cgol/internal/core"
	pcore "cgol/pkg/core"
)

// Life implements Conway's Game of Life with toroidal wrapping. Two equally
// sized buffers alternate roles: cur is read while nxt is written.
type Life struct {
	cur *core.ByteGrid
	nxt *core.ByteGrid
}

// New returns a dead Life simulation with the provided dimensions.
func New(w, h int) (*Life, error) {
	l := &Life{}
	if err := l.Resize(w, h); err != nil {
		return nil, err
	}
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cur.W, H: l.cur.H} }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Back exposes the buffer the next generation is written into.
func (l *Life) Back() []uint8 { return l.nxt.Cells() }

// Resize reallocates both buffers at the new dimensions. All cells end up dead.
// On failure the previous buffers are kept.
func (l *Life) Resize(w, h int) error {
	cur, err := core.NewByteGrid(w, h)
	if err != nil {
		return fmt.Errorf("allocating life grid: %w", err)
	}
	nxt, err := core.NewByteGrid(w, h)
	if err != nil {
		return fmt.Errorf("allocating life back buffer: %w", err)
	}
	l.cur, l.nxt = cur, nxt
	return nil
}

// Clear kills every cell in both buffers.
func (l *Life) Clear() {
	l.cur.Clear()
	l.nxt.Clear()
}

// Randomize fills the board using the provided seed.
func (l *Life) Randomize(seed int64, density float64) {
	pcore.NewRNG(seed).FillDensity(l.cur.Cells(), density)
}

// Alive reports whether (x, y) is alive. Out-of-range coordinates are dead.
func (l *Life) Alive(x, y int) bool {
	if !l.cur.Contains(x, y) {
		return false
	}
	return l.cur.Cells()[l.cur.Index(x, y)] != 0
}

// Set forces the state of (x, y). Out-of-range coordinates are ignored.
func (l *Life) Set(x, y int, alive bool) {
	if !l.cur.Contains(x, y) {
		return
	}
	var v uint8
	if alive {
		v = 1
	}
	l.cur.Cells()[l.cur.Index(x, y)] = v
}

// Toggle flips (x, y) and returns its new state.
func (l *Life) Toggle(x, y int) bool {
	if !l.cur.Contains(x, y) {
		return false
	}
	alive := !l.Alive(x, y)
	l.Set(x, y, alive)
	return alive
}

// Population counts live cells in the current generation.
func (l *Life) Population() int { return l.cur.Count() }

// Neighbors counts live Moore neighbors of (x, y) with toroidal wrapping.
func (l *Life) Neighbors(x, y int) int {
	w, h := l.cur.W, l.cur.H
	cells := l.cur.Cells()
	n := 0
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny == -1 {
			ny = h - 1
		} else if ny == h {
			ny = 0
		}
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx == -1 {
				nx = w - 1
			} else if nx == w {
				nx = 0
			}
			if cells[ny*w+nx] != 0 {
				n++
			}
		}
	}
	return n
}

// NeighborCounts writes the live-neighbor count of every cell into dst, which
// must hold at least W*H values.
func (l *Life) NeighborCounts(dst []uint8) {
	w, h := l.cur.W, l.cur.H
	if len(dst) < w*h {
		return
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst[y*w+x] = uint8(l.Neighbors(x, y))
		}
	}
}

// Next computes the following generation into the back buffer without
// touching the current one.
func (l *Life) Next() core.StepStats {
	var stats core.StepStats
	w, h := l.cur.W, l.cur.H
	cur, nxt := l.cur.Cells(), l.nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			neighbors := l.Neighbors(x, y)
			alive := cur[idx] != 0
			nxt[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				nxt[idx] = 1
				stats.Population++
				if !alive {
					stats.Births++
				}
				continue
			}
			if alive {
				stats.Deaths++
			}
		}
	}
	return stats
}

// Swap makes the back buffer current.
func (l *Life) Swap() {
	l.cur, l.nxt = l.nxt, l.cur
}

// Step advances the simulation by one generation.
func (l *Life) Step() core.StepStats {
	stats := l.Next()
	l.Swap()
	return stats
}

var _ core.Sim = (*Life)(nil)
