package core

// DefaultCellSize is the edge length of one cell in pixels, gridline included.
const DefaultCellSize = 25

// Geometry maps between window pixels and grid cells. The grid-aligned area
// (Width x Height) always measures cells*CellSize+1 so gridlines land on both
// edges, and is centered inside the real window by LPad and TPad.
type Geometry struct {
	CellSize int
	MaxCols  int
	MaxRows  int

	RealWidth  int
	RealHeight int
	Width      int
	Height     int
	Cols       int
	Rows       int
	LPad       int
	TPad       int
}

// NewGeometry computes the grid layout for a window of realW x realH pixels.
// A non-positive maxCols or maxRows leaves that axis unbounded.
func NewGeometry(realW, realH, cellSize, maxCols, maxRows int) Geometry {
	if cellSize < 2 {
		cellSize = DefaultCellSize
	}
	g := Geometry{CellSize: cellSize, MaxCols: maxCols, MaxRows: maxRows}
	g.Resize(realW, realH)
	return g
}

// Resize recomputes the layout for a new real window size.
func (g *Geometry) Resize(realW, realH int) {
	floor := g.CellSize + 1
	if realW < floor {
		realW = floor
	}
	if realH < floor {
		realH = floor
	}
	g.RealWidth, g.RealHeight = realW, realH
	g.Width = clampAligned(SnapDown(realW, g.CellSize), g.CellSize, g.MaxCols)
	g.Height = clampAligned(SnapDown(realH, g.CellSize), g.CellSize, g.MaxRows)
	g.Cols = (g.Width - 1) / g.CellSize
	g.Rows = (g.Height - 1) / g.CellSize
	g.LPad = Padding(realW, g.Width)
	g.TPad = Padding(realH, g.Height)
}

// SnapDown returns the largest grid-aligned size not exceeding real.
func SnapDown(real, cellSize int) int {
	return (real-1)/cellSize*cellSize + 1
}

// SnapUp returns the smallest grid-aligned size not below real.
func SnapUp(real, cellSize int) int {
	return (real+cellSize-2)/cellSize*cellSize + 1
}

// Aligned returns the pixel extent of n cells including both edge gridlines.
func Aligned(n, cellSize int) int {
	return n*cellSize + 1
}

// Padding centers an aligned extent inside real.
func Padding(real, aligned int) int {
	if real > aligned {
		return (real - aligned - 1) / 2
	}
	return 0
}

func clampAligned(size, cellSize, maxCells int) int {
	if maxCells > 0 && size > Aligned(maxCells, cellSize) {
		return Aligned(maxCells, cellSize)
	}
	return size
}

// MaxSize returns the largest aligned window size, or zero for unbounded axes.
func (g Geometry) MaxSize() (int, int) {
	w, h := 0, 0
	if g.MaxCols > 0 {
		w = Aligned(g.MaxCols, g.CellSize)
	}
	if g.MaxRows > 0 {
		h = Aligned(g.MaxRows, g.CellSize)
	}
	return w, h
}

// MinSize returns the smallest permitted window size: one cell plus one pixel.
func (g Geometry) MinSize() (int, int) {
	return g.CellSize + 1, g.CellSize + 1
}

// SnapTarget returns the window size a settled resize should force.
func (g Geometry) SnapTarget() (int, int) {
	w := clampAligned(SnapUp(g.RealWidth, g.CellSize), g.CellSize, g.MaxCols)
	h := clampAligned(SnapUp(g.RealHeight, g.CellSize), g.CellSize, g.MaxRows)
	return w, h
}

// NeedsSnap reports whether the real window differs from its snap target.
func (g Geometry) NeedsSnap() bool {
	w, h := g.SnapTarget()
	return w != g.RealWidth || h != g.RealHeight
}

// CellAt maps a window pixel to a cell. Clicks in the padding, on a gridline,
// or past the grid edge are rejected.
func (g Geometry) CellAt(x, y int) (int, int, bool) {
	if x < g.LPad || y < g.TPad {
		return 0, 0, false
	}
	x -= g.LPad
	y -= g.TPad
	if x%g.CellSize == 0 || y%g.CellSize == 0 {
		return 0, 0, false
	}
	cx, cy := x/g.CellSize, y/g.CellSize
	if cx >= g.Cols || cy >= g.Rows {
		return 0, 0, false
	}
	return cx, cy, true
}

// CellOrigin returns the pixel at the top-left gridline corner of cell (cx, cy).
func (g Geometry) CellOrigin(cx, cy int) (int, int) {
	return g.LPad + cx*g.CellSize, g.TPad + cy*g.CellSize
}

// GridSize returns the cell dimensions as a Size.
func (g Geometry) GridSize() Size {
	return Size{W: g.Cols, H: g.Rows}
}
