package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cells returns the number of cells covered by the size.
func (s Size) Cells() int { return s.W * s.H }

// StepStats summarizes one generation transition.
type StepStats struct {
	Population int
	Births     int
	Deaths     int
}

// Sim defines the contract the interactive session drives.
type Sim interface {
	Name() string
	Size() Size
	Cells() []uint8
	Step() StepStats
	Toggle(x, y int) bool
	Clear()
	Randomize(seed int64, density float64)
	Resize(w, h int) error
	Population() int
}
