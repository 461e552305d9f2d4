package life

import (
	"slices"
	"testing"
)

func newLife(t *testing.T, w, h int) *Life {
	t.Helper()
	l, err := New(w, h)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", w, h, err)
	}
	return l
}

func assertLiveSet(t *testing.T, l *Life, expects map[[2]int]bool, when string) {
	t.Helper()
	size := l.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			alive := l.Alive(x, y)
			shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", when, x, y, alive, shouldBeAlive)
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	life := newLife(t, 5, 5)
	life.Set(2, 1, true)
	life.Set(2, 2, true)
	life.Set(2, 3, true)

	life.Step()
	assertLiveSet(t, life, map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}, "after first step")

	life.Step()
	assertLiveSet(t, life, map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}, "after second step")
}

func TestNextIsPure(t *testing.T) {
	life := newLife(t, 8, 6)
	life.Randomize(7, 0.4)
	before := append([]uint8(nil), life.Cells()...)

	life.Next()
	first := append([]uint8(nil), life.Back()...)
	life.Next()
	second := append([]uint8(nil), life.Back()...)

	if !slices.Equal(first, second) {
		t.Fatal("Next produced different back buffers from the same generation")
	}
	if !slices.Equal(before, life.Cells()) {
		t.Fatal("Next mutated the current generation")
	}
}

func TestDeadGridStaysDead(t *testing.T) {
	life := newLife(t, 7, 4)
	for i := 0; i < 10; i++ {
		stats := life.Step()
		if stats.Population != 0 || stats.Births != 0 || stats.Deaths != 0 {
			t.Fatalf("step %d: dead grid produced %+v", i, stats)
		}
	}
	if life.Population() != 0 {
		t.Fatalf("expected empty grid, got population %d", life.Population())
	}
}

func TestBirthRequiresExactlyThree(t *testing.T) {
	for _, tc := range []struct {
		live  [][2]int
		alive bool
	}{
		{live: [][2]int{{1, 1}, {2, 1}}, alive: false},
		{live: [][2]int{{1, 1}, {2, 1}, {3, 1}}, alive: true},
		{live: [][2]int{{1, 1}, {2, 1}, {3, 1}, {1, 3}}, alive: false},
	} {
		life := newLife(t, 6, 6)
		for _, c := range tc.live {
			life.Set(c[0], c[1], true)
		}
		if n := life.Neighbors(2, 2); n != len(tc.live) {
			t.Fatalf("expected %d neighbors, got %d", len(tc.live), n)
		}
		life.Step()
		if got := life.Alive(2, 2); got != tc.alive {
			t.Fatalf("dead cell with %d neighbors: alive=%v, expected %v", len(tc.live), got, tc.alive)
		}
	}
}

func TestSurvivalRequiresTwoOrThree(t *testing.T) {
	neighbors := [][2]int{{1, 1}, {2, 1}, {3, 1}, {1, 2}, {3, 2}}
	for n := 0; n <= len(neighbors); n++ {
		life := newLife(t, 7, 7)
		life.Set(2, 2, true)
		for _, c := range neighbors[:n] {
			life.Set(c[0], c[1], true)
		}
		life.Step()
		want := n == 2 || n == 3
		if got := life.Alive(2, 2); got != want {
			t.Fatalf("live cell with %d neighbors: alive=%v, expected %v", n, got, want)
		}
	}
}

func TestToroidalCornerNeighbor(t *testing.T) {
	life := newLife(t, 5, 4)
	life.Set(4, 3, true)
	if n := life.Neighbors(0, 0); n != 1 {
		t.Fatalf("corner (0,0) should see (4,3) across both edges, got %d neighbors", n)
	}
	life.Set(0, 3, true)
	life.Set(4, 0, true)
	life.Step()
	if !life.Alive(0, 0) {
		t.Fatal("expected (0,0) to be born from three wrapped neighbors")
	}
}

func TestThreeByThreeScenario(t *testing.T) {
	life := newLife(t, 3, 3)
	life.Set(1, 1, true)
	life.Set(0, 0, true)
	life.Set(0, 1, true)
	life.Set(1, 0, true)

	// On a 3x3 torus every cell neighbors every other cell, so each live cell
	// sees 3 live neighbors and each dead cell sees 4.
	stats := life.Step()
	assertLiveSet(t, life, map[[2]int]bool{
		{0, 0}: true,
		{0, 1}: true,
		{1, 0}: true,
		{1, 1}: true,
	}, "3x3 torus")
	if stats.Population != 4 || stats.Births != 0 || stats.Deaths != 0 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestStepStatsCountTransitions(t *testing.T) {
	life := newLife(t, 5, 5)
	life.Set(2, 1, true)
	life.Set(2, 2, true)
	life.Set(2, 3, true)

	stats := life.Step()
	if stats.Population != 3 || stats.Births != 2 || stats.Deaths != 2 {
		t.Fatalf("blinker transition stats %+v", stats)
	}
}

func TestResizeClearsBothBuffers(t *testing.T) {
	life := newLife(t, 4, 4)
	life.Randomize(3, 1)
	life.Next()

	if err := life.Resize(6, 3); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if got := life.Size(); got.W != 6 || got.H != 3 {
		t.Fatalf("unexpected size %+v", got)
	}
	if len(life.Back()) != len(life.Cells()) {
		t.Fatal("buffers must share dimensions")
	}
	if life.Population() != 0 || slices.ContainsFunc(life.Back(), func(c uint8) bool { return c != 0 }) {
		t.Fatal("resize must clear both buffers")
	}
}

func TestResizeRejectsInvalidSize(t *testing.T) {
	life := newLife(t, 4, 4)
	if err := life.Resize(0, 4); err == nil {
		t.Fatal("expected error for zero width")
	}
	if got := life.Size(); got.W != 4 || got.H != 4 {
		t.Fatalf("failed resize must keep previous buffers, got %+v", got)
	}
}

func TestToggleAndNeighborCounts(t *testing.T) {
	life := newLife(t, 3, 3)
	if !life.Toggle(1, 1) {
		t.Fatal("toggle of dead cell should make it alive")
	}
	if life.Toggle(1, 1) {
		t.Fatal("second toggle should kill the cell")
	}
	if life.Toggle(5, 5) {
		t.Fatal("out-of-range toggle must be ignored")
	}

	life.Set(0, 0, true)
	counts := make([]uint8, 9)
	life.NeighborCounts(counts)
	for i, c := range counts {
		want := uint8(1)
		if i == 0 {
			want = 0
		}
		if c != want {
			t.Fatalf("cell %d: expected %d neighbors, got %d", i, want, c)
		}
	}
}

func TestRandomizeDeterministic(t *testing.T) {
	a := newLife(t, 16, 16)
	b := newLife(t, 16, 16)
	a.Randomize(42, 0.3)
	b.Randomize(42, 0.3)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("Randomize with equal seeds must match")
	}
	if a.Population() == 0 {
		t.Fatal("expected some live cells at density 0.3")
	}
}
